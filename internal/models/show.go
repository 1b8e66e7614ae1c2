package models

type Show struct {
	ID                 uint     `gorm:"primaryKey;autoIncrement" json:"id" example:"1"`
	Title              string   `gorm:"size:255;not null;index" json:"title" example:"Breaking Bad"`
	AiringDates        *string  `gorm:"column:airing_dates;size:50;index" json:"airing_dates" example:"2008–2013"`
	Status             string   `gorm:"size:50;default:'Plan to Watch'" json:"status" example:"Caught Up"`
	SubStatus          string   `gorm:"size:50;default:'N/A'" json:"sub_status" example:"N/A"`
	LastWatchedEpisode *int     `json:"last_watched_episode" example:"16"`
	LastWatchedSeason  *int     `json:"last_watched_season" example:"5"`
	Favorite           bool     `gorm:"default:false" json:"favorite" example:"true"`
	MyRating           *float64 `gorm:"type:decimal(4,2)" json:"my_rating" example:"10"`
	CriticsRating      *float64 `gorm:"type:decimal(4,2)" json:"critics_rating" example:"9.5"`
	FirstWatchDate     *string  `gorm:"size:10" json:"first_watch_date" example:"2019-06-01"`
	LastWatchDate      *string  `gorm:"size:10" json:"last_watch_date" example:"2019-08-20"`
	WatchedWith        *string  `gorm:"size:255" json:"watched_with"`
	Genres             *string  `gorm:"size:255" json:"genres" example:"Crime,Drama,Thriller"`
	Director           *string  `gorm:"size:255" json:"director"`
	Stars              *string  `gorm:"size:255" json:"stars" example:"Bryan Cranston, Aaron Paul, Anna Gunn"`
	Studio             *string  `gorm:"size:255" json:"studio"`
	Comments           *string  `gorm:"type:text" json:"comments"`
	Runtime            *int     `json:"runtime" example:"49"`
}

func (Show) TableName() string {
	return "shows"
}
