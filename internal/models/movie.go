package models

type Movie struct {
	ID            uint     `gorm:"primaryKey;autoIncrement" json:"id" example:"1"`
	Title         string   `gorm:"size:255;not null;index" json:"title" example:"Fight Club"`
	ReleaseDate   *string  `gorm:"column:release_date;size:50;index" json:"release_date" example:"1999"`
	Status        string   `gorm:"size:50;default:'Plan to Watch'" json:"status" example:"Watched"`
	SubStatus     string   `gorm:"size:50;default:'N/A'" json:"sub_status" example:"N/A"`
	Favorite      bool     `gorm:"default:false" json:"favorite" example:"false"`
	MyRating      *float64 `gorm:"type:decimal(4,2)" json:"my_rating" example:"9"`
	CriticsRating *float64 `gorm:"type:decimal(4,2)" json:"critics_rating" example:"8.8"`
	WatchDate     *string  `gorm:"size:10" json:"watch_date" example:"2024-02-11"`
	WatchedWith   *string  `gorm:"size:255" json:"watched_with"`
	Genres        *string  `gorm:"size:255" json:"genres" example:"Drama"`
	Director      *string  `gorm:"size:255" json:"director" example:"David Fincher"`
	Stars         *string  `gorm:"size:255" json:"stars" example:"Brad Pitt, Edward Norton, Meat Loaf"`
	Studio        *string  `gorm:"size:255" json:"studio"`
	Comments      *string  `gorm:"type:text" json:"comments"`
	Runtime       *int     `json:"runtime" example:"139"`
}

func (Movie) TableName() string {
	return "movies"
}
