package handlers

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"watchlog/internal/models"
	"watchlog/internal/services"

	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

var (
	queryParams    = paramSet("genre", "num", "status", "length", "sort", "order")
	deleteParams   = paramSet("title", "year")
	backfillParams = paramSet("num")
	restoreParams  = paramSet("object")

	upsertParams = paramSet(
		"title", "year", "years", "status", "substatus", "favorite", "rating",
		"watchdate", "firstwatchdate", "lastwatchdate", "watchedwith", "comments", "noimdb",
	)
	episodicParams = paramSet("season", "episode")
)

func paramSet(names ...string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}

func badParam(field, message string) error {
	return &services.ValidationError{Field: field, Message: message}
}

// queryValues returns the URL query parameters.
func queryValues(c *fiber.Ctx) map[string]string {
	values := make(map[string]string)
	c.Request().URI().QueryArgs().VisitAll(func(key, value []byte) {
		values[string(key)] = string(value)
	})
	return values
}

// formValues merges the query string with the url-encoded or multipart body.
// Body values win over query values of the same name.
func formValues(c *fiber.Ctx) (map[string]string, error) {
	values := queryValues(c)

	contentType := strings.ToLower(string(c.Request().Header.ContentType()))
	if strings.HasPrefix(contentType, fiber.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return nil, badParam("", "invalid multipart form")
		}
		for key, vals := range form.Value {
			if len(vals) > 0 {
				values[key] = vals[0]
			}
		}
		return values, nil
	}

	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		values[string(key)] = string(value)
	})
	return values, nil
}

// checkParams rejects any parameter outside the allowed sets.
func checkParams(values map[string]string, allowed ...map[string]bool) error {
	var unknown []string
	for key := range values {
		ok := false
		for _, set := range allowed {
			if set[key] {
				ok = true
				break
			}
		}
		if !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return badParam("", "unrecognized parameters: "+strings.Join(unknown, ", "))
}

// value returns a trimmed parameter; empty values count as absent.
func value(values map[string]string, key string) (string, bool) {
	v, ok := values[key]
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func optionalString(values map[string]string, key string) *string {
	if v, ok := value(values, key); ok {
		return &v
	}
	return nil
}

func positiveInt(values map[string]string, key string) (int, bool, error) {
	v, ok := value(values, key)
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, false, badParam(key, "must be a positive integer")
	}
	return n, true, nil
}

func nonNegativeInt(values map[string]string, key string) (*int, error) {
	v, ok := value(values, key)
	if !ok {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return nil, badParam(key, "must be a non-negative integer")
	}
	return &n, nil
}

func optionalDate(values map[string]string, keys ...string) (*string, error) {
	for _, key := range keys {
		v, ok := value(values, key)
		if !ok {
			continue
		}
		if _, err := time.Parse(dateLayout, v); err != nil {
			return nil, badParam(key, "must be a date formatted YYYY-MM-DD")
		}
		return &v, nil
	}
	return nil, nil
}

// parseQueryFilter validates the read parameters of GET /q/{media}.
func parseQueryFilter(values map[string]string) (models.QueryFilter, error) {
	var filter models.QueryFilter
	if err := checkParams(values, queryParams); err != nil {
		return filter, err
	}

	filter.Genre, _ = value(values, "genre")
	if status, ok := value(values, "status"); ok {
		filter.Status = models.Status(status)
	}
	filter.SortKey, _ = value(values, "sort")
	filter.Order, _ = value(values, "order")

	limit, _, err := positiveInt(values, "num")
	if err != nil {
		return filter, err
	}
	filter.Limit = limit

	if v, ok := value(values, "length"); ok {
		length, err := strconv.Atoi(v)
		if err != nil {
			return filter, badParam("length", "must be an integer")
		}
		filter.MaxLength = &length
	}
	return filter, nil
}

// parseUpsert turns write form fields into an upsert request. The presence of
// noimdb turns enrichment off regardless of policy.
func parseUpsert(kind models.MediaKind, values map[string]string, policy services.UpsertPolicy) (services.UpsertRequest, error) {
	req := services.UpsertRequest{Policy: policy}

	allowed := []map[string]bool{upsertParams}
	if kind.Episodic {
		allowed = append(allowed, episodicParams)
	}
	if err := checkParams(values, allowed...); err != nil {
		return req, err
	}

	entry := models.MediaEntry{}
	entry.Title, _ = value(values, "title")
	if entry.Title == "" {
		return req, badParam("title", "title is required")
	}

	entry.Period = optionalString(values, "year")
	if entry.Period == nil {
		entry.Period = optionalString(values, "years")
	}
	req.PeriodSupplied = entry.Period != nil

	if status, ok := value(values, "status"); ok {
		entry.Status = models.Status(status)
	}
	entry.SubStatus = optionalString(values, "substatus")
	entry.WatchedWith = optionalString(values, "watchedwith")
	entry.Comments = optionalString(values, "comments")

	if v, ok := value(values, "favorite"); ok {
		favorite, err := strconv.ParseBool(v)
		if err != nil {
			return req, badParam("favorite", "must be a boolean")
		}
		entry.Favorite = &favorite
	}

	if v, ok := value(values, "rating"); ok {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(rating) || math.IsInf(rating, 0) {
			return req, badParam("rating", "must be a number")
		}
		entry.MyRating = &rating
	}

	var err error
	if entry.FirstWatchDate, err = optionalDate(values, "firstwatchdate", "watchdate"); err != nil {
		return req, err
	}
	if entry.LastWatchDate, err = optionalDate(values, "lastwatchdate", "watchdate"); err != nil {
		return req, err
	}

	if kind.Episodic {
		if entry.LastWatchedSeason, err = nonNegativeInt(values, "season"); err != nil {
			return req, err
		}
		if entry.LastWatchedEpisode, err = nonNegativeInt(values, "episode"); err != nil {
			return req, err
		}
	}

	if _, present := values["noimdb"]; present {
		req.Policy.Enrich = false
	}

	req.Entry = entry
	return req, nil
}
