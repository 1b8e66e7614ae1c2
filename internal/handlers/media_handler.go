package handlers

import (
	"watchlog/internal/services"
	"watchlog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MediaHandler struct {
	service services.MediaService
	logger  *logrus.Logger
}

func NewMediaHandler(service services.MediaService, logger *logrus.Logger) *MediaHandler {
	return &MediaHandler{
		service: service,
		logger:  logger,
	}
}

// Query godoc
// @Summary Query titles
// @Description List titles of a media type, rendered as "Title (Period)", with optional filters and sorting
// @Tags media
// @Produce json
// @Param media path string true "Media type" Enums(movie, show)
// @Param genre query string false "Case-insensitive genre substring"
// @Param status query string false "Status" Enums(Watched, Dropped, Plan to Watch, In Progress)
// @Param length query int false "Runtime strictly below, in minutes"
// @Param sort query string false "Sort key" Enums(length, random, releasedate, criticsrating, myrating, watchdate)
// @Param order query string false "Sort order" Enums(asc, desc)
// @Param num query int false "Maximum number of titles"
// @Success 200 {object} utils.StandardResponse "List of titles"
// @Failure 400 {object} utils.StandardResponse "Invalid parameter"
// @Failure 404 {object} utils.StandardResponse "Unknown media type"
// @Router /q/{media} [get]
func (h *MediaHandler) Query(c *fiber.Ctx) error {
	kind, ok := mediaKind(c)
	if !ok {
		return unknownMedia(c)
	}

	filter, err := parseQueryFilter(queryValues(c))
	if err != nil {
		return respondError(c, h.logger, err, "")
	}

	rows, err := h.service.Query(c.Context(), kind, filter)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to query titles")
	}

	titles := make([]string, len(rows))
	for i, row := range rows {
		titles[i] = row.Display()
	}

	meta := utils.CreateListMeta(len(titles), filter.Limit, filter.SortKey, filter.Order)
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Titles retrieved successfully", titles, meta)
}

// Create godoc
// @Summary Create a title
// @Description Insert a title, enriched from OMDb unless noimdb is present. Fails when the title already exists.
// @Tags media
// @Accept x-www-form-urlencoded
// @Produce json
// @Param media path string true "Media type" Enums(movie, show)
// @Param title formData string true "Title"
// @Param year formData string false "Release year"
// @Param years formData string false "Airing years"
// @Param status formData string false "Status" default(Plan to Watch)
// @Param substatus formData string false "Sub status"
// @Param favorite formData bool false "Favorite"
// @Param rating formData number false "Personal rating"
// @Param watchdate formData string false "Watch date (YYYY-MM-DD)"
// @Param firstwatchdate formData string false "First watch date (YYYY-MM-DD)"
// @Param lastwatchdate formData string false "Last watch date (YYYY-MM-DD)"
// @Param watchedwith formData string false "Watched with"
// @Param comments formData string false "Comments"
// @Param season formData int false "Last watched season (shows)"
// @Param episode formData int false "Last watched episode (shows)"
// @Param noimdb formData string false "Skip enrichment when present"
// @Success 201 {object} utils.StandardResponse "Title created"
// @Failure 400 {object} utils.StandardResponse "Invalid parameter or title already exists"
// @Failure 404 {object} utils.StandardResponse "Unknown media type or title not found on OMDb"
// @Failure 502 {object} utils.StandardResponse "OMDb unreachable"
// @Router /q/{media} [post]
func (h *MediaHandler) Create(c *fiber.Ctx) error {
	return h.upsert(c, services.PolicyCreate)
}

// Replace godoc
// @Summary Create or replace a title
// @Description Insert a title or fully replace the matching one, enriched from OMDb unless noimdb is present.
// @Description Matching uses the title and, when year or years is given, the period.
// @Tags media
// @Accept x-www-form-urlencoded
// @Produce json
// @Param media path string true "Media type" Enums(movie, show)
// @Param title formData string true "Title"
// @Param year formData string false "Release year"
// @Param years formData string false "Airing years"
// @Param status formData string false "Status" default(Plan to Watch)
// @Param noimdb formData string false "Skip enrichment when present"
// @Success 200 {object} utils.StandardResponse "Title replaced"
// @Success 201 {object} utils.StandardResponse "Title created"
// @Failure 400 {object} utils.StandardResponse "Invalid parameter"
// @Failure 404 {object} utils.StandardResponse "Unknown media type or title not found on OMDb"
// @Failure 502 {object} utils.StandardResponse "OMDb unreachable"
// @Router /q/{media} [put]
func (h *MediaHandler) Replace(c *fiber.Ctx) error {
	return h.upsert(c, services.PolicyReplace)
}

// Patch godoc
// @Summary Create or replace a title without enrichment
// @Description Same as PUT but never calls OMDb.
// @Tags media
// @Accept x-www-form-urlencoded
// @Produce json
// @Param media path string true "Media type" Enums(movie, show)
// @Param title formData string true "Title"
// @Param year formData string false "Release year"
// @Param years formData string false "Airing years"
// @Success 200 {object} utils.StandardResponse "Title replaced"
// @Success 201 {object} utils.StandardResponse "Title created"
// @Failure 400 {object} utils.StandardResponse "Invalid parameter"
// @Failure 404 {object} utils.StandardResponse "Unknown media type"
// @Router /q/{media} [patch]
func (h *MediaHandler) Patch(c *fiber.Ctx) error {
	return h.upsert(c, services.PolicyPatch)
}

// Delete godoc
// @Summary Delete titles
// @Description Delete every row with the title, or only the rows of the given year
// @Tags media
// @Produce json
// @Param media path string true "Media type" Enums(movie, show)
// @Param title formData string true "Title"
// @Param year formData string false "Release year or airing years"
// @Success 200 {object} utils.StandardResponse "Rows deleted"
// @Failure 400 {object} utils.StandardResponse "Invalid parameter"
// @Failure 404 {object} utils.StandardResponse "Unknown media type"
// @Router /q/{media} [delete]
func (h *MediaHandler) Delete(c *fiber.Ctx) error {
	kind, ok := mediaKind(c)
	if !ok {
		return unknownMedia(c)
	}

	values, err := formValues(c)
	if err != nil {
		return respondError(c, h.logger, err, "")
	}
	if err := checkParams(values, deleteParams); err != nil {
		return respondError(c, h.logger, err, "")
	}

	title, _ := value(values, "title")
	year, _ := value(values, "year")
	result, err := h.service.Delete(c.Context(), kind, title, year)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to delete title")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Title deleted successfully", result)
}

func (h *MediaHandler) upsert(c *fiber.Ctx, policy services.UpsertPolicy) error {
	kind, ok := mediaKind(c)
	if !ok {
		return unknownMedia(c)
	}

	values, err := formValues(c)
	if err != nil {
		return respondError(c, h.logger, err, "")
	}

	req, err := parseUpsert(kind, values, policy)
	if err != nil {
		return respondError(c, h.logger, err, "")
	}

	result, err := h.service.Upsert(c.Context(), kind, req)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to save title")
	}

	if result.Action == services.ActionInserted {
		return utils.SuccessResponse(c, fiber.StatusCreated, "Title created successfully", result)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Title replaced successfully", result)
}
