package handlers

import (
	"watchlog/internal/services"
	"watchlog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BackfillHandler struct {
	service services.BackfillService
	logger  *logrus.Logger
}

func NewBackfillHandler(service services.BackfillService, logger *logrus.Logger) *BackfillHandler {
	return &BackfillHandler{
		service: service,
		logger:  logger,
	}
}

// Run godoc
// @Summary Backfill catalog fields from OMDb
// @Description Pick up to num random rows with missing catalog fields and fill them from OMDb.
// @Description Updates are matched by title only, so rows sharing a title all receive the same data.
// @Tags backfill
// @Produce json
// @Param media path string true "Media type" Enums(movie, show)
// @Param num query int false "Number of rows to backfill" default(10)
// @Success 200 {object} utils.StandardResponse{data=models.BackfillLog} "Backfill completed"
// @Failure 400 {object} utils.StandardResponse "Invalid parameter"
// @Failure 404 {object} utils.StandardResponse "Unknown media type"
// @Failure 500 {object} utils.StandardResponse{data=models.BackfillLog} "Backfill failed"
// @Router /backfill/omdb/{media} [post]
func (h *BackfillHandler) Run(c *fiber.Ctx) error {
	kind, ok := mediaKind(c)
	if !ok {
		return unknownMedia(c)
	}

	values, err := formValues(c)
	if err != nil {
		return respondError(c, h.logger, err, "")
	}
	if err := checkParams(values, backfillParams); err != nil {
		return respondError(c, h.logger, err, "")
	}
	num, _, err := positiveInt(values, "num")
	if err != nil {
		return respondError(c, h.logger, err, "")
	}

	h.logger.WithFields(logrus.Fields{
		"media_type": kind.Type,
		"num":        num,
	}).Info("Starting OMDb backfill")

	runLog, err := h.service.Backfill(c.Context(), kind, num)
	if err != nil {
		if runLog != nil {
			h.logger.WithError(err).WithField("run_id", runLog.RunID).Error("Backfill failed")
			return utils.ErrorWithDataResponse(c, statusFor(err), "Backfill failed", runLog)
		}
		return respondError(c, h.logger, err, "Backfill failed")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Backfill completed successfully", runLog)
}

// Last godoc
// @Summary Get the last backfill log
// @Description Get the most recent backfill run of a media type
// @Tags backfill
// @Produce json
// @Param media path string true "Media type" Enums(movie, show)
// @Success 200 {object} utils.StandardResponse{data=models.BackfillLog} "Last backfill log"
// @Failure 404 {object} utils.StandardResponse "Unknown media type"
// @Failure 500 {object} utils.StandardResponse "Failed to retrieve backfill log"
// @Router /backfill/omdb/{media}/last [get]
func (h *BackfillHandler) Last(c *fiber.Ctx) error {
	kind, ok := mediaKind(c)
	if !ok {
		return unknownMedia(c)
	}

	runLog, err := h.service.GetLastBackfillLog(c.Context(), kind)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve backfill log")
	}

	if runLog == nil {
		return utils.SuccessResponse(c, fiber.StatusOK, "No backfill log found", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Last backfill log retrieved successfully", runLog)
}
