package handlers

import (
	"watchlog/internal/services"
	"watchlog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type SnapshotHandler struct {
	service services.SnapshotService
	logger  *logrus.Logger
}

func NewSnapshotHandler(service services.SnapshotService, logger *logrus.Logger) *SnapshotHandler {
	return &SnapshotHandler{
		service: service,
		logger:  logger,
	}
}

// Export godoc
// @Summary Export a media table snapshot
// @Description Write every row of the media table as CSV to object storage and return a presigned download URL
// @Tags snapshots
// @Produce json
// @Param media path string true "Media type" Enums(movie, show)
// @Success 201 {object} utils.StandardResponse{data=services.SnapshotResult} "Snapshot exported"
// @Failure 404 {object} utils.StandardResponse "Unknown media type"
// @Failure 500 {object} utils.StandardResponse "Export failed"
// @Failure 503 {object} utils.StandardResponse "Object storage not configured"
// @Router /snapshots/{media} [post]
func (h *SnapshotHandler) Export(c *fiber.Ctx) error {
	kind, ok := mediaKind(c)
	if !ok {
		return unknownMedia(c)
	}

	result, err := h.service.Export(c.Context(), kind)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to export snapshot")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Snapshot exported successfully", result)
}

// Restore godoc
// @Summary Restore a media table snapshot
// @Description Insert the snapshot rows whose title and period are not already stored
// @Tags snapshots
// @Produce json
// @Param media path string true "Media type" Enums(movie, show)
// @Param object query string true "Snapshot object path"
// @Success 200 {object} utils.StandardResponse{data=services.RestoreResult} "Snapshot restored"
// @Failure 400 {object} utils.StandardResponse "Invalid parameter or snapshot"
// @Failure 404 {object} utils.StandardResponse "Unknown media type"
// @Failure 500 {object} utils.StandardResponse "Restore failed"
// @Failure 503 {object} utils.StandardResponse "Object storage not configured"
// @Router /snapshots/{media}/restore [post]
func (h *SnapshotHandler) Restore(c *fiber.Ctx) error {
	kind, ok := mediaKind(c)
	if !ok {
		return unknownMedia(c)
	}

	values, err := formValues(c)
	if err != nil {
		return respondError(c, h.logger, err, "")
	}
	if err := checkParams(values, restoreParams); err != nil {
		return respondError(c, h.logger, err, "")
	}

	object, _ := value(values, "object")
	result, err := h.service.Restore(c.Context(), kind, object)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to restore snapshot")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Snapshot restored successfully", result)
}
