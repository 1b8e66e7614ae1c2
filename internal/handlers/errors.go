package handlers

import (
	"errors"

	"watchlog/internal/models"
	"watchlog/internal/services"
	"watchlog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// mediaKind resolves the :media path segment.
func mediaKind(c *fiber.Ctx) (models.MediaKind, bool) {
	return models.LookupMediaKind(c.Params("media"))
}

func unknownMedia(c *fiber.Ctx) error {
	return utils.ErrorResponse(c, fiber.StatusNotFound, "Unknown media type "+c.Params("media"))
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrAlreadyExists), errors.Is(err, services.ErrNotPresent):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrLookupNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrLookupFailed):
		return fiber.StatusBadGateway
	case errors.Is(err, services.ErrSnapshotsDisabled):
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}

// respondError writes err as a StandardResponse. Server-side failures are
// logged and reported with the generic fallback message.
func respondError(c *fiber.Ctx, logger *logrus.Logger, err error, fallback string) error {
	code := statusFor(err)
	if code < fiber.StatusInternalServerError {
		return utils.ErrorResponse(c, code, err.Error())
	}

	logger.WithError(err).WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
	}).Error(fallback)

	if code == fiber.StatusInternalServerError {
		return utils.ErrorResponse(c, code, fallback)
	}
	return utils.ErrorResponse(c, code, err.Error())
}
