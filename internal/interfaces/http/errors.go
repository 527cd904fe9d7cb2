package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/AssetVerse-api/internal/application/dto"
	"github.com/jhoicas/AssetVerse-api/internal/domain"
	"github.com/jhoicas/AssetVerse-api/pkg/logger"
)

// errorText textos que cambian según el recurso del handler.
type errorText struct {
	InvalidID string // respuesta a ErrInvalidID
	Internal  string // respuesta a cualquier error no mapeado (500)
	Detail    bool   // incluir err.Error() en el campo error del 500
}

// respondError traduce un error de dominio a status HTTP y cuerpo {message}.
func respondError(c *fiber.Ctx, log *logger.Logger, err error, t errorText) error {
	status, msg := fiber.StatusInternalServerError, t.Internal
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		status, msg = fiber.StatusBadRequest, nonEmpty(t.InvalidID, "Invalid ID")
	case errors.Is(err, domain.ErrMissingFields):
		status, msg = fiber.StatusBadRequest, "Missing required fields"
	case errors.Is(err, domain.ErrInvalidInput):
		status, msg = fiber.StatusBadRequest, "Invalid quantity"
	case errors.Is(err, domain.ErrInsufficientStock):
		status, msg = fiber.StatusBadRequest, "Not enough stock"
	case errors.Is(err, domain.ErrAssetNotFound):
		status, msg = fiber.StatusNotFound, "Asset not found"
	case errors.Is(err, domain.ErrRequestNotFound):
		status, msg = fiber.StatusNotFound, "Request not found"
	case errors.Is(err, domain.ErrUserNotFound):
		status, msg = fiber.StatusNotFound, "User not found"
	case errors.Is(err, domain.ErrNotFound):
		status, msg = fiber.StatusNotFound, "Not found"
	case errors.Is(err, domain.ErrInvalidTransition):
		status, msg = fiber.StatusConflict, "Request already processed"
	}

	if status != fiber.StatusInternalServerError {
		return c.Status(status).JSON(dto.ErrorResponse{Message: msg})
	}
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error interno")
	body := dto.ErrorResponse{Message: nonEmpty(msg, "Server Error")}
	if t.Detail {
		body.Error = err.Error()
	}
	return c.Status(status).JSON(body)
}

// invalidBody respuesta a un cuerpo JSON que no se pudo parsear.
func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid request body"})
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
