package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-pos/internal/application/dto"
	"github.com/jhoicas/ventas-pos/internal/domain"
	"github.com/jhoicas/ventas-pos/pkg/i18n"
	"github.com/jhoicas/ventas-pos/pkg/logger"
)

const localTranslator = "translator"

// Localize elige el idioma de la respuesta según Accept-Language; sin cabecera usa defaultLang.
func Localize(defaultLang string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lang := c.Get(fiber.HeaderAcceptLanguage)
		if lang == "" {
			lang = defaultLang
		}
		c.Locals(localTranslator, i18n.New(lang))
		return c.Next()
	}
}

// T traductor de la petición (después de Localize).
func T(c *fiber.Ctx) *i18n.Translator {
	if tr, ok := c.Locals(localTranslator).(*i18n.Translator); ok {
		return tr
	}
	return i18n.New(c.Get(fiber.HeaderAcceptLanguage))
}

func errorJSON(c *fiber.Ctx, status int, code, key string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: T(c).T(key)})
}

// respondError traduce un error de dominio a la respuesta HTTP.
// Solo los fallos de la API remota y los errores no clasificados se registran.
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		status, code, key := fiber.StatusBadRequest, "VALIDATION", i18n.KeyValidation
		switch {
		case errors.Is(err, domain.ErrInsufficientStock):
			status, code, key = fiber.StatusConflict, "INSUFFICIENT_STOCK", i18n.KeyInsufficientStock
		case errors.Is(err, domain.ErrConflict):
			status, code, key = fiber.StatusConflict, "COUNTERPARTY_LOCKED", i18n.KeyCounterpartyLocked
		case errors.Is(err, domain.ErrNotFound):
			status, code, key = fiber.StatusNotFound, "NOT_FOUND", i18n.KeyNotFound
		}
		return c.Status(status).JSON(dto.ErrorResponse{
			Code:    code,
			Message: T(c).T(key),
			Reasons: reasons(T(c), ve.Violations),
		})
	}

	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return errorJSON(c, fiber.StatusConflict, "INSUFFICIENT_STOCK", i18n.KeyInsufficientStock)
	case errors.Is(err, domain.ErrSubmissionPending):
		return errorJSON(c, fiber.StatusConflict, "SUBMISSION_PENDING", i18n.KeySubmissionPending)
	case errors.Is(err, domain.ErrConflict):
		return errorJSON(c, fiber.StatusConflict, "CONFLICT", i18n.KeyConflict)
	case errors.Is(err, domain.ErrNotFound):
		return errorJSON(c, fiber.StatusNotFound, "NOT_FOUND", i18n.KeyNotFound)
	case errors.Is(err, domain.ErrInvalidInput):
		return errorJSON(c, fiber.StatusBadRequest, "VALIDATION", i18n.KeyValidation)
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrSessionExpired):
		return errorJSON(c, fiber.StatusUnauthorized, "UNAUTHORIZED", i18n.KeyUnauthorized)
	case errors.Is(err, domain.ErrUpstream):
		log.Error().Err(err).Str("path", c.Path()).Msg("fallo de la API remota")
		return errorJSON(c, fiber.StatusBadGateway, "UPSTREAM", i18n.KeyUpstream)
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
		return errorJSON(c, fiber.StatusInternalServerError, "INTERNAL", i18n.KeyInternal)
	}
}

func reasons(tr *i18n.Translator, vs []domain.Violation) []dto.ReasonResponse {
	out := make([]dto.ReasonResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, dto.ReasonResponse{Field: v.Field, Reason: v.Reason, Message: tr.Reason(string(v.Reason))})
	}
	return out
}

func invalidBody(c *fiber.Ctx) error {
	return errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", i18n.KeyInvalidBody)
}

// paramID lee un id numérico de la ruta.
func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(name, domain.ReasonInvalidFormat)
	}
	return id, nil
}

// ErrorHandler manejador final de fiber para errores que ningún handler respondió.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	log = log.Component("http")
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			if fe.Code == fiber.StatusNotFound {
				return errorJSON(c, fiber.StatusNotFound, "NOT_FOUND", i18n.KeyNotFound)
			}
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP_" + strconv.Itoa(fe.Code), Message: fe.Message})
		}
		return respondError(c, log, err)
	}
}
