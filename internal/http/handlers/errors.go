package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	applog "ultrapopular/internal/log"
	"ultrapopular/internal/notify"
	"ultrapopular/internal/services"
	"ultrapopular/internal/validate"
)

const (
	codeBadRequest = "BAD_REQUEST"
	codeInternal   = "INTERNAL"
	codeNotFound   = "NOT_FOUND"

	maxLoggedValue = 64
)

var internalMessage = services.MetadataFor("").PublicMessage

func errorBody(code, message string, fields map[string]string, feed *notify.Feed) fiber.Map {
	body := fiber.Map{"code": code, "message": message}
	if len(fields) > 0 {
		body["fields"] = fields
	}
	out := fiber.Map{"error": body}
	if feed != nil {
		out["notices"] = feed.Notices()
	} else {
		out["notices"] = []notify.Notice{}
	}
	return out
}

// respondError writes shopper-facing failures as JSON. Anything it does not
// recognise goes to the app ErrorHandler.
func respondError(c *fiber.Ctx, err error, feed *notify.Feed) error {
	if kind := services.KindOf(err); kind != "" {
		meta := services.MetadataFor(kind)
		return c.Status(meta.HTTPStatus).JSON(errorBody(string(kind), meta.PublicMessage, nil, feed))
	}
	var be *validate.BodyError
	if errors.As(err, &be) {
		applog.Security(c, "validation.fail", map[string]any{"reason": be.Reason, "fields": be.Fields})
		return c.Status(fiber.StatusBadRequest).JSON(errorBody(codeBadRequest, be.Reason, be.Fields, feed))
	}
	return err
}

// badRequest rejects one malformed field. The offending value is logged
// clipped so a hostile client cannot flood the log.
func badRequest(c *fiber.Ctx, field, value string) error {
	applog.Security(c, "validation.fail", map[string]any{"field": field, "value": validate.Clip(value, maxLoggedValue)})
	return c.Status(fiber.StatusBadRequest).JSON(errorBody(codeBadRequest, "invalid "+field, nil, nil))
}

// ErrorHandler keeps internals out of responses. API callers get JSON, page
// requests get the notfound view.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := internalMessage
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		status = fe.Code
		message = fe.Message
	}
	if status >= fiber.StatusInternalServerError {
		applog.Error(c, "server.error", err, nil)
	}

	if strings.HasPrefix(c.Path(), "/api/") {
		code := codeInternal
		if status == fiber.StatusNotFound {
			code = codeNotFound
		} else if status < fiber.StatusInternalServerError {
			code = codeBadRequest
		}
		return c.Status(status).JSON(errorBody(code, message, nil, nil))
	}
	if rerr := c.Status(status).Render("notfound", fiber.Map{"Message": message}); rerr != nil {
		return c.Status(status).SendString(message)
	}
	return nil
}
