package handlers

import "github.com/gofiber/fiber/v2"

// CSRFContextKey is where the csrf middleware leaves the token for views.
const CSRFContextKey = "csrf"

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	tok, _ := c.Locals(CSRFContextKey).(string)
	if tok == "" {
		// the cookie holds the same token once the middleware has run
		tok = c.Cookies("csrf_")
	}
	if tok != "" {
		data["CSRFToken"] = tok
	}
	return c.Render(tmpl, data)
}
