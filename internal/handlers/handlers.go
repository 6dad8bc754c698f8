// Package handlers contains the HTTP route handlers of the basketball API.
// Each exported function follows the handler-factory pattern: it takes the
// service it depends on and returns a fiber.Handler, so dependencies are
// injected without globals.
//
// Handlers own the wire: they parse path and query parameters, decode bodies
// into the service input structs, and translate every service result or typed
// error into the uniform response envelope. No business rule lives here.
package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/dfmorales/basketball-api/internal/apperr"
	"github.com/dfmorales/basketball-api/internal/response"
)

// respondError maps a service error onto the envelope: not-found → 404 with
// the resource name, validation → 422 with field messages, conflict → 400,
// anything else → 500 carrying the underlying message in details.
func respondError(c *fiber.Ctx, err error) error {
	ae := apperr.As(err)
	switch ae.Kind {
	case apperr.KindNotFound:
		return response.NotFound(c, ae.Resource, ae.Message)
	case apperr.KindValidation:
		return response.ValidationError(c, ae.Message, ae.Fields)
	case apperr.KindConflict:
		return response.Error(c, fiber.StatusBadRequest, ae.Message)
	default:
		details := ""
		if ae.Err != nil {
			details = ae.Err.Error()
		}
		return response.ServerError(c, ae.Message, details)
	}
}

// paramID reads a numeric path parameter. A non-numeric value is reported as
// a not-found for the given resource, matching the envelope contract.
func paramID(c *fiber.Ctx, name, resource, mensaje string) (uint, error) {
	v, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, apperr.NotFound(resource, mensaje)
	}
	return uint(v), nil
}

// queryUint reads an optional unsigned query parameter; nil when absent or
// not numeric.
func queryUint(c *fiber.Ctx, name string) *uint {
	s := c.Query(name)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return nil
	}
	u := uint(v)
	return &u
}

// queryInt reads an optional integer query parameter.
func queryInt(c *fiber.Ctx, name string) *int {
	s := c.Query(name)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

// queryFloat reads an optional float query parameter.
func queryFloat(c *fiber.Ctx, name string) *float64 {
	s := c.Query(name)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// queryBoolPtr reads an optional boolean query parameter ("true"/"false",
// "1"/"0"); nil when absent or unparseable.
func queryBoolPtr(c *fiber.Ctx, name string) *bool {
	s := c.Query(name)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return nil
	}
	return &v
}

// queryBool reads a boolean query parameter with a default.
func queryBool(c *fiber.Ctx, name string, def bool) bool {
	if v := queryBoolPtr(c, name); v != nil {
		return *v
	}
	return def
}

// paging reads the optional ?page and ?page_size parameters. Lists are
// unpaginated unless ?page is present.
func paging(c *fiber.Ctx) (page, pageSize int, paginado bool) {
	if c.Query("page") == "" {
		return 0, 0, false
	}
	page, _ = strconv.Atoi(c.Query("page"))
	pageSize, _ = strconv.Atoi(c.Query("page_size"))
	return page, pageSize, true
}
