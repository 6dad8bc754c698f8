// Package response implements the uniform JSON envelope every endpoint
// returns. Clients rely on the exact shape, so the field set and names are
// part of the API contract:
//
//	{
//	  "status":  "success" | "error",
//	  "code":    <http status>,
//	  "message": "...",                      // always present, Spanish
//	  "data":    ...,                        // success payload, omitted on errors
//	  "errors":  {"campo": "mensaje"},       // validation errors only
//	  "resource": "Atleta",                  // not-found errors only
//	  "details": "...",                      // unexpected errors only
//	  "pagination": {                        // paginated lists only
//	    "current_page": 1, "total_pages": 3, "total_items": 57
//	  }
//	}
package response

import "github.com/gofiber/fiber/v2"

// Envelope is the wire shape of every API response.
type Envelope struct {
	Status     string            `json:"status"`
	Code       int               `json:"code"`
	Message    string            `json:"message"`
	Data       interface{}       `json:"data,omitempty"`
	Errors     map[string]string `json:"errors,omitempty"`
	Resource   string            `json:"resource,omitempty"`
	Details    string            `json:"details,omitempty"`
	Pagination *Pagination       `json:"pagination,omitempty"`
}

// Pagination carries the page counters on paginated list responses.
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	TotalItems  int64 `json:"total_items"`
}

// Success writes a 200 envelope with the given message and payload.
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{
		Status:  "success",
		Code:    fiber.StatusOK,
		Message: message,
		Data:    data,
	})
}

// Created writes a 201 envelope for a newly created resource.
func Created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(Envelope{
		Status:  "success",
		Code:    fiber.StatusCreated,
		Message: message,
		Data:    data,
	})
}

// Paginated writes a 200 envelope carrying a page of results plus the counters.
func Paginated(c *fiber.Ctx, message string, data interface{}, currentPage, totalPages int, totalItems int64) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{
		Status:  "success",
		Code:    fiber.StatusOK,
		Message: message,
		Data:    data,
		Pagination: &Pagination{
			CurrentPage: currentPage,
			TotalPages:  totalPages,
			TotalItems:  totalItems,
		},
	})
}

// Error writes a plain error envelope with the given status code.
func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(Envelope{
		Status:  "error",
		Code:    code,
		Message: message,
	})
}

// NotFound writes a 404 envelope naming the missing resource type.
func NotFound(c *fiber.Ctx, resource, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(Envelope{
		Status:   "error",
		Code:     fiber.StatusNotFound,
		Message:  message,
		Resource: resource,
	})
}

// ValidationError writes a 422 envelope with per-field messages.
func ValidationError(c *fiber.Ctx, message string, fields map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(Envelope{
		Status:  "error",
		Code:    fiber.StatusUnprocessableEntity,
		Message: message,
		Errors:  fields,
	})
}

// ServerError writes a 500 envelope carrying the underlying error text in
// details. Internal types never leak: details is a plain string.
func ServerError(c *fiber.Ctx, message, details string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(Envelope{
		Status:  "error",
		Code:    fiber.StatusInternalServerError,
		Message: message,
		Details: details,
	})
}
