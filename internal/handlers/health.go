package handlers

import "github.com/gofiber/fiber/v2"

// HealthCheck handles GET /health, the liveness probe used by load balancers.
//
//	@Summary	Estado del servicio
//	@Tags		salud
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/health [get]
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "basketball-api",
	})
}
