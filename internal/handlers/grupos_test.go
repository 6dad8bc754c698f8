package handlers

import (
	"io"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dfmorales/basketball-api/internal/models"
	"github.com/dfmorales/basketball-api/internal/repository"
	"github.com/dfmorales/basketball-api/internal/services"
)

func testAppGrupos(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Usuario{},
		&models.GrupoAtleta{},
		&models.Atleta{},
	))

	log := logrus.New()
	log.SetOutput(io.Discard)
	validate := services.NewValidator()
	svc := services.NewGrupoService(
		repository.NewGrupoRepository(db),
		repository.NewAtletaRepository(db),
		validate, log)

	app := fiber.New()
	grupos := app.Group("/api/v1/grupos")
	grupos.Get("/", GetGrupos(svc))
	grupos.Post("/", CreateGrupo(svc))
	grupos.Get("/:id", GetGrupo(svc))
	return app, db
}

func cuerpoGrupo() map[string]interface{} {
	return map[string]interface{}{
		"nombre":            "Sub-12",
		"rango_edad_minima": 10,
		"rango_edad_maxima": 12,
		"categoria":         "Infantil",
	}
}

func TestGetGrupoIncluyeConteo(t *testing.T) {
	app, _ := testAppGrupos(t)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/v1/grupos/", cuerpoGrupo())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, env := doJSON(t, app, fiber.MethodGet, "/api/v1/grupos/1", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data, ok := env.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(0), data["cantidad_atletas"])
}

func TestGetGrupoConteoFallidoPropagaError(t *testing.T) {
	app, db := testAppGrupos(t)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/v1/grupos/", cuerpoGrupo())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Sin la tabla de atletas el conteo falla: la respuesta debe ser un error,
	// no un éxito con cantidad_atletas en cero.
	require.NoError(t, db.Migrator().DropTable(&models.Atleta{}))

	resp, env := doJSON(t, app, fiber.MethodGet, "/api/v1/grupos/1", nil)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "error", env.Status)

	resp, env = doJSON(t, app, fiber.MethodGet, "/api/v1/grupos/", nil)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "error", env.Status)
}
