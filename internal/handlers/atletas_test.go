package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dfmorales/basketball-api/internal/models"
	"github.com/dfmorales/basketball-api/internal/repository"
	"github.com/dfmorales/basketball-api/internal/response"
	"github.com/dfmorales/basketball-api/internal/services"
)

func testApp(t *testing.T) *fiber.App {
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
	svc := services.NewAtletaService(
		repository.NewAtletaRepository(db),
		repository.NewGrupoRepository(db),
		validate, log)

	app := fiber.New()
	atletas := app.Group("/api/v1/atletas")
	atletas.Get("/", GetAtletas(svc))
	atletas.Post("/", CreateAtleta(svc))
	atletas.Get("/dni/:dni", GetAtletaPorDNI(svc))
	atletas.Get("/:id", GetAtleta(svc))
	atletas.Put("/:id", UpdateAtleta(svc))
	atletas.Delete("/:id", DeleteAtleta(svc))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) (*http.Response, response.Envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env response.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func cuerpoAtleta(dni string) map[string]interface{} {
	return map[string]interface{}{
		"nombre_atleta":    "Juan",
		"apellido_atleta":  "Pérez",
		"dni":              dni,
		"fecha_nacimiento": time.Now().AddDate(-12, 0, -30).Format("2006-01-02"),
		"sexo":             "M",
	}
}

func TestCreateAtletaYGet(t *testing.T) {
	app := testApp(t)

	resp, env := doJSON(t, app, fiber.MethodPost, "/api/v1/atletas/", cuerpoAtleta("100"))
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, fiber.StatusCreated, env.Code)
	assert.Equal(t, "Atleta creado exitosamente", env.Message)

	data, ok := env.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Juan", data["nombre_atleta"])
	assert.Equal(t, float64(12), data["edad"], "la edad la deriva el servidor")
	assert.Nil(t, data["grupo"])

	resp, env = doJSON(t, app, fiber.MethodGet, "/api/v1/atletas/1", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Atleta encontrado", env.Message)

	resp, env = doJSON(t, app, fiber.MethodGet, "/api/v1/atletas/dni/100", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Atleta encontrado", env.Message)
}

func TestCreateAtletaValidacion(t *testing.T) {
	app := testApp(t)

	resp, env := doJSON(t, app, fiber.MethodPost, "/api/v1/atletas/", map[string]interface{}{
		"sexo": "M",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "Error de validación", env.Message)
	assert.Equal(t, "Este campo es obligatorio", env.Errors["nombre_atleta"])
	assert.Equal(t, "Este campo es obligatorio", env.Errors["dni"])
}

func TestGetAtletaNoEncontrado(t *testing.T) {
	app := testApp(t)

	resp, env := doJSON(t, app, fiber.MethodGet, "/api/v1/atletas/999", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "Atleta", env.Resource)
	assert.Equal(t, "Atleta no encontrado", env.Message)

	// Un id no numérico también se reporta como no encontrado.
	resp, env = doJSON(t, app, fiber.MethodGet, "/api/v1/atletas/abc", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Atleta", env.Resource)
}

func TestCreateAtletaDNIDuplicado(t *testing.T) {
	app := testApp(t)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/v1/atletas/", cuerpoAtleta("200"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, env := doJSON(t, app, fiber.MethodPost, "/api/v1/atletas/", cuerpoAtleta("200"))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Ya existe un atleta con el DNI 200", env.Message)
}

func TestGetAtletasListaYPaginada(t *testing.T) {
	app := testApp(t)

	for _, dni := range []string{"300", "301", "302"} {
		resp, _ := doJSON(t, app, fiber.MethodPost, "/api/v1/atletas/", cuerpoAtleta(dni))
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	// Sin ?page la lista viene completa y sin contadores.
	resp, env := doJSON(t, app, fiber.MethodGet, "/api/v1/atletas/", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Se encontraron 3 atletas", env.Message)
	assert.Nil(t, env.Pagination)

	resp, env = doJSON(t, app, fiber.MethodGet, "/api/v1/atletas/?page=2&page_size=2", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, 2, env.Pagination.CurrentPage)
	assert.Equal(t, 2, env.Pagination.TotalPages)
	assert.Equal(t, int64(3), env.Pagination.TotalItems)

	datos, ok := env.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, datos, 1)
}

func TestDeleteAtletaSoftYActivos(t *testing.T) {
	app := testApp(t)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/v1/atletas/", cuerpoAtleta("400"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, env := doJSON(t, app, fiber.MethodDelete, "/api/v1/atletas/1", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Atleta eliminado exitosamente", env.Message)

	// El borrado por defecto es lógico: la fila sigue y ?activos=false la muestra.
	_, env = doJSON(t, app, fiber.MethodGet, "/api/v1/atletas/", nil)
	assert.Equal(t, "Se encontraron 0 atletas", env.Message)

	_, env = doJSON(t, app, fiber.MethodGet, "/api/v1/atletas/?activos=false", nil)
	assert.Equal(t, "Se encontraron 1 atletas", env.Message)
}
