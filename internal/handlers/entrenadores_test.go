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

func testAppEntrenadores(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Usuario{},
		&models.GrupoAtleta{},
		&models.Entrenador{},
	))

	log := logrus.New()
	log.SetOutput(io.Discard)
	validate := services.NewValidator()
	svc := services.NewEntrenadorService(
		repository.NewEntrenadorRepository(db),
		repository.NewUsuarioRepository(db),
		repository.NewGrupoRepository(db),
		validate, log)

	app := fiber.New()
	entrenadores := app.Group("/api/v1/entrenadores")
	entrenadores.Get("/", GetEntrenadores(svc))
	entrenadores.Post("/", CreateEntrenador(svc))
	return app, db
}

func crearUsuarioEntrenador(t *testing.T, db *gorm.DB, nombre, dni string) *models.Usuario {
	t.Helper()
	usuario := &models.Usuario{
		Nombre:   nombre,
		Apellido: "Prueba",
		Email:    dni + "@club.ec",
		Clave:    "x",
		DNI:      dni,
		Rol:      models.RolEntrenador,
		Estado:   true,
	}
	require.NoError(t, db.Create(usuario).Error)
	return usuario
}

func TestGetEntrenadoresFiltraPorNombre(t *testing.T) {
	app, db := testAppEntrenadores(t)

	juan := crearUsuarioEntrenador(t, db, "Juan", "700")
	maria := crearUsuarioEntrenador(t, db, "María", "701")

	for _, usuario := range []*models.Usuario{juan, maria} {
		resp, _ := doJSON(t, app, fiber.MethodPost, "/api/v1/entrenadores/", map[string]interface{}{
			"usuario_id":    usuario.ID,
			"especialidad":  "Tiro",
			"club_asignado": "Centro",
		})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp, env := doJSON(t, app, fiber.MethodGet, "/api/v1/entrenadores/?nombre=jua", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Se encontraron 1 entrenadores", env.Message)

	datos, ok := env.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, datos, 1)

	fila, ok := datos[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(juan.ID), fila["usuario"])
}
