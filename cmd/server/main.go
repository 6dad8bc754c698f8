// cmd/server/main.go
// Entry point of the basketball program API. Wires configuration, database,
// repositories, services and routes, then starts the HTTP server.
package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/swagger"
	"github.com/sirupsen/logrus"

	_ "github.com/dfmorales/basketball-api/docs" // swagger spec, registered on import
	"github.com/dfmorales/basketball-api/internal/config"
	"github.com/dfmorales/basketball-api/internal/database"
	"github.com/dfmorales/basketball-api/internal/handlers"
	"github.com/dfmorales/basketball-api/internal/repository"
	"github.com/dfmorales/basketball-api/internal/services"
)

//	@title			Basketball Program API
//	@version		1.0
//	@description	API REST para la gestión de un programa de baloncesto juvenil: atletas, grupos, entrenadores, estudiantes de vinculación, inscripciones y pruebas físicas y antropométricas.
//	@BasePath		/api/v1

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("no se pudo conectar a la base de datos")
	}
	if err := database.RunMigrations(cfg.DatabaseURL, log); err != nil {
		log.WithError(err).Fatal("no se pudieron aplicar las migraciones")
	}

	// Repositories over the shared connection.
	atletaRepo := repository.NewAtletaRepository(db)
	grupoRepo := repository.NewGrupoRepository(db)
	inscripcionRepo := repository.NewInscripcionRepository(db)
	antropometricaRepo := repository.NewPruebaAntropometricaRepository(db)
	fisicaRepo := repository.NewPruebaFisicaRepository(db)
	entrenadorRepo := repository.NewEntrenadorRepository(db)
	estudianteRepo := repository.NewEstudianteRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)

	// Services with constructor injection: one validator, one logger.
	validate := services.NewValidator()
	atletaSvc := services.NewAtletaService(atletaRepo, grupoRepo, validate, log)
	grupoSvc := services.NewGrupoService(grupoRepo, atletaRepo, validate, log)
	inscripcionSvc := services.NewInscripcionService(inscripcionRepo, atletaRepo, validate, log)
	antropometricaSvc := services.NewPruebaAntropometricaService(antropometricaRepo, atletaRepo, grupoRepo, validate, log)
	fisicaSvc := services.NewPruebaFisicaService(fisicaRepo, atletaRepo, validate, log)
	entrenadorSvc := services.NewEntrenadorService(entrenadorRepo, usuarioRepo, grupoRepo, validate, log)
	estudianteSvc := services.NewEstudianteService(estudianteRepo, usuarioRepo, validate, log)

	app := fiber.New(fiber.Config{
		AppName: "Basketball Program API",
	})

	// Global middleware: request logging and CORS on every route.
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/health", handlers.HealthCheck)
	app.Get("/docs/*", swagger.HandlerDefault)

	api := app.Group("/api/v1")

	// Atletas. Static segments are registered before /:id so fiber does not
	// capture them as ids.
	atletas := api.Group("/atletas")
	atletas.Get("/", handlers.GetAtletas(atletaSvc))
	atletas.Post("/", handlers.CreateAtleta(atletaSvc))
	atletas.Get("/dni/:dni", handlers.GetAtletaPorDNI(atletaSvc))
	atletas.Get("/sin-grupo", handlers.GetAtletasSinGrupo(atletaSvc))
	atletas.Get("/:id", handlers.GetAtleta(atletaSvc))
	atletas.Put("/:id", handlers.UpdateAtleta(atletaSvc))
	atletas.Patch("/:id", handlers.UpdateAtleta(atletaSvc))
	atletas.Delete("/:id", handlers.DeleteAtleta(atletaSvc))
	atletas.Post("/:id/asignar-grupo/:grupoId", handlers.AsignarGrupoAtleta(atletaSvc))
	atletas.Post("/:id/restaurar", handlers.RestaurarAtleta(atletaSvc))

	// Grupos.
	grupos := api.Group("/grupos")
	grupos.Get("/", handlers.GetGrupos(grupoSvc))
	grupos.Post("/", handlers.CreateGrupo(grupoSvc))
	grupos.Get("/conteo-atletas", handlers.GetConteoAtletas(grupoSvc))
	grupos.Post("/remover-atleta/:atletaId", handlers.RemoverAtletaGrupo(grupoSvc))
	grupos.Get("/:id", handlers.GetGrupo(grupoSvc))
	grupos.Put("/:id", handlers.UpdateGrupo(grupoSvc))
	grupos.Patch("/:id", handlers.UpdateGrupo(grupoSvc))
	grupos.Delete("/:id", handlers.DeleteGrupo(grupoSvc))
	grupos.Get("/:id/atletas", handlers.GetAtletasGrupo(grupoSvc))
	grupos.Post("/:id/agregar-atleta/:atletaId", handlers.AgregarAtletaGrupo(grupoSvc))

	// Inscripciones. Deletes are hard; habilitar/deshabilitar is the soft path.
	inscripciones := api.Group("/inscripciones")
	inscripciones.Get("/", handlers.GetInscripciones(inscripcionSvc))
	inscripciones.Post("/", handlers.CreateInscripcion(inscripcionSvc))
	inscripciones.Get("/atleta/:atletaId", handlers.GetInscripcionesAtleta(inscripcionSvc))
	inscripciones.Get("/:id", handlers.GetInscripcion(inscripcionSvc))
	inscripciones.Put("/:id", handlers.UpdateInscripcion(inscripcionSvc))
	inscripciones.Patch("/:id", handlers.UpdateInscripcion(inscripcionSvc))
	inscripciones.Delete("/:id", handlers.DeleteInscripcion(inscripcionSvc))
	inscripciones.Post("/:id/habilitar", handlers.HabilitarInscripcion(inscripcionSvc))
	inscripciones.Post("/:id/deshabilitar", handlers.DeshabilitarInscripcion(inscripcionSvc))

	// Pruebas antropométricas.
	antropometricas := api.Group("/pruebas-antropometricas")
	antropometricas.Get("/", handlers.GetPruebasAntropometricas(antropometricaSvc))
	antropometricas.Post("/", handlers.CreatePruebaAntropometrica(antropometricaSvc))
	antropometricas.Get("/atleta/:atletaId", handlers.GetPruebasAntropometricasAtleta(antropometricaSvc))
	antropometricas.Get("/atleta/:atletaId/ultima", handlers.GetUltimaPruebaAntropometrica(antropometricaSvc))
	antropometricas.Get("/atleta/:atletaId/estadisticas", handlers.GetEstadisticasAntropometricas(antropometricaSvc))
	antropometricas.Get("/promedio-imc/grupo/:grupoId", handlers.GetPromedioIMCGrupo(antropometricaSvc))
	antropometricas.Get("/comparar/:id1/:id2", handlers.CompararPruebasAntropometricas(antropometricaSvc))
	antropometricas.Get("/:id", handlers.GetPruebaAntropometrica(antropometricaSvc))
	antropometricas.Put("/:id", handlers.UpdatePruebaAntropometrica(antropometricaSvc))
	antropometricas.Patch("/:id", handlers.UpdatePruebaAntropometrica(antropometricaSvc))
	antropometricas.Delete("/:id", handlers.DeletePruebaAntropometrica(antropometricaSvc))

	// Pruebas físicas.
	fisicas := api.Group("/pruebas-fisicas")
	fisicas.Get("/", handlers.GetPruebasFisicas(fisicaSvc))
	fisicas.Post("/", handlers.CreatePruebaFisica(fisicaSvc))
	fisicas.Get("/tipos", handlers.GetTiposPrueba(fisicaSvc))
	fisicas.Get("/atleta/:atletaId", handlers.GetPruebasFisicasAtleta(fisicaSvc))
	fisicas.Get("/atleta/:atletaId/tipo/:tipo", handlers.GetPruebasFisicasAtletaTipo(fisicaSvc))
	fisicas.Get("/atleta/:atletaId/estadisticas", handlers.GetEstadisticasFisicas(fisicaSvc))
	fisicas.Get("/promedio/tipo/:tipo", handlers.GetPromedioTipo(fisicaSvc))
	fisicas.Get("/comparar/:id1/:id2", handlers.CompararPruebasFisicas(fisicaSvc))
	fisicas.Get("/:id", handlers.GetPruebaFisica(fisicaSvc))
	fisicas.Put("/:id", handlers.UpdatePruebaFisica(fisicaSvc))
	fisicas.Patch("/:id", handlers.UpdatePruebaFisica(fisicaSvc))
	fisicas.Delete("/:id", handlers.DeletePruebaFisica(fisicaSvc))

	// Entrenadores.
	entrenadores := api.Group("/entrenadores")
	entrenadores.Get("/", handlers.GetEntrenadores(entrenadorSvc))
	entrenadores.Post("/", handlers.CreateEntrenador(entrenadorSvc))
	entrenadores.Get("/usuario/:usuarioId", handlers.GetEntrenadorPorUsuario(entrenadorSvc))
	entrenadores.Get("/:id", handlers.GetEntrenador(entrenadorSvc))
	entrenadores.Put("/:id", handlers.UpdateEntrenador(entrenadorSvc))
	entrenadores.Patch("/:id", handlers.UpdateEntrenador(entrenadorSvc))
	entrenadores.Delete("/:id", handlers.DeleteEntrenador(entrenadorSvc))
	entrenadores.Get("/:id/grupos", handlers.GetGruposEntrenador(entrenadorSvc))
	entrenadores.Post("/:id/asignar-grupo/:grupoId", handlers.AsignarGrupoEntrenador(entrenadorSvc))
	entrenadores.Post("/:id/remover-grupo/:grupoId", handlers.RemoverGrupoEntrenador(entrenadorSvc))

	// Estudiantes de vinculación.
	estudiantes := api.Group("/estudiantes-vinculacion")
	estudiantes.Get("/", handlers.GetEstudiantes(estudianteSvc))
	estudiantes.Post("/", handlers.CreateEstudiante(estudianteSvc))
	estudiantes.Get("/:id", handlers.GetEstudiante(estudianteSvc))
	estudiantes.Put("/:id", handlers.UpdateEstudiante(estudianteSvc))
	estudiantes.Patch("/:id", handlers.UpdateEstudiante(estudianteSvc))
	estudiantes.Delete("/:id", handlers.DeleteEstudiante(estudianteSvc))

	log.WithField("port", cfg.Port).Info("iniciando servidor")
	log.Fatal(app.Listen(":" + cfg.Port))
}
