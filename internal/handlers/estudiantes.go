package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/dfmorales/basketball-api/internal/models"
	"github.com/dfmorales/basketball-api/internal/response"
	"github.com/dfmorales/basketball-api/internal/services"
)

// EstudianteResponse is the wire shape of a liaison student.
type EstudianteResponse struct {
	ID            uint    `json:"id"`
	Usuario       uint    `json:"usuario"`
	UsuarioNombre *string `json:"usuario_nombre"`
	Carrera       string  `json:"carrera"`
	Semestre      string  `json:"semestre"`
}

func newEstudianteResponse(e *models.EstudianteVinculacion) EstudianteResponse {
	resp := EstudianteResponse{
		ID:       e.ID,
		Usuario:  e.UsuarioID,
		Carrera:  e.Carrera,
		Semestre: e.Semestre,
	}
	if e.Usuario != nil {
		nombre := e.Usuario.Nombre + " " + e.Usuario.Apellido
		resp.UsuarioNombre = &nombre
	}
	return resp
}

func newEstudianteResponses(estudiantes []models.EstudianteVinculacion) []EstudianteResponse {
	out := make([]EstudianteResponse, 0, len(estudiantes))
	for i := range estudiantes {
		out = append(out, newEstudianteResponse(&estudiantes[i]))
	}
	return out
}

// GetEstudiantes returns a handler for GET /api/v1/estudiantes-vinculacion.
//
//	@Summary	Listar estudiantes de vinculación
//	@Tags		estudiantes-vinculacion
//	@Produce	json
//	@Param		usuario_id	query	integer	false	"Id del usuario"
//	@Param		carrera		query	string	false	"Subcadena de la carrera"
//	@Param		semestre	query	string	false	"Semestre exacto"
//	@Param		nombre		query	string	false	"Subcadena del nombre del usuario"
//	@Success	200	{object}	response.Envelope
//	@Router		/estudiantes-vinculacion [get]
func GetEstudiantes(svc *services.EstudianteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filtros := services.FiltrosEstudiante{
			UsuarioID: queryUint(c, "usuario_id"),
			Carrera:   c.Query("carrera"),
			Semestre:  c.Query("semestre"),
			Nombre:    c.Query("nombre"),
		}
		estudiantes, err := svc.Listar(filtros)
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c,
			fmt.Sprintf("Se encontraron %d estudiantes", len(estudiantes)),
			newEstudianteResponses(estudiantes))
	}
}

// CreateEstudiante returns a handler for POST /api/v1/estudiantes-vinculacion.
//
//	@Summary	Crear estudiante de vinculación
//	@Tags		estudiantes-vinculacion
//	@Accept		json
//	@Produce	json
//	@Param		estudiante	body		services.CrearEstudianteInput	true	"Datos del estudiante"
//	@Success	201			{object}	response.Envelope
//	@Failure	404			{object}	response.Envelope
//	@Failure	422			{object}	response.Envelope
//	@Router		/estudiantes-vinculacion [post]
func CreateEstudiante(svc *services.EstudianteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in services.CrearEstudianteInput
		if err := c.BodyParser(&in); err != nil {
			return response.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}
		estudiante, err := svc.Crear(in)
		if err != nil {
			return respondError(c, err)
		}
		return response.Created(c, "Estudiante de vinculación creado exitosamente", newEstudianteResponse(estudiante))
	}
}

// GetEstudiante returns a handler for GET /api/v1/estudiantes-vinculacion/:id.
//
//	@Summary	Obtener estudiante de vinculación
//	@Tags		estudiantes-vinculacion
//	@Produce	json
//	@Param		id	path		integer	true	"Id del estudiante"
//	@Success	200	{object}	response.Envelope
//	@Failure	404	{object}	response.Envelope
//	@Router		/estudiantes-vinculacion/{id} [get]
func GetEstudiante(svc *services.EstudianteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id", "EstudianteVinculacion", "Estudiante no encontrado")
		if err != nil {
			return respondError(c, err)
		}
		estudiante, err := svc.Obtener(id)
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c, "Estudiante encontrado", newEstudianteResponse(estudiante))
	}
}

// UpdateEstudiante returns a handler for PUT and PATCH
// /api/v1/estudiantes-vinculacion/:id.
//
//	@Summary	Actualizar estudiante de vinculación
//	@Tags		estudiantes-vinculacion
//	@Accept		json
//	@Produce	json
//	@Param		id			path		integer								true	"Id del estudiante"
//	@Param		estudiante	body		services.ActualizarEstudianteInput	true	"Campos a actualizar"
//	@Success	200			{object}	response.Envelope
//	@Failure	404			{object}	response.Envelope
//	@Router		/estudiantes-vinculacion/{id} [put]
func UpdateEstudiante(svc *services.EstudianteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id", "EstudianteVinculacion", "Estudiante no encontrado")
		if err != nil {
			return respondError(c, err)
		}
		var in services.ActualizarEstudianteInput
		if err := c.BodyParser(&in); err != nil {
			return response.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}
		estudiante, err := svc.Actualizar(id, in)
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c, "Estudiante actualizado exitosamente", newEstudianteResponse(estudiante))
	}
}

// DeleteEstudiante returns a handler for DELETE /api/v1/estudiantes-vinculacion/:id.
// Students have no soft-delete flag; deletes are always hard.
//
//	@Summary	Eliminar estudiante de vinculación
//	@Tags		estudiantes-vinculacion
//	@Produce	json
//	@Param		id	path		integer	true	"Id del estudiante"
//	@Success	200	{object}	response.Envelope
//	@Failure	404	{object}	response.Envelope
//	@Router		/estudiantes-vinculacion/{id} [delete]
func DeleteEstudiante(svc *services.EstudianteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id", "EstudianteVinculacion", "Estudiante no encontrado")
		if err != nil {
			return respondError(c, err)
		}
		if err := svc.Eliminar(id); err != nil {
			return respondError(c, err)
		}
		return response.Success(c, "Estudiante eliminado exitosamente", nil)
	}
}
