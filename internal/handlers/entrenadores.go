package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/dfmorales/basketball-api/internal/models"
	"github.com/dfmorales/basketball-api/internal/response"
	"github.com/dfmorales/basketball-api/internal/services"
)

// GrupoAsignadoResponse is the compact group shape embedded in coach
// responses under "grupos_asignados".
type GrupoAsignadoResponse struct {
	ID        uint   `json:"id"`
	Nombre    string `json:"nombre"`
	Categoria string `json:"categoria"`
}

// EntrenadorResponse is the wire shape of a coach: the user as its id under
// "usuario" plus the computed "usuario_nombre", the assigned group ids under
// "grupos" and their compact objects under "grupos_asignados".
type EntrenadorResponse struct {
	ID              uint                    `json:"id"`
	Usuario         uint                    `json:"usuario"`
	UsuarioNombre   *string                 `json:"usuario_nombre"`
	Especialidad    string                  `json:"especialidad"`
	ClubAsignado    string                  `json:"club_asignado"`
	Grupos          []uint                  `json:"grupos"`
	GruposAsignados []GrupoAsignadoResponse `json:"grupos_asignados"`
}

func newEntrenadorResponse(e *models.Entrenador) EntrenadorResponse {
	resp := EntrenadorResponse{
		ID:              e.ID,
		Usuario:         e.UsuarioID,
		Especialidad:    e.Especialidad,
		ClubAsignado:    e.ClubAsignado,
		Grupos:          make([]uint, 0, len(e.Grupos)),
		GruposAsignados: make([]GrupoAsignadoResponse, 0, len(e.Grupos)),
	}
	if e.Usuario != nil {
		nombre := e.Usuario.Nombre + " " + e.Usuario.Apellido
		resp.UsuarioNombre = &nombre
	}
	for _, g := range e.Grupos {
		resp.Grupos = append(resp.Grupos, g.ID)
		resp.GruposAsignados = append(resp.GruposAsignados, GrupoAsignadoResponse{
			ID:        g.ID,
			Nombre:    g.Nombre,
			Categoria: g.Categoria,
		})
	}
	return resp
}

func newEntrenadorResponses(entrenadores []models.Entrenador) []EntrenadorResponse {
	out := make([]EntrenadorResponse, 0, len(entrenadores))
	for i := range entrenadores {
		out = append(out, newEntrenadorResponse(&entrenadores[i]))
	}
	return out
}

// GetEntrenadores returns a handler for GET /api/v1/entrenadores.
//
//	@Summary	Listar entrenadores
//	@Tags		entrenadores
//	@Produce	json
//	@Param		usuario_id		query	integer	false	"Id del usuario"
//	@Param		especialidad	query	string	false	"Subcadena de la especialidad"
//	@Param		club			query	string	false	"Club exacto"
//	@Param		nombre			query	string	false	"Subcadena del nombre del usuario"
//	@Success	200	{object}	response.Envelope
//	@Router		/entrenadores [get]
func GetEntrenadores(svc *services.EntrenadorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filtros := services.FiltrosEntrenador{
			UsuarioID:    queryUint(c, "usuario_id"),
			Especialidad: c.Query("especialidad"),
			Club:         c.Query("club"),
			Nombre:       c.Query("nombre"),
		}
		entrenadores, err := svc.Listar(filtros)
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c,
			fmt.Sprintf("Se encontraron %d entrenadores", len(entrenadores)),
			newEntrenadorResponses(entrenadores))
	}
}

// GetEntrenadorPorUsuario returns a handler for
// GET /api/v1/entrenadores/usuario/:usuarioId.
//
//	@Summary	Obtener entrenador por usuario
//	@Tags		entrenadores
//	@Produce	json
//	@Param		usuarioId	path		integer	true	"Id del usuario"
//	@Success	200			{object}	response.Envelope
//	@Failure	404			{object}	response.Envelope
//	@Router		/entrenadores/usuario/{usuarioId} [get]
func GetEntrenadorPorUsuario(svc *services.EntrenadorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		usuarioID, err := paramID(c, "usuarioId", "Entrenador", "Entrenador no encontrado para este usuario")
		if err != nil {
			return respondError(c, err)
		}
		entrenador, err := svc.ObtenerPorUsuario(usuarioID)
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c, "Entrenador encontrado", newEntrenadorResponse(entrenador))
	}
}

// CreateEntrenador returns a handler for POST /api/v1/entrenadores.
//
//	@Summary	Crear entrenador
//	@Tags		entrenadores
//	@Accept		json
//	@Produce	json
//	@Param		entrenador	body		services.CrearEntrenadorInput	true	"Datos del entrenador"
//	@Success	201			{object}	response.Envelope
//	@Failure	404			{object}	response.Envelope
//	@Failure	422			{object}	response.Envelope
//	@Router		/entrenadores [post]
func CreateEntrenador(svc *services.EntrenadorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in services.CrearEntrenadorInput
		if err := c.BodyParser(&in); err != nil {
			return response.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}
		entrenador, err := svc.Crear(in)
		if err != nil {
			return respondError(c, err)
		}
		return response.Created(c, "Entrenador creado exitosamente", newEntrenadorResponse(entrenador))
	}
}

// GetEntrenador returns a handler for GET /api/v1/entrenadores/:id.
//
//	@Summary	Obtener entrenador
//	@Tags		entrenadores
//	@Produce	json
//	@Param		id	path		integer	true	"Id del entrenador"
//	@Success	200	{object}	response.Envelope
//	@Failure	404	{object}	response.Envelope
//	@Router		/entrenadores/{id} [get]
func GetEntrenador(svc *services.EntrenadorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id", "Entrenador", "Entrenador no encontrado")
		if err != nil {
			return respondError(c, err)
		}
		entrenador, err := svc.Obtener(id)
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c, "Entrenador encontrado", newEntrenadorResponse(entrenador))
	}
}

// UpdateEntrenador returns a handler for PUT and PATCH /api/v1/entrenadores/:id.
//
//	@Summary	Actualizar entrenador
//	@Tags		entrenadores
//	@Accept		json
//	@Produce	json
//	@Param		id			path		integer								true	"Id del entrenador"
//	@Param		entrenador	body		services.ActualizarEntrenadorInput	true	"Campos a actualizar"
//	@Success	200			{object}	response.Envelope
//	@Failure	404			{object}	response.Envelope
//	@Router		/entrenadores/{id} [put]
func UpdateEntrenador(svc *services.EntrenadorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id", "Entrenador", "Entrenador no encontrado")
		if err != nil {
			return respondError(c, err)
		}
		var in services.ActualizarEntrenadorInput
		if err := c.BodyParser(&in); err != nil {
			return response.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}
		entrenador, err := svc.Actualizar(id, in)
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c, "Entrenador actualizado exitosamente", newEntrenadorResponse(entrenador))
	}
}

// DeleteEntrenador returns a handler for DELETE /api/v1/entrenadores/:id.
// Coaches have no soft-delete flag; deletes are always hard.
//
//	@Summary	Eliminar entrenador
//	@Tags		entrenadores
//	@Produce	json
//	@Param		id	path		integer	true	"Id del entrenador"
//	@Success	200	{object}	response.Envelope
//	@Failure	404	{object}	response.Envelope
//	@Router		/entrenadores/{id} [delete]
func DeleteEntrenador(svc *services.EntrenadorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id", "Entrenador", "Entrenador no encontrado")
		if err != nil {
			return respondError(c, err)
		}
		if err := svc.Eliminar(id); err != nil {
			return respondError(c, err)
		}
		return response.Success(c, "Entrenador eliminado exitosamente", nil)
	}
}

// GetGruposEntrenador returns a handler for GET /api/v1/entrenadores/:id/grupos.
//
//	@Summary	Grupos asignados a un entrenador
//	@Tags		entrenadores
//	@Produce	json
//	@Param		id	path		integer	true	"Id del entrenador"
//	@Success	200	{object}	response.Envelope
//	@Failure	404	{object}	response.Envelope
//	@Router		/entrenadores/{id}/grupos [get]
func GetGruposEntrenador(svc *services.EntrenadorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id", "Entrenador", "Entrenador no encontrado")
		if err != nil {
			return respondError(c, err)
		}
		grupos, err := svc.Grupos(id)
		if err != nil {
			return respondError(c, err)
		}
		out := make([]GrupoAsignadoResponse, 0, len(grupos))
		for _, g := range grupos {
			out = append(out, GrupoAsignadoResponse{ID: g.ID, Nombre: g.Nombre, Categoria: g.Categoria})
		}
		return response.Success(c, fmt.Sprintf("Se encontraron %d grupos", len(out)), out)
	}
}

// AsignarGrupoEntrenador returns a handler for
// POST /api/v1/entrenadores/:id/asignar-grupo/:grupoId.
//
//	@Summary	Asignar grupo a un entrenador
//	@Tags		entrenadores
//	@Produce	json
//	@Param		id		path		integer	true	"Id del entrenador"
//	@Param		grupoId	path		integer	true	"Id del grupo"
//	@Success	200		{object}	response.Envelope
//	@Failure	404		{object}	response.Envelope
//	@Router		/entrenadores/{id}/asignar-grupo/{grupoId} [post]
func AsignarGrupoEntrenador(svc *services.EntrenadorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id", "Entrenador", "Entrenador no encontrado")
		if err != nil {
			return respondError(c, err)
		}
		grupoID, err := paramID(c, "grupoId", "Grupo", "Grupo no encontrado")
		if err != nil {
			return respondError(c, err)
		}
		entrenador, err := svc.AsignarGrupo(id, grupoID)
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c, "Grupo asignado al entrenador exitosamente", newEntrenadorResponse(entrenador))
	}
}

// RemoverGrupoEntrenador returns a handler for
// POST /api/v1/entrenadores/:id/remover-grupo/:grupoId.
//
//	@Summary	Remover grupo de un entrenador
//	@Tags		entrenadores
//	@Produce	json
//	@Param		id		path		integer	true	"Id del entrenador"
//	@Param		grupoId	path		integer	true	"Id del grupo"
//	@Success	200		{object}	response.Envelope
//	@Failure	404		{object}	response.Envelope
//	@Router		/entrenadores/{id}/remover-grupo/{grupoId} [post]
func RemoverGrupoEntrenador(svc *services.EntrenadorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id", "Entrenador", "Entrenador no encontrado")
		if err != nil {
			return respondError(c, err)
		}
		grupoID, err := paramID(c, "grupoId", "Grupo", "Grupo no encontrado")
		if err != nil {
			return respondError(c, err)
		}
		entrenador, err := svc.RemoverGrupo(id, grupoID)
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c, "Grupo removido del entrenador exitosamente", newEntrenadorResponse(entrenador))
	}
}
