package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/dfmorales/basketball-api/internal/models"
	"github.com/dfmorales/basketball-api/internal/response"
	"github.com/dfmorales/basketball-api/internal/services"
)

// InscripcionResponse is the wire shape of an enrollment. The athlete is
// serialized as its id under "atleta" plus the computed "atleta_nombre".
type InscripcionResponse struct {
	ID               uint    `json:"id"`
	Atleta           uint    `json:"atleta"`
	AtletaNombre     *string `json:"atleta_nombre"`
	FechaInscripcion string  `json:"fecha_inscripcion"`
	TipoInscripcion  string  `json:"tipo_inscripcion"`
	FechaCreacion    string  `json:"fecha_creacion"`
	Habilitada       bool    `json:"habilitada"`
}

func newInscripcionResponse(i *models.Inscripcion) InscripcionResponse {
	resp := InscripcionResponse{
		ID:               i.ID,
		Atleta:           i.AtletaID,
		FechaInscripcion: i.FechaInscripcion.String(),
		TipoInscripcion:  string(i.TipoInscripcion),
		FechaCreacion:    i.FechaCreacion.String(),
		Habilitada:       i.Habilitada,
	}
	if i.Atleta != nil {
		nombre := i.Atleta.NombreCompleto()
		resp.AtletaNombre = &nombre
	}
	return resp
}

func newInscripcionResponses(inscripciones []models.Inscripcion) []InscripcionResponse {
	out := make([]InscripcionResponse, 0, len(inscripciones))
	for i := range inscripciones {
		out = append(out, newInscripcionResponse(&inscripciones[i]))
	}
	return out
}

// GetInscripciones returns a handler for GET /api/v1/inscripciones.
//
//	@Summary	Listar inscripciones
//	@Tags		inscripciones
//	@Produce	json
//	@Param		habilitada	query	boolean	false	"Filtro por estado de aprobación"
//	@Param		tipo		query	string	false	"NUEVO, RENOVACION o TRANSFERENCIA"
//	@Param		atleta_id	query	integer	false	"Id del atleta"
//	@Param		fecha_desde	query	string	false	"Fecha mínima (YYYY-MM-DD)"
//	@Param		fecha_hasta	query	string	false	"Fecha máxima (YYYY-MM-DD)"
//	@Param		page		query	integer	false	"Página (activa la paginación)"
//	@Param		page_size	query	integer	false	"Tamaño de página"
//	@Success	200	{object}	response.Envelope
//	@Router		/inscripciones [get]
func GetInscripciones(svc *services.InscripcionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filtros := services.FiltrosInscripcion{
			Habilitada: queryBoolPtr(c, "habilitada"),
			Tipo:       c.Query("tipo"),
			AtletaID:   queryUint(c, "atleta_id"),
			FechaDesde: c.Query("fecha_desde"),
			FechaHasta: c.Query("fecha_hasta"),
		}

		if page, pageSize, ok := paging(c); ok {
			pagina, err := svc.ListarPagina(filtros, page, pageSize)
			if err != nil {
				return respondError(c, err)
			}
			return response.Paginated(c,
				fmt.Sprintf("Se encontraron %d inscripciones", pagina.TotalItems),
				newInscripcionResponses(pagina.Data),
				pagina.CurrentPage, pagina.TotalPages, pagina.TotalItems)
		}

		inscripciones, err := svc.Listar(filtros)
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c,
			fmt.Sprintf("Se encontraron %d inscripciones", len(inscripciones)),
			newInscripcionResponses(inscripciones))
	}
}

// CreateInscripcion returns a handler for POST /api/v1/inscripciones.
// New enrollments always start pending approval.
//
//	@Summary	Crear inscripción
//	@Tags		inscripciones
//	@Accept		json
//	@Produce	json
//	@Param		inscripcion	body		services.CrearInscripcionInput	true	"Datos de la inscripción"
//	@Success	201			{object}	response.Envelope
//	@Failure	404			{object}	response.Envelope
//	@Failure	422			{object}	response.Envelope
//	@Router		/inscripciones [post]
func CreateInscripcion(svc *services.InscripcionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in services.CrearInscripcionInput
		if err := c.BodyParser(&in); err != nil {
			return response.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}
		ins, err := svc.Crear(in)
		if err != nil {
			return respondError(c, err)
		}
		return response.Created(c, "Inscripción creada exitosamente", newInscripcionResponse(ins))
	}
}

// GetInscripcion returns a handler for GET /api/v1/inscripciones/:id.
//
//	@Summary	Obtener inscripción
//	@Tags		inscripciones
//	@Produce	json
//	@Param		id	path		integer	true	"Id de la inscripción"
//	@Success	200	{object}	response.Envelope
//	@Failure	404	{object}	response.Envelope
//	@Router		/inscripciones/{id} [get]
func GetInscripcion(svc *services.InscripcionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id", "Inscripcion", "Inscripción no encontrada")
		if err != nil {
			return respondError(c, err)
		}
		ins, err := svc.Obtener(id)
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c, "Inscripción encontrada", newInscripcionResponse(ins))
	}
}

// UpdateInscripcion returns a handler for PUT and PATCH /api/v1/inscripciones/:id.
//
//	@Summary	Actualizar inscripción
//	@Tags		inscripciones
//	@Accept		json
//	@Produce	json
//	@Param		id			path		integer								true	"Id de la inscripción"
//	@Param		inscripcion	body		services.ActualizarInscripcionInput	true	"Campos a actualizar"
//	@Success	200			{object}	response.Envelope
//	@Failure	404			{object}	response.Envelope
//	@Router		/inscripciones/{id} [put]
func UpdateInscripcion(svc *services.InscripcionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id", "Inscripcion", "Inscripción no encontrada")
		if err != nil {
			return respondError(c, err)
		}
		var in services.ActualizarInscripcionInput
		if err := c.BodyParser(&in); err != nil {
			return response.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}
		ins, err := svc.Actualizar(id, in)
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c, "Inscripción actualizada exitosamente", newInscripcionResponse(ins))
	}
}

// DeleteInscripcion returns a handler for DELETE /api/v1/inscripciones/:id.
// Enrollment deletes are always hard; the soft path is deshabilitar.
//
//	@Summary	Eliminar inscripción
//	@Tags		inscripciones
//	@Produce	json
//	@Param		id	path		integer	true	"Id de la inscripción"
//	@Success	200	{object}	response.Envelope
//	@Failure	404	{object}	response.Envelope
//	@Router		/inscripciones/{id} [delete]
func DeleteInscripcion(svc *services.InscripcionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id", "Inscripcion", "Inscripción no encontrada")
		if err != nil {
			return respondError(c, err)
		}
		if err := svc.Eliminar(id); err != nil {
			return respondError(c, err)
		}
		return response.Success(c, "Inscripción eliminada exitosamente", nil)
	}
}

// HabilitarInscripcion returns a handler for POST /api/v1/inscripciones/:id/habilitar.
//
//	@Summary	Habilitar inscripción
//	@Tags		inscripciones
//	@Produce	json
//	@Param		id	path		integer	true	"Id de la inscripción"
//	@Success	200	{object}	response.Envelope
//	@Failure	404	{object}	response.Envelope
//	@Router		/inscripciones/{id}/habilitar [post]
func HabilitarInscripcion(svc *services.InscripcionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id", "Inscripcion", "Inscripción no encontrada")
		if err != nil {
			return respondError(c, err)
		}
		ins, err := svc.Habilitar(id)
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c, "Inscripción habilitada exitosamente", newInscripcionResponse(ins))
	}
}

// DeshabilitarInscripcion returns a handler for POST /api/v1/inscripciones/:id/deshabilitar.
//
//	@Summary	Deshabilitar inscripción
//	@Tags		inscripciones
//	@Produce	json
//	@Param		id	path		integer	true	"Id de la inscripción"
//	@Success	200	{object}	response.Envelope
//	@Failure	404	{object}	response.Envelope
//	@Router		/inscripciones/{id}/deshabilitar [post]
func DeshabilitarInscripcion(svc *services.InscripcionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id", "Inscripcion", "Inscripción no encontrada")
		if err != nil {
			return respondError(c, err)
		}
		ins, err := svc.Deshabilitar(id)
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c, "Inscripción deshabilitada exitosamente", newInscripcionResponse(ins))
	}
}

// GetInscripcionesAtleta returns a handler for
// GET /api/v1/inscripciones/atleta/:atletaId.
//
//	@Summary	Inscripciones de un atleta
//	@Tags		inscripciones
//	@Produce	json
//	@Param		atletaId	path		integer	true	"Id del atleta"
//	@Success	200			{object}	response.Envelope
//	@Failure	404			{object}	response.Envelope
//	@Router		/inscripciones/atleta/{atletaId} [get]
func GetInscripcionesAtleta(svc *services.InscripcionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		atletaID, err := paramID(c, "atletaId", "Atleta", "Atleta no encontrado")
		if err != nil {
			return respondError(c, err)
		}
		inscripciones, err := svc.PorAtleta(atletaID)
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c,
			fmt.Sprintf("Se encontraron %d inscripciones", len(inscripciones)),
			newInscripcionResponses(inscripciones))
	}
}
