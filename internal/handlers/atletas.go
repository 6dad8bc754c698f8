package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/dfmorales/basketball-api/internal/models"
	"github.com/dfmorales/basketball-api/internal/repository"
	"github.com/dfmorales/basketball-api/internal/response"
	"github.com/dfmorales/basketball-api/internal/services"
)

// AtletaResponse is the wire shape of an athlete. The group is serialized as
// its id under "grupo" plus the computed "grupo_nombre".
type AtletaResponse struct {
	ID                    uint    `json:"id"`
	NombreAtleta          string  `json:"nombre_atleta"`
	ApellidoAtleta        string  `json:"apellido_atleta"`
	DNI                   string  `json:"dni"`
	FechaNacimiento       string  `json:"fecha_nacimiento"`
	Edad                  int     `json:"edad"`
	Sexo                  string  `json:"sexo"`
	Email                 *string `json:"email"`
	Telefono              *string `json:"telefono"`
	TipoSangre            *string `json:"tipo_sangre"`
	DatosRepresentante    *string `json:"datos_representante"`
	TelefonoRepresentante *string `json:"telefono_representante"`
	Grupo                 *uint   `json:"grupo"`
	GrupoNombre           *string `json:"grupo_nombre"`
	Estado                bool    `json:"estado"`
}

func newAtletaResponse(a *models.Atleta) AtletaResponse {
	resp := AtletaResponse{
		ID:                    a.ID,
		NombreAtleta:          a.NombreAtleta,
		ApellidoAtleta:        a.ApellidoAtleta,
		DNI:                   a.DNI,
		FechaNacimiento:       a.FechaNacimiento.String(),
		Edad:                  a.Edad,
		Sexo:                  a.Sexo,
		Email:                 a.Email,
		Telefono:              a.Telefono,
		TipoSangre:            a.TipoSangre,
		DatosRepresentante:    a.DatosRepresentante,
		TelefonoRepresentante: a.TelefonoRepresentante,
		Grupo:                 a.GrupoID,
		Estado:                a.Estado,
	}
	if a.Grupo != nil {
		resp.GrupoNombre = &a.Grupo.Nombre
	}
	return resp
}

func newAtletaResponses(atletas []models.Atleta) []AtletaResponse {
	out := make([]AtletaResponse, 0, len(atletas))
	for i := range atletas {
		out = append(out, newAtletaResponse(&atletas[i]))
	}
	return out
}

// GetAtletas returns a handler for GET /api/v1/atletas.
//
//	@Summary	Listar atletas
//	@Tags		atletas
//	@Produce	json
//	@Param		nombre		query	string	false	"Subcadena del nombre"
//	@Param		apellido	query	string	false	"Subcadena del apellido"
//	@Param		grupo_id	query	integer	false	"Id del grupo"
//	@Param		sexo		query	string	false	"Sexo exacto"
//	@Param		edad_min	query	integer	false	"Edad mínima"
//	@Param		edad_max	query	integer	false	"Edad máxima"
//	@Param		activos		query	boolean	false	"Solo activos (por defecto true)"
//	@Param		page		query	integer	false	"Página (activa la paginación)"
//	@Param		page_size	query	integer	false	"Tamaño de página"
//	@Success	200	{object}	response.Envelope
//	@Router		/atletas [get]
func GetAtletas(svc *services.AtletaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		busqueda := repository.BusquedaAtletas{
			Nombre:   c.Query("nombre"),
			Apellido: c.Query("apellido"),
			GrupoID:  queryUint(c, "grupo_id"),
			Sexo:     c.Query("sexo"),
			EdadMin:  queryInt(c, "edad_min"),
			EdadMax:  queryInt(c, "edad_max"),
		}
		activos := queryBool(c, "activos", true)

		if page, pageSize, ok := paging(c); ok {
			pagina, err := svc.ListarPagina(busqueda, activos, page, pageSize)
			if err != nil {
				return respondError(c, err)
			}
			return response.Paginated(c,
				fmt.Sprintf("Se encontraron %d atletas", pagina.TotalItems),
				newAtletaResponses(pagina.Data),
				pagina.CurrentPage, pagina.TotalPages, pagina.TotalItems)
		}

		atletas, err := svc.Listar(busqueda, activos)
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c,
			fmt.Sprintf("Se encontraron %d atletas", len(atletas)),
			newAtletaResponses(atletas))
	}
}

// CreateAtleta returns a handler for POST /api/v1/atletas.
//
//	@Summary	Crear atleta
//	@Tags		atletas
//	@Accept		json
//	@Produce	json
//	@Param		atleta	body		services.CrearAtletaInput	true	"Datos del atleta"
//	@Success	201		{object}	response.Envelope
//	@Failure	422		{object}	response.Envelope
//	@Router		/atletas [post]
func CreateAtleta(svc *services.AtletaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in services.CrearAtletaInput
		if err := c.BodyParser(&in); err != nil {
			return response.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}
		atleta, err := svc.Crear(in)
		if err != nil {
			return respondError(c, err)
		}
		return response.Created(c, "Atleta creado exitosamente", newAtletaResponse(atleta))
	}
}

// GetAtleta returns a handler for GET /api/v1/atletas/:id.
//
//	@Summary	Obtener atleta
//	@Tags		atletas
//	@Produce	json
//	@Param		id	path		integer	true	"Id del atleta"
//	@Success	200	{object}	response.Envelope
//	@Failure	404	{object}	response.Envelope
//	@Router		/atletas/{id} [get]
func GetAtleta(svc *services.AtletaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id", "Atleta", "Atleta no encontrado")
		if err != nil {
			return respondError(c, err)
		}
		atleta, err := svc.Obtener(id)
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c, "Atleta encontrado", newAtletaResponse(atleta))
	}
}

// UpdateAtleta returns a handler for PUT and PATCH /api/v1/atletas/:id.
// Both verbs apply partial updates: absent fields stay untouched and derived
// fields are recomputed server-side.
//
//	@Summary	Actualizar atleta
//	@Tags		atletas
//	@Accept		json
//	@Produce	json
//	@Param		id		path		integer								true	"Id del atleta"
//	@Param		atleta	body		services.ActualizarAtletaInput	true	"Campos a actualizar"
//	@Success	200		{object}	response.Envelope
//	@Failure	404		{object}	response.Envelope
//	@Router		/atletas/{id} [put]
func UpdateAtleta(svc *services.AtletaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id", "Atleta", "Atleta no encontrado")
		if err != nil {
			return respondError(c, err)
		}
		var in services.ActualizarAtletaInput
		if err := c.BodyParser(&in); err != nil {
			return response.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}
		atleta, err := svc.Actualizar(id, in)
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c, "Atleta actualizado exitosamente", newAtletaResponse(atleta))
	}
}

// DeleteAtleta returns a handler for DELETE /api/v1/atletas/:id.
// ?soft=false removes the row; the default flips estado off.
//
//	@Summary	Eliminar atleta
//	@Tags		atletas
//	@Produce	json
//	@Param		id		path	integer	true	"Id del atleta"
//	@Param		soft	query	boolean	false	"Borrado lógico (por defecto true)"
//	@Success	200	{object}	response.Envelope
//	@Failure	404	{object}	response.Envelope
//	@Router		/atletas/{id} [delete]
func DeleteAtleta(svc *services.AtletaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id", "Atleta", "Atleta no encontrado")
		if err != nil {
			return respondError(c, err)
		}
		if err := svc.Eliminar(id, queryBool(c, "soft", true)); err != nil {
			return respondError(c, err)
		}
		return response.Success(c, "Atleta eliminado exitosamente", nil)
	}
}

// GetAtletasSinGrupo returns a handler for GET /api/v1/atletas/sin-grupo.
//
//	@Summary	Listar atletas sin grupo asignado
//	@Tags		atletas
//	@Produce	json
//	@Success	200	{object}	response.Envelope
//	@Router		/atletas/sin-grupo [get]
func GetAtletasSinGrupo(svc *services.AtletaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		atletas, err := svc.SinGrupo()
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c,
			fmt.Sprintf("Se encontraron %d atletas sin grupo", len(atletas)),
			newAtletaResponses(atletas))
	}
}

// RestaurarAtleta returns a handler for POST /api/v1/atletas/:id/restaurar.
// Undoes a soft delete.
//
//	@Summary	Restaurar atleta
//	@Tags		atletas
//	@Produce	json
//	@Param		id	path		integer	true	"Id del atleta"
//	@Success	200	{object}	response.Envelope
//	@Failure	404	{object}	response.Envelope
//	@Router		/atletas/{id}/restaurar [post]
func RestaurarAtleta(svc *services.AtletaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id", "Atleta", "Atleta no encontrado")
		if err != nil {
			return respondError(c, err)
		}
		atleta, err := svc.Restaurar(id)
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c, "Atleta restaurado exitosamente", newAtletaResponse(atleta))
	}
}

// GetAtletaPorDNI returns a handler for GET /api/v1/atletas/dni/:dni.
//
//	@Summary	Buscar atleta por DNI
//	@Tags		atletas
//	@Produce	json
//	@Param		dni	path		string	true	"Documento del atleta"
//	@Success	200	{object}	response.Envelope
//	@Failure	404	{object}	response.Envelope
//	@Router		/atletas/dni/{dni} [get]
func GetAtletaPorDNI(svc *services.AtletaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		atleta, err := svc.ObtenerPorDNI(c.Params("dni"))
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c, "Atleta encontrado", newAtletaResponse(atleta))
	}
}

// AsignarGrupoAtleta returns a handler for
// POST /api/v1/atletas/:id/asignar-grupo/:grupoId. The group must accept the
// athlete's age.
//
//	@Summary	Asignar atleta a un grupo
//	@Tags		atletas
//	@Produce	json
//	@Param		id		path		integer	true	"Id del atleta"
//	@Param		grupoId	path		integer	true	"Id del grupo"
//	@Success	200		{object}	response.Envelope
//	@Failure	400		{object}	response.Envelope
//	@Failure	404		{object}	response.Envelope
//	@Router		/atletas/{id}/asignar-grupo/{grupoId} [post]
func AsignarGrupoAtleta(svc *services.AtletaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id", "Atleta", "Atleta no encontrado")
		if err != nil {
			return respondError(c, err)
		}
		grupoID, err := paramID(c, "grupoId", "Grupo", "Grupo no encontrado")
		if err != nil {
			return respondError(c, err)
		}
		atleta, err := svc.AsignarGrupo(id, grupoID)
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c, "Atleta asignado al grupo exitosamente", newAtletaResponse(atleta))
	}
}
