package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/dfmorales/basketball-api/internal/models"
	"github.com/dfmorales/basketball-api/internal/response"
	"github.com/dfmorales/basketball-api/internal/services"
)

// GrupoResponse is the wire shape of a group, with the computed
// "cantidad_atletas" the clients chart group occupancy from.
type GrupoResponse struct {
	ID              uint   `json:"id"`
	Nombre          string `json:"nombre"`
	RangoEdadMinima int    `json:"rango_edad_minima"`
	RangoEdadMaxima int    `json:"rango_edad_maxima"`
	Categoria       string `json:"categoria"`
	FechaCreacion   string `json:"fecha_creacion"`
	CantidadAtletas int64  `json:"cantidad_atletas"`
	Estado          bool   `json:"estado"`
}

func newGrupoResponse(g *models.GrupoAtleta, cantidad int64) GrupoResponse {
	return GrupoResponse{
		ID:              g.ID,
		Nombre:          g.Nombre,
		RangoEdadMinima: g.RangoEdadMinima,
		RangoEdadMaxima: g.RangoEdadMaxima,
		Categoria:       g.Categoria,
		FechaCreacion:   g.FechaCreacion.String(),
		CantidadAtletas: cantidad,
		Estado:          g.Estado,
	}
}

// newGrupoResponses counts athletes per group one query at a time, the same
// way the list endpoints of this API compute their other per-row fields.
func newGrupoResponses(svc *services.GrupoService, grupos []models.GrupoAtleta) ([]GrupoResponse, error) {
	out := make([]GrupoResponse, 0, len(grupos))
	for i := range grupos {
		cantidad, err := svc.CantidadAtletas(grupos[i].ID)
		if err != nil {
			return nil, err
		}
		out = append(out, newGrupoResponse(&grupos[i], cantidad))
	}
	return out, nil
}

// GetGrupos returns a handler for GET /api/v1/grupos.
//
//	@Summary	Listar grupos
//	@Tags		grupos
//	@Produce	json
//	@Param		categoria	query	string	false	"Categoría exacta"
//	@Param		activos		query	boolean	false	"Solo activos (por defecto true)"
//	@Param		page		query	integer	false	"Página (activa la paginación)"
//	@Param		page_size	query	integer	false	"Tamaño de página"
//	@Success	200	{object}	response.Envelope
//	@Router		/grupos [get]
func GetGrupos(svc *services.GrupoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		categoria := c.Query("categoria")
		activos := queryBool(c, "activos", true)

		if page, pageSize, ok := paging(c); ok {
			pagina, err := svc.ListarPagina(categoria, activos, page, pageSize)
			if err != nil {
				return respondError(c, err)
			}
			respuestas, err := newGrupoResponses(svc, pagina.Data)
			if err != nil {
				return respondError(c, err)
			}
			return response.Paginated(c,
				fmt.Sprintf("Se encontraron %d grupos", pagina.TotalItems),
				respuestas,
				pagina.CurrentPage, pagina.TotalPages, pagina.TotalItems)
		}

		grupos, err := svc.Listar(categoria, activos)
		if err != nil {
			return respondError(c, err)
		}
		respuestas, err := newGrupoResponses(svc, grupos)
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c,
			fmt.Sprintf("Se encontraron %d grupos", len(grupos)),
			respuestas)
	}
}

// CreateGrupo returns a handler for POST /api/v1/grupos.
//
//	@Summary	Crear grupo
//	@Tags		grupos
//	@Accept		json
//	@Produce	json
//	@Param		grupo	body		services.CrearGrupoInput	true	"Datos del grupo"
//	@Success	201		{object}	response.Envelope
//	@Failure	422		{object}	response.Envelope
//	@Router		/grupos [post]
func CreateGrupo(svc *services.GrupoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in services.CrearGrupoInput
		if err := c.BodyParser(&in); err != nil {
			return response.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}
		grupo, err := svc.Crear(in)
		if err != nil {
			return respondError(c, err)
		}
		return response.Created(c, "Grupo de atletas creado exitosamente", newGrupoResponse(grupo, 0))
	}
}

// GetGrupo returns a handler for GET /api/v1/grupos/:id.
//
//	@Summary	Obtener grupo
//	@Tags		grupos
//	@Produce	json
//	@Param		id	path		integer	true	"Id del grupo"
//	@Success	200	{object}	response.Envelope
//	@Failure	404	{object}	response.Envelope
//	@Router		/grupos/{id} [get]
func GetGrupo(svc *services.GrupoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id", "Grupo", "Grupo no encontrado")
		if err != nil {
			return respondError(c, err)
		}
		grupo, err := svc.Obtener(id)
		if err != nil {
			return respondError(c, err)
		}
		cantidad, err := svc.CantidadAtletas(id)
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c, "Grupo encontrado", newGrupoResponse(grupo, cantidad))
	}
}

// UpdateGrupo returns a handler for PUT and PATCH /api/v1/grupos/:id.
//
//	@Summary	Actualizar grupo
//	@Tags		grupos
//	@Accept		json
//	@Produce	json
//	@Param		id		path		integer							true	"Id del grupo"
//	@Param		grupo	body		services.ActualizarGrupoInput	true	"Campos a actualizar"
//	@Success	200		{object}	response.Envelope
//	@Failure	404		{object}	response.Envelope
//	@Router		/grupos/{id} [put]
func UpdateGrupo(svc *services.GrupoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id", "Grupo", "Grupo no encontrado")
		if err != nil {
			return respondError(c, err)
		}
		var in services.ActualizarGrupoInput
		if err := c.BodyParser(&in); err != nil {
			return response.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}
		grupo, err := svc.Actualizar(id, in)
		if err != nil {
			return respondError(c, err)
		}
		cantidad, err := svc.CantidadAtletas(id)
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c, "Grupo actualizado exitosamente", newGrupoResponse(grupo, cantidad))
	}
}

// DeleteGrupo returns a handler for DELETE /api/v1/grupos/:id.
//
//	@Summary	Eliminar grupo
//	@Tags		grupos
//	@Produce	json
//	@Param		id		path	integer	true	"Id del grupo"
//	@Param		soft	query	boolean	false	"Borrado lógico (por defecto true)"
//	@Success	200	{object}	response.Envelope
//	@Failure	404	{object}	response.Envelope
//	@Router		/grupos/{id} [delete]
func DeleteGrupo(svc *services.GrupoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id", "Grupo", "Grupo no encontrado")
		if err != nil {
			return respondError(c, err)
		}
		if err := svc.Eliminar(id, queryBool(c, "soft", true)); err != nil {
			return respondError(c, err)
		}
		return response.Success(c, "Grupo eliminado exitosamente", nil)
	}
}

// GetAtletasGrupo returns a handler for GET /api/v1/grupos/:id/atletas.
//
//	@Summary	Listar atletas de un grupo
//	@Tags		grupos
//	@Produce	json
//	@Param		id	path		integer	true	"Id del grupo"
//	@Success	200	{object}	response.Envelope
//	@Failure	404	{object}	response.Envelope
//	@Router		/grupos/{id}/atletas [get]
func GetAtletasGrupo(svc *services.GrupoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id", "Grupo", "Grupo no encontrado")
		if err != nil {
			return respondError(c, err)
		}
		atletas, err := svc.Atletas(id)
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c,
			fmt.Sprintf("Se encontraron %d atletas en el grupo", len(atletas)),
			newAtletaResponses(atletas))
	}
}

// AgregarAtletaGrupo returns a handler for
// POST /api/v1/grupos/:id/agregar-atleta/:atletaId.
//
//	@Summary	Agregar atleta a un grupo
//	@Tags		grupos
//	@Produce	json
//	@Param		id			path		integer	true	"Id del grupo"
//	@Param		atletaId	path		integer	true	"Id del atleta"
//	@Success	200			{object}	response.Envelope
//	@Failure	400			{object}	response.Envelope
//	@Failure	404			{object}	response.Envelope
//	@Router		/grupos/{id}/agregar-atleta/{atletaId} [post]
func AgregarAtletaGrupo(svc *services.GrupoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id", "Grupo", "Grupo no encontrado")
		if err != nil {
			return respondError(c, err)
		}
		atletaID, err := paramID(c, "atletaId", "Atleta", "Atleta no encontrado")
		if err != nil {
			return respondError(c, err)
		}
		atleta, err := svc.AgregarAtleta(id, atletaID)
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c, "Atleta agregado al grupo exitosamente", newAtletaResponse(atleta))
	}
}

// RemoverAtletaGrupo returns a handler for
// POST /api/v1/grupos/remover-atleta/:atletaId. The athlete's current group
// is cleared; no group id is needed.
//
//	@Summary	Remover atleta de su grupo
//	@Tags		grupos
//	@Produce	json
//	@Param		atletaId	path		integer	true	"Id del atleta"
//	@Success	200			{object}	response.Envelope
//	@Failure	404			{object}	response.Envelope
//	@Router		/grupos/remover-atleta/{atletaId} [post]
func RemoverAtletaGrupo(svc *services.GrupoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		atletaID, err := paramID(c, "atletaId", "Atleta", "Atleta no encontrado")
		if err != nil {
			return respondError(c, err)
		}
		if err := svc.RemoverAtleta(atletaID); err != nil {
			return respondError(c, err)
		}
		return response.Success(c, "Atleta removido del grupo exitosamente", nil)
	}
}

// GetConteoAtletas returns a handler for GET /api/v1/grupos/conteo-atletas.
//
//	@Summary	Conteo de atletas por grupo
//	@Tags		grupos
//	@Produce	json
//	@Success	200	{object}	response.Envelope
//	@Router		/grupos/conteo-atletas [get]
func GetConteoAtletas(svc *services.GrupoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		conteo, err := svc.ConteoAtletas()
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c, "Lista obtenida exitosamente", conteo)
	}
}
