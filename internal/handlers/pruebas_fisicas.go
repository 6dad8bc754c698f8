package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/dfmorales/basketball-api/internal/models"
	"github.com/dfmorales/basketball-api/internal/response"
	"github.com/dfmorales/basketball-api/internal/services"
)

// PruebaFisicaResponse is the wire shape of a performance test, with the
// computed "tipo_prueba_display" label.
type PruebaFisicaResponse struct {
	ID                uint    `json:"id"`
	Atleta            uint    `json:"atleta"`
	AtletaNombre      *string `json:"atleta_nombre"`
	FechaRegistro     string  `json:"fecha_registro"`
	TipoPrueba        string  `json:"tipo_prueba"`
	TipoPruebaDisplay string  `json:"tipo_prueba_display"`
	Resultado         float64 `json:"resultado"`
	UnidadMedida      string  `json:"unidad_medida"`
	Observaciones     *string `json:"observaciones"`
	Estado            bool    `json:"estado"`
}

func newPruebaFisicaResponse(p *models.PruebaFisica) PruebaFisicaResponse {
	resp := PruebaFisicaResponse{
		ID:                p.ID,
		Atleta:            p.AtletaID,
		FechaRegistro:     p.FechaRegistro.String(),
		TipoPrueba:        string(p.TipoPrueba),
		TipoPruebaDisplay: models.EtiquetaTipoPrueba(p.TipoPrueba),
		Resultado:         p.Resultado,
		UnidadMedida:      p.UnidadMedida,
		Observaciones:     p.Observaciones,
		Estado:            p.Estado,
	}
	if p.Atleta != nil {
		nombre := p.Atleta.NombreCompleto()
		resp.AtletaNombre = &nombre
	}
	return resp
}

func newPruebaFisicaResponses(pruebas []models.PruebaFisica) []PruebaFisicaResponse {
	out := make([]PruebaFisicaResponse, 0, len(pruebas))
	for i := range pruebas {
		out = append(out, newPruebaFisicaResponse(&pruebas[i]))
	}
	return out
}

// GetPruebasFisicas returns a handler for GET /api/v1/pruebas-fisicas.
//
//	@Summary	Listar pruebas físicas
//	@Tags		pruebas-fisicas
//	@Produce	json
//	@Param		atleta_id		query	integer	false	"Id del atleta"
//	@Param		tipo			query	string	false	"Tipo de prueba"
//	@Param		fecha_desde		query	string	false	"Fecha mínima (YYYY-MM-DD)"
//	@Param		fecha_hasta		query	string	false	"Fecha máxima (YYYY-MM-DD)"
//	@Param		resultado_min	query	number	false	"Resultado mínimo"
//	@Param		resultado_max	query	number	false	"Resultado máximo"
//	@Param		activos			query	boolean	false	"Solo activas (por defecto true)"
//	@Param		page			query	integer	false	"Página (activa la paginación)"
//	@Param		page_size		query	integer	false	"Tamaño de página"
//	@Success	200	{object}	response.Envelope
//	@Router		/pruebas-fisicas [get]
func GetPruebasFisicas(svc *services.PruebaFisicaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filtros := services.FiltrosPruebaFisica{
			AtletaID:     queryUint(c, "atleta_id"),
			Tipo:         c.Query("tipo"),
			FechaDesde:   c.Query("fecha_desde"),
			FechaHasta:   c.Query("fecha_hasta"),
			ResultadoMin: queryFloat(c, "resultado_min"),
			ResultadoMax: queryFloat(c, "resultado_max"),
		}
		activos := queryBool(c, "activos", true)

		if page, pageSize, ok := paging(c); ok {
			pagina, err := svc.ListarPagina(filtros, activos, page, pageSize)
			if err != nil {
				return respondError(c, err)
			}
			return response.Paginated(c,
				fmt.Sprintf("Se encontraron %d pruebas", pagina.TotalItems),
				newPruebaFisicaResponses(pagina.Data),
				pagina.CurrentPage, pagina.TotalPages, pagina.TotalItems)
		}

		pruebas, err := svc.Listar(filtros, activos)
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c,
			fmt.Sprintf("Se encontraron %d pruebas", len(pruebas)),
			newPruebaFisicaResponses(pruebas))
	}
}

// CreatePruebaFisica returns a handler for POST /api/v1/pruebas-fisicas.
//
//	@Summary	Crear prueba física
//	@Tags		pruebas-fisicas
//	@Accept		json
//	@Produce	json
//	@Param		prueba	body		services.CrearPruebaFisicaInput	true	"Datos de la prueba"
//	@Success	201		{object}	response.Envelope
//	@Failure	422		{object}	response.Envelope
//	@Router		/pruebas-fisicas [post]
func CreatePruebaFisica(svc *services.PruebaFisicaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in services.CrearPruebaFisicaInput
		if err := c.BodyParser(&in); err != nil {
			return response.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}
		prueba, err := svc.Crear(in)
		if err != nil {
			return respondError(c, err)
		}
		return response.Created(c, "Prueba física creada exitosamente", newPruebaFisicaResponse(prueba))
	}
}

// GetPruebaFisica returns a handler for GET /api/v1/pruebas-fisicas/:id.
//
//	@Summary	Obtener prueba física
//	@Tags		pruebas-fisicas
//	@Produce	json
//	@Param		id	path		integer	true	"Id de la prueba"
//	@Success	200	{object}	response.Envelope
//	@Failure	404	{object}	response.Envelope
//	@Router		/pruebas-fisicas/{id} [get]
func GetPruebaFisica(svc *services.PruebaFisicaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id", "PruebaFisica", "Prueba no encontrada")
		if err != nil {
			return respondError(c, err)
		}
		prueba, err := svc.Obtener(id)
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c, "Prueba encontrada", newPruebaFisicaResponse(prueba))
	}
}

// UpdatePruebaFisica returns a handler for PUT and PATCH /api/v1/pruebas-fisicas/:id.
//
//	@Summary	Actualizar prueba física
//	@Tags		pruebas-fisicas
//	@Accept		json
//	@Produce	json
//	@Param		id		path		integer									true	"Id de la prueba"
//	@Param		prueba	body		services.ActualizarPruebaFisicaInput	true	"Campos a actualizar"
//	@Success	200		{object}	response.Envelope
//	@Failure	404		{object}	response.Envelope
//	@Router		/pruebas-fisicas/{id} [put]
func UpdatePruebaFisica(svc *services.PruebaFisicaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id", "PruebaFisica", "Prueba no encontrada")
		if err != nil {
			return respondError(c, err)
		}
		var in services.ActualizarPruebaFisicaInput
		if err := c.BodyParser(&in); err != nil {
			return response.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}
		prueba, err := svc.Actualizar(id, in)
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c, "Prueba actualizada exitosamente", newPruebaFisicaResponse(prueba))
	}
}

// DeletePruebaFisica returns a handler for DELETE /api/v1/pruebas-fisicas/:id.
//
//	@Summary	Eliminar prueba física
//	@Tags		pruebas-fisicas
//	@Produce	json
//	@Param		id		path	integer	true	"Id de la prueba"
//	@Param		soft	query	boolean	false	"Borrado lógico (por defecto true)"
//	@Success	200	{object}	response.Envelope
//	@Failure	404	{object}	response.Envelope
//	@Router		/pruebas-fisicas/{id} [delete]
func DeletePruebaFisica(svc *services.PruebaFisicaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id", "PruebaFisica", "Prueba no encontrada")
		if err != nil {
			return respondError(c, err)
		}
		if err := svc.Eliminar(id, queryBool(c, "soft", true)); err != nil {
			return respondError(c, err)
		}
		return response.Success(c, "Prueba eliminada exitosamente", nil)
	}
}

// GetTiposPrueba returns a handler for GET /api/v1/pruebas-fisicas/tipos.
//
//	@Summary	Tipos de prueba disponibles
//	@Tags		pruebas-fisicas
//	@Produce	json
//	@Success	200	{object}	response.Envelope
//	@Router		/pruebas-fisicas/tipos [get]
func GetTiposPrueba(svc *services.PruebaFisicaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return response.Success(c, "Tipos de prueba obtenidos", svc.Tipos())
	}
}

// GetPruebasFisicasAtleta returns a handler for
// GET /api/v1/pruebas-fisicas/atleta/:atletaId.
//
//	@Summary	Pruebas físicas de un atleta
//	@Tags		pruebas-fisicas
//	@Produce	json
//	@Param		atletaId	path		integer	true	"Id del atleta"
//	@Success	200			{object}	response.Envelope
//	@Failure	404			{object}	response.Envelope
//	@Router		/pruebas-fisicas/atleta/{atletaId} [get]
func GetPruebasFisicasAtleta(svc *services.PruebaFisicaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		atletaID, err := paramID(c, "atletaId", "Atleta", "Atleta no encontrado")
		if err != nil {
			return respondError(c, err)
		}
		pruebas, err := svc.PorAtleta(atletaID)
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c,
			fmt.Sprintf("Se encontraron %d pruebas", len(pruebas)),
			newPruebaFisicaResponses(pruebas))
	}
}

// GetPruebasFisicasAtletaTipo returns a handler for
// GET /api/v1/pruebas-fisicas/atleta/:atletaId/tipo/:tipo.
//
//	@Summary	Pruebas físicas de un atleta por tipo
//	@Tags		pruebas-fisicas
//	@Produce	json
//	@Param		atletaId	path		integer	true	"Id del atleta"
//	@Param		tipo		path		string	true	"Tipo de prueba"
//	@Success	200			{object}	response.Envelope
//	@Failure	404			{object}	response.Envelope
//	@Router		/pruebas-fisicas/atleta/{atletaId}/tipo/{tipo} [get]
func GetPruebasFisicasAtletaTipo(svc *services.PruebaFisicaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		atletaID, err := paramID(c, "atletaId", "Atleta", "Atleta no encontrado")
		if err != nil {
			return respondError(c, err)
		}
		tipo := c.Params("tipo")
		pruebas, err := svc.PorAtletaYTipo(atletaID, tipo)
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c,
			fmt.Sprintf("Se encontraron %d pruebas de tipo %s", len(pruebas), tipo),
			newPruebaFisicaResponses(pruebas))
	}
}

// GetEstadisticasFisicas returns a handler for
// GET /api/v1/pruebas-fisicas/atleta/:atletaId/estadisticas.
//
//	@Summary	Estadísticas físicas de un atleta
//	@Tags		pruebas-fisicas
//	@Produce	json
//	@Param		atletaId	path		integer	true	"Id del atleta"
//	@Success	200			{object}	response.Envelope
//	@Failure	404			{object}	response.Envelope
//	@Router		/pruebas-fisicas/atleta/{atletaId}/estadisticas [get]
func GetEstadisticasFisicas(svc *services.PruebaFisicaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		atletaID, err := paramID(c, "atletaId", "Atleta", "Atleta no encontrado")
		if err != nil {
			return respondError(c, err)
		}
		stats, err := svc.Estadisticas(atletaID)
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c, "Estadísticas obtenidas", stats)
	}
}

// GetPromedioTipo returns a handler for
// GET /api/v1/pruebas-fisicas/promedio/tipo/:tipo.
//
//	@Summary	Promedio de resultados por tipo de prueba
//	@Tags		pruebas-fisicas
//	@Produce	json
//	@Param		tipo	path		string	true	"Tipo de prueba"
//	@Success	200		{object}	response.Envelope
//	@Failure	422		{object}	response.Envelope
//	@Router		/pruebas-fisicas/promedio/tipo/{tipo} [get]
func GetPromedioTipo(svc *services.PruebaFisicaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		promedio, err := svc.PromedioPorTipo(c.Params("tipo"))
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c, "Estadísticas obtenidas", promedio)
	}
}

// CompararPruebasFisicas returns a handler for
// GET /api/v1/pruebas-fisicas/comparar/:id1/:id2. Both tests must be of the
// same type.
//
//	@Summary	Comparar dos pruebas físicas
//	@Tags		pruebas-fisicas
//	@Produce	json
//	@Param		id1	path		integer	true	"Id de la primera prueba"
//	@Param		id2	path		integer	true	"Id de la segunda prueba"
//	@Success	200	{object}	response.Envelope
//	@Failure	400	{object}	response.Envelope
//	@Failure	404	{object}	response.Envelope
//	@Router		/pruebas-fisicas/comparar/{id1}/{id2} [get]
func CompararPruebasFisicas(svc *services.PruebaFisicaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id1, err := paramID(c, "id1", "PruebaFisica", "Una o ambas pruebas no existen")
		if err != nil {
			return respondError(c, err)
		}
		id2, err := paramID(c, "id2", "PruebaFisica", "Una o ambas pruebas no existen")
		if err != nil {
			return respondError(c, err)
		}
		comparacion, err := svc.Comparar(id1, id2)
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c, "Comparación realizada exitosamente", comparacion)
	}
}
