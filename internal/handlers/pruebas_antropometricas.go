package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/dfmorales/basketball-api/internal/models"
	"github.com/dfmorales/basketball-api/internal/response"
	"github.com/dfmorales/basketball-api/internal/services"
)

// PruebaAntropometricaResponse is the wire shape of a measurement test.
// Both indices are derived server-side.
type PruebaAntropometricaResponse struct {
	ID                 uint     `json:"id"`
	Atleta             uint     `json:"atleta"`
	AtletaNombre       *string  `json:"atleta_nombre"`
	FechaRegistro      string   `json:"fecha_registro"`
	Estatura           float64  `json:"estatura"`
	Peso               float64  `json:"peso"`
	IndiceMasaCorporal *float64 `json:"indice_masa_corporal"`
	AlturaSentado      *float64 `json:"altura_sentado"`
	Envergadura        *float64 `json:"envergadura"`
	IndiceCornico      *float64 `json:"indice_cornico"`
	Observaciones      *string  `json:"observaciones"`
	Estado             bool     `json:"estado"`
}

func newPruebaAntropometricaResponse(p *models.PruebaAntropometrica) PruebaAntropometricaResponse {
	resp := PruebaAntropometricaResponse{
		ID:                 p.ID,
		Atleta:             p.AtletaID,
		FechaRegistro:      p.FechaRegistro.String(),
		Estatura:           p.Estatura,
		Peso:               p.Peso,
		IndiceMasaCorporal: p.IndiceMasaCorporal,
		AlturaSentado:      p.AlturaSentado,
		Envergadura:        p.Envergadura,
		IndiceCornico:      p.IndiceCornico,
		Observaciones:      p.Observaciones,
		Estado:             p.Estado,
	}
	if p.Atleta != nil {
		nombre := p.Atleta.NombreCompleto()
		resp.AtletaNombre = &nombre
	}
	return resp
}

func newPruebaAntropometricaResponses(pruebas []models.PruebaAntropometrica) []PruebaAntropometricaResponse {
	out := make([]PruebaAntropometricaResponse, 0, len(pruebas))
	for i := range pruebas {
		out = append(out, newPruebaAntropometricaResponse(&pruebas[i]))
	}
	return out
}

// GetPruebasAntropometricas returns a handler for GET /api/v1/pruebas-antropometricas.
//
//	@Summary	Listar pruebas antropométricas
//	@Tags		pruebas-antropometricas
//	@Produce	json
//	@Param		atleta_id	query	integer	false	"Id del atleta"
//	@Param		fecha_desde	query	string	false	"Fecha mínima (YYYY-MM-DD)"
//	@Param		fecha_hasta	query	string	false	"Fecha máxima (YYYY-MM-DD)"
//	@Param		imc_min		query	number	false	"IMC mínimo"
//	@Param		imc_max		query	number	false	"IMC máximo"
//	@Param		activos		query	boolean	false	"Solo activas (por defecto true)"
//	@Param		page		query	integer	false	"Página (activa la paginación)"
//	@Param		page_size	query	integer	false	"Tamaño de página"
//	@Success	200	{object}	response.Envelope
//	@Router		/pruebas-antropometricas [get]
func GetPruebasAntropometricas(svc *services.PruebaAntropometricaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filtros := services.FiltrosPruebaAntropometrica{
			AtletaID:   queryUint(c, "atleta_id"),
			FechaDesde: c.Query("fecha_desde"),
			FechaHasta: c.Query("fecha_hasta"),
			IMCMin:     queryFloat(c, "imc_min"),
			IMCMax:     queryFloat(c, "imc_max"),
		}
		activos := queryBool(c, "activos", true)

		if page, pageSize, ok := paging(c); ok {
			pagina, err := svc.ListarPagina(filtros, activos, page, pageSize)
			if err != nil {
				return respondError(c, err)
			}
			return response.Paginated(c,
				fmt.Sprintf("Se encontraron %d pruebas", pagina.TotalItems),
				newPruebaAntropometricaResponses(pagina.Data),
				pagina.CurrentPage, pagina.TotalPages, pagina.TotalItems)
		}

		pruebas, err := svc.Listar(filtros, activos)
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c,
			fmt.Sprintf("Se encontraron %d pruebas", len(pruebas)),
			newPruebaAntropometricaResponses(pruebas))
	}
}

// CreatePruebaAntropometrica returns a handler for POST /api/v1/pruebas-antropometricas.
//
//	@Summary	Crear prueba antropométrica
//	@Tags		pruebas-antropometricas
//	@Accept		json
//	@Produce	json
//	@Param		prueba	body		services.CrearPruebaAntropometricaInput	true	"Datos de la prueba"
//	@Success	201		{object}	response.Envelope
//	@Failure	422		{object}	response.Envelope
//	@Router		/pruebas-antropometricas [post]
func CreatePruebaAntropometrica(svc *services.PruebaAntropometricaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in services.CrearPruebaAntropometricaInput
		if err := c.BodyParser(&in); err != nil {
			return response.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}
		prueba, err := svc.Crear(in)
		if err != nil {
			return respondError(c, err)
		}
		return response.Created(c, "Prueba antropométrica creada exitosamente", newPruebaAntropometricaResponse(prueba))
	}
}

// GetPruebaAntropometrica returns a handler for GET /api/v1/pruebas-antropometricas/:id.
//
//	@Summary	Obtener prueba antropométrica
//	@Tags		pruebas-antropometricas
//	@Produce	json
//	@Param		id	path		integer	true	"Id de la prueba"
//	@Success	200	{object}	response.Envelope
//	@Failure	404	{object}	response.Envelope
//	@Router		/pruebas-antropometricas/{id} [get]
func GetPruebaAntropometrica(svc *services.PruebaAntropometricaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id", "PruebaAntropometrica", "Prueba no encontrada")
		if err != nil {
			return respondError(c, err)
		}
		prueba, err := svc.Obtener(id)
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c, "Prueba encontrada", newPruebaAntropometricaResponse(prueba))
	}
}

// UpdatePruebaAntropometrica returns a handler for PUT and PATCH
// /api/v1/pruebas-antropometricas/:id.
//
//	@Summary	Actualizar prueba antropométrica
//	@Tags		pruebas-antropometricas
//	@Accept		json
//	@Produce	json
//	@Param		id		path		integer											true	"Id de la prueba"
//	@Param		prueba	body		services.ActualizarPruebaAntropometricaInput	true	"Campos a actualizar"
//	@Success	200		{object}	response.Envelope
//	@Failure	404		{object}	response.Envelope
//	@Router		/pruebas-antropometricas/{id} [put]
func UpdatePruebaAntropometrica(svc *services.PruebaAntropometricaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id", "PruebaAntropometrica", "Prueba no encontrada")
		if err != nil {
			return respondError(c, err)
		}
		var in services.ActualizarPruebaAntropometricaInput
		if err := c.BodyParser(&in); err != nil {
			return response.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}
		prueba, err := svc.Actualizar(id, in)
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c, "Prueba actualizada exitosamente", newPruebaAntropometricaResponse(prueba))
	}
}

// DeletePruebaAntropometrica returns a handler for DELETE /api/v1/pruebas-antropometricas/:id.
//
//	@Summary	Eliminar prueba antropométrica
//	@Tags		pruebas-antropometricas
//	@Produce	json
//	@Param		id		path	integer	true	"Id de la prueba"
//	@Param		soft	query	boolean	false	"Borrado lógico (por defecto true)"
//	@Success	200	{object}	response.Envelope
//	@Failure	404	{object}	response.Envelope
//	@Router		/pruebas-antropometricas/{id} [delete]
func DeletePruebaAntropometrica(svc *services.PruebaAntropometricaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id", "PruebaAntropometrica", "Prueba no encontrada")
		if err != nil {
			return respondError(c, err)
		}
		if err := svc.Eliminar(id, queryBool(c, "soft", true)); err != nil {
			return respondError(c, err)
		}
		return response.Success(c, "Prueba eliminada exitosamente", nil)
	}
}

// GetPruebasAntropometricasAtleta returns a handler for
// GET /api/v1/pruebas-antropometricas/atleta/:atletaId.
//
//	@Summary	Pruebas antropométricas de un atleta
//	@Tags		pruebas-antropometricas
//	@Produce	json
//	@Param		atletaId	path		integer	true	"Id del atleta"
//	@Success	200			{object}	response.Envelope
//	@Failure	404			{object}	response.Envelope
//	@Router		/pruebas-antropometricas/atleta/{atletaId} [get]
func GetPruebasAntropometricasAtleta(svc *services.PruebaAntropometricaService) fiber.Handler {
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
			newPruebaAntropometricaResponses(pruebas))
	}
}

// GetUltimaPruebaAntropometrica returns a handler for
// GET /api/v1/pruebas-antropometricas/atleta/:atletaId/ultima.
//
//	@Summary	Última prueba antropométrica de un atleta
//	@Tags		pruebas-antropometricas
//	@Produce	json
//	@Param		atletaId	path		integer	true	"Id del atleta"
//	@Success	200			{object}	response.Envelope
//	@Failure	404			{object}	response.Envelope
//	@Router		/pruebas-antropometricas/atleta/{atletaId}/ultima [get]
func GetUltimaPruebaAntropometrica(svc *services.PruebaAntropometricaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		atletaID, err := paramID(c, "atletaId", "Atleta", "Atleta no encontrado")
		if err != nil {
			return respondError(c, err)
		}
		prueba, err := svc.UltimaPorAtleta(atletaID)
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c, "Última prueba encontrada", newPruebaAntropometricaResponse(prueba))
	}
}

// GetEstadisticasAntropometricas returns a handler for
// GET /api/v1/pruebas-antropometricas/atleta/:atletaId/estadisticas.
//
//	@Summary	Estadísticas antropométricas de un atleta
//	@Tags		pruebas-antropometricas
//	@Produce	json
//	@Param		atletaId	path		integer	true	"Id del atleta"
//	@Success	200			{object}	response.Envelope
//	@Failure	404			{object}	response.Envelope
//	@Router		/pruebas-antropometricas/atleta/{atletaId}/estadisticas [get]
func GetEstadisticasAntropometricas(svc *services.PruebaAntropometricaService) fiber.Handler {
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

// GetPromedioIMCGrupo returns a handler for
// GET /api/v1/pruebas-antropometricas/promedio-imc/grupo/:grupoId.
//
//	@Summary	Promedio de IMC de un grupo
//	@Tags		pruebas-antropometricas
//	@Produce	json
//	@Param		grupoId	path		integer	true	"Id del grupo"
//	@Success	200		{object}	response.Envelope
//	@Failure	404		{object}	response.Envelope
//	@Router		/pruebas-antropometricas/promedio-imc/grupo/{grupoId} [get]
func GetPromedioIMCGrupo(svc *services.PruebaAntropometricaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		grupoID, err := paramID(c, "grupoId", "Grupo", "Grupo no encontrado")
		if err != nil {
			return respondError(c, err)
		}
		promedio, err := svc.PromedioIMCPorGrupo(grupoID)
		if err != nil {
			return respondError(c, err)
		}
		return response.Success(c, "Estadísticas obtenidas", promedio)
	}
}

// CompararPruebasAntropometricas returns a handler for
// GET /api/v1/pruebas-antropometricas/comparar/:id1/:id2.
//
//	@Summary	Comparar dos pruebas antropométricas
//	@Tags		pruebas-antropometricas
//	@Produce	json
//	@Param		id1	path		integer	true	"Id de la primera prueba"
//	@Param		id2	path		integer	true	"Id de la segunda prueba"
//	@Success	200	{object}	response.Envelope
//	@Failure	404	{object}	response.Envelope
//	@Router		/pruebas-antropometricas/comparar/{id1}/{id2} [get]
func CompararPruebasAntropometricas(svc *services.PruebaAntropometricaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id1, err := paramID(c, "id1", "PruebaAntropometrica", "Una o ambas pruebas no existen")
		if err != nil {
			return respondError(c, err)
		}
		id2, err := paramID(c, "id2", "PruebaAntropometrica", "Una o ambas pruebas no existen")
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
