package services

import (
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/dfmorales/basketball-api/internal/apperr"
	"github.com/dfmorales/basketball-api/internal/models"
	"github.com/dfmorales/basketball-api/internal/repository"
)

// PruebaFisicaService orchestrates performance tests, including the type
// catalogue, per-type averages and the same-type comparison rule.
type PruebaFisicaService struct {
	pruebas  *repository.PruebaFisicaRepository
	atletas  *repository.AtletaRepository
	validate *validator.Validate
	log      *logrus.Logger
}

func NewPruebaFisicaService(pruebas *repository.PruebaFisicaRepository, atletas *repository.AtletaRepository, validate *validator.Validate, log *logrus.Logger) *PruebaFisicaService {
	return &PruebaFisicaService{pruebas: pruebas, atletas: atletas, validate: validate, log: log}
}

// CrearPruebaFisicaInput is the POST body.
type CrearPruebaFisicaInput struct {
	AtletaID      uint    `json:"atleta_id" validate:"required"`
	FechaRegistro string  `json:"fecha_registro"`
	TipoPrueba    string  `json:"tipo_prueba" validate:"required,oneof=RESISTENCIA VELOCIDAD FUERZA FLEXIBILIDAD AGILIDAD COORDINACION"`
	Resultado     float64 `json:"resultado" validate:"gte=0"`
	UnidadMedida  string  `json:"unidad_medida" validate:"required,max=50"`
	Observaciones *string `json:"observaciones"`
}

// ActualizarPruebaFisicaInput is the PUT/PATCH body.
type ActualizarPruebaFisicaInput struct {
	FechaRegistro *string  `json:"fecha_registro"`
	TipoPrueba    *string  `json:"tipo_prueba" validate:"omitempty,oneof=RESISTENCIA VELOCIDAD FUERZA FLEXIBILIDAD AGILIDAD COORDINACION"`
	Resultado     *float64 `json:"resultado" validate:"omitempty,gte=0"`
	UnidadMedida  *string  `json:"unidad_medida" validate:"omitempty,max=50"`
	Observaciones *string  `json:"observaciones"`
	Estado        *bool    `json:"estado"`
}

// FiltrosPruebaFisica are the optional, ANDed list filters.
type FiltrosPruebaFisica struct {
	AtletaID     *uint
	Tipo         string
	FechaDesde   string
	FechaHasta   string
	ResultadoMin *float64
	ResultadoMax *float64
}

func (s *PruebaFisicaService) criterios(f FiltrosPruebaFisica) (map[string]interface{}, error) {
	criteria := map[string]interface{}{}
	if f.AtletaID != nil {
		criteria["atleta_id"] = *f.AtletaID
	}
	if f.Tipo != "" {
		if !models.TipoPruebaValido(f.Tipo) {
			return nil, apperr.Validation("Error de validación", map[string]string{
				"tipo": "Tipo de prueba inválido",
			})
		}
		criteria["tipo_prueba"] = f.Tipo
	}
	if f.FechaDesde != "" {
		fecha, err := parseFechaCampo(f.FechaDesde, "fecha_desde")
		if err != nil {
			return nil, err
		}
		criteria["fecha_registro__gte"] = fecha
	}
	if f.FechaHasta != "" {
		fecha, err := parseFechaCampo(f.FechaHasta, "fecha_hasta")
		if err != nil {
			return nil, err
		}
		criteria["fecha_registro__lte"] = fecha
	}
	if f.ResultadoMin != nil {
		criteria["resultado__gte"] = *f.ResultadoMin
	}
	if f.ResultadoMax != nil {
		criteria["resultado__lte"] = *f.ResultadoMax
	}
	return criteria, nil
}

// Listar returns tests matching the filters, athlete preloaded.
func (s *PruebaFisicaService) Listar(f FiltrosPruebaFisica, activos bool) ([]models.PruebaFisica, error) {
	criteria, err := s.criterios(f)
	if err != nil {
		return nil, err
	}
	return s.pruebas.FindScoped(activos,
		repository.CriteriaScope(criteria),
		repository.Preload("Atleta"))
}

// ListarPagina is Listar under pagination.
func (s *PruebaFisicaService) ListarPagina(f FiltrosPruebaFisica, activos bool, page, pageSize int) (*repository.Page[models.PruebaFisica], error) {
	criteria, err := s.criterios(f)
	if err != nil {
		return nil, err
	}
	return s.pruebas.PaginateScoped(page, pageSize, activos, "id",
		repository.CriteriaScope(criteria),
		repository.Preload("Atleta"))
}

// Obtener returns the test by id, athlete preloaded.
func (s *PruebaFisicaService) Obtener(id uint) (*models.PruebaFisica, error) {
	prueba, err := s.pruebas.FindByIDScoped(id, repository.Preload("Atleta"))
	if err != nil {
		return nil, apperr.Internal("Error en la operación", err)
	}
	if prueba == nil {
		return nil, apperr.NotFound("PruebaFisica", "Prueba no encontrada")
	}
	return prueba, nil
}

// Crear validates and persists a new test.
func (s *PruebaFisicaService) Crear(in CrearPruebaFisicaInput) (*models.PruebaFisica, error) {
	if err := validar(s.validate, in); err != nil {
		return nil, err
	}
	atleta, err := s.atletas.FindByID(in.AtletaID)
	if err != nil {
		return nil, apperr.Internal("Error al crear prueba física", err)
	}
	if atleta == nil {
		return nil, apperr.NotFound("Atleta", "Atleta no encontrado")
	}

	prueba := &models.PruebaFisica{
		AtletaID:      atleta.ID,
		TipoPrueba:    models.TipoPrueba(in.TipoPrueba),
		Resultado:     in.Resultado,
		UnidadMedida:  in.UnidadMedida,
		Observaciones: in.Observaciones,
		Estado:        true,
	}
	if in.FechaRegistro != "" {
		fecha, err := parseFechaCampo(in.FechaRegistro, "fecha_registro")
		if err != nil {
			return nil, err
		}
		prueba.FechaRegistro = fecha
	}
	if err := s.pruebas.Create(prueba); err != nil {
		s.log.WithError(err).Error("no se pudo crear la prueba física")
		return nil, apperr.Internal("Error al crear prueba física", err)
	}
	return prueba, nil
}

// Actualizar applies the provided fields.
func (s *PruebaFisicaService) Actualizar(id uint, in ActualizarPruebaFisicaInput) (*models.PruebaFisica, error) {
	if err := validar(s.validate, in); err != nil {
		return nil, err
	}

	values := map[string]interface{}{}
	if in.FechaRegistro != nil {
		fecha, err := parseFechaCampo(*in.FechaRegistro, "fecha_registro")
		if err != nil {
			return nil, err
		}
		values["fecha_registro"] = fecha
	}
	if in.TipoPrueba != nil {
		values["tipo_prueba"] = *in.TipoPrueba
	}
	if in.Resultado != nil {
		values["resultado"] = *in.Resultado
	}
	if in.UnidadMedida != nil {
		values["unidad_medida"] = *in.UnidadMedida
	}
	if in.Observaciones != nil {
		values["observaciones"] = in.Observaciones
	}
	if in.Estado != nil {
		values["estado"] = *in.Estado
	}

	prueba, err := s.pruebas.Update(id, values)
	if err != nil {
		return nil, apperr.Internal("Error en la operación", err)
	}
	if prueba == nil {
		return nil, apperr.NotFound("PruebaFisica", "Prueba no encontrada")
	}
	return prueba, nil
}

// Eliminar removes the test; soft keeps the row with estado=false.
func (s *PruebaFisicaService) Eliminar(id uint, soft bool) error {
	ok, err := s.pruebas.Delete(id, soft)
	if err != nil {
		return apperr.Internal("Error en la operación", err)
	}
	if !ok {
		return apperr.NotFound("PruebaFisica", "Prueba no encontrada")
	}
	return nil
}

// TipoPruebaOpcion is one entry of the type catalogue endpoint.
type TipoPruebaOpcion struct {
	Valor    string `json:"valor"`
	Etiqueta string `json:"etiqueta"`
}

// Tipos returns the accepted test types with their display labels.
func (s *PruebaFisicaService) Tipos() []TipoPruebaOpcion {
	tipos := models.TiposPrueba()
	opciones := make([]TipoPruebaOpcion, 0, len(tipos))
	for _, t := range tipos {
		opciones = append(opciones, TipoPruebaOpcion{
			Valor:    string(t),
			Etiqueta: models.EtiquetaTipoPrueba(t),
		})
	}
	return opciones
}

// PorAtleta returns the athlete's tests, newest first.
func (s *PruebaFisicaService) PorAtleta(atletaID uint) ([]models.PruebaFisica, error) {
	if err := s.verificarAtleta(atletaID); err != nil {
		return nil, err
	}
	return s.pruebas.FindByAtleta(atletaID)
}

// PorAtletaYTipo returns the athlete's tests of one type, newest first.
func (s *PruebaFisicaService) PorAtletaYTipo(atletaID uint, tipo string) ([]models.PruebaFisica, error) {
	if !models.TipoPruebaValido(tipo) {
		return nil, apperr.Validation("Error de validación", map[string]string{
			"tipo": "Tipo de prueba inválido",
		})
	}
	if err := s.verificarAtleta(atletaID); err != nil {
		return nil, err
	}
	return s.pruebas.FindByAtletaYTipo(atletaID, models.TipoPrueba(tipo))
}

// Estadisticas returns the athlete's per-type summaries.
func (s *PruebaFisicaService) Estadisticas(atletaID uint) ([]repository.EstadisticaTipoPrueba, error) {
	if err := s.verificarAtleta(atletaID); err != nil {
		return nil, err
	}
	stats, err := s.pruebas.EstadisticasByAtleta(atletaID)
	if err != nil {
		return nil, apperr.Internal("Error en la operación", err)
	}
	return stats, nil
}

// PromedioTipo summarizes one type's average across all athletes.
type PromedioTipo struct {
	TipoPrueba   string  `json:"tipo_prueba"`
	Etiqueta     string  `json:"tipo_prueba_display"`
	Promedio     float64 `json:"promedio"`
	TotalPruebas int64   `json:"total_pruebas"`
}

// PromedioPorTipo computes the average result of one test type.
func (s *PruebaFisicaService) PromedioPorTipo(tipo string) (*PromedioTipo, error) {
	if !models.TipoPruebaValido(tipo) {
		return nil, apperr.Validation("Error de validación", map[string]string{
			"tipo": "Tipo de prueba inválido",
		})
	}
	promedio, total, err := s.pruebas.PromedioByTipo(models.TipoPrueba(tipo))
	if err != nil {
		return nil, apperr.Internal("Error en la operación", err)
	}
	return &PromedioTipo{
		TipoPrueba:   tipo,
		Etiqueta:     models.EtiquetaTipoPrueba(models.TipoPrueba(tipo)),
		Promedio:     redondear2(promedio),
		TotalPruebas: total,
	}, nil
}

// ComparacionFisica is the result of comparing two tests of the same type.
type ComparacionFisica struct {
	Prueba1 *models.PruebaFisica `json:"prueba_1"`
	Prueba2 *models.PruebaFisica `json:"prueba_2"`
	Campos  []CampoComparado     `json:"campos"`
}

// Comparar returns the result difference between two tests. Tests of
// different types cannot be compared.
func (s *PruebaFisicaService) Comparar(id1, id2 uint) (*ComparacionFisica, error) {
	p1, err := s.pruebas.FindByID(id1)
	if err != nil {
		return nil, apperr.Internal("Error en la operación", err)
	}
	p2, err := s.pruebas.FindByID(id2)
	if err != nil {
		return nil, apperr.Internal("Error en la operación", err)
	}
	if p1 == nil || p2 == nil {
		return nil, apperr.NotFound("PruebaFisica", "Una o ambas pruebas no existen")
	}
	if p1.TipoPrueba != p2.TipoPrueba {
		return nil, apperr.Conflict("No se pueden comparar pruebas de diferente tipo")
	}

	return &ComparacionFisica{
		Prueba1: p1,
		Prueba2: p2,
		Campos:  []CampoComparado{comparado("resultado", p1.Resultado, p2.Resultado)},
	}, nil
}

func (s *PruebaFisicaService) verificarAtleta(atletaID uint) error {
	atleta, err := s.atletas.FindByID(atletaID)
	if err != nil {
		return apperr.Internal("Error en la operación", err)
	}
	if atleta == nil {
		return apperr.NotFound("Atleta", "Atleta no encontrado")
	}
	return nil
}
