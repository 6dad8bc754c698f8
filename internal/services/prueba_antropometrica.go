package services

import (
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/dfmorales/basketball-api/internal/apperr"
	"github.com/dfmorales/basketball-api/internal/models"
	"github.com/dfmorales/basketball-api/internal/repository"
)

// PruebaAntropometricaService orchestrates measurement tests. The BMI and
// cornic index are derived on every write; callers never set them.
type PruebaAntropometricaService struct {
	pruebas  *repository.PruebaAntropometricaRepository
	atletas  *repository.AtletaRepository
	grupos   *repository.GrupoRepository
	validate *validator.Validate
	log      *logrus.Logger
}

func NewPruebaAntropometricaService(pruebas *repository.PruebaAntropometricaRepository, atletas *repository.AtletaRepository, grupos *repository.GrupoRepository, validate *validator.Validate, log *logrus.Logger) *PruebaAntropometricaService {
	return &PruebaAntropometricaService{pruebas: pruebas, atletas: atletas, grupos: grupos, validate: validate, log: log}
}

// CrearPruebaAntropometricaInput is the POST body. Height and weight are in
// cm and kg and must be positive.
type CrearPruebaAntropometricaInput struct {
	AtletaID      uint     `json:"atleta_id" validate:"required"`
	FechaRegistro string   `json:"fecha_registro"`
	Estatura      float64  `json:"estatura" validate:"required,gt=0"`
	Peso          float64  `json:"peso" validate:"required,gt=0"`
	AlturaSentado *float64 `json:"altura_sentado" validate:"omitempty,gt=0"`
	Envergadura   *float64 `json:"envergadura" validate:"omitempty,gt=0"`
	Observaciones *string  `json:"observaciones"`
}

// ActualizarPruebaAntropometricaInput is the PUT/PATCH body.
type ActualizarPruebaAntropometricaInput struct {
	FechaRegistro *string  `json:"fecha_registro"`
	Estatura      *float64 `json:"estatura" validate:"omitempty,gt=0"`
	Peso          *float64 `json:"peso" validate:"omitempty,gt=0"`
	AlturaSentado *float64 `json:"altura_sentado" validate:"omitempty,gt=0"`
	Envergadura   *float64 `json:"envergadura" validate:"omitempty,gt=0"`
	Observaciones *string  `json:"observaciones"`
	Estado        *bool    `json:"estado"`
}

// FiltrosPruebaAntropometrica are the optional, ANDed list filters.
type FiltrosPruebaAntropometrica struct {
	AtletaID   *uint
	FechaDesde string
	FechaHasta string
	IMCMin     *float64
	IMCMax     *float64
}

func (s *PruebaAntropometricaService) criterios(f FiltrosPruebaAntropometrica) (map[string]interface{}, error) {
	criteria := map[string]interface{}{}
	if f.AtletaID != nil {
		criteria["atleta_id"] = *f.AtletaID
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
	if f.IMCMin != nil {
		criteria["indice_masa_corporal__gte"] = *f.IMCMin
	}
	if f.IMCMax != nil {
		criteria["indice_masa_corporal__lte"] = *f.IMCMax
	}
	return criteria, nil
}

// Listar returns tests matching the filters, athlete preloaded.
func (s *PruebaAntropometricaService) Listar(f FiltrosPruebaAntropometrica, activos bool) ([]models.PruebaAntropometrica, error) {
	criteria, err := s.criterios(f)
	if err != nil {
		return nil, err
	}
	return s.pruebas.FindScoped(activos,
		repository.CriteriaScope(criteria),
		repository.Preload("Atleta"))
}

// ListarPagina is Listar under pagination.
func (s *PruebaAntropometricaService) ListarPagina(f FiltrosPruebaAntropometrica, activos bool, page, pageSize int) (*repository.Page[models.PruebaAntropometrica], error) {
	criteria, err := s.criterios(f)
	if err != nil {
		return nil, err
	}
	return s.pruebas.PaginateScoped(page, pageSize, activos, "id",
		repository.CriteriaScope(criteria),
		repository.Preload("Atleta"))
}

// Obtener returns the test by id, athlete preloaded.
func (s *PruebaAntropometricaService) Obtener(id uint) (*models.PruebaAntropometrica, error) {
	prueba, err := s.pruebas.FindByIDScoped(id, repository.Preload("Atleta"))
	if err != nil {
		return nil, apperr.Internal("Error en la operación", err)
	}
	if prueba == nil {
		return nil, apperr.NotFound("PruebaAntropometrica", "Prueba no encontrada")
	}
	return prueba, nil
}

// Crear validates and persists a new test; indices come out derived.
func (s *PruebaAntropometricaService) Crear(in CrearPruebaAntropometricaInput) (*models.PruebaAntropometrica, error) {
	if err := validar(s.validate, in); err != nil {
		return nil, err
	}
	atleta, err := s.atletas.FindByID(in.AtletaID)
	if err != nil {
		return nil, apperr.Internal("Error al crear prueba antropométrica", err)
	}
	if atleta == nil {
		return nil, apperr.NotFound("Atleta", "Atleta no encontrado")
	}

	prueba := &models.PruebaAntropometrica{
		AtletaID:      atleta.ID,
		Estatura:      in.Estatura,
		Peso:          in.Peso,
		AlturaSentado: in.AlturaSentado,
		Envergadura:   in.Envergadura,
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
		s.log.WithError(err).Error("no se pudo crear la prueba antropométrica")
		return nil, apperr.Internal("Error al crear prueba antropométrica", err)
	}
	return prueba, nil
}

// Actualizar applies the provided fields; indices are recomputed.
func (s *PruebaAntropometricaService) Actualizar(id uint, in ActualizarPruebaAntropometricaInput) (*models.PruebaAntropometrica, error) {
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
	if in.Estatura != nil {
		values["estatura"] = *in.Estatura
	}
	if in.Peso != nil {
		values["peso"] = *in.Peso
	}
	if in.AlturaSentado != nil {
		values["altura_sentado"] = in.AlturaSentado
	}
	if in.Envergadura != nil {
		values["envergadura"] = in.Envergadura
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
		return nil, apperr.NotFound("PruebaAntropometrica", "Prueba no encontrada")
	}
	return prueba, nil
}

// Eliminar removes the test; soft keeps the row with estado=false.
func (s *PruebaAntropometricaService) Eliminar(id uint, soft bool) error {
	ok, err := s.pruebas.Delete(id, soft)
	if err != nil {
		return apperr.Internal("Error en la operación", err)
	}
	if !ok {
		return apperr.NotFound("PruebaAntropometrica", "Prueba no encontrada")
	}
	return nil
}

// PorAtleta returns the athlete's tests, newest first.
func (s *PruebaAntropometricaService) PorAtleta(atletaID uint) ([]models.PruebaAntropometrica, error) {
	if err := s.verificarAtleta(atletaID); err != nil {
		return nil, err
	}
	return s.pruebas.FindByAtleta(atletaID)
}

// UltimaPorAtleta returns the athlete's most recent test.
func (s *PruebaAntropometricaService) UltimaPorAtleta(atletaID uint) (*models.PruebaAntropometrica, error) {
	if err := s.verificarAtleta(atletaID); err != nil {
		return nil, err
	}
	prueba, err := s.pruebas.FindUltimaByAtleta(atletaID)
	if err != nil {
		return nil, apperr.Internal("Error en la operación", err)
	}
	if prueba == nil {
		return nil, apperr.NotFound("PruebaAntropometrica", "No se encontraron pruebas para este atleta")
	}
	return prueba, nil
}

// Estadisticas returns the athlete's measurement summary.
func (s *PruebaAntropometricaService) Estadisticas(atletaID uint) (*repository.EstadisticasAntropometricas, error) {
	if err := s.verificarAtleta(atletaID); err != nil {
		return nil, err
	}
	stats, err := s.pruebas.EstadisticasByAtleta(atletaID)
	if err != nil {
		return nil, apperr.Internal("Error en la operación", err)
	}
	return stats, nil
}

// PromedioIMCGrupo summarizes a group's BMI average.
type PromedioIMCGrupo struct {
	GrupoID      uint    `json:"grupo_id"`
	GrupoNombre  string  `json:"grupo_nombre"`
	PromedioIMC  float64 `json:"promedio_imc"`
	TotalPruebas int64   `json:"total_pruebas"`
}

// PromedioIMCPorGrupo computes the average BMI over a group's active tests.
func (s *PruebaAntropometricaService) PromedioIMCPorGrupo(grupoID uint) (*PromedioIMCGrupo, error) {
	grupo, err := s.grupos.FindByID(grupoID)
	if err != nil {
		return nil, apperr.Internal("Error en la operación", err)
	}
	if grupo == nil {
		return nil, apperr.NotFound("Grupo", "Grupo no encontrado")
	}
	promedio, total, err := s.pruebas.PromedioIMCByGrupo(grupoID)
	if err != nil {
		return nil, apperr.Internal("Error en la operación", err)
	}
	return &PromedioIMCGrupo{
		GrupoID:      grupo.ID,
		GrupoNombre:  grupo.Nombre,
		PromedioIMC:  redondear2(promedio),
		TotalPruebas: total,
	}, nil
}

// CampoComparado is one measured field in a comparison: both values, the
// absolute difference, and the percentage change from the first test.
type CampoComparado struct {
	Campo            string  `json:"campo"`
	Valor1           float64 `json:"valor_1"`
	Valor2           float64 `json:"valor_2"`
	Diferencia       float64 `json:"diferencia"`
	CambioPorcentual float64 `json:"cambio_porcentual"`
}

// ComparacionAntropometrica is the result of comparing two measurement tests.
type ComparacionAntropometrica struct {
	Prueba1 *models.PruebaAntropometrica `json:"prueba_1"`
	Prueba2 *models.PruebaAntropometrica `json:"prueba_2"`
	Campos  []CampoComparado             `json:"campos"`
}

// Comparar returns per-field differences between two tests. Fields present in
// only one test are left out.
func (s *PruebaAntropometricaService) Comparar(id1, id2 uint) (*ComparacionAntropometrica, error) {
	p1, err := s.pruebas.FindByID(id1)
	if err != nil {
		return nil, apperr.Internal("Error en la operación", err)
	}
	p2, err := s.pruebas.FindByID(id2)
	if err != nil {
		return nil, apperr.Internal("Error en la operación", err)
	}
	if p1 == nil || p2 == nil {
		return nil, apperr.NotFound("PruebaAntropometrica", "Una o ambas pruebas no existen")
	}

	campos := []CampoComparado{
		comparado("estatura", p1.Estatura, p2.Estatura),
		comparado("peso", p1.Peso, p2.Peso),
	}
	if p1.IndiceMasaCorporal != nil && p2.IndiceMasaCorporal != nil {
		campos = append(campos, comparado("indice_masa_corporal", *p1.IndiceMasaCorporal, *p2.IndiceMasaCorporal))
	}
	if p1.AlturaSentado != nil && p2.AlturaSentado != nil {
		campos = append(campos, comparado("altura_sentado", *p1.AlturaSentado, *p2.AlturaSentado))
	}
	if p1.Envergadura != nil && p2.Envergadura != nil {
		campos = append(campos, comparado("envergadura", *p1.Envergadura, *p2.Envergadura))
	}
	if p1.IndiceCornico != nil && p2.IndiceCornico != nil {
		campos = append(campos, comparado("indice_cornico", *p1.IndiceCornico, *p2.IndiceCornico))
	}

	return &ComparacionAntropometrica{Prueba1: p1, Prueba2: p2, Campos: campos}, nil
}

func comparado(campo string, v1, v2 float64) CampoComparado {
	return CampoComparado{
		Campo:            campo,
		Valor1:           v1,
		Valor2:           v2,
		Diferencia:       redondear2(v2 - v1),
		CambioPorcentual: cambioPorcentual(v1, v2),
	}
}

func (s *PruebaAntropometricaService) verificarAtleta(atletaID uint) error {
	atleta, err := s.atletas.FindByID(atletaID)
	if err != nil {
		return apperr.Internal("Error en la operación", err)
	}
	if atleta == nil {
		return apperr.NotFound("Atleta", "Atleta no encontrado")
	}
	return nil
}
