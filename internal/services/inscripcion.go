package services

import (
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/dfmorales/basketball-api/internal/apperr"
	"github.com/dfmorales/basketball-api/internal/models"
	"github.com/dfmorales/basketball-api/internal/repository"
)

// InscripcionService orchestrates enrollments. New enrollments always start
// pending (habilitada=false) and must be approved explicitly, regardless of
// what the caller sends.
type InscripcionService struct {
	inscripciones *repository.InscripcionRepository
	atletas       *repository.AtletaRepository
	validate      *validator.Validate
	log           *logrus.Logger
}

func NewInscripcionService(inscripciones *repository.InscripcionRepository, atletas *repository.AtletaRepository, validate *validator.Validate, log *logrus.Logger) *InscripcionService {
	return &InscripcionService{inscripciones: inscripciones, atletas: atletas, validate: validate, log: log}
}

// CrearInscripcionInput is the POST body. Dates arrive as "YYYY-MM-DD";
// fecha_inscripcion defaults to today and tipo_inscripcion to NUEVO.
type CrearInscripcionInput struct {
	AtletaID         uint   `json:"atleta_id" validate:"required"`
	FechaInscripcion string `json:"fecha_inscripcion"`
	TipoInscripcion  string `json:"tipo_inscripcion" validate:"omitempty,oneof=NUEVO RENOVACION TRANSFERENCIA"`
}

// ActualizarInscripcionInput is the PUT/PATCH body.
type ActualizarInscripcionInput struct {
	FechaInscripcion *string `json:"fecha_inscripcion"`
	TipoInscripcion  *string `json:"tipo_inscripcion" validate:"omitempty,oneof=NUEVO RENOVACION TRANSFERENCIA"`
	Habilitada       *bool   `json:"habilitada"`
}

// FiltrosInscripcion are the optional, ANDed list filters.
type FiltrosInscripcion struct {
	Habilitada *bool
	Tipo       string
	AtletaID   *uint
	FechaDesde string
	FechaHasta string
}

func (s *InscripcionService) criterios(f FiltrosInscripcion) (map[string]interface{}, error) {
	criteria := map[string]interface{}{}
	if f.Habilitada != nil {
		criteria["habilitada"] = *f.Habilitada
	}
	if f.Tipo != "" {
		if !models.TipoInscripcionValido(f.Tipo) {
			return nil, apperr.Validation("Error de validación", map[string]string{
				"tipo": "Tipo de inscripción inválido",
			})
		}
		criteria["tipo_inscripcion"] = f.Tipo
	}
	if f.AtletaID != nil {
		criteria["atleta_id"] = *f.AtletaID
	}
	if f.FechaDesde != "" {
		fecha, err := parseFechaCampo(f.FechaDesde, "fecha_desde")
		if err != nil {
			return nil, err
		}
		criteria["fecha_inscripcion__gte"] = fecha
	}
	if f.FechaHasta != "" {
		fecha, err := parseFechaCampo(f.FechaHasta, "fecha_hasta")
		if err != nil {
			return nil, err
		}
		criteria["fecha_inscripcion__lte"] = fecha
	}
	return criteria, nil
}

// Listar returns enrollments matching the filters, athlete preloaded.
func (s *InscripcionService) Listar(f FiltrosInscripcion) ([]models.Inscripcion, error) {
	criteria, err := s.criterios(f)
	if err != nil {
		return nil, err
	}
	return s.inscripciones.FindScoped(false,
		repository.CriteriaScope(criteria),
		repository.Preload("Atleta"))
}

// ListarPagina is Listar under pagination.
func (s *InscripcionService) ListarPagina(f FiltrosInscripcion, page, pageSize int) (*repository.Page[models.Inscripcion], error) {
	criteria, err := s.criterios(f)
	if err != nil {
		return nil, err
	}
	return s.inscripciones.PaginateScoped(page, pageSize, false, "id",
		repository.CriteriaScope(criteria),
		repository.Preload("Atleta"))
}

// Obtener returns the enrollment by id, athlete preloaded.
func (s *InscripcionService) Obtener(id uint) (*models.Inscripcion, error) {
	ins, err := s.inscripciones.FindByIDScoped(id, repository.Preload("Atleta"))
	if err != nil {
		return nil, apperr.Internal("Error en la operación", err)
	}
	if ins == nil {
		return nil, apperr.NotFound("Inscripcion", "Inscripción no encontrada")
	}
	return ins, nil
}

// Crear validates and persists a new enrollment with the defaults applied:
// today's date, type NUEVO, pending approval.
func (s *InscripcionService) Crear(in CrearInscripcionInput) (*models.Inscripcion, error) {
	if err := validar(s.validate, in); err != nil {
		return nil, err
	}

	atleta, err := s.atletas.FindByID(in.AtletaID)
	if err != nil {
		return nil, apperr.Internal("Error al crear inscripción", err)
	}
	if atleta == nil {
		return nil, apperr.NotFound("Atleta", "Atleta no encontrado")
	}

	fecha := models.Hoy()
	if in.FechaInscripcion != "" {
		fecha, err = parseFechaCampo(in.FechaInscripcion, "fecha_inscripcion")
		if err != nil {
			return nil, err
		}
	}
	tipo := models.InscripcionNueva
	if in.TipoInscripcion != "" {
		tipo = models.TipoInscripcion(in.TipoInscripcion)
	}

	ins := &models.Inscripcion{
		AtletaID:         atleta.ID,
		FechaInscripcion: fecha,
		TipoInscripcion:  tipo,
		Habilitada:       false,
	}
	if err := s.inscripciones.Create(ins); err != nil {
		s.log.WithError(err).Error("no se pudo crear la inscripción")
		return nil, apperr.Internal("Error al crear inscripción", err)
	}
	return ins, nil
}

// Actualizar applies the provided fields.
func (s *InscripcionService) Actualizar(id uint, in ActualizarInscripcionInput) (*models.Inscripcion, error) {
	if err := validar(s.validate, in); err != nil {
		return nil, err
	}

	values := map[string]interface{}{}
	if in.FechaInscripcion != nil {
		fecha, err := parseFechaCampo(*in.FechaInscripcion, "fecha_inscripcion")
		if err != nil {
			return nil, err
		}
		values["fecha_inscripcion"] = fecha
	}
	if in.TipoInscripcion != nil {
		values["tipo_inscripcion"] = *in.TipoInscripcion
	}
	if in.Habilitada != nil {
		values["habilitada"] = *in.Habilitada
	}

	ins, err := s.inscripciones.Update(id, values)
	if err != nil {
		return nil, apperr.Internal("Error en la operación", err)
	}
	if ins == nil {
		return nil, apperr.NotFound("Inscripcion", "Inscripción no encontrada")
	}
	return ins, nil
}

// Eliminar removes the enrollment row outright. The soft path for this
// entity is Deshabilitar.
func (s *InscripcionService) Eliminar(id uint) error {
	ok, err := s.inscripciones.HardDelete(id)
	if err != nil {
		return apperr.Internal("Error en la operación", err)
	}
	if !ok {
		return apperr.NotFound("Inscripcion", "Inscripción no encontrada")
	}
	return nil
}

// Habilitar approves the enrollment.
func (s *InscripcionService) Habilitar(id uint) (*models.Inscripcion, error) {
	ok, err := s.inscripciones.Habilitar(id)
	if err != nil {
		return nil, apperr.Internal("Error en la operación", err)
	}
	if !ok {
		return nil, apperr.NotFound("Inscripcion", "Inscripción no encontrada")
	}
	return s.Obtener(id)
}

// Deshabilitar revokes the enrollment's approval.
func (s *InscripcionService) Deshabilitar(id uint) (*models.Inscripcion, error) {
	ok, err := s.inscripciones.Deshabilitar(id)
	if err != nil {
		return nil, apperr.Internal("Error en la operación", err)
	}
	if !ok {
		return nil, apperr.NotFound("Inscripcion", "Inscripción no encontrada")
	}
	return s.Obtener(id)
}

// PorAtleta returns the athlete's enrollments, newest first.
func (s *InscripcionService) PorAtleta(atletaID uint) ([]models.Inscripcion, error) {
	atleta, err := s.atletas.FindByID(atletaID)
	if err != nil {
		return nil, apperr.Internal("Error en la operación", err)
	}
	if atleta == nil {
		return nil, apperr.NotFound("Atleta", "Atleta no encontrado")
	}
	return s.inscripciones.FindByAtleta(atletaID)
}
