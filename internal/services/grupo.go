package services

import (
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/dfmorales/basketball-api/internal/apperr"
	"github.com/dfmorales/basketball-api/internal/models"
	"github.com/dfmorales/basketball-api/internal/repository"
)

// GrupoService orchestrates athlete-group operations, including the
// membership actions shared with AtletaService (both enforce the age band).
type GrupoService struct {
	grupos   *repository.GrupoRepository
	atletas  *repository.AtletaRepository
	validate *validator.Validate
	log      *logrus.Logger
}

func NewGrupoService(grupos *repository.GrupoRepository, atletas *repository.AtletaRepository, validate *validator.Validate, log *logrus.Logger) *GrupoService {
	return &GrupoService{grupos: grupos, atletas: atletas, validate: validate, log: log}
}

// CrearGrupoInput is the POST body for a group.
type CrearGrupoInput struct {
	Nombre          string `json:"nombre" validate:"required,max=100"`
	RangoEdadMinima int    `json:"rango_edad_minima" validate:"gte=0,lte=100"`
	RangoEdadMaxima int    `json:"rango_edad_maxima" validate:"gte=0,lte=100"`
	Categoria       string `json:"categoria" validate:"required,max=100"`
}

// ActualizarGrupoInput is the PUT/PATCH body: absent fields untouched.
type ActualizarGrupoInput struct {
	Nombre          *string `json:"nombre" validate:"omitempty,max=100"`
	RangoEdadMinima *int    `json:"rango_edad_minima" validate:"omitempty,gte=0,lte=100"`
	RangoEdadMaxima *int    `json:"rango_edad_maxima" validate:"omitempty,gte=0,lte=100"`
	Categoria       *string `json:"categoria" validate:"omitempty,max=100"`
	Estado          *bool   `json:"estado"`
}

// Listar returns groups, optionally restricted to a category.
func (s *GrupoService) Listar(categoria string, activos bool) ([]models.GrupoAtleta, error) {
	criteria := map[string]interface{}{}
	if categoria != "" {
		criteria["categoria"] = categoria
	}
	return s.grupos.FindByCriteria(criteria, activos)
}

// ListarPagina is Listar under pagination.
func (s *GrupoService) ListarPagina(categoria string, activos bool, page, pageSize int) (*repository.Page[models.GrupoAtleta], error) {
	criteria := map[string]interface{}{}
	if categoria != "" {
		criteria["categoria"] = categoria
	}
	return s.grupos.PaginateScoped(page, pageSize, activos, "id", repository.CriteriaScope(criteria))
}

// Obtener returns the group by id.
func (s *GrupoService) Obtener(id uint) (*models.GrupoAtleta, error) {
	grupo, err := s.grupos.FindByID(id)
	if err != nil {
		return nil, apperr.Internal("Error en la operación", err)
	}
	if grupo == nil {
		return nil, apperr.NotFound("Grupo", "Grupo no encontrado")
	}
	return grupo, nil
}

// Crear validates and persists a new group. The age band must be coherent.
func (s *GrupoService) Crear(in CrearGrupoInput) (*models.GrupoAtleta, error) {
	if err := validar(s.validate, in); err != nil {
		return nil, err
	}
	if in.RangoEdadMinima > in.RangoEdadMaxima {
		return nil, apperr.Validation("Error de validación", map[string]string{
			"rango_edad_minima": "Debe ser menor o igual al rango máximo",
		})
	}

	grupo := &models.GrupoAtleta{
		Nombre:          in.Nombre,
		RangoEdadMinima: in.RangoEdadMinima,
		RangoEdadMaxima: in.RangoEdadMaxima,
		Categoria:       in.Categoria,
		Estado:          true,
	}
	if err := s.grupos.Create(grupo); err != nil {
		s.log.WithError(err).Error("no se pudo crear el grupo")
		return nil, apperr.Internal("Error al crear grupo de atletas", err)
	}
	return grupo, nil
}

// Actualizar applies the provided fields, keeping the age band coherent.
func (s *GrupoService) Actualizar(id uint, in ActualizarGrupoInput) (*models.GrupoAtleta, error) {
	if err := validar(s.validate, in); err != nil {
		return nil, err
	}

	actual, err := s.Obtener(id)
	if err != nil {
		return nil, err
	}
	min, max := actual.RangoEdadMinima, actual.RangoEdadMaxima
	if in.RangoEdadMinima != nil {
		min = *in.RangoEdadMinima
	}
	if in.RangoEdadMaxima != nil {
		max = *in.RangoEdadMaxima
	}
	if min > max {
		return nil, apperr.Validation("Error de validación", map[string]string{
			"rango_edad_minima": "Debe ser menor o igual al rango máximo",
		})
	}

	values := map[string]interface{}{}
	if in.Nombre != nil {
		values["nombre"] = *in.Nombre
	}
	if in.RangoEdadMinima != nil {
		values["rango_edad_minima"] = *in.RangoEdadMinima
	}
	if in.RangoEdadMaxima != nil {
		values["rango_edad_maxima"] = *in.RangoEdadMaxima
	}
	if in.Categoria != nil {
		values["categoria"] = *in.Categoria
	}
	if in.Estado != nil {
		values["estado"] = *in.Estado
	}

	grupo, err := s.grupos.Update(id, values)
	if err != nil {
		return nil, apperr.Internal("Error en la operación", err)
	}
	if grupo == nil {
		return nil, apperr.NotFound("Grupo", "Grupo no encontrado")
	}
	return grupo, nil
}

// Eliminar removes the group; soft keeps the row with estado=false. Athletes
// keep their reference on soft delete and lose it (SET NULL) on hard delete.
func (s *GrupoService) Eliminar(id uint, soft bool) error {
	ok, err := s.grupos.Delete(id, soft)
	if err != nil {
		return apperr.Internal("Error en la operación", err)
	}
	if !ok {
		return apperr.NotFound("Grupo", "Grupo no encontrado")
	}
	return nil
}

// Atletas returns the active athletes of the group.
func (s *GrupoService) Atletas(grupoID uint) ([]models.Atleta, error) {
	if _, err := s.Obtener(grupoID); err != nil {
		return nil, err
	}
	return s.atletas.FindByGrupo(grupoID)
}

// AgregarAtleta puts the athlete in the group, enforcing the age band.
func (s *GrupoService) AgregarAtleta(grupoID, atletaID uint) (*models.Atleta, error) {
	grupo, err := s.Obtener(grupoID)
	if err != nil {
		return nil, err
	}
	atleta, err := s.atletas.FindByID(atletaID)
	if err != nil {
		return nil, apperr.Internal("Error en la operación", err)
	}
	if atleta == nil {
		return nil, apperr.NotFound("Atleta", "Atleta no encontrado")
	}
	if !grupo.AceptaEdad(atleta.Edad) {
		return nil, apperr.Conflictf(
			"El atleta no cumple el rango de edad del grupo (%d-%d años)",
			grupo.RangoEdadMinima, grupo.RangoEdadMaxima)
	}
	if err := s.atletas.AsignarGrupo(atletaID, &grupo.ID); err != nil {
		return nil, apperr.Internal("Error en la operación", err)
	}
	asignado, err := s.atletas.FindByIDScoped(atletaID, repository.Preload("Grupo"))
	if err != nil {
		return nil, apperr.Internal("Error en la operación", err)
	}
	if asignado == nil {
		return nil, apperr.NotFound("Atleta", "Atleta no encontrado")
	}
	return asignado, nil
}

// RemoverAtleta clears the athlete's group reference.
func (s *GrupoService) RemoverAtleta(atletaID uint) error {
	atleta, err := s.atletas.FindByID(atletaID)
	if err != nil {
		return apperr.Internal("Error en la operación", err)
	}
	if atleta == nil {
		return apperr.NotFound("Atleta", "Atleta no encontrado")
	}
	if err := s.atletas.AsignarGrupo(atletaID, nil); err != nil {
		return apperr.Internal("Error en la operación", err)
	}
	return nil
}

// CantidadAtletas returns the number of active athletes in the group.
func (s *GrupoService) CantidadAtletas(id uint) (int64, error) {
	cantidad, err := s.grupos.ContarAtletas(id)
	if err != nil {
		return 0, apperr.Internal("Error en la operación", err)
	}
	return cantidad, nil
}

// ConteoAtletas returns every active group with its athlete count.
func (s *GrupoService) ConteoAtletas() ([]repository.GrupoConteo, error) {
	return s.grupos.GruposConConteo()
}
