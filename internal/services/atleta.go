package services

import (
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/dfmorales/basketball-api/internal/apperr"
	"github.com/dfmorales/basketball-api/internal/models"
	"github.com/dfmorales/basketball-api/internal/repository"
)

// AtletaService orchestrates athlete operations: validation, DNI uniqueness,
// group resolution with the age-range rule, and derived-age recomputation
// through the repository write path.
type AtletaService struct {
	atletas  *repository.AtletaRepository
	grupos   *repository.GrupoRepository
	validate *validator.Validate
	log      *logrus.Logger
}

func NewAtletaService(atletas *repository.AtletaRepository, grupos *repository.GrupoRepository, validate *validator.Validate, log *logrus.Logger) *AtletaService {
	return &AtletaService{atletas: atletas, grupos: grupos, validate: validate, log: log}
}

// CrearAtletaInput is the POST body. FechaNacimiento arrives as "YYYY-MM-DD";
// edad is derived, never accepted.
type CrearAtletaInput struct {
	NombreAtleta          string  `json:"nombre_atleta" validate:"required,max=100"`
	ApellidoAtleta        string  `json:"apellido_atleta" validate:"required,max=100"`
	DNI                   string  `json:"dni" validate:"required,max=20"`
	FechaNacimiento       string  `json:"fecha_nacimiento" validate:"required"`
	Sexo                  string  `json:"sexo" validate:"required,max=20"`
	Email                 *string `json:"email" validate:"omitempty,email"`
	Telefono              *string `json:"telefono" validate:"omitempty,max=20"`
	TipoSangre            *string `json:"tipo_sangre" validate:"omitempty,max=10"`
	DatosRepresentante    *string `json:"datos_representante" validate:"omitempty,max=255"`
	TelefonoRepresentante *string `json:"telefono_representante" validate:"omitempty,max=20"`
	GrupoID               *uint   `json:"grupo_id"`
}

// ActualizarAtletaInput is the PUT/PATCH body: every field optional, absent
// fields untouched. Unknown fields are ignored by decoding; edad and other
// derived values are recomputed regardless of what arrives.
type ActualizarAtletaInput struct {
	NombreAtleta          *string `json:"nombre_atleta" validate:"omitempty,max=100"`
	ApellidoAtleta        *string `json:"apellido_atleta" validate:"omitempty,max=100"`
	DNI                   *string `json:"dni" validate:"omitempty,max=20"`
	FechaNacimiento       *string `json:"fecha_nacimiento"`
	Sexo                  *string `json:"sexo" validate:"omitempty,max=20"`
	Email                 *string `json:"email" validate:"omitempty,email"`
	Telefono              *string `json:"telefono" validate:"omitempty,max=20"`
	TipoSangre            *string `json:"tipo_sangre" validate:"omitempty,max=10"`
	DatosRepresentante    *string `json:"datos_representante" validate:"omitempty,max=255"`
	TelefonoRepresentante *string `json:"telefono_representante" validate:"omitempty,max=20"`
	GrupoID               *uint   `json:"grupo_id"`
	Estado                *bool   `json:"estado"`
}

// Listar returns athletes matching the optional filters, with their group
// preloaded for serialization.
func (s *AtletaService) Listar(b repository.BusquedaAtletas, activos bool) ([]models.Atleta, error) {
	return s.atletas.FindScoped(activos,
		repository.CriteriaScope(b.Criterios()),
		repository.Preload("Grupo"))
}

// ListarPagina is Listar under pagination.
func (s *AtletaService) ListarPagina(b repository.BusquedaAtletas, activos bool, page, pageSize int) (*repository.Page[models.Atleta], error) {
	return s.atletas.PaginateScoped(page, pageSize, activos, "id",
		repository.CriteriaScope(b.Criterios()),
		repository.Preload("Grupo"))
}

// Obtener returns the athlete by id, group preloaded.
func (s *AtletaService) Obtener(id uint) (*models.Atleta, error) {
	atleta, err := s.atletas.FindByIDScoped(id, repository.Preload("Grupo"))
	if err != nil {
		return nil, apperr.Internal("Error en la operación", err)
	}
	if atleta == nil {
		return nil, apperr.NotFound("Atleta", "Atleta no encontrado")
	}
	return atleta, nil
}

// ObtenerPorDNI returns the athlete holding the document number.
func (s *AtletaService) ObtenerPorDNI(dni string) (*models.Atleta, error) {
	atleta, err := s.atletas.FindByDNI(dni)
	if err != nil {
		return nil, apperr.Internal("Error en la operación", err)
	}
	if atleta == nil {
		return nil, apperr.NotFound("Atleta", "Atleta no encontrado")
	}
	return atleta, nil
}

// Crear validates and persists a new athlete. A group reference, when given,
// must exist and accept the athlete's age.
func (s *AtletaService) Crear(in CrearAtletaInput) (*models.Atleta, error) {
	if err := validar(s.validate, in); err != nil {
		return nil, err
	}
	fecha, err := parseFechaCampo(in.FechaNacimiento, "fecha_nacimiento")
	if err != nil {
		return nil, err
	}

	existe, err := s.atletas.ExistsByField("dni", in.DNI)
	if err != nil {
		return nil, apperr.Internal("Error al crear atleta", err)
	}
	if existe {
		return nil, apperr.Conflictf("Ya existe un atleta con el DNI %s", in.DNI)
	}

	atleta := &models.Atleta{
		NombreAtleta:          in.NombreAtleta,
		ApellidoAtleta:        in.ApellidoAtleta,
		DNI:                   in.DNI,
		FechaNacimiento:       fecha,
		Sexo:                  in.Sexo,
		Email:                 in.Email,
		Telefono:              in.Telefono,
		TipoSangre:            in.TipoSangre,
		DatosRepresentante:    in.DatosRepresentante,
		TelefonoRepresentante: in.TelefonoRepresentante,
		Estado:                true,
	}
	atleta.Recalcular() // edad is needed for the age gate below

	if in.GrupoID != nil {
		grupo, err := s.resolverGrupo(*in.GrupoID, atleta.Edad)
		if err != nil {
			return nil, err
		}
		atleta.GrupoID = &grupo.ID
	}

	if err := s.atletas.Create(atleta); err != nil {
		s.log.WithError(err).Error("no se pudo crear el atleta")
		return nil, apperr.Internal("Error al crear atleta", err)
	}
	return atleta, nil
}

// Actualizar applies the provided fields and recomputes derived values.
func (s *AtletaService) Actualizar(id uint, in ActualizarAtletaInput) (*models.Atleta, error) {
	if err := validar(s.validate, in); err != nil {
		return nil, err
	}

	values := map[string]interface{}{}
	if in.NombreAtleta != nil {
		values["nombre_atleta"] = *in.NombreAtleta
	}
	if in.ApellidoAtleta != nil {
		values["apellido_atleta"] = *in.ApellidoAtleta
	}
	if in.DNI != nil {
		otro, err := s.atletas.FindByDNI(*in.DNI)
		if err != nil {
			return nil, apperr.Internal("Error en la operación", err)
		}
		if otro != nil && otro.ID != id {
			return nil, apperr.Conflictf("Ya existe un atleta con el DNI %s", *in.DNI)
		}
		values["dni"] = *in.DNI
	}
	if in.FechaNacimiento != nil {
		fecha, err := parseFechaCampo(*in.FechaNacimiento, "fecha_nacimiento")
		if err != nil {
			return nil, err
		}
		values["fecha_nacimiento"] = fecha
	}
	if in.Sexo != nil {
		values["sexo"] = *in.Sexo
	}
	if in.Email != nil {
		values["email"] = in.Email
	}
	if in.Telefono != nil {
		values["telefono"] = in.Telefono
	}
	if in.TipoSangre != nil {
		values["tipo_sangre"] = in.TipoSangre
	}
	if in.DatosRepresentante != nil {
		values["datos_representante"] = in.DatosRepresentante
	}
	if in.TelefonoRepresentante != nil {
		values["telefono_representante"] = in.TelefonoRepresentante
	}
	if in.Estado != nil {
		values["estado"] = *in.Estado
	}
	if in.GrupoID != nil {
		actual, err := s.Obtener(id)
		if err != nil {
			return nil, err
		}
		grupo, err := s.resolverGrupo(*in.GrupoID, actual.Edad)
		if err != nil {
			return nil, err
		}
		values["grupo_id"] = grupo.ID
	}

	atleta, err := s.atletas.Update(id, values)
	if err != nil {
		return nil, apperr.Internal("Error en la operación", err)
	}
	if atleta == nil {
		return nil, apperr.NotFound("Atleta", "Atleta no encontrado")
	}
	return atleta, nil
}

// Eliminar removes the athlete; soft keeps the row with estado=false.
func (s *AtletaService) Eliminar(id uint, soft bool) error {
	ok, err := s.atletas.Delete(id, soft)
	if err != nil {
		return apperr.Internal("Error en la operación", err)
	}
	if !ok {
		return apperr.NotFound("Atleta", "Atleta no encontrado")
	}
	return nil
}

// Restaurar re-activates a soft-deleted athlete.
func (s *AtletaService) Restaurar(id uint) (*models.Atleta, error) {
	ok, err := s.atletas.Restore(id)
	if err != nil {
		return nil, apperr.Internal("Error en la operación", err)
	}
	if !ok {
		return nil, apperr.NotFound("Atleta", "Atleta no encontrado")
	}
	return s.Obtener(id)
}

// AsignarGrupo puts the athlete in the group, enforcing the age band.
func (s *AtletaService) AsignarGrupo(atletaID, grupoID uint) (*models.Atleta, error) {
	atleta, err := s.Obtener(atletaID)
	if err != nil {
		return nil, err
	}
	grupo, err := s.resolverGrupo(grupoID, atleta.Edad)
	if err != nil {
		return nil, err
	}
	if err := s.atletas.AsignarGrupo(atletaID, &grupo.ID); err != nil {
		return nil, apperr.Internal("Error en la operación", err)
	}
	return s.Obtener(atletaID)
}

// SinGrupo returns the active athletes without a group.
func (s *AtletaService) SinGrupo() ([]models.Atleta, error) {
	return s.atletas.FindSinGrupo()
}

// resolverGrupo loads the group and checks it accepts the given age.
func (s *AtletaService) resolverGrupo(grupoID uint, edad int) (*models.GrupoAtleta, error) {
	grupo, err := s.grupos.FindByID(grupoID)
	if err != nil {
		return nil, apperr.Internal("Error en la operación", err)
	}
	if grupo == nil {
		return nil, apperr.NotFound("Grupo", "Grupo no encontrado")
	}
	if !grupo.AceptaEdad(edad) {
		return nil, apperr.Conflictf(
			"El atleta no cumple el rango de edad del grupo (%d-%d años)",
			grupo.RangoEdadMinima, grupo.RangoEdadMaxima)
	}
	return grupo, nil
}
