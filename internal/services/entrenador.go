package services

import (
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/dfmorales/basketball-api/internal/apperr"
	"github.com/dfmorales/basketball-api/internal/models"
	"github.com/dfmorales/basketball-api/internal/repository"
)

// EntrenadorService orchestrates coach profiles: resolving the referenced
// user, and maintaining the group assignments. Coaches are hard-delete only.
type EntrenadorService struct {
	entrenadores *repository.EntrenadorRepository
	usuarios     *repository.UsuarioRepository
	grupos       *repository.GrupoRepository
	validate     *validator.Validate
	log          *logrus.Logger
}

func NewEntrenadorService(entrenadores *repository.EntrenadorRepository, usuarios *repository.UsuarioRepository, grupos *repository.GrupoRepository, validate *validator.Validate, log *logrus.Logger) *EntrenadorService {
	return &EntrenadorService{entrenadores: entrenadores, usuarios: usuarios, grupos: grupos, validate: validate, log: log}
}

// CrearEntrenadorInput is the POST body. UsuarioID must reference an existing
// user; GruposIDs optionally assigns groups on creation.
type CrearEntrenadorInput struct {
	UsuarioID    uint   `json:"usuario_id" validate:"required"`
	Especialidad string `json:"especialidad" validate:"required,max=100"`
	ClubAsignado string `json:"club_asignado" validate:"required,max=100"`
	GruposIDs    []uint `json:"grupos_ids"`
}

// ActualizarEntrenadorInput is the PUT/PATCH body. A non-nil GruposIDs
// replaces the whole assignment set; nil leaves it untouched.
type ActualizarEntrenadorInput struct {
	Especialidad *string `json:"especialidad" validate:"omitempty,max=100"`
	ClubAsignado *string `json:"club_asignado" validate:"omitempty,max=100"`
	GruposIDs    []uint  `json:"grupos_ids"`
}

// FiltrosEntrenador are the optional list filters; every supplied filter is
// applied (AND). Nombre matches the referenced user's first name as a
// substring. Unfiltered lists keep only coaches whose user is active.
type FiltrosEntrenador struct {
	UsuarioID    *uint
	Especialidad string
	Club         string
	Nombre       string
}

// Listar returns coaches matching the filters, user and groups preloaded.
func (s *EntrenadorService) Listar(f FiltrosEntrenador) ([]models.Entrenador, error) {
	criteria := map[string]interface{}{
		"especialidad__icontains": f.Especialidad,
		"club_asignado":           f.Club,
	}
	if f.UsuarioID != nil {
		criteria["usuario_id"] = *f.UsuarioID
	}

	scopes := []func(*gorm.DB) *gorm.DB{
		repository.CriteriaScope(criteria),
		repository.Preload("Usuario"),
		repository.Preload("Grupos"),
	}
	switch {
	case f.Nombre != "":
		scopes = append(scopes, func(q *gorm.DB) *gorm.DB {
			return q.Where("usuario_id IN (SELECT id FROM usuario WHERE LOWER(nombre) LIKE LOWER(?))",
				"%"+f.Nombre+"%")
		})
	case f.UsuarioID == nil && f.Especialidad == "" && f.Club == "":
		scopes = append(scopes, func(q *gorm.DB) *gorm.DB {
			return q.Where("usuario_id IN (SELECT id FROM usuario WHERE estado = ?)", true)
		})
	}
	return s.entrenadores.FindScoped(false, scopes...)
}

// Obtener returns the coach by id, user and groups preloaded.
func (s *EntrenadorService) Obtener(id uint) (*models.Entrenador, error) {
	e, err := s.entrenadores.FindByIDScoped(id,
		repository.Preload("Usuario"),
		repository.Preload("Grupos"))
	if err != nil {
		return nil, apperr.Internal("Error en la operación", err)
	}
	if e == nil {
		return nil, apperr.NotFound("Entrenador", "Entrenador no encontrado")
	}
	return e, nil
}

// ObtenerPorUsuario returns the coach profile of a user.
func (s *EntrenadorService) ObtenerPorUsuario(usuarioID uint) (*models.Entrenador, error) {
	e, err := s.entrenadores.FindByUsuario(usuarioID)
	if err != nil {
		return nil, apperr.Internal("Error en la operación", err)
	}
	if e == nil {
		return nil, apperr.NotFound("Entrenador", "Entrenador no encontrado para este usuario")
	}
	return s.Obtener(e.ID)
}

// Crear validates and persists a new coach profile.
func (s *EntrenadorService) Crear(in CrearEntrenadorInput) (*models.Entrenador, error) {
	if err := validar(s.validate, in); err != nil {
		return nil, err
	}

	usuario, err := s.usuarios.FindByID(in.UsuarioID)
	if err != nil {
		return nil, apperr.Internal("Error al crear entrenador", err)
	}
	if usuario == nil {
		return nil, apperr.NotFound("Usuario", "Usuario no encontrado")
	}
	existente, err := s.entrenadores.FindByUsuario(in.UsuarioID)
	if err != nil {
		return nil, apperr.Internal("Error al crear entrenador", err)
	}
	if existente != nil {
		return nil, apperr.Conflict("El usuario ya tiene un perfil de entrenador")
	}

	entrenador := &models.Entrenador{
		UsuarioID:    usuario.ID,
		Especialidad: in.Especialidad,
		ClubAsignado: in.ClubAsignado,
	}
	if err := s.entrenadores.Create(entrenador); err != nil {
		s.log.WithError(err).Error("no se pudo crear el entrenador")
		return nil, apperr.Internal("Error al crear entrenador", err)
	}

	for _, grupoID := range in.GruposIDs {
		grupo, err := s.grupos.FindByID(grupoID)
		if err != nil {
			return nil, apperr.Internal("Error al crear entrenador", err)
		}
		if grupo == nil {
			continue // missing groups are skipped, not fatal
		}
		if err := s.entrenadores.AsignarGrupo(entrenador, grupo); err != nil {
			return nil, apperr.Internal("Error al crear entrenador", err)
		}
	}
	return s.Obtener(entrenador.ID)
}

// Actualizar applies the provided fields. GruposIDs, when present, replaces
// the full assignment set.
func (s *EntrenadorService) Actualizar(id uint, in ActualizarEntrenadorInput) (*models.Entrenador, error) {
	if err := validar(s.validate, in); err != nil {
		return nil, err
	}

	values := map[string]interface{}{}
	if in.Especialidad != nil {
		values["especialidad"] = *in.Especialidad
	}
	if in.ClubAsignado != nil {
		values["club_asignado"] = *in.ClubAsignado
	}

	entrenador, err := s.entrenadores.Update(id, values)
	if err != nil {
		return nil, apperr.Internal("Error en la operación", err)
	}
	if entrenador == nil {
		return nil, apperr.NotFound("Entrenador", "Entrenador no encontrado")
	}

	if in.GruposIDs != nil {
		grupos := make([]models.GrupoAtleta, 0, len(in.GruposIDs))
		for _, grupoID := range in.GruposIDs {
			grupo, err := s.grupos.FindByID(grupoID)
			if err != nil {
				return nil, apperr.Internal("Error en la operación", err)
			}
			if grupo != nil {
				grupos = append(grupos, *grupo)
			}
		}
		if err := s.entrenadores.ReemplazarGrupos(entrenador, grupos); err != nil {
			return nil, apperr.Internal("Error en la operación", err)
		}
	}
	return s.Obtener(id)
}

// Eliminar removes the coach profile. The referenced user is untouched.
func (s *EntrenadorService) Eliminar(id uint) error {
	ok, err := s.entrenadores.HardDelete(id)
	if err != nil {
		return apperr.Internal("Error en la operación", err)
	}
	if !ok {
		return apperr.NotFound("Entrenador", "Entrenador no encontrado")
	}
	return nil
}

// Grupos returns the coach's assigned groups.
func (s *EntrenadorService) Grupos(id uint) ([]models.GrupoAtleta, error) {
	entrenador, err := s.Obtener(id)
	if err != nil {
		return nil, err
	}
	return entrenador.Grupos, nil
}

// AsignarGrupo links the coach to a group.
func (s *EntrenadorService) AsignarGrupo(id, grupoID uint) (*models.Entrenador, error) {
	entrenador, err := s.Obtener(id)
	if err != nil {
		return nil, err
	}
	grupo, err := s.grupos.FindByID(grupoID)
	if err != nil {
		return nil, apperr.Internal("Error en la operación", err)
	}
	if grupo == nil {
		return nil, apperr.NotFound("Grupo", "Grupo no encontrado")
	}
	if err := s.entrenadores.AsignarGrupo(entrenador, grupo); err != nil {
		return nil, apperr.Internal("Error en la operación", err)
	}
	return s.Obtener(id)
}

// RemoverGrupo unlinks the coach from a group.
func (s *EntrenadorService) RemoverGrupo(id, grupoID uint) (*models.Entrenador, error) {
	entrenador, err := s.Obtener(id)
	if err != nil {
		return nil, err
	}
	grupo, err := s.grupos.FindByID(grupoID)
	if err != nil {
		return nil, apperr.Internal("Error en la operación", err)
	}
	if grupo == nil {
		return nil, apperr.NotFound("Grupo", "Grupo no encontrado")
	}
	if err := s.entrenadores.RemoverGrupo(entrenador, grupo); err != nil {
		return nil, apperr.Internal("Error en la operación", err)
	}
	return s.Obtener(id)
}
