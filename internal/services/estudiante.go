package services

import (
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/dfmorales/basketball-api/internal/apperr"
	"github.com/dfmorales/basketball-api/internal/models"
	"github.com/dfmorales/basketball-api/internal/repository"
)

// EstudianteService orchestrates liaison-student profiles. Like coaches,
// students are a one-to-one extension of the user stub, hard-delete only.
type EstudianteService struct {
	estudiantes *repository.EstudianteRepository
	usuarios    *repository.UsuarioRepository
	validate    *validator.Validate
	log         *logrus.Logger
}

func NewEstudianteService(estudiantes *repository.EstudianteRepository, usuarios *repository.UsuarioRepository, validate *validator.Validate, log *logrus.Logger) *EstudianteService {
	return &EstudianteService{estudiantes: estudiantes, usuarios: usuarios, validate: validate, log: log}
}

// CrearEstudianteInput is the POST body.
type CrearEstudianteInput struct {
	UsuarioID uint   `json:"usuario_id" validate:"required"`
	Carrera   string `json:"carrera" validate:"required,max=100"`
	Semestre  string `json:"semestre" validate:"required,max=20"`
}

// ActualizarEstudianteInput is the PUT/PATCH body.
type ActualizarEstudianteInput struct {
	Carrera  *string `json:"carrera" validate:"omitempty,max=100"`
	Semestre *string `json:"semestre" validate:"omitempty,max=20"`
}

// FiltrosEstudiante are the optional list filters; every supplied filter is
// applied (AND). Nombre matches the referenced user's first name as a
// substring. Unfiltered lists keep only students whose user is active.
type FiltrosEstudiante struct {
	UsuarioID *uint
	Carrera   string
	Semestre  string
	Nombre    string
}

// Listar returns students matching the filters, user preloaded.
func (s *EstudianteService) Listar(f FiltrosEstudiante) ([]models.EstudianteVinculacion, error) {
	criteria := map[string]interface{}{
		"carrera__icontains": f.Carrera,
		"semestre":           f.Semestre,
	}
	if f.UsuarioID != nil {
		criteria["usuario_id"] = *f.UsuarioID
	}

	scopes := []func(*gorm.DB) *gorm.DB{
		repository.CriteriaScope(criteria),
		repository.Preload("Usuario"),
	}
	switch {
	case f.Nombre != "":
		scopes = append(scopes, func(q *gorm.DB) *gorm.DB {
			return q.Where("usuario_id IN (SELECT id FROM usuario WHERE LOWER(nombre) LIKE LOWER(?))",
				"%"+f.Nombre+"%")
		})
	case f.UsuarioID == nil && f.Carrera == "" && f.Semestre == "":
		scopes = append(scopes, func(q *gorm.DB) *gorm.DB {
			return q.Where("usuario_id IN (SELECT id FROM usuario WHERE estado = ?)", true)
		})
	}
	return s.estudiantes.FindScoped(false, scopes...)
}

// Obtener returns the student by id, user preloaded.
func (s *EstudianteService) Obtener(id uint) (*models.EstudianteVinculacion, error) {
	e, err := s.estudiantes.FindByIDScoped(id, repository.Preload("Usuario"))
	if err != nil {
		return nil, apperr.Internal("Error en la operación", err)
	}
	if e == nil {
		return nil, apperr.NotFound("EstudianteVinculacion", "Estudiante no encontrado")
	}
	return e, nil
}

// Crear validates and persists a new student profile.
func (s *EstudianteService) Crear(in CrearEstudianteInput) (*models.EstudianteVinculacion, error) {
	if err := validar(s.validate, in); err != nil {
		return nil, err
	}

	usuario, err := s.usuarios.FindByID(in.UsuarioID)
	if err != nil {
		return nil, apperr.Internal("Error al crear estudiante de vinculación", err)
	}
	if usuario == nil {
		return nil, apperr.NotFound("Usuario", "Usuario no encontrado")
	}
	existente, err := s.estudiantes.FindByUsuario(in.UsuarioID)
	if err != nil {
		return nil, apperr.Internal("Error al crear estudiante de vinculación", err)
	}
	if existente != nil {
		return nil, apperr.Conflict("El usuario ya tiene un perfil de estudiante")
	}

	estudiante := &models.EstudianteVinculacion{
		UsuarioID: usuario.ID,
		Carrera:   in.Carrera,
		Semestre:  in.Semestre,
	}
	if err := s.estudiantes.Create(estudiante); err != nil {
		s.log.WithError(err).Error("no se pudo crear el estudiante")
		return nil, apperr.Internal("Error al crear estudiante de vinculación", err)
	}
	return s.Obtener(estudiante.ID)
}

// Actualizar applies the provided fields.
func (s *EstudianteService) Actualizar(id uint, in ActualizarEstudianteInput) (*models.EstudianteVinculacion, error) {
	if err := validar(s.validate, in); err != nil {
		return nil, err
	}

	values := map[string]interface{}{}
	if in.Carrera != nil {
		values["carrera"] = *in.Carrera
	}
	if in.Semestre != nil {
		values["semestre"] = *in.Semestre
	}

	estudiante, err := s.estudiantes.Update(id, values)
	if err != nil {
		return nil, apperr.Internal("Error en la operación", err)
	}
	if estudiante == nil {
		return nil, apperr.NotFound("EstudianteVinculacion", "Estudiante no encontrado")
	}
	return s.Obtener(id)
}

// Eliminar removes the student profile. The referenced user is untouched.
func (s *EstudianteService) Eliminar(id uint) error {
	ok, err := s.estudiantes.HardDelete(id)
	if err != nil {
		return apperr.Internal("Error en la operación", err)
	}
	if !ok {
		return apperr.NotFound("EstudianteVinculacion", "Estudiante no encontrado")
	}
	return nil
}
