package repository

import (
	"gorm.io/gorm"

	"github.com/dfmorales/basketball-api/internal/models"
)

// EstudianteRepository adds liaison-student lookups.
type EstudianteRepository struct {
	*Repository[models.EstudianteVinculacion]
}

func NewEstudianteRepository(db *gorm.DB) *EstudianteRepository {
	return &EstudianteRepository{NewRepository[models.EstudianteVinculacion](db)}
}

// FindByUsuario returns the student profile of a user, or (nil, nil).
func (r *EstudianteRepository) FindByUsuario(usuarioID uint) (*models.EstudianteVinculacion, error) {
	return r.FindByField("usuario_id", usuarioID)
}

// FindByCarrera returns students whose academic program matches a
// case-insensitive substring.
func (r *EstudianteRepository) FindByCarrera(carrera string) ([]models.EstudianteVinculacion, error) {
	return r.FindByCriteria(map[string]interface{}{
		"carrera__icontains": carrera,
	}, false)
}

// FindBySemestre returns the students in a term.
func (r *EstudianteRepository) FindBySemestre(semestre string) ([]models.EstudianteVinculacion, error) {
	return r.FindByFilters(map[string]interface{}{"semestre": semestre}, false)
}
