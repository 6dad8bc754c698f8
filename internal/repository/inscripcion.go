package repository

import (
	"gorm.io/gorm"

	"github.com/dfmorales/basketball-api/internal/models"
)

// InscripcionRepository adds enrollment-specific lookups. An enrollment's
// habilitada flag doubles as approval and soft-delete marker, so "active"
// here always means approved.
type InscripcionRepository struct {
	*Repository[models.Inscripcion]
}

func NewInscripcionRepository(db *gorm.DB) *InscripcionRepository {
	return &InscripcionRepository{NewRepository[models.Inscripcion](db)}
}

// FindByAtleta returns every enrollment of an athlete, newest first.
func (r *InscripcionRepository) FindByAtleta(atletaID uint) ([]models.Inscripcion, error) {
	var entities []models.Inscripcion
	err := r.DB().Where("atleta_id = ?", atletaID).
		Order("fecha_inscripcion DESC, id DESC").
		Find(&entities).Error
	return entities, err
}

// FindByTipo returns the enrollments of the given type.
func (r *InscripcionRepository) FindByTipo(tipo models.TipoInscripcion) ([]models.Inscripcion, error) {
	return r.FindByFilters(map[string]interface{}{"tipo_inscripcion": tipo}, false)
}

// FindHabilitadas returns the approved enrollments.
func (r *InscripcionRepository) FindHabilitadas() ([]models.Inscripcion, error) {
	return r.FindByFilters(map[string]interface{}{"habilitada": true}, false)
}

// FindPendientes returns the enrollments awaiting approval.
func (r *InscripcionRepository) FindPendientes() ([]models.Inscripcion, error) {
	return r.FindByFilters(map[string]interface{}{"habilitada": false}, false)
}

// Habilitar approves the enrollment. Returns whether a row was affected.
func (r *InscripcionRepository) Habilitar(id uint) (bool, error) {
	res := r.DB().Model(&models.Inscripcion{}).
		Where("id = ?", id).
		Update("habilitada", true)
	return res.RowsAffected > 0, res.Error
}

// Deshabilitar revokes the enrollment's approval.
func (r *InscripcionRepository) Deshabilitar(id uint) (bool, error) {
	res := r.DB().Model(&models.Inscripcion{}).
		Where("id = ?", id).
		Update("habilitada", false)
	return res.RowsAffected > 0, res.Error
}

// TieneInscripcionActiva reports whether the athlete holds at least one
// approved enrollment.
func (r *InscripcionRepository) TieneInscripcionActiva(atletaID uint) (bool, error) {
	var count int64
	err := r.DB().Model(&models.Inscripcion{}).
		Where("atleta_id = ? AND habilitada = ?", atletaID, true).
		Count(&count).Error
	return count > 0, err
}
