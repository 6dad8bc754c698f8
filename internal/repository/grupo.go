package repository

import (
	"gorm.io/gorm"

	"github.com/dfmorales/basketball-api/internal/models"
)

// GrupoRepository adds group-specific lookups on top of the generic layer.
type GrupoRepository struct {
	*Repository[models.GrupoAtleta]
}

func NewGrupoRepository(db *gorm.DB) *GrupoRepository {
	return &GrupoRepository{NewRepository[models.GrupoAtleta](db)}
}

// FindByNombre returns the group with the given exact name.
func (r *GrupoRepository) FindByNombre(nombre string) (*models.GrupoAtleta, error) {
	return r.FindByField("nombre", nombre)
}

// FindByCategoria returns the active groups in a category.
func (r *GrupoRepository) FindByCategoria(categoria string) ([]models.GrupoAtleta, error) {
	return r.FindByFilters(map[string]interface{}{"categoria": categoria}, true)
}

// FindByEdad returns the active groups whose age band contains edad.
func (r *GrupoRepository) FindByEdad(edad int) ([]models.GrupoAtleta, error) {
	return r.FindByCriteria(map[string]interface{}{
		"rango_edad_minima__lte": edad,
		"rango_edad_maxima__gte": edad,
	}, true)
}

// GrupoConteo is one row of the per-group athlete count summary.
type GrupoConteo struct {
	ID           uint   `json:"id"`
	Nombre       string `json:"nombre"`
	Categoria    string `json:"categoria"`
	TotalAtletas int64  `json:"total_atletas"`
}

// GruposConConteo returns every active group with its count of active
// athletes, in one grouped query.
func (r *GrupoRepository) GruposConConteo() ([]GrupoConteo, error) {
	var rows []GrupoConteo
	err := r.DB().Model(&models.GrupoAtleta{}).
		Select("grupo_atleta.id, grupo_atleta.nombre, grupo_atleta.categoria, COUNT(atleta.id) AS total_atletas").
		Joins("LEFT JOIN atleta ON atleta.grupo_id = grupo_atleta.id AND atleta.estado = ?", true).
		Where("grupo_atleta.estado = ?", true).
		Group("grupo_atleta.id, grupo_atleta.nombre, grupo_atleta.categoria").
		Order("grupo_atleta.id").
		Scan(&rows).Error
	return rows, err
}

// ContarAtletas returns the number of active athletes in a group.
func (r *GrupoRepository) ContarAtletas(grupoID uint) (int64, error) {
	var count int64
	err := r.DB().Model(&models.Atleta{}).
		Where("grupo_id = ? AND estado = ?", grupoID, true).
		Count(&count).Error
	return count, err
}
