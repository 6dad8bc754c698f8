package repository

import (
	"gorm.io/gorm"

	"github.com/dfmorales/basketball-api/internal/models"
)

// EntrenadorRepository adds coach-specific lookups, including the
// entrenador_grupos many-to-many maintenance.
type EntrenadorRepository struct {
	*Repository[models.Entrenador]
}

func NewEntrenadorRepository(db *gorm.DB) *EntrenadorRepository {
	return &EntrenadorRepository{NewRepository[models.Entrenador](db)}
}

// FindByUsuario returns the coach profile of a user, or (nil, nil).
func (r *EntrenadorRepository) FindByUsuario(usuarioID uint) (*models.Entrenador, error) {
	return r.FindByField("usuario_id", usuarioID)
}

// FindByEspecialidad returns coaches whose specialty matches a
// case-insensitive substring.
func (r *EntrenadorRepository) FindByEspecialidad(especialidad string) ([]models.Entrenador, error) {
	return r.FindByCriteria(map[string]interface{}{
		"especialidad__icontains": especialidad,
	}, false)
}

// FindByClub returns the coaches assigned to a club.
func (r *EntrenadorRepository) FindByClub(club string) ([]models.Entrenador, error) {
	return r.FindByFilters(map[string]interface{}{"club_asignado": club}, false)
}

// FindByGrupo returns the coaches assigned to a group through the
// entrenador_grupos join table.
func (r *EntrenadorRepository) FindByGrupo(grupoID uint) ([]models.Entrenador, error) {
	var entities []models.Entrenador
	err := r.DB().
		Joins("JOIN entrenador_grupos ON entrenador_grupos.entrenador_id = entrenador.id").
		Where("entrenador_grupos.grupo_atleta_id = ?", grupoID).
		Order("entrenador.id").
		Find(&entities).Error
	return entities, err
}

// AsignarGrupo links the coach to a group. Appending an existing link is a
// no-op at the association level.
func (r *EntrenadorRepository) AsignarGrupo(entrenador *models.Entrenador, grupo *models.GrupoAtleta) error {
	return r.DB().Model(entrenador).Association("Grupos").Append(grupo)
}

// ReemplazarGrupos replaces the coach's whole assignment set.
func (r *EntrenadorRepository) ReemplazarGrupos(entrenador *models.Entrenador, grupos []models.GrupoAtleta) error {
	return r.DB().Model(entrenador).Association("Grupos").Replace(grupos)
}

// RemoverGrupo unlinks the coach from a group.
func (r *EntrenadorRepository) RemoverGrupo(entrenador *models.Entrenador, grupo *models.GrupoAtleta) error {
	return r.DB().Model(entrenador).Association("Grupos").Delete(grupo)
}

// Grupos returns the groups the coach is assigned to.
func (r *EntrenadorRepository) Grupos(entrenador *models.Entrenador) ([]models.GrupoAtleta, error) {
	var grupos []models.GrupoAtleta
	err := r.DB().Model(entrenador).Association("Grupos").Find(&grupos)
	return grupos, err
}

// TieneGrupo reports whether the coach is already linked to the group.
func (r *EntrenadorRepository) TieneGrupo(entrenadorID, grupoID uint) (bool, error) {
	var count int64
	err := r.DB().Table("entrenador_grupos").
		Where("entrenador_id = ? AND grupo_atleta_id = ?", entrenadorID, grupoID).
		Count(&count).Error
	return count > 0, err
}
