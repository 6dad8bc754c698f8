package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/dfmorales/basketball-api/internal/models"
)

// AtletaRepository adds athlete-specific lookups on top of the generic layer.
type AtletaRepository struct {
	*Repository[models.Atleta]
}

func NewAtletaRepository(db *gorm.DB) *AtletaRepository {
	return &AtletaRepository{NewRepository[models.Atleta](db)}
}

// FindByDNI returns the athlete with the given document number, active or not.
func (r *AtletaRepository) FindByDNI(dni string) (*models.Atleta, error) {
	return r.FindByField("dni", dni)
}

// FindByGrupo returns the active athletes assigned to a group.
func (r *AtletaRepository) FindByGrupo(grupoID uint) ([]models.Atleta, error) {
	return r.FindByFilters(map[string]interface{}{"grupo_id": grupoID}, true)
}

// FindBySexo returns the active athletes of the given sex.
func (r *AtletaRepository) FindBySexo(sexo string) ([]models.Atleta, error) {
	return r.FindByFilters(map[string]interface{}{"sexo": sexo}, true)
}

// FindByRangoEdad returns active athletes whose age falls in [min, max].
func (r *AtletaRepository) FindByRangoEdad(edadMin, edadMax int) ([]models.Atleta, error) {
	return r.FindByCriteria(map[string]interface{}{
		"edad__gte": edadMin,
		"edad__lte": edadMax,
	}, true)
}

// FindSinGrupo returns active athletes not assigned to any group.
func (r *AtletaRepository) FindSinGrupo() ([]models.Atleta, error) {
	return r.FindScoped(true, func(q *gorm.DB) *gorm.DB {
		return q.Where("grupo_id IS NULL")
	})
}

// BusquedaAtletas are the optional, ANDed search filters for athletes.
// Nil or empty fields are not applied.
type BusquedaAtletas struct {
	Nombre   string
	Apellido string
	GrupoID  *uint
	Sexo     string
	EdadMin  *int
	EdadMax  *int
}

// Criterios translates the filters into a criteria map for the generic
// lookups. Unset fields produce no entry.
func (b BusquedaAtletas) Criterios() map[string]interface{} {
	criteria := map[string]interface{}{}
	if strings.TrimSpace(b.Nombre) != "" {
		criteria["nombre_atleta__icontains"] = strings.TrimSpace(b.Nombre)
	}
	if strings.TrimSpace(b.Apellido) != "" {
		criteria["apellido_atleta__icontains"] = strings.TrimSpace(b.Apellido)
	}
	if b.GrupoID != nil {
		criteria["grupo_id"] = *b.GrupoID
	}
	if b.Sexo != "" {
		criteria["sexo"] = b.Sexo
	}
	if b.EdadMin != nil {
		criteria["edad__gte"] = *b.EdadMin
	}
	if b.EdadMax != nil {
		criteria["edad__lte"] = *b.EdadMax
	}
	return criteria
}

// Search returns the active athletes matching every provided filter. Name and
// surname match case-insensitive substrings; the rest are exact or bounds.
func (r *AtletaRepository) Search(b BusquedaAtletas) ([]models.Atleta, error) {
	return r.FindByCriteria(b.Criterios(), true)
}

// AsignarGrupo sets (or clears, with nil) the athlete's group reference.
func (r *AtletaRepository) AsignarGrupo(atletaID uint, grupoID *uint) error {
	return r.DB().Model(&models.Atleta{}).
		Where("id = ?", atletaID).
		Update("grupo_id", grupoID).Error
}
