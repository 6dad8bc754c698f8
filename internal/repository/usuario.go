package repository

import (
	"gorm.io/gorm"

	"github.com/dfmorales/basketball-api/internal/models"
)

// UsuarioRepository covers the user stub. Users have no routes of their own;
// these lookups back the coach and student services.
type UsuarioRepository struct {
	*Repository[models.Usuario]
}

func NewUsuarioRepository(db *gorm.DB) *UsuarioRepository {
	return &UsuarioRepository{NewRepository[models.Usuario](db)}
}

// FindByEmail returns the user with the given email, or (nil, nil).
func (r *UsuarioRepository) FindByEmail(email string) (*models.Usuario, error) {
	return r.FindByField("email", email)
}

// FindByDNI returns the user with the given document number, or (nil, nil).
func (r *UsuarioRepository) FindByDNI(dni string) (*models.Usuario, error) {
	return r.FindByField("dni", dni)
}

// FindByRol returns the active users holding a role.
func (r *UsuarioRepository) FindByRol(rol models.RolUsuario) ([]models.Usuario, error) {
	return r.FindByFilters(map[string]interface{}{"rol": rol}, true)
}
