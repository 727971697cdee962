package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"restaurant-reservation-api/models"
)

type RoleRepository struct {
	*Repository[models.Role]
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{newRepository[models.Role](db, "Role")}
}

// GetByName looks a role up by its unique name.
func (r *RoleRepository) GetByName(name string) (*models.Role, error) {
	var role models.Role
	if err := r.DB.Where("name = ?", name).First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("role %q %w", name, ErrNotFound)
		}
		return nil, err
	}
	return &role, nil
}
