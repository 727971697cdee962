package repositories

import (
	"errors"

	"gorm.io/gorm"

	"restaurant-reservation-api/models"
)

// Filter narrows a query before pagination is applied. A nil Filter matches
// every row.
type Filter func(tx *gorm.DB) *gorm.DB

// Repository provides uniform CRUD and pagination for a single entity type.
// Entity-specific repositories embed it and add their own queries; the five
// entities with dependents shadow Delete to detach children first.
type Repository[T models.Entity] struct {
	DB   *gorm.DB
	name string
}

func newRepository[T models.Entity](db *gorm.DB, name string) *Repository[T] {
	return &Repository[T]{DB: db, name: name}
}

// GetAll returns one page of rows matching the filter together with the
// pagination metadata for the whole filtered set. Page and size validation
// happens at the API boundary, not here.
func (r *Repository[T]) GetAll(filter Filter, pageNumber, pageSize int) ([]T, models.PaginationMetadata, error) {
	query := func() *gorm.DB {
		tx := r.DB.Model(new(T))
		if filter != nil {
			tx = filter(tx)
		}
		return tx
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, models.PaginationMetadata{}, err
	}

	items := []T{}
	offset := pageSize * (pageNumber - 1)
	if err := query().Offset(offset).Limit(pageSize).Find(&items).Error; err != nil {
		return nil, models.PaginationMetadata{}, err
	}

	return items, models.NewPaginationMetadata(int(total), pageSize, pageNumber), nil
}

// GetByID loads a single row, or ErrNotFound.
func (r *Repository[T]) GetByID(id uint) (*T, error) {
	var entity T
	if err := r.DB.First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(r.name, id)
		}
		return nil, err
	}
	return &entity, nil
}

// Create inserts the entity and returns it with the generated ID populated.
func (r *Repository[T]) Create(entity *T) (*T, error) {
	if entity == nil {
		return nil, ErrInvalidArgument
	}
	if err := r.DB.Create(entity).Error; err != nil {
		return nil, err
	}
	return entity, nil
}

// Update overwrites every field of the row identified by the entity's ID.
func (r *Repository[T]) Update(entity *T) error {
	if entity == nil {
		return ErrInvalidArgument
	}

	id := (*entity).PrimaryKey()
	exists, err := r.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return notFound(r.name, id)
	}

	return r.DB.Save(entity).Error
}

// Delete removes the row with the given id, or fails with ErrNotFound
// without touching anything.
func (r *Repository[T]) Delete(id uint) error {
	var entity T
	if err := r.DB.First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(r.name, id)
		}
		return err
	}
	return r.DB.Delete(&entity).Error
}

// Exists reports whether a row with the given primary key is present.
func (r *Repository[T]) Exists(id uint) (bool, error) {
	var count int64
	if err := r.DB.Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
