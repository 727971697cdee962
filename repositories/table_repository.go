package repositories

import (
	"errors"

	"gorm.io/gorm"

	"restaurant-reservation-api/models"
)

type TableRepository struct {
	*Repository[models.Table]
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{newRepository[models.Table](db, "Table")}
}

// Delete detaches the table's reservations before removing the table.
func (r *TableRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.First(&table, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Table", id)
			}
			return err
		}

		if err := tx.Model(&models.Reservation{}).
			Where("table_id = ?", id).
			Update("table_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&table).Error
	})
}
