package repositories

import (
	"gorm.io/gorm"

	"restaurant-reservation-api/models"
)

type MenuItemRepository struct {
	*Repository[models.MenuItem]
}

func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{newRepository[models.MenuItem](db, "MenuItem")}
}

// ListOrderedMenuItems returns the distinct menu items that appear on any
// order belonging to the reservation.
func (r *MenuItemRepository) ListOrderedMenuItems(reservationID uint) ([]models.MenuItem, error) {
	var count int64
	if err := r.DB.Model(&models.Reservation{}).Where("id = ?", reservationID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, notFound("Reservation", reservationID)
	}

	items := []models.MenuItem{}
	err := r.DB.
		Distinct("menu_items.*").
		Joins("JOIN order_items ON order_items.menu_item_id = menu_items.id").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.reservation_id = ?", reservationID).
		Find(&items).Error
	return items, err
}
