package repositories

import (
	"gorm.io/gorm"

	"restaurant-reservation-api/models"
)

type OrderItemRepository struct {
	*Repository[models.OrderItem]
}

func NewOrderItemRepository(db *gorm.DB) *OrderItemRepository {
	return &OrderItemRepository{newRepository[models.OrderItem](db, "OrderItem")}
}
