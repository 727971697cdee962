package repositories

import (
	"gorm.io/gorm"

	"restaurant-reservation-api/models"
)

type OrderRepository struct {
	*Repository[models.Order]
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{newRepository[models.Order](db, "Order")}
}

// ListOrdersAndMenuItems returns the reservation's orders with their items
// and the menu item behind each.
func (r *OrderRepository) ListOrdersAndMenuItems(reservationID uint) ([]models.Order, error) {
	var count int64
	if err := r.DB.Model(&models.Reservation{}).Where("id = ?", reservationID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, notFound("Reservation", reservationID)
	}

	orders := []models.Order{}
	err := r.DB.Where("reservation_id = ?", reservationID).
		Preload("OrderItems").
		Preload("OrderItems.MenuItem").
		Find(&orders).Error
	return orders, err
}

// CalculateAverageOrderAmount returns the arithmetic mean of the total
// amounts of the employee's orders. An employee with no orders yields 0.
func (r *OrderRepository) CalculateAverageOrderAmount(employeeID uint) (float64, error) {
	var count int64
	if err := r.DB.Model(&models.Employee{}).Where("id = ?", employeeID).Count(&count).Error; err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, notFound("Employee", employeeID)
	}

	var average float64
	err := r.DB.Model(&models.Order{}).
		Where("employee_id = ?", employeeID).
		Select("COALESCE(AVG(total_amount), 0)").
		Scan(&average).Error
	return average, err
}
