package repositories

import (
	"errors"

	"gorm.io/gorm"

	"restaurant-reservation-api/models"
)

type RestaurantRepository struct {
	*Repository[models.Restaurant]
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{newRepository[models.Restaurant](db, "Restaurant")}
}

// Delete detaches the restaurant's reservations, employees and tables
// before removing the restaurant. Menu items keep their reference the same
// way, so they are detached as well. Everything happens in one transaction.
func (r *RestaurantRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Restaurant", id)
			}
			return err
		}

		dependents := []interface{}{
			&models.Reservation{},
			&models.Employee{},
			&models.Table{},
			&models.MenuItem{},
		}
		for _, dependent := range dependents {
			if err := tx.Model(dependent).
				Where("restaurant_id = ?", id).
				Update("restaurant_id", nil).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&restaurant).Error
	})
}

// CalculateRevenue sums the total amount of every order placed through a
// reservation at the restaurant. A restaurant with no orders yields 0.
func (r *RestaurantRepository) CalculateRevenue(restaurantID uint) (float64, error) {
	exists, err := r.Exists(restaurantID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, notFound("Restaurant", restaurantID)
	}

	var revenue float64
	err = r.DB.Model(&models.Order{}).
		Joins("JOIN reservations ON reservations.id = orders.reservation_id").
		Where("reservations.restaurant_id = ?", restaurantID).
		Select("COALESCE(SUM(orders.total_amount), 0)").
		Scan(&revenue).Error
	return revenue, err
}
