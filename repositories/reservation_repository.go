package repositories

import (
	"errors"

	"gorm.io/gorm"

	"restaurant-reservation-api/models"
)

type ReservationRepository struct {
	*Repository[models.Reservation]
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{newRepository[models.Reservation](db, "Reservation")}
}

// Delete detaches the reservation's orders before removing the
// reservation. Orders stay visible with a NULL reservation reference.
func (r *ReservationRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := tx.First(&reservation, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Reservation", id)
			}
			return err
		}

		if err := tx.Model(&models.Order{}).
			Where("reservation_id = ?", id).
			Update("reservation_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&reservation).Error
	})
}

// GetReservationsWithDetails returns the reservation/customer/restaurant
// join projection.
func (r *ReservationRepository) GetReservationsWithDetails() ([]models.ReservationDetails, error) {
	details := []models.ReservationDetails{}
	err := r.DB.Model(&models.Reservation{}).
		Select(`reservations.id AS reservation_id,
			reservations.table_id AS table_id,
			reservations.reservation_date AS reservation_date,
			reservations.party_size AS party_size,
			reservations.customer_id AS customer_id,
			customers.first_name AS customer_first_name,
			customers.last_name AS customer_last_name,
			customers.email AS customer_email,
			customers.phone_number AS customer_phone_number,
			reservations.restaurant_id AS restaurant_id,
			restaurants.name AS restaurant_name,
			restaurants.address AS restaurant_address,
			restaurants.phone_number AS restaurant_phone_number,
			restaurants.opening_hours AS restaurant_opening_hours`).
		Joins("LEFT JOIN customers ON customers.id = reservations.customer_id").
		Joins("LEFT JOIN restaurants ON restaurants.id = reservations.restaurant_id").
		Scan(&details).Error
	return details, err
}
