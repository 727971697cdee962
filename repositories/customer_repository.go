package repositories

import (
	"errors"

	"gorm.io/gorm"

	"restaurant-reservation-api/models"
)

type CustomerRepository struct {
	*Repository[models.Customer]
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{newRepository[models.Customer](db, "Customer")}
}

// Delete detaches the customer's reservations before removing the customer,
// all in one transaction. The reservations stay behind with a NULL
// customer reference.
func (r *CustomerRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Customer", id)
			}
			return err
		}

		if err := tx.Model(&models.Reservation{}).
			Where("customer_id = ?", id).
			Update("customer_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&customer).Error
	})
}

// FindWithPartySizeLargerThan returns the distinct customers holding at
// least one reservation with a party size above the threshold.
func (r *CustomerRepository) FindWithPartySizeLargerThan(minPartySize int) ([]models.Customer, error) {
	customers := []models.Customer{}
	err := r.DB.
		Distinct("customers.*").
		Joins("JOIN reservations ON reservations.customer_id = customers.id").
		Where("reservations.party_size > ?", minPartySize).
		Find(&customers).Error
	return customers, err
}
