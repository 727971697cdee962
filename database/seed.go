package database

import (
	"time"

	"gorm.io/gorm"

	"restaurant-reservation-api/models"
)

// SeedRoles makes sure the two authorization roles exist. Idempotent.
func SeedRoles(db *gorm.DB) error {
	for _, name := range []string{models.RoleUser, models.RoleAdmin} {
		var count int64
		if err := db.Model(&models.Role{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&models.Role{Name: name}).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// SeedSampleData loads a small fixture set into an empty database so the
// API has something to serve on first run. Skipped when any restaurant
// already exists.
func SeedSampleData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		restaurant := models.Restaurant{
			Name:         "The Golden Fork",
			Address:      "12 Harbor Street",
			PhoneNumber:  "555-0101",
			OpeningHours: "10:00-22:00",
		}
		if err := tx.Create(&restaurant).Error; err != nil {
			return err
		}

		employee := models.Employee{
			RestaurantID: &restaurant.ID,
			FirstName:    "Maria",
			LastName:     "Lopez",
			Position:     models.PositionManager,
		}
		if err := tx.Create(&employee).Error; err != nil {
			return err
		}

		table := models.Table{RestaurantID: &restaurant.ID, Capacity: 4}
		if err := tx.Create(&table).Error; err != nil {
			return err
		}

		menuItem := models.MenuItem{
			RestaurantID: &restaurant.ID,
			Name:         "Grilled Salmon",
			Description:  "Salmon fillet with lemon butter",
			Price:        18.50,
		}
		if err := tx.Create(&menuItem).Error; err != nil {
			return err
		}

		customer := models.Customer{
			FirstName:   "James",
			LastName:    "Carter",
			Email:       "james.carter@example.com",
			PhoneNumber: "555-0199",
		}
		if err := tx.Create(&customer).Error; err != nil {
			return err
		}

		reservation := models.Reservation{
			CustomerID:      &customer.ID,
			RestaurantID:    &restaurant.ID,
			TableID:         &table.ID,
			ReservationDate: time.Now().Add(48 * time.Hour),
			PartySize:       4,
		}
		if err := tx.Create(&reservation).Error; err != nil {
			return err
		}

		order := models.Order{
			ReservationID: &reservation.ID,
			EmployeeID:    &employee.ID,
			OrderDate:     time.Now(),
			TotalAmount:   18.50,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		orderItem := models.OrderItem{
			OrderID:    order.ID,
			MenuItemID: menuItem.ID,
			Quantity:   1,
		}
		return tx.Create(&orderItem).Error
	})
}
