package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"restaurant-reservation-api/models"
)

// newTestDB opens a fresh in-memory SQLite database named after the test so
// parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Customer{},
		&models.Restaurant{},
		&models.Employee{},
		&models.Table{},
		&models.MenuItem{},
		&models.Reservation{},
		&models.Order{},
		&models.OrderItem{},
	)
	require.NoError(t, err)
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, first, last string) models.Customer {
	t.Helper()
	customer := models.Customer{
		FirstName: first,
		LastName:  last,
		Email:     fmt.Sprintf("%s.%s@example.com", first, last),
	}
	require.NoError(t, db.Create(&customer).Error)
	return customer
}

func seedRestaurant(t *testing.T, db *gorm.DB, name string) models.Restaurant {
	t.Helper()
	restaurant := models.Restaurant{
		Name:         name,
		Address:      "1 Test Street",
		PhoneNumber:  "555-0100",
		OpeningHours: "09:00-21:00",
	}
	require.NoError(t, db.Create(&restaurant).Error)
	return restaurant
}

func seedEmployee(t *testing.T, db *gorm.DB, restaurantID uint, position models.EmployeePosition) models.Employee {
	t.Helper()
	employee := models.Employee{
		RestaurantID: &restaurantID,
		FirstName:    "Test",
		LastName:     "Employee",
		Position:     position,
	}
	require.NoError(t, db.Create(&employee).Error)
	return employee
}

func seedReservation(t *testing.T, db *gorm.DB, customerID, restaurantID, tableID *uint, partySize int) models.Reservation {
	t.Helper()
	reservation := models.Reservation{
		CustomerID:      customerID,
		RestaurantID:    restaurantID,
		TableID:         tableID,
		ReservationDate: time.Now().Add(24 * time.Hour),
		PartySize:       partySize,
	}
	require.NoError(t, db.Create(&reservation).Error)
	return reservation
}

func seedOrder(t *testing.T, db *gorm.DB, reservationID, employeeID *uint, amount float64) models.Order {
	t.Helper()
	order := models.Order{
		ReservationID: reservationID,
		EmployeeID:    employeeID,
		OrderDate:     time.Now(),
		TotalAmount:   amount,
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}
