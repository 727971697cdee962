package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-reservation-api/models"
)

func TestCustomerDeleteDetachesReservations(t *testing.T) {
	db := newTestDB(t)
	repo := NewCustomerRepository(db)

	customer := seedCustomer(t, db, "To", "Delete")
	reservation := seedReservation(t, db, &customer.ID, nil, nil, 2)

	require.NoError(t, repo.Delete(customer.ID))

	var kept models.Reservation
	require.NoError(t, db.First(&kept, reservation.ID).Error)
	assert.Nil(t, kept.CustomerID)

	_, err := repo.GetByID(customer.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEmployeeDeleteDetachesOrders(t *testing.T) {
	db := newTestDB(t)
	repo := NewEmployeeRepository(db)

	restaurant := seedRestaurant(t, db, "Employer")
	employee := seedEmployee(t, db, restaurant.ID, models.PositionWaiter)
	order := seedOrder(t, db, nil, &employee.ID, 12.00)

	require.NoError(t, repo.Delete(employee.ID))

	var kept models.Order
	require.NoError(t, db.First(&kept, order.ID).Error)
	assert.Nil(t, kept.EmployeeID)
}

func TestRestaurantDeleteDetachesAllDependents(t *testing.T) {
	db := newTestDB(t)
	repo := NewRestaurantRepository(db)

	restaurant := seedRestaurant(t, db, "Closing Down")
	employee := seedEmployee(t, db, restaurant.ID, models.PositionChef)
	table := models.Table{RestaurantID: &restaurant.ID, Capacity: 4}
	require.NoError(t, db.Create(&table).Error)
	menuItem := models.MenuItem{RestaurantID: &restaurant.ID, Name: "Soup", Price: 6.50}
	require.NoError(t, db.Create(&menuItem).Error)
	reservation := seedReservation(t, db, nil, &restaurant.ID, &table.ID, 3)

	require.NoError(t, repo.Delete(restaurant.ID))

	var keptEmployee models.Employee
	require.NoError(t, db.First(&keptEmployee, employee.ID).Error)
	assert.Nil(t, keptEmployee.RestaurantID)

	var keptTable models.Table
	require.NoError(t, db.First(&keptTable, table.ID).Error)
	assert.Nil(t, keptTable.RestaurantID)

	var keptMenuItem models.MenuItem
	require.NoError(t, db.First(&keptMenuItem, menuItem.ID).Error)
	assert.Nil(t, keptMenuItem.RestaurantID)

	var keptReservation models.Reservation
	require.NoError(t, db.First(&keptReservation, reservation.ID).Error)
	assert.Nil(t, keptReservation.RestaurantID)
	// The table reference is unrelated to the restaurant and survives.
	assert.NotNil(t, keptReservation.TableID)
}

func TestTableDeleteDetachesReservations(t *testing.T) {
	db := newTestDB(t)
	repo := NewTableRepository(db)

	restaurant := seedRestaurant(t, db, "Host")
	table := models.Table{RestaurantID: &restaurant.ID, Capacity: 2}
	require.NoError(t, db.Create(&table).Error)
	reservation := seedReservation(t, db, nil, &restaurant.ID, &table.ID, 2)

	require.NoError(t, repo.Delete(table.ID))

	var kept models.Reservation
	require.NoError(t, db.First(&kept, reservation.ID).Error)
	assert.Nil(t, kept.TableID)
	assert.NotNil(t, kept.RestaurantID)
}

func TestReservationDeleteDetachesOrders(t *testing.T) {
	db := newTestDB(t)
	repo := NewReservationRepository(db)

	reservation := seedReservation(t, db, nil, nil, nil, 5)
	order := seedOrder(t, db, &reservation.ID, nil, 40.00)

	require.NoError(t, repo.Delete(reservation.ID))

	var kept models.Order
	require.NoError(t, db.First(&kept, order.ID).Error)
	assert.Nil(t, kept.ReservationID)
}

func TestCascadeDeleteUnknownParent(t *testing.T) {
	db := newTestDB(t)

	assert.ErrorIs(t, NewCustomerRepository(db).Delete(77), ErrNotFound)
	assert.ErrorIs(t, NewEmployeeRepository(db).Delete(77), ErrNotFound)
	assert.ErrorIs(t, NewRestaurantRepository(db).Delete(77), ErrNotFound)
	assert.ErrorIs(t, NewTableRepository(db).Delete(77), ErrNotFound)
	assert.ErrorIs(t, NewReservationRepository(db).Delete(77), ErrNotFound)
}
