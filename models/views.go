package models

import "time"

// ReservationDetails is a read-only projection joining a reservation with
// its customer and restaurant. It has no table of its own.
type ReservationDetails struct {
	ReservationID          uint      `json:"reservation_id"`
	TableID                *uint     `json:"table_id"`
	ReservationDate        time.Time `json:"reservation_date"`
	PartySize              int       `json:"party_size"`
	CustomerID             *uint     `json:"customer_id"`
	CustomerFirstName      string    `json:"customer_first_name"`
	CustomerLastName       string    `json:"customer_last_name"`
	CustomerEmail          string    `json:"customer_email"`
	CustomerPhoneNumber    string    `json:"customer_phone_number"`
	RestaurantID           *uint     `json:"restaurant_id"`
	RestaurantName         string    `json:"restaurant_name"`
	RestaurantAddress      string    `json:"restaurant_address"`
	RestaurantPhoneNumber  string    `json:"restaurant_phone_number"`
	RestaurantOpeningHours string    `json:"restaurant_opening_hours"`
}

// EmployeeDetails is a read-only projection joining an employee with the
// restaurant they work at.
type EmployeeDetails struct {
	EmployeeID             uint             `json:"employee_id"`
	EmployeeFirstName      string           `json:"employee_first_name"`
	EmployeeLastName       string           `json:"employee_last_name"`
	EmployeePosition       EmployeePosition `json:"employee_position"`
	RestaurantID           *uint            `json:"restaurant_id"`
	RestaurantName         string           `json:"restaurant_name"`
	RestaurantAddress      string           `json:"restaurant_address"`
	RestaurantPhoneNumber  string           `json:"restaurant_phone_number"`
	RestaurantOpeningHours string           `json:"restaurant_opening_hours"`
}
