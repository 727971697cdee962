package models

import "time"

// EmployeePosition enumerates the roles an employee can hold in a restaurant.
type EmployeePosition string

const (
	PositionManager   EmployeePosition = "manager"
	PositionChef      EmployeePosition = "chef"
	PositionWaiter    EmployeePosition = "waiter"
	PositionBartender EmployeePosition = "bartender"
)

type Employee struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	RestaurantID *uint            `gorm:"index" json:"restaurant_id"`
	Restaurant   *Restaurant      `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
	FirstName    string           `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName     string           `gorm:"type:varchar(100);not null" json:"last_name"`
	Position     EmployeePosition `gorm:"type:varchar(20);not null" json:"position"`
	Orders       []Order          `gorm:"foreignKey:EmployeeID" json:"orders,omitempty"`
	CreatedAt    time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time        `gorm:"not null" json:"updated_at"`
}

func (e Employee) PrimaryKey() uint { return e.ID }
