package models

import "time"

type Restaurant struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	Name         string        `gorm:"type:varchar(255);not null" json:"name"`
	Address      string        `gorm:"type:varchar(255)" json:"address"`
	PhoneNumber  string        `gorm:"type:varchar(30)" json:"phone_number"`
	OpeningHours string        `gorm:"type:varchar(100)" json:"opening_hours"`
	Employees    []Employee    `gorm:"foreignKey:RestaurantID" json:"employees,omitempty"`
	MenuItems    []MenuItem    `gorm:"foreignKey:RestaurantID" json:"menu_items,omitempty"`
	Tables       []Table       `gorm:"foreignKey:RestaurantID" json:"tables,omitempty"`
	Reservations []Reservation `gorm:"foreignKey:RestaurantID" json:"reservations,omitempty"`
	CreatedAt    time.Time     `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time     `gorm:"not null" json:"updated_at"`
}

func (r Restaurant) PrimaryKey() uint { return r.ID }
