package models

import "time"

type Table struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	RestaurantID *uint         `gorm:"index" json:"restaurant_id"`
	Restaurant   *Restaurant   `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
	Capacity     int           `gorm:"not null" json:"capacity"`
	Reservations []Reservation `gorm:"foreignKey:TableID" json:"reservations,omitempty"`
	CreatedAt    time.Time     `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time     `gorm:"not null" json:"updated_at"`
}

func (t Table) PrimaryKey() uint { return t.ID }
