package models

import "time"

// Reservation keeps nullable references to its customer, restaurant and
// table. Deleting any of those parents detaches the reservation instead of
// removing it, so the foreign keys must survive being set to NULL.
type Reservation struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	CustomerID      *uint       `gorm:"index" json:"customer_id"`
	Customer        *Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	RestaurantID    *uint       `gorm:"index" json:"restaurant_id"`
	Restaurant      *Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
	TableID         *uint       `gorm:"index" json:"table_id"`
	Table           *Table      `gorm:"foreignKey:TableID" json:"table,omitempty"`
	ReservationDate time.Time   `gorm:"not null" json:"reservation_date"`
	PartySize       int         `gorm:"not null" json:"party_size"`
	Orders          []Order     `gorm:"foreignKey:ReservationID" json:"orders,omitempty"`
	CreatedAt       time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time   `gorm:"not null" json:"updated_at"`
}

func (r Reservation) PrimaryKey() uint { return r.ID }
