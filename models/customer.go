package models

import "time"

type Customer struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	FirstName    string        `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName     string        `gorm:"type:varchar(100);not null" json:"last_name"`
	Email        string        `gorm:"type:varchar(255);not null" json:"email"`
	PhoneNumber  string        `gorm:"type:varchar(30)" json:"phone_number"`
	Reservations []Reservation `gorm:"foreignKey:CustomerID" json:"reservations,omitempty"`
	CreatedAt    time.Time     `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time     `gorm:"not null" json:"updated_at"`
}

func (c Customer) PrimaryKey() uint { return c.ID }
