package models

import "time"

type Order struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	ReservationID *uint        `gorm:"index" json:"reservation_id"`
	Reservation   *Reservation `gorm:"foreignKey:ReservationID" json:"reservation,omitempty"`
	EmployeeID    *uint        `gorm:"index" json:"employee_id"`
	Employee      *Employee    `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	OrderDate     time.Time    `gorm:"not null" json:"order_date"`
	TotalAmount   float64      `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_amount"`
	OrderItems    []OrderItem  `gorm:"foreignKey:OrderID" json:"order_items,omitempty"`
	CreatedAt     time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"not null" json:"updated_at"`
}

func (o Order) PrimaryKey() uint { return o.ID }
