package models

import "time"

type MenuItem struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	RestaurantID *uint       `gorm:"index" json:"restaurant_id"`
	Restaurant   *Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
	Name         string      `gorm:"type:varchar(255);not null" json:"name"`
	Description  string      `gorm:"type:text" json:"description"`
	Price        float64     `gorm:"type:decimal(10,2);not null" json:"price"`
	OrderItems   []OrderItem `gorm:"foreignKey:MenuItemID" json:"order_items,omitempty"`
	CreatedAt    time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"not null" json:"updated_at"`
}

func (mi MenuItem) PrimaryKey() uint { return mi.ID }
