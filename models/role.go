package models

import "time"

const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

type Role struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(50);unique;not null" json:"name"`
	Users     []User    `gorm:"many2many:user_roles" json:"-"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (r Role) PrimaryKey() uint { return r.ID }
