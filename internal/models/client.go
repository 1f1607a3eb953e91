package models

import "time"

// Birthdate carries a date only; it travels as "YYYY-MM-DD" on the wire.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string     `gorm:"size:100" json:"name"`
	Surname   string     `gorm:"size:100" json:"surname"`
	Address   string     `gorm:"size:255" json:"address"`
	Birthdate *time.Time `json:"birthdate"`
	Note      string     `gorm:"size:255" json:"note"`

	UserID *uint `json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
