package models

import "time"

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Type        string  `gorm:"size:50" json:"type"`
	Price       float64 `json:"price"`
	Available   bool    `gorm:"default:true" json:"available"`
	Description string  `gorm:"size:255" json:"description"`
	Capacity    int     `json:"capacity"`

	OwnerID *uint  `json:"owner_id"`
	Owner   *Owner `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"owner,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
