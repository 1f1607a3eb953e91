package models

import "time"

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CheckIn  time.Time `gorm:"not null" json:"check_in"`
	CheckOut time.Time `gorm:"not null" json:"check_out"`

	NumberOfPeople int `gorm:"not null" json:"number_of_people"`

	RoomID uint  `json:"room_id"`
	Room   *Room `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"room,omitempty"`

	ClientID uint    `json:"client_id"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
