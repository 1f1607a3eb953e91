package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/hotelio/hotel-manager/internal/audit"
	"github.com/hotelio/hotel-manager/internal/httperr"
	"github.com/hotelio/hotel-manager/internal/models"
)

type ReservationService struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewReservationService(db *gorm.DB, dispatcher *audit.Dispatcher) *ReservationService {
	return &ReservationService{db: db, audit: dispatcher}
}

type CreateReservationInput struct {
	CheckIn        string
	CheckOut       string
	RoomID         *uint
	ClientID       *uint
	NumberOfPeople *int
}

type UpdateReservationInput struct {
	CheckIn        *string
	CheckOut       *string
	RoomID         *uint
	ClientID       *uint
	NumberOfPeople *int
}

func (s *ReservationService) List(ctx context.Context) ([]models.Reservation, error) {
	reservations := []models.Reservation{}
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (s *ReservationService) Create(ctx context.Context, in CreateReservationInput) (*models.Reservation, error) {
	var missing []string
	if strings.TrimSpace(in.CheckIn) == "" {
		missing = append(missing, "check_in")
	}
	if strings.TrimSpace(in.CheckOut) == "" {
		missing = append(missing, "check_out")
	}
	if in.RoomID == nil {
		missing = append(missing, "room_id")
	}
	if in.ClientID == nil {
		missing = append(missing, "client_id")
	}
	if in.NumberOfPeople == nil {
		missing = append(missing, "number_of_people")
	}
	if len(missing) > 0 {
		return nil, httperr.Validation(
			"missing_required_fields",
			fmt.Sprintf("Missing required fields: %s are mandatory.", strings.Join(missing, ", ")),
		)
	}

	checkIn, err := parseDate(in.CheckIn)
	if err != nil {
		return nil, httperr.Validation("invalid_check_in", "check_in must be a valid YYYY-MM-DD date")
	}
	checkOut, err := parseDate(in.CheckOut)
	if err != nil {
		return nil, httperr.Validation("invalid_check_out", "check_out must be a valid YYYY-MM-DD date")
	}

	db := s.db.WithContext(ctx)

	if err := s.assertRoomExists(db, *in.RoomID); err != nil {
		return nil, err
	}
	if err := s.assertClientExists(db, *in.ClientID); err != nil {
		return nil, err
	}

	reservation := models.Reservation{
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		NumberOfPeople: *in.NumberOfPeople,
		RoomID:         *in.RoomID,
		ClientID:       *in.ClientID,
	}

	if err := db.Create(&reservation).Error; err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &reservation.ID,
	})

	return &reservation, nil
}

func (s *ReservationService) Update(ctx context.Context, id uint, in UpdateReservationInput) (*models.Reservation, error) {
	db := s.db.WithContext(ctx)

	var reservation models.Reservation
	if err := db.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFoundErr("reservation_not_found", "Reservation not found !")
		}
		return nil, err
	}

	if in.CheckIn != nil {
		checkIn, err := parseDate(*in.CheckIn)
		if err != nil {
			return nil, httperr.Validation("invalid_check_in", "check_in must be a valid YYYY-MM-DD date")
		}
		reservation.CheckIn = checkIn
	}
	if in.CheckOut != nil {
		checkOut, err := parseDate(*in.CheckOut)
		if err != nil {
			return nil, httperr.Validation("invalid_check_out", "check_out must be a valid YYYY-MM-DD date")
		}
		reservation.CheckOut = checkOut
	}
	if in.RoomID != nil {
		if err := s.assertRoomExists(db, *in.RoomID); err != nil {
			return nil, err
		}
		reservation.RoomID = *in.RoomID
	}
	if in.ClientID != nil {
		if err := s.assertClientExists(db, *in.ClientID); err != nil {
			return nil, err
		}
		reservation.ClientID = *in.ClientID
	}
	if in.NumberOfPeople != nil {
		reservation.NumberOfPeople = *in.NumberOfPeople
	}

	if err := db.Save(&reservation).Error; err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "reservation_updated",
		Entity:   "reservation",
		EntityID: &reservation.ID,
	})

	return &reservation, nil
}

// Reservations are the leaf entity; nothing references them, so delete
// is unconditional once the row resolves.
func (s *ReservationService) Delete(ctx context.Context, id uint) error {
	db := s.db.WithContext(ctx)

	var reservation models.Reservation
	if err := db.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.NotFoundErr("reservation_not_found", "Reservation not found")
		}
		return err
	}

	if err := db.Delete(&models.Reservation{}, id).Error; err != nil {
		return err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "reservation_deleted",
		Entity:   "reservation",
		EntityID: &id,
	})

	return nil
}

func (s *ReservationService) assertRoomExists(db *gorm.DB, roomID uint) error {
	var room models.Room
	if err := db.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.NotFoundErr("room_not_found", fmt.Sprintf("Room with ID %d not found", roomID))
		}
		return err
	}
	return nil
}

func (s *ReservationService) assertClientExists(db *gorm.DB, clientID uint) error {
	var client models.Client
	if err := db.First(&client, clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.NotFoundErr("client_not_found", fmt.Sprintf("Client with ID %d not found", clientID))
		}
		return err
	}
	return nil
}
