package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/hotelio/hotel-manager/internal/audit"
	"github.com/hotelio/hotel-manager/internal/httperr"
	"github.com/hotelio/hotel-manager/internal/models"
)

type ClientService struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewClientService(db *gorm.DB, dispatcher *audit.Dispatcher) *ClientService {
	return &ClientService{db: db, audit: dispatcher}
}

type CreateClientInput struct {
	Name      string
	Surname   string
	Address   string
	Birthdate *string
	Note      string
	Email     string
	Password  string
}

type UpdateClientInput struct {
	Name      *string
	Surname   *string
	Address   *string
	Birthdate *string
	Note      *string
	Email     *string
	Password  *string
}

func (s *ClientService) List(ctx context.Context) ([]models.Client, error) {
	clients := []models.Client{}
	if err := s.db.WithContext(ctx).
		Preload("User").
		Order("id ASC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (s *ClientService) Create(ctx context.Context, in CreateClientInput) (*models.Client, error) {
	if in.Email == "" || in.Password == "" {
		return nil, httperr.Validation("missing_credentials", "Email and password are required!")
	}

	birthdate, err := parseBirthdate(in.Birthdate)
	if err != nil {
		return nil, err
	}

	var client models.Client

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		email := normalizeEmail(in.Email)

		taken, err := emailTaken(tx, email, 0)
		if err != nil {
			return err
		}
		if taken {
			return httperr.Conflict("email_already_exists", "Email already exists!")
		}

		hashed, err := hashPassword(in.Password)
		if err != nil {
			return err
		}

		user := models.User{
			Email:        email,
			PasswordHash: hashed,
			Role:         models.RoleClient,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		client = models.Client{
			Name:      in.Name,
			Surname:   in.Surname,
			Address:   in.Address,
			Birthdate: birthdate,
			Note:      in.Note,
			UserID:    &user.ID,
		}
		return tx.Create(&client).Error
	})
	if err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "client_created",
		Entity:   "client",
		EntityID: &client.ID,
	})

	return s.getWithUser(ctx, client.ID)
}

func (s *ClientService) Update(ctx context.Context, id uint, in UpdateClientInput) (*models.Client, error) {
	birthdate, err := parseBirthdate(in.Birthdate)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var client models.Client
		if err := tx.First(&client, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.NotFoundErr("client_not_found", "Client not found!")
			}
			return err
		}

		if client.UserID != nil && (in.Email != nil || in.Password != nil) {
			var user models.User
			if err := tx.First(&user, *client.UserID).Error; err != nil {
				return err
			}

			if in.Email != nil {
				email := normalizeEmail(*in.Email)
				taken, err := emailTaken(tx, email, user.ID)
				if err != nil {
					return err
				}
				if taken {
					return httperr.Conflict("email_already_exists", "Email already exists!")
				}
				user.Email = email
			}
			if in.Password != nil {
				hashed, err := hashPassword(*in.Password)
				if err != nil {
					return err
				}
				user.PasswordHash = hashed
			}

			if err := tx.Save(&user).Error; err != nil {
				return err
			}
		}

		if in.Name != nil {
			client.Name = *in.Name
		}
		if in.Surname != nil {
			client.Surname = *in.Surname
		}
		if in.Address != nil {
			client.Address = *in.Address
		}
		if in.Birthdate != nil {
			client.Birthdate = birthdate
		}
		if in.Note != nil {
			client.Note = *in.Note
		}

		return tx.Save(&client).Error
	})
	if err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "client_updated",
		Entity:   "client",
		EntityID: &id,
	})

	return s.getWithUser(ctx, id)
}

// Delete refuses to remove a client that still has a reservation; the
// blocking reservation is named in the error. Otherwise the linked user
// and the client go together in one transaction.
func (s *ClientService) Delete(ctx context.Context, id uint) error {
	db := s.db.WithContext(ctx)

	var client models.Client
	if err := db.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.NotFoundErr("client_not_found", "Client not found")
		}
		return err
	}

	var reservation models.Reservation
	err := db.Where("client_id = ?", id).First(&reservation).Error
	if err == nil {
		return httperr.Validation(
			"client_has_reservation",
			fmt.Sprintf("Cannot delete client: Client with ID %d has an active reservation (ID %d).", id, reservation.ID),
		)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if client.UserID != nil {
			if err := tx.Delete(&models.User{}, *client.UserID).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Client{}, id).Error
	})
	if err != nil {
		return err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: &id,
	})

	return nil
}

func (s *ClientService) getWithUser(ctx context.Context, id uint) (*models.Client, error) {
	var client models.Client
	if err := s.db.WithContext(ctx).
		Preload("User").
		First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func parseBirthdate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := parseDate(*value)
	if err != nil {
		return nil, httperr.Validation("invalid_birthdate", "Birthdate must be a valid YYYY-MM-DD date")
	}
	return &t, nil
}
