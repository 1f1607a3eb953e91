package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/hotelio/hotel-manager/internal/audit"
	"github.com/hotelio/hotel-manager/internal/httperr"
	"github.com/hotelio/hotel-manager/internal/models"
)

type OwnerService struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewOwnerService(db *gorm.DB, dispatcher *audit.Dispatcher) *OwnerService {
	return &OwnerService{db: db, audit: dispatcher}
}

type CreateOwnerInput struct {
	Name     string
	Email    *string
	Password *string
}

type UpdateOwnerInput struct {
	Name     string
	Email    *string
	Password *string
}

func (s *OwnerService) List(ctx context.Context) ([]models.Owner, error) {
	owners := []models.Owner{}
	if err := s.db.WithContext(ctx).
		Preload("User").
		Order("id ASC").
		Find(&owners).Error; err != nil {
		return nil, err
	}
	return owners, nil
}

// Create writes the credential record and the owner in one transaction,
// so a failed second insert never leaves an orphaned user behind.
func (s *OwnerService) Create(ctx context.Context, in CreateOwnerInput) (*models.Owner, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, httperr.Validation("name_required", "Name is required")
	}
	if in.Email != nil && in.Password == nil {
		return nil, httperr.Validation("password_required", "Password is required when an email is supplied")
	}

	var owner models.Owner

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var userID *uint

		if in.Email != nil {
			email := normalizeEmail(*in.Email)

			taken, err := emailTaken(tx, email, 0)
			if err != nil {
				return err
			}
			if taken {
				return httperr.Conflict("email_already_exists", "Email already exists!")
			}

			hashed, err := hashPassword(*in.Password)
			if err != nil {
				return err
			}

			user := models.User{
				Email:        email,
				PasswordHash: hashed,
				Role:         models.RoleOwner,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			userID = &user.ID
		}

		owner = models.Owner{
			Name:   strings.TrimSpace(in.Name),
			UserID: userID,
		}
		return tx.Create(&owner).Error
	})
	if err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "owner_created",
		Entity:   "owner",
		EntityID: &owner.ID,
	})

	return s.getWithUser(ctx, owner.ID)
}

func (s *OwnerService) Update(ctx context.Context, id uint, in UpdateOwnerInput) (*models.Owner, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, httperr.Validation("name_required", "Owner name is required!")
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owner models.Owner
		if err := tx.First(&owner, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.NotFoundErr("owner_not_found", "Owner not found")
			}
			return err
		}

		// The linked user is only touched for the fields actually sent.
		if owner.UserID != nil && (in.Email != nil || in.Password != nil) {
			var user models.User
			if err := tx.First(&user, *owner.UserID).Error; err != nil {
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

		owner.Name = strings.TrimSpace(in.Name)
		return tx.Save(&owner).Error
	})
	if err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "owner_updated",
		Entity:   "owner",
		EntityID: &id,
	})

	return s.getWithUser(ctx, id)
}

// Delete removes the linked user and the owner together. Rooms keep
// existing; their owner reference is nulled by the foreign key.
func (s *OwnerService) Delete(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owner models.Owner
		if err := tx.First(&owner, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.NotFoundErr("owner_not_found", "Owner not found")
			}
			return err
		}

		if owner.UserID != nil {
			if err := tx.Delete(&models.User{}, *owner.UserID).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.Owner{}, id).Error
	})
	if err != nil {
		return err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "owner_deleted",
		Entity:   "owner",
		EntityID: &id,
	})

	return nil
}

func (s *OwnerService) getWithUser(ctx context.Context, id uint) (*models.Owner, error) {
	var owner models.Owner
	if err := s.db.WithContext(ctx).
		Preload("User").
		First(&owner, id).Error; err != nil {
		return nil, err
	}
	return &owner, nil
}
