package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hotelio/hotel-manager/internal/audit"
	"github.com/hotelio/hotel-manager/internal/httperr"
	"github.com/hotelio/hotel-manager/internal/models"
)

type UserService struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewUserService(db *gorm.DB, dispatcher *audit.Dispatcher) *UserService {
	return &UserService{db: db, audit: dispatcher}
}

type CreateUserInput struct {
	Email    string
	Password string
	Role     string
}

type UpdateUserInput struct {
	Email    *string
	Password *string
	Role     *string
}

func validRole(role string) bool {
	switch role {
	case models.RoleAdmin, models.RoleOwner, models.RoleClient:
		return true
	}
	return false
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFoundErr("user_not_found", "User not found")
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*models.User, error) {
	if in.Email == "" || in.Password == "" || in.Role == "" {
		return nil, httperr.Validation("missing_required_fields", "Email, password and role are required")
	}
	if !validRole(in.Role) {
		return nil, httperr.Validation("invalid_role", "Role must be one of: admin, owner, client")
	}

	email := normalizeEmail(in.Email)

	db := s.db.WithContext(ctx)

	taken, err := emailTaken(db, email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.Conflict("email_already_exists", "Email already exists!")
	}

	hashed, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:        email,
		PasswordHash: hashed,
		Role:         in.Role,
	}

	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "user_created",
		Entity:   "user",
		EntityID: &user.ID,
	})

	return &user, nil
}

func (s *UserService) Update(ctx context.Context, id uint, in UpdateUserInput) (*models.User, error) {
	db := s.db.WithContext(ctx)

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFoundErr("user_not_found", "User not found")
		}
		return nil, err
	}

	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		taken, err := emailTaken(db, email, user.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, httperr.Conflict("email_already_exists", "Email already exists!")
		}
		user.Email = email
	}
	if in.Password != nil {
		hashed, err := hashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hashed
	}
	if in.Role != nil {
		if !validRole(*in.Role) {
			return nil, httperr.Validation("invalid_role", "Role must be one of: admin, owner, client")
		}
		user.Role = *in.Role
	}

	if err := db.Save(&user).Error; err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "user_updated",
		Entity:   "user",
		EntityID: &user.ID,
	})

	return &user, nil
}

// Delete removes the row unconditionally. Owner and Client services are
// responsible for not leaving a parent record pointing at a gone user.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	db := s.db.WithContext(ctx)

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.NotFoundErr("user_not_found", "User not found")
		}
		return err
	}

	if err := db.Delete(&models.User{}, id).Error; err != nil {
		return err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: &id,
	})

	return nil
}
