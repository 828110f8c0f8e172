package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"go-comments-service/internal/model"
	"go-comments-service/internal/security"
	"go-comments-service/pkg/apierror"
)

const (
	usernameMinLen = 4
	usernameMaxLen = 12
	passwordMinLen = 5
	passwordMaxLen = 20
)

type userStore interface {
	FindByID(ctx context.Context, id int64) (model.User, error)
	FindByEmailOrUsername(ctx context.Context, email string, username string) (model.User, error)
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
	UsernameTaken(ctx context.Context, username string, excludeID int64) (bool, error)
	Create(ctx context.Context, u model.User) (model.User, error)
	Update(ctx context.Context, u model.User) error
}

type UserService struct {
	users userStore
}

func NewUserService(users userStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Register(ctx context.Context, in model.UserCreate) (model.PublicUser, error) {
	in.Email = strings.TrimSpace(in.Email)
	in.Username = strings.TrimSpace(in.Username)

	if err := validateEmail(in.Email); err != nil {
		return model.PublicUser{}, err
	}
	if err := validateUsername(in.Username); err != nil {
		return model.PublicUser{}, err
	}
	if err := validatePassword(in.Password); err != nil {
		return model.PublicUser{}, err
	}

	// Best-effort pre-check; the unique indexes settle concurrent races.
	existing, err := s.users.FindByEmailOrUsername(ctx, in.Email, in.Username)
	if err == nil {
		field := "email"
		if strings.EqualFold(existing.Username, in.Username) {
			field = "username"
		}
		return model.PublicUser{}, apierror.Conflict("user with this "+field+" already exists", field)
	}
	if !isUserNotFound(err) {
		return model.PublicUser{}, err
	}

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		return model.PublicUser{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, model.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Birthdate:    in.Birthdate,
		IsActive:     true,
	})
	if err != nil {
		return model.PublicUser{}, err
	}

	return user.Public(), nil
}

// Update applies a partial profile update. Only the account owner may edit
// their profile, and every uniqueness constraint is validated before any
// field is written.
func (s *UserService) Update(ctx context.Context, targetID int64, in model.UserUpdate, actor model.AuthUser) (model.PublicUser, error) {
	user, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		return model.PublicUser{}, err
	}

	if targetID != actor.ID {
		return model.PublicUser{}, apierror.Forbidden("cannot edit another user's profile")
	}

	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if err := validateEmail(email); err != nil {
			return model.PublicUser{}, err
		}
		if !strings.EqualFold(email, user.Email) {
			taken, err := s.users.EmailTaken(ctx, email, user.ID)
			if err != nil {
				return model.PublicUser{}, err
			}
			if taken {
				return model.PublicUser{}, apierror.Conflict("user with this email already exists", "email")
			}
		}
		user.Email = email
	}

	if in.Username != nil {
		username := strings.TrimSpace(*in.Username)
		if err := validateUsername(username); err != nil {
			return model.PublicUser{}, err
		}
		if !strings.EqualFold(username, user.Username) {
			taken, err := s.users.UsernameTaken(ctx, username, user.ID)
			if err != nil {
				return model.PublicUser{}, err
			}
			if taken {
				return model.PublicUser{}, apierror.Conflict("user with this username already exists", "username")
			}
		}
		user.Username = username
	}

	if in.Password != nil {
		if err := validatePassword(*in.Password); err != nil {
			return model.PublicUser{}, err
		}
		hash, err := security.HashPassword(*in.Password)
		if err != nil {
			return model.PublicUser{}, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if in.Birthdate != nil {
		user.Birthdate = in.Birthdate
	}

	if err := s.users.Update(ctx, user); err != nil {
		return model.PublicUser{}, err
	}

	return user.Public(), nil
}

func isUserNotFound(err error) bool {
	return errors.Is(err, model.ErrUserNotFound)
}

func validateEmail(email string) error {
	if email == "" {
		return apierror.BadRequest("email is required", "email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return apierror.BadRequest("invalid email address", "email")
	}
	return nil
}

func validateUsername(username string) error {
	if len(username) < usernameMinLen || len(username) > usernameMaxLen {
		return apierror.BadRequest(
			fmt.Sprintf("username must be %d-%d characters", usernameMinLen, usernameMaxLen),
			"username")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < passwordMinLen || len(password) > passwordMaxLen {
		return apierror.BadRequest(
			fmt.Sprintf("password must be %d-%d characters", passwordMinLen, passwordMaxLen),
			"password")
	}
	return nil
}
