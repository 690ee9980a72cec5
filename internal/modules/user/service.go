// README: User service implements signup, signin, and profile updates.
package user

import (
	"context"
	"errors"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 6

var (
	ErrBadRequest         = errors.New("bad request")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("user not found")
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

type SignUpCommand struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
}

type UpdateCommand struct {
	UserID    string
	FirstName *string
	LastName  *string
	Password  *string
}

// SignUp validates the command, hashes the password, and creates the account.
// Validation failures happen before any store access.
func (s *Service) SignUp(ctx context.Context, cmd SignUpCommand) (*User, error) {
	if cmd.FirstName == "" || cmd.LastName == "" {
		return nil, ErrBadRequest
	}
	if _, err := mail.ParseAddress(cmd.Email); err != nil {
		return nil, ErrBadRequest
	}
	if len(cmd.Password) < minPasswordLen {
		return nil, ErrBadRequest
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &User{
		ID:           uuid.NewString(),
		Email:        cmd.Email,
		FirstName:    cmd.FirstName,
		LastName:     cmd.LastName,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.store.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// SignIn checks credentials. A missing account and a wrong password are
// indistinguishable to the caller.
func (s *Service) SignIn(ctx context.Context, email, password string) (*User, error) {
	if email == "" || password == "" {
		return nil, ErrBadRequest
	}
	u, err := s.store.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Update applies a partial profile update for the authenticated user.
func (s *Service) Update(ctx context.Context, cmd UpdateCommand) error {
	if cmd.UserID == "" {
		return ErrBadRequest
	}
	if cmd.FirstName == nil && cmd.LastName == nil && cmd.Password == nil {
		return ErrBadRequest
	}
	var passwordHash *string
	if cmd.Password != nil {
		if len(*cmd.Password) < minPasswordLen {
			return ErrBadRequest
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*cmd.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		h := string(hash)
		passwordHash = &h
	}
	return s.store.Update(ctx, cmd.UserID, cmd.FirstName, cmd.LastName, passwordHash)
}
