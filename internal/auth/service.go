package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hugh/go-roster/internal/database/models"
	"github.com/hugh/go-roster/internal/store"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	store store.Store
	jwt   *JWTService
}

func NewService(st store.Store, jwt *JWTService) *Service {
	return &Service{store: st, jwt: jwt}
}

type RegisterInput struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
	Phone     string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthResponse struct {
	Token string
	User  *models.User
}

// Register creates the user, their default organisation and the membership
// linking the two in a single transaction, then issues a token. The email
// pre-check is only a fast path; the unique index closes the race between
// concurrent registrations.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResponse, error) {
	if _, err := s.store.FindUserByEmail(ctx, input.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	var user models.User
	err = s.store.WithTx(ctx, func(tx store.Store) error {
		org := models.Organisation{
			Name: input.FirstName + "'s organisation",
		}
		if err := tx.CreateOrganisation(ctx, &org); err != nil {
			return err
		}

		user = models.User{
			Email:        input.Email,
			PasswordHash: hash,
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			Phone:        input.Phone,
		}
		if err := tx.CreateUser(ctx, &user); err != nil {
			return err
		}

		return tx.CreateMembership(ctx, &models.Membership{
			UserID:         user.ID,
			OrganisationID: org.ID,
		})
	})

	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{Token: token, User: &user}, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResponse, error) {
	user, err := s.store.FindUserByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !CheckPassword(input.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{Token: token, User: user}, nil
}

func (s *Service) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.store.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
