package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hugh/go-roster/internal/database/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// Store is the persistence boundary for users, organisations and
// memberships. It carries no business logic; flows own the orchestration
// and call these operations explicitly.
type Store interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error

	FindOrganisationByID(ctx context.Context, id uuid.UUID) (*models.Organisation, error)
	CreateOrganisation(ctx context.Context, org *models.Organisation) error

	CreateMembership(ctx context.Context, m *models.Membership) error
	OrganisationsForUser(ctx context.Context, userID uuid.UUID) ([]models.Organisation, error)
	OrganisationForMember(ctx context.Context, userID, orgID uuid.UUID) (*models.Organisation, error)

	// WithTx runs fn against a Store bound to a single transaction.
	// If fn returns an error the transaction is rolled back and no
	// partial rows remain.
	WithTx(ctx context.Context, fn func(tx Store) error) error
}
