// Package orgs holds the membership-scoped organisation operations. A user
// may only read organisations they belong to; non-membership and
// non-existence are deliberately indistinguishable to callers.
package orgs

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hugh/go-roster/internal/auth"
	"github.com/hugh/go-roster/internal/database/models"
	"github.com/hugh/go-roster/internal/store"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrOrgNotFound  = errors.New("organisation not found")
	ErrNotMember    = errors.New("user does not belong to this organisation")
)

type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// List returns every organisation the identity's user belongs to, in no
// particular order.
func (s *Service) List(ctx context.Context, identity auth.Identity) ([]models.Organisation, error) {
	if _, err := s.store.FindUserByID(ctx, identity.UserID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.store.OrganisationsForUser(ctx, identity.UserID)
}

// Get returns the organisation only if a membership links the identity's
// user to it. ErrNotMember covers both "not a member" and "no such
// organisation" so existence never leaks to non-members.
func (s *Service) Get(ctx context.Context, identity auth.Identity, orgID uuid.UUID) (*models.Organisation, error) {
	org, err := s.store.OrganisationForMember(ctx, identity.UserID, orgID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotMember
		}
		return nil, err
	}
	return org, nil
}

// Create creates an organisation and the membership linking it to the
// identity's user as one transaction.
func (s *Service) Create(ctx context.Context, identity auth.Identity, name, description string) (*models.Organisation, error) {
	if _, err := s.store.FindUserByID(ctx, identity.UserID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	org := models.Organisation{
		Name:        name,
		Description: description,
	}
	err := s.store.WithTx(ctx, func(tx store.Store) error {
		if err := tx.CreateOrganisation(ctx, &org); err != nil {
			return err
		}
		return tx.CreateMembership(ctx, &models.Membership{
			UserID:         identity.UserID,
			OrganisationID: org.ID,
		})
	})
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// AddMember links an arbitrary existing user to an existing organisation.
// Note: the transport layer exposes this without the access guard, so any
// caller may invoke it. Whether to gate it is an open product question.
func (s *Service) AddMember(ctx context.Context, orgID, userID uuid.UUID) (*models.Membership, error) {
	if _, err := s.store.FindOrganisationByID(ctx, orgID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOrgNotFound
		}
		return nil, err
	}
	if _, err := s.store.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	m := models.Membership{UserID: userID, OrganisationID: orgID}
	if err := s.store.CreateMembership(ctx, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
