package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hugh/go-roster/internal/database/models"
	"gorm.io/gorm"
)

// GormStore implements Store on top of a GORM connection. The unique
// index on users.email is the source of truth for duplicate detection;
// the connection must be opened with TranslateError so violations
// surface as gorm.ErrDuplicatedKey.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

var _ Store = (*GormStore)(nil)

func (s *GormStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStore) FindUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) error {
	return translate(s.db.WithContext(ctx).Create(user).Error)
}

func (s *GormStore) FindOrganisationByID(ctx context.Context, id uuid.UUID) (*models.Organisation, error) {
	var org models.Organisation
	if err := s.db.WithContext(ctx).First(&org, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &org, nil
}

func (s *GormStore) CreateOrganisation(ctx context.Context, org *models.Organisation) error {
	return translate(s.db.WithContext(ctx).Create(org).Error)
}

func (s *GormStore) CreateMembership(ctx context.Context, m *models.Membership) error {
	return translate(s.db.WithContext(ctx).Create(m).Error)
}

func (s *GormStore) OrganisationsForUser(ctx context.Context, userID uuid.UUID) ([]models.Organisation, error) {
	var orgs []models.Organisation
	err := s.db.WithContext(ctx).
		Joins("JOIN memberships ON memberships.organisation_id = organisations.id").
		Where("memberships.user_id = ?", userID).
		Find(&orgs).Error
	if err != nil {
		return nil, translate(err)
	}
	return orgs, nil
}

func (s *GormStore) OrganisationForMember(ctx context.Context, userID, orgID uuid.UUID) (*models.Organisation, error) {
	var org models.Organisation
	err := s.db.WithContext(ctx).
		Joins("JOIN memberships ON memberships.organisation_id = organisations.id").
		Where("memberships.user_id = ? AND organisations.id = ?", userID, orgID).
		First(&org).Error
	if err != nil {
		return nil, translate(err)
	}
	return &org, nil
}

func (s *GormStore) WithTx(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
