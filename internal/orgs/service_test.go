package orgs_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/hugh/go-roster/internal/auth"
	"github.com/hugh/go-roster/internal/database/models"
	"github.com/hugh/go-roster/internal/orgs"
	"github.com/hugh/go-roster/internal/store"
	"github.com/hugh/go-roster/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupOrgService(t *testing.T) (*orgs.Service, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return orgs.NewService(store.NewGormStore(db)), db
}

func identityOf(u *models.User) auth.Identity {
	return auth.Identity{UserID: u.ID, Email: u.Email}
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	svc, db := setupOrgService(t)

	user := testutil.CreateTestUser(t, db, "member@example.com", "password123")
	orgA := testutil.CreateTestOrg(t, db, "Org A")
	orgB := testutil.CreateTestOrg(t, db, "Org B")
	testutil.CreateTestOrg(t, db, "Unrelated")
	testutil.CreateTestMembership(t, db, user, orgA)
	testutil.CreateTestMembership(t, db, user, orgB)

	t.Run("returns only organisations the user belongs to", func(t *testing.T) {
		list, err := svc.List(ctx, identityOf(user))
		require.NoError(t, err)
		require.Len(t, list, 2)

		names := []string{list[0].Name, list[1].Name}
		assert.ElementsMatch(t, []string{"Org A", "Org B"}, names)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.List(ctx, auth.Identity{UserID: uuid.New(), Email: "ghost@example.com"})
		assert.ErrorIs(t, err, orgs.ErrUserNotFound)
	})
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()
	svc, db := setupOrgService(t)

	member := testutil.CreateTestUser(t, db, "user1@example.com", "password123")
	outsider := testutil.CreateTestUser(t, db, "user2@example.com", "password123")
	org := testutil.CreateTestOrg(t, db, "Test Organisation")
	testutil.CreateTestMembership(t, db, member, org)

	t.Run("member can fetch the organisation", func(t *testing.T) {
		got, err := svc.Get(ctx, identityOf(member), org.ID)
		require.NoError(t, err)
		assert.Equal(t, org.ID, got.ID)
		assert.Equal(t, "Test Organisation", got.Name)
	})

	t.Run("non-member is rejected", func(t *testing.T) {
		_, err := svc.Get(ctx, identityOf(outsider), org.ID)
		assert.ErrorIs(t, err, orgs.ErrNotMember)
	})

	t.Run("nonexistent organisation is indistinguishable from non-membership", func(t *testing.T) {
		_, errMissing := svc.Get(ctx, identityOf(outsider), uuid.New())
		_, errNotMember := svc.Get(ctx, identityOf(outsider), org.ID)
		assert.Equal(t, errNotMember, errMissing)
	})
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	svc, db := setupOrgService(t)

	user := testutil.CreateTestUser(t, db, "creator@example.com", "password123")

	t.Run("creates organisation with creator membership", func(t *testing.T) {
		org, err := svc.Create(ctx, identityOf(user), "New Org", "a new organisation")
		require.NoError(t, err)
		assert.Equal(t, "New Org", org.Name)
		assert.Equal(t, "a new organisation", org.Description)

		got, err := svc.Get(ctx, identityOf(user), org.ID)
		require.NoError(t, err)
		assert.Equal(t, org.ID, got.ID)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Create(ctx, auth.Identity{UserID: uuid.New()}, "Org", "desc")
		assert.ErrorIs(t, err, orgs.ErrUserNotFound)
	})
}

func TestService_AddMember(t *testing.T) {
	ctx := context.Background()
	svc, db := setupOrgService(t)

	user := testutil.CreateTestUser(t, db, "joiner@example.com", "password123")
	org := testutil.CreateTestOrg(t, db, "Joinable")

	t.Run("links user to organisation", func(t *testing.T) {
		m, err := svc.AddMember(ctx, org.ID, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.ID, m.UserID)
		assert.Equal(t, org.ID, m.OrganisationID)

		got, err := svc.Get(ctx, identityOf(user), org.ID)
		require.NoError(t, err)
		assert.Equal(t, org.ID, got.ID)
	})

	t.Run("unknown organisation", func(t *testing.T) {
		_, err := svc.AddMember(ctx, uuid.New(), user.ID)
		assert.ErrorIs(t, err, orgs.ErrOrgNotFound)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.AddMember(ctx, org.ID, uuid.New())
		assert.ErrorIs(t, err, orgs.ErrUserNotFound)
	})
}
