package users

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/weavemart/weavemart-backend/pkg/db/models"
	"github.com/weavemart/weavemart-backend/pkg/enums"
)

func newUsersTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.User{}))
	return conn
}

func TestRepositoryCreateAndFind(t *testing.T) {
	repo := NewRepository(newUsersTestDB(t))
	ctx := context.Background()

	company := "Weave Traders"
	created, err := repo.Create(ctx, CreateUserDTO{
		Email:        "seller@example.com",
		PasswordHash: "hashed",
		Name:         "Seller",
		Role:         enums.UserRoleSeller,
		Company:      &company,
		Phone:        "9876543210",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	byEmail, err := repo.FindByEmail(ctx, "seller@example.com")
	require.NoError(t, err)
	require.Equal(t, created.ID, byEmail.ID)

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Seller", byID.Name)
	require.NotNil(t, byID.Company)
	require.Equal(t, "Weave Traders", *byID.Company)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryUpdatePasswordHash(t *testing.T) {
	repo := NewRepository(newUsersTestDB(t))
	ctx := context.Background()

	user, err := repo.Create(ctx, CreateUserDTO{
		Email:        "retailer@example.com",
		PasswordHash: "old-hash",
		Name:         "Retailer",
		Role:         enums.UserRoleRetailer,
		Phone:        "1234567890",
	})
	require.NoError(t, err)

	require.NoError(t, repo.UpdatePasswordHash(ctx, user.ID, "new-hash"))

	stored, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "new-hash", stored.PasswordHash)
	// Only the credential column changes.
	require.Equal(t, "Retailer", stored.Name)
}

func TestRepositoryUpdateProfile(t *testing.T) {
	repo := NewRepository(newUsersTestDB(t))
	ctx := context.Background()

	user, err := repo.Create(ctx, CreateUserDTO{
		Email:        "corp@example.com",
		PasswordHash: "hash",
		Name:         "Before",
		Role:         enums.UserRoleCorporate,
		Phone:        "1112223334",
	})
	require.NoError(t, err)

	updated, err := repo.UpdateProfile(ctx, user.ID, map[string]any{
		"name":  "After",
		"phone": "9998887776",
	})
	require.NoError(t, err)
	require.Equal(t, "After", updated.Name)
	require.Equal(t, "9998887776", updated.Phone)

	// Empty update set is a no-op read.
	same, err := repo.UpdateProfile(ctx, user.ID, map[string]any{})
	require.NoError(t, err)
	require.Equal(t, "After", same.Name)
}

func TestFromModelOmitsPasswordHash(t *testing.T) {
	dto := FromModel(&models.User{
		ID:           uuid.New(),
		Email:        "x@example.com",
		PasswordHash: "secret-hash",
		Name:         "X",
		Role:         enums.UserRoleRetailer,
	})
	require.NotNil(t, dto)
	require.Equal(t, "x@example.com", dto.Email)
	require.Equal(t, string(enums.UserRoleRetailer), dto.Role)
}
