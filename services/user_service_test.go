package services

import (
	"context"
	"testing"

	"undangan.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Register(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.users.Register(ctx, "Andi", "  Andi@Example.com ", "rahasia123")
	require.NoError(t, err)
	assert.Equal(t, "andi@example.com", user.Email)
	assert.NotEqual(t, "rahasia123", user.PasswordHash)

	_, err = env.users.Register(ctx, "Andi Lagi", "andi@example.com", "rahasia123")
	require.ErrorIs(t, err, ErrValidation)
	assert.True(t, IsValidationField(err, "email"))
}

func TestUserService_Register_Validation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.users.Register(context.Background(), "", "bukan-email", "pendek")
	require.ErrorIs(t, err, ErrValidation)
	assert.True(t, IsValidationField(err, "name"))
	assert.True(t, IsValidationField(err, "email"))
	assert.True(t, IsValidationField(err, "password"))
}

func TestUserService_Authenticate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	created := env.createUser(t, "andi@example.com")

	user, err := env.users.Authenticate(ctx, "ANDI@example.com", "rahasia123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = env.users.Authenticate(ctx, "andi@example.com", "salah-sekali")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = env.users.Authenticate(ctx, "yok@example.com", "rahasia123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_DeleteAccountCascades(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "andi@example.com")
	keeper := env.createUser(t, "keeper@example.com")
	inv := env.createInvitation(t, user.ID, "akan-hilang")
	kept := env.createInvitation(t, keeper.ID, "tetap-ada")
	_, err := env.guests.AddGuest(ctx, inv.ID, user.ID, AddGuestInput{Name: "Budi"})
	require.NoError(t, err)
	_, err = env.guests.AddGuest(ctx, kept.ID, keeper.ID, AddGuestInput{Name: "Budi"})
	require.NoError(t, err)

	err = env.users.DeleteAccount(ctx, user.ID, "salah-sekali")
	require.ErrorIs(t, err, ErrValidation)
	assert.True(t, IsValidationField(err, "password"))

	require.NoError(t, env.users.DeleteAccount(ctx, user.ID, "rahasia123"))

	var invitationCount, guestCount int64
	require.NoError(t, env.db.Model(&models.Invitation{}).Count(&invitationCount).Error)
	require.NoError(t, env.db.Model(&models.Guest{}).Count(&guestCount).Error)
	assert.Equal(t, int64(1), invitationCount)
	assert.Equal(t, int64(1), guestCount)

	_, err = env.users.GetUserByID(ctx, user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
