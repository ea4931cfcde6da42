package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"undangan.link/models"
	"undangan.link/pkg/queryparams"
	"undangan.link/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvitationService_CreateInvitation(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "andi@example.com")
	template := env.templateBySlug(t, "elegant-rose")

	inv, err := env.invitations.CreateInvitation(context.Background(), user.ID, CreateInvitationInput{
		TemplateID: template.ID,
		Slug:       "rizki-wedding",
		EventTitle: "Pernikahan Rizki & Ayu",
		Settings:   map[string]interface{}{"primary_color": "#b76e79"},
	})
	require.NoError(t, err)

	assert.NotZero(t, inv.ID)
	assert.Equal(t, models.InvitationStatusDraft, inv.Status)
	assert.True(t, inv.RSVPEnabled)
	assert.Nil(t, inv.PublishedAt)

	stored := env.reloadInvitation(t, inv.ID)
	assert.Equal(t, models.InvitationStatusDraft, stored.Status)
	assert.True(t, stored.RSVPEnabled)
	assert.Equal(t, "#b76e79", stored.SettingString("primary_color", ""))
	assert.Equal(t, 1, env.templateBySlug(t, "elegant-rose").UsageCount)
}

func TestInvitationService_CreateInvitation_RSVPDisabled(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "andi@example.com")
	template := env.templateBySlug(t, "classic-white")
	disabled := false

	inv, err := env.invitations.CreateInvitation(context.Background(), user.ID, CreateInvitationInput{
		TemplateID:  template.ID,
		Slug:        "tanpa-rsvp",
		EventTitle:  "Akad",
		RSVPEnabled: &disabled,
	})
	require.NoError(t, err)
	assert.False(t, inv.RSVPEnabled)
	assert.False(t, env.reloadInvitation(t, inv.ID).RSVPEnabled)
}

func TestInvitationService_CreateInvitation_Validation(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "andi@example.com")

	_, err := env.invitations.CreateInvitation(context.Background(), user.ID, CreateInvitationInput{Slug: "Bukan Slug!"})
	require.ErrorIs(t, err, ErrValidation)
	assert.True(t, IsValidationField(err, "template_id"))
	assert.True(t, IsValidationField(err, "slug"))
	assert.True(t, IsValidationField(err, "event_title"))
}

func TestInvitationService_CreateInvitation_DuplicateSlug(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "andi@example.com")
	env.createInvitation(t, user.ID, "sama")

	template := env.templateBySlug(t, "elegant-rose")
	_, err := env.invitations.CreateInvitation(context.Background(), user.ID, CreateInvitationInput{
		TemplateID: template.ID,
		Slug:       "sama",
		EventTitle: "Lagi",
	})
	require.ErrorIs(t, err, ErrValidation)
	assert.True(t, IsValidationField(err, "slug"))
	assert.Equal(t, 1, env.templateBySlug(t, "elegant-rose").UsageCount)
}

func TestInvitationService_CreateInvitation_TemplateMustBePublished(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "andi@example.com")
	akad := env.subCategory(t, "pernikahan", "akad-nikah")
	draft := env.createTemplate(t, akad.ID, "draft-only", models.TemplateStatusDraft, 0)

	for _, id := range []uint{draft.ID, 9999} {
		_, err := env.invitations.CreateInvitation(context.Background(), user.ID, CreateInvitationInput{
			TemplateID: id,
			Slug:       "coba",
			EventTitle: "Coba",
		})
		assert.ErrorIs(t, err, ErrTemplateNotFound)
	}
	assert.Equal(t, 0, env.templateBySlug(t, "draft-only").UsageCount)
}

func TestInvitationService_Lifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "andi@example.com")
	inv := env.createInvitation(t, user.ID, "lifecycle")

	published, err := env.invitations.Publish(ctx, inv.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InvitationStatusPublished, published.Status)
	require.NotNil(t, published.PublishedAt)
	assert.True(t, env.clock.Now().Equal(*published.PublishedAt))

	firstPublishedAt := *published.PublishedAt
	env.clock.Advance(time.Hour)
	again, err := env.invitations.Publish(ctx, inv.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, firstPublishedAt.Equal(*again.PublishedAt))

	expired, err := env.invitations.Expire(ctx, inv.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InvitationStatusExpired, expired.Status)

	_, err = env.invitations.Expire(ctx, inv.ID, user.ID)
	require.NoError(t, err)

	_, err = env.invitations.Publish(ctx, inv.ID, user.ID)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, models.InvitationStatusExpired, env.reloadInvitation(t, inv.ID).Status)
}

func TestInvitationService_ExpireDraft(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "andi@example.com")
	inv := env.createInvitation(t, user.ID, "draft-expire")

	expired, err := env.invitations.Expire(context.Background(), inv.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InvitationStatusExpired, expired.Status)
	assert.Nil(t, env.reloadInvitation(t, inv.ID).PublishedAt)
}

func TestInvitationService_OwnershipHidesInvitation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createUser(t, "owner@example.com")
	other := env.createUser(t, "other@example.com")
	inv := env.createInvitation(t, owner.ID, "milik-owner")

	_, err := env.invitations.GetInvitationForOwner(ctx, inv.ID, other.ID)
	assert.ErrorIs(t, err, ErrInvitationNotFound)
	_, err = env.invitations.Publish(ctx, inv.ID, other.ID)
	assert.ErrorIs(t, err, ErrInvitationNotFound)
	err = env.invitations.DeleteInvitation(ctx, inv.ID, other.ID)
	assert.ErrorIs(t, err, ErrInvitationNotFound)

	assert.Equal(t, models.InvitationStatusDraft, env.reloadInvitation(t, inv.ID).Status)
}

func TestInvitationService_GetInvitationBySlug(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "andi@example.com")
	inv := env.createInvitation(t, user.ID, "publik")

	_, err := env.invitations.GetInvitationBySlug(ctx, "publik")
	assert.ErrorIs(t, err, ErrNotFound, "taslak davetiye gizli olmalı")

	_, err = env.invitations.Publish(ctx, inv.ID, user.ID)
	require.NoError(t, err)
	found, err := env.invitations.GetInvitationBySlug(ctx, "publik")
	require.NoError(t, err)
	assert.Equal(t, inv.ID, found.ID)
	require.NotNil(t, found.Template)
	assert.Equal(t, "elegant-rose", found.Template.Slug)
}

func TestInvitationService_ReadTimeExpiry(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "andi@example.com")
	template := env.templateBySlug(t, "elegant-rose")
	expiresAt := env.clock.Now().Add(24 * time.Hour)

	inv, err := env.invitations.CreateInvitation(ctx, user.ID, CreateInvitationInput{
		TemplateID: template.ID,
		Slug:       "sementara",
		EventTitle: "Sementara",
		ExpiresAt:  &expiresAt,
	})
	require.NoError(t, err)
	inv, err = env.invitations.Publish(ctx, inv.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InvitationStatusPublished, env.invitations.EffectiveStatus(inv))

	env.clock.Advance(25 * time.Hour)
	assert.Equal(t, models.InvitationStatusExpired, env.invitations.EffectiveStatus(inv))
	_, err = env.invitations.GetInvitationBySlug(ctx, "sementara")
	assert.ErrorIs(t, err, ErrInvitationNotFound)

	// Kayıtlı durum değişmez, sadece okuma anında yorumlanır.
	assert.Equal(t, models.InvitationStatusPublished, env.reloadInvitation(t, inv.ID).Status)
}

func TestInvitationService_IncrementViews(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "andi@example.com")
	inv := env.createInvitation(t, user.ID, "views")

	require.NoError(t, env.invitations.IncrementViews(ctx, inv.ID))
	require.NoError(t, env.invitations.IncrementViews(ctx, inv.ID))
	assert.Equal(t, 2, env.reloadInvitation(t, inv.ID).ViewsCount)

	assert.ErrorIs(t, env.invitations.IncrementViews(ctx, 9999), ErrInvitationNotFound)
}

func TestInvitationService_UpdateSettings(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "andi@example.com")
	inv := env.createInvitation(t, user.ID, "ayar")

	settings := map[string]interface{}{
		"font":    "Playfair Display",
		"gallery": []interface{}{"/a.jpg", "/b.jpg"},
		"nested":  map[string]interface{}{"anything": true},
	}
	_, err := env.invitations.UpdateSettings(context.Background(), inv.ID, user.ID, settings)
	require.NoError(t, err)

	stored := env.reloadInvitation(t, inv.ID)
	assert.Equal(t, "Playfair Display", stored.SettingString("font", ""))
	assert.Equal(t, []interface{}{"/a.jpg", "/b.jpg"}, stored.Settings["gallery"])
}

func TestInvitationService_DeleteCascadesGuests(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "andi@example.com")
	inv := env.createInvitation(t, user.ID, "hapus")

	_, err := env.guests.AddGuest(ctx, inv.ID, user.ID, AddGuestInput{Name: "Budi"})
	require.NoError(t, err)
	_, err = env.guests.AddGuest(ctx, inv.ID, user.ID, AddGuestInput{Name: "Citra"})
	require.NoError(t, err)

	require.NoError(t, env.invitations.DeleteInvitation(ctx, inv.ID, user.ID))

	var guestCount int64
	require.NoError(t, env.db.Model(&models.Guest{}).Where("invitation_id = ?", inv.ID).Count(&guestCount).Error)
	assert.Zero(t, guestCount)
	_, err = env.invitations.GetInvitationForOwner(ctx, inv.ID, user.ID)
	assert.ErrorIs(t, err, ErrInvitationNotFound)
}

func TestInvitationService_ListInvitationsForUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "andi@example.com")
	other := env.createUser(t, "other@example.com")
	for _, slug := range []string{"satu", "dua", "tiga"} {
		env.createInvitation(t, user.ID, slug)
	}
	env.createInvitation(t, other.ID, "bukan-milik")
	published := env.createPublishedInvitation(t, user.ID, "empat")

	result, err := env.invitations.ListInvitationsForUser(ctx, user.ID, queryparams.ListParams{Page: 1, PerPage: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(4), result.Meta.TotalItems)
	assert.Equal(t, 2, result.Meta.TotalPages)
	assert.Len(t, result.Data, 2)

	result, err = env.invitations.ListInvitationsForUser(ctx, user.ID, queryparams.ListParams{Status: string(models.InvitationStatusPublished)})
	require.NoError(t, err)
	invitations := result.Data.([]models.Invitation)
	require.Len(t, invitations, 1)
	assert.Equal(t, published.ID, invitations[0].ID)

	result, err = env.invitations.ListInvitationsForUser(ctx, user.ID, queryparams.ListParams{Name: "DUA"})
	require.NoError(t, err)
	invitations = result.Data.([]models.Invitation)
	require.Len(t, invitations, 1)
	assert.Equal(t, "dua", invitations[0].Slug)
}

// racingInvitationRepo koşullu durum güncellemesinden hemen önce araya başka bir yazma sokar.
type racingInvitationRepo struct {
	repositories.IInvitationRepository
	beforeUpdate func()
}

func (r *racingInvitationRepo) UpdateStatus(ctx context.Context, id uint, from []models.InvitationStatus, values map[string]interface{}) error {
	r.beforeUpdate()
	return r.IInvitationRepository.UpdateStatus(ctx, id, from, values)
}

func TestInvitationService_ExpireDeletedConcurrently(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "andi@example.com")
	inv := env.createPublishedInvitation(t, user.ID, "silinen")

	env.invitations.repo = &racingInvitationRepo{
		IInvitationRepository: env.invitations.repo,
		beforeUpdate: func() {
			require.NoError(t, env.db.Delete(&models.Invitation{}, inv.ID).Error)
		},
	}

	_, err := env.invitations.Expire(context.Background(), inv.ID, user.ID)
	assert.ErrorIs(t, err, ErrInvitationNotFound)
}

func TestInvitationService_ExpireAlreadyExpiredConcurrently(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "andi@example.com")
	inv := env.createPublishedInvitation(t, user.ID, "yarisan")

	env.invitations.repo = &racingInvitationRepo{
		IInvitationRepository: env.invitations.repo,
		beforeUpdate: func() {
			require.NoError(t, env.db.Model(&models.Invitation{}).Where("id = ?", inv.ID).
				UpdateColumn("status", models.InvitationStatusExpired).Error)
		},
	}

	expired, err := env.invitations.Expire(context.Background(), inv.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InvitationStatusExpired, expired.Status)
}

func TestInvitationService_PublishRaceIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "andi@example.com")
	inv := env.createInvitation(t, user.ID, "yarisan-yayin")
	winnerAt := env.clock.Now().Add(-time.Minute)

	env.invitations.repo = &racingInvitationRepo{
		IInvitationRepository: env.invitations.repo,
		beforeUpdate: func() {
			require.NoError(t, env.db.Model(&models.Invitation{}).Where("id = ?", inv.ID).
				UpdateColumns(map[string]interface{}{"status": models.InvitationStatusPublished, "published_at": winnerAt}).Error)
		},
	}

	published, err := env.invitations.Publish(context.Background(), inv.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InvitationStatusPublished, published.Status)
	require.NotNil(t, published.PublishedAt)
	assert.True(t, winnerAt.Equal(*published.PublishedAt))
}

func TestInvitationService_PublishDeletedConcurrently(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "andi@example.com")
	inv := env.createInvitation(t, user.ID, "silinen-yayin")

	env.invitations.repo = &racingInvitationRepo{
		IInvitationRepository: env.invitations.repo,
		beforeUpdate: func() {
			require.NoError(t, env.db.Delete(&models.Invitation{}, inv.ID).Error)
		},
	}

	_, err := env.invitations.Publish(context.Background(), inv.ID, user.ID)
	assert.ErrorIs(t, err, ErrInvitationNotFound)
}

func TestInvitationService_CreateInvitation_MaxLength(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "andi@example.com")
	template := env.templateBySlug(t, "elegant-rose")

	_, err := env.invitations.CreateInvitation(context.Background(), user.ID, CreateInvitationInput{
		TemplateID: template.ID,
		Slug:       strings.Repeat("a", 256),
		EventTitle: strings.Repeat("Ş", 256),
		GroomName:  strings.Repeat("b", 151),
	})
	require.ErrorIs(t, err, ErrValidation)
	assert.True(t, IsValidationField(err, "slug"))
	assert.True(t, IsValidationField(err, "event_title"))
	assert.True(t, IsValidationField(err, "groom_name"))

	inv, err := env.invitations.CreateInvitation(context.Background(), user.ID, CreateInvitationInput{
		TemplateID: template.ID,
		Slug:       strings.Repeat("a", 255),
		EventTitle: strings.Repeat("Ş", 255),
	})
	require.NoError(t, err)
	assert.Len(t, []rune(inv.EventTitle), 255)
}
