package services

import (
	"context"
	"testing"
	"time"

	"undangan.link/database/testdb"
	"undangan.link/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// testClock testlerde zamanı elle ilerletmek için kullanılır.
type testClock struct{ t time.Time }

func (c *testClock) Now() time.Time          { return c.t }
func (c *testClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestClock() *testClock {
	return &testClock{t: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
}

type testEnv struct {
	db          *gorm.DB
	clock       *testClock
	catalog     *CatalogService
	invitations *InvitationService
	guests      *GuestService
	users       *UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testdb.OpenSeeded(t)
	clock := newTestClock()

	invitations := NewInvitationServiceWithDB(db)
	invitations.now = clock.Now
	guests := NewGuestServiceWithDB(db)
	guests.now = clock.Now
	users := NewUserServiceWithDB(db)
	users.bcryptCost = bcrypt.MinCost

	return &testEnv{
		db:          db,
		clock:       clock,
		catalog:     NewCatalogServiceWithDB(db),
		invitations: invitations,
		guests:      guests,
		users:       users,
	}
}

func (e *testEnv) createUser(t *testing.T, email string) *models.User {
	t.Helper()
	user, err := e.users.Register(context.Background(), "Test User", email, "rahasia123")
	require.NoError(t, err)
	return user
}

func (e *testEnv) templateBySlug(t *testing.T, slug string) *models.Template {
	t.Helper()
	var template models.Template
	require.NoError(t, e.db.Where("slug = ?", slug).First(&template).Error)
	return &template
}

func (e *testEnv) subCategory(t *testing.T, categorySlug, slug string) *models.SubCategory {
	t.Helper()
	var sub models.SubCategory
	require.NoError(t, e.db.Joins("JOIN categories ON categories.id = sub_categories.category_id").
		Where("categories.slug = ? AND sub_categories.slug = ?", categorySlug, slug).
		First(&sub).Error)
	return &sub
}

func (e *testEnv) createTemplate(t *testing.T, subCategoryID uint, slug string, status models.TemplateStatus, usage int) *models.Template {
	t.Helper()
	template := models.Template{
		SubCategoryID: subCategoryID,
		Name:          slug,
		Slug:          slug,
		ComponentPath: "templates/test/" + slug,
		Price:         decimal.Zero,
		Status:        status,
	}
	require.NoError(t, e.db.Create(&template).Error)
	if usage > 0 {
		require.NoError(t, e.db.Model(&template).UpdateColumn("usage_count", usage).Error)
		template.UsageCount = usage
	}
	return &template
}

func (e *testEnv) createInvitation(t *testing.T, userID uint, slug string) *models.Invitation {
	t.Helper()
	template := e.templateBySlug(t, "elegant-rose")
	inv, err := e.invitations.CreateInvitation(context.Background(), userID, CreateInvitationInput{
		TemplateID: template.ID,
		Slug:       slug,
		EventTitle: "Pernikahan " + slug,
		GroomName:  "Andi",
		BrideName:  "Sarah",
	})
	require.NoError(t, err)
	return inv
}

func (e *testEnv) createPublishedInvitation(t *testing.T, userID uint, slug string) *models.Invitation {
	t.Helper()
	inv := e.createInvitation(t, userID, slug)
	published, err := e.invitations.Publish(context.Background(), inv.ID, userID)
	require.NoError(t, err)
	return published
}

func (e *testEnv) reloadGuest(t *testing.T, id uint) *models.Guest {
	t.Helper()
	var guest models.Guest
	require.NoError(t, e.db.First(&guest, id).Error)
	return &guest
}

func (e *testEnv) reloadInvitation(t *testing.T, id uint) *models.Invitation {
	t.Helper()
	var inv models.Invitation
	require.NoError(t, e.db.First(&inv, id).Error)
	return &inv
}
