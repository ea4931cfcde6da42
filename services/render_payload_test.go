package services

import (
	"encoding/json"
	"testing"
	"time"

	"undangan.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestBuildRenderPayload(t *testing.T) {
	eventDate := time.Date(2026, 6, 20, 9, 30, 0, 0, time.UTC)
	inv := &models.Invitation{
		GroomName:     "Rizki",
		BrideName:     "Ayu",
		EventDate:     &eventDate,
		EventLocation: "Gedung Serbaguna",
		EventAddress:  "Jl. Merdeka 1, Bandung",
		Settings: datatypes.JSONMap{
			"bride_full_name": "Ayu Lestari",
			"groom_father":    "Bapak Hadi",
			"resepsi_time":    "11:00",
			"gallery":         []interface{}{"/a.jpg", "", 42, "/b.jpg"},
			"quran_surah":     "QS. Ar-Rum: 21",
		},
	}
	guest := &models.Guest{Name: "Budi Santoso"}

	payload := BuildRenderPayload(inv, guest)
	assert.Equal(t, "Ayu", payload.Bride.Name)
	assert.Equal(t, "Ayu Lestari", payload.Bride.FullName)
	assert.Equal(t, "Rizki", payload.Groom.FullName)
	assert.Equal(t, "Bapak Hadi", payload.Groom.Father)
	assert.Empty(t, payload.Groom.Mother)
	assert.Equal(t, "2026-06-20", payload.Event.AkadDate)
	assert.Equal(t, "09:30", payload.Event.AkadTime)
	assert.Equal(t, "11:00", payload.Event.ResepsiTime)
	assert.Equal(t, "Gedung Serbaguna", payload.Event.Venue)
	assert.Equal(t, []string{"/a.jpg", "/b.jpg"}, payload.Gallery)
	assert.Equal(t, "QS. Ar-Rum: 21", payload.QuranVerse.Surah)
	assert.Equal(t, "Budi Santoso", payload.GuestName)
}

func TestBuildRenderPayload_MissingSettingsAndGuest(t *testing.T) {
	payload := BuildRenderPayload(&models.Invitation{GroomName: "Rizki", BrideName: "Ayu"}, nil)
	assert.Equal(t, DefaultGuestName, payload.GuestName)
	assert.Equal(t, "Ayu", payload.Bride.FullName)
	assert.Empty(t, payload.Event.AkadDate)
	assert.NotNil(t, payload.Gallery)
	assert.Empty(t, payload.Gallery)
}

func TestRenderPayloadJSONKeys(t *testing.T) {
	raw, err := json.Marshal(DemoPayload())
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	for _, key := range []string{"bride", "groom", "event", "gallery", "quranVerse", "guestName"} {
		assert.Contains(t, decoded, key)
	}
	assert.Equal(t, "QS. Ar-Rum: 21", DemoPayload().QuranVerse.Surah)
}
