package services

import (
	"undangan.link/models"
)

// DefaultGuestName kişiye özel olmayan açılışlarda gösterilen hitaptır.
const DefaultGuestName = "Bapak/Ibu/Saudara/i"

type PersonPayload struct {
	Name     string `json:"name"`
	FullName string `json:"fullName"`
	Father   string `json:"father"`
	Mother   string `json:"mother"`
}

type EventPayload struct {
	AkadDate    string `json:"akadDate"`
	AkadTime    string `json:"akadTime"`
	ResepsiDate string `json:"resepsiDate"`
	ResepsiTime string `json:"resepsiTime"`
	Venue       string `json:"venue"`
	Address     string `json:"address"`
	MapURL      string `json:"mapUrl"`
}

type VersePayload struct {
	Arabic      string `json:"arabic"`
	Translation string `json:"translation"`
	Surah       string `json:"surah"`
}

// RenderPayload şablon bileşenine verilen veridir.
type RenderPayload struct {
	Bride      PersonPayload `json:"bride"`
	Groom      PersonPayload `json:"groom"`
	Event      EventPayload  `json:"event"`
	Gallery    []string      `json:"gallery"`
	QuranVerse VersePayload  `json:"quranVerse"`
	GuestName  string        `json:"guestName"`
}

// BuildRenderPayload davetiye alanları ve ayarlarından render verisini üretir.
// Eksik ayar anahtarları boş değer olarak kalır. guest nil olabilir.
func BuildRenderPayload(inv *models.Invitation, guest *models.Guest) RenderPayload {
	var date, timeOfDay string
	if inv.EventDate != nil {
		date = inv.EventDate.Format("2006-01-02")
		timeOfDay = inv.EventDate.Format("15:04")
	}

	payload := RenderPayload{
		Bride: PersonPayload{
			Name:     inv.BrideName,
			FullName: inv.SettingString("bride_full_name", inv.BrideName),
			Father:   inv.SettingString("bride_father", ""),
			Mother:   inv.SettingString("bride_mother", ""),
		},
		Groom: PersonPayload{
			Name:     inv.GroomName,
			FullName: inv.SettingString("groom_full_name", inv.GroomName),
			Father:   inv.SettingString("groom_father", ""),
			Mother:   inv.SettingString("groom_mother", ""),
		},
		Event: EventPayload{
			AkadDate:    inv.SettingString("akad_date", date),
			AkadTime:    inv.SettingString("akad_time", timeOfDay),
			ResepsiDate: inv.SettingString("resepsi_date", date),
			ResepsiTime: inv.SettingString("resepsi_time", timeOfDay),
			Venue:       inv.EventLocation,
			Address:     inv.EventAddress,
			MapURL:      inv.SettingString("map_url", ""),
		},
		Gallery: settingStrings(inv, "gallery"),
		QuranVerse: VersePayload{
			Arabic:      inv.SettingString("quran_arabic", ""),
			Translation: inv.SettingString("quran_translation", ""),
			Surah:       inv.SettingString("quran_surah", ""),
		},
		GuestName: DefaultGuestName,
	}
	if guest != nil && guest.Name != "" {
		payload.GuestName = guest.Name
	}
	return payload
}

func settingStrings(inv *models.Invitation, key string) []string {
	out := []string{}
	if inv.Settings == nil {
		return out
	}
	switch values := inv.Settings[key].(type) {
	case []string:
		out = append(out, values...)
	case []interface{}:
		for _, v := range values {
			if s, ok := v.(string); ok && s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// DemoPayload şablon önizlemesinde kullanılan örnek veridir.
func DemoPayload() RenderPayload {
	return RenderPayload{
		Bride: PersonPayload{
			Name:     "Sarah",
			FullName: "Sarah Amelia Putri",
			Father:   "Bapak Ahmad Wijaya",
			Mother:   "Ibu Siti Nurhaliza",
		},
		Groom: PersonPayload{
			Name:     "Andi",
			FullName: "Andi Prasetyo Kusuma",
			Father:   "Bapak Hendra Kusuma",
			Mother:   "Ibu Ratna Dewi",
		},
		Event: EventPayload{
			AkadDate:    "2026-03-15",
			AkadTime:    "08:00",
			ResepsiDate: "2026-03-15",
			ResepsiTime: "11:00",
			Venue:       "Ballroom Hotel Grand Hyatt",
			Address:     "Jl. M.H. Thamrin Kav. 28-30, Jakarta Pusat 10350",
			MapURL:      "https://maps.google.com/?q=Grand+Hyatt+Jakarta",
		},
		Gallery: []string{"/demo/wedding-1.jpg", "/demo/wedding-2.jpg", "/demo/wedding-3.jpg"},
		QuranVerse: VersePayload{
			Arabic:      "وَمِنْ آيَاتِهِ أَنْ خَلَقَ لَكُم مِّنْ أَنفُسِكُمْ أَزْوَاجًا لِّتَسْكُنُوا إِلَيْهَا",
			Translation: "Dan di antara tanda-tanda kekuasaan-Nya ialah Dia menciptakan untukmu pasangan hidup dari jenismu sendiri, supaya kamu merasa tenteram kepadanya.",
			Surah:       "QS. Ar-Rum: 21",
		},
		GuestName: DefaultGuestName,
	}
}
