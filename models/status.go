package models

// TemplateStatus şablonun yayın durumudur.
type TemplateStatus string

const (
	TemplateStatusDraft     TemplateStatus = "draft"
	TemplateStatusPublished TemplateStatus = "published"
	TemplateStatusArchived  TemplateStatus = "archived"
)

func (s TemplateStatus) IsValid() bool {
	switch s {
	case TemplateStatusDraft, TemplateStatusPublished, TemplateStatusArchived:
		return true
	}
	return false
}

// InvitationStatus davetiyenin yaşam döngüsü durumudur.
type InvitationStatus string

const (
	InvitationStatusDraft     InvitationStatus = "draft"
	InvitationStatusPublished InvitationStatus = "published"
	InvitationStatusExpired   InvitationStatus = "expired"
)

func (s InvitationStatus) IsValid() bool {
	switch s {
	case InvitationStatusDraft, InvitationStatusPublished, InvitationStatusExpired:
		return true
	}
	return false
}

// RSVPStatus olası LCV durumlarını tanımlar.
type RSVPStatus string

const (
	RSVPStatusPending      RSVPStatus = "pending"       // Henüz cevap verilmedi
	RSVPStatusAttending    RSVPStatus = "attending"     // Katılacak
	RSVPStatusNotAttending RSVPStatus = "not_attending" // Katılmayacak
)

func (s RSVPStatus) IsValid() bool {
	switch s {
	case RSVPStatusPending, RSVPStatusAttending, RSVPStatusNotAttending:
		return true
	}
	return false
}

// IsAnswer misafirin gönderebileceği bir cevap olup olmadığını söyler.
// pending sadece başlangıç durumudur, gönderilemez.
func (s RSVPStatus) IsAnswer() bool {
	return s == RSVPStatusAttending || s == RSVPStatusNotAttending
}
