package requestresponse

import (
	"time"

	"health-wallet/internal/model"
)

// ShareRequest : тело запроса на предоставление доступа к отчёту
type ShareRequest struct {
	SharedWithEmail string `json:"shared_with_email" example:"friend@example.com"`
	AccessType      string `json:"access_type,omitempty" example:"read"`
}

type SharedWithData struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	AccessType string `json:"access_type" example:"read"`
}

// ShareResponse : ответ на создание или обновление гранта
type ShareResponse struct {
	Message    string         `json:"message" example:"доступ к отчёту предоставлен"`
	SharedWith SharedWithData `json:"sharedWith"`
}

// GrantEntry : элемент списка грантов отчёта
type GrantEntry struct {
	ID         string    `json:"id"`
	ReportID   string    `json:"report_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	AccessType string    `json:"access_type"`
	CreatedAt  time.Time `json:"created_at"`
}

// SharedByMeEntry : элемент списка "я поделился"
type SharedByMeEntry struct {
	ID              string    `json:"id"`
	ReportID        string    `json:"report_id"`
	FileName        string    `json:"file_name"`
	ReportType      string    `json:"report_type"`
	ReportDate      string    `json:"report_date" example:"2024-01-10"`
	SharedWithName  string    `json:"shared_with_name"`
	SharedWithEmail string    `json:"shared_with_email"`
	AccessType      string    `json:"access_type"`
	SharedAt        time.Time `json:"shared_at"`
}

// SharedWithMeResponse : отчёты, которыми поделились с текущим пользователем
type SharedWithMeResponse struct {
	Reports []ReportEntry `json:"reports"`
}

// SharedByMeResponse : гранты, выданные текущим пользователем
type SharedByMeResponse struct {
	Shares []SharedByMeEntry `json:"shares"`
}

// GrantEntryFromModel : конвертирует model.Grant в элемент списка
func GrantEntryFromModel(grant *model.Grant) GrantEntry {
	return GrantEntry{
		ID:         grant.UUID,
		ReportID:   grant.ReportUUID,
		Name:       grant.Name,
		Email:      grant.Email,
		AccessType: grant.AccessType,
		CreatedAt:  grant.CreatedAt,
	}
}

// SharedByMeEntryFromModel : конвертирует model.ShareListing в элемент списка
func SharedByMeEntryFromModel(listing *model.ShareListing) SharedByMeEntry {
	return SharedByMeEntry{
		ID:              listing.UUID,
		ReportID:        listing.ReportUUID,
		FileName:        listing.FileName,
		ReportType:      listing.ReportType,
		ReportDate:      listing.ReportDate.Format(dateLayout),
		SharedWithName:  listing.SharedWithName,
		SharedWithEmail: listing.SharedWithEmail,
		AccessType:      listing.AccessType,
		SharedAt:        listing.CreatedAt,
	}
}
