package requestresponse

import (
	"time"

	"health-wallet/internal/model"
)

const dateLayout = "2006-01-02"

// VitalPayload : элемент массива vitals в multipart-форме загрузки отчёта.
// Элементы без vital_type/value/date молча пропускаются
type VitalPayload struct {
	VitalType string `json:"vital_type" example:"Sugar"`
	Value     string `json:"value" example:"95"`
	Unit      string `json:"unit,omitempty" example:"mg/dL"`
	Date      string `json:"date" example:"2024-01-10"`
}

// Valid : true, если присутствуют все три обязательных поля
func (p VitalPayload) Valid() bool {
	return p.VitalType != "" && p.Value != "" && p.Date != ""
}

// UploadReportResponse : ответ при создании отчёта
type UploadReportResponse struct {
	Message string     `json:"message" example:"отчёт успешно загружен"`
	Report  ReportMeta `json:"report"`
}

type ReportMeta struct {
	ID         string `json:"id" example:"b6a1e1c4-4b1d-4f1e-8b29-1234567890ab"`
	FileName   string `json:"file_name" example:"analysis.pdf"`
	ReportType string `json:"report_type" example:"Blood Test"`
	Date       string `json:"date" example:"2024-01-10"`
}

// ReportEntry : элемент списков myReports/sharedReports
type ReportEntry struct {
	ID         string               `json:"id"`
	FileName   string               `json:"file_name"`
	MimeType   string               `json:"mime_type"`
	ReportType string               `json:"report_type"`
	Date       string               `json:"date" example:"2024-01-10"`
	CreatedAt  time.Time            `json:"created_at"`
	FileURL    string               `json:"file_url"`
	Vitals     []model.VitalSummary `json:"vitals"`
	OwnerName  string               `json:"owner_name,omitempty"`
}

// ListReportsResponse : ответ API со списками собственных и доступных отчётов
type ListReportsResponse struct {
	MyReports     []ReportEntry `json:"myReports"`
	SharedReports []ReportEntry `json:"sharedReports"`
}

// ReportDetail : один отчёт с полными показателями. Собирается заново на каждый
// запрос со свежей pre-signed ссылкой; в Redis кэшируется model.ReportPayload
type ReportDetail struct {
	ID         string          `json:"id"`
	OwnerID    string          `json:"owner_id"`
	OwnerName  string          `json:"owner_name"`
	FileName   string          `json:"file_name"`
	MimeType   string          `json:"mime_type"`
	ReportType string          `json:"report_type"`
	Date       string          `json:"date" example:"2024-01-10"`
	CreatedAt  time.Time       `json:"created_at"`
	FileURL    string          `json:"file_url"`
	Vitals     []VitalResponse `json:"vitals"`
}

// ReportEntryFromModel : конвертирует model.Report в элемент списка
func ReportEntryFromModel(report *model.Report, fileURL string, vitals []model.VitalSummary) ReportEntry {
	if vitals == nil {
		vitals = []model.VitalSummary{}
	}
	return ReportEntry{
		ID:         report.UUID,
		FileName:   report.FileName,
		MimeType:   report.MimeType,
		ReportType: report.ReportType,
		Date:       report.Date.Format(dateLayout),
		CreatedAt:  report.CreatedAt,
		FileURL:    fileURL,
		Vitals:     vitals,
	}
}
