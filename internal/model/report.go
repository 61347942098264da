package model

import "time"

type Report struct {
	UUID        string    `db:"uuid" json:"id"`
	OwnerUUID   string    `db:"owner_uuid" json:"owner_id"`
	FileName    string    `db:"file_name" json:"file_name"`
	StoragePath string    `db:"storage_path" json:"-"`
	MimeType    string    `db:"mime_type" json:"mime_type"`
	ReportType  string    `db:"report_type" json:"report_type"`
	Date        time.Time `db:"date" json:"date"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// ReportPayload : отчёт с именем владельца и полными показателями.
// Именно эта структура кэшируется в Redis; права доступа в неё не входят
// и проверяются по БД при каждом чтении
type ReportPayload struct {
	Report    Report  `json:"report"`
	OwnerName string  `json:"owner_name"`
	Vitals    []Vital `json:"vitals"`
}

// SharedReport : отчёт из выборки "поделились со мной" вместе с именем владельца
type SharedReport struct {
	Report
	OwnerName string `db:"owner_name" json:"owner_name"`
}
