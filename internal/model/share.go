package model

import "time"

// SharedAccess : грант доступа на чтение одного отчёта одному пользователю.
// Пара (report_uuid, shared_with_uuid) уникальна: повторный грант обновляет
// access_type существующей записи
type SharedAccess struct {
	UUID           string    `db:"uuid" json:"id"`
	ReportUUID     string    `db:"report_uuid" json:"report_id"`
	OwnerUUID      string    `db:"owner_uuid" json:"owner_id"`
	SharedWithUUID string    `db:"shared_with_uuid" json:"shared_with_id"`
	AccessType     string    `db:"access_type" json:"access_type"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// Grant : грант вместе с данными пользователя-получателя (для списка грантов отчёта)
type Grant struct {
	SharedAccess
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
}

// ShareListing : грант вместе с данными получателя и отчёта (выборка "я поделился")
type ShareListing struct {
	SharedAccess
	SharedWithName  string    `db:"shared_with_name" json:"shared_with_name"`
	SharedWithEmail string    `db:"shared_with_email" json:"shared_with_email"`
	FileName        string    `db:"file_name" json:"file_name"`
	ReportType      string    `db:"report_type" json:"report_type"`
	ReportDate      time.Time `db:"report_date" json:"-"`
}
