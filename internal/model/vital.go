package model

import "time"

// Vital : единичное измерение показателя здоровья.
// Value хранится текстом: показатели вроде давления ("120/80") не числовые
type Vital struct {
	UUID      string    `db:"uuid" json:"id"`
	OwnerUUID string    `db:"owner_uuid" json:"owner_id"`
	VitalType string    `db:"vital_type" json:"vital_type"`
	Value     string    `db:"value" json:"value"`
	Unit      string    `db:"unit" json:"unit"`
	Date      time.Time `db:"date" json:"date"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// VitalSummary : пара тип+значение для сводки показателей в списке отчётов
type VitalSummary struct {
	Type  string `db:"vital_type" json:"type"`
	Value string `db:"value" json:"value"`
}

// VitalFilter : фильтры выборки показателей; пустое поле не применяется
type VitalFilter struct {
	VitalType string
	StartDate string
	EndDate   string
}
