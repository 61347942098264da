package requestresponse

import (
	"strconv"
	"time"

	"health-wallet/internal/model"
)

// AddVitalRequest : тело запроса на добавление показателя
type AddVitalRequest struct {
	VitalType string `json:"vital_type" example:"Sugar"`
	Value     string `json:"value" example:"95"`
	Unit      string `json:"unit,omitempty" example:"mg/dL"`
	Date      string `json:"date" example:"2024-01-10"`
}

// UpdateVitalRequest : частичное обновление показателя.
// Пустое поле означает "не менять" — очистить поле до пустого значения
// через этот запрос нельзя
type UpdateVitalRequest struct {
	VitalType string `json:"vital_type,omitempty"`
	Value     string `json:"value,omitempty"`
	Unit      string `json:"unit,omitempty"`
	Date      string `json:"date,omitempty"`
}

// VitalResponse : показатель для JSON-ответа
type VitalResponse struct {
	ID        string    `json:"id"`
	VitalType string    `json:"vital_type"`
	Value     string    `json:"value"`
	Unit      string    `json:"unit"`
	Date      string    `json:"date" example:"2024-01-10"`
	CreatedAt time.Time `json:"created_at"`
}

// AddVitalResponse : ответ на добавление показателя
type AddVitalResponse struct {
	Message string        `json:"message" example:"показатель добавлен"`
	Vital   VitalResponse `json:"vital"`
}

// TrendPoint : точка графика; Value — число, если текст распарсился,
// иначе исходная строка
type TrendPoint struct {
	Date  string      `json:"date" example:"2024-01-10"`
	Value interface{} `json:"value"`
	Unit  string      `json:"unit"`
}

// VitalResponseFromModel : конвертирует model.Vital в VitalResponse
func VitalResponseFromModel(vital *model.Vital) VitalResponse {
	return VitalResponse{
		ID:        vital.UUID,
		VitalType: vital.VitalType,
		Value:     vital.Value,
		Unit:      vital.Unit,
		Date:      vital.Date.Format(dateLayout),
		CreatedAt: vital.CreatedAt,
	}
}

// TrendPointFromModel : конвертирует показатель в точку графика
func TrendPointFromModel(vital *model.Vital) TrendPoint {
	point := TrendPoint{
		Date: vital.Date.Format(dateLayout),
		Unit: vital.Unit,
	}
	if parsed, err := strconv.ParseFloat(vital.Value, 64); err == nil {
		point.Value = parsed
	} else {
		point.Value = vital.Value
	}
	return point
}
