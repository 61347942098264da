package requestresponse

// ErrorResponse : стандартное JSON-тело ошибки API
type ErrorResponse struct {
	Error   string `json:"error" example:"Not Found"`
	Message string `json:"message" example:"отчёт не найден"`
	Code    int    `json:"code" example:"404"`
}
