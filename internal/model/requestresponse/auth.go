package requestresponse

// RegisterRequest : тело запроса регистрации
type RegisterRequest struct {
	Name     string `json:"name" example:"Иван Иванов"`
	Email    string `json:"email" example:"user@example.com"`
	Password string `json:"password" example:"P@ssw0rd123"`
}

// LoginRequest : тело запроса на аутентификацию
type LoginRequest struct {
	Email    string `json:"email" example:"user@example.com"`
	Password string `json:"password" example:"P@ssw0rd123"`
}

type UserData struct {
	UUID  string `json:"uuid" example:"b6a1e1c4-4b1d-4f1e-8b29-1234567890ab"`
	Name  string `json:"name" example:"Иван Иванов"`
	Email string `json:"email" example:"user@example.com"`
}

// AuthResponse : ответ на успешную регистрацию или вход
type AuthResponse struct {
	Message string   `json:"message,omitempty" example:"пользователь зарегистрирован"`
	Token   string   `json:"token" example:"eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9..."`
	User    UserData `json:"user"`
}

// CurrentUserResponse : информация о текущем пользователе
type CurrentUserResponse struct {
	UserUUID string `json:"user_uuid" example:"b6a1e1c4-4b1d-4f1e-8b29-1234567890ab"`
}

// HealthResponse : ответ health-check
type HealthResponse struct {
	Status  string `json:"status" example:"OK"`
	Message string `json:"message" example:"Health Wallet API запущен"`
}

// SuccessResponse : стандартный ответ успешного выполнения операции
type SuccessResponse struct {
	Message string `json:"message" example:"операция выполнена успешно"`
}
