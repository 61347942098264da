package model

import "errors"

// Сервисы оборачивают эти ошибки через %w, хендлеры сопоставляют их
// со статус-кодами через errors.Is
var (
	// ErrNotFound : сущность не найдена или у пользователя нет к ней доступа.
	// Намеренно не различаем "нет" и "чужое", чтобы не раскрывать существование отчёта
	ErrNotFound = errors.New("не найдено")

	// ErrValidation : обязательные поля отсутствуют или некорректны
	ErrValidation = errors.New("некорректные данные запроса")

	// ErrConflict : нарушение уникальности (повторная регистрация email)
	ErrConflict = errors.New("конфликт данных")

	// ErrUnauthorized : неверные учётные данные при входе
	ErrUnauthorized = errors.New("неверные учётные данные")
)
