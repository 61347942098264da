package handler

import (
	"errors"
	"log"
	"net/http"

	"health-wallet/internal/model"
	"health-wallet/internal/util"
)

// handleServiceError : переводит сентинельные ошибки сервисного слоя в HTTP-статусы.
// Внутренние ошибки наружу не уходят, клиент получает общий текст
func handleServiceError(w http.ResponseWriter, err error) {
	log.Println(err)

	switch {
	case errors.Is(err, model.ErrValidation):
		util.HandleError(w, "некорректные данные запроса", http.StatusBadRequest)
	case errors.Is(err, model.ErrUnauthorized):
		util.HandleError(w, "неверный email или пароль", http.StatusUnauthorized)
	case errors.Is(err, model.ErrNotFound):
		util.HandleError(w, "ресурс не найден", http.StatusNotFound)
	case errors.Is(err, model.ErrConflict):
		util.HandleError(w, "пользователь с таким email уже существует", http.StatusConflict)
	default:
		util.HandleError(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
	}
}
