package service

import "errors"

// Доменные ошибки сервисного слоя. HTTP-слой переводит их в статусы
// и показываемые пользователю сообщения.
var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateGroup     = errors.New("group with this name already exists")
	ErrDuplicateEmail     = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
