package domain

import "errors"

// Ошибки уровня домена; транспорт переводит их в HTTP-статусы.
var (
	// ErrRecordNotFound — запись с таким id отсутствует.
	ErrRecordNotFound = errors.New("record not found")

	// ErrDuplicateRecord — нарушение уникальности (artist, album, format).
	ErrDuplicateRecord = errors.New("record with the same artist, album and format already exists")

	// ErrInsufficientStock — условное списание не прошло: остатка не хватает
	// (или записи нет — с точки зрения списания это одно и то же).
	ErrInsufficientStock = errors.New("insufficient stock")
)
