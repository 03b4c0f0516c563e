package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/record-store/internal/domain"
	"github.com/Gunvolt24/record-store/internal/ports"
)

// Проверка, что RecordValidator удовлетворяет интерфейсу порта.
var _ ports.RecordValidator = (*RecordValidator)(nil)

// ErrInvalidRecord — базовая (sentinel) ошибка валидации записи.
var ErrInvalidRecord = errors.New("record validation failed")

// RecordValidator — доменная валидация данных записи каталога.
// Возвращает ErrInvalidRecord (с обёрнутой причиной) при любой проблеме.
type RecordValidator struct{}

// NewRecordValidator — конструктор RecordValidator.
func NewRecordValidator() *RecordValidator { return &RecordValidator{} }

// Validate — проверяет корректность полей записи.
func (v *RecordValidator) Validate(_ context.Context, data *domain.RecordData) error {
	if data == nil {
		return fmt.Errorf("%w: данные записи не могут быть nil", ErrInvalidRecord)
	}
	if data.Artist == "" {
		return fmt.Errorf("%w: artist обязателен", ErrInvalidRecord)
	}
	if data.Album == "" {
		return fmt.Errorf("%w: album обязателен", ErrInvalidRecord)
	}
	if data.Price < 0 {
		return fmt.Errorf("%w: price должен быть неотрицательным", ErrInvalidRecord)
	}
	if data.Qty < 0 {
		return fmt.Errorf("%w: qty должен быть неотрицательным", ErrInvalidRecord)
	}
	if !domain.KnownFormat(data.Format) {
		return fmt.Errorf("%w: неизвестный format %q", ErrInvalidRecord, data.Format)
	}
	if !domain.KnownCategory(data.Category) {
		return fmt.Errorf("%w: неизвестная category %q", ErrInvalidRecord, data.Category)
	}
	return nil
}
