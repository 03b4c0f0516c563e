package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Gunvolt24/record-store/internal/domain"
	"github.com/Gunvolt24/record-store/internal/ports"
	"github.com/Gunvolt24/record-store/pkg/validate"
)

// Проверка, что RecordService удовлетворяет интерфейсу порта.
var _ ports.RecordService = (*RecordService)(nil)

// Границы limit; транспорт уже валидирует, здесь — последний рубеж.
const (
	defaultLimit = 10
	maxLimit     = 100
)

// RecordService — прикладная логика каталога (без знаний о транспорте).
type RecordService struct {
	repo      ports.RecordRepository
	tracks    ports.TracklistFetcher
	validator ports.RecordValidator
	log       ports.Logger
}

// NewRecordService — DI-конструктор.
func NewRecordService(
	repo ports.RecordRepository,
	tracks ports.TracklistFetcher,
	validator ports.RecordValidator,
	log ports.Logger,
) *RecordService {
	return &RecordService{
		repo:      repo,
		tracks:    tracks,
		validator: validator,
		log:       log,
	}
}

// resolveTracklist — best-effort обогащение: список треков по mbid.
// Любая ошибка внешнего сервиса логируется и превращается в пустой
// список — путь записи она не блокирует и не роняет.
func (s *RecordService) resolveTracklist(ctx context.Context, mbid string) []string {
	if mbid == "" {
		return []string{}
	}
	titles, err := s.tracks.Fetch(ctx, mbid)
	if err != nil {
		s.log.Warnf(ctx, "tracklist fetch failed mbid=%s err=%v (continuing with empty tracklist)", mbid, err)
		return []string{}
	}
	return titles
}

// Create — создать запись каталога:
//  1. доменная валидация (ErrInvalidRecord при проблемах);
//  2. best-effort обогащение треклистом по mbid;
//  3. вставка (ErrDuplicateRecord при нарушении уникальности).
func (s *RecordService) Create(ctx context.Context, data domain.RecordData) (*domain.Record, error) {
	if err := s.validator.Validate(ctx, &data); err != nil {
		return nil, err
	}

	data.Tracklist = s.resolveTracklist(ctx, data.MBID)

	rec, err := s.repo.Create(ctx, data)
	if err != nil {
		return nil, err
	}
	s.log.Infof(ctx, "record created id=%d artist=%q album=%q", rec.ID, rec.Artist, rec.Album)
	return rec, nil
}

// Update — обновить запись. Треклист пересобирается только при смене
// mbid; неудачное обогащение оставляет прежний треклист.
func (s *RecordService) Update(ctx context.Context, id int64, data domain.RecordData) (*domain.Record, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validator.Validate(ctx, &data); err != nil {
		return nil, err
	}

	data.Tracklist = existing.Tracklist
	if data.MBID != "" && data.MBID != existing.MBID {
		if titles, fetchErr := s.tracks.Fetch(ctx, data.MBID); fetchErr != nil {
			s.log.Warnf(ctx, "tracklist fetch failed mbid=%s err=%v (keeping previous tracklist)", data.MBID, fetchErr)
		} else {
			data.Tracklist = titles
		}
	}

	rec, err := s.repo.Update(ctx, id, data)
	if err != nil {
		return nil, err
	}
	s.log.Infof(ctx, "record updated id=%d", rec.ID)
	return rec, nil
}

// List — страница записей по фильтру.
// Алгоритм: запрашиваем limit+1 строк с id > cursor по возрастанию id.
// Лишняя строка — только сигнал продолжения: усечение всегда
// отбрасывает её, а не граничную, поэтому страницы не пересекаются
// и ничего не пропускают.
func (s *RecordService) List(ctx context.Context, q domain.ListQuery) (*domain.RecordPage, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	start := time.Now()
	fetched, err := s.repo.ListFiltered(ctx, q.Filter, limit+1, q.Cursor)
	if err != nil {
		s.log.Errorf(ctx, "repo.ListFiltered failed err=%v", err)
		return nil, err
	}

	page := &domain.RecordPage{Data: fetched, HasNextPage: false}
	if len(fetched) > limit {
		page.Data = fetched[:limit]
		page.HasNextPage = true
		next := strconv.FormatInt(page.Data[len(page.Data)-1].ID, 10)
		page.NextCursor = &next
	}
	if page.Data == nil {
		page.Data = []*domain.Record{}
	}

	s.log.Infof(ctx, "list fetched n=%d cursor=%d has_next=%v took=%s",
		len(page.Data), q.Cursor, page.HasNextPage, time.Since(start))
	return page, nil
}

// CreateFromMessage — создать запись из сообщения импорта (raw JSON).
// Шаги:
//  1. строгий парсинг JSON (DisallowUnknownFields);
//  2. общий путь Create (валидация, обогащение, вставка).
// Любая ошибка парсинга возвращается как validate.ErrInvalidRecord:
// консьюмер различает по ней постоянные ошибки от временных.
func (s *RecordService) CreateFromMessage(ctx context.Context, raw []byte) error {
	var data domain.RecordData
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	// Мусорный payload — постоянная ошибка: повторная доставка его не исправит.
	if err := dec.Decode(&data); err != nil {
		s.log.Warnf(ctx, "invalid import json err=%v", err)
		return fmt.Errorf("%w: invalid json: %v", validate.ErrInvalidRecord, err)
	}

	// После объекта лишних данных быть не должно.
	if err := dec.Decode(new(struct{})); err != io.EOF {
		s.log.Warnf(ctx, "invalid import json: trailing data")
		return fmt.Errorf("%w: invalid json: trailing data", validate.ErrInvalidRecord)
	}

	if _, err := s.Create(ctx, data); err != nil {
		return err
	}
	return nil
}
