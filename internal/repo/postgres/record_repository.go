package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/record-store/internal/domain"
	"github.com/Gunvolt24/record-store/internal/ports"
)

// Проверка, что RecordRepository удовлетворяет интерфейсу порта.
var _ ports.RecordRepository = (*RecordRepository)(nil)

// Код Postgres для нарушения уникальности.
const pgUniqueViolation = "23505"

// recordColumns — единый список колонок для всех SELECT/RETURNING.
const recordColumns = `id, artist, album, price, qty, format, category, mbid, tracklist, created_at, updated_at`

// RecordRepository — реализация хранилища записей на Postgres (pgxpool).
type RecordRepository struct {
	pool *pgxpool.Pool
}

// NewRecordRepository — конструктор RecordRepository.
func NewRecordRepository(pool *pgxpool.Pool) *RecordRepository {
	return &RecordRepository{pool: pool}
}

// scanRecord — читает одну строку в domain.Record.
func scanRecord(row pgx.Row) (*domain.Record, error) {
	var r domain.Record
	err := row.Scan(
		&r.ID, &r.Artist, &r.Album, &r.Price, &r.Qty,
		&r.Format, &r.Category, &r.MBID, &r.Tracklist,
		&r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if r.Tracklist == nil {
		r.Tracklist = []string{}
	}
	return &r, nil
}

// Create — вставка новой записи каталога.
// Нарушение уникальности (artist, album, format) → domain.ErrDuplicateRecord.
func (r *RecordRepository) Create(ctx context.Context, data domain.RecordData) (*domain.Record, error) {
	tracklist := data.Tracklist
	if tracklist == nil {
		tracklist = []string{}
	}

	rec, err := scanRecord(queryEngine(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO records (artist, album, price, qty, format, category, mbid, tracklist)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+recordColumns,
		data.Artist, data.Album, data.Price, data.Qty,
		data.Format, data.Category, data.MBID, tracklist,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, domain.ErrDuplicateRecord
		}
		return nil, fmt.Errorf("insert record: %w", err)
	}
	return rec, nil
}

// GetByID — запись по id; уважает транзакцию из контекста.
func (r *RecordRepository) GetByID(ctx context.Context, id int64) (*domain.Record, error) {
	rec, err := scanRecord(queryEngine(ctx, r.pool).QueryRow(ctx, `
		SELECT `+recordColumns+` FROM records WHERE id = $1
	`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select record: %w", err)
	}
	return rec, nil
}

// Update — полная замена изменяемых полей записи.
func (r *RecordRepository) Update(ctx context.Context, id int64, data domain.RecordData) (*domain.Record, error) {
	tracklist := data.Tracklist
	if tracklist == nil {
		tracklist = []string{}
	}

	rec, err := scanRecord(queryEngine(ctx, r.pool).QueryRow(ctx, `
		UPDATE records
		SET artist = $2, album = $3, price = $4, qty = $5,
			format = $6, category = $7, mbid = $8, tracklist = $9,
			updated_at = now()
		WHERE id = $1
		RETURNING `+recordColumns,
		id, data.Artist, data.Album, data.Price, data.Qty,
		data.Format, data.Category, data.MBID, tracklist,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrRecordNotFound
	}
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, domain.ErrDuplicateRecord
		}
		return nil, fmt.Errorf("update record: %w", err)
	}
	return rec, nil
}

// buildListPredicates — переводит фильтр и курсор в условия WHERE.
// artist/album — подстрока без учёта регистра (ILIKE); format/category —
// точное совпадение; q — подстрока по artist ИЛИ album ИЛИ category.
// Возвращает SQL-хвост (начиная с WHERE, возможно пустой) и аргументы.
func buildListPredicates(f domain.RecordFilter, cursor int64) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if cursor > 0 {
		add("id > $%d", cursor)
	}
	if f.Q != "" {
		// один аргумент на все три сравнения
		args = append(args, "%"+f.Q+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(artist ILIKE $%d OR album ILIKE $%d OR category ILIKE $%d)", n, n, n))
	}
	if f.Artist != "" {
		add("artist ILIKE $%d", "%"+f.Artist+"%")
	}
	if f.Album != "" {
		add("album ILIKE $%d", "%"+f.Album+"%")
	}
	if f.Format != "" {
		add("format = $%d", f.Format)
	}
	if f.Category != "" {
		add("category = $%d", f.Category)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// ListFiltered — до limit записей с id > cursor по возрастанию id.
// Порядок по монотонному id делает итерацию устойчивой к параллельным
// вставкам: новые записи получают большие id и не сдвигают пройденное.
func (r *RecordRepository) ListFiltered(ctx context.Context, filter domain.RecordFilter, limit int, cursor int64) ([]*domain.Record, error) {
	where, args := buildListPredicates(filter, cursor)
	args = append(args, limit)

	rows, err := queryEngine(ctx, r.pool).Query(ctx, fmt.Sprintf(`
		SELECT %s FROM records
		%s
		ORDER BY id ASC
		LIMIT $%d
	`, recordColumns, where, len(args)), args...)
	if err != nil {
		return nil, fmt.Errorf("select records: %w", err)
	}
	defer rows.Close()

	var result []*domain.Record
	for rows.Next() {
		rec, scanErr := scanRecord(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("scan record: %w", scanErr)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("records rows: %w", err)
	}
	return result, nil
}

// DeductStock — одно условное списание: qty -= quantity только при
// qty >= quantity и совпадении id. Проверка и мутация выполняются
// хранилищем как неделимая операция — никакого read-then-write
// на стороне приложения. Пустой результат означает, что условие
// не выполнено (мало остатка или записи нет) → ErrInsufficientStock.
func (r *RecordRepository) DeductStock(ctx context.Context, id int64, quantity int) (*domain.Record, error) {
	rec, err := scanRecord(queryEngine(ctx, r.pool).QueryRow(ctx, `
		UPDATE records
		SET qty = qty - $2, updated_at = now()
		WHERE id = $1 AND qty >= $2
		RETURNING `+recordColumns,
		id, quantity,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrInsufficientStock
	}
	if err != nil {
		return nil, fmt.Errorf("deduct stock: %w", err)
	}
	return rec, nil
}
