package quote

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/GLS-QuoteService/internal/domain"
	"github.com/m04kA/GLS-QuoteService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с заявками на расчёт стоимости
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую заявку
// id и created_at назначаются базой данных, запись после создания неизменяема
func (r *Repository) Create(ctx context.Context, quote *domain.QuoteRequest) (*domain.QuoteRequest, error) {
	query, args, err := psqlbuilder.Insert("quote_requests").
		Columns(
			"name",
			"email",
			"city",
			"address",
			"phone",
			"service",
			"comments",
		).
		Values(
			quote.Name,
			quote.Email,
			quote.City,
			quote.Address,
			quote.Phone,
			quote.Service,
			quote.Comments,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&quote.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	quote.CreatedAt = createdAt.Time

	return quote, nil
}

// GetByID получает заявку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.QuoteRequest, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"email",
		"city",
		"address",
		"phone",
		"service",
		"comments",
		"created_at",
	).
		From("quote_requests").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var quote domain.QuoteRequest
	var createdAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&quote.ID,
		&quote.Name,
		&quote.Email,
		&quote.City,
		&quote.Address,
		&quote.Phone,
		&quote.Service,
		&quote.Comments,
		&createdAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrQuoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan quote request: %v", ErrScanRow, err)
	}

	quote.CreatedAt = createdAt.Time

	return &quote, nil
}

// GetAll получает все заявки в порядке создания (created_at ASC)
// Пагинация и фильтрация не применяются - возвращается вся таблица
func (r *Repository) GetAll(ctx context.Context) ([]*domain.QuoteRequest, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"email",
		"city",
		"address",
		"phone",
		"service",
		"comments",
		"created_at",
	).
		From("quote_requests").
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanQuotes(rows)
}

// scanQuotes сканирует результаты запроса в слайс заявок
func (r *Repository) scanQuotes(rows *sql.Rows) ([]*domain.QuoteRequest, error) {
	quotes := make([]*domain.QuoteRequest, 0)

	for rows.Next() {
		var quote domain.QuoteRequest
		var createdAt sql.NullTime

		err := rows.Scan(
			&quote.ID,
			&quote.Name,
			&quote.Email,
			&quote.City,
			&quote.Address,
			&quote.Phone,
			&quote.Service,
			&quote.Comments,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanQuotes - scan row: %v", ErrScanRow, err)
		}

		quote.CreatedAt = createdAt.Time

		quotes = append(quotes, &quote)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanQuotes - rows error: %v", ErrScanRow, err)
	}

	return quotes, nil
}
