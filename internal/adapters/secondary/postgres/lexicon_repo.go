package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"humanizer-service/internal/core/domain"
	ports "humanizer-service/internal/core/ports/output"
)

type lexiconRepo struct {
	pool *pgxpool.Pool
}

// NewLexiconRepository creates a new lexicon repository
func NewLexiconRepository(pool *pgxpool.Pool) ports.LexiconRepository {
	return &lexiconRepo{pool: pool}
}

func (r *lexiconRepo) Create(ctx context.Context, entry *domain.LexiconEntry) error {
	query := `
		INSERT INTO lexicon_entry (id, created_at, updated_at, word, pos, synonyms)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		entry.ID,
		entry.CreatedAt,
		entry.UpdatedAt,
		entry.Word,
		entry.Pos,
		entry.Synonyms,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrLexiconEntryConflict
		}
		return fmt.Errorf("insert lexicon_entry: %w", err)
	}
	return nil
}

func (r *lexiconRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.LexiconEntry, error) {
	query := `
		SELECT id, created_at, updated_at, word, pos, synonyms
		FROM lexicon_entry
		WHERE id = $1
	`
	entry, err := r.scanEntry(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLexiconEntryNotFound
		}
		return nil, fmt.Errorf("get lexicon_entry by id: %w", err)
	}
	return entry, nil
}

func (r *lexiconRepo) Update(ctx context.Context, entry *domain.LexiconEntry) error {
	query := `
		UPDATE lexicon_entry
		SET word = $1, pos = $2, synonyms = $3, updated_at = NOW()
		WHERE id = $4
	`
	result, err := r.pool.Exec(ctx, query,
		entry.Word,
		entry.Pos,
		entry.Synonyms,
		entry.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrLexiconEntryConflict
		}
		return fmt.Errorf("update lexicon_entry: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrLexiconEntryNotFound
	}
	return nil
}

func (r *lexiconRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM lexicon_entry WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lexicon_entry: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrLexiconEntryNotFound
	}
	return nil
}

func (r *lexiconRepo) List(ctx context.Context, filter ports.LexiconListFilter) ([]*domain.LexiconEntry, int, error) {
	conditions := []string{"TRUE"}
	args := []interface{}{}
	argPos := 1

	if filter.Pos != "" {
		conditions = append(conditions, fmt.Sprintf("pos = $%d", argPos))
		args = append(args, filter.Pos)
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("word ILIKE $%d", argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM lexicon_entry WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count lexicon_entries: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, created_at, updated_at, word, pos, synonyms
		FROM lexicon_entry
		WHERE %s
		ORDER BY word, pos
		LIMIT $%d OFFSET $%d
	`, whereClause, argPos, argPos+1)

	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list lexicon_entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.LexiconEntry
	for rows.Next() {
		entry, err := r.scanEntryFromRows(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan lexicon_entry row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate lexicon_entry rows: %w", err)
	}

	return entries, total, nil
}

func (r *lexiconRepo) ListAll(ctx context.Context) ([]*domain.LexiconEntry, error) {
	query := `
		SELECT id, created_at, updated_at, word, pos, synonyms
		FROM lexicon_entry
		ORDER BY word, pos
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list all lexicon_entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.LexiconEntry
	for rows.Next() {
		entry, err := r.scanEntryFromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lexicon_entry row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lexicon_entry rows: %w", err)
	}

	return entries, nil
}

func (r *lexiconRepo) scanEntry(row pgx.Row) (*domain.LexiconEntry, error) {
	entry := &domain.LexiconEntry{}
	err := row.Scan(
		&entry.ID, &entry.CreatedAt, &entry.UpdatedAt,
		&entry.Word, &entry.Pos, &entry.Synonyms,
	)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *lexiconRepo) scanEntryFromRows(rows pgx.Rows) (*domain.LexiconEntry, error) {
	entry := &domain.LexiconEntry{}
	err := rows.Scan(
		&entry.ID, &entry.CreatedAt, &entry.UpdatedAt,
		&entry.Word, &entry.Pos, &entry.Synonyms,
	)
	if err != nil {
		return nil, err
	}
	return entry, nil
}
