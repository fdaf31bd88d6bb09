package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"humanizer-service/internal/core/domain"
	ports "humanizer-service/internal/core/ports/output"
)

type presetRepo struct {
	pool *pgxpool.Pool
}

// NewPresetRepository creates a new preset repository
func NewPresetRepository(pool *pgxpool.Pool) ports.PresetRepository {
	return &presetRepo{pool: pool}
}

func (r *presetRepo) Create(ctx context.Context, preset *domain.Preset) error {
	query := `
		INSERT INTO preset (id, created_at, updated_at, name, description, intensity, deep_think, cycles)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		preset.ID,
		preset.CreatedAt,
		preset.UpdatedAt,
		preset.Name,
		preset.Description,
		preset.Intensity,
		preset.DeepThink,
		preset.Cycles,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrPresetNameConflict
		}
		return fmt.Errorf("insert preset: %w", err)
	}
	return nil
}

func (r *presetRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Preset, error) {
	query := `
		SELECT id, created_at, updated_at, name, description, intensity, deep_think, cycles
		FROM preset
		WHERE id = $1
	`
	preset, err := r.scanPreset(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPresetNotFound
		}
		return nil, fmt.Errorf("get preset by id: %w", err)
	}
	return preset, nil
}

func (r *presetRepo) GetByName(ctx context.Context, name string) (*domain.Preset, error) {
	query := `
		SELECT id, created_at, updated_at, name, description, intensity, deep_think, cycles
		FROM preset
		WHERE name = $1
	`
	preset, err := r.scanPreset(r.pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPresetNotFound
		}
		return nil, fmt.Errorf("get preset by name: %w", err)
	}
	return preset, nil
}

func (r *presetRepo) Update(ctx context.Context, preset *domain.Preset) error {
	query := `
		UPDATE preset
		SET name = $1, description = $2, intensity = $3, deep_think = $4, cycles = $5, updated_at = NOW()
		WHERE id = $6
	`
	result, err := r.pool.Exec(ctx, query,
		preset.Name,
		preset.Description,
		preset.Intensity,
		preset.DeepThink,
		preset.Cycles,
		preset.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrPresetNameConflict
		}
		return fmt.Errorf("update preset: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrPresetNotFound
	}
	return nil
}

func (r *presetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM preset WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete preset: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrPresetNotFound
	}
	return nil
}

func (r *presetRepo) List(ctx context.Context) ([]*domain.Preset, error) {
	query := `
		SELECT id, created_at, updated_at, name, description, intensity, deep_think, cycles
		FROM preset
		ORDER BY name
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}
	defer rows.Close()

	var presets []*domain.Preset
	for rows.Next() {
		preset, err := r.scanPresetFromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("scan preset row: %w", err)
		}
		presets = append(presets, preset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate preset rows: %w", err)
	}

	return presets, nil
}

func (r *presetRepo) scanPreset(row pgx.Row) (*domain.Preset, error) {
	preset := &domain.Preset{}
	err := row.Scan(
		&preset.ID, &preset.CreatedAt, &preset.UpdatedAt,
		&preset.Name, &preset.Description, &preset.Intensity,
		&preset.DeepThink, &preset.Cycles,
	)
	if err != nil {
		return nil, err
	}
	return preset, nil
}

func (r *presetRepo) scanPresetFromRows(rows pgx.Rows) (*domain.Preset, error) {
	preset := &domain.Preset{}
	err := rows.Scan(
		&preset.ID, &preset.CreatedAt, &preset.UpdatedAt,
		&preset.Name, &preset.Description, &preset.Intensity,
		&preset.DeepThink, &preset.Cycles,
	)
	if err != nil {
		return nil, err
	}
	return preset, nil
}
