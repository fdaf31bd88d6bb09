package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"humanizer-service/internal/core/domain"
	ports "humanizer-service/internal/core/ports/output"
)

type rewriteJobRepo struct {
	pool *pgxpool.Pool
}

// NewRewriteJobRepository creates a new rewrite job repository
func NewRewriteJobRepository(pool *pgxpool.Pool) ports.RewriteJobRepository {
	return &rewriteJobRepo{pool: pool}
}

func (r *rewriteJobRepo) Create(ctx context.Context, job *domain.RewriteJob) error {
	query := `
		INSERT INTO rewrite_job (id, created_at, mode, intensity, cycles, input_text, output_text, input_chars, output_chars, duration_ms, preset_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.pool.Exec(ctx, query,
		job.ID,
		job.CreatedAt,
		job.Mode,
		job.Intensity,
		job.Cycles,
		job.InputText,
		job.OutputText,
		job.InputChars,
		job.OutputChars,
		job.DurationMs,
		job.PresetID,
	)
	if err != nil {
		return fmt.Errorf("insert rewrite_job: %w", err)
	}
	return nil
}

func (r *rewriteJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RewriteJob, error) {
	query := `
		SELECT id, created_at, mode, intensity, cycles, input_text, output_text, input_chars, output_chars, duration_ms, preset_id
		FROM rewrite_job
		WHERE id = $1
	`
	job, err := r.scanJob(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("get rewrite_job by id: %w", err)
	}
	return job, nil
}

func (r *rewriteJobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM rewrite_job WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete rewrite_job: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

func (r *rewriteJobRepo) List(ctx context.Context, filter ports.JobListFilter) ([]*domain.RewriteJob, int, error) {
	conditions := []string{"TRUE"}
	args := []interface{}{}
	argPos := 1

	if filter.Mode != "" {
		conditions = append(conditions, fmt.Sprintf("mode = $%d", argPos))
		args = append(args, filter.Mode)
		argPos++
	}

	whereClause := strings.Join(conditions, " AND ")

	// Count
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM rewrite_job WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count rewrite_jobs: %w", err)
	}

	// Order
	orderBy := "created_at DESC"
	if filter.SortBy != "" {
		dir := "DESC"
		if filter.Order == "asc" {
			dir = "ASC"
		}
		orderBy = fmt.Sprintf("%s %s", filter.SortBy, dir)
	}

	query := fmt.Sprintf(`
		SELECT id, created_at, mode, intensity, cycles, input_text, output_text, input_chars, output_chars, duration_ms, preset_id
		FROM rewrite_job
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, whereClause, orderBy, argPos, argPos+1)

	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list rewrite_jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*domain.RewriteJob
	for rows.Next() {
		job, err := r.scanJobFromRows(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan rewrite_job row: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate rewrite_job rows: %w", err)
	}

	return jobs, total, nil
}

func (r *rewriteJobRepo) Stats(ctx context.Context) (*domain.RewriteStats, error) {
	stats := &domain.RewriteStats{JobsByIntensity: make(map[int]int)}

	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE mode = 'deep_think'),
		       COALESCE(AVG(duration_ms), 0),
		       COALESCE(AVG(output_chars::float8 / NULLIF(input_chars, 0)), 0)
		FROM rewrite_job
	`
	err := r.pool.QueryRow(ctx, query).Scan(
		&stats.TotalJobs,
		&stats.DeepThinkJobs,
		&stats.AvgDurationMs,
		&stats.AvgExpansionRatio,
	)
	if err != nil {
		return nil, fmt.Errorf("aggregate rewrite_job stats: %w", err)
	}

	rows, err := r.pool.Query(ctx, `SELECT intensity, COUNT(*) FROM rewrite_job GROUP BY intensity`)
	if err != nil {
		return nil, fmt.Errorf("count rewrite_jobs by intensity: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var intensity, count int
		if err := rows.Scan(&intensity, &count); err != nil {
			return nil, fmt.Errorf("scan intensity count: %w", err)
		}
		stats.JobsByIntensity[intensity] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate intensity counts: %w", err)
	}

	return stats, nil
}

func (r *rewriteJobRepo) scanJob(row pgx.Row) (*domain.RewriteJob, error) {
	job := &domain.RewriteJob{}
	err := row.Scan(
		&job.ID, &job.CreatedAt, &job.Mode, &job.Intensity, &job.Cycles,
		&job.InputText, &job.OutputText, &job.InputChars, &job.OutputChars,
		&job.DurationMs, &job.PresetID,
	)
	if err != nil {
		return nil, err
	}
	return job, nil
}

func (r *rewriteJobRepo) scanJobFromRows(rows pgx.Rows) (*domain.RewriteJob, error) {
	job := &domain.RewriteJob{}
	err := rows.Scan(
		&job.ID, &job.CreatedAt, &job.Mode, &job.Intensity, &job.Cycles,
		&job.InputText, &job.OutputText, &job.InputChars, &job.OutputChars,
		&job.DurationMs, &job.PresetID,
	)
	if err != nil {
		return nil, err
	}
	return job, nil
}
