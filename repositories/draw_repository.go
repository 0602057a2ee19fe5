package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/tournament-draws/models"
)

var (
	ErrDrawIDConflict = errors.New("draw id already exists")
)

// DrawRepository stores whole draw documents. Implementations return
// models.ErrDrawNotFound for unknown ids and never share memory with callers.
type DrawRepository interface {
	Create(ctx context.Context, draw *models.DrawDefinition) error
	GetByID(ctx context.Context, id string) (*models.DrawDefinition, error)
	Update(ctx context.Context, draw *models.DrawDefinition) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.DrawSummary, error)
}

func drawNotFound(id string) error {
	return fmt.Errorf("%w: %s", models.ErrDrawNotFound, id)
}

type postgresDrawRepository struct {
	db *sql.DB
}

func NewPostgresDrawRepository(db *sql.DB) DrawRepository {
	return &postgresDrawRepository{db: db}
}

func (r *postgresDrawRepository) Create(ctx context.Context, draw *models.DrawDefinition) error {
	document, err := json.Marshal(draw)
	if err != nil {
		return fmt.Errorf("failed to marshal draw %s: %w", draw.DrawID, err)
	}
	query := `INSERT INTO draws (id, name, draw_type, draw_size, document, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = r.db.ExecContext(ctx, query,
		draw.DrawID, draw.DrawName, string(draw.DrawType), draw.DrawSize, document, draw.CreatedAt, draw.UpdatedAt)
	if err != nil {
		return mapUniqueViolation(err, "draws_pkey", ErrDrawIDConflict)
	}
	return nil
}

func (r *postgresDrawRepository) GetByID(ctx context.Context, id string) (*models.DrawDefinition, error) {
	query := `SELECT document FROM draws WHERE id = $1`

	var document []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(&document)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, drawNotFound(id)
		}
		return nil, err
	}
	draw := &models.DrawDefinition{}
	if err := json.Unmarshal(document, draw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draw %s: %w", id, err)
	}
	return draw, nil
}

func (r *postgresDrawRepository) Update(ctx context.Context, draw *models.DrawDefinition) error {
	document, err := json.Marshal(draw)
	if err != nil {
		return fmt.Errorf("failed to marshal draw %s: %w", draw.DrawID, err)
	}
	query := `UPDATE draws SET name = $1, draw_type = $2, draw_size = $3, document = $4, updated_at = $5 WHERE id = $6`

	result, err := r.db.ExecContext(ctx, query,
		draw.DrawName, string(draw.DrawType), draw.DrawSize, document, draw.UpdatedAt, draw.DrawID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, drawNotFound(draw.DrawID))
}

func (r *postgresDrawRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM draws WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, drawNotFound(id))
}

func (r *postgresDrawRepository) List(ctx context.Context) ([]models.DrawSummary, error) {
	query := `SELECT id, name, draw_type, draw_size, created_at, updated_at FROM draws ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]models.DrawSummary, 0)
	for rows.Next() {
		var s models.DrawSummary
		var drawType string
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&s.DrawID, &s.DrawName, &drawType, &s.DrawSize, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		s.DrawType = models.DrawType(drawType)
		s.CreatedAt, s.UpdatedAt = createdAt.UTC(), updatedAt.UTC()
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return summaries, nil
}
