package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/passforge/passforge/internal/model"
)

var (
	ErrPresetNotFound      = errors.New("preset not found")
	ErrDuplicatePresetName = errors.New("preset name already exists")
)

const presetColumns = `id, user_id, name, options, created_at, updated_at`

// PresetRepository handles generator preset persistence.
type PresetRepository struct {
	db *sql.DB
}

// NewPresetRepository creates a new PresetRepository.
func NewPresetRepository(db *sql.DB) *PresetRepository {
	return &PresetRepository{db: db}
}

// Create inserts a preset under a new random ID, which is set on p.
func (r *PresetRepository) Create(ctx context.Context, p *model.Preset) error {
	id, err := uuid.NewRandom()
	if err != nil {
		return err
	}

	query := `INSERT INTO generator_presets (id, user_id, name, options) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, id.String(), p.UserID, p.Name, p.Options); err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicatePresetName
		}
		return err
	}

	p.ID = id.String()
	return nil
}

// GetByID retrieves a preset owned by userID.
func (r *PresetRepository) GetByID(ctx context.Context, userID int64, id string) (*model.Preset, error) {
	query := `SELECT ` + presetColumns + ` FROM generator_presets WHERE id = ? AND user_id = ?`

	p := &model.Preset{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&p.ID, &p.UserID, &p.Name, &p.Options, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPresetNotFound
		}
		return nil, err
	}

	return p, nil
}

// ListByUser retrieves all presets of a user ordered by name.
func (r *PresetRepository) ListByUser(ctx context.Context, userID int64) ([]model.Preset, error) {
	query := `SELECT ` + presetColumns + ` FROM generator_presets WHERE user_id = ? ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var presets []model.Preset
	for rows.Next() {
		var p model.Preset
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Options, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		presets = append(presets, p)
	}

	return presets, rows.Err()
}

// Update replaces the name and options of a preset owned by p.UserID.
func (r *PresetRepository) Update(ctx context.Context, p *model.Preset) error {
	query := `UPDATE generator_presets SET name = ?, options = ? WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, p.Name, p.Options, p.ID, p.UserID)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicatePresetName
		}
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// MySQL reports zero affected rows for an unchanged row as well.
		if _, err := r.GetByID(ctx, p.UserID, p.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a preset owned by userID.
func (r *PresetRepository) Delete(ctx context.Context, userID int64, id string) error {
	query := `DELETE FROM generator_presets WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrPresetNotFound
	}
	return nil
}
