package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/zarinpos/core/internal/domain/entities"
	"github.com/zarinpos/core/internal/infrastructure/metrics"
	"github.com/zarinpos/core/internal/ports"
)

// TerminalRepositoryImpl implements the TerminalRepository interface
type TerminalRepositoryImpl struct {
	db        *sqlx.DB
	collector *metrics.Collector
}

// NewTerminalRepository creates a new terminal repository
func NewTerminalRepository(db *sqlx.DB, collector *metrics.Collector) ports.TerminalRepository {
	return &TerminalRepositoryImpl{db: db, collector: collector}
}

func (r *TerminalRepositoryImpl) Create(ctx context.Context, terminal *entities.Terminal) error {
	defer observe(r.collector, "terminal_create", metrics.NewTimer(nil))

	query := `
		INSERT INTO terminals (id, tenant_id, name, key_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	if terminal.ID == uuid.Nil {
		terminal.ID = uuid.New()
	}

	err := r.db.QueryRowContext(ctx, query,
		terminal.ID, terminal.TenantID, terminal.Name,
		terminal.KeyHash, terminal.Role, terminal.IsActive,
	).Scan(&terminal.CreatedAt, &terminal.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create terminal: %w", err)
	}

	return nil
}

func (r *TerminalRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.Terminal, error) {
	defer observe(r.collector, "terminal_get", metrics.NewTimer(nil))

	query := `
		SELECT id, tenant_id, name, key_hash, role, is_active,
			created_at, updated_at, deleted_at
		FROM terminals
		WHERE id = $1 AND deleted_at IS NULL`

	var terminal entities.Terminal
	err := r.db.GetContext(ctx, &terminal, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, entities.ErrTerminalNotFound
		}
		return nil, fmt.Errorf("get terminal by id: %w", err)
	}

	return &terminal, nil
}

func (r *TerminalRepositoryImpl) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entities.Terminal, error) {
	defer observe(r.collector, "terminal_list", metrics.NewTimer(nil))

	query := `
		SELECT id, tenant_id, name, key_hash, role, is_active,
			created_at, updated_at, deleted_at
		FROM terminals
		WHERE tenant_id = $1 AND deleted_at IS NULL
		ORDER BY created_at`

	var terminals []*entities.Terminal
	err := r.db.SelectContext(ctx, &terminals, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list terminals by tenant: %w", err)
	}

	return terminals, nil
}

func (r *TerminalRepositoryImpl) Update(ctx context.Context, terminal *entities.Terminal) error {
	defer observe(r.collector, "terminal_update", metrics.NewTimer(nil))

	query := `
		UPDATE terminals
		SET name = $2, role = $3, is_active = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		terminal.ID, terminal.Name, terminal.Role, terminal.IsActive,
	).Scan(&terminal.UpdatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return entities.ErrTerminalNotFound
		}
		return fmt.Errorf("update terminal: %w", err)
	}

	return nil
}

func (r *TerminalRepositoryImpl) Deactivate(ctx context.Context, id uuid.UUID) error {
	defer observe(r.collector, "terminal_deactivate", metrics.NewTimer(nil))

	query := `
		UPDATE terminals
		SET is_active = FALSE, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deactivate terminal: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return entities.ErrTerminalNotFound
	}

	return nil
}
