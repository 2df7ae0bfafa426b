package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"github.com/stablemgr/stableapi/models"
)

// Bun is the Postgres-backed store. Same contract as Memory; durability is a
// side effect, not a promise the API makes.
type Bun struct {
	db *bun.DB
}

// NewBun wraps an open bun connection.
func NewBun(db *bun.DB) *Bun {
	return &Bun{db: db}
}

func (s *Bun) ListActive(ctx context.Context) ([]models.Horse, error) {
	horses := make([]models.Horse, 0)
	err := s.db.NewSelect().
		Model(&horses).
		Where("h.status != ?", models.StatusForged).
		OrderExpr("h.created_at ASC, h.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return horses, nil
}

func (s *Bun) Get(ctx context.Context, id string) (models.Horse, error) {
	h, err := s.Lookup(ctx, id)
	if err != nil {
		return models.Horse{}, err
	}
	if h.Status == models.StatusForged {
		return models.Horse{}, ErrNotFound
	}
	return h, nil
}

func (s *Bun) Lookup(ctx context.Context, id string) (models.Horse, error) {
	h := models.Horse{}
	err := s.db.NewSelect().
		Model(&h).
		Where("h.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Horse{}, ErrNotFound
		}
		return models.Horse{}, err
	}
	return h, nil
}

func (s *Bun) Insert(ctx context.Context, h models.Horse) error {
	_, err := s.db.NewInsert().Model(&h).Exec(ctx)
	return err
}

func (s *Bun) Replace(ctx context.Context, id string, h models.Horse) error {
	h.ID = id
	res, err := s.db.NewUpdate().
		Model(&h).
		ExcludeColumn("created_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Bun) NextOrder(ctx context.Context) (int, error) {
	var next int
	err := s.db.NewSelect().
		Model((*models.Horse)(nil)).
		ColumnExpr("COALESCE(MAX(h.display_order) + 1, 0)").
		Where("h.status != ?", models.StatusForged).
		Where("h.display_order IS NOT NULL").
		Scan(ctx, &next)
	if err != nil {
		return 0, err
	}
	return next, nil
}
