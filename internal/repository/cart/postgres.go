package cart

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"ventas-dashboard/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by the cart_drafts tables.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, ownerID string) (*domain.CartDraft, error) {
	const q = `
INSERT INTO cart_drafts (id, owner_id)
VALUES ($1, $2)
RETURNING id::text, owner_id, user_id, created_at, updated_at
`
	var d domain.CartDraft
	if err := r.pool.QueryRow(ctx, q, uuid.NewString(), ownerID).Scan(&d.ID, &d.OwnerID, &d.UserID, &d.CreatedAt, &d.UpdatedAt); err != nil {
		r.logger.Printf("cart repo: create owner_id=%s error=%v", ownerID, err)
		return nil, err
	}
	d.Items = []domain.SaleLineItem{}
	r.logger.Printf("cart repo: created id=%s owner_id=%s", d.ID, ownerID)
	return &d, nil
}

func (r *postgresRepo) Get(ctx context.Context, ownerID, id string) (*domain.CartDraft, error) {
	if uuid.Validate(id) != nil {
		return nil, domain.ErrNotFound
	}
	const draftQuery = `
SELECT id::text, owner_id, user_id, created_at, updated_at
FROM cart_drafts
WHERE id = $1 AND owner_id = $2
`
	var d domain.CartDraft
	err := r.pool.QueryRow(ctx, draftQuery, id, ownerID).Scan(&d.ID, &d.OwnerID, &d.UserID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("cart repo: get id=%s error=%v", id, err)
		return nil, err
	}

	const linesQuery = `
SELECT product_id, quantity, price::text
FROM cart_draft_lines
WHERE draft_id = $1
ORDER BY position ASC
`
	rows, err := r.pool.Query(ctx, linesQuery, d.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	d.Items = []domain.SaleLineItem{}
	for rows.Next() {
		var (
			item  domain.SaleLineItem
			price string
		)
		if err := rows.Scan(&item.ProductID, &item.Quantity, &price); err != nil {
			return nil, err
		}
		item.Price, err = decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("cart repo: price %q for product %s: %w", price, item.ProductID, err)
		}
		d.Items = append(d.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *postgresRepo) Save(ctx context.Context, draft *domain.CartDraft) error {
	if uuid.Validate(draft.ID) != nil {
		return domain.ErrNotFound
	}
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
UPDATE cart_drafts
SET user_id = $1, updated_at = now()
WHERE id = $2 AND owner_id = $3
RETURNING updated_at
`, draft.UserID, draft.ID, draft.OwnerID).Scan(&draft.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_draft_lines WHERE draft_id = $1`, draft.ID); err != nil {
		return err
	}
	for i, item := range draft.Items {
		if _, err := tx.Exec(ctx, `
INSERT INTO cart_draft_lines (draft_id, position, product_id, quantity, price)
VALUES ($1, $2, $3, $4, $5::text::numeric)
`, draft.ID, i, item.ProductID, item.Quantity, item.Price.String()); err != nil {
			r.logger.Printf("cart repo: save line id=%s product_id=%s error=%v", draft.ID, item.ProductID, err)
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	r.logger.Printf("cart repo: saved id=%s lines=%d", draft.ID, len(draft.Items))
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, ownerID, id string) error {
	if uuid.Validate(id) != nil {
		return domain.ErrNotFound
	}
	cmd, err := r.pool.Exec(ctx, `DELETE FROM cart_drafts WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		r.logger.Printf("cart repo: delete id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	r.logger.Printf("cart repo: deleted id=%s", id)
	return nil
}
