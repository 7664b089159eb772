package bagrepo

import (
	"context"
	"errors"

	"github.com/AmirH031/SamanKhojo-sub003/internal/structs"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/db"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/logger"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

type (
	Params struct {
		fx.In
		Logger logger.Logger
		DB     db.Querier
	}

	Repo interface {
		Upsert(ctx context.Context, uid string, req structs.AddToBag) error
		GetByUID(ctx context.Context, uid string) ([]structs.BagItem, error)
		UpdateQuantity(ctx context.Context, uid, itemID string, quantity int64) (int64, error)
		Remove(ctx context.Context, uid, itemID string) error
		Clear(ctx context.Context, uid string) error
		Count(ctx context.Context, uid string) (int64, error)
	}

	repo struct {
		logger logger.Logger
		db     db.Querier
	}
)

func New(p Params) Repo {
	return &repo{
		logger: p.Logger,
		db:     p.DB,
	}
}

// Upsert adds a line item, accumulating quantity when the item is already
// in the bag. A replayed request with the same line_key leaves the
// quantity untouched, which makes add retry-safe.
func (r repo) Upsert(ctx context.Context, uid string, req structs.AddToBag) error {
	r.logger.Info(ctx, "Add to bag", zap.String("uid", uid), zap.Any("req", req))
	query := `
		INSERT INTO bag_items (uid, item_id, item_name, shop_id, shop_name, quantity, unit, price, line_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (uid, item_id) DO UPDATE SET
			quantity = CASE
				WHEN bag_items.line_key = EXCLUDED.line_key THEN bag_items.quantity
				ELSE bag_items.quantity + EXCLUDED.quantity
			END,
			line_key   = EXCLUDED.line_key,
			updated_at = NOW()
	`
	_, err := r.db.Exec(ctx, query,
		uid,
		req.ItemID,
		req.ItemName,
		req.ShopID,
		req.ShopName,
		req.Quantity,
		req.Unit,
		req.Price,
		req.LineKey,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return structs.ErrUniqueViolation
		}
		r.logger.Error(ctx, "failed to add bag item", zap.Error(err))
		return err
	}
	return nil
}

func (r repo) GetByUID(ctx context.Context, uid string) ([]structs.BagItem, error) {
	query := `
		SELECT
			item_id,
			item_name,
			shop_id,
			shop_name,
			quantity,
			unit,
			price,
			added_at
		FROM bag_items
		WHERE uid = $1
		ORDER BY added_at ASC, item_id ASC
	`
	rows, err := r.db.Query(ctx, query, uid)
	if err != nil {
		r.logger.Error(ctx, "failed to get bag items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	items := []structs.BagItem{}
	for rows.Next() {
		var item structs.BagItem
		if err := rows.Scan(
			&item.ItemID,
			&item.ItemName,
			&item.ShopID,
			&item.ShopName,
			&item.Quantity,
			&item.Unit,
			&item.Price,
			&item.AddedAt,
		); err != nil {
			r.logger.Error(ctx, "failed to scan bag item row", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error(ctx, "rows error after iteration", zap.Error(err))
		return nil, err
	}
	return items, nil
}

// UpdateQuantity sets an item's quantity. Quantity of zero or below never
// survives as a row: it turns into a delete.
func (r repo) UpdateQuantity(ctx context.Context, uid, itemID string, quantity int64) (int64, error) {
	r.logger.Info(ctx, "Update bag quantity",
		zap.String("uid", uid),
		zap.String("item_id", itemID),
		zap.Int64("quantity", quantity),
	)

	if quantity <= 0 {
		tag, err := r.db.Exec(ctx, `DELETE FROM bag_items WHERE uid = $1 AND item_id = $2`, uid, itemID)
		if err != nil {
			r.logger.Error(ctx, "failed to delete bag item on zero quantity", zap.Error(err))
			return 0, err
		}
		return tag.RowsAffected(), nil
	}

	query := `
		UPDATE bag_items
		SET quantity = $3, updated_at = NOW()
		WHERE uid = $1 AND item_id = $2
	`
	tag, err := r.db.Exec(ctx, query, uid, itemID, quantity)
	if err != nil {
		r.logger.Error(ctx, "failed to update bag quantity", zap.Error(err))
		return 0, err
	}
	if tag.RowsAffected() == 0 {
		return 0, structs.ErrNotFound
	}
	return tag.RowsAffected(), nil
}

func (r repo) Remove(ctx context.Context, uid, itemID string) error {
	r.logger.Info(ctx, "Remove bag item", zap.String("uid", uid), zap.String("item_id", itemID))
	// Idempotent: removing an absent item is not an error.
	_, err := r.db.Exec(ctx, `DELETE FROM bag_items WHERE uid = $1 AND item_id = $2`, uid, itemID)
	if err != nil {
		r.logger.Error(ctx, "failed to remove bag item", zap.Error(err))
		return err
	}
	return nil
}

func (r repo) Clear(ctx context.Context, uid string) error {
	r.logger.Info(ctx, "Clear bag", zap.String("uid", uid))
	_, err := r.db.Exec(ctx, `DELETE FROM bag_items WHERE uid = $1`, uid)
	if err != nil {
		r.logger.Error(ctx, "failed to clear bag", zap.Error(err))
		return err
	}
	return nil
}

func (r repo) Count(ctx context.Context, uid string) (int64, error) {
	var total int64
	query := `SELECT COALESCE(SUM(quantity), 0) FROM bag_items WHERE uid = $1`
	if err := r.db.QueryRow(ctx, query, uid).Scan(&total); err != nil {
		r.logger.Error(ctx, "failed to count bag items", zap.Error(err))
		return 0, err
	}
	return total, nil
}
