package itemrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AmirH031/SamanKhojo-sub003/internal/structs"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/db"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/logger"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
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
		Create(ctx context.Context, req structs.CreateItem) (string, error)
		GetByID(ctx context.Context, id string) (structs.Item, error)
		GetList(ctx context.Context, req structs.GetListItemRequest) (structs.GetListItemResponse, error)
		Patch(ctx context.Context, req structs.PatchItem) (int64, error)
		Delete(ctx context.Context, id string) error
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

func (r repo) Create(ctx context.Context, req structs.CreateItem) (string, error) {
	r.logger.Info(ctx, "Create item", zap.Any("req", req))

	unit := req.Unit
	if unit == "" {
		unit = structs.DefaultUnit
	}

	id := uuid.NewString()
	query := `
		INSERT INTO items (id, shop_id, name, category, description, price, unit, img_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query,
		id,
		req.ShopID,
		req.Name,
		req.Category,
		req.Description,
		req.Price,
		unit,
		req.ImgUrl,
	)
	if err != nil {
		r.logger.Error(ctx, "failed to create item", zap.Error(err))
		return "", err
	}
	return id, nil
}

func (r repo) GetByID(ctx context.Context, id string) (structs.Item, error) {
	var item structs.Item
	query := `
		SELECT id, shop_id, name, category, description, price, unit, img_url, in_stock, created_at, updated_at
		FROM items
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.ShopID,
		&item.Name,
		&item.Category,
		&item.Description,
		&item.Price,
		&item.Unit,
		&item.ImgUrl,
		&item.InStock,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return item, structs.ErrNotFound
		}
		r.logger.Error(ctx, "failed to get item by id", zap.Error(err))
		return item, err
	}
	return item, nil
}

func (r repo) GetList(ctx context.Context, req structs.GetListItemRequest) (structs.GetListItemResponse, error) {
	var res structs.GetListItemResponse

	limit := req.Limit
	if limit <= 0 {
		limit = 100
	}

	query := `
		SELECT
			COUNT(*) OVER () AS total,
			id, shop_id, name, category, description, price, unit, img_url, in_stock, created_at, updated_at
		FROM items
		WHERE ($1 = '' OR shop_id = $1)
			AND ($2 = '' OR category = $2)
			AND ($3 = '' OR name ILIKE '%' || $3 || '%')
		ORDER BY category ASC, name ASC
		LIMIT $4 OFFSET $5
	`
	rows, err := r.db.Query(ctx, query, req.ShopID, req.Category, req.Search, limit, req.Offset)
	if err != nil {
		r.logger.Error(ctx, "failed to list items", zap.Error(err))
		return res, err
	}
	defer rows.Close()

	for rows.Next() {
		var item structs.Item
		if err := rows.Scan(
			&res.Count,
			&item.ID,
			&item.ShopID,
			&item.Name,
			&item.Category,
			&item.Description,
			&item.Price,
			&item.Unit,
			&item.ImgUrl,
			&item.InStock,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			r.logger.Error(ctx, "failed to scan item row", zap.Error(err))
			return res, err
		}
		res.Items = append(res.Items, item)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error(ctx, "rows error after iteration", zap.Error(err))
		return res, err
	}
	return res, nil
}

func (r repo) Patch(ctx context.Context, req structs.PatchItem) (int64, error) {
	setValues := []string{}
	params := map[string]interface{}{
		"id": req.ID,
	}

	if req.Name != nil {
		setValues = append(setValues, "name = :name")
		params["name"] = *req.Name
	}
	if req.Category != nil {
		setValues = append(setValues, "category = :category")
		params["category"] = *req.Category
	}
	if req.Description != nil {
		setValues = append(setValues, "description = :description")
		params["description"] = *req.Description
	}
	if req.Price != nil {
		setValues = append(setValues, "price = :price")
		params["price"] = *req.Price
	}
	if req.Unit != nil {
		setValues = append(setValues, "unit = :unit")
		params["unit"] = *req.Unit
	}
	if req.ImgUrl != nil {
		setValues = append(setValues, "img_url = :img_url")
		params["img_url"] = *req.ImgUrl
	}
	if req.InStock != nil {
		setValues = append(setValues, "in_stock = :in_stock")
		params["in_stock"] = *req.InStock
	}

	if len(setValues) == 0 {
		return 0, fmt.Errorf("no fields to update for item with ID %s", req.ID)
	}
	setValues = append(setValues, "updated_at = NOW()")

	query := fmt.Sprintf(`
		UPDATE items
		SET %s
		WHERE id = :id
	`, strings.Join(setValues, ", "))

	query, args := utils.ReplaceQueryParams(query, params)
	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.logger.Error(ctx, "error executing item update", zap.Error(err))
		return 0, fmt.Errorf("error updating item with ID %s: %w", req.ID, err)
	}

	rowsAffected := result.RowsAffected()
	if rowsAffected == 0 {
		r.logger.Warn(ctx, "no item found with the given ID", zap.String("item_id", req.ID))
		return 0, structs.ErrNotFound
	}

	return rowsAffected, nil
}

func (r repo) Delete(ctx context.Context, id string) error {
	r.logger.Info(ctx, "Delete item", zap.String("item_id", id))
	tag, err := r.db.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		r.logger.Error(ctx, "failed to delete item", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return structs.ErrNotFound
	}
	return nil
}
