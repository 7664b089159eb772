package shoprepo

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
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
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
		Create(ctx context.Context, req structs.CreateShop) (string, error)
		GetByID(ctx context.Context, id string) (structs.Shop, error)
		GetList(ctx context.Context, req structs.GetListShopRequest) (structs.GetListShopResponse, error)
		Patch(ctx context.Context, req structs.PatchShop) (int64, error)
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

func (r repo) Create(ctx context.Context, req structs.CreateShop) (string, error) {
	r.logger.Info(ctx, "Create shop", zap.Any("req", req))

	id := uuid.NewString()
	query := `
		INSERT INTO shops (id, name, category, address, phone, whatsapp, description, img_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query,
		id,
		req.Name,
		req.Category,
		req.Address,
		req.Phone,
		req.Whatsapp,
		req.Description,
		req.ImgUrl,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return "", structs.ErrUniqueViolation
		}
		r.logger.Error(ctx, "failed to create shop", zap.Error(err))
		return "", err
	}
	return id, nil
}

func (r repo) GetByID(ctx context.Context, id string) (structs.Shop, error) {
	var shop structs.Shop
	query := `
		SELECT id, name, category, address, phone, whatsapp, description, img_url, is_active, created_at, updated_at
		FROM shops
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&shop.ID,
		&shop.Name,
		&shop.Category,
		&shop.Address,
		&shop.Phone,
		&shop.Whatsapp,
		&shop.Description,
		&shop.ImgUrl,
		&shop.IsActive,
		&shop.CreatedAt,
		&shop.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shop, structs.ErrNotFound
		}
		r.logger.Error(ctx, "failed to get shop by id", zap.Error(err))
		return shop, err
	}
	return shop, nil
}

func (r repo) GetList(ctx context.Context, req structs.GetListShopRequest) (structs.GetListShopResponse, error) {
	var res structs.GetListShopResponse

	limit := req.Limit
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT
			COUNT(*) OVER () AS total,
			id, name, category, address, phone, whatsapp, description, img_url, is_active, created_at, updated_at
		FROM shops
		WHERE is_active = TRUE
			AND ($1 = '' OR category = $1)
			AND ($2 = '' OR name ILIKE '%' || $2 || '%' OR address ILIKE '%' || $2 || '%')
		ORDER BY name ASC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.Query(ctx, query, req.Category, req.Search, limit, req.Offset)
	if err != nil {
		r.logger.Error(ctx, "failed to list shops", zap.Error(err))
		return res, err
	}
	defer rows.Close()

	for rows.Next() {
		var shop structs.Shop
		if err := rows.Scan(
			&res.Count,
			&shop.ID,
			&shop.Name,
			&shop.Category,
			&shop.Address,
			&shop.Phone,
			&shop.Whatsapp,
			&shop.Description,
			&shop.ImgUrl,
			&shop.IsActive,
			&shop.CreatedAt,
			&shop.UpdatedAt,
		); err != nil {
			r.logger.Error(ctx, "failed to scan shop row", zap.Error(err))
			return res, err
		}
		res.Shops = append(res.Shops, shop)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error(ctx, "rows error after iteration", zap.Error(err))
		return res, err
	}
	return res, nil
}

func (r repo) Patch(ctx context.Context, req structs.PatchShop) (int64, error) {
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
	if req.Address != nil {
		setValues = append(setValues, "address = :address")
		params["address"] = *req.Address
	}
	if req.Phone != nil {
		setValues = append(setValues, "phone = :phone")
		params["phone"] = *req.Phone
	}
	if req.Whatsapp != nil {
		setValues = append(setValues, "whatsapp = :whatsapp")
		params["whatsapp"] = *req.Whatsapp
	}
	if req.Description != nil {
		setValues = append(setValues, "description = :description")
		params["description"] = *req.Description
	}
	if req.ImgUrl != nil {
		setValues = append(setValues, "img_url = :img_url")
		params["img_url"] = *req.ImgUrl
	}
	if req.IsActive != nil {
		setValues = append(setValues, "is_active = :is_active")
		params["is_active"] = *req.IsActive
	}

	if len(setValues) == 0 {
		return 0, fmt.Errorf("no fields to update for shop with ID %s", req.ID)
	}
	setValues = append(setValues, "updated_at = NOW()")

	query := fmt.Sprintf(`
		UPDATE shops
		SET %s
		WHERE id = :id
	`, strings.Join(setValues, ", "))

	query, args := utils.ReplaceQueryParams(query, params)
	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.logger.Error(ctx, "error executing shop update", zap.Error(err))
		return 0, fmt.Errorf("error updating shop with ID %s: %w", req.ID, err)
	}

	rowsAffected := result.RowsAffected()
	if rowsAffected == 0 {
		r.logger.Warn(ctx, "no shop found with the given ID", zap.String("shop_id", req.ID))
		return 0, structs.ErrNotFound
	}

	return rowsAffected, nil
}

func (r repo) Delete(ctx context.Context, id string) error {
	r.logger.Info(ctx, "Delete shop", zap.String("shop_id", id))
	tag, err := r.db.Exec(ctx, `DELETE FROM shops WHERE id = $1`, id)
	if err != nil {
		r.logger.Error(ctx, "failed to delete shop", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return structs.ErrNotFound
	}
	return nil
}
