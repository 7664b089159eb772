package bookingrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AmirH031/SamanKhojo-sub003/internal/structs"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/db"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/logger"

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
		CreateAndClearBag(ctx context.Context, booking structs.Booking) error
		GetByID(ctx context.Context, id string) (structs.Booking, error)
		GetList(ctx context.Context, req structs.GetListBookingRequest) (structs.GetListBookingResponse, error)
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

// CreateAndClearBag records the booking snapshot and empties the user's
// bag in one transaction, so a crash can never leave a confirmed booking
// with a still-populated bag.
func (r repo) CreateAndClearBag(ctx context.Context, booking structs.Booking) error {
	r.logger.Info(ctx, "Create booking",
		zap.String("booking_id", booking.ID),
		zap.String("uid", booking.UID),
		zap.Int64("total_shops", booking.TotalShops),
	)

	itemsJSON, err := json.Marshal(booking.Items)
	if err != nil {
		return fmt.Errorf("marshal booking items: %w", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting transaction for booking %s: %w", booking.ID, err)
	}

	query := `
		INSERT INTO bookings (id, uid, user_name, user_phone, total_shops, total_items, items)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = tx.Exec(ctx, query,
		booking.ID,
		booking.UID,
		booking.UserName,
		booking.UserPhone,
		booking.TotalShops,
		booking.TotalItems,
		itemsJSON,
	)
	if err != nil {
		if errRollback := tx.Rollback(ctx); errRollback != nil {
			r.logger.Error(ctx, "error rolling back transaction", zap.Error(errRollback))
		}
		r.logger.Error(ctx, "failed to insert booking", zap.Error(err))
		return err
	}

	if _, err = tx.Exec(ctx, `DELETE FROM bag_items WHERE uid = $1`, booking.UID); err != nil {
		if errRollback := tx.Rollback(ctx); errRollback != nil {
			r.logger.Error(ctx, "error rolling back transaction", zap.Error(errRollback))
		}
		r.logger.Error(ctx, "failed to clear bag on confirm", zap.Error(err))
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error(ctx, "error committing transaction", zap.Error(err))
		return fmt.Errorf("error committing transaction for booking %s: %w", booking.ID, err)
	}

	return nil
}

func (r repo) GetByID(ctx context.Context, id string) (structs.Booking, error) {
	var (
		booking   structs.Booking
		itemsJSON []byte
	)
	query := `
		SELECT id, uid, user_name, user_phone, total_shops, total_items, items, created_at
		FROM bookings
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.UID,
		&booking.UserName,
		&booking.UserPhone,
		&booking.TotalShops,
		&booking.TotalItems,
		&itemsJSON,
		&booking.CreatedAt,
	)
	if err != nil {
		r.logger.Error(ctx, "failed to get booking by id", zap.Error(err))
		return booking, err
	}

	if err := json.Unmarshal(itemsJSON, &booking.Items); err != nil {
		r.logger.Error(ctx, "failed to unmarshal booking items", zap.Error(err))
		return booking, err
	}
	return booking, nil
}

func (r repo) GetList(ctx context.Context, req structs.GetListBookingRequest) (structs.GetListBookingResponse, error) {
	var res structs.GetListBookingResponse

	limit := req.Limit
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT
			COUNT(*) OVER () AS total,
			id, uid, user_name, user_phone, total_shops, total_items, items, created_at
		FROM bookings
		WHERE ($1 = '' OR uid = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, req.UID, limit, req.Offset)
	if err != nil {
		r.logger.Error(ctx, "failed to list bookings", zap.Error(err))
		return res, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			booking   structs.Booking
			itemsJSON []byte
		)
		if err := rows.Scan(
			&res.Count,
			&booking.ID,
			&booking.UID,
			&booking.UserName,
			&booking.UserPhone,
			&booking.TotalShops,
			&booking.TotalItems,
			&itemsJSON,
			&booking.CreatedAt,
		); err != nil {
			r.logger.Error(ctx, "failed to scan booking row", zap.Error(err))
			return res, err
		}
		if err := json.Unmarshal(itemsJSON, &booking.Items); err != nil {
			r.logger.Error(ctx, "failed to unmarshal booking items", zap.Error(err))
			return res, err
		}
		res.Bookings = append(res.Bookings, booking)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error(ctx, "rows error after iteration", zap.Error(err))
		return res, err
	}
	return res, nil
}
