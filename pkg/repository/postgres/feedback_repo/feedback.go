package feedbackrepo

import (
	"context"

	"github.com/AmirH031/SamanKhojo-sub003/internal/structs"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/db"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/logger"

	"github.com/google/uuid"
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
		Create(ctx context.Context, uid string, req structs.CreateFeedback) (string, error)
		GetList(ctx context.Context, req structs.GetListFeedbackRequest) (structs.GetListFeedbackResponse, error)
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

func (r repo) Create(ctx context.Context, uid string, req structs.CreateFeedback) (string, error) {
	r.logger.Info(ctx, "Create feedback", zap.String("uid", uid), zap.Any("req", req))

	id := uuid.NewString()
	query := `
		INSERT INTO feedback (id, uid, shop_id, rating, message)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5)
	`
	_, err := r.db.Exec(ctx, query, id, uid, req.ShopID, req.Rating, req.Message)
	if err != nil {
		r.logger.Error(ctx, "failed to create feedback", zap.Error(err))
		return "", err
	}
	return id, nil
}

func (r repo) GetList(ctx context.Context, req structs.GetListFeedbackRequest) (structs.GetListFeedbackResponse, error) {
	var res structs.GetListFeedbackResponse

	limit := req.Limit
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT
			COUNT(*) OVER () AS total,
			id, uid, COALESCE(shop_id, ''), rating, message, created_at
		FROM feedback
		WHERE ($1 = '' OR shop_id = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, req.ShopID, limit, req.Offset)
	if err != nil {
		r.logger.Error(ctx, "failed to list feedback", zap.Error(err))
		return res, err
	}
	defer rows.Close()

	for rows.Next() {
		var fb structs.Feedback
		if err := rows.Scan(
			&res.Count,
			&fb.ID,
			&fb.UID,
			&fb.ShopID,
			&fb.Rating,
			&fb.Message,
			&fb.CreatedAt,
		); err != nil {
			r.logger.Error(ctx, "failed to scan feedback row", zap.Error(err))
			return res, err
		}
		res.Feedbacks = append(res.Feedbacks, fb)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error(ctx, "rows error after iteration", zap.Error(err))
		return res, err
	}
	return res, nil
}

func (r repo) Delete(ctx context.Context, id string) error {
	r.logger.Info(ctx, "Delete feedback", zap.String("feedback_id", id))
	tag, err := r.db.Exec(ctx, `DELETE FROM feedback WHERE id = $1`, id)
	if err != nil {
		r.logger.Error(ctx, "failed to delete feedback", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return structs.ErrNotFound
	}
	return nil
}
