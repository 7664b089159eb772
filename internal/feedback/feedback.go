package feedback

import (
	"context"

	"github.com/AmirH031/SamanKhojo-sub003/internal/structs"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/logger"
	feedbackrepo "github.com/AmirH031/SamanKhojo-sub003/pkg/repository/postgres/feedback_repo"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

type (
	Params struct {
		fx.In
		FeedbackRepo feedbackrepo.Repo
		Logger       logger.Logger
	}

	Service interface {
		Create(ctx context.Context, uid string, req structs.CreateFeedback) (string, error)
		GetList(ctx context.Context, req structs.GetListFeedbackRequest) (structs.GetListFeedbackResponse, error)
		Delete(ctx context.Context, id string) error
	}

	service struct {
		feedbackRepo feedbackrepo.Repo
		logger       logger.Logger
	}
)

func New(p Params) Service {
	return &service{
		feedbackRepo: p.FeedbackRepo,
		logger:       p.Logger,
	}
}

func (s *service) Create(ctx context.Context, uid string, req structs.CreateFeedback) (string, error) {
	id, err := s.feedbackRepo.Create(ctx, uid, req)
	if err != nil {
		s.logger.Error(ctx, "->feedbackRepo.Create", zap.Error(err))
		return "", err
	}
	return id, nil
}

func (s *service) GetList(ctx context.Context, req structs.GetListFeedbackRequest) (structs.GetListFeedbackResponse, error) {
	resp, err := s.feedbackRepo.GetList(ctx, req)
	if err != nil {
		s.logger.Error(ctx, "->feedbackRepo.GetList", zap.Error(err))
		return resp, err
	}
	return resp, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.feedbackRepo.Delete(ctx, id); err != nil {
		s.logger.Error(ctx, "->feedbackRepo.Delete", zap.Error(err))
		return err
	}
	return nil
}
