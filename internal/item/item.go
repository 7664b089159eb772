package item

import (
	"context"

	"github.com/AmirH031/SamanKhojo-sub003/internal/structs"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/logger"
	itemrepo "github.com/AmirH031/SamanKhojo-sub003/pkg/repository/postgres/item_repo"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

type (
	Params struct {
		fx.In
		ItemRepo itemrepo.Repo
		Logger   logger.Logger
	}

	Service interface {
		Create(ctx context.Context, req structs.CreateItem) (string, error)
		GetByID(ctx context.Context, id string) (structs.Item, error)
		GetList(ctx context.Context, req structs.GetListItemRequest) (structs.GetListItemResponse, error)
		Patch(ctx context.Context, req structs.PatchItem) (int64, error)
		Delete(ctx context.Context, id string) error
	}

	service struct {
		itemRepo itemrepo.Repo
		logger   logger.Logger
	}
)

func New(p Params) Service {
	return &service{
		itemRepo: p.ItemRepo,
		logger:   p.Logger,
	}
}

func (s *service) Create(ctx context.Context, req structs.CreateItem) (string, error) {
	id, err := s.itemRepo.Create(ctx, req)
	if err != nil {
		s.logger.Error(ctx, "->itemRepo.Create", zap.Error(err))
		return "", err
	}
	return id, nil
}

func (s *service) GetByID(ctx context.Context, id string) (structs.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error(ctx, "->itemRepo.GetByID", zap.Error(err))
		return item, err
	}
	return item, nil
}

func (s *service) GetList(ctx context.Context, req structs.GetListItemRequest) (structs.GetListItemResponse, error) {
	resp, err := s.itemRepo.GetList(ctx, req)
	if err != nil {
		s.logger.Error(ctx, "->itemRepo.GetList", zap.Error(err))
		return resp, err
	}
	return resp, nil
}

func (s *service) Patch(ctx context.Context, req structs.PatchItem) (int64, error) {
	updatedRows, err := s.itemRepo.Patch(ctx, req)
	if err != nil {
		s.logger.Warn(ctx, "->itemRepo.Patch", zap.Error(err))
		return 0, err
	}
	return updatedRows, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.itemRepo.Delete(ctx, id); err != nil {
		s.logger.Error(ctx, "->itemRepo.Delete", zap.Error(err))
		return err
	}
	return nil
}
