package bag

import (
	"context"
	"errors"
	"time"

	"github.com/AmirH031/SamanKhojo-sub003/internal/structs"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/config"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/logger"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/redis"
	bagrepo "github.com/AmirH031/SamanKhojo-sub003/pkg/repository/postgres/bag_repo"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/utils"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

const cacheKeyPrefix = "bag."

type (
	Params struct {
		fx.In
		BagRepo bagrepo.Repo
		Redis   redis.Client `optional:"true"`
		Config  config.IConfig
		Logger  logger.Logger
	}

	Service interface {
		Add(ctx context.Context, uid string, req structs.AddToBag) error
		Get(ctx context.Context, uid string) (structs.BagData, error)
		UpdateQuantity(ctx context.Context, uid, itemID string, quantity int64) error
		Remove(ctx context.Context, uid, itemID string) error
		Clear(ctx context.Context, uid string) error
		Count(ctx context.Context, uid string) (int64, error)
		Invalidate(ctx context.Context, uid string)
	}

	service struct {
		bagRepo  bagrepo.Repo
		redis    redis.Client
		logger   logger.Logger
		cacheTTL time.Duration
	}
)

func New(p Params) Service {
	ttl := p.Config.GetDuration("bag.cache_ttl")
	if ttl == 0 {
		ttl = 30 * time.Second
	}
	return &service{
		bagRepo:  p.BagRepo,
		redis:    p.Redis,
		logger:   p.Logger,
		cacheTTL: ttl,
	}
}

func (s *service) Add(ctx context.Context, uid string, req structs.AddToBag) error {
	if req.Quantity <= 0 {
		req.Quantity = 1
	}
	if req.Unit == "" {
		req.Unit = structs.DefaultUnit
	}
	if req.LineKey == "" {
		req.LineKey = utils.GenKSUID()
	}

	if err := s.bagRepo.Upsert(ctx, uid, req); err != nil {
		s.logger.Error(ctx, "->bagRepo.Upsert", zap.Error(err))
		return err
	}
	s.Invalidate(ctx, uid)
	return nil
}

func (s *service) Get(ctx context.Context, uid string) (structs.BagData, error) {
	if s.redis != nil {
		var cached structs.BagData
		if err := s.redis.FindObj(ctx, cacheKeyPrefix+uid, &cached); err == nil {
			return cached, nil
		}
	}

	items, err := s.bagRepo.GetByUID(ctx, uid)
	if err != nil {
		s.logger.Error(ctx, "->bagRepo.GetByUID", zap.Error(err))
		return structs.EmptyBagData(), err
	}

	data := structs.BuildBagData(items)

	if s.redis != nil {
		if err := s.redis.SaveObj(ctx, cacheKeyPrefix+uid, data, s.cacheTTL); err != nil {
			s.logger.Warn(ctx, "failed to cache bag snapshot", zap.Error(err))
		}
	}
	return data, nil
}

func (s *service) UpdateQuantity(ctx context.Context, uid, itemID string, quantity int64) error {
	_, err := s.bagRepo.UpdateQuantity(ctx, uid, itemID, quantity)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			return err
		}
		s.logger.Error(ctx, "->bagRepo.UpdateQuantity", zap.Error(err))
		return err
	}
	s.Invalidate(ctx, uid)
	return nil
}

func (s *service) Remove(ctx context.Context, uid, itemID string) error {
	if err := s.bagRepo.Remove(ctx, uid, itemID); err != nil {
		s.logger.Error(ctx, "->bagRepo.Remove", zap.Error(err))
		return err
	}
	s.Invalidate(ctx, uid)
	return nil
}

func (s *service) Clear(ctx context.Context, uid string) error {
	if err := s.bagRepo.Clear(ctx, uid); err != nil {
		s.logger.Error(ctx, "->bagRepo.Clear", zap.Error(err))
		return err
	}
	s.Invalidate(ctx, uid)
	return nil
}

func (s *service) Count(ctx context.Context, uid string) (int64, error) {
	total, err := s.bagRepo.Count(ctx, uid)
	if err != nil {
		s.logger.Error(ctx, "->bagRepo.Count", zap.Error(err))
		return 0, err
	}
	return total, nil
}

// Invalidate drops the cached snapshot; the next Get rebuilds it from
// the database.
func (s *service) Invalidate(ctx context.Context, uid string) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Delete(ctx, cacheKeyPrefix+uid); err != nil {
		s.logger.Warn(ctx, "failed to invalidate bag cache", zap.Error(err))
	}
}
