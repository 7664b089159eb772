package shop

import (
	"context"
	"errors"

	"github.com/AmirH031/SamanKhojo-sub003/internal/structs"
	"github.com/AmirH031/SamanKhojo-sub003/internal/wamsg"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/logger"
	shoprepo "github.com/AmirH031/SamanKhojo-sub003/pkg/repository/postgres/shop_repo"

	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

type (
	Params struct {
		fx.In
		ShopRepo shoprepo.Repo
		Logger   logger.Logger
	}

	Service interface {
		Create(ctx context.Context, req structs.CreateShop) (string, error)
		GetByID(ctx context.Context, id string) (structs.Shop, error)
		GetList(ctx context.Context, req structs.GetListShopRequest) (structs.GetListShopResponse, error)
		Patch(ctx context.Context, req structs.PatchShop) (int64, error)
		Delete(ctx context.Context, id string) error
		ContactQR(ctx context.Context, id string) ([]byte, error)
	}

	service struct {
		shopRepo shoprepo.Repo
		logger   logger.Logger
	}
)

func New(p Params) Service {
	return &service{
		shopRepo: p.ShopRepo,
		logger:   p.Logger,
	}
}

func (s *service) Create(ctx context.Context, req structs.CreateShop) (string, error) {
	id, err := s.shopRepo.Create(ctx, req)
	if err != nil {
		if errors.Is(err, structs.ErrUniqueViolation) {
			return "", err
		}
		s.logger.Error(ctx, "->shopRepo.Create", zap.Error(err))
		return "", err
	}
	return id, nil
}

func (s *service) GetByID(ctx context.Context, id string) (structs.Shop, error) {
	shop, err := s.shopRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			return shop, err
		}
		s.logger.Error(ctx, "->shopRepo.GetByID", zap.Error(err))
		return shop, err
	}
	return shop, nil
}

func (s *service) GetList(ctx context.Context, req structs.GetListShopRequest) (structs.GetListShopResponse, error) {
	resp, err := s.shopRepo.GetList(ctx, req)
	if err != nil {
		s.logger.Error(ctx, "->shopRepo.GetList", zap.Error(err))
		return resp, err
	}
	return resp, nil
}

func (s *service) Patch(ctx context.Context, req structs.PatchShop) (int64, error) {
	updatedRows, err := s.shopRepo.Patch(ctx, req)
	if err != nil {
		s.logger.Warn(ctx, "->shopRepo.Patch", zap.Error(err))
		return 0, err
	}
	return updatedRows, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.shopRepo.Delete(ctx, id); err != nil {
		s.logger.Error(ctx, "->shopRepo.Delete", zap.Error(err))
		return err
	}
	return nil
}

// ContactQR renders a printable QR of the shop's wa.me link so shops can
// put a direct-chat code on their counter.
func (s *service) ContactQR(ctx context.Context, id string) ([]byte, error) {
	shop, err := s.shopRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	phone := shop.Whatsapp
	if phone == "" {
		phone = shop.Phone
	}

	link := wamsg.BuildLink(phone, "Namaste! I found "+shop.Name+" on SamanKhojo.")
	if link == "" {
		return nil, structs.ErrNotFound
	}

	png, err := qrcode.Encode(link, qrcode.Medium, 512)
	if err != nil {
		s.logger.Error(ctx, "failed to encode contact qr", zap.Error(err))
		return nil, err
	}
	return png, nil
}
