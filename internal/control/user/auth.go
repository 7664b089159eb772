package user

import (
	"context"
	"errors"
	"time"

	"github.com/AmirH031/SamanKhojo-sub003/internal/structs"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/cache"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/config"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/logger"
	userrepo "github.com/AmirH031/SamanKhojo-sub003/pkg/repository/postgres/user_repo"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/utils"

	"github.com/google/uuid"
	"github.com/spf13/cast"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

const adminCacheTTL = 5 * time.Minute

type (
	Auth interface {
		LoginAdmin(ctx context.Context, req structs.AdminLogin) (structs.AdminAuthResponse, error)
		GetMe(ctx context.Context, token string) (structs.Admin, error)
		CreateAdmin(ctx context.Context, login, password string) error
	}

	Service interface {
		Auth
	}
)

type (
	Params struct {
		fx.In

		Logger   logger.Logger
		Config   config.IConfig
		UserRepo userrepo.Repo
		Cache    cache.ICache
	}

	service struct {
		logger   logger.Logger
		config   config.IConfig
		userRepo userrepo.Repo
		cache    cache.ICache
	}
)

func New(p Params) Service {
	return &service{
		logger:   p.Logger,
		cache:    p.Cache,
		config:   p.Config,
		userRepo: p.UserRepo,
	}
}

func (s service) CreateAdmin(ctx context.Context, login, password string) error {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	return s.userRepo.CreateAdmin(ctx, structs.Admin{
		ID:           uuid.NewString(),
		Login:        login,
		PasswordHash: hash,
	})
}

func (s service) LoginAdmin(ctx context.Context, req structs.AdminLogin) (structs.AdminAuthResponse, error) {
	admin, err := s.userRepo.GetAdminByLogin(ctx, req.Login)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			return structs.AdminAuthResponse{}, structs.ErrBadRequest
		}
		s.logger.Error(ctx, " err on s.userRepo.GetAdminByLogin", zap.Error(err))
		return structs.AdminAuthResponse{}, err
	}

	if !utils.CompareInBcrypt(admin.PasswordHash, req.Password) {
		return structs.AdminAuthResponse{}, structs.ErrBadRequest
	}

	token, err := utils.GenerateAdminJWT(admin.ID)
	if err != nil {
		s.logger.Error(ctx, " err on utils.GenerateAdminJWT", zap.Error(err))
		return structs.AdminAuthResponse{}, err
	}

	return structs.AdminAuthResponse{
		Token: token,
		Admin: admin,
	}, nil
}

func (s service) GetMe(ctx context.Context, token string) (structs.Admin, error) {
	claims, err := utils.ParseJWT(token)
	if err != nil {
		return structs.Admin{}, structs.ErrUnauthorized
	}
	if !cast.ToBool(claims["admin"]) {
		return structs.Admin{}, structs.ErrForbidden
	}
	adminID := cast.ToString(claims["id"])

	var admin structs.Admin
	if err = s.cache.GetObj("admin."+adminID, &admin); err == nil {
		return admin, nil
	}

	admin, err = s.userRepo.GetAdminByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			return structs.Admin{}, structs.ErrUnauthorized
		}
		s.logger.Error(ctx, " err on s.userRepo.GetAdminByID", zap.Error(err))
		return structs.Admin{}, err
	}

	_ = s.cache.Set("admin."+admin.ID, admin, adminCacheTTL)

	return admin, nil
}
