package profile

import (
	"context"
	"errors"

	"github.com/AmirH031/SamanKhojo-sub003/internal/structs"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/config"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/logger"
	userrepo "github.com/AmirH031/SamanKhojo-sub003/pkg/repository/postgres/user_repo"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/utils"

	"github.com/spf13/cast"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"google.golang.org/api/idtoken"
)

var (
	Module = fx.Provide(New)
)

type (
	Params struct {
		fx.In
		Config   config.IConfig
		UserRepo userrepo.Repo
		Logger   logger.Logger
	}

	Service interface {
		GoogleSignIn(ctx context.Context, req structs.GoogleSignIn) (structs.SessionResponse, error)
		GetProfile(ctx context.Context, uid string) (structs.Profile, error)
		UpsertProfile(ctx context.Context, uid string, req structs.UpsertProfile) (structs.Profile, error)
	}

	service struct {
		cfg      config.IConfig
		userRepo userrepo.Repo
		logger   logger.Logger
	}
)

func New(p Params) Service {
	return &service{
		cfg:      p.Config,
		userRepo: p.UserRepo,
		logger:   p.Logger,
	}
}

// GoogleSignIn validates a Google ID token, upserts the user row keyed by the
// token subject and issues a session JWT for subsequent requests.
func (s *service) GoogleSignIn(ctx context.Context, req structs.GoogleSignIn) (structs.SessionResponse, error) {
	if req.IDToken == "" {
		return structs.SessionResponse{}, structs.ErrBadRequest
	}

	payload, err := idtoken.Validate(ctx, req.IDToken, s.cfg.GetString("google.client_id"))
	if err != nil {
		s.logger.Warn(ctx, "->idtoken.Validate", zap.Error(err))
		return structs.SessionResponse{}, structs.ErrUnauthorized
	}

	uid := payload.Subject
	email := cast.ToString(payload.Claims["email"])

	if err = s.userRepo.UpsertUser(ctx, uid, email); err != nil {
		s.logger.Error(ctx, "->userRepo.UpsertUser", zap.Error(err))
		return structs.SessionResponse{}, err
	}

	token, err := utils.GenerateSessionJWT(uid)
	if err != nil {
		s.logger.Error(ctx, "->utils.GenerateSessionJWT", zap.Error(err))
		return structs.SessionResponse{}, err
	}

	profile, err := s.userRepo.GetProfile(ctx, uid)
	if err != nil {
		s.logger.Error(ctx, "->userRepo.GetProfile", zap.Error(err))
		return structs.SessionResponse{}, err
	}

	return structs.SessionResponse{
		Token:   token,
		Profile: profile,
	}, nil
}

func (s *service) GetProfile(ctx context.Context, uid string) (structs.Profile, error) {
	profile, err := s.userRepo.GetProfile(ctx, uid)
	if err != nil {
		if !errors.Is(err, structs.ErrNotFound) {
			s.logger.Error(ctx, "->userRepo.GetProfile", zap.Error(err))
		}
		return profile, err
	}
	return profile, nil
}

func (s *service) UpsertProfile(ctx context.Context, uid string, req structs.UpsertProfile) (structs.Profile, error) {
	if err := s.userRepo.UpdateProfile(ctx, uid, req); err != nil {
		s.logger.Error(ctx, "->userRepo.UpdateProfile", zap.Error(err))
		return structs.Profile{}, err
	}

	profile, err := s.userRepo.GetProfile(ctx, uid)
	if err != nil {
		s.logger.Error(ctx, "->userRepo.GetProfile", zap.Error(err))
		return profile, err
	}
	return profile, nil
}
