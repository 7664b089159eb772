package userrepo

import (
	"context"
	"errors"

	"github.com/AmirH031/SamanKhojo-sub003/internal/structs"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/db"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/logger"

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
		UpsertUser(ctx context.Context, uid, email string) error
		GetProfile(ctx context.Context, uid string) (structs.Profile, error)
		UpdateProfile(ctx context.Context, uid string, req structs.UpsertProfile) error
		CreateAdmin(ctx context.Context, admin structs.Admin) error
		GetAdminByLogin(ctx context.Context, login string) (structs.Admin, error)
		GetAdminByID(ctx context.Context, id string) (structs.Admin, error)
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

// UpsertUser records a first sign-in; repeated sign-ins only refresh the
// email in case the Google account changed it.
func (r repo) UpsertUser(ctx context.Context, uid, email string) error {
	r.logger.Info(ctx, "Upsert user", zap.String("uid", uid))
	query := `
		INSERT INTO users (uid, email)
		VALUES ($1, $2)
		ON CONFLICT (uid) DO UPDATE SET email = EXCLUDED.email, updated_at = NOW()
	`
	_, err := r.db.Exec(ctx, query, uid, email)
	if err != nil {
		r.logger.Error(ctx, "failed to upsert user", zap.Error(err))
		return err
	}
	return nil
}

func (r repo) GetProfile(ctx context.Context, uid string) (structs.Profile, error) {
	var profile structs.Profile
	query := `
		SELECT uid, name, phone_number, email, language, created_at, updated_at
		FROM users
		WHERE uid = $1
	`
	err := r.db.QueryRow(ctx, query, uid).Scan(
		&profile.UID,
		&profile.Name,
		&profile.PhoneNumber,
		&profile.Email,
		&profile.Language,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile, structs.ErrNotFound
		}
		r.logger.Error(ctx, "failed to get profile", zap.Error(err))
		return profile, err
	}
	return profile, nil
}

func (r repo) UpdateProfile(ctx context.Context, uid string, req structs.UpsertProfile) error {
	r.logger.Info(ctx, "Update profile", zap.String("uid", uid))
	query := `
		UPDATE users
		SET name = $2, phone_number = $3, language = $4, updated_at = NOW()
		WHERE uid = $1
	`
	tag, err := r.db.Exec(ctx, query, uid, req.Name, req.PhoneNumber, req.Language)
	if err != nil {
		r.logger.Error(ctx, "failed to update profile", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return structs.ErrNotFound
	}
	return nil
}

func (r repo) CreateAdmin(ctx context.Context, admin structs.Admin) error {
	r.logger.Info(ctx, "Create admin", zap.String("login", admin.Login))
	query := `
		INSERT INTO admins (id, login, password_hash)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(ctx, query, admin.ID, admin.Login, admin.PasswordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return structs.ErrUniqueViolation
		}
		r.logger.Error(ctx, "failed to create admin", zap.Error(err))
		return err
	}
	return nil
}

func (r repo) GetAdminByLogin(ctx context.Context, login string) (structs.Admin, error) {
	var admin structs.Admin
	query := `SELECT id, login, password_hash, created_at FROM admins WHERE login = $1`
	err := r.db.QueryRow(ctx, query, login).Scan(
		&admin.ID,
		&admin.Login,
		&admin.PasswordHash,
		&admin.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return admin, structs.ErrNotFound
		}
		r.logger.Error(ctx, "failed to get admin by login", zap.Error(err))
		return admin, err
	}
	return admin, nil
}

func (r repo) GetAdminByID(ctx context.Context, id string) (structs.Admin, error) {
	var admin structs.Admin
	query := `SELECT id, login, password_hash, created_at FROM admins WHERE id = $1`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&admin.ID,
		&admin.Login,
		&admin.PasswordHash,
		&admin.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return admin, structs.ErrNotFound
		}
		r.logger.Error(ctx, "failed to get admin by id", zap.Error(err))
		return admin, err
	}
	return admin, nil
}
