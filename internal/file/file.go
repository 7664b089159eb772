package file

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/AmirH031/SamanKhojo-sub003/internal/structs"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/config"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/filemanager"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/logger"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/utils"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

type (
	Params struct {
		fx.In
		Config      config.IConfig
		FileManager filemanager.File
		Logger      logger.Logger
	}

	Service interface {
		Upload(ctx context.Context, dir, originalName string, src io.Reader) (structs.UploadedFile, error)
		Download(ctx context.Context, dir, filename string) (io.Reader, error)
		Remove(ctx context.Context, dir, filename string) error
	}

	service struct {
		config      config.IConfig
		fileManager filemanager.File
		logger      logger.Logger
	}
)

func New(p Params) Service {
	return &service{
		config:      p.Config,
		fileManager: p.FileManager,
		logger:      p.Logger,
	}
}

// Upload stores the file under a generated name so repeated uploads of the
// same original name never collide. The S3 key and the returned URL are
// built from the same key string.
func (s *service) Upload(ctx context.Context, dir, originalName string, src io.Reader) (structs.UploadedFile, error) {
	ext := strings.ToLower(path.Ext(originalName))
	filename := utils.GenKSUID() + ext
	key := objectKey(dir, filename)

	if err := s.fileManager.Upload(ctx, src, key); err != nil {
		s.logger.Error(ctx, "->fileManager.Upload", zap.Error(err))
		return structs.UploadedFile{}, err
	}

	return structs.UploadedFile{
		Filename: filename,
		URL:      strings.TrimRight(s.config.GetString("aws_s3_public_url"), "/") + "/" + key,
	}, nil
}

func (s *service) Download(ctx context.Context, dir, filename string) (io.Reader, error) {
	r, err := s.fileManager.Download(ctx, objectKey(dir, filename))
	if err != nil {
		s.logger.Error(ctx, "->fileManager.Download", zap.Error(err))
		return nil, err
	}
	return r, nil
}

func (s *service) Remove(ctx context.Context, dir, filename string) error {
	if err := s.fileManager.Remove(ctx, objectKey(dir, filename)); err != nil {
		s.logger.Error(ctx, "->fileManager.Remove", zap.Error(err))
		return err
	}
	return nil
}

func objectKey(dir, filename string) string {
	return path.Join(dir, filename)
}
