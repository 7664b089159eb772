package filemanager

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"go.uber.org/fx"

	"github.com/AmirH031/SamanKhojo-sub003/pkg/config"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/logger"
)

var Module = fx.Provide(New)

// File stores shop and item images in S3. Callers pass the full object
// key so the stored key and any public URL built from it always agree.
type File interface {
	Download(ctx context.Context, key string) (io.Reader, error)
	Upload(ctx context.Context, uploadFile io.Reader, key string) error
	Remove(ctx context.Context, key string) error
}

type Params struct {
	fx.In

	Logger logger.Logger
	Config config.IConfig
}

type file struct {
	logger logger.Logger
	config config.IConfig

	awsS3ManagerDownloader *s3manager.Downloader
	awsS3ManagerUploader   *s3manager.Uploader
	awsS3                  *s3.S3
	bucket                 string
}

func New(p Params) File {
	f := &file{
		logger: p.Logger,
		config: p.Config,
		bucket: p.Config.GetString("aws_s3_bucket"),
	}

	crd := credentials.NewStaticCredentials(
		f.config.GetString("aws_access_key_id"),
		f.config.GetString("aws_secret_access_key"),
		"",
	)
	region := aws.String(f.config.GetString("aws_region"))

	sess := session.Must(session.NewSessionWithOptions(session.Options{
		Config: aws.Config{Region: region, Credentials: crd},
	}))
	f.awsS3ManagerUploader = s3manager.NewUploader(sess)
	f.awsS3ManagerDownloader = s3manager.NewDownloader(sess)
	f.awsS3 = s3.New(sess)

	return f
}

func (f *file) Download(ctx context.Context, key string) (io.Reader, error) {
	buf := aws.NewWriteAtBuffer([]byte{})

	_, err := f.awsS3ManagerDownloader.DownloadWithContext(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 download: %w", err)
	}

	return bytes.NewReader(buf.Bytes()), nil
}

func (f *file) Upload(ctx context.Context, uploadFile io.Reader, key string) error {
	_, err := f.awsS3ManagerUploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(key),
		Body:   uploadFile,
	})
	if err != nil {
		return fmt.Errorf("s3 upload: %w", err)
	}

	return nil
}

func (f *file) Remove(ctx context.Context, key string) error {
	_, err := f.awsS3.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 delete object: %w", err)
	}

	return nil
}
