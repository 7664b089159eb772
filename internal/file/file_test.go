package file

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/AmirH031/SamanKhojo-sub003/pkg/config"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/logger"
)

type fakeConfig struct {
	config.IConfig
	values map[string]string
}

func (f fakeConfig) GetString(key string) string { return f.values[key] }

type fakeFileManager struct {
	uploadedKey string
	removedKey  string
}

func (f *fakeFileManager) Upload(ctx context.Context, src io.Reader, key string) error {
	f.uploadedKey = key
	return nil
}

func (f *fakeFileManager) Download(ctx context.Context, key string) (io.Reader, error) {
	return bytes.NewReader(nil), nil
}

func (f *fakeFileManager) Remove(ctx context.Context, key string) error {
	f.removedKey = key
	return nil
}

func newTestService(fm *fakeFileManager) Service {
	return New(Params{
		Config: fakeConfig{values: map[string]string{
			"aws_s3_public_url": "https://cdn.example.com/",
		}},
		FileManager: fm,
		Logger:      logger.New("error"),
	})
}

func TestUploadKeyMatchesURL(t *testing.T) {
	fm := &fakeFileManager{}
	svc := newTestService(fm)

	uploaded, err := svc.Upload(context.Background(), "shops", "Photo.PNG", strings.NewReader("img"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if fm.uploadedKey != "shops/"+uploaded.Filename {
		t.Errorf("object key %q does not match returned filename %q", fm.uploadedKey, uploaded.Filename)
	}
	if want := "https://cdn.example.com/" + fm.uploadedKey; uploaded.URL != want {
		t.Errorf("URL = %q, want %q", uploaded.URL, want)
	}
	if !strings.HasSuffix(uploaded.Filename, ".png") {
		t.Errorf("filename %q must keep the lowered extension", uploaded.Filename)
	}
}

func TestRemoveUsesSameKeyLayout(t *testing.T) {
	fm := &fakeFileManager{}
	svc := newTestService(fm)

	if err := svc.Remove(context.Background(), "items", "abc.png"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if fm.removedKey != "items/abc.png" {
		t.Errorf("removed key = %q, want items/abc.png", fm.removedKey)
	}
}
