package usecase

import (
	"bytes"
	"context"
	"path"
	"time"

	"piper-tts/config"
	"piper-tts/domain"
	"piper-tts/pkg/log"
	"piper-tts/pkg/store"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// FileUsecase archives finished audio to object storage when enabled.
type FileUsecase struct {
	l      *log.Logger
	config *config.Config
	minio  *store.Minio
	now    func() time.Time
}

func NewFileUsecase(l *log.Logger, c *config.Config, minio *store.Minio) *FileUsecase {
	return &FileUsecase{
		l:      l.WithModule("FileUsecase"),
		config: c,
		minio:  minio,
		now:    time.Now,
	}
}

func (u *FileUsecase) Enabled() bool {
	return u.minio.Enabled()
}

// ObjectKey lays archived files out as <prefix>/<yyyy>/<mm>/<dd>/<uuid>.<format>.
func (u *FileUsecase) ObjectKey(format domain.Format) string {
	return path.Join(
		u.config.Oss.Prefix,
		u.now().UTC().Format("2006/01/02"),
		uuid.NewString()+"."+string(format),
	)
}

// Archive uploads the result and returns its object key. It returns "" and no
// error when archiving is disabled.
func (u *FileUsecase) Archive(ctx context.Context, result *domain.SynthesisResult) (string, error) {
	if !u.Enabled() {
		return "", nil
	}
	key := u.ObjectKey(result.Format)
	info, err := u.minio.Client.PutObject(ctx, u.minio.Bucket, key,
		bytes.NewReader(result.Audio), int64(len(result.Audio)),
		minio.PutObjectOptions{ContentType: result.ContentType()})
	if err != nil {
		u.l.Error("upload file failed", log.String("key", key), log.Error(err))
		return "", err
	}
	u.l.Info("audio archived", log.String("bucket", info.Bucket), log.String("key", info.Key), log.Int64("size", info.Size))
	return info.Key, nil
}
