package store

import (
	"context"
	"fmt"

	"piper-tts/config"
	"piper-tts/pkg/log"

	"github.com/google/wire"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var ProviderSet = wire.NewSet(NewMinioStore)

// Minio wraps the archive bucket client. Client is nil when archiving is
// disabled.
type Minio struct {
	Client *minio.Client
	Bucket string
}

func (m *Minio) Enabled() bool {
	return m != nil && m.Client != nil
}

func NewMinioStore(c *config.Config, l *log.Logger) (*Minio, error) {
	if !c.Oss.Enabled {
		return &Minio{}, nil
	}
	l = l.WithModule("Minio")

	client, err := minio.New(c.Oss.EndPoint, &minio.Options{
		Creds:  credentials.NewStaticV4(c.Oss.AccessKey, c.Oss.SecretKey, ""),
		Secure: c.Oss.UseSSL,
		Region: c.Oss.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx := context.Background()
	bucketName := c.Oss.BucketName
	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", bucketName, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to make bucket %s: %w", bucketName, err)
		}
		l.Info("bucket created", log.String("bucket", bucketName))
	}

	return &Minio{Client: client, Bucket: bucketName}, nil
}
