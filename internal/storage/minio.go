package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"lostfound-api/pkg/utils"
)

// MinioStore stores images in an S3-compatible bucket and serves them via a
// public base URL.
type MinioStore struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

type MinioOpts struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	UseSSL        bool
	PublicBaseURL string
}

func NewMinioStore(o MinioOpts) (*MinioStore, error) {
	if strings.TrimSpace(o.Endpoint) == "" {
		return nil, errors.New("storage endpoint is required")
	}
	if strings.TrimSpace(o.AccessKey) == "" || strings.TrimSpace(o.SecretKey) == "" {
		return nil, errors.New("storage access key and secret key are required")
	}
	if strings.TrimSpace(o.Bucket) == "" {
		return nil, errors.New("storage bucket is required")
	}

	client, err := minio.New(o.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(o.AccessKey, o.SecretKey, ""),
		Secure: o.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	base := o.PublicBaseURL
	if base == "" {
		scheme := "http://"
		if o.UseSSL {
			scheme = "https://"
		}
		base = scheme + o.Endpoint
	}
	return &MinioStore{client: client, bucket: o.Bucket, publicBaseURL: strings.TrimRight(base, "/")}, nil
}

// EnsureBucket creates the bucket when missing; called once at startup.
func (m *MinioStore) EnsureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{})
}

func (m *MinioStore) UploadImage(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error) {
	key := ObjectKey(name)
	_, err := m.client.PutObject(ctx, m.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return m.publicBaseURL + "/" + m.bucket + "/" + key, nil
}

// ObjectKey prefixes the sanitized file name with a fresh id so uploads never
// collide.
func ObjectKey(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, base)
	if base == "" || base == "." {
		base = "image"
	}
	return utils.NewID() + "-" + base
}
