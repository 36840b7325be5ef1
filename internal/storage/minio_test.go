package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	key := ObjectKey("wallet.jpg")
	assert.True(t, strings.HasSuffix(key, "-wallet.jpg"))
	assert.Len(t, key, 32+1+len("wallet.jpg"))

	assert.NotEqual(t, ObjectKey("wallet.jpg"), ObjectKey("wallet.jpg"))

	// path components and odd characters are stripped
	assert.True(t, strings.HasSuffix(ObjectKey("../../etc/passwd"), "-passwd"))
	assert.True(t, strings.HasSuffix(ObjectKey(`C:\Users\me\my photo!.png`), "-my-photo-.png"))
	assert.True(t, strings.HasSuffix(ObjectKey(""), "-image"))
}

func TestNewMinioStoreValidation(t *testing.T) {
	_, err := NewMinioStore(MinioOpts{AccessKey: "a", SecretKey: "s", Bucket: "b"})
	assert.Error(t, err)

	_, err = NewMinioStore(MinioOpts{Endpoint: "minio:9000", Bucket: "b"})
	assert.Error(t, err)

	_, err = NewMinioStore(MinioOpts{Endpoint: "minio:9000", AccessKey: "a", SecretKey: "s"})
	assert.Error(t, err)

	m, err := NewMinioStore(MinioOpts{
		Endpoint:  "minio:9000",
		AccessKey: "a",
		SecretKey: "s",
		Bucket:    "images",
	})
	require.NoError(t, err)
	assert.Equal(t, "http://minio:9000", m.publicBaseURL)

	m, err = NewMinioStore(MinioOpts{
		Endpoint:      "minio:9000",
		AccessKey:     "a",
		SecretKey:     "s",
		Bucket:        "images",
		PublicBaseURL: "https://cdn.example.com/",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com", m.publicBaseURL)
}
