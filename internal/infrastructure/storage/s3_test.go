package storage

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *ClipStore {
	client := s3.New(s3.Options{
		Region:       "us-east-1",
		BaseEndpoint: aws.String("http://localhost:9000"),
		UsePathStyle: true,
		Credentials:  aws.AnonymousCredentials{},
	})
	return NewClipStoreWithClient(client, S3Config{Bucket: "alerts", Expiry: 5 * time.Minute})
}

func TestClipStore_PresignGet(t *testing.T) {
	store := newTestStore()

	raw, err := store.PresignGet(context.Background(), "alerts/RPI-001/2026-03-14T15-00-00.wav")
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", u.Host)
	assert.Equal(t, "/alerts/RPI-001/2026-03-14T15-00-00.wav", u.Path)
}

func TestClipStore_PresignGet_EmptyKey(t *testing.T) {
	store := newTestStore()

	_, err := store.PresignGet(context.Background(), "alerts/")
	assert.Error(t, err)
}
