package s3_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trellisdev/trellis/core/static"
	s3store "github.com/trellisdev/trellis/integration/storage/s3"
)

type mockClient struct {
	objects map[string][]byte
	lastKey string
}

func (m *mockClient) GetObject(_ context.Context, params *s3aws.GetObjectInput, _ ...func(*s3aws.Options)) (*s3aws.GetObjectOutput, error) {
	m.lastKey = aws.ToString(params.Key)
	data, ok := m.objects[m.lastKey]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3aws.GetObjectOutput{
		Body:          io.NopCloser(bytes.NewReader(data)),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String("text/plain"),
	}, nil
}

func newStore(t *testing.T, client s3store.Client, cfg s3store.Config) *s3store.Store {
	t.Helper()
	store, err := s3store.New(context.Background(), cfg, s3store.WithClient(client))
	require.NoError(t, err)
	return store
}

func TestNewRequiresBucketAndRegion(t *testing.T) {
	t.Parallel()

	_, err := s3store.New(context.Background(), s3store.Config{Region: "us-east-1"})
	assert.ErrorIs(t, err, s3store.ErrInvalidConfig)

	_, err = s3store.New(context.Background(), s3store.Config{Bucket: "assets"})
	assert.ErrorIs(t, err, s3store.ErrInvalidConfig)
}

func TestOpenReturnsObject(t *testing.T) {
	t.Parallel()

	client := &mockClient{objects: map[string][]byte{"css/app.css": []byte("body{}")}}
	store := newStore(t, client, s3store.Config{Bucket: "assets", Region: "us-east-1"})

	obj, err := store.Open(context.Background(), "css/app.css")
	require.NoError(t, err)
	t.Cleanup(func() { _ = obj.Body.Close() })

	assert.Equal(t, "css/app.css", obj.Key)
	assert.Equal(t, int64(6), obj.Size)
	assert.Equal(t, "text/plain", obj.ContentType)

	data, err := io.ReadAll(obj.Body)
	require.NoError(t, err)
	assert.Equal(t, []byte("body{}"), data)
}

func TestOpenMissingKeyMapsToNotFound(t *testing.T) {
	t.Parallel()

	client := &mockClient{objects: map[string][]byte{}}
	store := newStore(t, client, s3store.Config{Bucket: "assets", Region: "us-east-1"})

	_, err := store.Open(context.Background(), "missing.js")
	assert.ErrorIs(t, err, static.ErrNotFound)
}

func TestOpenRejectsTraversal(t *testing.T) {
	t.Parallel()

	client := &mockClient{objects: map[string][]byte{}}
	store := newStore(t, client, s3store.Config{Bucket: "assets", Region: "us-east-1"})

	_, err := store.Open(context.Background(), "../private/key.pem")
	assert.ErrorIs(t, err, static.ErrInvalidKey)
	assert.Empty(t, client.lastKey, "no request should reach S3")
}

func TestOpenAppliesKeyPrefix(t *testing.T) {
	t.Parallel()

	client := &mockClient{objects: map[string][]byte{"public/site/index.html": []byte("<html>")}}
	store := newStore(t, client, s3store.Config{
		Bucket:    "assets",
		Region:    "us-east-1",
		KeyPrefix: "/public/site/",
	})

	obj, err := store.Open(context.Background(), "index.html")
	require.NoError(t, err)
	t.Cleanup(func() { _ = obj.Body.Close() })
	assert.Equal(t, "public/site/index.html", client.lastKey)
	assert.Equal(t, "index.html", obj.Key)
}

func TestOpenKeepsUnknownErrors(t *testing.T) {
	t.Parallel()

	failing := clientFunc(func(_ context.Context, _ *s3aws.GetObjectInput, _ ...func(*s3aws.Options)) (*s3aws.GetObjectOutput, error) {
		return nil, errors.New("connection reset")
	})
	store := newStore(t, failing, s3store.Config{Bucket: "assets", Region: "us-east-1"})

	_, err := store.Open(context.Background(), "app.js")
	require.Error(t, err)
	assert.NotErrorIs(t, err, static.ErrNotFound)
}

type clientFunc func(ctx context.Context, params *s3aws.GetObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.GetObjectOutput, error)

func (f clientFunc) GetObject(ctx context.Context, params *s3aws.GetObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.GetObjectOutput, error) {
	return f(ctx, params, optFns...)
}
