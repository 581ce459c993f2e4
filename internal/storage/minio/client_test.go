package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	minioLib "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMinio implements minioAPI for testing without network.
type fakeMinio struct {
	bucketExists    bool
	bucketExistsErr error
	makeBucketErr   error
	madeBucket      bool

	putOpts minioLib.PutObjectOptions
	putErr  error

	getRC  io.ReadCloser
	getErr error

	removeErr error

	statErr error
}

func (f *fakeMinio) BucketExists(_ context.Context, _ string) (bool, error) {
	return f.bucketExists, f.bucketExistsErr
}
func (f *fakeMinio) MakeBucket(_ context.Context, _ string, _ minioLib.MakeBucketOptions) error {
	f.madeBucket = true
	return f.makeBucketErr
}
func (f *fakeMinio) PutObject(_ context.Context, _ string, _ string, _ io.Reader, _ int64, opts minioLib.PutObjectOptions) (minioLib.UploadInfo, error) {
	f.putOpts = opts
	return minioLib.UploadInfo{}, f.putErr
}
func (f *fakeMinio) GetObject(_ context.Context, _ string, _ string, _ minioLib.GetObjectOptions) (io.ReadCloser, error) {
	return f.getRC, f.getErr
}
func (f *fakeMinio) RemoveObject(_ context.Context, _ string, _ string, _ minioLib.RemoveObjectOptions) error {
	return f.removeErr
}
func (f *fakeMinio) StatObject(_ context.Context, _ string, _ string, _ minioLib.StatObjectOptions) (minioLib.ObjectInfo, error) {
	return minioLib.ObjectInfo{}, f.statErr
}

func TestNewClientWithAPI_BucketExists(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{bucketExists: true}
	c, err := NewClientWithAPI(ctx, api, "b")
	require.NoError(t, err)
	assert.NotNil(t, c)
	assert.Equal(t, "b", c.bucket)
	assert.False(t, api.madeBucket)
}

func TestNewClientWithAPI_CreatesBucket(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{bucketExists: false}
	_, err := NewClientWithAPI(ctx, api, "b")
	require.NoError(t, err)
	assert.True(t, api.madeBucket)
}

func TestClient_Upload_SetsContentType(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{bucketExists: true}
	c, err := NewClientWithAPI(ctx, api, "b")
	require.NoError(t, err)

	err = c.Upload(ctx, "plants/1", bytes.NewReader([]byte("img")), 3, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", api.putOpts.ContentType)
}

func TestClient_Upload_Error(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{bucketExists: true, putErr: errors.New("boom")}
	c, err := NewClientWithAPI(ctx, api, "b")
	require.NoError(t, err)

	err = c.Upload(ctx, "plants/1", bytes.NewReader(nil), 0, "image/png")
	require.Error(t, err)
}

func TestClient_Download(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{bucketExists: true, getRC: io.NopCloser(bytes.NewReader([]byte("img")))}
	c, err := NewClientWithAPI(ctx, api, "b")
	require.NoError(t, err)

	rc, err := c.Download(ctx, "plants/1")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, []byte("img"), data)
}

func TestClient_Delete(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{bucketExists: true}
	c, err := NewClientWithAPI(ctx, api, "b")
	require.NoError(t, err)

	require.NoError(t, c.Delete(ctx, "plants/1"))
}
