package storage

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	minioSDK "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestObjectName(t *testing.T) {
	name := ObjectName(12, " scans/passport.pdf ")
	assert.True(t, strings.HasPrefix(name, "assignments/12/documents/"))
	assert.True(t, strings.HasSuffix(name, "-scans_passport.pdf"))
	assert.NotEqual(t, name, ObjectName(12, "scans/passport.pdf"))
}

func startMinio(t *testing.T) (opts Options) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping minio container in short mode")
	}
	defer func() {
		if r := recover(); r != nil {
			t.Skipf("docker unavailable: %v", r)
		}
	}()

	ctx := context.Background()
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "minio/minio:latest",
			Cmd:          []string{"server", "/data"},
			Env:          map[string]string{"MINIO_ROOT_USER": "minioadmin", "MINIO_ROOT_PASSWORD": "minioadmin"},
			ExposedPorts: []string{"9000/tcp"},
			WaitingFor:   wait.ForHTTP("/minio/health/live").WithPort("9000/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("minio container unavailable: %v", err)
	}
	t.Cleanup(func() { _ = c.Terminate(ctx) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "9000")
	require.NoError(t, err)

	return Options{
		Endpoint:  fmt.Sprintf("%s:%s", host, port.Port()),
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		Bucket:    "candidate-documents",
	}
}

func TestStore_PutAndDelete(t *testing.T) {
	opts := startMinio(t)
	ctx := context.Background()

	store, err := NewStore(ctx, opts)
	require.NoError(t, err)

	// A second store on the same bucket must not fail on bucket creation.
	_, err = NewStore(ctx, opts)
	require.NoError(t, err)

	body := "%PDF-1.4 offer letter"
	obj := ObjectName(7, "offer_letter.pdf")
	url, err := store.Put(ctx, obj, "application/pdf", strings.NewReader(body), int64(len(body)))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, "/candidate-documents/"+obj))

	info, err := store.client.StatObject(ctx, opts.Bucket, obj, minioSDK.StatObjectOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(len(body)), info.Size)
	assert.Equal(t, "application/pdf", info.ContentType)

	require.NoError(t, store.Delete(ctx, obj))
	_, err = store.client.StatObject(ctx, opts.Bucket, obj, minioSDK.StatObjectOptions{})
	assert.Error(t, err)
}

func TestStore_PutRejectsEmptyName(t *testing.T) {
	s := &Store{bucket: "b"}
	_, err := s.Put(context.Background(), "  ", "text/plain", strings.NewReader("x"), 1)
	assert.Error(t, err)
}
