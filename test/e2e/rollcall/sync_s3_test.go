package rollcall_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/rollcall/internal/rollcall/syncx"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	minioUser     = "minioadmin"
	minioPassword = "minioadmin"
	syncBucket    = "rollcall-e2e"
)

// setupMinio starts a MinIO server and returns an S3 client pointed at it
// with syncBucket already created.
func setupMinio(t *testing.T) (*s3.Client, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "minio/minio:latest",
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     minioUser,
			"MINIO_ROOT_PASSWORD": minioPassword,
		},
		Cmd: []string{"server", "/data"},
		WaitingFor: wait.ForHTTP("/minio/health/live").
			WithPort("9000/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "9000")
	require.NoError(t, err)
	host, err := container.Host(ctx)
	require.NoError(t, err)

	client, err := syncx.NewS3Client(ctx, syncx.S3Config{
		Bucket:    syncBucket,
		Region:    "us-east-1",
		Endpoint:  fmt.Sprintf("http://%s:%s", host, mappedPort.Port()),
		AccessKey: minioUser,
		SecretKey: minioPassword,
	})
	require.NoError(t, err)

	_, err = client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(syncBucket)})
	require.NoError(t, err)

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}
	return client, cleanup
}

func TestS3AdapterAgainstMinio(t *testing.T) {
	client, cleanup := setupMinio(t)
	defer cleanup()
	ctx := t.Context()

	adapter := syncx.NewS3Adapter(client, syncBucket, slog.New(slog.DiscardHandler))

	sessions, err := adapter.PullSessions(ctx)
	require.NoError(t, err)
	require.Empty(t, sessions, "missing sessions object reads as empty")

	records := []syncx.Record{{
		AttendanceID: "att-1",
		SessionID:    "sess-1",
		UserID:       "user-1",
		Name:         "Alice",
		Method:       "qr",
		MarkedAt:     time.Date(2024, 1, 1, 10, 5, 0, 0, time.UTC),
	}}
	res, err := adapter.PushAttendance(ctx, records)
	require.NoError(t, err)
	require.Equal(t, 1, res.Pushed)
	require.True(t, strings.HasPrefix(res.Location, "s3://"+syncBucket+"/attendance/"))

	key := strings.TrimPrefix(res.Location, "s3://"+syncBucket+"/")
	obj, err := client.GetObject(ctx, &s3.GetObjectInput{Bucket: aws.String(syncBucket), Key: aws.String(key)})
	require.NoError(t, err)
	defer obj.Body.Close()
	body, err := io.ReadAll(obj.Body)
	require.NoError(t, err)

	var stored []syncx.Record
	require.NoError(t, json.Unmarshal(body, &stored))
	require.Equal(t, records, stored)

	remote := `[{"id":"sess-9","date":"2024-02-01","startTime":"09:00","endTime":"10:00"}]`
	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(syncBucket),
		Key:    aws.String(syncx.SessionsKey),
		Body:   bytes.NewReader([]byte(remote)),
	})
	require.NoError(t, err)

	sessions, err = adapter.PullSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	require.Equal(t, "sess-9", sessions[0].ID)
	require.Equal(t, "09:00", sessions[0].StartTime)
}
