package syncx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/rollcall/internal/rollcall/domain"
	"github.com/aussiebroadwan/rollcall/pkg/idx"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// SessionsKey is the object PullSessions reads.
const SessionsKey = "sessions.json"

// ObjectAPI is the subset of *s3.Client the adapter uses.
type ObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string // e.g. a MinIO URL; empty uses AWS
	AccessKey string
	SecretKey string
}

// S3Adapter writes attendance batches as JSON objects under
// attendance/YYYY/MM/DD/<id>.json and reads remote sessions from
// SessionsKey.
type S3Adapter struct {
	client ObjectAPI
	bucket string
	logger *slog.Logger
	now    func() time.Time
}

// NewS3Client builds an S3 client from cfg. Static credentials are used
// when both keys are set, otherwise the default AWS credential chain.
func NewS3Client(ctx context.Context, cfg S3Config) (*s3.Client, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

func NewS3Adapter(client ObjectAPI, bucket string, logger *slog.Logger) *S3Adapter {
	return &S3Adapter{client: client, bucket: bucket, logger: logger, now: time.Now}
}

func (a *S3Adapter) PushAttendance(ctx context.Context, records []Record) (PushResult, error) {
	if len(records) == 0 {
		return PushResult{}, nil
	}

	body, err := json.Marshal(records)
	if err != nil {
		return PushResult{}, err
	}

	now := a.now().UTC()
	key := fmt.Sprintf("attendance/%s/%s.json", now.Format("2006/01/02"), idx.NewAt(now))
	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return PushResult{}, fmt.Errorf("put %s: %w", key, err)
	}

	a.logger.Info("sync pushed attendance", "count", len(records), "key", key)
	return PushResult{Pushed: len(records), Location: "s3://" + a.bucket + "/" + key}, nil
}

// remoteSession is the wire shape of an entry in SessionsKey.
type remoteSession struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// PullSessions returns the sessions listed in SessionsKey, or none when the
// object does not exist.
func (a *S3Adapter) PullSessions(ctx context.Context) ([]domain.Session, error) {
	out, err := a.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(SessionsKey),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return []domain.Session{}, nil
		}
		return nil, fmt.Errorf("get %s: %w", SessionsKey, err)
	}
	defer out.Body.Close()

	var remote []remoteSession
	if err := json.NewDecoder(out.Body).Decode(&remote); err != nil {
		return nil, fmt.Errorf("decode %s: %w", SessionsKey, err)
	}

	sessions := make([]domain.Session, 0, len(remote))
	for _, r := range remote {
		sessions = append(sessions, domain.Session{
			ID: r.ID, Date: r.Date, StartTime: r.StartTime, EndTime: r.EndTime,
		})
	}
	return sessions, nil
}

func (a *S3Adapter) Status() Status {
	return Status{Mode: "s3", Message: "Pushing to bucket " + a.bucket}
}
