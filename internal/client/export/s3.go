package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/creatorpilot/internal/client/models"
	"github.com/dmitrijs2005/creatorpilot/internal/netx"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}

	upload = netx.UploadToS3PresignedURL
)

const textContentType = "text/plain; charset=utf-8"

// ErrNoBucket is returned when S3 export is used without a bucket.
var ErrNoBucket = errors.New("S3 bucket is not configured")

// S3Exporter uploads results to an S3-compatible bucket through a presigned
// PUT. Endpoint may point at MinIO or any other compatible store.
type S3Exporter struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string

	now func() time.Time
}

// StorageKey returns exports/<yyyy>/<mm>/<dd>/<uuid>.txt for t.
func StorageKey(t time.Time) string {
	return fmt.Sprintf("exports/%04d/%02d/%02d/%s.txt", t.Year(), int(t.Month()), t.Day(), uuid.NewString())
}

func (e *S3Exporter) presignClient(ctx context.Context) (*s3.PresignClient, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(e.Region)}
	if e.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(e.AccessKey, e.SecretKey, "")))
	}

	cfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if e.Endpoint != "" {
			o.BaseEndpoint = aws.String(e.Endpoint)
			o.UsePathStyle = true
		}
	})
	return s3.NewPresignClient(client), nil
}

// Export uploads the result text and returns s3://bucket/key.
func (e *S3Exporter) Export(ctx context.Context, r models.GenerationResult) (string, error) {
	if e.Bucket == "" {
		return "", ErrNoBucket
	}

	pc, err := e.presignClient(ctx)
	if err != nil {
		return "", err
	}

	now := time.Now
	if e.now != nil {
		now = e.now
	}
	bucket, key := e.Bucket, StorageKey(now().UTC())

	req, err := presignPutObject(pc, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		ContentType: aws.String(textContentType),
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", fmt.Errorf("presign put: %w", err)
	}

	if err := upload(ctx, req.URL, []byte(r.Text), textContentType); err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	return fmt.Sprintf("s3://%s/%s", bucket, key), nil
}
