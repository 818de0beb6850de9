package upload

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// s3Uploader implements Uploader against an S3 bucket, for deployments that
// host images themselves instead of relaying to imgbb. Objects are written
// under prefix/<uuid>.<ext> and served from the bucket's public URL.
type s3Uploader struct {
	client *s3.Client
	bucket string
	region string
	prefix string
	logger zerolog.Logger
}

// NewS3Uploader creates an S3-backed uploader.
func NewS3Uploader(ctx context.Context, bucket, region, prefix string, logger zerolog.Logger) (Uploader, error) {
	logger = logger.With().Str("uploader", "s3").Logger()

	// Load AWS configuration
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(cfg)

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Str("prefix", prefix).
		Msg("S3 uploader initialised")

	return &s3Uploader{
		client: client,
		bucket: bucket,
		region: region,
		prefix: prefix,
		logger: logger,
	}, nil
}

// Upload puts the image into the bucket and returns its public object URL.
func (u *s3Uploader) Upload(ctx context.Context, image []byte, mediaType string) (string, error) {
	key := u.prefix + uuid.New().String() + extensionFor(mediaType)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(image),
		ContentType: aws.String(mediaType),
	})
	if err != nil {
		u.logger.Error().
			Err(err).
			Str("key", key).
			Int("bytes", len(image)).
			Msg("failed to put image object")
		return "", &UploadError{StatusCode: 0, Message: err.Error()}
	}

	u.logger.Debug().Str("key", key).Int("bytes", len(image)).Msg("image uploaded")

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}

func extensionFor(mediaType string) string {
	if strings.Contains(mediaType, "png") {
		return ".png"
	}
	return ".jpg"
}
