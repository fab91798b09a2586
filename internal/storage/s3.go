package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Writer stores photos in an S3 bucket under {prefix}/{id}.jpg. The public
// URL keeps the same {domain}/{prefix}/{id}.jpg shape as the disk backend, so
// clients are indifferent to which backend serves them.
type S3Writer struct {
	client *s3.Client
	bucket string
	prefix string
	domain string
}

// NewS3Writer builds an S3-backed writer. Endpoint is optional and switches
// the client to path-style addressing for S3-compatible providers.
func NewS3Writer(ctx context.Context, region, bucket, accessKey, secretKey, endpoint, prefix, domain string) (*S3Writer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Writer{
		client: client,
		bucket: bucket,
		prefix: prefix,
		domain: domain,
	}, nil
}

// Save uploads the photo bytes to the bucket.
func (w *S3Writer) Save(ctx context.Context, photoID uuid.UUID, data []byte) error {
	_, err := w.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(w.bucket),
		Key:         aws.String(w.key(photoID)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/jpeg"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload photo: %w", err)
	}
	return nil
}

// PublicURL returns the URL a client uses to fetch the photo.
func (w *S3Writer) PublicURL(photoID uuid.UUID) string {
	return fmt.Sprintf("%s/%s", w.domain, w.key(photoID))
}

func (w *S3Writer) key(photoID uuid.UUID) string {
	return fmt.Sprintf("%s/%s.jpg", w.prefix, photoID)
}
