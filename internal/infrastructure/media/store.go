package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// MediaStore persists encoded photos and returns a URI the client can load.
type MediaStore interface {
	Save(ctx context.Context, name string, data []byte, contentType string) (string, error)
}

// LocalMediaStore writes photos below a directory served at /media.
type LocalMediaStore struct {
	basePath string
}

func NewLocalMediaStore(basePath string) *LocalMediaStore {
	return &LocalMediaStore{basePath: basePath}
}

func (s *LocalMediaStore) Save(ctx context.Context, name string, data []byte, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	targetDir := filepath.Join(s.basePath, "photos")
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(targetDir, name), data, 0644); err != nil {
		return "", fmt.Errorf("failed to write photo: %w", err)
	}
	return "/media/photos/" + name, nil
}

// S3PutAPI is the upload half of the S3 client.
type S3PutAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3PresignAPI is the presign client.
type S3PresignAPI interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3MediaStore uploads photos to a bucket and hands out presigned read URLs.
type S3MediaStore struct {
	client    S3PutAPI
	presigner S3PresignAPI
	bucket    string
	expires   time.Duration
}

func NewS3MediaStore(client S3PutAPI, presigner S3PresignAPI, bucket string, expires time.Duration) *S3MediaStore {
	if expires <= 0 {
		expires = time.Hour
	}
	return &S3MediaStore{client: client, presigner: presigner, bucket: bucket, expires: expires}
}

// NewS3MediaStoreFromEnv builds the store from the default AWS credential chain.
func NewS3MediaStoreFromEnv(ctx context.Context, bucket, region string) (*S3MediaStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	client := s3.NewFromConfig(cfg)
	return NewS3MediaStore(client, s3.NewPresignClient(client), bucket, time.Hour), nil
}

func (s *S3MediaStore) Save(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	key := "photos/" + name
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytesReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	presigned, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.expires))
	if err != nil {
		return "", fmt.Errorf("failed to presign %s: %w", key, err)
	}
	return presigned.URL, nil
}
