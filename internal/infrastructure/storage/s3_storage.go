package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"media-fetcher/internal/domain/repositories"
	"media-fetcher/pkg/file"
	"media-fetcher/pkg/helper"
)

type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Mirror copies finished artifacts into a bucket.
type S3Mirror struct {
	client     putObjectAPI
	bucketName string
	region     string
	prefix     string
}

var _ repositories.ArtifactMirror = (*S3Mirror)(nil)

func NewS3Mirror(ctx context.Context, bucketName, region, prefix string) (*S3Mirror, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return newS3Mirror(s3.NewFromConfig(cfg), bucketName, region, prefix), nil
}

func newS3Mirror(client putObjectAPI, bucketName, region, prefix string) *S3Mirror {
	return &S3Mirror{
		client:     client,
		bucketName: bucketName,
		region:     region,
		prefix:     prefix,
	}
}

func (s *S3Mirror) Key(localPath string) string {
	return path.Join(s.prefix, filepath.Base(localPath))
}

// Upload puts the file under prefix/<name> and returns its object URL.
func (s *S3Mirror) Upload(ctx context.Context, localPath string) (string, error) {
	sum, err := file.CalculateFileHash(localPath)
	if err != nil {
		return "", err
	}

	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("open artifact: %w", err)
	}
	defer f.Close()

	key := s.Key(localPath)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(helper.GetMimeTypeFromExtension(localPath)),
		Metadata: map[string]string{
			"sha256": sum,
		},
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucketName, s.region, key), nil
}
