package evidence

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds configuration for the S3-compatible evidence store
type S3Config struct {
	// Client is the S3 client to upload with
	Client *s3.Client

	// Bucket is the bucket objects are written to
	Bucket string

	// PublicBaseURL is the CDN or bucket base used to build object URLs
	PublicBaseURL string
}

// s3Store implements Store backed by an S3-compatible bucket
type s3Store struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

// NewS3 creates an S3-backed evidence store
func NewS3(cfg *S3Config) (*s3Store, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Client == nil {
		return nil, errors.New("s3 client cannot be nil")
	}

	if cfg.Bucket == "" {
		return nil, errors.New("bucket cannot be empty")
	}

	if cfg.PublicBaseURL == "" {
		return nil, errors.New("public base URL cannot be empty")
	}

	return &s3Store{
		client:        cfg.Client,
		bucket:        cfg.Bucket,
		publicBaseURL: cfg.PublicBaseURL,
	}, nil
}

// Put uploads the payload and returns its public URL
func (s *s3Store) Put(ctx context.Context, input *PutInput) (*PutOutput, error) {
	if input == nil || input.Key == "" || input.Body == nil {
		return nil, errors.New("input, key and body cannot be empty")
	}

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, input.Body); err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(input.Key),
		Body:        buf,
		ContentType: aws.String(input.ContentType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload evidence: %w", err)
	}

	return &PutOutput{
		URL: fmt.Sprintf("%s/%s", s.publicBaseURL, input.Key),
	}, nil
}

// NewS3Client builds an S3 client for an S3-compatible endpoint using static
// credentials
func NewS3Client(ctx context.Context, endpoint, accessKeyID, secretAccessKey string) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			accessKeyID, secretAccessKey, "",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load S3 config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	})

	return client, nil
}
