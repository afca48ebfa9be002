// Package storage issues presigned upload URLs for recipe images on an
// S3-compatible object store.
package storage

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/bodyfuel/bodyfuel-backend/internal/config"
	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
)

// presignClient is the subset of *s3.PresignClient used here.
type presignClient interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// Presigner hands out short-lived PUT URLs for recipe images.
type Presigner struct {
	client    presignClient
	bucket    string
	keyPrefix string
	ttl       time.Duration
	now       func() time.Time
}

// NewPresigner builds a Presigner over a static-credential S3 client.
func NewPresigner(cfg config.StorageConfig) *Presigner {
	opts := s3.Options{
		Region:       cfg.Region,
		UsePathStyle: cfg.UsePathStyle,
	}
	if cfg.AccessKeyID != "" {
		opts.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	} else {
		opts.Credentials = aws.AnonymousCredentials{}
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}

	return newPresigner(s3.NewPresignClient(s3.New(opts)), cfg)
}

func newPresigner(client presignClient, cfg config.StorageConfig) *Presigner {
	return &Presigner{
		client:    client,
		bucket:    cfg.Bucket,
		keyPrefix: cfg.KeyPrefix,
		ttl:       cfg.UploadTTL,
		now:       time.Now,
	}
}

// ImageKey returns the object key under which a recipe's image is stored.
func (p *Presigner) ImageKey(recipeID uuid.UUID) string {
	return p.keyPrefix + recipeID.String()
}

// PresignImageUpload returns a PUT URL scoped to the recipe's image key.
func (p *Presigner) PresignImageUpload(ctx context.Context, recipeID uuid.UUID) (domain.UploadURL, error) {
	key := p.ImageKey(recipeID)

	req, err := p.client.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(p.ttl))
	if err != nil {
		return domain.UploadURL{}, fmt.Errorf("presign put %s: %w", key, err)
	}

	method := req.Method
	if method == "" {
		method = http.MethodPut
	}

	return domain.UploadURL{
		URL:       req.URL,
		Method:    method,
		Key:       key,
		ExpiresAt: p.now().Add(p.ttl),
	}, nil
}
