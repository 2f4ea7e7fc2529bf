// Package files stores wizard attachments in S3-compatible object storage
// via presigned PUT URLs. When storage is not configured the uploader keeps
// metadata only, so the wizard works without any infrastructure.
package files

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/dmitrijs2005/drishya/internal/logging"
	"github.com/dmitrijs2005/drishya/internal/models"
	"github.com/dmitrijs2005/drishya/internal/netx"
)

const presignExpiry = 15 * time.Minute

// Seams for tests; the real AWS SDK is never hit from the test suite.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}

	uploadToPresignedURL = netx.UploadToS3PresignedURL
)

// S3Config holds object-storage settings. An empty Bucket means storage is
// disabled.
type S3Config struct {
	Bucket       string
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
}

type Uploader struct {
	config S3Config
	clock  clockwork.Clock
	logger logging.Logger
}

func NewUploader(config S3Config, clock clockwork.Clock, logger logging.Logger) *Uploader {
	return &Uploader{
		config: config,
		clock:  clock,
		logger: logger.With("module", "files"),
	}
}

// Configured reports whether object storage is set up.
func (u *Uploader) Configured() bool {
	return u.config.Bucket != ""
}

// Upload stores the attachment bytes and returns the metadata to keep with
// the draft. Without configured storage only the metadata is returned and
// StorageKey stays empty.
func (u *Uploader) Upload(ctx context.Context, name string, data []byte) (models.AttachedFile, error) {
	f := models.AttachedFile{Name: name, Size: int64(len(data))}

	if !u.Configured() {
		u.logger.Debug(ctx, "object storage not configured, keeping metadata only", "file", name)
		return f, nil
	}

	key := u.storageKey()
	url, err := u.presignedPutURL(ctx, key)
	if err != nil {
		return models.AttachedFile{}, fmt.Errorf("presign put: %w", err)
	}

	if err := uploadToPresignedURL(ctx, url, data); err != nil {
		return models.AttachedFile{}, fmt.Errorf("upload %q: %w", name, err)
	}

	f.StorageKey = key
	u.logger.Info(ctx, "attachment uploaded", "file", name, "key", key, "size", f.Size)
	return f, nil
}

func (u *Uploader) storageKey() string {
	d := u.clock.Now()
	return fmt.Sprintf("orders/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (u *Uploader) presignedPutURL(ctx context.Context, key string) (string, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(u.config.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			u.config.AccessKey,
			u.config.SecretKey,
			"",
		)))
	if err != nil {
		return "", err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if u.config.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(u.config.BaseEndpoint)
		}
	})

	req, err := presignPutObject(newS3PresignClient(client), ctx, &s3.PutObjectInput{
		Bucket: &u.config.Bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
