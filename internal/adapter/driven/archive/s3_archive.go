package archive

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"

	"github.com/diillson/wlan-autoassign-go/internal/domain/repository"
	"github.com/diillson/wlan-autoassign-go/internal/shared/types"
	"github.com/diillson/wlan-autoassign-go/pkg/logger"
)

// PutObjectAPI is the part of the S3 client the archive needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Archive envia os relatórios exportados para um bucket S3.
type S3Archive struct {
	client PutObjectAPI
	bucket string
	prefix string
	log    zerolog.Logger
}

// NewS3Archive loads the AWS config (optionally for a named profile and region)
// and returns an archive for cfg.Bucket.
func NewS3Archive(ctx context.Context, cfg types.ReportConfig, log zerolog.Logger) (repository.ArchiveRepository, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("report bucket is not configured")
	}

	var opts []func(*config.LoadOptions) error
	if cfg.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(cfg.Profile))
	}
	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return NewS3ArchiveWithClient(s3.NewFromConfig(awsCfg), cfg.Bucket, cfg.Prefix, log), nil
}

// NewS3ArchiveWithClient builds an archive around an existing client.
func NewS3ArchiveWithClient(client PutObjectAPI, bucket, prefix string, log zerolog.Logger) *S3Archive {
	return &S3Archive{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		log:    logger.WithComponent(log, "archive"),
	}
}

// Upload copies localPath to the bucket and returns its s3:// location.
func (a *S3Archive) Upload(ctx context.Context, localPath string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("error opening report %s: %w", localPath, err)
	}
	defer f.Close()

	key := path.Join(a.prefix, filepath.Base(localPath))

	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(contentType(localPath)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to bucket %s: %w", filepath.Base(localPath), a.bucket, err)
	}

	location := fmt.Sprintf("s3://%s/%s", a.bucket, key)
	a.log.Info().Str("location", location).Msg("report archived")
	return location, nil
}

func contentType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return "text/csv"
	case ".json":
		return "application/json"
	case ".pdf":
		return "application/pdf"
	}
	return "application/octet-stream"
}
