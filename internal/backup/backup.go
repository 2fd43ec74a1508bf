// Package backup copies the database file to an S3 bucket and lists the
// copies already there.
package backup

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/Paintersrp/binders/internal/config"
)

// ErrNoBucket is returned when no bucket is configured or given.
var ErrNoBucket = errors.New("no backup bucket configured; pass --bucket or set backup.bucket in the config")

const (
	keyPrefix  = "binders-"
	keySuffix  = ".sqlite"
	timeLayout = "20060102T150405Z"
)

type Object struct {
	Key      string
	Size     int64
	Modified time.Time
}

type lister interface {
	ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

type uploader interface {
	Upload(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

type Client struct {
	bucket string
	prefix string

	list   lister
	upload uploader
	now    func() time.Time
}

// New builds an S3 client from cfg. Explicit keys take precedence over the
// shared AWS profile; an endpoint switches to path-style addressing for
// S3-compatible stores.
func New(ctx context.Context, cfg config.BackupConfig) (*Client, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, ErrNoBucket
	}

	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(cfg.Profile))
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newClient(cfg, client, manager.NewUploader(client)), nil
}

func newClient(cfg config.BackupConfig, list lister, upload uploader) *Client {
	return &Client{
		bucket: strings.TrimSpace(cfg.Bucket),
		prefix: normalizePrefix(cfg.Prefix),
		list:   list,
		upload: upload,
		now:    time.Now,
	}
}

func normalizePrefix(prefix string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return ""
	}
	return prefix + "/"
}

// Key names the backup taken at t.
func (c *Client) Key(t time.Time) string {
	return c.prefix + keyPrefix + t.UTC().Format(timeLayout) + keySuffix
}

// Push uploads the file at dbPath under a timestamped key.
func (c *Client) Push(ctx context.Context, dbPath string) (Object, error) {
	f, err := os.Open(dbPath)
	if err != nil {
		return Object{}, fmt.Errorf("failed to open database: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Object{}, fmt.Errorf("failed to stat database: %w", err)
	}

	now := c.now()
	obj := Object{Key: c.Key(now), Size: info.Size(), Modified: now}

	_, err = c.upload.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(obj.Key),
		Body:        f,
		ContentType: aws.String("application/vnd.sqlite3"),
	})
	if err != nil {
		return Object{}, fmt.Errorf("failed to upload %s: %w", path.Base(obj.Key), err)
	}
	return obj, nil
}

// List returns the backups modified at or after since, newest first. A zero
// since lists everything.
func (c *Client) List(ctx context.Context, since time.Time) ([]Object, error) {
	var objects []Object

	p := s3.NewListObjectsV2Paginator(c.list, &s3.ListObjectsV2Input{
		Bucket: aws.String(c.bucket),
		Prefix: aws.String(c.prefix + keyPrefix),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list backups: %w", err)
		}
		for _, o := range page.Contents {
			obj := Object{
				Key:      aws.ToString(o.Key),
				Size:     aws.ToInt64(o.Size),
				Modified: aws.ToTime(o.LastModified),
			}
			if !since.IsZero() && obj.Modified.Before(since) {
				continue
			}
			objects = append(objects, obj)
		}
	}

	sort.Slice(objects, func(i, j int) bool {
		return objects[i].Modified.After(objects[j].Modified)
	})
	return objects, nil
}
