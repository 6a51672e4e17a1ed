package s3

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/trellisdev/trellis/core/static"
)

// Compile-time check that Store implements the static store interface.
var _ static.Store = (*Store)(nil)

// Client defines the S3 operations used by Store. Satisfied by the real
// *s3.Client and by test mocks.
type Client interface {
	GetObject(ctx context.Context, params *s3aws.GetObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.GetObjectOutput, error)
}

// Store serves static objects from an S3 bucket or any S3-compatible
// service. Safe for concurrent use.
type Store struct {
	client Client
	bucket string
	prefix string
}

// Config contains connection settings for the S3 static store.
type Config struct {
	Bucket         string `env:"S3_BUCKET,required"`
	Region         string `env:"S3_REGION,required"`
	AccessKeyID    string `env:"S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"S3_SECRET_KEY"`
	Endpoint       string `env:"S3_ENDPOINT"`
	KeyPrefix      string `env:"S3_KEY_PREFIX"`
	ForcePathStyle bool   `env:"S3_FORCE_PATH_STYLE" envDefault:"false"`
}

// Option configures a Store beyond its Config.
type Option func(*options)

type options struct {
	httpClient    *http.Client
	client        Client
	configOptions []func(*config.LoadOptions) error
	clientOptions []func(*s3aws.Options)
}

// WithClient sets a custom pre-configured S3 client.
// Primarily used for testing with mocks.
func WithClient(client Client) Option {
	return func(o *options) {
		o.client = client
	}
}

// WithHTTPClient sets a custom HTTP client for S3 requests.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithConfigOption adds a custom AWS config option.
func WithConfigOption(option func(*config.LoadOptions) error) Option {
	return func(o *options) {
		o.configOptions = append(o.configOptions, option)
	}
}

// WithClientOption adds a custom S3 client option.
func WithClientOption(option func(*s3aws.Options)) Option {
	return func(o *options) {
		o.clientOptions = append(o.clientOptions, option)
	}
}

// New creates an S3-backed static store. Credentials fall back to the
// default AWS chain (IAM roles, env vars) when not set in the config.
func New(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, ErrInvalidConfig
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	client := o.client
	if client == nil {
		awsOptions := []func(*config.LoadOptions) error{
			config.WithRegion(cfg.Region),
		}
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			awsOptions = append(awsOptions,
				config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
					cfg.AccessKeyID,
					cfg.SecretKey,
					"",
				)),
			)
		}
		if o.httpClient != nil {
			awsOptions = append(awsOptions, config.WithHTTPClient(o.httpClient))
		}
		awsOptions = append(awsOptions, o.configOptions...)

		awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}

		client = s3aws.NewFromConfig(awsConfig, func(so *s3aws.Options) {
			if cfg.Endpoint != "" {
				so.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			so.UsePathStyle = cfg.ForcePathStyle

			for _, opt := range o.clientOptions {
				opt(so)
			}
		})
	}

	return &Store{
		client: client,
		bucket: cfg.Bucket,
		prefix: normalizePrefix(cfg.KeyPrefix),
	}, nil
}

// Open fetches an object by key. Missing keys report static.ErrNotFound so
// the file server maps them to a 404.
func (s *Store) Open(ctx context.Context, key string) (*static.Object, error) {
	cleaned, err := static.CleanKey(key)
	if err != nil {
		return nil, err
	}
	if cleaned == "" {
		return nil, fmt.Errorf("%w: %s", static.ErrNotFound, key)
	}

	out, err := s.client.GetObject(ctx, &s3aws.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.prefix + cleaned),
	})
	if err != nil {
		return nil, classifyError(err, cleaned)
	}

	obj := &static.Object{
		Key:  cleaned,
		Body: out.Body,
	}
	if out.ContentType != nil {
		obj.ContentType = *out.ContentType
	}
	if out.ContentLength != nil {
		obj.Size = *out.ContentLength
	}
	return obj, nil
}

func normalizePrefix(prefix string) string {
	if prefix == "" {
		return ""
	}
	cleaned, err := static.CleanKey(prefix)
	if err != nil || cleaned == "" {
		return ""
	}
	return cleaned + "/"
}
