package s3

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/trellisdev/trellis/core/static"
)

// ErrInvalidConfig is returned by New when the config is missing a bucket
// or region.
var ErrInvalidConfig = errors.New("s3: bucket and region are required")

// classifyError converts S3 failures into domain errors. Missing keys and
// buckets map to static.ErrNotFound so callers serve a 404; everything else
// keeps the original error wrapped for logging.
func classifyError(err error, key string) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("s3: get %s: %w", key, err)
	}

	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return fmt.Errorf("%w: %s", static.ErrNotFound, key)
	}
	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return fmt.Errorf("%w: %s", static.ErrNotFound, key)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NoSuchBucket", "NotFound":
			return fmt.Errorf("%w: %s", static.ErrNotFound, key)
		default:
			return fmt.Errorf("s3: get %s (code %s): %w", key, apiErr.ErrorCode(), err)
		}
	}

	return fmt.Errorf("s3: get %s: %w", key, err)
}
