// Package storage keeps product images in a gocloud.dev bucket.
package storage

import (
	"context"
	"log/slog"
	"mime"
	"path"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket drivers selected by the storage.bucketUrl scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

const (
	imagePrefix         = "products/"
	defaultBucketURL    = "mem://"
	immutableCacheRules = "public, max-age=31536000, immutable"
)

// blobImageStorage implements service.ImageStorage on top of a blob.Bucket.
// Objects are keyed by owner and content checksum so re-uploading a file is a no-op.
type blobImageStorage struct {
	bucket  *blob.Bucket
	baseURL string
	logger  *slog.Logger
}

// Params holds dependencies for the image storage, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (service.ImageStorage, error) {
	bucketURL := defaultBucketURL
	baseURL := ""
	if params.Config.Storage != nil {
		if params.Config.Storage.BucketURL != "" {
			bucketURL = params.Config.Storage.BucketURL
		}
		baseURL = params.Config.Storage.PublicBaseURL
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Logger.Info("Image storage initialized", slog.String("bucket_url", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBlobImageStorage(bucket, baseURL, params.Logger), nil
}

// NewBlobImageStorage wraps an already opened bucket.
func NewBlobImageStorage(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) service.ImageStorage {
	return &blobImageStorage{
		bucket:  bucket,
		baseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:  logger,
	}
}

// Upload writes data under products/<owner>/<sha256><ext> and returns its public URL.
func (s *blobImageStorage) Upload(ctx context.Context, owner, filename, contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("image is empty")
	}
	if owner == "" || strings.ContainsAny(owner, "/\\.") {
		return "", errors.Errorf("invalid image owner %q", owner)
	}

	key := imagePrefix + owner + "/" + util.ContentChecksum(data) + extensionFor(filename, contentType)

	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return "", errors.Wrapf(err, "failed to stat %s", key)
	}
	if !exists {
		if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
			ContentType:  contentType,
			CacheControl: immutableCacheRules,
		}); err != nil {
			return "", errors.Wrapf(err, "failed to write %s", key)
		}

		s.logger.Debug("Stored product image",
			slog.String("key", key),
			slog.String("size", util.FormatBytes(int64(len(data)))),
		)
	}

	return s.urlFor(key), nil
}

// Delete removes the object behind url when it belongs to this bucket.
func (s *blobImageStorage) Delete(ctx context.Context, url string) error {
	key, ok := s.keyFor(url)
	if !ok {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

func (s *blobImageStorage) urlFor(key string) string {
	if s.baseURL == "" {
		return "/" + key
	}

	return s.baseURL + "/" + key
}

func (s *blobImageStorage) keyFor(url string) (string, bool) {
	prefix := s.baseURL + "/"
	if s.baseURL == "" {
		prefix = "/"
	}

	key, ok := strings.CutPrefix(url, prefix)
	if !ok || !strings.HasPrefix(key, imagePrefix) {
		return "", false
	}

	return key, true
}

func extensionFor(filename, contentType string) string {
	if ext := strings.ToLower(path.Ext(filename)); ext != "" {
		return ext
	}

	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		return exts[0]
	}

	return ""
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
