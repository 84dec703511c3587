// Package storage stores uploaded images in a gocloud.dev bucket.
package storage

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"autohub/config"
	domainerrors "autohub/internal/domain/errors"
	"autohub/internal/domain/service"
	"autohub/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const (
	sniffLength          = 512
	defaultMaxUploadSize = 5 << 20
)

var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

var _ service.ObjectStorage = (*BlobStorage)(nil)

// BlobStorage implements service.ObjectStorage on a gocloud.dev bucket.
type BlobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	maxSize       int64
}

// Params holds the dependencies of the object storage.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket. mem:// is used when none is configured.
func New(params Params) (service.ObjectStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil {
		cfg = &config.StorageConfig{}
	}

	bucketURL := cfg.BucketURL
	if bucketURL == "" {
		params.Logger.Warn("storage bucket not configured, uploads are kept in memory")
		bucketURL = "mem://"
	}

	bucket, err := blob.OpenBucket(context.Background(), bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	storage := NewBlobStorage(bucket, cfg.PublicBaseURL, cfg.MaxUploadSize)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return storage.Close()
		},
	})

	return storage, nil
}

// NewBlobStorage wraps an open bucket.
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string, maxSize int64) *BlobStorage {
	if maxSize <= 0 {
		maxSize = defaultMaxUploadSize
	}

	return &BlobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
		maxSize:       maxSize,
	}
}

// Upload stores an image under folder and returns its public URL. The content
// type is sniffed from the data; the declared one is only used as a hint.
func (s *BlobStorage) Upload(ctx context.Context, r io.Reader, declaredType, folder string, progress service.UploadProgress) (string, error) {
	if progress == nil {
		progress = func(int64, bool) {}
	}

	buffered := bufio.NewReaderSize(r, sniffLength)

	head, err := buffered.Peek(sniffLength)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return "", domainerrors.ErrUploadFailed.WithDetails(err.Error())
	}

	if len(head) == 0 {
		return "", domainerrors.ErrUploadRejected.WithDetails("file is empty")
	}

	contentType := http.DetectContentType(head)
	ext, ok := allowedContentTypes[contentType]
	if !ok {
		return "", domainerrors.ErrUploadRejected.WithDetails("unsupported content type " + contentType + " (declared " + declaredType + ")")
	}

	key := path.Join(sanitizeFolder(folder), uuid.NewString()+ext)

	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := s.bucket.NewWriter(writeCtx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", domainerrors.ErrUploadFailed.WithDetails(err.Error())
	}

	counter := &progressReader{r: io.LimitReader(buffered, s.maxSize+1), progress: progress}
	if _, err := io.Copy(w, counter); err != nil {
		cancel() // abort the write
		_ = w.Close()

		return "", domainerrors.ErrUploadFailed.WithDetails(err.Error())
	}

	if counter.written > s.maxSize {
		cancel()
		_ = w.Close()

		return "", domainerrors.ErrUploadRejected.WithDetails("file exceeds the upload size limit")
	}

	if err := w.Close(); err != nil {
		return "", domainerrors.ErrUploadFailed.WithDetails(err.Error())
	}

	progress(counter.written, true)

	return s.PublicURL(key), nil
}

// PublicURL maps a key to the URL clients use to fetch it.
func (s *BlobStorage) PublicURL(key string) string {
	return s.publicBaseURL + "/" + key
}

// Open returns a reader for a stored object and its content type.
func (s *BlobStorage) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", service.ErrObjectNotFound
		}

		return nil, "", errors.Wrapf(err, "failed to open %s", key)
	}

	return reader, reader.ContentType(), nil
}

// Delete removes an object. Missing objects are ignored.
func (s *BlobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

// Close closes the bucket.
func (s *BlobStorage) Close() error {
	return errors.WithStack(s.bucket.Close())
}

func sanitizeFolder(folder string) string {
	cleaned := path.Clean("/" + strings.TrimSpace(folder))
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" || cleaned == "." {
		return "misc"
	}

	return cleaned
}

type progressReader struct {
	r        io.Reader
	written  int64
	progress service.UploadProgress
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.written += int64(n)
		p.progress(p.written, false)
	}

	return n, err
}
