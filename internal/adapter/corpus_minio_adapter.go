package adapter

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	m "github.com/mouse-blink/twins/internal/model"
	"github.com/rs/zerolog"
)

// StorageOptions holds the connection settings of an S3-compatible endpoint.
type StorageOptions struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
	UseSSL    bool
}

// objectStore is the subset of bucket operations the corpus needs.
type objectStore interface {
	listKeys(ctx context.Context, bucket, prefix string) ([]string, error)
	readObject(ctx context.Context, bucket, key string) ([]byte, error)
}

// MinIOCorpusAdapter reads a corpus stored under s3://<bucket>/<prefix>.
type MinIOCorpusAdapter struct {
	store  objectStore
	logger zerolog.Logger
}

// NewMinIOCorpusAdapter connects a MinIO client to the configured endpoint.
func NewMinIOCorpusAdapter(opts StorageOptions, logger zerolog.Logger) (*MinIOCorpusAdapter, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
		Region: opts.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.Debug().
		Str("endpoint", opts.Endpoint).
		Bool("ssl", opts.UseSSL).
		Msg("MinIO client created")

	return &MinIOCorpusAdapter{store: &minioStore{client: client}, logger: logger}, nil
}

// Load implements CorpusSource.
func (a *MinIOCorpusAdapter) Load(ctx context.Context, root m.Path, filter CorpusFilter) ([]m.Submission, error) {
	bucket, prefix, err := ParseBucketURL(string(root))
	if err != nil {
		return nil, err
	}

	keys, err := a.store.listKeys(ctx, bucket, prefix)
	if err != nil {
		return nil, err
	}

	objects := make([]objectKey, 0, len(keys))

	for _, key := range keys {
		obj, ok := parseObjectKey(prefix, key)
		if !ok {
			continue
		}

		if !filter.AcceptsClass(m.ClassID(obj.class)) || !filter.AcceptsFile(obj.rel()) {
			continue
		}

		objects = append(objects, obj)
	}

	// Same order as a sorted directory walk.
	slices.SortFunc(objects, func(x, y objectKey) int {
		return cmp.Or(
			cmp.Compare(x.class, y.class),
			cmp.Compare(x.student, y.student),
			cmp.Compare(x.file, y.file),
		)
	})

	submissions := make([]m.Submission, 0, len(objects))

	for _, obj := range objects {
		src, err := a.store.readObject(ctx, bucket, obj.key)
		if err != nil {
			return nil, err
		}

		origin := m.Path(S3Scheme + bucket + "/" + obj.key)
		submissions = append(submissions, newSubmission(filter, obj.class, obj.student, obj.file, origin, src))
	}

	a.logger.Debug().
		Str("bucket", bucket).
		Str("prefix", prefix).
		Int("objects", len(keys)).
		Int("submissions", len(submissions)).
		Msg("corpus listed from object storage")

	return submissions, nil
}

// ParseBucketURL splits s3://bucket/prefix into its bucket and key prefix.
// The returned prefix is either empty or ends with "/".
func ParseBucketURL(raw string) (bucket, prefix string, err error) {
	if !strings.HasPrefix(raw, S3Scheme) {
		return "", "", fmt.Errorf("not an object storage root: %q", raw)
	}

	rest := strings.TrimPrefix(raw, S3Scheme)
	bucket, prefix, _ = strings.Cut(rest, "/")

	if bucket == "" {
		return "", "", fmt.Errorf("missing bucket in %q", raw)
	}

	prefix = strings.Trim(prefix, "/")
	if prefix != "" {
		prefix += "/"
	}

	return bucket, prefix, nil
}

type objectKey struct {
	key     string
	class   string
	student string
	file    string
}

func (o objectKey) rel() string {
	return o.class + "/" + o.student + "/" + o.file
}

// parseObjectKey accepts only keys exactly three levels below prefix.
func parseObjectKey(prefix, key string) (objectKey, bool) {
	if !strings.HasPrefix(key, prefix) {
		return objectKey{}, false
	}

	parts := strings.Split(strings.TrimPrefix(key, prefix), "/")
	if len(parts) != 3 {
		return objectKey{}, false
	}

	for _, part := range parts {
		if part == "" || strings.HasPrefix(part, ".") {
			return objectKey{}, false
		}
	}

	return objectKey{key: key, class: parts[0], student: parts[1], file: parts[2]}, true
}

type minioStore struct {
	client *minio.Client
}

func (s *minioStore) listKeys(ctx context.Context, bucket, prefix string) ([]string, error) {
	return collectKeys(ctx, bucket, func(ctx context.Context) <-chan minio.ObjectInfo {
		return s.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{
			Prefix:    prefix,
			Recursive: true,
		})
	})
}

// collectKeys drains one listing. Its context is cancelled on return, which
// stops the listing goroutine when an error ends the loop early.
func collectKeys(ctx context.Context, bucket string, list func(context.Context) <-chan minio.ObjectInfo) ([]string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var keys []string

	for object := range list(ctx) {
		if object.Err != nil {
			return nil, fmt.Errorf("failed to list objects in %s: %w", bucket, object.Err)
		}

		keys = append(keys, object.Key)
	}

	return keys, nil
}

func (s *minioStore) readObject(ctx context.Context, bucket, key string) ([]byte, error) {
	object, err := s.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", key, err)
	}

	defer func() {
		_ = object.Close()
	}()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", key, err)
	}

	return data, nil
}
