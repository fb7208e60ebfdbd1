package corpus

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/yanqian/faqbot/internal/domain/faq"
)

const maxObjectBytes = 8 << 20

// ObjectOptions locate the corpus in an S3-compatible bucket.
type ObjectOptions struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Key       string
	Region    string
}

// ObjectSource reads a JSON or YAML corpus object via the S3 API.
type ObjectSource struct {
	client *minio.Client
	bucket string
	key    string
}

// NewObjectSource builds the minio client. The scheme of Endpoint decides TLS.
func NewObjectSource(opts ObjectOptions) (*ObjectSource, error) {
	endpoint := strings.TrimSpace(opts.Endpoint)
	useSSL := !strings.HasPrefix(strings.ToLower(endpoint), "http://")
	endpoint = strings.TrimPrefix(strings.TrimPrefix(endpoint, "https://"), "http://")
	endpoint = strings.TrimSuffix(endpoint, "/")
	client, err := minio.New(endpoint, &minio.Options{
		Creds:        credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure:       useSSL,
		Region:       opts.Region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("init object storage client: %w", err)
	}
	return &ObjectSource{client: client, bucket: opts.Bucket, key: opts.Key}, nil
}

// Load implements faq.CorpusSource.
func (s *ObjectSource) Load(ctx context.Context) ([]faq.Record, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get faq object %s/%s: %w", s.bucket, s.key, err)
	}
	defer obj.Close()
	data, err := io.ReadAll(io.LimitReader(obj, maxObjectBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read faq object %s/%s: %w", s.bucket, s.key, err)
	}
	if len(data) > maxObjectBytes {
		return nil, fmt.Errorf("faq object %s/%s exceeds %d bytes", s.bucket, s.key, maxObjectBytes)
	}
	return decodeRecords(data, formatFor(s.key))
}

var _ faq.CorpusSource = (*ObjectSource)(nil)
