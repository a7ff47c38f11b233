package store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"speaker/config"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStore keeps audio files as objects in a public-read bucket.
type MinioStore struct {
	Client  *minio.Client
	bucket  string
	prefix  string
	baseURL string
}

func NewMinioStore(c *config.Config) (*MinioStore, error) {
	client, err := minio.New(c.Oss.EndPoint, &minio.Options{
		Creds:  credentials.NewStaticV4(c.Oss.AccessKey, c.Oss.SecretKey, ""),
		Secure: c.Oss.Secure,
	})
	if err != nil {
		return nil, fmt.Errorf("minio new client: %w", err)
	}
	s := newMinioStore(client, c.Oss.BucketName, c.Oss.Prefix, c.Storage.BaseURL)

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("bucket check: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("make bucket: %w", err)
		}
	}
	publicReadPolicy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
		  {
			"Effect": "Allow",
			"Principal": {"AWS": "*"},
			"Action": ["s3:GetObject"],
			"Resource": ["arn:aws:s3:::%s/*"]
		  }
		]
	  }`, s.bucket)
	if err := client.SetBucketPolicy(ctx, s.bucket, publicReadPolicy); err != nil {
		return nil, fmt.Errorf("set policy: %w", err)
	}
	return s, nil
}

func newMinioStore(client *minio.Client, bucket, prefix, baseURL string) *MinioStore {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" && client != nil {
		baseURL = client.EndpointURL().String() + "/" + bucket
	}
	return &MinioStore{
		Client:  client,
		bucket:  bucket,
		prefix:  strings.Trim(prefix, "/"),
		baseURL: baseURL,
	}
}

func (s *MinioStore) object(name string) string {
	if s.prefix == "" {
		return name
	}
	return s.prefix + "/" + name
}

func isNoSuchKey(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}

func (s *MinioStore) Stat(ctx context.Context, name string) (time.Time, bool, error) {
	info, err := s.Client.StatObject(ctx, s.bucket, s.object(name), minio.StatObjectOptions{})
	if err != nil {
		if isNoSuchKey(err) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("stat %s: %w", name, err)
	}
	return info.LastModified, true, nil
}

// Write with appendTo reads the current object back and uploads the
// concatenation, objects cannot be appended in place.
func (s *MinioStore) Write(ctx context.Context, name string, data []byte, appendTo bool) error {
	if appendTo {
		existing, err := s.read(ctx, name)
		if err != nil {
			return err
		}
		data = append(existing, data...)
	}
	_, err := s.Client.PutObject(ctx, s.bucket, s.object(name), bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "audio/mpeg"})
	if err != nil {
		return fmt.Errorf("upload %s: %w", name, err)
	}
	return nil
}

func (s *MinioStore) read(ctx context.Context, name string) ([]byte, error) {
	obj, err := s.Client.GetObject(ctx, s.bucket, s.object(name), minio.GetObjectOptions{})
	if err != nil {
		if isNoSuchKey(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", name, err)
	}
	defer obj.Close()
	b, err := io.ReadAll(obj)
	if err != nil {
		if isNoSuchKey(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return b, nil
}

func (s *MinioStore) Delete(ctx context.Context, name string) error {
	if err := s.Client.RemoveObject(ctx, s.bucket, s.object(name), minio.RemoveObjectOptions{}); err != nil && !isNoSuchKey(err) {
		return fmt.Errorf("remove %s: %w", name, err)
	}
	return nil
}

func (s *MinioStore) URL(name string) string {
	return s.baseURL + "/" + s.object(name)
}
