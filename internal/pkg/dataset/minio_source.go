package dataset

import (
	"context"
	"io"
	"path"

	"github.com/minio/minio-go/v7"
)

// MinioSource 从对象存储读取四张表，对象名为 <prefix>/<kind>.csv
type MinioSource struct {
	client *minio.Client
	bucket string
	prefix string
}

func NewMinioSource(client *minio.Client, bucket, prefix string) *MinioSource {
	return &MinioSource{client: client, bucket: bucket, prefix: prefix}
}

func (s *MinioSource) Name() string {
	return "minio"
}

func (s *MinioSource) Open(ctx context.Context, kind Kind) (io.ReadCloser, error) {
	objectName := path.Join(s.prefix, kind.FileName())
	if _, err := s.client.StatObject(ctx, s.bucket, objectName, minio.StatObjectOptions{}); err != nil {
		if code := minio.ToErrorResponse(err).Code; code == "NoSuchKey" || code == "NoSuchBucket" {
			return nil, ErrMissing
		}
		return nil, err
	}
	obj, err := s.client.GetObject(ctx, s.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	return obj, nil
}
