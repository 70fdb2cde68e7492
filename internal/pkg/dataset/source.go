package dataset

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
)

// ErrMissing 数据源缺少某张表
var ErrMissing = errors.New("dataset input missing")

// Source 外部数据源，按表类型提供 CSV 内容
type Source interface {
	// Name 数据来源标识，例如 upload / dir / minio / http
	Name() string
	// Open 打开某张表，不存在时返回 ErrMissing
	Open(ctx context.Context, kind Kind) (io.ReadCloser, error)
}

// ReaderSource 内存中的 CSV 内容，用于浏览器上传
type ReaderSource struct {
	name  string
	files map[Kind][]byte
}

func NewReaderSource(name string, files map[Kind][]byte) *ReaderSource {
	return &ReaderSource{name: name, files: files}
}

func (s *ReaderSource) Name() string {
	return s.name
}

func (s *ReaderSource) Open(_ context.Context, kind Kind) (io.ReadCloser, error) {
	b, ok := s.files[kind]
	if !ok || b == nil {
		return nil, ErrMissing
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

// DirSource 本地目录下的 influencers.csv / posts.csv / campaigns.csv / payouts.csv
type DirSource struct {
	dir string
}

func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

func (s *DirSource) Name() string {
	return "dir"
}

func (s *DirSource) Open(_ context.Context, kind Kind) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.dir, kind.FileName()))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrMissing
		}
		return nil, err
	}
	return f, nil
}
