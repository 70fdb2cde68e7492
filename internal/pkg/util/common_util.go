package util

import (
	"errors"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
)

var ErrFileTooLarge = errors.New("file exceeds size limit")

// csvExts 允许上传的扩展名，无扩展名时按 CSV 处理
var csvExts = map[string]struct{}{
	"":     {},
	".csv": {},
	".txt": {},
}

// IsCSVFile 按扩展名判断
func IsCSVFile(filename string) bool {
	_, ok := csvExts[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// ReadFormFile 读取上传文件，超过 maxSize 返回 ErrFileTooLarge
func ReadFormFile(file *multipart.FileHeader, maxSize int64) ([]byte, error) {
	if maxSize > 0 && file.Size > maxSize {
		return nil, ErrFileTooLarge
	}
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	r := io.Reader(f)
	if maxSize > 0 {
		r = io.LimitReader(f, maxSize+1)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if maxSize > 0 && int64(len(b)) > maxSize {
		return nil, ErrFileTooLarge
	}
	return b, nil
}
