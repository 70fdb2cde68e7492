package service

import (
	"errors"
)

const (
	BadRequest          = 400
	NotFound            = 404
	RequestTooLarge     = 413
	InternalServerError = 500
)

var (
	ErrParamInvalid       = errors.New("参数错误")
	ErrSessionMissing     = errors.New("会话不存在")
	ErrExportNotFound     = errors.New("导出表不存在")
	ErrExportFormat       = errors.New("不支持的导出格式")
	ErrFileTooLarge       = errors.New("上传文件过大")
	ErrFileNotSupported   = errors.New("不支持的文件类型")
	ErrSessionStoreFailed = errors.New("会话保存失败")
	UnExpectedError       = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:       BadRequest,
	ErrSessionMissing:     BadRequest,
	ErrExportNotFound:     NotFound,
	ErrExportFormat:       BadRequest,
	ErrFileTooLarge:       RequestTooLarge,
	ErrFileNotSupported:   BadRequest,
	ErrSessionStoreFailed: InternalServerError,
	UnExpectedError:       InternalServerError,
}
