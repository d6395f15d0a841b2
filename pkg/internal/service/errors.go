package service

import (
	"errors"
	"fmt"
)

var (
	// ErrRecordNotFound 元数据记录不存在.
	ErrRecordNotFound = errors.New("file record not found")
	// ErrFileMissing 记录存在但物理文件缺失.
	ErrFileMissing = errors.New("file missing on disk")
	// ErrUnauthenticated 需要身份但请求未携带.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden 身份有效但权限不足.
	ErrForbidden = errors.New("access denied")
)

// ValidationError 输入校验失败，handler 映射为 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidationError 判断是否为输入校验错误.
func IsValidationError(err error) bool {
	var ve *ValidationError

	return errors.As(err, &ve)
}
