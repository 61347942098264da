package ports

import (
	"context"
	"time"
)

// FileStorage : внешнее хранилище файлов отчётов
type FileStorage interface {
	UploadObject(ctx context.Context, key string, body []byte, contentType string) error
	GeneratePresignedGetURL(ctx context.Context, key string, expire time.Duration) (string, error)
	DeleteObject(ctx context.Context, key string) error
}
