package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidPrice       = errors.New("cylinder price must be greater than zero")
	ErrEmptyName          = errors.New("name must not be empty")
	ErrNoDeliveries       = errors.New("no deliveries found for this date")
	ErrUnsupportedFormat  = errors.New("unsupported export format")
	ErrStorageUnavailable = errors.New("object storage is not configured")
	ErrUploadFailed       = errors.New("upload to object storage failed")
)
