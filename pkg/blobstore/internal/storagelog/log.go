package storagelog

import (
	"go.uber.org/zap"
)

// headMsg is a distinctive part of all messages.
const headMsg = "blob storage operation"

// Write writes message about blob storage operation to logger.
func Write(logger *zap.Logger, fields ...zap.Field) {
	logger.Info(headMsg, fields...)
}

// FileField returns logger's field for the database file.
func FileField(f interface{ String() string }) zap.Field {
	return zap.Stringer("file", f)
}

// PathField returns logger's field for the blob path.
func PathField(p string) zap.Field {
	return zap.String("path", p)
}

// OpField returns logger's field for operation type.
func OpField(op string) zap.Field {
	return zap.String("op", op)
}
