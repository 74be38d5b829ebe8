package temporal

import (
	"fmt"

	"go.temporal.io/sdk/log"
	"go.uber.org/zap"
)

// ZapLoggerAdapter adapts zap.Logger to Temporal's log.Logger interface
type ZapLoggerAdapter struct {
	logger *zap.Logger
}

// NewZapLoggerAdapter creates a new zap logger adapter for Temporal
func NewZapLoggerAdapter(logger *zap.Logger) log.Logger {
	return &ZapLoggerAdapter{logger: logger}
}

func (z *ZapLoggerAdapter) Debug(msg string, keyvals ...interface{}) {
	z.logger.Debug(msg, convertKeyvalsToFields(keyvals...)...)
}

func (z *ZapLoggerAdapter) Info(msg string, keyvals ...interface{}) {
	z.logger.Info(msg, convertKeyvalsToFields(keyvals...)...)
}

func (z *ZapLoggerAdapter) Warn(msg string, keyvals ...interface{}) {
	z.logger.Warn(msg, convertKeyvalsToFields(keyvals...)...)
}

func (z *ZapLoggerAdapter) Error(msg string, keyvals ...interface{}) {
	z.logger.Error(msg, convertKeyvalsToFields(keyvals...)...)
}

// convertKeyvalsToFields converts Temporal's key1, val1, key2, val2, ...
// pairs into zap fields. A trailing key without a value is kept with a nil
// value rather than dropped.
func convertKeyvalsToFields(keyvals ...interface{}) []zap.Field {
	fields := make([]zap.Field, 0, (len(keyvals)+1)/2)
	for i := 0; i < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", keyvals[i])
		}
		if i+1 < len(keyvals) {
			fields = append(fields, zap.Any(key, keyvals[i+1]))
		} else {
			fields = append(fields, zap.Any(key, nil))
		}
	}
	return fields
}
