package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldAction is the structured log field key for the executed action name.
	FieldAction = "action"
	// FieldSession is the structured log field key for the conversation session id.
	FieldSession = "session_id"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// A nil logger is replaced with a no-op logger.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// ActionFields returns the fields that identify one action run within a session.
func ActionFields(action, sessionID string) []zap.Field {
	return StringFields(
		StringField{Key: FieldAction, Value: action},
		StringField{Key: FieldSession, Value: sessionID},
	)
}

// ForAction attaches the action and session fields to the provided logger.
func ForAction(logger *zap.Logger, action, sessionID string) *zap.Logger {
	return WithFields(logger, ActionFields(action, sessionID)...)
}
