package logger

import (
	"time"

	"go.uber.org/zap"
)

// Field type alias for convenience
type Field = zap.Field

// Common field constructors - re-exported from zap for convenience

// String constructs a field with the given key and value
func String(key string, val string) Field {
	return zap.String(key, val)
}

// Strings constructs a field with the given key and slice of strings
func Strings(key string, val []string) Field {
	return zap.Strings(key, val)
}

// Int constructs a field with the given key and value
func Int(key string, val int) Field {
	return zap.Int(key, val)
}

// Int64 constructs a field with the given key and value
func Int64(key string, val int64) Field {
	return zap.Int64(key, val)
}

// Bool constructs a field with the given key and value
func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

// Time constructs a field with the given key and value
func Time(key string, val time.Time) Field {
	return zap.Time(key, val)
}

// Duration constructs a field with the given key and value
func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}

// Error constructs a field that lazily stores err.Error() under the key "error"
func Error(err error) Field {
	return zap.Error(err)
}

// Any takes a key and an arbitrary value and chooses the best way to represent them
func Any(key string, val interface{}) Field {
	return zap.Any(key, val)
}

// HTTP request related fields

// RequestID constructs a field for request ID
func RequestID(id string) Field {
	return String("request_id", id)
}

// Method constructs a field for HTTP method
func Method(method string) Field {
	return String("method", method)
}

// Path constructs a field for URL path
func Path(path string) Field {
	return String("path", path)
}

// Query constructs a field for URL query string
func Query(q string) Field {
	return String("query", q)
}

// StatusCode constructs a field for HTTP status code
func StatusCode(code int) Field {
	return Int("status_code", code)
}

// Latency constructs a field for request latency
func Latency(d time.Duration) Field {
	return Duration("latency", d)
}

// ClientIP constructs a field for client IP address
func ClientIP(ip string) Field {
	return String("client_ip", ip)
}

// TraceID constructs a field for a distributed trace ID
func TraceID(id string) Field {
	return String("trace_id", id)
}

// SpanID constructs a field for a trace span ID
func SpanID(id string) Field {
	return String("span_id", id)
}

// ByteString constructs a field with UTF-8 encoded bytes
func ByteString(key string, val []byte) Field {
	return zap.ByteString(key, val)
}

// Component constructs a field for component name
func Component(name string) Field {
	return String("component", name)
}

// Domain fields

// Username constructs a field for the summary owner's username
func Username(name string) Field {
	return String("username", name)
}

// Date constructs a field for a YYYY-MM-DD work-log date
func Date(date string) Field {
	return String("date", date)
}

// Repository constructs a field for repository name
func Repository(name string) Field {
	return String("repository", name)
}

// Commit constructs a field for commit hash
func Commit(hash string) Field {
	return String("commit", hash)
}

// Folder constructs a field for a scanned folder path
func Folder(path string) Field {
	return String("folder", path)
}
