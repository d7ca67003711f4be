// Package constants provides shared constants used throughout the apiflags codebase.
// This includes timeouts, limits, file permissions, and other configuration values
// that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultTimeout is the standard timeout for general operations
	DefaultTimeout = 10 * time.Second

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 10 * time.Minute
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Buffer constants define buffer sizes for file scanning and writing
const (
	// ScannerBufferSize is the initial buffer size for line scanners
	ScannerBufferSize = 64 * 1024

	// MaxLineBytes is the maximum length of a single input line.
	// Dex signatures for generated classes can run very long.
	MaxLineBytes = 1024 * 1024

	// WriteBufferSize is the default buffer size for write operations
	WriteBufferSize = 4096
)

// List file format constants
const (
	// CommentPrefix marks a line in a flat list file as a comment
	CommentPrefix = "#"

	// FieldSeparator separates the entry and its tags in a CSV row
	FieldSeparator = ","

	// GzipExtension marks an input file as gzip-compressed
	GzipExtension = ".gz"
)

// Path constants
const (
	// DefaultConfigName is the base name of the configuration file
	DefaultConfigName = ".apiflags"

	// DefaultConfigType is the format of the configuration file
	DefaultConfigType = "yaml"
)

// Format constants
const (
	// TimeFormatISO8601 is the ISO 8601 time format
	TimeFormatISO8601 = time.RFC3339

	// TimeFormatLog is the format used in log files
	TimeFormatLog = "2006-01-02 15:04:05.000"

	// TimeFormatFilename is the format used in generated filenames
	TimeFormatFilename = "20060102-150405"
)
