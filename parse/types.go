package parse

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnknownFormat indicates a file extension did not match any supported
// format and no explicit format override was given.
var ErrUnknownFormat = errors.New("parse: unrecognized format")

// ParseError mirrors package flow's EdgeError: a plain value carrying just
// enough context (source path, message) for the CLI to report it and
// exit 1.
type ParseError struct {
	Path    string
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse: %s: %s", e.Path, e.Message)
}

// newParseError wraps cause with path context.
func newParseError(path string, cause error) *ParseError {
	return &ParseError{Path: path, Message: cause.Error()}
}

// Format tags a supported input encoding.
type Format int

const (
	// FormatJSON is encoding/json.
	FormatJSON Format = iota
	// FormatYAML is gopkg.in/yaml.v3.
	FormatYAML
	// FormatXML is encoding/xml.
	FormatXML
	// FormatCSV is encoding/csv.
	FormatCSV
)

// String renders the format's CLI flag spelling.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatXML:
		return "xml"
	case FormatCSV:
		return "csv"
	default:
		return "unknown"
	}
}

// ParseFormat maps a CLI flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "xml":
		return FormatXML, nil
	case "csv":
		return FormatCSV, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// DetectFormat infers a Format from path's extension.
func DetectFormat(path string) (Format, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return 0, fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}

	return ParseFormat(ext)
}
