package dictionary

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// FileFormat represents different seed list formats
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatText               // one term per line
	FormatMsgpack            // msgpack array of strings
)

var (
	// ErrUnknownFormat is returned for files no format claims.
	ErrUnknownFormat = errors.New("unknown seed file format")
	// ErrNoSeedFiles is returned when a directory holds no seed files.
	ErrNoSeedFiles = errors.New("no seed files found")
)

// FormatInfo contains metadata about a seed file format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatText: {
		Format:      FormatText,
		Description: "Plain Text Word List",
		Extensions:  []string{".txt", ".lst"},
	},
	FormatMsgpack: {
		Format:      FormatMsgpack,
		Description: "MessagePack Word List",
		Extensions:  []string{".msgpack", ".mpk"},
	},
}

func (f FileFormat) String() string {
	if info, ok := GetFormatInfo(f); ok {
		return info.Description
	}
	return "Unknown"
}

// DetectFileFormat picks the format of filename from its extension.
func DetectFileFormat(filename string) (FileFormat, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for format, info := range supportedFormats {
		for _, e := range info.Extensions {
			if e == ext {
				return format, nil
			}
		}
	}
	return FormatUnknown, fmt.Errorf("%s: %w (supported: %s)",
		filename, ErrUnknownFormat, strings.Join(SupportedExtensions(), ", "))
}

// ValidateFileFormat checks that filename exists, is a regular file and
// carries an extension of the expected format. Empty files are valid.
func ValidateFileFormat(filename string, expected FileFormat) error {
	fileInfo, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}
	if !fileInfo.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", filename)
	}

	got, err := DetectFileFormat(filename)
	if err != nil {
		return err
	}
	if got != expected {
		return fmt.Errorf("file %s is %s, expected %s", filename, got, expected)
	}

	log.Debugf("Seed file %s validated as %s (%d bytes)", filename, got, fileInfo.Size())
	return nil
}

// GetFormatInfo returns information about a specific format
func GetFormatInfo(format FileFormat) (FormatInfo, bool) {
	info, exists := supportedFormats[format]
	return info, exists
}

// SupportedExtensions returns every extension a seed file may carry
func SupportedExtensions() []string {
	var exts []string
	for _, f := range []FileFormat{FormatText, FormatMsgpack} {
		exts = append(exts, supportedFormats[f].Extensions...)
	}
	return exts
}
