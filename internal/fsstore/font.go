package fsstore

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"golang.org/x/image/font/sfnt"
)

// Sentinel errors for store operations.
var (
	// ErrInvalidPath indicates a path that is not a valid fs.FS path
	// (absolute, containing "..", or a trailing slash).
	ErrInvalidPath = errors.New("invalid font path")

	// ErrUnsupportedFormat indicates a file without a .ttf or .otf extension.
	ErrUnsupportedFormat = errors.New("unsupported font format")

	// ErrFontRead indicates an I/O error while reading a font file.
	ErrFontRead = errors.New("failed to read font")

	// ErrFontParse indicates the file is not a valid font.
	ErrFontParse = errors.New("failed to parse font")

	// ErrFolderRead indicates the folder could not be listed.
	ErrFolderRead = errors.New("failed to read font folder")

	// ErrNotFound indicates an unknown ID, or a folder ID where a font was expected.
	ErrNotFound = errors.New("font not found")

	// ErrNotReady indicates the font is still loading.
	ErrNotReady = errors.New("font still loading")
)

// HasFontExtension reports whether p ends in .ttf or .otf, ignoring case.
func HasFontExtension(p string) bool {
	lower := strings.ToLower(p)
	return strings.HasSuffix(lower, ".ttf") || strings.HasSuffix(lower, ".otf")
}

// ValidateFontPath checks that p is a valid fs.FS path with a font extension.
func ValidateFontPath(p string) error {
	if !fs.ValidPath(p) || p == "." {
		return fmt.Errorf("%w: %q", ErrInvalidPath, p)
	}
	if !HasFontExtension(p) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, p)
	}
	return nil
}

// ParseFromFS reads and decodes the font at p and returns it with its
// full name. The name falls back to the family name, then to p.
func ParseFromFS(fsys fs.FS, p string) (*sfnt.Font, string, error) {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrFontRead, err)
	}

	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %q: %v", ErrFontParse, p, err)
	}

	var buf sfnt.Buffer
	for _, id := range []sfnt.NameID{sfnt.NameIDFull, sfnt.NameIDFamily} {
		if name, err := f.Name(&buf, id); err == nil && name != "" {
			return f, name, nil
		}
	}
	return f, p, nil
}
