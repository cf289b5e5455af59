package fontload

import (
	"errors"
	"fmt"
	"path"

	"github.com/alnah/go-fontload/internal/config"
)

// DefaultFolder is the folder fonts are loaded from when none is configured.
const DefaultFolder = "fonts"

// AssetPaths declares where fonts are loaded from.
//
// Without a file list, the whole folder is loaded in bulk. With a file
// list, each entry is loaded individually as Folder/entry, in order.
// An empty list is not the same as no list: it selects per-file loading
// with nothing to load.
type AssetPaths struct {
	folder   string
	files    []string
	hasFiles bool
}

// PathOption configures AssetPaths.
type PathOption func(*AssetPaths)

// NewAssetPaths creates AssetPaths using DefaultFolder and no file list.
func NewAssetPaths(opts ...PathOption) *AssetPaths {
	p := &AssetPaths{folder: DefaultFolder}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WithFolder sets the source folder. An empty path keeps DefaultFolder.
// The folder is cleaned, so "fonts/" and "./fonts" both mean "fonts".
func WithFolder(dir string) PathOption {
	return func(p *AssetPaths) {
		if dir != "" {
			p.folder = path.Clean(dir)
		}
	}
}

// WithFiles sets the explicit file list, relative to the folder.
// Calling it with no arguments selects per-file loading of zero files.
// Entries are kept as given; the store is asked for the cleaned
// path.Join(folder, entry), so "./a.ttf" and "a.ttf" request the same file.
func WithFiles(files ...string) PathOption {
	return func(p *AssetPaths) {
		p.files = append(make([]string, 0, len(files)), files...)
		p.hasFiles = true
	}
}

// Folder returns the source folder.
func (p *AssetPaths) Folder() string {
	return p.folder
}

// Files returns a copy of the explicit file list and whether one is set.
func (p *AssetPaths) Files() ([]string, bool) {
	if !p.hasFiles {
		return nil, false
	}
	return append(make([]string, 0, len(p.files)), p.files...), true
}

// LoadAssetPaths loads AssetPaths from a YAML file path or config name.
// A config name is searched as name.yaml and name.yml in the current
// directory, then in the user config directory under go-fontload/.
//
// Recognized keys:
//
//	folder: fonts       # optional, defaults to DefaultFolder
//	files:              # optional; present (even as []) selects per-file loading
//	  - FiraMono.ttf
func LoadAssetPaths(nameOrPath string) (*AssetPaths, error) {
	cfg, err := config.LoadConfig(nameOrPath)
	if err != nil {
		return nil, convertConfigError(err)
	}
	return assetPathsFromConfig(cfg), nil
}

// AssetPathsFromEnv builds AssetPaths from FONTLOAD_CONFIG, FONTLOAD_FOLDER
// and FONTLOAD_FILES (comma separated). Variables override the config file.
func AssetPathsFromEnv() (*AssetPaths, error) {
	cfg, err := config.FromEnv(nil)
	if err != nil {
		return nil, convertConfigError(err)
	}
	return assetPathsFromConfig(cfg), nil
}

func assetPathsFromConfig(cfg *config.Config) *AssetPaths {
	opts := []PathOption{WithFolder(cfg.Folder)}
	if cfg.HasFiles() {
		opts = append(opts, WithFiles(cfg.FileList()...))
	}
	return NewAssetPaths(opts...)
}

// convertConfigError maps internal config errors to public errors.
func convertConfigError(err error) error {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return fmt.Errorf("%w: %v", ErrConfigNotFound, err)
	case errors.Is(err, config.ErrEmptyConfigName),
		errors.Is(err, config.ErrConfigParse),
		errors.Is(err, config.ErrFieldTooLong),
		errors.Is(err, config.ErrTooManyFiles),
		errors.Is(err, config.ErrInputTooLarge):
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	default:
		return err
	}
}
