package fieldmeta

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-outputfield/pkg/binding"
)

// LoaderOption customises Load.
type LoaderOption func(*loaderConfig)

type loaderConfig struct {
	fs fs.FS
}

// WithFS configures the filesystem used by SourceFromFS sources.
func WithFS(fsys fs.FS) LoaderOption {
	return func(cfg *loaderConfig) {
		cfg.fs = fsys
	}
}

type documentFile struct {
	Objects map[string]objectFile `json:"objects" yaml:"objects"`
}

type objectFile struct {
	Fields map[string]binding.FieldMetadata `json:"fields" yaml:"fields"`
}

// LoadFS walks fsys and merges every JSON/YAML catalog file it finds. When
// fsys is nil or holds no catalog files the returned catalog is empty.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	catalog := NewCatalog()
	if fsys == nil {
		return catalog, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isCatalogFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("fieldmeta: read %s: %w", path, err)
		}
		return mergeDocument(catalog, data, path)
	})
	if err != nil {
		return nil, err
	}

	return catalog, nil
}

// Load reads a single catalog document from src.
func Load(ctx context.Context, src Source, opts ...LoaderOption) (*Catalog, error) {
	if src == nil {
		return nil, errors.New("fieldmeta: source is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := loaderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	data, err := readSource(cfg, src)
	if err != nil {
		return nil, err
	}
	return Parse(data, src.Location())
}

// Parse builds a catalog from a single JSON or YAML payload. source is only
// used in error messages.
func Parse(data []byte, source string) (*Catalog, error) {
	catalog := NewCatalog()
	if err := mergeDocument(catalog, data, source); err != nil {
		return nil, err
	}
	return catalog, nil
}

func readSource(cfg loaderConfig, src Source) ([]byte, error) {
	location := src.Location()
	if location == "" {
		return nil, errors.New("fieldmeta: source location is empty")
	}

	switch src.Kind() {
	case SourceKindFile:
		data, err := os.ReadFile(location)
		if err != nil {
			return nil, fmt.Errorf("fieldmeta: read %s: %w", location, err)
		}
		return data, nil
	case SourceKindFS:
		if cfg.fs == nil {
			return nil, errors.New("fieldmeta: filesystem is not configured")
		}
		data, err := fs.ReadFile(cfg.fs, location)
		if err != nil {
			return nil, fmt.Errorf("fieldmeta: read %s: %w", location, err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("fieldmeta: unsupported source kind %q", src.Kind())
	}
}

func mergeDocument(catalog *Catalog, data []byte, source string) error {
	doc, err := parseDocument(data, source)
	if err != nil {
		return err
	}

	for objectName, object := range doc.Objects {
		if strings.TrimSpace(objectName) == "" {
			return fmt.Errorf("fieldmeta: file %s defines an empty object name", source)
		}
		for fieldName, meta := range object.Fields {
			if err := catalog.Add(objectName, fieldName, meta); err != nil {
				return fmt.Errorf("%w (file %s)", err, source)
			}
		}
	}
	return nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("fieldmeta: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	// YAML accepts JSON too, so its error is the one worth reporting.
	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return documentFile{}, fmt.Errorf("fieldmeta: parse %s: %w", source, err)
	}
	return doc, nil
}

func isCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
