package testsupport

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/goliatone/go-outputfield/pkg/fieldmeta"
	"github.com/goliatone/go-outputfield/pkg/record"
)

// Fixture returns the absolute path of a file under testsupport/testdata so
// tests in other packages can share the same fixtures.
func Fixture(name string) string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "testdata", name)
}

// LoadRecord reads a JSON record fixture without requiring testing.T.
func LoadRecord(path string) (record.Record, error) {
	if path == "" {
		return nil, errors.New("testsupport: record path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read record: %w", err)
	}
	rec, err := record.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("testsupport: parse record: %w", err)
	}
	return rec, nil
}

// MustLoadRecord loads a JSON record fixture, failing the test on error.
func MustLoadRecord(t *testing.T, path string) record.Record {
	t.Helper()

	rec, err := LoadRecord(path)
	if err != nil {
		t.Fatalf("load record: %v", err)
	}
	return rec
}

// MustLoadCatalog loads a catalog fixture, failing the test on error.
func MustLoadCatalog(t *testing.T, path string) *fieldmeta.Catalog {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read catalog: %v", err)
	}
	catalog, err := fieldmeta.Parse(data, path)
	if err != nil {
		t.Fatalf("parse catalog: %v", err)
	}
	return catalog
}
