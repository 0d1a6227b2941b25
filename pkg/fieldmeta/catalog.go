package fieldmeta

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-outputfield/pkg/binding"
)

var (
	// ErrObjectNotFound is returned when a catalog has no entry for an object.
	ErrObjectNotFound = errors.New("fieldmeta: object not found")
	// ErrFieldNotFound is returned when an object has no entry for a field.
	ErrFieldNotFound = errors.New("fieldmeta: field not found")
)

// Catalog holds field metadata grouped by object name. Lookups are exact;
// keys are trimmed when the catalog is built.
type Catalog struct {
	objects map[string]map[string]binding.FieldMetadata
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{objects: make(map[string]map[string]binding.FieldMetadata)}
}

// Add registers metadata for object.field. Empty keys and duplicates are
// rejected so files cannot silently shadow each other.
func (c *Catalog) Add(object, field string, meta binding.FieldMetadata) error {
	if c == nil {
		return errors.New("fieldmeta: catalog is nil")
	}
	object = strings.TrimSpace(object)
	field = strings.TrimSpace(field)
	if object == "" {
		return errors.New("fieldmeta: object name is empty")
	}
	if field == "" {
		return fmt.Errorf("fieldmeta: object %q defines an empty field name", object)
	}

	fields, ok := c.objects[object]
	if !ok {
		fields = make(map[string]binding.FieldMetadata)
		c.objects[object] = fields
	}
	if _, exists := fields[field]; exists {
		return fmt.Errorf("fieldmeta: duplicate field %q on object %q", field, object)
	}

	fields[field] = normalizeMetadata(field, meta)
	return nil
}

// Field returns the metadata registered for object.field.
func (c *Catalog) Field(object, field string) (binding.FieldMetadata, error) {
	if c == nil {
		return binding.FieldMetadata{}, fmt.Errorf("%w: %s", ErrObjectNotFound, object)
	}
	fields, ok := c.objects[object]
	if !ok {
		return binding.FieldMetadata{}, fmt.Errorf("%w: %s", ErrObjectNotFound, object)
	}
	meta, ok := fields[field]
	if !ok {
		return binding.FieldMetadata{}, fmt.Errorf("%w: %s.%s", ErrFieldNotFound, object, field)
	}
	return meta, nil
}

// Fields lists the field names for object in sorted order.
func (c *Catalog) Fields(object string) []string {
	if c == nil {
		return nil
	}
	fields, ok := c.objects[object]
	if !ok {
		return nil
	}
	return sortedKeys(fields)
}

// Objects lists the object names in sorted order.
func (c *Catalog) Objects() []string {
	if c == nil {
		return nil
	}
	return sortedKeys(c.objects)
}

// Empty reports whether the catalog holds any field.
func (c *Catalog) Empty() bool {
	return c == nil || len(c.objects) == 0
}

func normalizeMetadata(field string, meta binding.FieldMetadata) binding.FieldMetadata {
	meta.DisplayType = binding.NormalizeDisplayType(string(meta.DisplayType))
	if meta.DisplayType == "" {
		meta.DisplayType = binding.DisplayTypeString
	}
	meta.RelationshipName = strings.TrimSpace(meta.RelationshipName)
	meta.RelationshipNameField = strings.TrimSpace(meta.RelationshipNameField)
	meta.Label = strings.TrimSpace(meta.Label)
	if strings.TrimSpace(meta.Name) == "" {
		meta.Name = field
	}
	return meta
}

func sortedKeys[V any](m map[string]V) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
