package fieldmeta

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-outputfield/pkg/binding"
)

const (
	displayTypeExtensionKey  = "x-display-type"
	relationshipExtensionKey = "x-relationship"
	labelFieldExtensionKey   = "x-label-field"
	labelExtensionKey        = "x-label"

	relationshipNameAttr      = "name"
	relationshipNameFieldAttr = "nameField"

	defaultNameField = "Name"
)

// FromOpenAPI builds a catalog from the object schemas declared under
// components.schemas. Each property becomes a field whose display type is
// taken from x-display-type or derived from the schema type and format.
// Properties that reference another object schema become reference fields
// named after the property, using the target's x-label-field (or "Name") as
// the name field. Inline properties can declare the linkage explicitly with
// x-relationship: {name, nameField}.
func FromOpenAPI(ctx context.Context, raw []byte) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("fieldmeta: openapi document is empty")
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx

	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("fieldmeta: load openapi document: %w", err)
	}

	catalog := NewCatalog()
	if spec.Components == nil || len(spec.Components.Schemas) == 0 {
		return catalog, nil
	}

	for objectName, ref := range spec.Components.Schemas {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if ref == nil || ref.Value == nil || len(ref.Value.Properties) == 0 {
			continue
		}
		for propName, prop := range ref.Value.Properties {
			meta := metadataFromProperty(propName, prop)
			if err := catalog.Add(objectName, propName, meta); err != nil {
				return nil, err
			}
		}
	}

	return catalog, nil
}

func metadataFromProperty(name string, ref *openapi3.SchemaRef) binding.FieldMetadata {
	meta := binding.FieldMetadata{Name: name}
	if ref == nil {
		meta.DisplayType = binding.DisplayTypeString
		return meta
	}

	// A $ref property carries the target schema; its extensions describe the
	// related object, not this field.
	if isObjectReference(ref) {
		meta.DisplayType = binding.DisplayTypeReference
		meta.RelationshipName = name
		meta.RelationshipNameField = stringExtension(ref.Value.Extensions, labelFieldExtensionKey)
		if meta.RelationshipNameField == "" {
			meta.RelationshipNameField = defaultNameField
		}
		return meta
	}

	meta.DisplayType = deriveDisplayType(ref.Value)

	var ext map[string]any
	if ref.Value != nil {
		ext = ref.Value.Extensions
		meta.Label = stringExtension(ext, labelExtensionKey)
	}

	if rel := relationshipExtension(ext); len(rel) > 0 {
		if value := rel[relationshipNameAttr]; value != "" {
			meta.RelationshipName = value
		}
		if value := rel[relationshipNameFieldAttr]; value != "" {
			meta.RelationshipNameField = value
		}
		if meta.RelationshipNameField == "" && meta.RelationshipName != "" {
			meta.RelationshipNameField = defaultNameField
		}
		if meta.DisplayType != binding.DisplayTypeReference && meta.RelationshipName != "" {
			meta.DisplayType = binding.DisplayTypeReference
		}
	}

	if explicit := stringExtension(ext, displayTypeExtensionKey); explicit != "" {
		meta.DisplayType = binding.NormalizeDisplayType(explicit)
	}

	return meta
}

func isObjectReference(ref *openapi3.SchemaRef) bool {
	if ref == nil || ref.Ref == "" || ref.Value == nil {
		return false
	}
	return ref.Value.Type.Is(openapi3.TypeObject) || len(ref.Value.Properties) > 0
}

func deriveDisplayType(schema *openapi3.Schema) binding.DisplayType {
	if schema == nil {
		return binding.DisplayTypeString
	}

	switch {
	case schema.Type.Is(openapi3.TypeInteger):
		return binding.DisplayTypeInteger
	case schema.Type.Is(openapi3.TypeNumber):
		return binding.DisplayTypeDouble
	case schema.Type.Is(openapi3.TypeBoolean):
		return binding.DisplayTypeBoolean
	case schema.Type.Is(openapi3.TypeArray):
		if schema.Items != nil && schema.Items.Value != nil && len(schema.Items.Value.Enum) > 0 {
			return binding.DisplayTypeMultiPicklist
		}
		return binding.DisplayTypeString
	}

	switch strings.ToLower(schema.Format) {
	case "date":
		return binding.DisplayTypeDate
	case "date-time":
		return binding.DisplayTypeDateTime
	case "time":
		return binding.DisplayTypeTime
	case "email":
		return binding.DisplayTypeEmail
	case "uri", "url":
		return binding.DisplayTypeURL
	case "uuid":
		return binding.DisplayTypeID
	}

	if len(schema.Enum) > 0 {
		return binding.DisplayTypePicklist
	}
	return binding.DisplayTypeString
}

func stringExtension(ext map[string]any, key string) string {
	if len(ext) == 0 {
		return ""
	}
	value, ok := ext[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}

func relationshipExtension(ext map[string]any) map[string]string {
	if len(ext) == 0 {
		return nil
	}
	raw, ok := ext[relationshipExtensionKey].(map[string]any)
	if !ok {
		return nil
	}
	result := make(map[string]string, len(raw))
	for key, value := range raw {
		if str, ok := value.(string); ok && strings.TrimSpace(str) != "" {
			result[key] = strings.TrimSpace(str)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
