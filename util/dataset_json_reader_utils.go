package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"

	"dorm-finder/models"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ValidateJSON checks data against the JSON schema stored at schemaPath in fsys.
func ValidateJSON(fsys fs.FS, schemaPath string, data []byte) error {
	schemaData, err := fs.ReadFile(fsys, schemaPath)
	if err != nil {
		return fmt.Errorf("failed to read schema %q: %w", schemaPath, err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaPath, bytes.NewReader(schemaData)); err != nil {
		return fmt.Errorf("failed to add schema resource %q: %w", schemaPath, err)
	}
	schema, err := compiler.Compile(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to compile schema %q: %w", schemaPath, err)
	}

	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("document is not valid JSON: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}
	return nil
}

// ReadBuildingFeaturesFromJSON loads and validates the campus building outlines.
func ReadBuildingFeaturesFromJSON(fsys fs.FS, filePath, schemaPath string) (*models.FeatureCollection, error) {
	data, err := fs.ReadFile(fsys, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	if err := ValidateJSON(fsys, schemaPath, data); err != nil {
		return nil, fmt.Errorf("invalid building features %q: %w", filePath, err)
	}
	var fc models.FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal FeatureCollection: %w", err)
	}
	return &fc, nil
}

// ReadBuildingInfoFromJSON loads and validates the building info table.
func ReadBuildingInfoFromJSON(fsys fs.FS, filePath, schemaPath string) ([]models.BuildingInfo, error) {
	data, err := fs.ReadFile(fsys, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	if err := ValidateJSON(fsys, schemaPath, data); err != nil {
		return nil, fmt.Errorf("invalid building info %q: %w", filePath, err)
	}
	var infos []models.BuildingInfo
	if err := json.Unmarshal(data, &infos); err != nil {
		return nil, fmt.Errorf("failed to unmarshal BuildingInfo: %w", err)
	}
	return infos, nil
}
