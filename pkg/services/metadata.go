package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/timrosenblatt/org/pkg/models"
)

// DecodeMetadata parses a metadata descriptor. The format follows the
// collection's extension: yml/yaml, toml or json.
func DecodeMetadata(content []byte, ext string) (models.Metadata, error) {
	var meta models.Metadata
	switch ext {
	case "yml", "yaml":
		if err := yaml.Unmarshal(content, &meta); err != nil {
			return models.Metadata{}, err
		}
	case "toml":
		if err := toml.Unmarshal(content, &meta); err != nil {
			return models.Metadata{}, err
		}
	case "json":
		if err := json.Unmarshal(content, &meta); err != nil {
			return models.Metadata{}, err
		}
	default:
		return models.Metadata{}, fmt.Errorf("unsupported metadata format: %s", ext)
	}
	return meta, nil
}

func EncodeMetadata(meta models.Metadata, ext string) ([]byte, error) {
	var buf bytes.Buffer
	switch ext {
	case "yml", "yaml":
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(meta); err != nil {
			return nil, err
		}
	case "toml":
		enc := toml.NewEncoder(&buf)
		if err := enc.Encode(meta); err != nil {
			return nil, err
		}
	case "json":
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(meta); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported metadata format: %s", ext)
	}
	return buf.Bytes(), nil
}

// LoadMetadata reads and decodes a slug's descriptor from a collection.
func LoadMetadata(root string, c models.Collection, slug string) (models.Metadata, error) {
	content, err := os.ReadFile(filepath.Join(root, c.File(slug)))
	if err != nil {
		return models.Metadata{}, err
	}
	return DecodeMetadata(content, c.Extension)
}
