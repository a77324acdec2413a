package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kalimdor-ml/kalimdor/internal/tensor"
)

// Format represents a serialized tensor format.
type Format int

// Supported formats.
const (
	FormatUnknown Format = iota
	FormatJSON
	FormatYAML
	FormatCSV
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "JSON"
	case FormatYAML:
		return "YAML"
	case FormatCSV:
		return "CSV"
	default:
		return "Unknown"
	}
}

// DetectFormat picks a format from the file extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".csv":
		return FormatCSV
	default:
		return FormatUnknown
	}
}

// ParseJSON decodes a JSON document into a Value.
func ParseJSON(data []byte) (tensor.Value, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return tensor.Value{}, fmt.Errorf("parse json: %w", err)
	}
	return tensor.FromAny(raw)
}

// ParseYAML decodes a YAML document into a Value. Mappings are rejected
// with a TypeContractError.
func ParseYAML(data []byte) (tensor.Value, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return tensor.Value{}, fmt.Errorf("parse yaml: %w", err)
	}
	return tensor.FromAny(raw)
}

// LoadFile reads a tensor from path, auto-detecting the format from the
// extension. CSV files are loaded as a rank-2 table using opts.
func LoadFile(path string, opts CSVOptions) (tensor.Value, error) {
	format := DetectFormat(path)
	if format == FormatUnknown {
		return tensor.Value{}, fmt.Errorf("unsupported file format: %s", path)
	}

	f, err := os.Open(path) //nolint:gosec // G304: path is user-provided by design
	if err != nil {
		return tensor.Value{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	if format == FormatCSV {
		table, err := ReadCSVTable(f, opts)
		if err != nil {
			return tensor.Value{}, err
		}
		return table.Values, nil
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return tensor.Value{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if format == FormatJSON {
		return ParseJSON(data)
	}
	return ParseYAML(data)
}
