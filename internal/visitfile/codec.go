package visitfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/mrsinham/visitnote/internal/form"
)

// Format is a visit file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported visit file extension %q (valid: .yaml, .yml, .toml)", filepath.Ext(path))
	}
}

// Encode serializes a form.
func Encode(s form.State, format Format) ([]byte, error) {
	doc := FromState(s)
	var buf bytes.Buffer

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return nil, fmt.Errorf("encoding toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	return buf.Bytes(), nil
}

// Decode parses a document and replays it onto an empty form.
// Unknown keys are rejected so that typos do not silently drop data.
func Decode(data []byte, format Format) (form.State, error) {
	var doc Document

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return form.State{}, fmt.Errorf("%w: %w", ErrInvalidVisit, err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return form.State{}, fmt.Errorf("%w: %w", ErrInvalidVisit, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return form.State{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidVisit, strings.Join(keys, ", "))
		}
	default:
		return form.State{}, fmt.Errorf("unsupported format %q", format)
	}

	return doc.State()
}

// Load reads a visit file.
func Load(path string) (form.State, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return form.State{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return form.State{}, fmt.Errorf("reading visit file: %w", err)
	}

	s, err := Decode(data, format)
	if err != nil {
		return form.State{}, fmt.Errorf("loading %s: %w", path, err)
	}
	return s, nil
}

// Save writes a visit file and returns the number of bytes written.
func Save(path string, s form.State) (int, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return 0, err
	}

	data, err := Encode(s, format)
	if err != nil {
		return 0, err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, fmt.Errorf("creating directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return 0, fmt.Errorf("writing visit file: %w", err)
	}
	return len(data), nil
}
