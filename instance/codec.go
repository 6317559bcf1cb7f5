package instance

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies an instance file encoding.
type Format int

// Supported encodings.
const (
	JSON Format = iota // encoding/json
	YAML               // gopkg.in/yaml.v3
	TOML               // github.com/BurntSushi/toml
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks the format from the file extension:
// .json, .yaml/.yml, .toml (case-insensitive).
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Decode reads a File in format f. Unknown fields are rejected in every
// format. Unnamed instances are named "instance-<i>".
func Decode(r io.Reader, f Format) (File, error) {
	var (
		file File
		err  error
	)
	switch f {
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&file)
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&file)
	case TOML:
		var md toml.MetaData
		md, err = toml.NewDecoder(r).Decode(&file)
		if err == nil {
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				err = fmt.Errorf("unknown field %q", undecoded[0].String())
			}
		}
	default:
		return File{}, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}

	switch {
	case errors.Is(err, io.EOF):
		return File{}, ErrNoInstances
	case err != nil:
		return File{}, fmt.Errorf("%w: %s: %v", ErrMalformed, f, err)
	}
	if err = file.normalize(); err != nil {
		return File{}, err
	}

	return file, nil
}

// Encode writes file in format f.
func Encode(w io.Writer, f Format, file File) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(file)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(file); err != nil {
			return err
		}
		return enc.Close()
	case TOML:
		return toml.NewEncoder(w).Encode(file)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

// Load reads the instance file at path; the format follows the extension.
func Load(path string) (File, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return File{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("load %s: %w", path, err)
	}
	file, err := Decode(bytes.NewReader(data), f)
	if err != nil {
		return File{}, fmt.Errorf("load %s: %w", path, err)
	}

	return file, nil
}

// Save writes file to path in the format implied by the extension.
func Save(path string, file File) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err = Encode(&buf, f, file); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err = os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	return nil
}
