package vartext

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Values file extensions recognized by LoadValuesFile
const (
	ExtJSON = ".json"
	ExtYAML = ".yaml"
	ExtYML  = ".yml"
	ExtTOML = ".toml"
)

// LoadValues decodes a JSON, YAML or TOML document whose top level is a
// mapping. JSON numbers keep their literal text.
func LoadValues(r io.Reader, format string) (MapResolver, error) {
	var doc any
	switch strings.ToLower(format) {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, NewValuesError(ErrMsgDecodeValues, format, err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, NewValuesError(ErrMsgDecodeValues, format, err)
		}
	case FormatTOML:
		table := make(map[string]any)
		if _, err := toml.NewDecoder(r).Decode(&table); err != nil {
			return nil, NewValuesError(ErrMsgDecodeValues, format, err)
		}
		doc = table
	default:
		return nil, NewValuesError(ErrMsgUnknownFormat, format, nil)
	}

	if doc == nil {
		return MapResolver{}, nil
	}
	values, ok := asMap(doc)
	if !ok {
		return nil, NewValuesError(ErrMsgValuesNotAMapping, format, nil)
	}
	return MapResolver(values), nil
}

// LoadValuesFile reads a values file, choosing the format by extension.
func LoadValuesFile(path string) (MapResolver, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, NewValuesError(ErrMsgDecodeValues, format, err)
	}
	defer f.Close()
	return LoadValues(f, format)
}

// FormatForPath maps a file extension to a values format.
func FormatForPath(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ExtJSON:
		return FormatJSON, nil
	case ExtYAML, ExtYML:
		return FormatYAML, nil
	case ExtTOML:
		return FormatTOML, nil
	default:
		return "", NewValuesError(ErrMsgUnknownFormat, ext, nil)
	}
}
