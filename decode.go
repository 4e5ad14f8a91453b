package localefixture

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// document is the decoded, not yet validated form of a snapshot file.
type document struct {
	version string
	locales []string
	aliases []Alias
}

// Parse decodes and validates a snapshot document.
// The format defaults to YAML; use WithFormat to read JSON.
//
// Example document:
//
//	version: "2024-01"
//	locales: [en, en_GB, zh_Hans_CN]
//	aliases:
//	  zh_CN: zh_Hans_CN
func Parse(data []byte, opts ...Option) (*Snapshot, error) {
	cfg, err := newLoadConfig(opts)
	if err != nil {
		return nil, err
	}
	if cfg.format == "" {
		cfg.format = FormatYAML
	}
	return decode(data, cfg)
}

// LoadFS reads and validates the snapshot stored at name in fsys.
// The format is taken from the file extension (.yaml, .yml or .json)
// unless WithFormat is given.
func LoadFS(fsys fs.FS, name string, opts ...Option) (*Snapshot, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", name, err)
	}
	return load(name, data, opts)
}

// LoadFile reads and validates the snapshot stored at path on the local filesystem.
func LoadFile(path string, opts ...Option) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return load(path, data, opts)
}

func load(name string, data []byte, opts []Option) (*Snapshot, error) {
	cfg, err := newLoadConfig(opts)
	if err != nil {
		return nil, err
	}
	if cfg.format == "" {
		if cfg.format, err = formatFromPath(name); err != nil {
			return nil, err
		}
	}

	s, err := decode(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", name, err)
	}
	return s, nil
}

func decode(data []byte, cfg *loadConfig) (*Snapshot, error) {
	var (
		doc document
		err error
	)
	switch cfg.format {
	case FormatYAML:
		doc, err = decodeYAML(data)
	case FormatJSON:
		doc, err = decodeJSON(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, cfg.format)
	}
	if err != nil {
		return nil, err
	}

	s, err := New(doc.version, doc.locales, doc.aliases)
	if err != nil {
		return nil, err
	}

	cfg.logger.Debug("snapshot loaded",
		slog.String("format", string(cfg.format)),
		slog.String("version", s.Version()),
		slog.Int("locales", len(s.locales)),
		slog.Int("aliases", len(s.aliases)),
		slog.Int("root_locales", len(s.roots)),
	)

	return s, nil
}

type yamlDocument struct {
	Version string    `yaml:"version"`
	Locales []string  `yaml:"locales"`
	Aliases yaml.Node `yaml:"aliases"`
}

func decodeYAML(data []byte) (document, error) {
	var raw yamlDocument

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return document{}, fmt.Errorf("%w: empty document", ErrInvalidSnapshot)
		}
		return document{}, fmt.Errorf("%w: %s", ErrInvalidSnapshot, err)
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return document{}, fmt.Errorf("%w: more than one document", ErrInvalidSnapshot)
	}

	aliases, err := yamlAliases(&raw.Aliases)
	if err != nil {
		return document{}, err
	}

	return document{version: raw.Version, locales: raw.Locales, aliases: aliases}, nil
}

// yamlAliases walks the mapping node directly so that document order is kept
// and repeated keys reach validation instead of being merged.
func yamlAliases(node *yaml.Node) ([]Alias, error) {
	if node.Kind == 0 || node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: aliases must be a mapping", ErrInvalidSnapshot, node.Line)
	}

	aliases := make([]Alias, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d: alias entries must be scalar pairs", ErrInvalidSnapshot, key.Line)
		}
		aliases = append(aliases, Alias{Alias: key.Value, Canonical: value.Value})
	}
	return aliases, nil
}

type jsonDocument struct {
	Version string          `json:"version"`
	Locales []string        `json:"locales"`
	Aliases json.RawMessage `json:"aliases"`
}

func decodeJSON(data []byte) (document, error) {
	var raw jsonDocument

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return document{}, fmt.Errorf("%w: empty document", ErrInvalidSnapshot)
		}
		return document{}, fmt.Errorf("%w: %s", ErrInvalidSnapshot, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return document{}, fmt.Errorf("%w: trailing data after document", ErrInvalidSnapshot)
	}

	aliases, err := jsonAliases(raw.Aliases)
	if err != nil {
		return document{}, err
	}

	return document{version: raw.Version, locales: raw.Locales, aliases: aliases}, nil
}

// jsonAliases reads the aliases object token by token; decoding into a map
// would lose key order and silently drop repeated keys.
func jsonAliases(raw json.RawMessage) ([]Alias, error) {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSnapshot, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: aliases must be an object", ErrInvalidSnapshot)
	}

	var aliases []Alias
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidSnapshot, err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected token %v in aliases", ErrInvalidSnapshot, tok)
		}

		var value string
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("%w: alias %q: %s", ErrInvalidSnapshot, key, err)
		}
		aliases = append(aliases, Alias{Alias: key, Canonical: value})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSnapshot, err)
	}

	return aliases, nil
}
