package localefixture

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Encode writes the snapshot to w in the given format.
// Alias order is preserved, so the output can be read back with Parse or LoadFS
// to obtain an identical snapshot.
func (s *Snapshot) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatYAML:
		return s.encodeYAML(w)
	case FormatJSON:
		return s.encodeJSON(w)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func (s *Snapshot) encodeYAML(w io.Writer) error {
	locales := &yaml.Node{Kind: yaml.SequenceNode}
	for _, id := range s.locales {
		locales.Content = append(locales.Content, quoted(id))
	}

	aliases := &yaml.Node{Kind: yaml.MappingNode}
	for _, a := range s.aliases {
		aliases.Content = append(aliases.Content, quoted(a.Alias), quoted(a.Canonical))
	}

	root := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			plain("version"), quoted(s.version),
			plain("locales"), locales,
			plain("aliases"), aliases,
		},
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return enc.Close()
}

func plain(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

// quoted forces double quotes: bare "no" or "on" read back as booleans in YAML 1.1 parsers.
func quoted(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v, Style: yaml.DoubleQuotedStyle}
}

func (s *Snapshot) encodeJSON(w io.Writer) error {
	var buf bytes.Buffer

	buf.WriteString("{\n  \"version\": ")
	writeJSONString(&buf, s.version)

	buf.WriteString(",\n  \"locales\": [")
	for i, id := range s.locales {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString("\n    ")
		writeJSONString(&buf, id)
	}
	if len(s.locales) > 0 {
		buf.WriteString("\n  ")
	}

	buf.WriteString("],\n  \"aliases\": {")
	for i, a := range s.aliases {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString("\n    ")
		writeJSONString(&buf, a.Alias)
		buf.WriteString(": ")
		writeJSONString(&buf, a.Canonical)
	}
	if len(s.aliases) > 0 {
		buf.WriteString("\n  ")
	}
	buf.WriteString("}\n}\n")

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, v string) {
	// Marshaling a string cannot fail.
	data, _ := json.Marshal(v)
	buf.Write(data)
}
