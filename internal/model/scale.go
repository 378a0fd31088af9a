package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ScaleEntry is one key of a scalar token scale.
type ScaleEntry struct {
	Key   string
	Value string
	// Numeric entries were JSON numbers (e.g. zIndex) and are written back as numbers.
	Numeric bool
}

// Scale is a JSON object of scalar tokens that keeps the document's key
// order. Nested objects, arrays, booleans and nulls are skipped on decode:
// structurally different sub-objects (spacing.semantic) are read by the
// owning type instead.
type Scale []ScaleEntry

func (s Scale) Get(key string) (string, bool) {
	for _, e := range s {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// Value returns the value for key or "".
func (s Scale) Value(key string) string {
	v, _ := s.Get(key)
	return v
}

// ValueOr returns the value for key or fallback when absent or empty.
func (s Scale) ValueOr(key, fallback string) string {
	if v, ok := s.Get(key); ok && v != "" {
		return v
	}
	return fallback
}

// Set replaces the value of key in place or appends it.
func (s *Scale) Set(key, value string) {
	for i := range *s {
		if (*s)[i].Key == key {
			(*s)[i].Value = value
			(*s)[i].Numeric = false
			return
		}
	}
	*s = append(*s, ScaleEntry{Key: key, Value: value})
}

// SetDefault sets key only when it is absent.
func (s *Scale) SetDefault(key, value string) {
	if _, ok := s.Get(key); !ok {
		*s = append(*s, ScaleEntry{Key: key, Value: value})
	}
}

func (s Scale) Keys() []string {
	keys := make([]string, len(s))
	for i, e := range s {
		keys[i] = e.Key
	}
	return keys
}

func (s Scale) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := e.valueJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (e ScaleEntry) valueJSON() ([]byte, error) {
	if e.Numeric {
		return []byte(e.Value), nil
	}
	return json.Marshal(e.Value)
}

func (s *Scale) UnmarshalJSON(data []byte) error {
	entries, err := decodeOrderedObject(data)
	if err != nil {
		return err
	}
	out := make(Scale, 0, len(entries))
	for _, e := range entries {
		if entry, ok := scalarEntry(e.key, e.raw); ok {
			out = append(out, entry)
		}
	}
	*s = out
	return nil
}

type rawEntry struct {
	key string
	raw json.RawMessage
}

// decodeOrderedObject splits a JSON object into its members in document order.
// A JSON null decodes to no entries.
func decodeOrderedObject(data []byte) ([]rawEntry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	var entries []rawEntry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", keyTok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decoding %q: %w", key, err)
		}
		entries = append(entries, rawEntry{key: key, raw: raw})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return entries, nil
}

func scalarEntry(key string, raw json.RawMessage) (ScaleEntry, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ScaleEntry{}, false
	}
	switch c := trimmed[0]; {
	case c == '"':
		var v string
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return ScaleEntry{}, false
		}
		return ScaleEntry{Key: key, Value: v}, true
	case c == '-' || (c >= '0' && c <= '9'):
		if _, err := strconv.ParseFloat(string(trimmed), 64); err != nil {
			return ScaleEntry{}, false
		}
		return ScaleEntry{Key: key, Value: string(trimmed), Numeric: true}, true
	}
	return ScaleEntry{}, false
}

// CSSValue is a scalar token that may arrive as a JSON string or number
// (fontWeight: 600, lineHeight: 1.5). It always marshals as a string.
type CSSValue string

func (v *CSSValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*v = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*v = CSSValue(s)
		return nil
	}
	if _, err := strconv.ParseFloat(string(trimmed), 64); err != nil {
		return fmt.Errorf("css value must be a string or number: %s", trimmed)
	}
	*v = CSSValue(trimmed)
	return nil
}

func (v CSSValue) String() string {
	return string(v)
}

// Or returns v, or fallback when v is empty.
func (v CSSValue) Or(fallback string) string {
	if v == "" {
		return fallback
	}
	return string(v)
}

// SpacingGroup is one named group of semantic spacing tokens
// ("component": {"sm": ..., "md": ...}).
type SpacingGroup struct {
	Name   string
	Values Scale
}

// SemanticSpacing is the nested spacing.semantic section. Scalar members
// directly under "semantic" land in a group with an empty name.
type SemanticSpacing []SpacingGroup

func (s SemanticSpacing) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	write := func(key string, value []byte) {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, _ := json.Marshal(key)
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(value)
	}
	for _, g := range s {
		if g.Name == "" {
			for _, e := range g.Values {
				val, err := e.valueJSON()
				if err != nil {
					return nil, err
				}
				write(e.Key, val)
			}
			continue
		}
		v, err := g.Values.MarshalJSON()
		if err != nil {
			return nil, err
		}
		write(g.Name, v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s *SemanticSpacing) UnmarshalJSON(data []byte) error {
	entries, err := decodeOrderedObject(data)
	if err != nil {
		return err
	}
	var out SemanticSpacing
	var loose Scale
	for _, e := range entries {
		trimmed := bytes.TrimSpace(e.raw)
		if len(trimmed) > 0 && trimmed[0] == '{' {
			var values Scale
			if err := values.UnmarshalJSON(trimmed); err != nil {
				return fmt.Errorf("semantic spacing %q: %w", e.key, err)
			}
			out = append(out, SpacingGroup{Name: e.key, Values: values})
			continue
		}
		if entry, ok := scalarEntry(e.key, trimmed); ok {
			loose = append(loose, entry)
		}
	}
	if len(loose) > 0 {
		out = append(SemanticSpacing{{Values: loose}}, out...)
	}
	*s = out
	return nil
}

// Spacing is the scalar spacing scale plus the optional semantic block,
// which shares the same JSON object ("spacing": {"xs": ..., "semantic": {...}}).
type Spacing struct {
	Scale    Scale
	Semantic SemanticSpacing
}

func (s Spacing) MarshalJSON() ([]byte, error) {
	scale, err := s.Scale.MarshalJSON()
	if err != nil {
		return nil, err
	}
	if len(s.Semantic) == 0 {
		return scale, nil
	}
	semantic, err := s.Semantic.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.Write(scale[:len(scale)-1])
	if len(s.Scale) > 0 {
		buf.WriteByte(',')
	}
	buf.WriteString(`"semantic":`)
	buf.Write(semantic)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s *Spacing) UnmarshalJSON(data []byte) error {
	if err := s.Scale.UnmarshalJSON(data); err != nil {
		return err
	}
	var nested struct {
		Semantic SemanticSpacing `json:"semantic"`
	}
	if err := json.Unmarshal(data, &nested); err != nil {
		return err
	}
	s.Semantic = nested.Semantic
	return nil
}
