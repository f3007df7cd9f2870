// Package patch implements sparse, field-level overrides of configuration
// values relative to their compiled-in defaults.
//
// Each configuration type pairs with a hand-written patch struct holding one
// pointer per field; a nil pointer means the field is absent. Diff and Apply
// are explicit per-type routines built from DiffField and ApplyField, so no
// runtime reflection is involved in deciding what differs.
package patch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Patch is the sparse form of a configuration value T.
type Patch[T any] interface {
	// Apply returns a copy of base with every present field overwritten.
	Apply(base T) T
	// IsEmpty reports whether no field is present.
	IsEmpty() bool
}

// DiffField records value in *dst when it differs from base.
func DiffField[V comparable](dst **V, value, base V) {
	if value == base {
		*dst = nil
		return
	}
	v := value
	*dst = &v
}

// ApplyField overwrites *dst with *src when src is present.
func ApplyField[V any](dst *V, src *V) {
	if src != nil {
		*dst = *src
	}
}

// Kind describes one configuration type: its name, how to build its default
// and how to diff a value against a base.
type Kind[T any, P Patch[T]] struct {
	Name    string
	Default func() T
	Diff    func(value, base T) P
}

// DiffDefault returns the patch that turns the default into value.
func (k Kind[T, P]) DiffDefault(value T) P {
	return k.Diff(value, k.Default())
}

// Resolve applies p onto a fresh default.
func (k Kind[T, P]) Resolve(p P) T {
	return p.Apply(k.Default())
}

// Decode parses a patch file and applies it onto the default.
func (k Kind[T, P]) Decode(source string, data []byte) (T, error) {
	p, err := Parse[P](source, data)
	if err != nil {
		var zero T
		return zero, err
	}
	return k.Resolve(p), nil
}

// Encode serializes the difference between value and the default.
func (k Kind[T, P]) Encode(value T) ([]byte, error) {
	return Serialize(k.Name, k.DiffDefault(value))
}

// DecodeLegacy parses a legacy full-value file.
func (k Kind[T, P]) DecodeLegacy(source string, data []byte) (T, error) {
	return ParseLegacy(source, data, k.Default())
}

// Parse decodes a TOML patch. Unknown keys are ignored and empty input yields
// the empty patch.
func Parse[P any](source string, data []byte) (P, error) {
	var p P
	if len(bytes.TrimSpace(data)) == 0 {
		return p, nil
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		var zero P
		return zero, newTOMLParseError(source, err)
	}
	return p, nil
}

// Serialize encodes p as TOML, one field per line in declaration order,
// preceded by a comment naming the kind.
func Serialize[P any](kind string, p P) ([]byte, error) {
	var body bytes.Buffer
	enc := toml.NewEncoder(&body)
	enc.SetIndentTables(true)
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("encode %s patch: %w", kind, err)
	}
	var out bytes.Buffer
	fmt.Fprintf(&out, "# lazyhf %s patch: only values that differ from the defaults are listed.\n", kind)
	out.Write(body.Bytes())
	if out.Len() == 0 || out.Bytes()[out.Len()-1] != '\n' {
		out.WriteByte('\n')
	}
	return out.Bytes(), nil
}

// ParseLegacy decodes the legacy full-value format: a JSON object carrying
// every field of T. A missing field is an error; unknown fields are ignored.
// The field set is taken from the JSON form of template.
func ParseLegacy[T any](source string, data []byte, template T) (T, error) {
	var zero T
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return zero, &ParseError{Source: source, Format: "legacy", Message: err.Error(), Err: err}
	}
	required, err := fieldNames(template)
	if err != nil {
		return zero, err
	}
	var missing []string
	for _, name := range required {
		if _, ok := raw[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return zero, &ParseError{
			Source:  source,
			Format:  "legacy",
			Message: "missing fields: " + strings.Join(missing, ", "),
			Err:     ErrIncomplete,
		}
	}
	value := template
	if err := json.Unmarshal(data, &value); err != nil {
		return zero, &ParseError{Source: source, Format: "legacy", Message: err.Error(), Err: err}
	}
	return value, nil
}

// EncodeLegacy writes value in the legacy full-value format.
func EncodeLegacy[T any](value T) ([]byte, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// ErrIncomplete marks a legacy file that does not carry every field.
var ErrIncomplete = errors.New("incomplete value")

func fieldNames[T any](template T) ([]string, error) {
	data, err := json.Marshal(template)
	if err != nil {
		return nil, fmt.Errorf("describe fields: %w", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("describe fields: %w", err)
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
