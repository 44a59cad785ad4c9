package formatter

import (
	"sort"
	"strings"

	"github.com/arthur-debert/streamprinter/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// StyleSpec describes a named style: foreground, background and options.
// Every field is optional.
type StyleSpec struct {
	Foreground string   `koanf:"foreground" toml:"foreground,omitempty" yaml:"foreground,omitempty"`
	Background string   `koanf:"background" toml:"background,omitempty" yaml:"background,omitempty"`
	Options    []string `koanf:"options" toml:"options,omitempty" yaml:"options,omitempty"`
}

// StyleTable maps style names to their descriptors
type StyleTable map[string]StyleSpec

// Clone returns a deep copy of the table. A nil table clones to an empty one.
func (t StyleTable) Clone() StyleTable {
	out := make(StyleTable, len(t))
	for name, spec := range t {
		out[name] = spec.clone()
	}
	return out
}

// Names returns the style names in sorted order
func (t StyleTable) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge returns a copy of t with every entry of other applied on top
func (t StyleTable) Merge(other StyleTable) StyleTable {
	out := t.Clone()
	for name, spec := range other {
		out[name] = spec.clone()
	}
	return out
}

func (s StyleSpec) clone() StyleSpec {
	if s.Options != nil {
		s.Options = append([]string(nil), s.Options...)
	}
	return s
}

// StyleFromList builds a StyleSpec from a positional descriptor: index 0 is
// the foreground, index 1 the background and index 2 a comma separated
// option set. Missing or empty positions are left unset; extra positions
// are ignored.
func StyleFromList(fields []string) StyleSpec {
	var spec StyleSpec
	if len(fields) > 0 {
		spec.Foreground = strings.TrimSpace(fields[0])
	}
	if len(fields) > 1 {
		spec.Background = strings.TrimSpace(fields[1])
	}
	if len(fields) > 2 {
		spec.Options = splitOptions(fields[2])
	}
	return spec
}

// ParseStyleDefinition parses "name=fg:bg:options", the form accepted on
// the command line. Options are comma separated; every part after the name
// may be empty.
func ParseStyleDefinition(def string) (string, StyleSpec, error) {
	name, descriptor, found := strings.Cut(def, "=")
	name = strings.ToLower(strings.TrimSpace(name))
	if !found || name == "" {
		return "", StyleSpec{}, errors.Newf(errors.ErrStyleInvalid, "style definition %q must look like name=fg:bg:options", def).
			WithDetail("definition", def)
	}
	return name, StyleFromList(strings.Split(descriptor, ":")), nil
}

// String renders the style in the name=fg:bg:options descriptor form, without the name
func (s StyleSpec) String() string {
	return strings.TrimRight(s.Foreground+":"+s.Background+":"+strings.Join(s.Options, ","), ":")
}

// UnmarshalYAML accepts both the mapping form and the list form
func (s *StyleSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var fields []string
		if err := node.Decode(&fields); err != nil {
			return err
		}
		*s = StyleFromList(fields)
		return nil
	}

	type plain StyleSpec
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*s = StyleSpec(p)
	s.Options = normalizeOptions(s.Options)
	return nil
}

// DefaultStyles returns the styles every formatter starts with
func DefaultStyles() StyleTable {
	return StyleTable{
		"error":    {Foreground: "white", Background: "red"},
		"info":     {Foreground: "green"},
		"comment":  {Foreground: "yellow"},
		"question": {Foreground: "black", Background: "cyan"},
	}
}

// build converts a spec into a lipgloss style bound to r
func (s StyleSpec) build(r *lipgloss.Renderer) lipgloss.Style {
	style := r.NewStyle().TabWidth(lipgloss.NoTabConversion)

	if color, ok := resolveColor(s.Foreground); ok {
		style = style.Foreground(color)
	}
	if color, ok := resolveColor(s.Background); ok {
		style = style.Background(color)
	}
	for _, opt := range normalizeOptions(s.Options) {
		style = applyOption(style, opt)
	}

	return style
}

func splitOptions(s string) []string {
	var out []string
	for _, opt := range strings.Split(s, ",") {
		if opt = strings.ToLower(strings.TrimSpace(opt)); opt != "" {
			out = append(out, opt)
		}
	}
	return out
}

func normalizeOptions(opts []string) []string {
	var out []string
	for _, opt := range opts {
		out = append(out, splitOptions(opt)...)
	}
	return out
}
