// Package render turns tree nodes into text, JSON or YAML. The TUI and the
// tree subcommand share it.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	lgtree "github.com/charmbracelet/lipgloss/tree"
	"sigs.k8s.io/yaml"

	"github.com/renato0307/kflux/internal/tree"
)

// Format selects an output encoding
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts text, json and yaml ("" means text)
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
	}
}

// Options tunes Text output
type Options struct {
	// ExpandAll prints children of collapsed nodes too
	ExpandAll bool
	Styles    Styles
}

// Option mutates Options
type Option func(*Options)

func WithExpandAll() Option {
	return func(o *Options) { o.ExpandAll = true }
}

func WithStyles(s Styles) Option {
	return func(o *Options) { o.Styles = s }
}

func newOptions(opts []Option) Options {
	o := Options{Styles: PlainStyles()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Line renders one node as a single row: glyph, label and description
func Line(n *tree.Node, styles Styles) string {
	var b strings.Builder

	if g := Glyph(n.Icon); g != "" {
		glyphStyle := styles.Label
		switch {
		case n.Icon == tree.IconWarning:
			glyphStyle = styles.Warning
		case n.Flux:
			glyphStyle = styles.Flux
		}
		b.WriteString(glyphStyle.Render(g))
		b.WriteString(" ")
	}

	label := styles.Label
	if n.Current {
		label = styles.Current
	}
	b.WriteString(label.Render(n.Label))

	if n.Current {
		b.WriteString(styles.Current.Render(" *"))
	}
	if n.Description != "" {
		b.WriteString(" ")
		b.WriteString(styles.Description.Render(n.Description))
	}
	return b.String()
}

// Text renders the forest with box-drawing branches. Children of collapsed
// nodes are left out unless ExpandAll is set.
func Text(nodes []*tree.Node, opts ...Option) string {
	o := newOptions(opts)
	if len(nodes) == 0 {
		return ""
	}

	root := lgtree.New().
		Enumerator(lgtree.RoundedEnumerator).
		EnumeratorStyle(o.Styles.Enumerator)
	for _, n := range nodes {
		root.Child(subtree(n, o))
	}
	return root.String()
}

func subtree(n *tree.Node, o Options) any {
	line := Line(n, o.Styles)
	if len(n.Children) == 0 || (!n.IsExpanded() && !o.ExpandAll) {
		return line
	}

	t := lgtree.Root(line).
		Enumerator(lgtree.RoundedEnumerator).
		EnumeratorStyle(o.Styles.Enumerator)
	for _, c := range n.Children {
		t.Child(subtree(c, o))
	}
	return t
}

// Tooltip renders tooltip rows as a two-column table
func Tooltip(tip tree.Tooltip, styles Styles) string {
	if len(tip) == 0 {
		return ""
	}

	rows := make([][]string, 0, len(tip))
	for _, f := range tip {
		rows = append(rows, []string{f.Name, f.Value})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.Border).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.Header.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("Property", "Value").
		Rows(rows...).
		String()
}

// JSON encodes the forest with two-space indentation
func JSON(nodes []*tree.Node) ([]byte, error) {
	if nodes == nil {
		nodes = []*tree.Node{}
	}
	out, err := json.MarshalIndent(nodes, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode nodes as json: %w", err)
	}
	return append(out, '\n'), nil
}

// YAML encodes the forest through its JSON form so field names match
func YAML(nodes []*tree.Node) ([]byte, error) {
	if nodes == nil {
		nodes = []*tree.Node{}
	}
	out, err := yaml.Marshal(nodes)
	if err != nil {
		return nil, fmt.Errorf("failed to encode nodes as yaml: %w", err)
	}
	return out, nil
}

// Write encodes nodes in format f to w
func Write(w io.Writer, f Format, nodes []*tree.Node, opts ...Option) error {
	var out []byte
	var err error

	switch f {
	case FormatJSON:
		out, err = JSON(nodes)
	case FormatYAML:
		out, err = YAML(nodes)
	default:
		text := Text(nodes, opts...)
		if text != "" {
			text += "\n"
		}
		out = []byte(text)
	}
	if err != nil {
		return err
	}

	_, err = w.Write(out)
	return err
}
