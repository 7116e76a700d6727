package snapshot

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/schematica/internal/world"
)

// Component is one component of a captured entity.
type Component struct {
	Type  string
	Value Value
}

// Node is a captured entity and its subtree.
type Node struct {
	Entity     world.Entity
	Components []Component // ordered by Type
	Children   []*Node     // in attach order
}

// Capture walks the hierarchy under root and converts every component.
func Capture(w *world.World, root world.Entity) (*Node, error) {
	if !w.Alive(root) {
		return nil, fmt.Errorf("entity %s is not alive", root)
	}

	n := &Node{Entity: root}
	for _, c := range w.Components(root) {
		typ := world.TypeName(reflect.TypeOf(c))
		v, err := FromGo(c)
		if err != nil {
			return nil, fmt.Errorf("entity %s component %s: %w", root, typ, err)
		}
		n.Components = append(n.Components, Component{Type: typ, Value: v})
	}
	for _, child := range w.Children(root) {
		cn, err := Capture(w, child)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, cn)
	}
	return n, nil
}

// Count returns the number of entities in the subtree, n included.
func (n *Node) Count() int {
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}

// Component returns the captured value of the component named typ.
func (n *Node) Component(typ string) (Value, bool) {
	for _, c := range n.Components {
		if c.Type == typ {
			return c.Value, true
		}
	}
	return nil, false
}

// Value converts the subtree into an Object of the form
//
//	{"entity": "0v0", "components": {"pkg.T": ...}, "children": [...]}
func (n *Node) Value() Object {
	comps := make(Object, len(n.Components))
	for _, c := range n.Components {
		comps[c.Type] = c.Value
	}
	children := make(Array, len(n.Children))
	for i, c := range n.Children {
		children[i] = c.Value()
	}
	return Object{
		"entity":     String(n.Entity.String()),
		"components": comps,
		"children":   children,
	}
}

// MarshalCanonical encodes the subtree as canonical JSON.
func (n *Node) MarshalCanonical() ([]byte, error) {
	return MarshalCanonical(n.Value())
}

// MarshalYAML implements yaml.Marshaler.
func (n *Node) MarshalYAML() (any, error) {
	return ToGo(n.Value()), nil
}

// EncodeYAML writes the subtree to w as YAML.
func (n *Node) EncodeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(n); err != nil {
		return err
	}
	return enc.Close()
}

// WriteText writes an indented, one-entity-per-line rendering of the subtree:
//
//	0v0 demo.A={} demo.B={"X":4,"Y":6}
//	  1v0 demo.C=0
func (n *Node) WriteText(w io.Writer) error {
	return n.writeText(w, 0)
}

func (n *Node) writeText(w io.Writer, depth int) error {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(n.Entity.String())
	for _, c := range n.Components {
		fmt.Fprintf(&b, " %s=%s", c.Type, Format(c.Value))
	}
	b.WriteByte('\n')
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := c.writeText(w, depth+1); err != nil {
			return err
		}
	}
	return nil
}
