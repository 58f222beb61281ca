package bpyschema

import (
	"io"
	"sort"
)

// TypeTag is a member of the canonical type vocabulary that raw
// documentation type descriptions resolve to (e.g. "FLOAT", "VEC3").
type TypeTag string

// TagNone is the empty canonical tag. It marks an unresolved type and is
// never emitted.
const TagNone TypeTag = ""

// AttributeKey identifies an attribute by name and resolved type.
// The same name with a different type is a different key.
type AttributeKey struct {
	Name string  `json:"name"`
	Type TypeTag `json:"type"`
}

// Less orders keys by name, then by type.
func (k AttributeKey) Less(other AttributeKey) bool {
	if k.Name != other.Name {
		return k.Name < other.Name
	}
	return k.Type < other.Type
}

// VersionRange is the compressed interval over which an attribute exists.
// Min is inclusive and Max is exclusive. A nil Min means the attribute
// exists since the first configured version; a nil Max means it still
// exists in the last one.
type VersionRange struct {
	Min *Version `json:"minVersion,omitempty"`
	Max *Version `json:"maxVersion,omitempty"`
}

// AttributeSchema is one attribute of a node together with its range.
type AttributeSchema struct {
	Name  string       `json:"name"`
	Type  TypeTag      `json:"type"`
	Range VersionRange `json:"range"`
}

// NodeSchema lists the attributes of one documented class.
type NodeSchema struct {
	Class      string            `json:"class"`
	Attributes []AttributeSchema `json:"attributes"`
}

// Schema is the final artifact of a multi-version crawl.
// Nodes are sorted by class name.
type Schema struct {
	Versions *Sequence
	Nodes    []NodeSchema
}

// Occurrences maps a class to the versions in which each of its attribute
// keys was observed. Version slices are sorted and deduplicated.
type Occurrences map[string]map[AttributeKey][]Version

// Recorder accumulates attribute observations.
// Implementations must be safe for concurrent use.
type Recorder interface {
	// RecordNode notes a visited leaf class, even when it has no attributes.
	RecordNode(class string)

	// Record notes that key was observed on class in version v.
	// Recording the same observation twice has no additional effect.
	Record(class string, key AttributeKey, v Version)
}

// Emitter serializes a schema into an output format.
type Emitter interface {
	Emit(w io.Writer, schema *Schema) error
}

// Compress converts observed version sets into per-attribute version ranges
// relative to seq. Observed versions are assumed contiguous; a gap between
// the earliest and latest observation is not represented.
// Returns EINVALID if an observation lies outside the sequence.
func Compress(seq *Sequence, occ Occurrences) (*Schema, error) {
	classes := make([]string, 0, len(occ))
	for class := range occ {
		classes = append(classes, class)
	}
	sort.Strings(classes)

	first := seq.First()
	sentinel := seq.Sentinel()

	nodes := make([]NodeSchema, 0, len(classes))
	for _, class := range classes {
		attrs := occ[class]

		keys := make([]AttributeKey, 0, len(attrs))
		for key := range attrs {
			keys = append(keys, key)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

		node := NodeSchema{Class: class, Attributes: make([]AttributeSchema, 0, len(keys))}
		for _, key := range keys {
			versions := attrs[key]
			if len(versions) == 0 {
				continue
			}

			lo, hi := versions[0], versions[0]
			for _, v := range versions {
				if !seq.Contains(v) {
					return nil, &Error{
						Code:      EINVALID,
						Message:   "observed version " + v.String() + " is not part of the sequence",
						Class:     class,
						Attribute: key.Name,
					}
				}
				if v.Less(lo) {
					lo = v
				}
				if hi.Less(v) {
					hi = v
				}
			}

			upper, err := seq.Next(hi)
			if err != nil {
				return nil, err
			}

			var r VersionRange
			if lo != first {
				lower := lo
				r.Min = &lower
			}
			if upper != sentinel {
				r.Max = &upper
			}
			node.Attributes = append(node.Attributes, AttributeSchema{
				Name:  key.Name,
				Type:  key.Type,
				Range: r,
			})
		}
		nodes = append(nodes, node)
	}

	return &Schema{Versions: seq, Nodes: nodes}, nil
}
