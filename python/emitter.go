// Package python renders a schema as the node_settings.py module consumed
// by the NodeToPython add-on.
package python

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/fwojciec/bpyschema"
)

// Header is written before the settings table.
const Header = "from utils import ST, NTPNodeSetting\n\n"

// Ensure Emitter implements bpyschema.Emitter at compile time.
var _ bpyschema.Emitter = (*Emitter)(nil)

// Emitter writes schemas as a Python dict literal:
//
//	node_settings : dict[str, list[NTPNodeSetting]] = {
//		'ShaderNodeMath' : [
//			NTPNodeSetting("operation", ST.ENUM),
//			NTPNodeSetting("use_clamp", ST.BOOL, min_version=(3, 1, 0)),
//		],
//
//	}
//
// Version bounds absent from an attribute's range are left out of the call.
type Emitter struct{}

// NewEmitter creates a new Emitter.
func NewEmitter() *Emitter {
	return &Emitter{}
}

// Emit implements bpyschema.Emitter.
func (e *Emitter) Emit(w io.Writer, schema *bpyschema.Schema) error {
	if schema == nil {
		return bpyschema.Errorf(bpyschema.EINVALID, "schema required")
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(Header)
	bw.WriteString("node_settings : dict[str, list[NTPNodeSetting]] = {\n")

	for _, node := range schema.Nodes {
		fmt.Fprintf(bw, "\t'%s' : [\n", node.Class)
		for _, attr := range node.Attributes {
			bw.WriteString("\t\t")
			bw.WriteString(Setting(attr))
			bw.WriteString(",\n")
		}
		bw.WriteString("\t],\n\n")
	}

	bw.WriteString("}\n")
	return bw.Flush()
}

// Setting renders one NTPNodeSetting constructor call.
func Setting(attr bpyschema.AttributeSchema) string {
	s := "NTPNodeSetting(" + strconv.Quote(attr.Name) + ", ST." + string(attr.Type)
	if attr.Range.Min != nil {
		s += ", min_version=" + versionTuple(*attr.Range.Min)
	}
	if attr.Range.Max != nil {
		s += ", max_version=" + versionTuple(*attr.Range.Max)
	}
	return s + ")"
}

func versionTuple(v bpyschema.Version) string {
	return fmt.Sprintf("(%d, %d, 0)", v.Major, v.Minor)
}
