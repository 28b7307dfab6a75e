package inspect

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/steady"
)

// Dot outputs the segment structure of a store in Graphviz DOT format.
//
// The store itself is a circle node labelled with length and capacity,
// segments are boxes chained in allocation order.
func Dot(w io.Writer, s Layout) error {
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	b.WriteString("\trankdir=LR;\n")
	nodelist := fmt.Sprintf("\t\"store\" [label=\"%d/%d\" %s];\n",
		s.Len(), s.Cap(), nodeDotStyles(nil))
	edgelist := ""
	prev := "store"
	for info := range s.Segments() {
		id := fmt.Sprintf("seg%d", info.Index)
		label := fmt.Sprintf("#%d @%d\\n%d of %d", info.Index, info.Start, info.Used, info.Capacity)
		nodelist += fmt.Sprintf("\t\"%s\" [label=\"%s\" %s];\n", id, label, nodeDotStyles(&info))
		edgelist += fmt.Sprintf("\t\"%s\" -> \"%s\";\n", prev, id)
		prev = id
	}
	b.WriteString(nodelist)
	b.WriteString(edgelist)
	b.WriteString("}\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		tracer().Errorf("store DOT: %s", err.Error())
		return err
	}
	return nil
}

func nodeDotStyles(info *steady.SegmentInfo) string {
	s := ",style=filled"
	if info == nil {
		return s + ",color=black,fillcolor=\"#a3d7e4\",shape=circle"
	}
	s += ",shape=box"
	switch {
	case info.Full():
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[len(hexcolors)-1])
	case info.Used == 0:
		s += ",fillcolor=white"
	default:
		level := info.Used * (len(hexcolors) - 1) / info.Capacity
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[level])
	}
	return s
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
