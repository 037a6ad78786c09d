package output

import (
	"fmt"
	"io"

	"github.com/atikulmunna/depthtree/internal/tree"
	"github.com/charmbracelet/lipgloss"
)

var (
	styleHeader = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)  // cyan
	styleCount  = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true) // yellow
)

// TreeRenderer writes per-thread call trees as indented ASCII art.
type TreeRenderer struct {
	w     io.Writer
	color bool
}

// NewTreeRenderer returns a renderer writing to w. When color is set,
// thread headers and repeat counts are styled; tree lines themselves
// are always plain so output stays pipe-friendly.
func NewTreeRenderer(w io.Writer, color bool) *TreeRenderer {
	return &TreeRenderer{w: w, color: color}
}

// RenderThread prints the section for one thread: a blank line, the
// header, then the tree of the root's children (the virtual root
// itself is never printed).
func (r *TreeRenderer) RenderThread(tid string, root *tree.Node) error {
	header := fmt.Sprintf("=== thread tid=%s ===", tid)
	if r.color {
		header = styleHeader.Render(header)
	}
	if _, err := fmt.Fprintf(r.w, "\n%s\n", header); err != nil {
		return err
	}
	for _, line := range r.lines(root, "") {
		if _, err := fmt.Fprintln(r.w, line); err != nil {
			return err
		}
	}
	return nil
}

// Lines renders the forest under root as plain text, one line per node.
func Lines(root *tree.Node) []string {
	return (&TreeRenderer{}).lines(root, "")
}

// lines walks children in stored order. The last child of a parent
// gets the closing connector and a blank continuation; earlier
// siblings get the tee connector and a vertical continuation.
func (r *TreeRenderer) lines(n *tree.Node, prefix string) []string {
	var out []string
	for i, child := range n.Children {
		last := i == len(n.Children)-1

		branch := "├── "
		ext := "│   "
		if last {
			branch = "└── "
			ext = "    "
		}

		suffix := ""
		if child.Count > 1 {
			suffix = fmt.Sprintf("  x%d", child.Count)
			if r.color {
				suffix = styleCount.Render(suffix)
			}
		}

		out = append(out, prefix+branch+child.Label+suffix)
		out = append(out, r.lines(child, prefix+ext)...)
	}
	return out
}
