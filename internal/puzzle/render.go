package puzzle

import (
	"fmt"
	"io"
	"strings"

	"github.com/clive/buckets/internal/model"
)

const (
	// WaterCell marks a filled level
	WaterCell = "W"
	// CellWidth is the inner width of a bucket bar
	CellWidth = 6

	indent = "    "
	gutter = "        "
)

// Diagram draws the buckets as vertical bars, tallest level first. A level is
// filled when it is at or below the bucket's current volume.
func Diagram(set *model.Set) string {
	buckets := set.Buckets()
	tallest := 0
	for _, b := range buckets {
		tallest = max(tallest, b.Capacity())
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%sTry to get %dL of water into one of these buckets:\n\n", indent, model.Target)

	blank := strings.Repeat(" ", CellWidth+3)
	for level := tallest; level >= 1; level-- {
		cols := make([]string, 0, len(buckets))
		for _, b := range buckets {
			if level > b.Capacity() {
				cols = append(cols, blank)
				continue
			}
			fill := " "
			if level <= b.Current() {
				fill = WaterCell
			}
			cols = append(cols, fmt.Sprintf("%d|%s|", level, strings.Repeat(fill, CellWidth)))
		}
		sb.WriteString(strings.TrimRight(indent+strings.Join(cols, gutter), " "))
		sb.WriteByte('\n')
	}

	bases := make([]string, 0, len(buckets))
	labels := make([]string, 0, len(buckets))
	for _, b := range buckets {
		bases = append(bases, " +"+strings.Repeat("-", CellWidth)+"+")
		labels = append(labels, fmt.Sprintf("    %-5s", fmt.Sprintf("%dL", b.Capacity())))
	}
	sb.WriteString(indent + strings.Join(bases, gutter) + "\n")
	sb.WriteString(strings.TrimRight(indent+strings.Join(labels, gutter), " ") + "\n")
	return sb.String()
}

// Render writes the diagram surrounded by blank lines
func Render(w io.Writer, set *model.Set) error {
	_, err := fmt.Fprintf(w, "\n%s\n", Diagram(set))
	return err
}
