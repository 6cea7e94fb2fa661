package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/gogpu/graphmesh/internal/app"
)

var (
	iris  = lipgloss.Color("#8B5CF6")
	slate = lipgloss.Color("#667085")
	green = lipgloss.Color("#22A06B")
)

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	muted  lipgloss.Style
	good   lipgloss.Style
	plain  lipgloss.Style
}

// newStyles returns styles bound to w's color profile. NO_COLOR forces
// plain text.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	if os.Getenv("NO_COLOR") != "" {
		r.SetColorProfile(termenv.Ascii)
	}
	return styles{
		title:  r.NewStyle().Bold(true).Foreground(iris),
		header: r.NewStyle().Bold(true),
		muted:  r.NewStyle().Foreground(slate),
		good:   r.NewStyle().Foreground(green),
		plain:  r.NewStyle(),
	}
}

var columns = []string{"KEY", "SHAPE", "SIZE", "VERTICES", "INSTANCES", "LIGHTING", "TOPOLOGY", "INDICES", "BLEND"}

// renderReport writes the stats report for the document at path.
func renderReport(w io.Writer, path string, r *app.Report) error {
	st := newStyles(w)

	rows := make([][]string, 0, len(r.Templates))
	for _, t := range r.Templates {
		lighting := t.Lighting
		if t.Wireframe {
			lighting += " wireframe"
		}
		rows = append(rows, []string{
			t.Key,
			t.Shape,
			strconv.FormatFloat(t.Size, 'g', -1, 64),
			strconv.Itoa(t.Vertices),
			strconv.Itoa(t.Instances),
			lighting,
			t.Topology,
			strconv.Itoa(t.Indices),
			t.Blend,
		})
	}

	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = len(c)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", st.title.Render(path), st.muted.Render("("+r.Mode+")"))
	fmt.Fprintf(&b, "nodes %d  edges %d  arrowheads %d\n\n", r.Nodes, r.Edges, r.Arrowheads)

	b.WriteString(formatRow(columns, widths, st.header) + "\n")
	for _, row := range rows {
		b.WriteString(formatRow(row, widths, st.plain) + "\n")
	}

	fmt.Fprintf(&b, "\ntemplates %d  hits %d  misses %d  hit rate %s\n",
		r.Cache.Templates, r.Cache.Hits, r.Cache.Misses,
		st.good.Render(fmt.Sprintf("%.1f%%", r.Cache.HitRate*100)))

	_, err := io.WriteString(w, b.String())
	return err
}

func formatRow(cells []string, widths []int, style lipgloss.Style) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = style.Width(widths[i]).Render(cell)
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}
