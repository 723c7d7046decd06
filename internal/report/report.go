// Package report renders read-only summaries of parsed SMF models.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Faultbox/smf-tools/pkg/smf"
)

const ruleWidth = 75

// Write prints a formatted summary of m to w: version, submesh count,
// vertex totals, textures, bounds, then one row per submesh with its
// counts annotated by the header hint when one was recovered. The
// model is never modified.
func Write(w io.Writer, source string, m *smf.Model) {
	rule := strings.Repeat("=", ruleWidth)

	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "File:           %s\n", source)
	fmt.Fprintf(w, "Version:        %s\n", versionText(m))
	fmt.Fprintf(w, "Submeshes:      %d\n", len(m.Submeshes))
	fmt.Fprintf(w, "Total Vertices: %d\n", m.TotalVertexCount())
	fmt.Fprintf(w, "Total Faces:    %d\n", m.TotalFaceCount())
	fmt.Fprintf(w, "Textures:       %s\n", textureText(m.Textures))

	if len(m.Vertices) > 0 {
		min, max := m.Bounds()
		fmt.Fprintf(w, "Bounds:         (%.2f, %.2f, %.2f) .. (%.2f, %.2f, %.2f)\n",
			min.X(), min.Y(), min.Z(), max.X(), max.Y(), max.Z())
	}

	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
	for i := range m.Submeshes {
		sm := &m.Submeshes[i]
		fmt.Fprintf(w, "  %-12s | %16s verts | %16s tris | %s\n",
			sm.Name,
			countText(len(sm.Vertices), sm.Hint, true),
			countText(len(sm.Faces), sm.Hint, false),
			textureText(sm.Textures))
	}
	fmt.Fprintln(w, rule)
}

// Render returns the summary as a string.
func Render(source string, m *smf.Model) string {
	var b strings.Builder
	Write(&b, source, m)
	return b.String()
}

func versionText(m *smf.Model) string {
	if !m.HasVersion() {
		return "none"
	}
	return fmt.Sprintf("%d", m.Version)
}

func textureText(textures []string) string {
	if len(textures) == 0 {
		return "None"
	}
	return strings.Join(textures, ", ")
}

// countText renders an actual count, annotated with the advisory
// header hint when present. Hints never replace the parsed count.
func countText(actual int, hint *smf.CountHint, vertices bool) string {
	if hint == nil {
		return fmt.Sprintf("%d", actual)
	}
	h := hint.FaceCount
	if vertices {
		h = hint.VertexCount
	}
	return fmt.Sprintf("%d (hdr:%d)", actual, h)
}
