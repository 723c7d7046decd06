// Package obj exports parsed SMF models as multi-object Wavefront OBJ
// documents compatible with Blender and other 3D software.
package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/smf-tools/pkg/smf"
)

// Export writes m to w as Wavefront OBJ. Each submesh becomes its own
// `o` section in order. Vertex positions come from fields 0-2, texture
// coordinates from fields 6-7 with the V coordinate flipped for the
// OBJ UV origin. Face indices are 1-based and offset by the cumulative
// vertex count of previously written submeshes.
func Export(w io.Writer, m *smf.Model, source string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# Exported by smftool")
	if source != "" {
		fmt.Fprintf(bw, "# Source: %s\n", source)
	}
	fmt.Fprintln(bw)

	offset := 0
	for i := range m.Submeshes {
		sm := &m.Submeshes[i]

		name := sm.Name
		if name == "" {
			name = fmt.Sprintf("Submesh_%d", i)
		}
		fmt.Fprintf(bw, "o %s\n", name)

		for _, v := range sm.Vertices {
			fmt.Fprintf(bw, "v %g %g %g\n", v[0], v[1], v[2])
		}
		for _, v := range sm.Vertices {
			fmt.Fprintf(bw, "vt %g %g\n", v[6], 1.0-v[7])
		}
		for _, f := range sm.Faces {
			a, b, c := f[0]+1+offset, f[1]+1+offset, f[2]+1+offset
			fmt.Fprintf(bw, "f %d/%d %d/%d %d/%d\n", a, a, b, b, c, c)
		}

		offset += len(sm.Vertices)
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}

// ExportFile writes m to path, creating or truncating the file.
func ExportFile(path string, m *smf.Model, source string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating OBJ file: %w", err)
	}
	if err := Export(f, m, source); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing OBJ file: %w", err)
	}
	return nil
}
