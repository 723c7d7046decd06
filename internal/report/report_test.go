package report

import (
	"strings"
	"testing"

	"github.com/Faultbox/smf-tools/pkg/smf"
)

func testModel() *smf.Model {
	return &smf.Model{
		Version:  1,
		Textures: []string{"GMCJimmy.TIF", "GMCJimmy_bump.TIF"},
		Vertices: []smf.Vertex{
			{1, 2, 3, 0, 0, 0, 0, 0},
			{-1, -2, -3, 0, 0, 0, 0, 0},
		},
		Submeshes: []smf.Submesh{
			{
				Name:     "Body",
				Vertices: []smf.Vertex{{1, 2, 3, 0, 0, 0, 0, 0}},
				Faces:    []smf.Face{{0, 0, 0}},
				Textures: []string{"GMCJimmy.TIF"},
				Hint:     &smf.CountHint{VertexCount: 10, FaceCount: 20},
			},
			{
				Name:     "Wheel",
				Vertices: []smf.Vertex{{-1, -2, -3, 0, 0, 0, 0, 0}},
			},
		},
	}
}

func TestRender_Summary(t *testing.T) {
	out := Render("GMCJimmy.smf", testModel())

	for _, want := range []string{
		"File:           GMCJimmy.smf",
		"Version:        1",
		"Submeshes:      2",
		"Total Vertices: 2",
		"Total Faces:    1",
		"GMCJimmy.TIF, GMCJimmy_bump.TIF",
		"Body",
		"Wheel",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestRender_HintAnnotation(t *testing.T) {
	out := Render("x.smf", testModel())

	if !strings.Contains(out, "1 (hdr:10)") {
		t.Errorf("expected vertex hint annotation, got:\n%s", out)
	}
	if !strings.Contains(out, "1 (hdr:20)") {
		t.Errorf("expected face hint annotation, got:\n%s", out)
	}

	// Wheel has no hint: bare counts only on its row.
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Wheel") && strings.Contains(line, "hdr:") {
			t.Errorf("unexpected hint annotation on hintless submesh: %s", line)
		}
	}
}

func TestRender_NoVersion(t *testing.T) {
	m := &smf.Model{Version: -1}
	out := Render("x.smf", m)

	if !strings.Contains(out, "Version:        none") {
		t.Errorf("expected version none, got:\n%s", out)
	}
	if !strings.Contains(out, "Textures:       None") {
		t.Errorf("expected Textures None, got:\n%s", out)
	}
	if strings.Contains(out, "Bounds:") {
		t.Error("expected no bounds line for empty model")
	}
}

func TestRender_Bounds(t *testing.T) {
	out := Render("x.smf", testModel())

	if !strings.Contains(out, "(-1.00, -2.00, -3.00) .. (1.00, 2.00, 3.00)") {
		t.Errorf("expected bounds line, got:\n%s", out)
	}
}
