package shader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Source holds the text of the two program stages.
type Source struct {
	Vertex   string
	Fragment string
}

// marker begins a stage-delimiter line in a combined source file.
const marker = "#shader"

// ParseCombined splits a combined source stream into per-stage text.
//
// A line containing the "#shader" marker selects the stage it names
// ("vertex" or "fragment") and contributes no text itself. Every other line
// is copied verbatim, newline-terminated, into the selected stage's block.
// Lines before the first marker, and marker lines naming no known stage,
// are ignored.
func ParseCombined(r io.Reader) (Source, error) {
	var vertex, fragment strings.Builder
	var current *strings.Builder

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.Contains(line, marker) {
			switch {
			case strings.Contains(line, "vertex"):
				current = &vertex
			case strings.Contains(line, "fragment"):
				current = &fragment
			}
			continue
		}
		if current != nil {
			current.WriteString(line)
			current.WriteByte('\n')
		}
	}
	if err := sc.Err(); err != nil {
		return Source{}, fmt.Errorf("scan shader source: %w", err)
	}

	return Source{Vertex: vertex.String(), Fragment: fragment.String()}, nil
}

// LoadCombined reads a combined source file and splits it by stage markers.
func LoadCombined(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return Source{}, fmt.Errorf("open shader file: %w", err)
	}
	defer f.Close()

	src, err := ParseCombined(f)
	if err != nil {
		return Source{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return src, nil
}

// LoadFiles reads one complete stage program from each file.
func LoadFiles(vertexPath, fragmentPath string) (Source, error) {
	vert, err := os.ReadFile(vertexPath)
	if err != nil {
		return Source{}, fmt.Errorf("read vertex shader: %w", err)
	}
	frag, err := os.ReadFile(fragmentPath)
	if err != nil {
		return Source{}, fmt.Errorf("read fragment shader: %w", err)
	}
	return Source{Vertex: string(vert), Fragment: string(frag)}, nil
}
