package render

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

var formats = map[string]bool{"svg": true, "png": true, "pdf": true}

// Graphviz renders DOT source through the dot binary.
type Graphviz struct {
	Bin string
}

func (g Graphviz) bin() string {
	if g.Bin == "" {
		return "dot"
	}
	return g.Bin
}

// Available reports whether the dot binary can be found on PATH.
func (g Graphviz) Available() bool {
	_, err := exec.LookPath(g.bin())
	return err == nil
}

// Render converts dot to the given output format (svg by default).
func (g Graphviz) Render(ctx context.Context, dot, format string) ([]byte, error) {
	if format == "" {
		format = "svg"
	}
	format = strings.ToLower(format)
	if !formats[format] {
		return nil, fmt.Errorf("graphviz: unsupported format %q", format)
	}

	path, err := exec.LookPath(g.bin())
	if err != nil {
		return nil, fmt.Errorf("graphviz: dot binary not found (%q): %w", g.bin(), err)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, "-T"+format)
	cmd.Stdin = strings.NewReader(dot)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("graphviz: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}
