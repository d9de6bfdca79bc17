// Package shellpanel is a host-side sample panel renderer: it runs a
// command in a PTY and renders its trailing output into a panel body.
// The layout engine knows nothing about it; the host registers it under a
// panel type key like any other renderer.
package shellpanel

import (
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/creack/pty"

	"paneldeck/internal/layout"
	"paneldeck/internal/ui"
)

// Size represents terminal dimensions in rows and columns.
type Size struct {
	Rows uint16
	Cols uint16
}

// Runner spawns and controls a PTY. Implementations can be swapped for a
// mock in tests.
type Runner interface {
	Start(cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error)
	Resize(rwc io.ReadWriteCloser, size Size) error
}

// CreackPTY implements Runner using github.com/creack/pty.
type CreackPTY struct{}

var _ Runner = (*CreackPTY)(nil)

// Start implements Runner.
func (CreackPTY) Start(cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error) {
	return pty.StartWithSize(cmd, &pty.Winsize{Rows: size.Rows, Cols: size.Cols})
}

// Resize implements Runner. The rwc must be the *os.File returned by
// Start; other types are a no-op.
func (CreackPTY) Resize(rwc io.ReadWriteCloser, size Size) error {
	f, ok := rwc.(*os.File)
	if !ok {
		return nil
	}
	return pty.Setsize(f, &pty.Winsize{Rows: size.Rows, Cols: size.Cols})
}

const maxLines = 200

// Panel runs one command and keeps its trailing output for rendering.
type Panel struct {
	runner Runner

	mu    sync.Mutex
	pty   io.ReadWriteCloser
	lines []string
	err   error
}

// New starts command in a PTY and begins capturing output.
func New(runner Runner, command string, args ...string) *Panel {
	p := &Panel{runner: runner}
	cmd := exec.Command(command, args...)
	rwc, err := runner.Start(cmd, Size{Rows: 24, Cols: 80})
	if err != nil {
		p.err = err
		return p
	}
	p.pty = rwc
	go p.capture(rwc)
	return p
}

func (p *Panel) capture(r io.Reader) {
	buf := make([]byte, 4096)
	var partial string
	for {
		n, err := r.Read(buf)
		if n > 0 {
			partial += string(buf[:n])
			parts := strings.Split(partial, "\n")
			partial = parts[len(parts)-1]
			p.appendLines(parts[:len(parts)-1])
		}
		if err != nil {
			return
		}
	}
}

func (p *Panel) appendLines(lines []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lines = append(p.lines, lines...)
	if len(p.lines) > maxLines {
		p.lines = p.lines[len(p.lines)-maxLines:]
	}
}

// Close terminates the PTY.
func (p *Panel) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pty == nil {
		return nil
	}
	return p.pty.Close()
}

// Renderer adapts the panel to the host renderer registry.
func (p *Panel) Renderer() ui.Renderer {
	return func(_ layout.Panel, width, height int) string {
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.err != nil {
			return "shell unavailable: " + p.err.Error()
		}
		lines := p.lines
		if len(lines) > height {
			lines = lines[len(lines)-height:]
		}
		out := make([]string, len(lines))
		for i, l := range lines {
			if len(l) > width {
				l = l[:width]
			}
			out[i] = l
		}
		return strings.Join(out, "\n")
	}
}
