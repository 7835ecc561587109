package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		done, total, width int
		want               string
	}{
		{0, 0, 10, "░░░░░░░░░░   0%"},
		{1, 2, 10, "█████░░░░░  50%"},
		{3, 3, 2, "█████ 100%"},
	}
	for _, tt := range tests {
		if got := ProgressBar(tt.done, tt.total, tt.width); got != tt.want {
			t.Errorf("ProgressBar(%d,%d,%d): got %q, want %q", tt.done, tt.total, tt.width, got, tt.want)
		}
	}
}

func TestPanel_AlignsWideGlyphs(t *testing.T) {
	SetTheme("classic")
	SetColorForcing(true, false)
	defer SetColorForcing(false, false)

	var buf bytes.Buffer
	Panel(&buf, []string{
		C(Current().Success, "☑") + " Buy milk",
		"☐ Walk the dog",
	})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("lines: got %d\n%s", len(lines), buf.String())
	}
	w := lipgloss.Width(lines[0])
	for i, ln := range lines {
		if got := lipgloss.Width(ln); got != w {
			t.Errorf("line %d width %d, want %d: %q", i, got, w, ln)
		}
	}
}

func TestMonoThemeDisablesColor(t *testing.T) {
	// Forcing colour after picking the theme must not bring SGR codes back.
	SetTheme("mono")
	SetColorForcing(true, false)
	defer func() {
		SetColorForcing(false, false)
		SetTheme("classic")
	}()

	if got := C(fgRed, "x"); got != "x" {
		t.Fatalf("mono theme must not colour output, got %q", got)
	}
	if got := Dim("1."); got != "1." {
		t.Fatalf("mono Dim: got %q", got)
	}
	if got := Strike("done"); got != "done" {
		t.Fatalf("mono Strike: got %q", got)
	}
	if Current().BoxChecked != "[x]" {
		t.Fatalf("box: got %q", Current().BoxChecked)
	}
}

func TestOKAndFail_UseThemeColors(t *testing.T) {
	SetColorForcing(true, false)
	SetTheme("classic")
	defer SetColorForcing(false, false)

	var buf bytes.Buffer
	Fail(&buf, "nope")
	if got := buf.String(); got != fgRed+"✖ nope"+reset+"\n" {
		t.Fatalf("classic Fail: got %q", got)
	}

	buf.Reset()
	SetTheme("mono")
	defer SetTheme("classic")
	Fail(&buf, "nope")
	if got := buf.String(); got != "✖ nope\n" {
		t.Fatalf("mono Fail: got %q", got)
	}
}

func TestOKAndFail(t *testing.T) {
	SetColorForcing(false, true)
	defer SetColorForcing(false, false)

	var buf bytes.Buffer
	OK(&buf, "added")
	Fail(&buf, "nope")
	if got := buf.String(); got != "✔ added\n✖ nope\n" {
		t.Fatalf("got %q", got)
	}
}
