package editor

import (
	"reflect"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		visual     string
		editor     string
		want       string
	}{
		{"configured wins", "code -w", "vim", "nano", "code -w"},
		{"visual before editor", "", "vim", "nano", "vim"},
		{"editor", "", "", "nano", "nano"},
		{"fallback", "", "", "", Fallback},
		{"blank configured ignored", "   ", "", "micro", "micro"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("VISUAL", tt.visual)
			t.Setenv("EDITOR", tt.editor)
			if got := Resolve(tt.configured); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.configured, got, tt.want)
			}
		})
	}
}

func TestArgs(t *testing.T) {
	tests := []struct {
		name   string
		editor string
		line   int
		want   []string
	}{
		{"nvim with line", "nvim", 4, []string{"nvim", "+4", "md/TODO.md"}},
		{"nvim without line", "nvim", 0, []string{"nvim", "md/TODO.md"}},
		{"absolute vim path", "/usr/bin/vim", 7, []string{"/usr/bin/vim", "+7", "md/TODO.md"}},
		{"flags kept", "code -w", 3, []string{"code", "-w", "md/TODO.md"}},
		{"empty editor", "", 2, []string{"nvim", "+2", "md/TODO.md"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Args(tt.editor, "md/TODO.md", tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Args() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCommand(t *testing.T) {
	cmd := Command("nvim", "md/CYBER.md", 1)
	want := []string{"nvim", "+1", "md/CYBER.md"}
	if !reflect.DeepEqual(cmd.Args, want) {
		t.Errorf("Command().Args = %v, want %v", cmd.Args, want)
	}
}
