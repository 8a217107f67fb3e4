package controller

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/spf13/cobra"
)

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	if ui, ok := NewUI(cmd, true).(*TUI); !ok {
		t.Fatalf("NewUI(true) returned %T, want *TUI", ui)
	}

	if ui, ok := NewUI(cmd, false).(*SimpleUI); !ok {
		t.Fatalf("NewUI(false) returned %T, want *SimpleUI", ui)
	}
}

func TestIsTTY(t *testing.T) {
	regular, err := os.CreateTemp(t.TempDir(), "twins-tty")
	if err != nil {
		t.Fatalf("CreateTemp error: %v", err)
	}
	defer regular.Close()

	tests := []struct {
		name string
		w    io.Writer
		want bool
	}{
		{name: "buffer", w: &bytes.Buffer{}, want: false},
		{name: "regular file", w: regular, want: false},
	}

	if devNull, err := os.Open(os.DevNull); err == nil {
		defer devNull.Close()

		tests = append(tests, struct {
			name string
			w    io.Writer
			want bool
		}{name: "char device", w: devNull, want: true})
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTTY(tt.w); got != tt.want {
				t.Fatalf("IsTTY(%s) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestIsTTY_ClosedFile(t *testing.T) {
	file, err := os.CreateTemp(t.TempDir(), "twins-closed")
	if err != nil {
		t.Fatalf("CreateTemp error: %v", err)
	}
	file.Close()

	if IsTTY(file) {
		t.Fatal("IsTTY(closed file) = true, want false")
	}
}
