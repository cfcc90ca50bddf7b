package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGetSimpleText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain line", "alice\n", "alice"},
		{"trims whitespace", "  alice  \n", "alice"},
		{"partial line at EOF", "alice", "alice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetSimpleText(bufio.NewReader(strings.NewReader(tt.input)), "Enter username", &out)
			if err != nil {
				t.Fatalf("GetSimpleText err: %v", err)
			}
			if got != tt.want {
				t.Fatalf("want %q, got %q", tt.want, got)
			}
			if !strings.Contains(out.String(), "Enter username") {
				t.Fatalf("prompt not printed: %q", out.String())
			}
		})
	}
}

func TestGetSimpleText_EOFWithoutInput(t *testing.T) {
	var out bytes.Buffer
	_, err := GetSimpleText(bufio.NewReader(strings.NewReader("")), "Enter username", &out)
	if err == nil {
		t.Fatalf("want error on empty input")
	}
}

func TestGetPassword(t *testing.T) {
	orig := readPassword
	readPassword = func(int) ([]byte, error) { return []byte("secret"), nil }
	defer func() { readPassword = orig }()

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	if err != nil {
		t.Fatalf("GetPassword err: %v", err)
	}
	if string(pw) != "secret" {
		t.Fatalf("want %q, got %q", "secret", pw)
	}
	if !strings.Contains(out.String(), "Enter password") {
		t.Fatalf("prompt not printed: %q", out.String())
	}
}

func TestGetPassword_ReadError(t *testing.T) {
	orig := readPassword
	readPassword = func(int) ([]byte, error) { return nil, errors.New("no tty") }
	defer func() { readPassword = orig }()

	var out bytes.Buffer
	if _, err := GetPassword(&out); err == nil {
		t.Fatalf("want error from readPassword")
	}
}
