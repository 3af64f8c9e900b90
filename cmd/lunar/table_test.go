package main

import (
	"bytes"
	"testing"
)

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"Solar", 5},
		{"立春", 4},
		{"2023 癸卯兔", 11},
		{"ＡＢ", 4},
	}

	for _, tt := range tests {
		if got := displayWidth(tt.in); got != tt.want {
			t.Errorf("displayWidth(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestWriteRows(t *testing.T) {
	var buf bytes.Buffer
	writeRows(&buf, [][]string{
		{"a", "立春", "x"},
		{"bbb", "c", "y"},
		{"d"},
	})

	want := "a    立春  x\nbbb  c     y\nd\n"
	if got := buf.String(); got != want {
		t.Errorf("writeRows() =\n%q\nwant\n%q", got, want)
	}
}
