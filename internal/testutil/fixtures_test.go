package testutil

import (
	"os"
	"testing"
)

func TestWriteCSV(t *testing.T) {
	path := WriteCSV(t, "x.csv", []string{"a", "b"}, []float64{1, 2.5}, []float64{-3, 4})
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := "a,b\n1,-3\n2.5,4\n"
	if string(data) != want {
		t.Fatalf("content = %q, want %q", data, want)
	}
}
