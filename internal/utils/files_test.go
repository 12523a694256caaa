package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gatelab/gatebench-cli/internal/utils"
)

func TestListReportFilesSorted(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"algo2_b.txt", "algo1_a.txt", "readme.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	files, err := utils.ListReportFiles(dir)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 txt files, got %v", files)
	}
	if filepath.Base(files[0]) != "algo1_a.txt" || filepath.Base(files[1]) != "algo2_b.txt" {
		t.Fatalf("not sorted: %v", files)
	}
}

func TestSafeWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")
	if err := utils.SafeWriteFile(path, []byte("a,b\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil || string(b) != "a,b\n" {
		t.Fatalf("read back: %q %v", b, err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind: %v", err)
	}
}
