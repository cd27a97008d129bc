package archive

import (
	"archive/zip"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestPackage(t *testing.T) {
	base := t.TempDir()
	outDir := filepath.Join(base, "datafiles")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"demo_Kentfield.txt", "users_Kentfield.txt"} {
		if err := os.WriteFile(filepath.Join(outDir, name), []byte("x\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	// non-txt files stay out of the artifact
	if err := os.WriteFile(filepath.Join(outDir, "notes.md"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	today := time.Date(2016, 9, 1, 0, 0, 0, 0, time.UTC)
	zipPath, err := NewPackager(zerolog.Nop()).Package(outDir, base, "kentfield", today)
	if err != nil {
		t.Fatal(err)
	}

	r, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	want := []string{"demo_Kentfield.txt", "users_Kentfield.txt"}
	if len(names) != len(want) {
		t.Fatalf("zip contents = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("zip entry %d = %q, want flat name %q", i, names[i], want[i])
		}
	}

	archived := filepath.Join(base, "archives", "2016-09-01", "kentfield.zip")
	if _, err := os.Stat(archived); err != nil {
		t.Errorf("dated archive copy missing: %v", err)
	}
}

func TestPackageReplacesExistingZip(t *testing.T) {
	base := t.TempDir()
	outDir := filepath.Join(base, "datafiles")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "a.txt"), []byte("x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "kentfield.zip"), []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	today := time.Date(2016, 9, 1, 0, 0, 0, 0, time.UTC)
	zipPath, err := NewPackager(zerolog.Nop()).Package(outDir, base, "kentfield", today)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := zip.OpenReader(zipPath); err != nil {
		t.Errorf("rebuilt zip is unreadable: %v", err)
	}
}
