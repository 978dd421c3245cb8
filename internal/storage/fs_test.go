package storage

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func tempCatalog(t *testing.T) (string, *FS) {
	t.Helper()
	dir := t.TempDir()
	s, err := NewFS(dir)
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	return dir, s
}

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	p := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestOpenAndRead(t *testing.T) {
	dir, s := tempCatalog(t)
	writeFile(t, dir, "animals.txt", "Details on lions\n")

	rc, err := s.Open("animals.txt")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()
	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != "Details on lions\n" {
		t.Errorf("content = %q", got)
	}
}

func TestOpenNested(t *testing.T) {
	dir, s := tempCatalog(t)
	writeFile(t, dir, "zoo/habitats.txt", "Details on aquarium\n")
	rc, err := s.Open("zoo/habitats.txt")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	_ = rc.Close()
}

func TestOpenMissing(t *testing.T) {
	_, s := tempCatalog(t)
	_, err := s.Open("missing.txt")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want ErrNotExist", err)
	}
}

func TestStat(t *testing.T) {
	dir, s := tempCatalog(t)
	writeFile(t, dir, "animals.txt", "x")
	info, err := s.Stat("animals.txt")
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Size() != 1 {
		t.Errorf("size = %d", info.Size())
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Stat("sub"); err == nil {
		t.Error("expected error for directory")
	}
}

func TestTraversalBlocked(t *testing.T) {
	_, s := tempCatalog(t)

	cases := []string{
		"../../etc/passwd",
		"../outside.txt",
		"/etc/shadow",
		"",
		".",
	}
	for _, p := range cases {
		if _, err := s.Open(p); err == nil {
			t.Errorf("expected error for path %q", p)
		}
		if _, err := s.Resolve(p); err == nil {
			t.Errorf("expected resolve error for path %q", p)
		}
	}
}

func TestResolveIsAbsolute(t *testing.T) {
	_, s := tempCatalog(t)
	abs, err := s.Resolve("a/../animals.txt")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if abs != filepath.Join(s.Root(), "animals.txt") {
		t.Errorf("abs = %q", abs)
	}
}

func TestNewFS_NonExistentDir(t *testing.T) {
	_, err := NewFS(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Error("expected error for non-existent dir")
	}
}

func TestNewFS_FileNotDir(t *testing.T) {
	f, _ := os.CreateTemp("", "zoodesk-test-*")
	_ = f.Close()
	defer os.Remove(f.Name())
	_, err := NewFS(f.Name())
	if err == nil {
		t.Error("expected error when root is a file")
	}
}
