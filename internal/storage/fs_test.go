package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestFS(t *testing.T) (*FS, string) {
	t.Helper()
	dir := t.TempDir()
	f, err := NewFS(dir)
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	return f, dir
}

func TestWriteReadDelete(t *testing.T) {
	f, _ := newTestFS(t)

	content := []byte("name: A\ndob: \"1990-05-15\"\ntob: \"12:30\"\nlat: 1\nlng: 2\n")
	if err := f.Write("people/a.yaml", content); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := f.Read("people/a.yaml")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != string(content) {
		t.Fatalf("read back %q", got)
	}
	if err := f.Delete("people/a.yaml"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := f.Read("people/a.yaml"); err == nil {
		t.Fatal("expected read error after delete")
	}
}

func TestListOnlyProfileDocs(t *testing.T) {
	f, dir := newTestFS(t)

	if err := f.Write("a.yaml", []byte("name: A\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := f.Write("sub/b.yaml", []byte("name: B\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	metas, err := f.List("")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(metas) != 2 {
		t.Fatalf("got %d entries, want 2 (non-%s files skipped)", len(metas), DocExt)
	}
	for _, m := range metas {
		if m.Checksum == "" || m.UpdatedAt.IsZero() {
			t.Fatalf("missing metadata: %+v", m)
		}
	}
}

func TestPathTraversalRejected(t *testing.T) {
	f, _ := newTestFS(t)
	for _, p := range []string{"../escape.yaml", "/etc/passwd", "a/../../escape.yaml"} {
		if err := f.Write(p, []byte("x")); err == nil {
			t.Fatalf("Write(%q) must be rejected", p)
		}
		if _, err := f.Read(p); err == nil {
			t.Fatalf("Read(%q) must be rejected", p)
		}
	}
}

func TestMove(t *testing.T) {
	f, _ := newTestFS(t)
	if err := f.Write("a.yaml", []byte("name: A\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := f.Move("a.yaml", "archive/a.yaml"); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if _, err := f.Read("archive/a.yaml"); err != nil {
		t.Fatalf("Read after move: %v", err)
	}
}

func TestNewFSRequiresDirectory(t *testing.T) {
	if _, err := NewFS(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error for missing root")
	}
}
