package audio

import (
	"bytes"
	"encoding/base64"
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func countFiles(t *testing.T, fs afero.Fs, dir string) int {
	t.Helper()
	exists, err := afero.DirExists(fs, dir)
	if err != nil {
		t.Fatalf("DirExists: %v", err)
	}
	if !exists {
		return 0
	}
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	return len(entries)
}

func TestScratch_Create(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewScratch(fs, "/tmp/audio")
	data := []byte{1, 2, 3, 4}

	f, err := s.Create(data)
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	if !strings.HasSuffix(f.Name(), ".mp3") {
		t.Errorf("Create() name = %q, want .mp3 suffix", f.Name())
	}
	if f.Size() != int64(len(data)) {
		t.Errorf("Size() = %d, want %d", f.Size(), len(data))
	}
	if n := countFiles(t, fs, "/tmp/audio"); n != 1 {
		t.Errorf("files while open = %d, want 1", n)
	}

	got, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll() error: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("file content = %v, want %v", got, data)
	}

	if err := f.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if n := countFiles(t, fs, "/tmp/audio"); n != 0 {
		t.Errorf("files after Close = %d, want 0", n)
	}
}

func TestScratch_CreateUniqueNames(t *testing.T) {
	s := NewScratch(afero.NewMemMapFs(), "/scratch")

	a, err := s.Create([]byte("a"))
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	defer func() { _ = a.Close() }()
	b, err := s.Create([]byte("b"))
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	defer func() { _ = b.Close() }()

	if a.Name() == b.Name() {
		t.Errorf("Create() reused name %q", a.Name())
	}
}

func TestScratch_EncodeBase64(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewScratch(fs, "/tmp/audio")
	data := []byte{0xFF, 0xFB, 0x90, 0x64}

	encoded, err := s.EncodeBase64(data)
	if err != nil {
		t.Fatalf("EncodeBase64() unexpected error: %v", err)
	}
	if encoded != base64.StdEncoding.EncodeToString(data) {
		t.Errorf("EncodeBase64() = %q", encoded)
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(decoded, data) {
		t.Errorf("round trip = %v, want %v", decoded, data)
	}
	if n := countFiles(t, fs, "/tmp/audio"); n != 0 {
		t.Errorf("files after EncodeBase64 = %d, want 0", n)
	}
}

func TestScratch_CreateFailsOnReadOnlyFs(t *testing.T) {
	base := afero.NewMemMapFs()
	if err := base.MkdirAll("/ro", 0o755); err != nil {
		t.Fatal(err)
	}
	s := NewScratch(afero.NewReadOnlyFs(base), "/ro")

	if _, err := s.Create([]byte("x")); err == nil {
		t.Fatal("Create() expected error on read-only fs, got nil")
	}
	if _, err := s.EncodeBase64([]byte("x")); err == nil {
		t.Fatal("EncodeBase64() expected error on read-only fs, got nil")
	}
	if n := countFiles(t, base, "/ro"); n != 0 {
		t.Errorf("files left behind = %d, want 0", n)
	}
}
