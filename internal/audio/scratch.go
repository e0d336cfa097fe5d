// Package audio materializes synthesized audio into short-lived files.
package audio

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// Format is the container every provider response is requested in.
const Format = "mp3"

// Scratch creates transient audio files under one directory.
type Scratch struct {
	fs  afero.Fs
	dir string
}

// NewScratch returns a Scratch writing into dir on fs.
func NewScratch(fs afero.Fs, dir string) *Scratch {
	return &Scratch{fs: fs, dir: dir}
}

// TempFile is an open transient file. Close removes it.
type TempFile struct {
	afero.File
	fs   afero.Fs
	size int64
}

// Size is the number of audio bytes in the file.
func (f *TempFile) Size() int64 {
	return f.size
}

// Close closes the file and deletes it.
func (f *TempFile) Close() error {
	closeErr := f.File.Close()
	removeErr := f.fs.Remove(f.Name())
	if removeErr != nil && errors.Is(removeErr, os.ErrNotExist) {
		removeErr = nil
	}
	return errors.Join(closeErr, removeErr)
}

// Create writes data to a new file and returns it rewound to the start.
// The caller owns the file and must Close it.
func (s *Scratch) Create(data []byte) (*TempFile, error) {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create scratch directory: %w", err)
	}

	name := filepath.Join(s.dir, "voice-"+uuid.NewString()+"."+Format)
	f, err := s.fs.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch file: %w", err)
	}
	tmp := &TempFile{File: f, fs: s.fs, size: int64(len(data))}

	if _, err := f.Write(data); err != nil {
		_ = tmp.Close()
		return nil, fmt.Errorf("failed to write scratch file: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		_ = tmp.Close()
		return nil, fmt.Errorf("failed to rewind scratch file: %w", err)
	}

	return tmp, nil
}

// EncodeBase64 round-trips data through a transient file and returns the
// file's content as standard base64. The file is gone when this returns.
func (s *Scratch) EncodeBase64(data []byte) (encoded string, err error) {
	f, err := s.Create(data)
	if err != nil {
		return "", err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to remove scratch file: %w", closeErr)
		}
	}()

	raw, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("failed to read scratch file: %w", err)
	}

	return base64.StdEncoding.EncodeToString(raw), nil
}
