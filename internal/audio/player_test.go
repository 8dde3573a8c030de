package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"git.lost.host/meutraa/drumcity/internal/game"
)

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "song.ogg"))
	var ae *game.AssetError
	if !errors.As(err, &ae) {
		t.Error("expected an asset error", err)
	}
}

func TestOpenUnsupported(t *testing.T) {
	file := filepath.Join(t.TempDir(), "song.flac")
	if err := os.WriteFile(file, []byte("fLaC"), 0o644); nil != err {
		t.Fatal(err)
	}
	_, err := Open(file)
	var ae *game.AssetError
	if !errors.As(err, &ae) || ae.Path != file {
		t.Error("expected an asset error", err)
	}
}

func TestOpenCorrupt(t *testing.T) {
	file := filepath.Join(t.TempDir(), "song.wav")
	if err := os.WriteFile(file, []byte("not a wave file"), 0o644); nil != err {
		t.Fatal(err)
	}
	_, err := Open(file)
	var ae *game.AssetError
	if !errors.As(err, &ae) {
		t.Error("expected an asset error", err)
	}
}

func TestOpenSilent(t *testing.T) {
	dir := t.TempDir()
	if _, err := OpenSilent(filepath.Join(dir, "song.ogg")); nil == err {
		t.Error("expected an error for a missing song")
	}
	file := filepath.Join(dir, "song.ogg")
	if err := os.WriteFile(file, nil, 0o644); nil != err {
		t.Fatal(err)
	}
	s, err := OpenSilent(file)
	if nil != err {
		t.Fatal(err)
	}
	if err := s.Play(); nil != err {
		t.Error(err)
	}
	if err := s.Close(); nil != err {
		t.Error(err)
	}
}

func TestSupported(t *testing.T) {
	tests := map[string]bool{
		"song.ogg":     true,
		"Song.MP3":     true,
		"dir/song.wav": true,
		"song.flac":    false,
		"map.toml":     false,
	}
	for file, expected := range tests {
		if Supported(file) != expected {
			t.Log(file, "expected", expected)
			t.Fail()
		}
	}
}
