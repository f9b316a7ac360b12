package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	cases := map[string]string{
		"":          "",
		"/tmp":      "/tmp",
		"rel/dir":   "rel/dir",
		"~":         home,
		"~/modules": filepath.Join(home, "modules"),
		"~other/x":  "~other/x",
	}
	for in, want := range cases {
		got, err := ExpandHome(in)
		if err != nil {
			t.Fatalf("ExpandHome(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ExpandHome(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPathExists(t *testing.T) {
	d := t.TempDir()
	if !PathExists(d) {
		t.Fatalf("temp dir should exist")
	}
	if PathExists(filepath.Join(d, "missing")) {
		t.Fatalf("missing path reported as existing")
	}
}

func TestEnsureDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	got, err := EnsureDir("~/cache/wazero")
	if err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	if got != filepath.Join(home, "cache", "wazero") {
		t.Fatalf("path=%q", got)
	}
	if fi, err := os.Stat(got); err != nil || !fi.IsDir() {
		t.Fatalf("dir not created: %v", err)
	}
	// Idempotent.
	if _, err := EnsureDir(got); err != nil {
		t.Fatalf("second EnsureDir: %v", err)
	}
}
