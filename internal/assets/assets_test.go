package assets

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestShadersEmbedded(t *testing.T) {
	for _, name := range []string{
		"fallback.vert", "fallback.frag",
		"phong.vert", "phong.frag",
		"skybox.vert", "skybox_cubemap.frag",
		"water.vert", "water.frag",
		"particle_update.vert", "particle_render.vert", "particle_render.frag",
	} {
		data, err := fs.ReadFile(Shaders(), name)
		if err != nil {
			t.Errorf("missing embedded shader %s: %v", name, err)
			continue
		}
		if len(data) == 0 {
			t.Errorf("embedded shader %s is empty", name)
		}
	}
}

func TestManagerPriority(t *testing.T) {
	m := NewManager()
	m.AddFS("base", fstest.MapFS{
		"a.txt": {Data: []byte("base a")},
		"b.txt": {Data: []byte("base b")},
	})
	m.AddFS("override", fstest.MapFS{
		"a.txt": {Data: []byte("override a")},
	})

	data, err := m.Load("a.txt")
	if err != nil || string(data) != "override a" {
		t.Errorf("Load(a.txt) = %q, %v", data, err)
	}
	data, err = m.Load("b.txt")
	if err != nil || string(data) != "base b" {
		t.Errorf("Load(b.txt) = %q, %v", data, err)
	}
	if _, err := m.Load("c.txt"); err == nil {
		t.Error("expected error for missing file")
	}
	if !m.Exists("b.txt") || m.Exists("c.txt") {
		t.Error("Exists() disagrees with Load()")
	}

	hits, misses := m.Cache().Stats()
	if hits != 0 || misses != 3 {
		t.Errorf("stats = %d hits, %d misses", hits, misses)
	}
	m.Load("a.txt")
	if hits, _ := m.Cache().Stats(); hits != 1 {
		t.Errorf("expected a cache hit, got %d", hits)
	}
}

func TestManagerOpenSeesChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.vert")
	if err := os.WriteFile(path, []byte("v1"), 0644); err != nil {
		t.Fatal(err)
	}

	m := NewManager()
	if err := m.AddDir(dir); err != nil {
		t.Fatalf("AddDir() error = %v", err)
	}
	if _, err := m.Load("x.vert"); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("v2"), 0644); err != nil {
		t.Fatal(err)
	}

	data, err := fs.ReadFile(m, "x.vert")
	if err != nil || string(data) != "v2" {
		t.Errorf("fs.ReadFile through Open = %q, %v", data, err)
	}
	if cached, _ := m.Load("x.vert"); string(cached) != "v1" {
		t.Errorf("Load() should serve the cached copy, got %q", cached)
	}
}

func TestAddDirMissing(t *testing.T) {
	if err := NewManager().AddDir(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing directory")
	}
}
