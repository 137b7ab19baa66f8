package shader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"
)

// fakeCompiler hands out increasing IDs and fails on sources containing "error".
type fakeCompiler struct {
	next    uint32
	deleted []uint32
	sources []Source
}

func (c *fakeCompiler) Compile(src Source) (uint32, error) {
	if strings.Contains(src.Vertex, "error") || strings.Contains(src.Fragment, "error") {
		return 0, errors.New("0:1: syntax error")
	}
	c.next++
	c.sources = append(c.sources, src)
	return c.next, nil
}

func (c *fakeCompiler) Delete(id uint32) {
	c.deleted = append(c.deleted, id)
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"phong.vert":           {Data: []byte("void main() {}")},
		"phong.frag":           {Data: []byte("void main() {}")},
		"skybox.vert":          {Data: []byte("void main() {}")},
		"skybox_cubemap.frag":  {Data: []byte("cubemap")},
		"skybox_normal.frag":   {Data: []byte("normal")},
		"particle_update.vert": {Data: []byte("update")},
	}
}

func TestCreateAndRegister(t *testing.T) {
	c := &fakeCompiler{}
	m := NewManager(testFS(), c)

	p, err := m.CreateAndRegister("phong", Files{Vertex: "phong.vert", Fragment: "phong.frag"})
	if err != nil {
		t.Fatalf("CreateAndRegister() error = %v", err)
	}
	if p.ID() != 1 || p.Name() != "phong" {
		t.Errorf("program = %s/%d", p.Name(), p.ID())
	}
	if m.Get("phong") != p {
		t.Error("Get() returned a different program")
	}
}

func TestCreateAndRegisterFeedback(t *testing.T) {
	c := &fakeCompiler{}
	m := NewManager(testFS(), c)

	varyings := []string{"positionOut", "velocityOut", "colorOut", "lifetimeOut"}
	if _, err := m.CreateAndRegister("particle_update", Files{Vertex: "particle_update.vert", Varyings: varyings}); err != nil {
		t.Fatalf("CreateAndRegister() error = %v", err)
	}
	got := c.sources[0]
	if got.Fragment != "" || len(got.Varyings) != 4 || got.Varyings[3] != "lifetimeOut" {
		t.Errorf("unexpected source %+v", got)
	}
}

func TestCreateAndRegisterErrors(t *testing.T) {
	m := NewManager(testFS(), &fakeCompiler{})

	if _, err := m.CreateAndRegister("novert", Files{Fragment: "phong.frag"}); err == nil {
		t.Error("expected error without a vertex stage")
	}
	if _, err := m.CreateAndRegister("nofrag", Files{Vertex: "phong.vert"}); err == nil {
		t.Error("expected error without a fragment stage or varyings")
	}
	p, err := m.CreateAndRegister("missing", Files{Vertex: "missing.vert", Fragment: "phong.frag"})
	if err == nil {
		t.Fatal("expected error for a missing file")
	}
	if p == nil || p.ID() != 0 {
		t.Error("a failed program should stay registered with ID 0")
	}
}

func TestReloadAllKeepsPreviousOnFailure(t *testing.T) {
	fsys := testFS()
	c := &fakeCompiler{}
	m := NewManager(fsys, c)

	phong, _ := m.CreateAndRegister("phong", Files{Vertex: "phong.vert", Fragment: "phong.frag"})
	sky, _ := m.CreateAndRegister("skybox_cubemap", Files{Vertex: "skybox.vert", Fragment: "skybox_cubemap.frag"})

	fsys["phong.frag"] = &fstest.MapFile{Data: []byte("syntax error")}

	err := m.ReloadAll()
	if err == nil {
		t.Fatal("expected reload error")
	}
	if !strings.Contains(err.Error(), "phong") {
		t.Errorf("error should name the program: %v", err)
	}
	if m.LastError() == nil {
		t.Error("LastError() should keep the failure")
	}
	if phong.ID() != 1 {
		t.Errorf("failed program ID = %d, want previous 1", phong.ID())
	}
	if sky.ID() != 3 {
		t.Errorf("reloaded program ID = %d, want 3", sky.ID())
	}
	if len(c.deleted) != 1 || c.deleted[0] != 2 {
		t.Errorf("deleted = %v, want [2]", c.deleted)
	}

	fsys["phong.frag"] = &fstest.MapFile{Data: []byte("fixed")}
	if err := m.ReloadAll(); err != nil {
		t.Fatalf("ReloadAll() after fix error = %v", err)
	}
	if m.LastError() != nil {
		t.Error("LastError() should clear after a good reload")
	}
	if phong.ID() == 1 {
		t.Error("program should pick up the new ID")
	}
}

func TestSelect(t *testing.T) {
	m := NewManager(testFS(), &fakeCompiler{})
	m.CreateAndRegister("phong", Files{Vertex: "phong.vert", Fragment: "phong.frag"})
	m.CreateAndRegister("skybox_cubemap", Files{Vertex: "skybox.vert", Fragment: "skybox_cubemap.frag"})
	m.CreateAndRegister("skybox_normal", Files{Vertex: "skybox.vert", Fragment: "skybox_normal.frag"})

	tests := []struct {
		index int
		want  string
	}{
		{0, "skybox_cubemap"},
		{1, "skybox_normal"},
		{2, "skybox_cubemap"},
		{-1, "skybox_normal"},
	}
	for _, tt := range tests {
		if got := m.Select("skybox", tt.index); got == nil || got.Name() != tt.want {
			t.Errorf("Select(skybox, %d) = %v, want %s", tt.index, got, tt.want)
		}
	}
	if m.Select("water", 0) != nil {
		t.Error("Select() with no match should return nil")
	}
	if names := m.Names(""); len(names) != 3 || names[0] != "phong" {
		t.Errorf("Names() = %v", names)
	}
}

func TestClose(t *testing.T) {
	c := &fakeCompiler{}
	m := NewManager(testFS(), c)
	p, _ := m.CreateAndRegister("phong", Files{Vertex: "phong.vert", Fragment: "phong.frag"})
	m.Close()
	if p.ID() != 0 || len(c.deleted) != 1 {
		t.Errorf("Close() left id %d, deleted %v", p.ID(), c.deleted)
	}
}

func TestWatcherFlagsShaderWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "phong.frag"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if w.Pending() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Error("no reload flagged after writing a shader")
}
