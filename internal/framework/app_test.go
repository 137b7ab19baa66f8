package framework

import (
	"errors"
	"testing"
)

type recordingScene struct {
	initErr error
	inits   int
	closes  int
}

func (s *recordingScene) Init(*App) error {
	s.inits++
	return s.initErr
}

func (s *recordingScene) Update(*App, float32) {}
func (s *recordingScene) Render(*App)          {}
func (s *recordingScene) Controls(*App)        {}
func (s *recordingScene) Close()               { s.closes++ }

func TestStartSceneClosesOnInitFailure(t *testing.T) {
	boom := errors.New("missing shader")
	scene := &recordingScene{initErr: boom}

	closeScene, err := startScene(&App{}, scene)
	if !errors.Is(err, boom) {
		t.Fatalf("startScene() error = %v, want %v", err, boom)
	}
	if closeScene != nil {
		t.Error("expected no cleanup after a failed Init")
	}
	if scene.closes != 1 {
		t.Errorf("Close called %d times, want 1", scene.closes)
	}
}

func TestStartSceneReturnsClose(t *testing.T) {
	scene := &recordingScene{}

	closeScene, err := startScene(&App{}, scene)
	if err != nil {
		t.Fatalf("startScene() error = %v", err)
	}
	if scene.inits != 1 || scene.closes != 0 {
		t.Fatalf("inits=%d closes=%d after a successful start", scene.inits, scene.closes)
	}
	closeScene()
	if scene.closes != 1 {
		t.Errorf("Close called %d times, want 1", scene.closes)
	}
}

func TestRunRejectsNilScene(t *testing.T) {
	if err := (&App{}).Run(nil); !errors.Is(err, ErrNoScene) {
		t.Errorf("Run(nil) = %v, want ErrNoScene", err)
	}
}
