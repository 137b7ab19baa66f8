package shader

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Faultbox/bonobo-labs/internal/logger"
)

// Files names the stage sources of a program inside the manager's file system.
type Files struct {
	Vertex   string
	Fragment string // optional when Varyings is set
	Varyings []string
}

// Source is the loaded text of a program.
type Source struct {
	Vertex   string
	Fragment string
	Varyings []string
}

// Program is a named GL program whose ID follows successful reloads.
// Holders keep the *Program rather than the raw ID.
type Program struct {
	name  string
	files Files
	id    atomic.Uint32
}

// Name returns the registered name.
func (p *Program) Name() string { return p.name }

// ID returns the current GL program, 0 if it never compiled.
func (p *Program) ID() uint32 {
	if p == nil {
		return 0
	}
	return p.id.Load()
}

// Manager owns the shader programs of a scene.
type Manager struct {
	fsys     fs.FS
	compiler Compiler
	programs map[string]*Program
	order    []string
	lastErr  error
}

// NewManager creates a manager reading sources from fsys.
func NewManager(fsys fs.FS, compiler Compiler) *Manager {
	if compiler == nil {
		compiler = GLCompiler{}
	}
	return &Manager{
		fsys:     fsys,
		compiler: compiler,
		programs: make(map[string]*Program),
	}
}

// CreateAndRegister compiles a program and registers it under name.
// Registering an existing name replaces its files and recompiles.
func (m *Manager) CreateAndRegister(name string, files Files) (*Program, error) {
	if files.Vertex == "" {
		return nil, fmt.Errorf("shader %s: no vertex stage", name)
	}
	if files.Fragment == "" && len(files.Varyings) == 0 {
		return nil, fmt.Errorf("shader %s: no fragment stage", name)
	}

	p, ok := m.programs[name]
	if !ok {
		p = &Program{name: name}
		m.programs[name] = p
		m.order = append(m.order, name)
	}
	p.files = files

	if err := m.build(p); err != nil {
		return p, err
	}
	logger.Debug("shader program ready", zap.String("name", name), zap.Uint32("id", p.ID()))
	return p, nil
}

func (m *Manager) build(p *Program) error {
	src, err := m.load(p.files)
	if err != nil {
		return fmt.Errorf("shader %s: %w", p.name, err)
	}
	id, err := m.compiler.Compile(src)
	if err != nil {
		return fmt.Errorf("shader %s: %w", p.name, err)
	}
	if old := p.id.Swap(id); old != 0 {
		m.compiler.Delete(old)
	}
	return nil
}

func (m *Manager) load(files Files) (Source, error) {
	src := Source{Varyings: files.Varyings}
	data, err := fs.ReadFile(m.fsys, files.Vertex)
	if err != nil {
		return src, err
	}
	src.Vertex = string(data)
	if files.Fragment != "" {
		data, err = fs.ReadFile(m.fsys, files.Fragment)
		if err != nil {
			return src, err
		}
		src.Fragment = string(data)
	}
	return src, nil
}

// ReloadAll recompiles every program from its files. Programs that fail keep
// their previous ID; the joined error is also kept in LastError.
func (m *Manager) ReloadAll() error {
	var errs []error
	for _, name := range m.order {
		if err := m.build(m.programs[name]); err != nil {
			errs = append(errs, err)
		}
	}
	m.lastErr = errors.Join(errs...)
	if m.lastErr != nil {
		logger.Error("shader reload failed", zap.Error(m.lastErr))
	} else {
		logger.Info("shaders reloaded", zap.Int("programs", len(m.order)))
	}
	return m.lastErr
}

// LastError returns the result of the latest ReloadAll.
func (m *Manager) LastError() error {
	return m.lastErr
}

// Get returns the program registered under name, or nil.
func (m *Manager) Get(name string) *Program {
	return m.programs[name]
}

// Names returns the registered names starting with prefix, in registration
// order.
func (m *Manager) Names(prefix string) []string {
	var names []string
	for _, name := range m.order {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	return names
}

// Select returns the index-th program whose name starts with prefix. The
// index wraps in both directions so UI arrows can cycle freely.
func (m *Manager) Select(prefix string, index int) *Program {
	names := m.Names(prefix)
	if len(names) == 0 {
		return nil
	}
	index %= len(names)
	if index < 0 {
		index += len(names)
	}
	return m.programs[names[index]]
}

// Close deletes every program.
func (m *Manager) Close() {
	for _, name := range m.order {
		if id := m.programs[name].id.Swap(0); id != 0 {
			m.compiler.Delete(id)
		}
	}
}
