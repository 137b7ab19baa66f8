// Package audio plays the background music and sound effects of the labs.
package audio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"

	"github.com/Faultbox/bonobo-labs/internal/config"
)

// DefaultSampleRate is the rate every sound is resampled to.
const DefaultSampleRate = beep.SampleRate(44100)

// silentExponent is the gain exponent below which output is muted.
const silentExponent = -10

var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrUnknownSound   = errors.New("unknown sound")
)

// Manager owns decoded sounds and the music track.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate

	muted        bool
	masterVolume float64
	musicLevel   float64
	sfxLevel     float64

	sounds map[string]*beep.Buffer

	musicCtrl   *beep.Ctrl
	musicVolume *effects.Volume
	musicName   string
}

// New creates a manager with the volumes from cfg.
func New(cfg config.AudioConfig) *Manager {
	return &Manager{
		sampleRate:   DefaultSampleRate,
		muted:        cfg.Muted,
		masterVolume: clamp(float64(cfg.MasterVolume), 0, 1),
		musicLevel:   clamp(float64(cfg.MusicVolume), 0, 1),
		sfxLevel:     clamp(float64(cfg.SFXVolume), 0, 1),
		sounds:       make(map[string]*beep.Buffer),
	}
}

// Init opens the speaker.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	m.initialized = true
	return nil
}

// Close stops playback and releases the speaker.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.musicCtrl = nil
	m.musicVolume = nil
	m.musicName = ""
	m.initialized = false
}

// LoadSound decodes a WAV stream into memory under name.
func (m *Manager) LoadSound(name string, r io.Reader) error {
	streamer, format, err := wav.Decode(r)
	if err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	defer streamer.Close()

	target := beep.Format{SampleRate: m.sampleRate, NumChannels: 2, Precision: 2}
	buf := beep.NewBuffer(target)
	if format.SampleRate != m.sampleRate {
		buf.Append(beep.Resample(4, format.SampleRate, m.sampleRate, streamer))
	} else {
		buf.Append(streamer)
	}
	if err := streamer.Err(); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	m.mu.Lock()
	m.sounds[name] = buf
	m.mu.Unlock()
	return nil
}

// LoadFile loads a WAV file, using its path as the sound name.
func (m *Manager) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return m.LoadSound(path, f)
}

// Has reports whether name was loaded.
func (m *Manager) Has(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.sounds[name]
	return ok
}

// PlaySound starts a one-shot playback of name.
func (m *Manager) PlaySound(name string) error {
	m.mu.RLock()
	buf, ok := m.sounds[name]
	initialized := m.initialized
	gain := m.effectiveVolume(m.sfxLevel)
	m.mu.RUnlock()

	if !initialized {
		return ErrNotInitialized
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSound, name)
	}

	speaker.Play(newVolume(buf.Streamer(0, buf.Len()), gain))
	return nil
}

// PlayMusic loops name as background music, replacing the current track.
func (m *Manager) PlayMusic(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return ErrNotInitialized
	}
	buf, ok := m.sounds[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSound, name)
	}

	m.stopMusicLocked()
	m.musicCtrl = &beep.Ctrl{Streamer: &loopStreamer{buf: buf, cur: buf.Streamer(0, buf.Len())}}
	m.musicVolume = newVolume(m.musicCtrl, m.effectiveVolume(m.musicLevel))
	m.musicName = name
	speaker.Play(m.musicVolume)
	return nil
}

// StopMusic ends the music track.
func (m *Manager) StopMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopMusicLocked()
}

func (m *Manager) stopMusicLocked() {
	if m.musicCtrl == nil {
		return
	}
	// A Ctrl without a streamer reports exhaustion and the speaker drops it.
	speaker.Lock()
	m.musicCtrl.Streamer = nil
	speaker.Unlock()
	m.musicCtrl = nil
	m.musicVolume = nil
	m.musicName = ""
}

// SetMusicPaused pauses or resumes the music track.
func (m *Manager) SetMusicPaused(paused bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.musicCtrl == nil {
		return
	}
	speaker.Lock()
	m.musicCtrl.Paused = paused
	speaker.Unlock()
}

// MusicName returns the name of the playing track, or "".
func (m *Manager) MusicName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.musicName
}

// SetMuted silences all output.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
	m.updateMusicVolume()
}

// Muted reports whether output is silenced.
func (m *Manager) Muted() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.muted
}

// SetMasterVolume sets the master volume (0.0 to 1.0).
func (m *Manager) SetMasterVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.masterVolume = clamp(vol, 0, 1)
	m.updateMusicVolume()
}

// SetMusicVolume sets the music volume (0.0 to 1.0).
func (m *Manager) SetMusicVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.musicLevel = clamp(vol, 0, 1)
	m.updateMusicVolume()
}

// SetSFXVolume sets the sound effect volume (0.0 to 1.0).
func (m *Manager) SetSFXVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sfxLevel = clamp(vol, 0, 1)
}

// Volumes returns the master, music and effect levels.
func (m *Manager) Volumes() (master, music, sfx float64) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.masterVolume, m.musicLevel, m.sfxLevel
}

func (m *Manager) effectiveVolume(level float64) float64 {
	if m.muted {
		return 0
	}
	return m.masterVolume * level
}

func (m *Manager) updateMusicVolume() {
	if m.musicVolume == nil {
		return
	}
	exp, silent := gainExponent(m.effectiveVolume(m.musicLevel))
	speaker.Lock()
	m.musicVolume.Volume = exp
	m.musicVolume.Silent = silent
	speaker.Unlock()
}

func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	exp, silent := gainExponent(vol)
	return &effects.Volume{Streamer: s, Base: 2, Volume: exp, Silent: silent}
}

// gainExponent maps a linear 0-1 volume to the base-2 exponent used by
// effects.Volume.
func gainExponent(vol float64) (exp float64, silent bool) {
	if vol <= 0 {
		return silentExponent, true
	}
	exp = math.Log2(vol)
	if exp < silentExponent {
		return silentExponent, true
	}
	return exp, false
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// loopStreamer replays a buffer forever.
type loopStreamer struct {
	buf *beep.Buffer
	cur beep.StreamSeeker
}

func (l *loopStreamer) Stream(samples [][2]float64) (int, bool) {
	if l.buf.Len() == 0 {
		return 0, false
	}
	filled := 0
	for filled < len(samples) {
		n, ok := l.cur.Stream(samples[filled:])
		filled += n
		if !ok || n == 0 {
			if err := l.cur.Seek(0); err != nil {
				return filled, filled > 0
			}
		}
	}
	return filled, true
}

func (l *loopStreamer) Err() error {
	return l.cur.Err()
}
