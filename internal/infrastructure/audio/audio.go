// Package audio plays the looping background track and the click effect.
package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// ErrUnsupportedFormat is returned for files that are not wav, ogg or mp3.
var ErrUnsupportedFormat = errors.New("audio: unsupported format")

// Channel is anything whose playback volume can be set.
type Channel interface {
	// SetVolume sets the gain in [0.0, 1.0].
	SetVolume(volume float64)
}

// Gain converts a 0..100 volume level to a normalized gain.
// Levels outside the range are clamped.
func Gain(level int) float64 {
	return float64(ClampLevel(level)) / 100.0
}

// ClampLevel clamps level into 0..100.
func ClampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > 100 {
		return 100
	}
	return level
}

// stream is what every ebiten decoder returns.
type stream interface {
	io.ReadSeeker
	Length() int64
}

func decode(name string, sampleRate int, data []byte) (stream, error) {
	src := bytes.NewReader(data)

	switch strings.ToLower(path.Ext(name)) {
	case ".wav":
		return wav.DecodeWithSampleRate(sampleRate, src)
	case ".ogg":
		return vorbis.DecodeWithSampleRate(sampleRate, src)
	case ".mp3":
		return mp3.DecodeWithSampleRate(sampleRate, src)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
}

func load(fsys fs.FS, name string, sampleRate int) (stream, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	s, err := decode(name, sampleRate, data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return s, nil
}

// Mixer owns the audio context, the music loop and the click effect.
type Mixer struct {
	ctx   *audio.Context
	music *audio.Player
	click *audio.Player
}

// Open initializes audio playback, starts musicPath looping and loads
// clickPath. Both files are read from fsys.
func Open(fsys fs.FS, sampleRate int, musicPath, clickPath string) (*Mixer, error) {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}

	m := &Mixer{ctx: ctx}

	musicStream, err := load(fsys, musicPath, ctx.SampleRate())
	if err != nil {
		return nil, err
	}
	m.music, err = ctx.NewPlayer(audio.NewInfiniteLoop(musicStream, musicStream.Length()))
	if err != nil {
		return nil, fmt.Errorf("failed to create music player: %w", err)
	}

	clickStream, err := load(fsys, clickPath, ctx.SampleRate())
	if err != nil {
		m.music.Close()
		return nil, err
	}
	m.click, err = ctx.NewPlayer(clickStream)
	if err != nil {
		m.music.Close()
		return nil, fmt.Errorf("failed to create click player: %w", err)
	}

	m.music.Play()
	return m, nil
}

// Music returns the background track channel.
func (m *Mixer) Music() Channel { return m.music }

// Click returns the click effect channel.
func (m *Mixer) Click() Channel { return m.click }

// PlayClick restarts the click effect from the beginning. The effect is
// not played when it cannot be rewound.
func (m *Mixer) PlayClick() error {
	if err := m.click.Rewind(); err != nil {
		return fmt.Errorf("failed to rewind click: %w", err)
	}
	m.click.Play()
	return nil
}

// Close stops playback and releases both players.
func (m *Mixer) Close() error {
	return errors.Join(m.music.Close(), m.click.Close())
}
