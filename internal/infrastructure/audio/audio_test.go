package audio

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"
	"testing/fstest"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pcmWav builds a 16-bit stereo PCM wav with frames sample frames.
func pcmWav(t *testing.T, sampleRate, frames int) []byte {
	t.Helper()

	const channels, bits = 2, 16
	blockAlign := channels * bits / 8
	data := make([]byte, frames*blockAlign)
	for i := range data {
		data[i] = byte(i)
	}

	var buf bytes.Buffer
	w := func(v any) { require.NoError(t, binary.Write(&buf, binary.LittleEndian, v)) }
	buf.WriteString("RIFF")
	w(uint32(36 + len(data)))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	w(uint32(16))
	w(uint16(1))
	w(uint16(channels))
	w(uint32(sampleRate))
	w(uint32(sampleRate * blockAlign))
	w(uint16(blockAlign))
	w(uint16(bits))
	buf.WriteString("data")
	w(uint32(len(data)))
	buf.Write(data)
	return buf.Bytes()
}

func TestGain(t *testing.T) {
	tests := []struct {
		level    int
		expected float64
	}{
		{0, 0.0},
		{50, 0.5},
		{80, 0.8},
		{100, 1.0},
		{-10, 0.0},
		{250, 1.0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, Gain(tt.level), 1e-12, "level %d", tt.level)
	}
}

func TestGain_MatchesLevelOverRange(t *testing.T) {
	for v := 0; v <= 100; v++ {
		assert.InDelta(t, float64(v)/100.0, Gain(v), 1e-12)
	}
}

func TestClampLevel(t *testing.T) {
	assert.Equal(t, 0, ClampLevel(-1))
	assert.Equal(t, 42, ClampLevel(42))
	assert.Equal(t, 100, ClampLevel(101))
}

func TestDecode_UnsupportedFormat(t *testing.T) {
	_, err := decode("music.flac", 44100, []byte("whatever"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDecode_CorruptWav(t *testing.T) {
	_, err := decode("click.WAV", 44100, []byte("not a riff header"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := load(fstest.MapFS{}, "sounds/click.wav", 44100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read sounds/click.wav")
}

func TestDecode_Wav(t *testing.T) {
	s, err := decode("sounds/click.wav", 44100, pcmWav(t, 44100, 16))
	require.NoError(t, err)
	assert.Equal(t, int64(64), s.Length())
}

func TestLoad_MusicLoops(t *testing.T) {
	fsys := fstest.MapFS{
		"sounds/background.wav": &fstest.MapFile{Data: pcmWav(t, 44100, 16)},
	}

	s, err := load(fsys, "sounds/background.wav", 44100)
	require.NoError(t, err)

	loop := audio.NewInfiniteLoop(s, s.Length())
	buf := make([]byte, 3*s.Length())
	n, err := io.ReadFull(loop, buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)
}
