package audio

import (
	"bytes"
	"fmt"
	"time"

	"github.com/hajimehoshi/go-mp3"
)

// decodedFrameBytes is the size of one decoded sample frame: 16-bit stereo.
const decodedFrameBytes = 4

// Info describes decoded mp3 audio.
type Info struct {
	SampleRate int
	Duration   time.Duration
}

// Probe decodes mp3 data far enough to learn its sample rate and length.
func Probe(data []byte) (Info, error) {
	dec, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return Info{}, fmt.Errorf("decode mp3: %w", err)
	}
	if dec.SampleRate() <= 0 || dec.Length() < 0 {
		return Info{}, fmt.Errorf("decode mp3: unknown length")
	}

	samples := dec.Length() / decodedFrameBytes
	return Info{
		SampleRate: dec.SampleRate(),
		Duration:   time.Duration(samples) * time.Second / time.Duration(dec.SampleRate()),
	}, nil
}
