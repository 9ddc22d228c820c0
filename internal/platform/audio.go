// internal/platform/audio.go
package platform

import (
	"bytes"
	"fmt"
	"go-space-shooter/internal/assets"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const SampleRate = 44100

// SoundBank — sound.Player поверх ebiten/audio. Звуки декодируются заранее,
// каждый Play перематывает свой плеер в начало.
type SoundBank struct {
	ctx     *audio.Context
	players map[string]*audio.Player
}

// NewSoundBank загружает звуки с идентификаторами ids. Пустые идентификаторы пропускаются.
func NewSoundBank(loader assets.Loader, ids ...string) (*SoundBank, error) {
	b := &SoundBank{
		ctx:     audio.NewContext(SampleRate),
		players: make(map[string]*audio.Player),
	}
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := b.players[id]; ok {
			continue
		}
		data, err := loader.Sound(id)
		if err != nil {
			return nil, fmt.Errorf("load sound %q: %w", id, err)
		}
		pcm, err := decode(data)
		if err != nil {
			return nil, fmt.Errorf("decode sound %q: %w", id, err)
		}
		b.players[id] = b.ctx.NewPlayerFromBytes(pcm)
	}
	log.Printf("Loaded %d sounds", len(b.players))
	return b, nil
}

func (b *SoundBank) Play(id string) {
	p, ok := b.players[id]
	if !ok {
		return
	}
	if err := p.Rewind(); err != nil {
		log.Printf("rewind %q: %v", id, err)
		return
	}
	p.Play()
}

// decode определяет формат по сигнатуре: RIFF — wav, OggS — vorbis, иначе mp3
func decode(data []byte) ([]byte, error) {
	var (
		stream io.Reader
		err    error
	)
	src := bytes.NewReader(data)
	switch {
	case bytes.HasPrefix(data, []byte("RIFF")):
		stream, err = wav.DecodeWithSampleRate(SampleRate, src)
	case bytes.HasPrefix(data, []byte("OggS")):
		stream, err = vorbis.DecodeWithSampleRate(SampleRate, src)
	default:
		stream, err = mp3.DecodeWithSampleRate(SampleRate, src)
	}
	if err != nil {
		return nil, err
	}
	return io.ReadAll(stream)
}
