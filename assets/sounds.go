package assets

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/milk9111/dasher/prefabs"
)

const sampleRate = 44100

var (
	contextOnce  sync.Once
	audioContext *audio.Context
)

// ebiten allows a single audio context per process.
func sharedContext() *audio.Context {
	contextOnce.Do(func() {
		audioContext = audio.CurrentContext()
		if audioContext == nil {
			audioContext = audio.NewContext(sampleRate)
		}
	})
	return audioContext
}

// Sounds loads sound effects from a directory and keeps one player per file.
type Sounds struct {
	fsys    fs.FS
	logger  *log.Logger
	players map[string]*audio.Player
}

func NewSounds(dir string, logger *log.Logger) *Sounds {
	if logger == nil {
		logger = log.Default()
	}
	return &Sounds{fsys: os.DirFS(dir), logger: logger, players: make(map[string]*audio.Player)}
}

// Player returns a player for spec.File. A missing file yields (nil, nil) so
// the event stays silent; the miss is remembered and reported once.
func (s *Sounds) Player(spec prefabs.AudioSpec) (*audio.Player, error) {
	key := cleanAssetPath(spec.File)
	if p, ok := s.players[key]; ok {
		return p, nil
	}

	b, err := fs.ReadFile(s.fsys, key)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Warn("sound missing", "event", spec.Event, "file", key)
		s.players[key] = nil
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("assets: read sound %s: %w", key, err)
	}

	ctx := sharedContext()
	var p *audio.Player
	if strings.HasSuffix(strings.ToLower(key), ".wav") {
		stream, err := wav.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("assets: decode wav %s: %w", key, err)
		}
		p, err = ctx.NewPlayer(stream)
		if err != nil {
			return nil, fmt.Errorf("assets: player %s: %w", key, err)
		}
	} else {
		// Raw PCM in ebiten's native format.
		p = ctx.NewPlayerFromBytes(b)
	}

	s.players[key] = p
	return p, nil
}

func (s *Sounds) Close() {
	for key, p := range s.players {
		if p == nil {
			delete(s.players, key)
			continue
		}
		if err := p.Close(); err != nil {
			s.logger.Warn("close sound", "file", key, "err", err)
		}
		delete(s.players, key)
	}
}
