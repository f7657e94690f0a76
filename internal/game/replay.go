package game

import (
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"
)

const replayVersion = 1

// Replay is the recorded history of one deck: a frame for the deck as built,
// then one per successful move. A cursor walks the frames for playback.
type Replay struct {
	mu     sync.RWMutex
	name   string
	frames []*Snapshot
	pos    int
}

// NewReplay creates an empty replay stored under name.
func NewReplay(name string) *Replay {
	return &Replay{name: name}
}

// Name returns the name the replay is saved under.
func (r *Replay) Name() string { return r.name }

// begin discards earlier frames, which belong to a previous deck list, and
// starts over from s.
func (r *Replay) begin(s *Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = []*Snapshot{s}
	r.pos = 0
}

func (r *Replay) push(s *Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, s)
}

// Len returns the number of frames.
func (r *Replay) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.frames)
}

// Frame returns frame i.
func (r *Replay) Frame(i int) (*Snapshot, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i < 0 || i >= len(r.frames) {
		return nil, false
	}
	return r.frames[i], true
}

// Frames yields every frame with its index.
func (r *Replay) Frames() iter.Seq2[int, *Snapshot] {
	r.mu.RLock()
	frames := slices.Clone(r.frames)
	r.mu.RUnlock()
	return slices.All(frames)
}

// Rewind moves the cursor to the first frame.
func (r *Replay) Rewind() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pos = 0
}

// Position returns the cursor index.
func (r *Replay) Position() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.pos
}

// Step moves the cursor by delta frames, stopping at either end, and returns
// the frame under it. It reports false only for an empty replay.
func (r *Replay) Step(delta int) (*Snapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.frames) == 0 {
		return nil, false
	}
	r.pos = min(max(r.pos+delta, 0), len(r.frames)-1)
	return r.frames[r.pos], true
}

// Matches reports whether the last frame is the current state of d.
func (r *Replay) Matches(d *Deck) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.frames) == 0 {
		return false
	}
	return r.frames[len(r.frames)-1].Checksum() == d.Snapshot().Checksum()
}

type replayHeader struct {
	Name       string
	SavedAt    time.Time
	Version    int
	FrameCount int
}

func replayPath(directory, name string) string {
	return filepath.Join(directory, name+".replay")
}

// SaveToFile writes the replay as gzipped gob to <directory>/<name>.replay.
func (r *Replay) SaveToFile(directory string) (err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if err := os.MkdirAll(directory, 0o755); err != nil {
		return fmt.Errorf("create replay directory: %w", err)
	}
	file, err := os.Create(replayPath(directory, r.name))
	if err != nil {
		return fmt.Errorf("create replay file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close replay file: %w", cerr)
		}
	}()

	gz := gzip.NewWriter(file)
	enc := gob.NewEncoder(gz)
	header := replayHeader{
		Name:       r.name,
		SavedAt:    time.Now(),
		Version:    replayVersion,
		FrameCount: len(r.frames),
	}
	if err := enc.Encode(&header); err != nil {
		return fmt.Errorf("encode replay header: %w", err)
	}
	for i, frame := range r.frames {
		if err := enc.Encode(frame.Zones); err != nil {
			return fmt.Errorf("encode frame %d: %w", i, err)
		}
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("flush replay: %w", err)
	}
	return nil
}

// LoadReplayFromFile reads a replay written by SaveToFile.
func LoadReplayFromFile(directory, name string) (*Replay, error) {
	file, err := os.Open(replayPath(directory, name))
	if err != nil {
		return nil, fmt.Errorf("open replay file: %w", err)
	}
	defer file.Close()

	gz, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("read replay: %w", err)
	}
	defer gz.Close()

	dec := gob.NewDecoder(gz)
	var header replayHeader
	if err := dec.Decode(&header); err != nil {
		return nil, fmt.Errorf("decode replay header: %w", err)
	}
	if header.Version != replayVersion {
		return nil, fmt.Errorf("unsupported replay version: %d", header.Version)
	}

	replay := &Replay{name: header.Name, frames: make([]*Snapshot, 0, header.FrameCount)}
	for i := range header.FrameCount {
		zones := make(map[ZoneID][]string)
		if err := dec.Decode(&zones); err != nil {
			return nil, fmt.Errorf("decode frame %d: %w", i, err)
		}
		replay.frames = append(replay.frames, &Snapshot{Zones: zones})
	}
	return replay, nil
}
