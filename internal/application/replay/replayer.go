package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/younwookim/platformfighter/internal/application/system"
)

// ErrCorruptReplay is returned for replay data that cannot be played back
var ErrCorruptReplay = errors.New("corrupt replay")

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file)
}

// Decode reads and checks replay data
func Decode(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if err := data.Check(); err != nil {
		return nil, err
	}
	return &data, nil
}

// Check verifies the format version and that frames are numbered 0..n-1
func (d *ReplayData) Check() error {
	if d.Version != Version {
		return fmt.Errorf("%w: unsupported version %q", ErrCorruptReplay, d.Version)
	}
	for i, fi := range d.Frames {
		if fi.F != i {
			return fmt.Errorf("%w: frame %d recorded as %d", ErrCorruptReplay, i, fi.F)
		}
	}
	return nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Input(), true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}
