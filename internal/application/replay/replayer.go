package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/gemhop/internal/application/system"
)

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

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if len(data.Frames) == 0 {
		return nil, fmt.Errorf("replay %s: %w", filename, ErrEmptyRecording)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return system.InputState{
		Quit:           fi.Q,
		ToggleGrid:     fi.G,
		AnyKey:         fi.A,
		JumpPressed:    fi.JP,
		RestartPressed: fi.RP,
		Left:           fi.L,
		Right:          fi.R,
	}, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Levels returns the level list the recording was made with
func (r *Replayer) Levels() []string {
	return r.data.Levels
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// Ticker advances a simulation by one frame of input
type Ticker interface {
	Tick(in system.InputState) error
}

// Play feeds every recorded frame to t until the recording ends or a
// frame asks to quit. It returns the number of frames ticked.
func (r *Replayer) Play(t Ticker) (int, error) {
	played := 0
	for {
		in, ok := r.GetInput()
		if !ok || in.Quit {
			return played, nil
		}
		if err := t.Tick(in); err != nil {
			return played, fmt.Errorf("frame %d: %w", r.frame-1, err)
		}
		played++
	}
}
