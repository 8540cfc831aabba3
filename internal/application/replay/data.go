package replay

import "errors"

// ErrEmptyRecording is returned for recordings without frames
var ErrEmptyRecording = errors.New("empty recording")

// Version is written into every recording
const Version = "1.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	L  bool `json:"l,omitempty"`  // Left held
	R  bool `json:"r,omitempty"`  // Right held
	A  bool `json:"a,omitempty"`  // AnyKey
	JP bool `json:"jp,omitempty"` // JumpPressed
	RP bool `json:"rp,omitempty"` // RestartPressed
	G  bool `json:"g,omitempty"`  // ToggleGrid
	Q  bool `json:"q,omitempty"`  // Quit
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Levels    []string     `json:"levels"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
