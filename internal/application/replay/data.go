package replay

import (
	"github.com/younwookim/platformfighter/internal/application/system"
	"github.com/younwookim/platformfighter/internal/infrastructure/config"
)

// Version of the replay file format
const Version = "1.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	J bool `json:"j,omitempty"` // Jump
	A bool `json:"a,omitempty"` // Attack
}

// Input converts the recorded frame back into an input snapshot
func (fi FrameInput) Input() system.InputState {
	return system.InputState{
		Left:   fi.L,
		Right:  fi.R,
		Jump:   fi.J,
		Attack: fi.A,
	}
}

// FrameFromInput records an input snapshot as frame f
func FrameFromInput(f int, in system.InputState) FrameInput {
	return FrameInput{
		F: f,
		L: in.Left,
		R: in.Right,
		J: in.Jump,
		A: in.Attack,
	}
}

// ReplayData contains all data needed to replay a game session.
// The full configuration is stored so a replay does not depend on the
// config file that was used while recording.
type ReplayData struct {
	Version   string             `json:"version"`
	Source    string             `json:"source"` // Config source the session ran with
	StartTime string             `json:"startTime"`
	Config    *config.GameConfig `json:"config,omitempty"`
	Frames    []FrameInput       `json:"frames"`
}
