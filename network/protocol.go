package network

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lixenwraith/lightbeam/core"
	"github.com/lixenwraith/lightbeam/event"
)

// ErrUnknownCommand is returned for inbound commands the hub does not understand
var ErrUnknownCommand = errors.New("unknown command")

// Command types accepted from clients as JSON text messages
const (
	CmdFire = "fire"
	CmdAim  = "aim"
)

// Command is one client request
// Frames flow out as binary msgpack; commands flow in as JSON text
type Command struct {
	Type  string  `json:"type"`
	Color string  `json:"color,omitempty"`
	Delta float64 `json:"delta,omitempty"`
}

// ParseCommand decodes a client message into the game event it requests
func ParseCommand(data []byte) (event.EventType, any, error) {
	var cmd Command
	if err := json.Unmarshal(data, &cmd); err != nil {
		return event.EventNone, nil, fmt.Errorf("parse command: %w", err)
	}

	switch cmd.Type {
	case CmdFire:
		color, ok := core.ParseLightColor(cmd.Color)
		if !ok {
			return event.EventNone, nil, fmt.Errorf("%w: fire color %q", ErrUnknownCommand, cmd.Color)
		}
		return event.EventBeamSpawnRequest, &event.BeamSpawnRequestPayload{Color: color}, nil
	case CmdAim:
		return event.EventAimChange, &event.AimChangePayload{Delta: cmd.Delta}, nil
	default:
		return event.EventNone, nil, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Type)
	}
}
