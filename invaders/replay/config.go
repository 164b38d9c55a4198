package replay

import (
	"errors"
	"fmt"

	"github.com/zkarcade/invaders/invaders/engine"
	"github.com/zkarcade/invaders/invaders/trace"
)

type Config struct {
	// Codec is the trace layout claims are encoded with. There is no default.
	Codec trace.Codec
	// MaxEndFrame bounds the replay. Zero means engine.FrameLimit.
	MaxEndFrame uint16
}

func (c *Config) Check() error {
	if c.Codec == nil {
		return errors.New("trace codec must be selected")
	}
	if c.MaxEndFrame > engine.FrameLimit {
		return fmt.Errorf("max end frame %d exceeds frame limit %d", c.MaxEndFrame, engine.FrameLimit)
	}
	return nil
}
