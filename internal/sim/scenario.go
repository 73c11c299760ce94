package sim

import (
	"fmt"

	"github.com/pixil98/go-errors"

	"github.com/pixil98/go-sol/internal/geom"
)

// SunSpec describes a sun placement within a scenario. Zero intensity or
// radius means "use the default".
type SunSpec struct {
	Position  geom.Vector `json:"position"`
	Intensity float64     `json:"intensity,omitempty"`
	Radius    float64     `json:"radius,omitempty"`
}

func (s *SunSpec) Validate() error {
	el := errors.NewErrorList()

	if s.Intensity < 0 {
		el.Add(fmt.Errorf("intensity must not be negative"))
	}
	if s.Radius < 0 {
		el.Add(fmt.Errorf("radius must not be negative"))
	}

	return el.Err()
}

// Build creates the sun the spec describes.
func (s *SunSpec) Build() *Sun {
	sun := NewSun(s.Position)
	if s.Intensity != 0 {
		sun.Intensity = s.Intensity
	}
	if s.Radius != 0 {
		sun.Radius = s.Radius
	}
	return sun
}

// StartSlot is one player's starting layout: a forge position and the
// positions of its opening mirrors.
type StartSlot struct {
	Forge   geom.Vector   `json:"forge"`
	Mirrors []geom.Vector `json:"mirrors"`
}

func (s *StartSlot) Validate() error {
	if len(s.Mirrors) == 0 {
		return fmt.Errorf("at least one mirror position is required")
	}
	return nil
}

// Scenario is a loadable match layout: where the suns sit and where each
// player slot starts. NewGame assigns roster entries to slots in order and
// silently drops entries beyond the last slot.
type Scenario struct {
	Name  string      `json:"name"`
	Suns  []SunSpec   `json:"suns"`
	Slots []StartSlot `json:"slots"`
}

func (s *Scenario) Validate() error {
	el := errors.NewErrorList()

	if len(s.Suns) == 0 {
		el.Add(fmt.Errorf("at least one sun is required"))
	}
	if len(s.Slots) == 0 {
		el.Add(fmt.Errorf("at least one start slot is required"))
	}
	for i, sun := range s.Suns {
		if err := sun.Validate(); err != nil {
			el.Add(fmt.Errorf("sun %d: %w", i, err))
		}
	}
	for i, slot := range s.Slots {
		if err := slot.Validate(); err != nil {
			el.Add(fmt.Errorf("slot %d: %w", i, err))
		}
	}

	return el.Err()
}
