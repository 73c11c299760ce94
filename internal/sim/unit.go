package sim

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Unit defines a producible unit type loaded from asset files. The core
// only consumes its cost; stats beyond that wait on combat being modeled.
type Unit struct {
	// Name is the unit's display name (e.g., "Scout").
	Name string `json:"name"`

	// Cost is the solarium price charged when production succeeds.
	Cost float64 `json:"cost"`

	// Description is shown in the demo walkthrough and build menus.
	Description string `json:"description,omitempty"`
}

func (u *Unit) Validate() error {
	el := errors.NewErrorList()

	if u.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	if u.Cost <= 0 {
		el.Add(fmt.Errorf("cost must be positive"))
	}

	return el.Err()
}
