package sim

import "fmt"

// Faction is one of the three playable civilizations. The core treats it as
// a pure label: no faction has differentiated numeric effects yet.
type Faction int

const (
	FactionRadiant Faction = iota
	FactionAurum
	FactionSolari
)

// Factions lists every playable faction.
var Factions = []Faction{FactionRadiant, FactionAurum, FactionSolari}

// String returns the faction's display name.
func (f Faction) String() string {
	switch f {
	case FactionRadiant:
		return "Radiant"
	case FactionAurum:
		return "Aurum"
	case FactionSolari:
		return "Solari"
	default:
		return fmt.Sprintf("Faction(%d)", int(f))
	}
}

// ParseFaction resolves a display name to a Faction.
func ParseFaction(name string) (Faction, error) {
	for _, f := range Factions {
		if f.String() == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown faction %q", name)
}
