package game

import "strings"

// Habitat represents the terrain painted on a tile.
type Habitat int

const (
	HabitatNone Habitat = iota
	HabitatForest
	HabitatRiver
	HabitatPrairie
	HabitatWetland
	HabitatMountain
)

// AllHabitats returns every habitat a tile can carry.
func AllHabitats() []Habitat {
	return []Habitat{
		HabitatForest,
		HabitatRiver,
		HabitatPrairie,
		HabitatWetland,
		HabitatMountain,
	}
}

// String returns the habitat name.
func (h Habitat) String() string {
	switch h {
	case HabitatForest:
		return "Forest"
	case HabitatRiver:
		return "River"
	case HabitatPrairie:
		return "Prairie"
	case HabitatWetland:
		return "Wetland"
	case HabitatMountain:
		return "Mountain"
	default:
		return "None"
	}
}

// ParseHabitat converts a habitat name to Habitat.
// Unknown names map to HabitatNone.
func ParseHabitat(s string) Habitat {
	for _, h := range AllHabitats() {
		if strings.EqualFold(h.String(), s) {
			return h
		}
	}
	return HabitatNone
}

// Wildlife represents a wildlife species token.
type Wildlife int

const (
	WildlifeNone Wildlife = iota
	WildlifeBear
	WildlifeHawk
	WildlifeElk
	WildlifeFox
	WildlifeSalmon
)

// AllWildlife returns every species a token can be.
func AllWildlife() []Wildlife {
	return []Wildlife{
		WildlifeBear,
		WildlifeHawk,
		WildlifeElk,
		WildlifeFox,
		WildlifeSalmon,
	}
}

// String returns the species name.
func (w Wildlife) String() string {
	switch w {
	case WildlifeBear:
		return "Bear"
	case WildlifeHawk:
		return "Hawk"
	case WildlifeElk:
		return "Elk"
	case WildlifeFox:
		return "Fox"
	case WildlifeSalmon:
		return "Salmon"
	default:
		return "None"
	}
}

// ParseWildlife converts a species name to Wildlife.
// Unknown names map to WildlifeNone.
func ParseWildlife(s string) Wildlife {
	for _, w := range AllWildlife() {
		if strings.EqualFold(w.String(), s) {
			return w
		}
	}
	return WildlifeNone
}
