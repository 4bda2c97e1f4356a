// internal/types/types.go
package types

// EntityID uniquely identifies a live mob or character instance for its
// whole lifetime. IDs are never reused.
type EntityID string

// PlayerID identifies one of the cooperating players.
type PlayerID string

// ZoneKind discriminates between a player's defensive zone and the shared
// central arena the boss spawns in.
type ZoneKind int

const (
	ZonePlayer ZoneKind = iota
	ZoneCentral
)

// Zone is a closed sum over the places a mob can be assigned to: one of the
// numbered player zones, or the central arena. The central arena has no loop
// path and is excluded from lap logic.
type Zone struct {
	Kind  ZoneKind
	Index int // player zone index, meaningful only when Kind == ZonePlayer
}

// PlayerZone returns the zone belonging to player slot index.
func PlayerZone(index int) Zone {
	return Zone{Kind: ZonePlayer, Index: index}
}

// CentralZone returns the shared boss arena.
func CentralZone() Zone {
	return Zone{Kind: ZoneCentral}
}

// IsCentral reports whether the zone is the shared arena.
func (z Zone) IsCentral() bool {
	return z.Kind == ZoneCentral
}
