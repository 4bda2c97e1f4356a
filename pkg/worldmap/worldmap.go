// pkg/worldmap/worldmap.go
package worldmap

import "math"

// Point is a 2-D position on the map plane.
type Point struct {
	X, Y float64
}

// Map lays out the play area: an arena at the origin surrounded by one
// circular zone per player, each with a closed loop path around its center.
type Map struct {
	zoneCenters []Point
	zoneRadius  float64
	loopRadius  float64
	loopSides   int
}

// New builds a map for playerCount zones spread evenly on a ring of radius
// ringDist around the central arena.
func New(playerCount int, ringDist, zoneRadius, loopRadius float64, loopSides int) *Map {
	centers := make([]Point, playerCount)
	for i := 0; i < playerCount; i++ {
		angle := 2 * math.Pi * float64(i) / float64(playerCount)
		centers[i] = Point{
			X: ringDist * math.Cos(angle),
			Y: ringDist * math.Sin(angle),
		}
	}
	return &Map{
		zoneCenters: centers,
		zoneRadius:  zoneRadius,
		loopRadius:  loopRadius,
		loopSides:   loopSides,
	}
}

// ZoneCount returns the number of player zones.
func (m *Map) ZoneCount() int {
	return len(m.zoneCenters)
}

// ZoneCenter returns the center of a player zone, which is also where its
// statue stands.
func (m *Map) ZoneCenter(index int) Point {
	return m.zoneCenters[index]
}

// ArenaCenter returns the center of the shared boss arena.
func (m *Map) ArenaCenter() Point {
	return Point{}
}

// LoopLength returns the perimeter of a zone's loop path. The loop is a
// regular polygon inscribed in the loop-radius circle.
func (m *Map) LoopLength() float64 {
	side := 2 * m.loopRadius * math.Sin(math.Pi/float64(m.loopSides))
	return side * float64(m.loopSides)
}

// LoopPosition maps path progress in [0,1) to a map position on the zone's
// loop. Progress 0 is the loop's east corner; progress wraps.
func (m *Map) LoopPosition(zoneIndex int, progress float64) Point {
	progress = progress - math.Floor(progress)
	center := m.zoneCenters[zoneIndex]

	scaled := progress * float64(m.loopSides)
	corner := int(scaled)
	frac := scaled - float64(corner)

	from := m.loopCorner(center, corner)
	to := m.loopCorner(center, corner+1)
	return Point{
		X: from.X + (to.X-from.X)*frac,
		Y: from.Y + (to.Y-from.Y)*frac,
	}
}

func (m *Map) loopCorner(center Point, i int) Point {
	angle := 2 * math.Pi * float64(i%m.loopSides) / float64(m.loopSides)
	return Point{
		X: center.X + m.loopRadius*math.Cos(angle),
		Y: center.Y + m.loopRadius*math.Sin(angle),
	}
}

// RandomPointInZone returns a uniformly distributed point inside the zone
// circle. rand01 must return values in [0,1).
func (m *Map) RandomPointInZone(zoneIndex int, rand01 func() float64) Point {
	center := m.zoneCenters[zoneIndex]
	// sqrt keeps the distribution uniform over the disc area
	r := m.zoneRadius * math.Sqrt(rand01())
	angle := 2 * math.Pi * rand01()
	return Point{
		X: center.X + r*math.Cos(angle),
		Y: center.Y + r*math.Sin(angle),
	}
}

// Dist returns the euclidean distance between two points.
func Dist(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}
