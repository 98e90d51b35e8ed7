package game

// Direction is one discrete movement input. The input loop produces exactly
// one Direction per accepted turn; there is no diagonal movement.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Delta returns the grid offset for a direction. Horizontal steps cover two
// columns because a monospace terminal cell is roughly twice as tall as it
// is wide; one east/west step should feel like one north/south step.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 2, 0
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}
