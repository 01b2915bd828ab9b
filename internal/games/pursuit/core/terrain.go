package core

// Terrain is the static accessibility class of a cell.
type Terrain uint8

const (
	TerrainGround Terrain = iota
	TerrainWall
)

// String returns the string representation of a terrain.
func (t Terrain) String() string {
	switch t {
	case TerrainGround:
		return "ground"
	case TerrainWall:
		return "wall"
	default:
		return "unknown"
	}
}

// AccessibleTo reports whether u may enter a cell of this terrain.
// Ground admits every unit, walls admit none. A nil unit gets the same answer.
func (t Terrain) AccessibleTo(u *Unit) bool {
	return t == TerrainGround
}
