package arcade

// Rect is an axis-aligned box in play-field units. The origin is the top
// left corner of the field and y grows downward.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether r and o intersect. Boxes that only share an edge
// do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Behaviour is the movement mode of an entity.
type Behaviour int

const (
	Formation Behaviour = iota
	Diving
)

func (b Behaviour) String() string {
	if b == Diving {
		return "diving"
	}

	return "formation"
}

// Entity is an enemy ship.
type Entity struct {
	Rect
	AnchorX   float64
	AnchorY   float64
	Behaviour Behaviour
	Alive     bool
}

func newEntity(x, y float64) Entity {
	return Entity{
		Rect: Rect{
			X: x,
			Y: y,
			W: EntityWidth,
			H: EntityHeight,
		},
		AnchorX: x,
		AnchorY: y,
		Alive:   true,
	}
}
