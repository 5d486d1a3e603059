package arcade

// Pattern identifies a wave formation.
type Pattern int

const (
	Grid Pattern = iota
	Wedge
	SplitColumns
	Checkerboard
)

var patternNames = [...]string{"grid", "wedge", "split columns", "checkerboard"}

func (p Pattern) String() string {
	return patternNames[p]
}

// PatternFor returns the formation used for level. Patterns repeat every
// four levels.
func PatternFor(level int) Pattern {
	return Pattern((max(level, 1) - 1) % 4)
}

// BaseSpeed returns the formation speed a wave starts with.
func BaseSpeed(level int) float64 {
	return 2 + float64(level)*0.5
}

// Spawn returns the entities of the wave for level, every one alive and in
// formation at its anchor.
func Spawn(level int) []Entity {
	var entities []Entity

	add := func(x, y int) {
		entities = append(entities, newEntity(float64(x), float64(y)))
	}

	switch PatternFor(level) {
	case Grid:
		for r := range 4 {
			for c := range 8 {
				add(50+c*60, 30+r*40)
			}
		}
	case Wedge:
		for r := range 5 {
			for c := range 9 {
				if abs(c-4) <= r {
					add(50+c*55, 30+r*40)
				}
			}
		}
	case SplitColumns:
		for c := range 3 {
			for r := range 6 {
				add(40+c*50, 30+r*40)
			}

			for r := range 6 {
				add(400+c*50, 30+r*40)
			}
		}
	case Checkerboard:
		for r := range 6 {
			for c := range 10 {
				if (r+c)%2 == 0 {
					add(30+c*50, 30+r*35)
				}
			}
		}
	}

	return entities
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
