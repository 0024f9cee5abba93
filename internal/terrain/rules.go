package terrain

import "fmt"

// Direction is one of the four cardinal neighbor directions. North is +z,
// south is -z, east is +x, west is -x.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West

	directionCount = 4
)

var directionNames = [directionCount]string{"north", "south", "east", "west"}

func (d Direction) String() string {
	if int(d) >= directionCount {
		return "unknown"
	}
	return directionNames[d]
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Directions returns the four cardinals in declaration order.
func Directions() [directionCount]Direction {
	return [directionCount]Direction{North, South, East, West}
}

// RuleSet is the directional adjacency relation: for a resolved source kind
// and the direction toward a neighbor, which kinds that neighbor may take.
// The relation is symmetrized at construction so propagation order cannot
// produce one-sided inconsistencies.
type RuleSet struct {
	allowed [KindCount][directionCount]KindSet
}

// baseAdjacency is the relation as authored: water bodies chain through
// shallow water to beaches, land elevation steps one tier at a time, urban
// density likewise, and the rare infrastructure kinds get deliberately
// narrow neighborhoods. Each entry applies to all four directions.
var baseAdjacency = [KindCount]KindSet{
	WaterDeep:    NewKindSet(WaterDeep, WaterShallow),
	WaterShallow: NewKindSet(WaterDeep, WaterShallow, Beach, Bridge),
	Beach:        NewKindSet(WaterShallow, Beach, Plains, UrbanLow),
	Plains:       NewKindSet(Beach, Plains, HillsLow, Forest, UrbanLow, UrbanMed, Airport),
	HillsLow:     NewKindSet(Plains, HillsLow, HillsHigh, Forest, UrbanLow),
	HillsHigh:    NewKindSet(HillsLow, HillsHigh, Mountains, Forest, Landmark),
	Mountains:    NewKindSet(HillsHigh, Mountains, Landmark),
	UrbanLow:     NewKindSet(Beach, Plains, HillsLow, UrbanLow, UrbanMed, Airport),
	UrbanMed:     NewKindSet(Plains, UrbanLow, UrbanMed, UrbanHigh),
	UrbanHigh:    NewKindSet(UrbanMed, UrbanHigh, Landmark),
	Forest:       NewKindSet(Plains, HillsLow, HillsHigh, Forest),
	Desert:       NewKindSet(Plains, Desert, HillsLow),
	Bridge:       NewKindSet(WaterShallow, UrbanLow, UrbanMed),
	Airport:      NewKindSet(Plains, UrbanLow, Desert),
	Landmark:     NewKindSet(HillsHigh, Mountains, UrbanHigh),
}

// NewRuleSet builds the adjacency relation and closes it under symmetry: if
// A permits B to its east, B is granted A to its west. Closure only ever
// widens the authored relation.
func NewRuleSet() *RuleSet {
	rs := &RuleSet{}
	for k := 0; k < KindCount; k++ {
		for _, d := range Directions() {
			rs.allowed[k][d] = baseAdjacency[k]
		}
	}
	rs.symmetrize()
	return rs
}

func (rs *RuleSet) symmetrize() {
	for k := 0; k < KindCount; k++ {
		for _, d := range Directions() {
			for _, n := range rs.allowed[k][d].Kinds() {
				opp := d.Opposite()
				rs.allowed[n][opp] = rs.allowed[n][opp].With(Kind(k))
			}
		}
	}
}

// Allowed returns the kinds permitted as the neighbor of k in direction d.
func (rs *RuleSet) Allowed(k Kind, d Direction) KindSet {
	if int(k) >= KindCount || int(d) >= directionCount {
		return 0
	}
	return rs.allowed[k][d]
}

// Validate checks the relation invariants: every kind has at least one
// permitted neighbor in every direction, and the relation is symmetric.
// It runs at startup and in tests; a constructed RuleSet always passes.
func (rs *RuleSet) Validate() error {
	for k := 0; k < KindCount; k++ {
		for _, d := range Directions() {
			set := rs.allowed[k][d]
			if set.Empty() {
				return fmt.Errorf("kind %s permits no neighbor toward %s", Kind(k), d)
			}
			for _, n := range set.Kinds() {
				if !rs.allowed[n][d.Opposite()].Contains(Kind(k)) {
					return fmt.Errorf("asymmetric rule: %s permits %s toward %s but not the reverse", Kind(k), n, d)
				}
			}
		}
	}
	return nil
}
