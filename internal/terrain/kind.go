package terrain

// Kind identifies one terrain tile type. The set is closed: generation,
// adjacency rules and the catalog all index over exactly these values.
type Kind uint8

const (
	WaterDeep Kind = iota
	WaterShallow
	Beach
	Plains
	HillsLow
	HillsHigh
	Mountains
	UrbanLow
	UrbanMed
	UrbanHigh
	Forest
	Desert
	Bridge
	Airport
	Landmark

	KindCount = int(Landmark) + 1
)

// Fallback is the neutral kind a contradicted cell is forced to. It is the
// most permissive land tile, so a forced cell rarely poisons its neighbors.
const Fallback = Plains

var kindNames = [KindCount]string{
	"water_deep",
	"water_shallow",
	"beach",
	"plains",
	"hills_low",
	"hills_high",
	"mountains",
	"urban_low",
	"urban_med",
	"urban_high",
	"forest",
	"desert",
	"bridge",
	"airport",
	"landmark",
}

func (k Kind) String() string {
	if int(k) >= KindCount {
		return "unknown"
	}
	return kindNames[k]
}

// Kinds returns every terrain kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, KindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}
