package terrain

// Tile is the static property record for one terrain kind. Elevation is in
// meters. Color and Scale are display hints consumed by the renderer only;
// the generator never reads them.
type Tile struct {
	Kind              Kind
	Elevation         float64
	PopulationDensity float64
	ThermalStrength   float64
	WindResistance    float64
	LandmarkWeight    float64
	// Weight biases kind selection during collapse: common terrain 3.0,
	// moderately common 2.0, rare infrastructure 0.1, everything else 1.0.
	Weight float64
	Color  [3]float64
	Scale  [3]float64
}

var catalog = [KindCount]Tile{
	WaterDeep: {
		Kind:              WaterDeep,
		Elevation:         -15.0,
		PopulationDensity: 0.0,
		ThermalStrength:   0.2,
		WindResistance:    0.1,
		LandmarkWeight:    0.0,
		Weight:            1.0,
		Color:             [3]float64{0.1, 0.3, 0.7},
		Scale:             [3]float64{1, 0.1, 1},
	},
	WaterShallow: {
		Kind:              WaterShallow,
		Elevation:         -5.0,
		PopulationDensity: 0.0,
		ThermalStrength:   0.3,
		WindResistance:    0.2,
		LandmarkWeight:    0.05,
		Weight:            2.0,
		Color:             [3]float64{0.2, 0.5, 0.8},
		Scale:             [3]float64{1, 0.2, 1},
	},
	Beach: {
		Kind:              Beach,
		Elevation:         2.0,
		PopulationDensity: 0.1,
		ThermalStrength:   0.6,
		WindResistance:    0.3,
		LandmarkWeight:    0.1,
		Weight:            1.0,
		Color:             [3]float64{0.9, 0.8, 0.6},
		Scale:             [3]float64{1, 0.3, 1},
	},
	Plains: {
		Kind:              Plains,
		Elevation:         10.0,
		PopulationDensity: 0.3,
		ThermalStrength:   0.7,
		WindResistance:    0.4,
		LandmarkWeight:    0.15,
		Weight:            3.0,
		Color:             [3]float64{0.4, 0.7, 0.3},
		Scale:             [3]float64{1, 0.4, 1},
	},
	HillsLow: {
		Kind:              HillsLow,
		Elevation:         50.0,
		PopulationDensity: 0.2,
		ThermalStrength:   0.8,
		WindResistance:    0.6,
		LandmarkWeight:    0.2,
		Weight:            3.0,
		Color:             [3]float64{0.5, 0.6, 0.3},
		Scale:             [3]float64{1, 0.8, 1},
	},
	HillsHigh: {
		Kind:              HillsHigh,
		Elevation:         120.0,
		PopulationDensity: 0.1,
		ThermalStrength:   1.0,
		WindResistance:    0.8,
		LandmarkWeight:    0.3,
		Weight:            1.0,
		Color:             [3]float64{0.6, 0.5, 0.3},
		Scale:             [3]float64{1, 1.5, 1},
	},
	Mountains: {
		Kind:              Mountains,
		Elevation:         300.0,
		PopulationDensity: 0.05,
		ThermalStrength:   1.2,
		WindResistance:    1.0,
		LandmarkWeight:    0.4,
		Weight:            1.0,
		Color:             [3]float64{0.7, 0.7, 0.7},
		Scale:             [3]float64{1, 3.0, 1},
	},
	UrbanLow: {
		Kind:              UrbanLow,
		Elevation:         15.0,
		PopulationDensity: 0.6,
		ThermalStrength:   0.9,
		WindResistance:    0.7,
		LandmarkWeight:    0.25,
		Weight:            2.0,
		Color:             [3]float64{0.6, 0.6, 0.6},
		Scale:             [3]float64{1, 0.6, 1},
	},
	UrbanMed: {
		Kind:              UrbanMed,
		Elevation:         20.0,
		PopulationDensity: 0.8,
		ThermalStrength:   1.1,
		WindResistance:    0.9,
		LandmarkWeight:    0.35,
		Weight:            1.0,
		Color:             [3]float64{0.5, 0.5, 0.5},
		Scale:             [3]float64{1, 1.0, 1},
	},
	UrbanHigh: {
		Kind:              UrbanHigh,
		Elevation:         25.0,
		PopulationDensity: 1.0,
		ThermalStrength:   1.4,
		WindResistance:    1.2,
		LandmarkWeight:    0.5,
		Weight:            1.0,
		Color:             [3]float64{0.4, 0.4, 0.4},
		Scale:             [3]float64{1, 2.0, 1},
	},
	Forest: {
		Kind:              Forest,
		Elevation:         25.0,
		PopulationDensity: 0.05,
		ThermalStrength:   0.4,
		WindResistance:    0.5,
		LandmarkWeight:    0.1,
		Weight:            3.0,
		Color:             [3]float64{0.2, 0.5, 0.2},
		Scale:             [3]float64{1, 0.8, 1},
	},
	Desert: {
		Kind:              Desert,
		Elevation:         30.0,
		PopulationDensity: 0.02,
		ThermalStrength:   1.5,
		WindResistance:    0.3,
		LandmarkWeight:    0.05,
		Weight:            1.0,
		Color:             [3]float64{0.8, 0.7, 0.4},
		Scale:             [3]float64{1, 0.5, 1},
	},
	Bridge: {
		Kind:              Bridge,
		Elevation:         30.0,
		PopulationDensity: 0.0,
		ThermalStrength:   0.5,
		WindResistance:    0.8,
		LandmarkWeight:    1.0,
		Weight:            0.1,
		Color:             [3]float64{0.8, 0.4, 0.2},
		Scale:             [3]float64{1, 1.2, 1},
	},
	Airport: {
		Kind:              Airport,
		Elevation:         12.0,
		PopulationDensity: 0.3,
		ThermalStrength:   0.8,
		WindResistance:    0.2,
		LandmarkWeight:    1.0,
		Weight:            0.1,
		Color:             [3]float64{0.3, 0.3, 0.3},
		Scale:             [3]float64{1, 0.4, 1},
	},
	Landmark: {
		Kind:              Landmark,
		Elevation:         100.0,
		PopulationDensity: 0.2,
		ThermalStrength:   0.7,
		WindResistance:    0.6,
		LandmarkWeight:    1.0,
		Weight:            0.1,
		Color:             [3]float64{0.9, 0.8, 0.1},
		Scale:             [3]float64{1, 4.0, 1},
	},
}

// Lookup returns the static properties for a kind. Unknown values map to the
// fallback tile so a caller can never observe a zero record.
func Lookup(k Kind) Tile {
	if int(k) >= KindCount {
		return catalog[Fallback]
	}
	return catalog[k]
}
