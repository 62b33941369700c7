// Package loads factors load components with the NSCP 2015 combinations.
package loads

import "fmt"

// Combination represents an NSCP load combination
// Based on NSCP 2015 Section 203.3 - Load Combinations Using Strength Design
type Combination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
	Rain       float64 // R - Rain load
}

// Components holds unfactored load magnitudes of one load by type.
// Units follow the load they belong to (kN/m for UDL, kN for point loads).
type Components struct {
	Dead       float64 `json:"dead,omitempty"`
	Live       float64 `json:"live,omitempty"`
	Roof       float64 `json:"roof,omitempty"`
	Wind       float64 `json:"wind,omitempty"`
	Earthquake float64 `json:"earthquake,omitempty"`
	Rain       float64 `json:"rain,omitempty"`
}

// IsZero reports whether no component is set.
func (c Components) IsZero() bool {
	return c == Components{}
}

// Service returns the unfactored sum of all components.
func (c Components) Service() float64 {
	return c.Dead + c.Live + c.Roof + c.Wind + c.Earthquake + c.Rain
}

// NSCP 2015 Section 203.3.1 - Basic Load Combinations
var Combinations = []Combination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.6,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "3",
		Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)",
		Dead:        1.2,
		Live:        1.0,
		Roof:        1.6,
		Rain:        1.6,
		Wind:        0.5,
	},
	{
		ID:          "4",
		Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.0,
		Wind:        1.0,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "5",
		Description: "1.2D + 1.0E + 1.0L",
		Dead:        1.2,
		Live:        1.0,
		Earthquake:  1.0,
	},
	{
		ID:          "6",
		Description: "0.9D + 1.0W",
		Dead:        0.9,
		Wind:        1.0,
	},
	{
		ID:          "7",
		Description: "0.9D + 1.0E",
		Dead:        0.9,
		Earthquake:  1.0,
	},
}

// Factor applies the combination factors to a set of components.
func (lc Combination) Factor(c Components) float64 {
	return lc.Dead*c.Dead +
		lc.Live*c.Live +
		lc.Roof*c.Roof +
		lc.Wind*c.Wind +
		lc.Earthquake*c.Earthquake +
		lc.Rain*c.Rain
}

// Lookup finds a combination by ID.
func Lookup(id string) (Combination, error) {
	for _, combo := range Combinations {
		if combo.ID == id {
			return combo, nil
		}
	}
	return Combination{}, fmt.Errorf("unknown load combination %q", id)
}

// Governing returns the combination producing the largest factored magnitude.
func Governing(c Components, combinations []Combination) (float64, Combination) {
	var maxValue float64
	var governing Combination

	for _, combo := range combinations {
		v := combo.Factor(c)
		if v > maxValue {
			maxValue = v
			governing = combo
		}
	}

	return maxValue, governing
}
