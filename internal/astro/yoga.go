package astro

import "fmt"

// YogaMatch is one detected planetary configuration.
type YogaMatch struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	Rule           string `json:"rule"`
	Interpretation string `json:"interpretation"`
	Strength       int    `json:"strength"`
	Category       string `json:"category"`
}

// yogaRule pairs a match descriptor with its predicate. Rules are
// independent and side-effect free; extending the catalog never touches
// existing entries.
type yogaRule struct {
	YogaMatch
	matches func(pts map[Planet]ChartPoint) bool
}

// kendras are the angular houses.
var kendras = map[int]bool{1: true, 4: true, 7: true, 10: true}

// mahapurusha builds one of the five great-person yoga rules: the planet
// must stand in its own or exaltation sign in an angular house.
func mahapurusha(planet Planet, name, interpretation string) yogaRule {
	return yogaRule{
		YogaMatch: YogaMatch{
			Name:           name,
			Description:    fmt.Sprintf("%s in own or exaltation sign in a kendra", planet),
			Rule:           fmt.Sprintf("%s dignity in {own, exalted} and house in {1,4,7,10}", planet),
			Interpretation: interpretation,
			Strength:       80,
			Category:       "mahapurusha",
		},
		matches: func(pts map[Planet]ChartPoint) bool {
			pt, ok := pts[planet]
			if !ok {
				return false
			}
			return (pt.Dignity == DignityOwn || pt.Dignity == DignityExalted) && kendras[pt.House]
		},
	}
}

var yogaCatalog = []yogaRule{
	{
		YogaMatch: YogaMatch{
			Name:           "Gaja Kesari",
			Description:    "Jupiter in a kendra from the Moon",
			Rule:           "houseDistance(Moon, Jupiter) mod 3 == 0 and Jupiter's house in {1,4,7,10}",
			Interpretation: "Lasting reputation, intelligence, and moral standing.",
			Strength:       85,
			Category:       "benefic",
		},
		matches: func(pts map[Planet]ChartPoint) bool {
			moon, okM := pts[Moon]
			jup, okJ := pts[Jupiter]
			if !okM || !okJ {
				return false
			}
			return houseDistance(moon.House, jup.House)%3 == 0 && kendras[jup.House]
		},
	},
	{
		YogaMatch: YogaMatch{
			Name:           "Budhaditya",
			Description:    "Sun and Mercury conjunct in one house",
			Rule:           "Sun.house == Mercury.house",
			Interpretation: "Sharp intellect and skill in analysis and communication.",
			Strength:       70,
			Category:       "benefic",
		},
		matches: func(pts map[Planet]ChartPoint) bool {
			return sameHouse(pts, Sun, Mercury)
		},
	},
	{
		YogaMatch: YogaMatch{
			Name:           "Chandra-Mangala",
			Description:    "Moon and Mars conjunct in one house",
			Rule:           "Moon.house == Mars.house",
			Interpretation: "Drive for material accumulation; energy applied to wealth.",
			Strength:       65,
			Category:       "wealth",
		},
		matches: func(pts map[Planet]ChartPoint) bool {
			return sameHouse(pts, Moon, Mars)
		},
	},
	mahapurusha(Mars, "Ruchaka", "Courage, command, and physical vigor."),
	mahapurusha(Mercury, "Bhadra", "Eloquence, learning, and enduring wit."),
	mahapurusha(Jupiter, "Hamsa", "Wisdom, righteousness, and respect of peers."),
	mahapurusha(Venus, "Malavya", "Refinement, comfort, and artistic gifts."),
	mahapurusha(Saturn, "Sasa", "Authority over others, discipline, and ambition."),
	{
		YogaMatch: YogaMatch{
			Name:           "Kemadruma",
			Description:    "Moon with no planetary support in adjacent houses",
			Rule:           "no classical planet besides the Moon in Moon's house or the houses either side",
			Interpretation: "Periods of isolation; strength must be built alone.",
			Strength:       40,
			Category:       "challenging",
		},
		matches: func(pts map[Planet]ChartPoint) bool {
			moon, ok := pts[Moon]
			if !ok {
				return false
			}
			prev := wrapHouse(moon.House - 1)
			next := wrapHouse(moon.House + 1)
			for _, p := range ClassicalPlanets {
				if p == Moon {
					continue
				}
				pt, ok := pts[p]
				if !ok {
					continue
				}
				if pt.House == moon.House || pt.House == prev || pt.House == next {
					return false
				}
			}
			return true
		},
	},
}

// DetectYogas scans the chart against the rule catalog and returns one
// match per satisfied rule, in catalog order.
func DetectYogas(chart DivisionalChart) ([]YogaMatch, error) {
	if len(chart.Points) == 0 {
		return nil, fmt.Errorf("astro: detect yogas: %w", ErrEmptyInput)
	}
	pts := chart.pointMap()
	var out []YogaMatch
	for _, r := range yogaCatalog {
		if r.matches(pts) {
			out = append(out, r.YogaMatch)
		}
	}
	return out, nil
}

// houseDistance counts houses from a to b going forward around the wheel.
func houseDistance(from, to int) int {
	return ((to - from) + 12) % 12
}

func wrapHouse(h int) int {
	return (h+11)%12 + 1
}

func sameHouse(pts map[Planet]ChartPoint, a, b Planet) bool {
	pa, okA := pts[a]
	pb, okB := pts[b]
	return okA && okB && pa.House == pb.House
}
