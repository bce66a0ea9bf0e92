package astro

import "math"

// ChartPoint is one planet's (or the ascendant's) placement in a chart.
// Invariants: Sign in 1..12, Degree in [0,30), House in 1..12.
type ChartPoint struct {
	Planet        Planet  `json:"planet"`
	Sign          int     `json:"sign"`
	SignName      string  `json:"signName"`
	Degree        float64 `json:"degree"`
	House         int     `json:"house"`
	Retrograde    bool    `json:"retrograde"`
	Nakshatra     string  `json:"nakshatra"`
	Pada          int     `json:"pada"`
	NakshatraLord Planet  `json:"nakshatraLord"`
	SignLord      Planet  `json:"signLord"`
	Dignity       Dignity `json:"dignity,omitempty"`
}

// TotalDegree returns the absolute sidereal longitude in [0, 360).
func (p ChartPoint) TotalDegree() float64 {
	return float64(p.Sign-1)*30 + p.Degree
}

// DivisionalChart holds one point per planet plus the ascendant, in
// ChartOrder. Charts are immutable once produced; transforms return new
// instances.
type DivisionalChart struct {
	Varga  string       `json:"varga"`
	Points []ChartPoint `json:"points"`
}

// Point returns the chart point for a planet.
func (c DivisionalChart) Point(p Planet) (ChartPoint, bool) {
	for _, pt := range c.Points {
		if pt.Planet == p {
			return pt, true
		}
	}
	return ChartPoint{}, false
}

func (c DivisionalChart) pointMap() map[Planet]ChartPoint {
	m := make(map[Planet]ChartPoint, len(c.Points))
	for _, pt := range c.Points {
		m[pt.Planet] = pt
	}
	return m
}

// nakshatraSpan is one lunar mansion: 360/27 degrees (13°20').
const nakshatraSpan = 360.0 / 27

// retrogradeChance is the seed-derived probability of a retrograde flag.
const retrogradeChance = 0.10

// NatalChart derives the D1 chart for a birth record. The result carries
// exactly one ChartPoint per planet plus the ascendant, in ChartOrder, and
// is byte-identical across calls for identical input.
func NatalChart(b BirthData) (DivisionalChart, error) {
	if err := b.Validate(); err != nil {
		return DivisionalChart{}, err
	}
	return chartFromSeed("D1", Seed(b)), nil
}

// chartFromSeed materialises a chart from a scalar seed. Shared by the
// natal and varshaphala generators.
func chartFromSeed(varga string, seed float64) DivisionalChart {
	pts := make([]ChartPoint, 0, len(ChartOrder))
	for i, p := range ChartOrder {
		fi := float64(i)
		sign := int(math.Mod(math.Floor(seed*(fi+1)*1.5), 12)) + 1
		degree := math.Mod(seed*30*(fi+1), 30)
		house := int(math.Mod(math.Floor(seed*(fi+5)), 12)) + 1
		retro := frac(seed*(fi+3)*7.31) < retrogradeChance
		if p == Lagna {
			// The ascendant defines the house wheel and never moves backwards.
			house = 1
			retro = false
		}
		pts = append(pts, newPoint(p, sign, degree, house, retro))
	}
	return DivisionalChart{Varga: varga, Points: pts}
}

// newPoint assembles a ChartPoint, deriving nakshatra, pada, lords, and
// dignity from the zodiacal placement.
func newPoint(p Planet, sign int, degree float64, house int, retro bool) ChartPoint {
	total := float64(sign-1)*30 + degree
	nak := int(total / nakshatraSpan)
	if nak > 26 {
		nak = 26
	}
	pada := int(math.Mod(total, nakshatraSpan)/(nakshatraSpan/4)) + 1
	if pada > 4 {
		pada = 4
	}
	return ChartPoint{
		Planet:        p,
		Sign:          sign,
		SignName:      signNames[sign-1],
		Degree:        degree,
		House:         house,
		Retrograde:    retro,
		Nakshatra:     nakshatraNames[nak],
		Pada:          pada,
		NakshatraLord: nakshatraLords[nak%9],
		SignLord:      signLords[sign-1],
		Dignity:       dignityOf(p, sign),
	}
}
