package astro

import "math"

// ShadbalaData is one planet's six-factor strength score. Total is the
// arithmetic sum of the six components; Percentage is Total against the
// nominal 600-point maximum.
type ShadbalaData struct {
	Planet     Planet  `json:"planet"`
	Sthana     float64 `json:"sthana"`
	Dig        float64 `json:"dig"`
	Kala       float64 `json:"kala"`
	Cesta      float64 `json:"cesta"`
	Naisargika float64 `json:"naisargika"`
	Drig       float64 `json:"drig"`
	Total      float64 `json:"total"`
	Percentage int     `json:"percentage"`
	Baladi     string  `json:"baladi"`
	Jagradadi  string  `json:"jagradadi"`
	Deeptadi   string  `json:"deeptadi"`
}

// shadbalaMax is the nominal maximum a planet's total is scored against.
const shadbalaMax = 600.0

// SubScore computes one strength component for the planet at the given
// index in ClassicalPlanets. Each of the six factors is an independently
// replaceable strategy; the aggregation contract around them is stable.
type SubScore func(planetIndex int, seed float64) float64

// Positional strength, 0-200.
func sthanaBala(i int, seed float64) float64 {
	return round2(math.Mod(seed*float64(i+1)*13.7, 200))
}

// Directional strength, 0-60.
func digBala(i int, seed float64) float64 {
	return round2(math.Mod(seed*float64(i+4)*5.3, 60))
}

// Temporal strength, 0-200.
func kalaBala(i int, seed float64) float64 {
	return round2(math.Mod(seed*float64(i+2)*11.3, 200))
}

// Motional strength, 0-100.
func cestaBala(i int, seed float64) float64 {
	return round2(math.Mod(seed*float64(i+3)*7.9, 100))
}

// Natural strength: fixed by luminosity rank, indexed in ClassicalPlanets
// order (Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn).
var naisargikaTable = [7]float64{60, 51.43, 17.14, 25.71, 34.29, 42.86, 8.57}

func naisargikaBala(i int, _ float64) float64 {
	return naisargikaTable[i]
}

// Aspectual strength: a small signed adjustment in [-10, 10).
func drigBala(i int, seed float64) float64 {
	return round2(math.Mod(seed*float64(i+5)*3.1, 20) - 10)
}

var shadbalaComponents = [6]SubScore{
	sthanaBala, digBala, kalaBala, cestaBala, naisargikaBala, drigBala,
}

var (
	baladiStages    = [5]string{"Bala", "Kumara", "Yuva", "Vriddha", "Mrita"}
	jagradadiStages = [3]string{"Jagrat", "Swapna", "Sushupti"}
	deeptadiStages  = [9]string{
		"Deepta", "Swastha", "Mudita", "Shanta", "Deena",
		"Dukhita", "Vikala", "Khala", "Kopa",
	}
)

// Shadbala computes the six-factor strength for each classical planet, in
// ClassicalPlanets order.
func Shadbala(b BirthData) ([]ShadbalaData, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	seed := Seed(b)
	out := make([]ShadbalaData, len(ClassicalPlanets))
	for i, p := range ClassicalPlanets {
		s := ShadbalaData{
			Planet:     p,
			Sthana:     shadbalaComponents[0](i, seed),
			Dig:        shadbalaComponents[1](i, seed),
			Kala:       shadbalaComponents[2](i, seed),
			Cesta:      shadbalaComponents[3](i, seed),
			Naisargika: shadbalaComponents[4](i, seed),
			Drig:       shadbalaComponents[5](i, seed),
		}
		s.Total = round2(s.Sthana + s.Dig + s.Kala + s.Cesta + s.Naisargika + s.Drig)
		s.Percentage = int(math.Round(s.Total / shadbalaMax * 100))
		s.Baladi = baladiStages[i%len(baladiStages)]
		s.Jagradadi = jagradadiStages[i%len(jagradadiStages)]
		s.Deeptadi = deeptadiStages[(i+int(seed))%len(deeptadiStages)]
		out[i] = s
	}
	return out, nil
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
