package astro

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Saham is an annual sensitive point.
type Saham struct {
	Name     string `json:"name"`
	Sign     int    `json:"sign"`
	SignName string `json:"signName"`
	House    int    `json:"house"`
}

// VarshaphalaData is the solar-return chart for one year plus its
// year-scoped metadata.
type VarshaphalaData struct {
	Year        int             `json:"year"`
	Chart       DivisionalChart `json:"chart"`
	MunthaSign  int             `json:"munthaSign"`
	MunthaHouse int             `json:"munthaHouse"`
	YearLord    Planet          `json:"yearLord"`
	MuddaDashas []DashaNode     `json:"muddaDashas"`
	Sahams      []Saham         `json:"sahams"`
}

// weekdayLords assigns the year lord from the classical weekday cycle.
var weekdayLords = [7]Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn}

var sahamNames = [5]string{"Punya", "Vidya", "Yasas", "Karma", "Roga"}

// Varshaphala derives the annual (solar return) chart for the given
// calendar year: the natal seed perturbed by the year feeds the position
// generator, and the year carries a muntha placement, a year lord, and a
// mudda dasha sequence partitioning the solar year by the Vimshottari
// proportions.
func Varshaphala(b BirthData, year int) (VarshaphalaData, error) {
	if err := b.Validate(); err != nil {
		return VarshaphalaData{}, err
	}
	if err := validation.Validate(year, validation.Required, validation.Min(1), validation.Max(9999)); err != nil {
		return VarshaphalaData{}, fmt.Errorf("astro: varshaphala year: %w", err)
	}
	birth, err := b.Time()
	if err != nil {
		return VarshaphalaData{}, err
	}

	seed := Seed(b) + float64(year)/2000
	chart := chartFromSeed("D1", seed)

	// The annual cycle starts at the solar-return anniversary.
	anniversary := time.Date(year, birth.Month(), birth.Day(),
		birth.Hour(), birth.Minute(), 0, 0, time.UTC)

	sahams := make([]Saham, len(sahamNames))
	for i, name := range sahamNames {
		sign := int(frac(seed*float64(i+2))*12) + 1
		sahams[i] = Saham{
			Name:     name,
			Sign:     sign,
			SignName: signNames[sign-1],
			House:    int(frac(seed*float64(i+5))*12) + 1,
		}
	}

	return VarshaphalaData{
		Year:        year,
		Chart:       chart,
		MunthaSign:  int(frac(seed*3)*12) + 1,
		MunthaHouse: int(frac(seed*5)*12) + 1,
		YearLord:    weekdayLords[year%len(weekdayLords)],
		MuddaDashas: partitionDasha(anniversary, yearMillis, 1, 1, nil),
		Sahams:      sahams,
	}, nil
}
