// Package astro implements the sidereal computation engine: natal charts,
// divisional (varga) charts, Vimshottari dasha trees, ashtakavarga grids,
// shadbala strength scores, koota compatibility, yoga detection, and annual
// (varshaphala) charts.
//
// Every entry point is a pure function of its inputs. Planetary placement is
// derived from a deterministic seed hashed over the birth moment and place;
// the generator sits behind the same ChartPoint contract a real ephemeris
// would satisfy, so downstream components never see the difference.
package astro

import (
	"errors"
	"fmt"
	"math"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Date and time layouts accepted in BirthData.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// BirthData identifies one natal moment and place. It is the sole input to
// seed derivation; Name and TZ are carried for presentation only and never
// influence computation.
type BirthData struct {
	Name string  `json:"name,omitempty" yaml:"name,omitempty"`
	DOB  string  `json:"dob" yaml:"dob"`
	TOB  string  `json:"tob" yaml:"tob"`
	Lat  float64 `json:"lat" yaml:"lat"`
	Lng  float64 `json:"lng" yaml:"lng"`
	TZ   string  `json:"tz,omitempty" yaml:"tz,omitempty"`
}

// Validate checks that the birth data is well formed: parsable date and
// time, finite coordinates within geographic bounds. All engine entry
// points reject invalid data before deriving anything from it.
func (b BirthData) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.DOB, validation.Required, validation.Date(DateLayout)),
		validation.Field(&b.TOB, validation.Required, validation.Date(TimeLayout)),
		validation.Field(&b.Lat, validation.By(finite), validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&b.Lng, validation.By(finite), validation.Min(-180.0), validation.Max(180.0)),
	)
}

func finite(value interface{}) error {
	f, ok := value.(float64)
	if !ok {
		return errors.New("must be a number")
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return errors.New("must be a finite number")
	}
	return nil
}

// Time returns the birth instant. Timezone database handling is out of
// scope, so the local wall time is interpreted as UTC.
func (b BirthData) Time() (time.Time, error) {
	t, err := time.Parse(DateLayout+" "+TimeLayout, b.DOB+" "+b.TOB)
	if err != nil {
		return time.Time{}, fmt.Errorf("astro: parse birth moment: %w", err)
	}
	return t, nil
}

// seedDivisor normalizes the rolling hash into [0, 360), one full zodiac
// turn, so consumers can treat the seed as a continuous pseudo-random value.
const seedDivisor = 1000.0

// Seed derives the deterministic scalar every downstream computation is a
// function of. It hashes date, time, and coordinates only: the same birth
// data always yields the same seed within a deployment.
func Seed(b BirthData) float64 {
	key := fmt.Sprintf("%s|%s|%.4f|%.4f", b.DOB, b.TOB, b.Lat, b.Lng)
	var h uint32
	for _, r := range key {
		h = h*31 + uint32(r)
	}
	return float64(h%360000) / seedDivisor
}

// frac returns the fractional part of a non-negative value.
func frac(x float64) float64 {
	return math.Mod(x, 1)
}
