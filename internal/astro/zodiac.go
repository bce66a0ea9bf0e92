package astro

// Planet identifies a graha or the ascendant in chart output.
type Planet string

// The nine grahas plus the ascendant.
const (
	Sun     Planet = "Sun"
	Moon    Planet = "Moon"
	Mars    Planet = "Mars"
	Mercury Planet = "Mercury"
	Jupiter Planet = "Jupiter"
	Venus   Planet = "Venus"
	Saturn  Planet = "Saturn"
	Rahu    Planet = "Rahu"
	Ketu    Planet = "Ketu"
	Lagna   Planet = "Lagna"
)

// ChartOrder is the fixed enumeration order of chart points. Every
// DivisionalChart carries exactly these ten, in this order.
var ChartOrder = []Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu, Lagna}

// ClassicalPlanets are the seven grahas that take part in dignity,
// ashtakavarga, and shadbala scoring (the nodes Rahu/Ketu do not).
var ClassicalPlanets = []Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn}

var signNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// SignName returns the name of a 1-indexed sidereal sign, or "" when out of
// range.
func SignName(sign int) string {
	if sign < 1 || sign > 12 {
		return ""
	}
	return signNames[sign-1]
}

var signLords = [12]Planet{
	Mars, Venus, Mercury, Moon, Sun, Mercury,
	Venus, Mars, Jupiter, Saturn, Saturn, Jupiter,
}

var nakshatraNames = [27]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni", "Uttara Phalguni",
	"Hasta", "Chitra", "Swati", "Vishakha", "Anuradha", "Jyeshtha",
	"Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana", "Dhanishta", "Shatabhisha",
	"Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}

// Nakshatra lordship repeats in this cycle of nine, three full turns over
// the 27 mansions.
var nakshatraLords = [9]Planet{Ketu, Venus, Sun, Moon, Mars, Rahu, Jupiter, Saturn, Mercury}

// Dignity is a planet's qualitative strength in a sign.
type Dignity string

const (
	DignityExalted     Dignity = "exalted"
	DignityDebilitated Dignity = "debilitated"
	DignityOwn         Dignity = "own"
	DignityNeutral     Dignity = "neutral"
)

var exaltationSign = map[Planet]int{
	Sun: 1, Moon: 2, Mars: 10, Mercury: 6, Jupiter: 4, Venus: 12, Saturn: 7,
}

// Debilitation is the sign opposite exaltation.
var debilitationSign = map[Planet]int{
	Sun: 7, Moon: 8, Mars: 4, Mercury: 12, Jupiter: 10, Venus: 6, Saturn: 1,
}

var ownSigns = map[Planet][]int{
	Sun:     {5},
	Moon:    {4},
	Mars:    {1, 8},
	Mercury: {3, 6},
	Jupiter: {9, 12},
	Venus:   {2, 7},
	Saturn:  {10, 11},
}

// dignityOf looks up a planet's dignity in a sign. The lunar nodes and the
// ascendant carry no dignity.
func dignityOf(p Planet, sign int) Dignity {
	if _, ok := exaltationSign[p]; !ok {
		return ""
	}
	switch {
	case exaltationSign[p] == sign:
		return DignityExalted
	case debilitationSign[p] == sign:
		return DignityDebilitated
	}
	for _, s := range ownSigns[p] {
		if s == sign {
			return DignityOwn
		}
	}
	return DignityNeutral
}
