package deck

import "fmt"

// Format is a constructed-play format code, e.g. "B" for Blitz.
type Format string

const (
	Blitz              Format = "B"
	Commoner           Format = "C"
	ClassicConstructed Format = "CC"
	Draft              Format = "D"
	UltimatePitFight   Format = "UPF"
)

// heroAge is the hero-age constraint a format imposes, if any.
type heroAge int

const (
	anyHero heroAge = iota
	youngHero
	adultHero
)

// formatRules captures the deck-building constraints of one format. Zero
// means unconstrained for the max fields and for maxCopies.
type formatRules struct {
	name       string
	mainMin    int
	mainMax    int
	totalMax   int // hero + inventory + main, 0 = unbounded
	invMax     int
	maxCopies  int
	hero       heroAge
	commonOnly bool
}

var formats = map[Format]formatRules{
	Blitz:              {name: "Blitz", mainMin: 40, mainMax: 40, invMax: 11, maxCopies: 2, hero: youngHero},
	Commoner:           {name: "Commoner", mainMin: 40, mainMax: 40, invMax: 11, maxCopies: 2, hero: youngHero, commonOnly: true},
	ClassicConstructed: {name: "Classic Constructed", mainMin: 60, totalMax: 80, maxCopies: 3, hero: adultHero},
	Draft:              {name: "Draft", mainMin: 30, maxCopies: 2, hero: youngHero},
	UltimatePitFight:   {name: "Ultimate Pit Fight"},
}

// Formats lists the known format codes in rules order.
var Formats = []Format{Blitz, Commoner, ClassicConstructed, Draft, UltimatePitFight}

// ParseFormat resolves a format code, case-sensitively ("CC", not "cc").
func ParseFormat(code string) (Format, error) {
	f := Format(code)
	if _, ok := formats[f]; !ok {
		return "", fmt.Errorf("unknown format %q (known: B, C, CC, D, UPF)", code)
	}
	return f, nil
}

// Name returns the printed name of the format, or the bare code when the
// format is unknown.
func (f Format) Name() string {
	if r, ok := formats[f]; ok {
		return r.name
	}
	return string(f)
}

func (f Format) rules() formatRules {
	return formats[f]
}
