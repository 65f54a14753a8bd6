package model

// ColorTag names the accent colour a tier is drawn with.
type ColorTag string

const (
	ColorGreen  ColorTag = "green"
	ColorBlue   ColorTag = "blue"
	ColorYellow ColorTag = "yellow"
	ColorOrange ColorTag = "orange"
	ColorRed    ColorTag = "red"
)

// Taxes holds the total buy and sell tax of a tier, in percent.
type Taxes struct {
	Buy  float64 `json:"buy" yaml:"buy"`
	Sell float64 `json:"sell" yaml:"sell"`
}

// Split breaks one side's tax into its destinations, in percent.
type Split struct {
	Reflection float64 `json:"reflection" yaml:"reflection"`
	Liquidity  float64 `json:"liquidity" yaml:"liquidity"`
	Marketing  float64 `json:"marketing" yaml:"marketing"`
}

// Total is reflection + liquidity + marketing.
func (s Split) Total() float64 {
	return s.Reflection + s.Liquidity + s.Marketing
}

// Distribution holds the buy-side and sell-side splits.
type Distribution struct {
	Buy  Split `json:"buy" yaml:"buy"`
	Sell Split `json:"sell" yaml:"sell"`
}

// Tier is one operating mode of the token's tax engine, keyed by a sell/buy ratio range.
type Tier struct {
	ID           int          `json:"id" yaml:"id"`
	Name         string       `json:"name" yaml:"name"`
	Condition    string       `json:"condition" yaml:"condition"`
	Description  string       `json:"description" yaml:"description"`
	Color        ColorTag     `json:"color" yaml:"color"`
	Taxes        Taxes        `json:"taxes" yaml:"taxes"`
	Distribution Distribution `json:"distribution" yaml:"distribution"`
}
