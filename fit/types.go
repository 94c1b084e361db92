// Package fit: trend family and forecast mode enumerations, plus the
// one-shot string parsing done at the API boundary.
package fit

import (
	"fmt"
	"strconv"
	"strings"
)

// Family enumerates the parametric model classes used to regress x
// against t.
type Family int

const (
	// Linear fits x ≈ β₀ + β₁·t. The empty selector aliases to Linear.
	Linear Family = iota

	// Exponential fits x ≈ exp(β₀ + β₁·t), regressed in log space.
	Exponential

	// Logarithmic fits x ≈ β₀ + β₁·ln t.
	Logarithmic

	// Power fits x ≈ exp(β₀ + β₁·ln t), regressed in log space.
	Power

	// Polynomial fits x ≈ Σ βⱼ·tʲ up to Fit.Degree.
	Polynomial
)

// Fit selects a trend family; Degree carries the requested polynomial
// degree and is meaningful only when Family == Polynomial. The degree is
// clamped to n−1 against the sample count when the design matrix is built.
type Fit struct {
	Family Family
	Degree int
}

// Mode enumerates the scalar summaries a forecast can extract from the
// fitted trajectory over [now, now+horizon].
type Mode int

const (
	// Value is the point prediction at now+horizon. The empty selector
	// aliases to Value.
	Value Mode = iota

	// Max is the trajectory maximum over the horizon.
	Max

	// Min is the trajectory minimum over the horizon.
	Min

	// Delta is the spread max − min over the horizon.
	Delta

	// Avg is the mean value over the horizon.
	Avg
)

// polynomialPrefix is the literal selector prefix; the decimal degree
// follows immediately, e.g. "polynomial3".
const polynomialPrefix = "polynomial"

// ParseFit parses a fit selector string into a Fit.
// "" is an alias for "linear". "polynomialK" requires a positive decimal
// integer K right after the prefix. Anything else returns ErrBadFit.
func ParseFit(s string) (Fit, error) {
	switch s {
	case "", "linear":
		return Fit{Family: Linear}, nil
	case "exponential":
		return Fit{Family: Exponential}, nil
	case "logarithmic":
		return Fit{Family: Logarithmic}, nil
	case "power":
		return Fit{Family: Power}, nil
	}

	if strings.HasPrefix(s, polynomialPrefix) {
		k, err := strconv.Atoi(s[len(polynomialPrefix):])
		if err != nil {
			return Fit{}, fmt.Errorf("ParseFit(%q): cannot read polynomial degree: %w", s, ErrBadFit)
		}
		if k <= 0 {
			return Fit{}, fmt.Errorf("ParseFit(%q): degree must be positive: %w", s, ErrBadFit)
		}

		return Fit{Family: Polynomial, Degree: k}, nil
	}

	return Fit{}, fmt.Errorf("ParseFit(%q): %w", s, ErrBadFit)
}

// ParseMode parses a mode selector string into a Mode.
// "" is an alias for "value". Anything else outside the enumerated set
// returns ErrBadMode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "value":
		return Value, nil
	case "max":
		return Max, nil
	case "min":
		return Min, nil
	case "delta":
		return Delta, nil
	case "avg":
		return Avg, nil
	}

	return 0, fmt.Errorf("ParseMode(%q): %w", s, ErrBadMode)
}

// String returns the canonical selector for the family.
func (f Family) String() string {
	switch f {
	case Linear:
		return "linear"
	case Exponential:
		return "exponential"
	case Logarithmic:
		return "logarithmic"
	case Power:
		return "power"
	case Polynomial:
		return polynomialPrefix
	}

	return "unknown"
}

// String returns the canonical selector for the mode.
func (m Mode) String() string {
	switch m {
	case Value:
		return "value"
	case Max:
		return "max"
	case Min:
		return "min"
	case Delta:
		return "delta"
	case Avg:
		return "avg"
	}

	return "unknown"
}
