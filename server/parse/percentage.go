package parse

import (
	"strconv"
	"strings"
)

// PercentageConfig configures a PercentageParser.
type PercentageConfig struct {
	// AcceptFractional accepts values with a fractional part, such as 10.5%.
	AcceptFractional bool
	// AcceptNegative accepts values below zero.
	AcceptNegative bool
	// AcceptZero accepts a value of exactly zero.
	AcceptZero bool
	// AcceptOmittedSign accepts values without a trailing percent sign.
	AcceptOmittedSign bool
}

// DefaultPercentageConfig returns the default configuration: fractional,
// negative and zero values are accepted and the percent sign is required.
func DefaultPercentageConfig() PercentageConfig {
	return PercentageConfig{AcceptFractional: true, AcceptNegative: true, AcceptZero: true}
}

// WithAcceptFractional returns a copy of conf with AcceptFractional set to v.
func (conf PercentageConfig) WithAcceptFractional(v bool) PercentageConfig {
	conf.AcceptFractional = v
	return conf
}

// WithAcceptNegative returns a copy of conf with AcceptNegative set to v.
func (conf PercentageConfig) WithAcceptNegative(v bool) PercentageConfig {
	conf.AcceptNegative = v
	return conf
}

// WithAcceptZero returns a copy of conf with AcceptZero set to v.
func (conf PercentageConfig) WithAcceptZero(v bool) PercentageConfig {
	conf.AcceptZero = v
	return conf
}

// WithAcceptOmittedSign returns a copy of conf with AcceptOmittedSign set to v.
func (conf PercentageConfig) WithAcceptOmittedSign(v bool) PercentageConfig {
	conf.AcceptOmittedSign = v
	return conf
}

// New creates a PercentageParser using a copy of conf.
func (conf PercentageConfig) New() *PercentageParser {
	return &PercentageParser{conf: conf}
}

// ParsedPercentage is the result of PercentageParser.Parse.
type ParsedPercentage struct {
	value   float64
	outcome Outcome
}

// Value returns the parsed percentage, so 50% is returned as 50. The bool is
// false if parsing failed.
func (p ParsedPercentage) Value() (float64, bool) {
	return p.value, p.outcome == OutcomeSuccess
}

// Outcome returns the outcome of parsing.
func (p ParsedPercentage) Outcome() Outcome { return p.outcome }

// Successful reports if the percentage was parsed and accepted.
func (p ParsedPercentage) Successful() bool { return p.outcome == OutcomeSuccess }

// PercentageParser parses percentage arguments such as 50% or -0.75%.
type PercentageParser struct {
	conf PercentageConfig
}

// Config returns the configuration the parser was created with.
func (p *PercentageParser) Config() PercentageConfig {
	return p.conf
}

// Parse parses input as a percentage.
func (p *PercentageParser) Parse(input string) ParsedPercentage {
	num, hasSign := strings.CutSuffix(input, "%")
	if !hasSign && !p.conf.AcceptOmittedSign {
		return ParsedPercentage{outcome: OutcomeInvalidForm}
	}
	v, ok := p.number(num)
	if !ok {
		return ParsedPercentage{outcome: OutcomeInvalidForm}
	}
	if v < 0 && !p.conf.AcceptNegative {
		return ParsedPercentage{outcome: OutcomeCannotBeNegative}
	}
	if v == 0 && !p.conf.AcceptZero {
		return ParsedPercentage{outcome: OutcomeCannotBeZero}
	}
	return ParsedPercentage{value: v, outcome: OutcomeSuccess}
}

// number parses s as a float or, if fractional values are not accepted, as a
// 32-bit integer widened to a float. Only decimal notation is accepted, so NaN, Inf
// and hexadecimal floats are rejected.
func (p *PercentageParser) number(s string) (float64, bool) {
	if s == "" || strings.ContainsFunc(s, func(r rune) bool { return !strings.ContainsRune("0123456789.+-eE", r) }) {
		return 0, false
	}
	if !p.conf.AcceptFractional {
		n, err := strconv.ParseInt(s, 10, 32)
		return float64(n), err == nil
	}
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}
