// Package parse implements parsers for single command arguments: strings
// wrapped in quotation marks and percentages.
//
// Parsers are created from a configuration value. The configuration is copied
// into the parser when it is created, so a parser never changes after
// construction and may be shared freely between goroutines:
//
//	p := parse.DefaultPercentageConfig().WithAcceptZero(false).New()
//	res := p.Parse("50%")
//	if v, ok := res.Value(); ok {
//		// ...
//	}
//
// A parser never returns an error for bad input. Instead, every result carries
// an Outcome describing why parsing failed, so that callers can answer with a
// usage message rather than treating user input as an error.
package parse
