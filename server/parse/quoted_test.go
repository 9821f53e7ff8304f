package parse

import (
	"testing"

	"github.com/df-mc/pluginapi/server/text"
)

func TestQuotedStringDefaults(t *testing.T) {
	conf := DefaultQuotedStringConfig()
	if conf.OutputWithQuotes || conf.Mode != SearchStrict || conf.Search != QuotesEither || conf.OutputQuote != text.DoubleQuote {
		t.Fatalf("DefaultQuotedStringConfig() = %+v", conf)
	}
}

func TestQuotedStringStrict(t *testing.T) {
	p := DefaultQuotedStringConfig().New()
	valid := map[string]string{
		`"This is a valid quoted String"`:       "This is a valid quoted String",
		"'This is another valid quoted String'": "This is another valid quoted String",
		`""`:                                    "",
		`"it's"`:                                "it's",
	}
	for in, want := range valid {
		res := p.Parse(in)
		got, ok := res.Value()
		if !ok || got != want || !res.Successful() || res.Outcome() != OutcomeSuccess {
			t.Errorf("Parse(%q) = %q, %v (%v), want %q", in, got, ok, res.Outcome(), want)
		}
	}
	invalid := []string{
		`"This is a string with only leading double-quotes`,
		`This is a string with only trailing double-quotes"`,
		"'This is a string with only leading single-quotes",
		"This is a string with only trailing single-quotes'",
		`"This is a string wherein the leading quote is a quotation mark and the trailing quote is an apostrophe'`,
		`'This is a string wherein the leading quote is an apostrophe and the trailing quote is a quotation mark"`,
		`This has "inner" quotes`,
		`"`,
		"",
	}
	for _, in := range invalid {
		res := p.Parse(in)
		if v, ok := res.Value(); ok || v != "" || res.Outcome() != OutcomeNoQuotationFound {
			t.Errorf("Parse(%q) = %q, %v (%v), want no quotation", in, v, ok, res.Outcome())
		}
		if res.Outcome().Err() != ErrNoQuotationFound {
			t.Errorf("Parse(%q).Outcome().Err() = %v, want %v", in, res.Outcome().Err(), ErrNoQuotationFound)
		}
	}
}

func TestQuotedStringOutputQuotes(t *testing.T) {
	for _, in := range []string{"'This is a string quoted in apostrophes'", `"This is a string quoted in quotation marks"`} {
		for _, q := range []text.Quote{text.SingleQuote, text.DoubleQuote} {
			got, ok := DefaultQuotedStringConfig().WithOutputQuotes(q).New().Parse(in).Value()
			if !ok || !q.Wraps(got) {
				t.Errorf("Parse(%q) with output quote %v = %q, %v, want wrapped in %v", in, q, got, ok, q)
			}
		}
	}
	conf := DefaultQuotedStringConfig()
	conf.OutputWithQuotes, conf.OutputQuote = true, 0
	if got, _ := conf.New().Parse("'x'").Value(); got != `"x"` {
		t.Errorf("Parse with zero output quote = %q, want %q", got, `"x"`)
	}
}

func TestQuotedStringFilter(t *testing.T) {
	tests := []struct {
		filter QuoteFilter
		in     string
		ok     bool
	}{
		{QuotesDouble, `"double"`, true},
		{QuotesDouble, "'single'", false},
		{QuotesSingle, "'single'", true},
		{QuotesSingle, `"double"`, false},
		{QuotesEither, "'single'", true},
		{QuotesEither, `"double"`, true},
	}
	for _, tt := range tests {
		if ok := DefaultQuotedStringConfig().WithSearch(tt.filter).New().Parse(tt.in).Successful(); ok != tt.ok {
			t.Errorf("Parse(%q) with filter %v successful = %v, want %v", tt.in, tt.filter, ok, tt.ok)
		}
	}
}

func TestQuotedStringAny(t *testing.T) {
	p := DefaultQuotedStringConfig().WithMode(SearchAny).New()
	tests := map[string]string{
		`This is a string with an inner quote: "Quoted text here"`:      "Quoted text here",
		"This is another with some 'inside text' quoted in apostrophes": "inside text",
		`This is a string with "inside text" quoted in double quotes`:   "inside text",
		"'This is a string which is wholly within single quotes'":       "This is a string which is wholly within single quotes",
		`"This is a string which is wholly within double quotes"`:       "This is a string which is wholly within double quotes",
		`'first' and "second"`:  "first",
		`"first" and 'second'`:  "first",
		`"outer 'inner' outer"`: "outer 'inner' outer",
		`it's a "quote"`:        "quote",
		`"a" "b"`:               "a",
	}
	for in, want := range tests {
		if got, ok := p.Parse(in).Value(); !ok || got != want {
			t.Errorf("Parse(%q) = %q, %v, want %q", in, got, ok, want)
		}
	}
	for _, in := range []string{"no quotes at all", `only "one`, "it's"} {
		if res := p.Parse(in); res.Successful() {
			t.Errorf("Parse(%q) successful, want no quotation", in)
		}
	}
	single := DefaultQuotedStringConfig().WithMode(SearchAny).WithSearch(QuotesSingle).New()
	if got, _ := single.Parse(`"double" then 'single'`).Value(); got != "single" {
		t.Errorf("Parse with single filter = %q, want %q", got, "single")
	}
}

func TestQuotedStringLineBreaks(t *testing.T) {
	strict := DefaultQuotedStringConfig().New()
	for _, in := range []string{"\"a\nb\"", "'a\r\nb'", "\"a\u2028b\""} {
		if res := strict.Parse(in); res.Outcome() != OutcomeNoQuotationFound {
			t.Errorf("strict Parse(%q) outcome = %v, want %v", in, res.Outcome(), OutcomeNoQuotationFound)
		}
	}
	search := DefaultQuotedStringConfig().WithMode(SearchAny).New()
	if res := search.Parse("\"a\nb\""); res.Successful() {
		t.Errorf("Parse(%q) successful, want no quotation", "\"a\nb\"")
	}
	tests := map[string]string{
		"\"a\nb\" and \"c\"": "c",
		"'x\ny' then \"z\"":  "z",
		"line one\n\"two\"":  "two",
	}
	for in, want := range tests {
		if got, ok := search.Parse(in).Value(); !ok || got != want {
			t.Errorf("Parse(%q) = %q, %v, want %q", in, got, ok, want)
		}
	}
}

func TestQuotedStringIdempotent(t *testing.T) {
	inputs := []string{`"quoted"`, "'single'", `some "inner" text`, `it's "x"`}
	for _, mode := range []SearchMode{SearchStrict, SearchAny} {
		p := DefaultQuotedStringConfig().WithMode(mode).WithOutputQuotes(text.DoubleQuote).New()
		for _, in := range inputs {
			first := p.Parse(in)
			v, ok := first.Value()
			if !ok {
				continue
			}
			if second := p.Parse(v); second.Outcome() != first.Outcome() {
				t.Errorf("Parse(Parse(%q)) outcome = %v, want %v", in, second.Outcome(), first.Outcome())
			}
		}
	}
}

func TestQuotedStringConfigFrozen(t *testing.T) {
	conf := DefaultQuotedStringConfig()
	p := conf.New()
	conf.Mode = SearchAny
	_ = conf.WithSearch(QuotesSingle)
	if p.Config().Mode != SearchStrict || p.Config().Search != QuotesEither {
		t.Fatalf("parser config changed after construction: %+v", p.Config())
	}
}
