package text

import (
	"strings"

	"github.com/sandertv/gophertunnel/minecraft/text"
)

// BoolFormat is a pair of words used to present a boolean to users.
type BoolFormat struct {
	True, False string
}

// Common BoolFormat word pairs.
var (
	AgreeDisagree          = BoolFormat{"agree", "disagree"}
	ApprovedDenied         = BoolFormat{"approved", "denied"}
	AuthorizedUnauthorized = BoolFormat{"authorized", "unauthorized"}
	CorrectIncorrect       = BoolFormat{"correct", "incorrect"}
	EnableDisable          = BoolFormat{"enable", "disable"}
	EnabledDisabled        = BoolFormat{"enabled", "disabled"}
	IsIsnt                 = BoolFormat{"is", "isn't"}
	OnOff                  = BoolFormat{"on", "off"}
	PermittedForbidden     = BoolFormat{"permitted", "forbidden"}
	PlusMinus              = BoolFormat{"+", "-"}
	PreparedUnprepared     = BoolFormat{"prepared", "unprepared"}
	PresentAbsent          = BoolFormat{"present", "absent"}
	TrueFalse              = BoolFormat{"true", "false"}
	YesNo                  = BoolFormat{"yes", "no"}
)

// BoolOptions controls how FormatBool presents a value. The zero value
// produces plain, uncoloured lower-case output.
type BoolOptions struct {
	// Capitalize capitalizes the chosen word.
	Capitalize bool
	// Colour wraps the word in green for true and red for false.
	Colour bool
	// InvertColour swaps the colours, so that true is red.
	InvertColour bool
	// InvertText swaps the words, so that true uses the false word.
	InvertText bool
}

// FormatBool formats v using the words of f.
func FormatBool(v bool, f BoolFormat, opts BoolOptions) string {
	word := f.False
	if v != opts.InvertText {
		word = f.True
	}
	if opts.Capitalize {
		word = Capitalize(word)
	}
	if !opts.Colour {
		return word
	}
	if v != opts.InvertColour {
		return text.Colourf("<green>%s</green>", word)
	}
	return text.Colourf("<red>%s</red>", word)
}

// FormattedList renders name followed by the values, for example
// "Players: Steve, Alex". An empty collection renders as "None". When colour
// is true, the name, punctuation and values are coloured the way chat output
// usually is.
func FormattedList(name string, values []string, delimiter string, colour bool) string {
	if !colour {
		if len(values) == 0 {
			return name + ": None"
		}
		return name + ": " + strings.Join(values, delimiter)
	}
	if len(values) == 0 {
		return text.Colourf("<gold>%s</gold><dark-grey>: </dark-grey><red>None</red>", name)
	}
	var b strings.Builder
	b.WriteString(text.Colourf("<gold>%s</gold><dark-grey>: </dark-grey>", name))
	for i, v := range values {
		if i != 0 {
			b.WriteString(text.Colourf("<dark-grey>%s</dark-grey>", delimiter))
		}
		b.WriteString(text.Colourf("<yellow>%s</yellow>", v))
	}
	return b.String()
}

// PlainList renders a list without colours using ", " between values.
func PlainList(name string, values []string) string {
	return FormattedList(name, values, ", ", false)
}
