package history

import "strings"

const (
	instOpen   = "[INST] "
	instClose  = " [/INST] "
	instFinish = " [/INST]"
	turnEnd    = "</s>"
)

// Budget bounds the size of a rendered prompt. MaxTurns caps the number of
// historical turn pairs; MaxBytes caps the rendered length. A zero value
// disables that limit. Eviction is always oldest turn first, and the final
// open turn is never dropped.
type Budget struct {
	MaxTurns int
	MaxBytes int
}

// Formatter renders turn pairs into the instruction-delimited prompt the
// model expects.
type Formatter struct {
	budget Budget
}

// NewFormatter creates a formatter with the given context budget.
func NewFormatter(budget Budget) *Formatter {
	return &Formatter{budget: budget}
}

// Format renders the history followed by the incoming message:
//
//	[INST] u1 [/INST] b1 </s>[INST] u2 [/INST] b2 </s>[INST] msg [/INST]
//
// A dangling turn renders with an empty reply slot, not omitted. The
// trailing turn is left open as the generation point. When the budget is
// exceeded, historical pairs are dropped from the front until the prompt
// fits; the open turn survives even if it alone exceeds MaxBytes.
func (f *Formatter) Format(pairs []TurnPair, newMessage string) string {
	if f.budget.MaxTurns > 0 && len(pairs) > f.budget.MaxTurns {
		pairs = pairs[len(pairs)-f.budget.MaxTurns:]
	}

	for {
		prompt := render(pairs, newMessage)
		if f.budget.MaxBytes <= 0 || len(prompt) <= f.budget.MaxBytes || len(pairs) == 0 {
			return prompt
		}
		pairs = pairs[1:]
	}
}

func render(pairs []TurnPair, newMessage string) string {
	var b strings.Builder
	for _, p := range pairs {
		b.WriteString(instOpen)
		b.WriteString(p.User)
		b.WriteString(instClose)
		b.WriteString(p.Bot)
		b.WriteString(" ")
		b.WriteString(turnEnd)
	}
	b.WriteString(instOpen)
	b.WriteString(newMessage)
	b.WriteString(instFinish)
	return b.String()
}
