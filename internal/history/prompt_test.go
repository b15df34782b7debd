package history_test

import (
	"strings"
	"testing"

	"github.com/rmaulana/llama-chat/internal/history"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		pairs    []history.TurnPair
		message  string
		expected string
	}{
		{
			"no history",
			nil,
			"hi",
			"[INST] hi [/INST]",
		},
		{
			"one answered turn",
			[]history.TurnPair{{User: "a", Bot: "b"}},
			"c",
			"[INST] a [/INST] b </s>[INST] c [/INST]",
		},
		{
			"dangling turn keeps its empty reply slot",
			[]history.TurnPair{{User: "a"}},
			"b",
			"[INST] a [/INST]  </s>[INST] b [/INST]",
		},
		{
			"two turns concatenate without separators",
			[]history.TurnPair{
				{User: "q1", Bot: "a1"},
				{User: "q2", Bot: "a2"},
			},
			"q3",
			"[INST] q1 [/INST] a1 </s>[INST] q2 [/INST] a2 </s>[INST] q3 [/INST]",
		},
	}

	formatter := history.NewFormatter(history.Budget{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatter.Format(tt.pairs, tt.message)
			if got != tt.expected {
				t.Errorf("Format() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFormat_MaxTurnsDropsOldest(t *testing.T) {
	formatter := history.NewFormatter(history.Budget{MaxTurns: 1})

	pairs := []history.TurnPair{
		{User: "old", Bot: "old-reply"},
		{User: "recent", Bot: "recent-reply"},
	}

	got := formatter.Format(pairs, "now")

	if strings.Contains(got, "[INST] old [/INST]") {
		t.Errorf("oldest turn should be evicted, got %q", got)
	}
	if !strings.Contains(got, "[INST] recent [/INST] recent-reply </s>") {
		t.Errorf("newest historical turn missing from %q", got)
	}
	if !strings.HasSuffix(got, "[INST] now [/INST]") {
		t.Errorf("open turn must terminate the prompt, got %q", got)
	}
}

func TestFormat_MaxBytesDropsOldestUntilFit(t *testing.T) {
	pairs := []history.TurnPair{
		{User: "first question", Bot: "first answer"},
		{User: "second question", Bot: "second answer"},
		{User: "third question", Bot: "third answer"},
	}

	full := history.NewFormatter(history.Budget{}).Format(pairs, "final")

	formatter := history.NewFormatter(history.Budget{MaxBytes: len(full) - 1})
	got := formatter.Format(pairs, "final")

	if len(got) > len(full)-1 {
		t.Errorf("prompt length %d exceeds budget %d", len(got), len(full)-1)
	}
	if strings.Contains(got, "first question") {
		t.Errorf("oldest turn should be evicted first, got %q", got)
	}
	if !strings.Contains(got, "third question") {
		t.Errorf("newest turn should survive, got %q", got)
	}
	if !strings.HasSuffix(got, "[INST] final [/INST]") {
		t.Errorf("open turn must survive truncation, got %q", got)
	}
}

func TestFormat_OpenTurnNeverTruncated(t *testing.T) {
	formatter := history.NewFormatter(history.Budget{MaxBytes: 5})

	pairs := []history.TurnPair{{User: "history", Bot: "reply"}}
	got := formatter.Format(pairs, "a message longer than any budget")

	if got != "[INST] a message longer than any budget [/INST]" {
		t.Errorf("expected bare open turn, got %q", got)
	}
}
