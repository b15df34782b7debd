package history_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/rmaulana/llama-chat/internal/domain"
	"github.com/rmaulana/llama-chat/internal/history"
)

func msg(sender domain.Sender, content string, offset int) domain.Message {
	return domain.Message{
		ChatID:    "chat-1",
		Sender:    sender,
		Content:   content,
		CreatedAt: time.Unix(1700000000, 0).Add(time.Duration(offset) * time.Second),
	}
}

func TestReconstruct(t *testing.T) {
	tests := []struct {
		name     string
		messages []domain.Message
		expected []history.TurnPair
	}{
		{
			"empty history",
			nil,
			[]history.TurnPair{},
		},
		{
			"matched pair",
			[]domain.Message{
				msg(domain.SenderUser, "hi", 0),
				msg(domain.SenderBot, "hello", 1),
			},
			[]history.TurnPair{{User: "hi", Bot: "hello"}},
		},
		{
			"unanswered trailing user message",
			[]domain.Message{
				msg(domain.SenderUser, "a", 0),
				msg(domain.SenderBot, "b", 1),
				msg(domain.SenderUser, "c", 2),
			},
			[]history.TurnPair{{User: "a", Bot: "b"}, {User: "c"}},
		},
		{
			"leading bot message is dropped",
			[]domain.Message{
				msg(domain.SenderBot, "x", 0),
				msg(domain.SenderUser, "a", 1),
			},
			[]history.TurnPair{{User: "a"}},
		},
		{
			"bot-only history produces nothing",
			[]domain.Message{
				msg(domain.SenderBot, "x", 0),
				msg(domain.SenderBot, "y", 1),
			},
			[]history.TurnPair{},
		},
		{
			"consecutive user messages each open a pair",
			[]domain.Message{
				msg(domain.SenderUser, "a", 0),
				msg(domain.SenderUser, "b", 1),
				msg(domain.SenderBot, "r", 2),
			},
			[]history.TurnPair{{User: "a"}, {User: "b", Bot: "r"}},
		},
		{
			"consecutive bot messages, last wins",
			[]domain.Message{
				msg(domain.SenderUser, "a", 0),
				msg(domain.SenderBot, "first", 1),
				msg(domain.SenderBot, "second", 2),
			},
			[]history.TurnPair{{User: "a", Bot: "second"}},
		},
		{
			"full interleaved conversation",
			[]domain.Message{
				msg(domain.SenderUser, "q1", 0),
				msg(domain.SenderBot, "a1", 1),
				msg(domain.SenderUser, "q2", 2),
				msg(domain.SenderBot, "a2", 3),
				msg(domain.SenderUser, "q3", 4),
			},
			[]history.TurnPair{
				{User: "q1", Bot: "a1"},
				{User: "q2", Bot: "a2"},
				{User: "q3"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := history.Reconstruct(tt.messages)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Reconstruct() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestReconstruct_Idempotent(t *testing.T) {
	messages := []domain.Message{
		msg(domain.SenderUser, "a", 0),
		msg(domain.SenderBot, "b", 1),
		msg(domain.SenderUser, "c", 2),
	}

	first := history.Reconstruct(messages)
	second := history.Reconstruct(messages)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated calls differ: %+v vs %+v", first, second)
	}
}

func TestReconstruct_DoesNotMutateInput(t *testing.T) {
	messages := []domain.Message{
		msg(domain.SenderUser, "a", 0),
		msg(domain.SenderBot, "b", 1),
	}
	before := make([]domain.Message, len(messages))
	copy(before, messages)

	history.Reconstruct(messages)

	if !reflect.DeepEqual(messages, before) {
		t.Error("input slice was mutated")
	}
}
