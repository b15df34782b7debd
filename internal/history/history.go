package history

import "github.com/rmaulana/llama-chat/internal/domain"

// TurnPair is one user utterance optionally paired with the bot's reply.
// Bot is empty while the reply has not arrived (a dangling turn).
type TurnPair struct {
	User string
	Bot  string
}

// Reconstruct folds a time-ordered message sequence into ordered turn pairs.
// A user message opens a new pair. A bot message fills the reply slot of the
// most recent pair, overwriting any reply already there (last bot message
// wins). A bot message with no preceding user turn cannot be attached to
// anything and is dropped.
//
// Consecutive user messages each open their own pair; when a bot message
// finally arrives only the newest pair receives it, and the earlier pairs
// stay dangling. That asymmetry is the pairing contract, not an accident.
//
// Reconstruct is pure: no I/O, identical input yields identical output.
func Reconstruct(messages []domain.Message) []TurnPair {
	pairs := make([]TurnPair, 0, len(messages))

	for _, msg := range messages {
		switch msg.Sender {
		case domain.SenderUser:
			pairs = append(pairs, TurnPair{User: msg.Content})
		case domain.SenderBot:
			if len(pairs) == 0 {
				continue
			}
			last := pairs[len(pairs)-1]
			last.Bot = msg.Content
			pairs[len(pairs)-1] = last
		}
	}

	return pairs
}
