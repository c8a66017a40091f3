package voice

import "context"

// Recognizer captures one utterance of speech as text. Implementations
// may wrap a platform speech API, a simulation, or a test double; the
// parser does not care where the text came from.
type Recognizer interface {
	Recognize(ctx context.Context) (string, error)
}

// RecognizerFunc adapts a function to the Recognizer interface.
type RecognizerFunc func(ctx context.Context) (string, error)

// Recognize implements Recognizer.
func (f RecognizerFunc) Recognize(ctx context.Context) (string, error) {
	return f(ctx)
}

// simulatedPhrases are the canned utterances the simulated recognizer
// cycles through when no real speech backend is available.
var simulatedPhrases = []string{
	"Spent 500 rupees on groceries",
	"Paid 1200 for electricity bill",
	"Earned 2000 dollars from freelancing",
	"Coffee 150",
	"Uber to office 240",
}

// Simulated is a Recognizer that returns canned utterances in order,
// wrapping around. It is not safe for concurrent use; the client runs
// a single UI-driven capture at a time.
type Simulated struct {
	phrases []string
	next    int
}

// NewSimulated creates a simulated recognizer. With no phrases it uses
// the built-in set.
func NewSimulated(phrases ...string) *Simulated {
	if len(phrases) == 0 {
		phrases = simulatedPhrases
	}
	return &Simulated{phrases: phrases}
}

// Recognize returns the next canned utterance.
func (s *Simulated) Recognize(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	phrase := s.phrases[s.next%len(s.phrases)]
	s.next++
	return phrase, nil
}
