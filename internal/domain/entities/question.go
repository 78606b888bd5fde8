// Package entities contains domain entities used across the application.
package entities

// ChoiceKey identifies one of the four selectable options of a question.
type ChoiceKey string

const (
	ChoiceA ChoiceKey = "a"
	ChoiceB ChoiceKey = "b"
	ChoiceC ChoiceKey = "c"
	ChoiceD ChoiceKey = "d"
)

// ChoiceKeys lists all choice keys in display order.
var ChoiceKeys = []ChoiceKey{ChoiceA, ChoiceB, ChoiceC, ChoiceD}

// ValidChoice reports whether k is one of the four known choice keys.
func ValidChoice(k ChoiceKey) bool {
	switch k {
	case ChoiceA, ChoiceB, ChoiceC, ChoiceD:
		return true
	}
	return false
}

// Options holds the display text for the four choices of a question.
// All four fields are always present after normalization; a choice missing
// from the source data is an empty string.
type Options struct {
	A string
	B string
	C string
	D string
}

// Text returns the display text for the given choice key.
func (o Options) Text(k ChoiceKey) string {
	switch k {
	case ChoiceA:
		return o.A
	case ChoiceB:
		return o.B
	case ChoiceC:
		return o.C
	case ChoiceD:
		return o.D
	}
	return ""
}

// Question is a single multiple-choice question. It is immutable after
// creation and owned by the quiz state that holds it.
type Question struct {
	ID          string    // stable identifier, defaults to the source row/line index
	Text        string    // question display text
	Options     Options   // the four choices
	Answer      ChoiceKey // correct choice key; may be empty if the source omits it
	Explanation string    // optional text shown after answering
}

// Valid reports whether the question carries enough data to be included in
// an active set: non-empty text, a correct answer and at least choice A.
func (q Question) Valid() bool {
	return q.Text != "" && q.Answer != "" && q.Options.A != ""
}

// Correct reports whether the given choice is the question's correct answer.
// A question with an empty answer key never marks any choice correct.
func (q Question) Correct(k ChoiceKey) bool {
	return q.Answer != "" && k == q.Answer
}
