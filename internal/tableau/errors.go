package tableau

import "fmt"

// MalformedQuantifierError reports a quantifier that cannot take part in
// a proof: its bound variable never occurs in the matrix, or a formula
// reaching the tableau still has unbound variables. It is fatal for the
// proof attempt and is returned at construction time.
type MalformedQuantifierError struct {
	Quantifier string
	Reason     string
}

func (e *MalformedQuantifierError) Error() string {
	return fmt.Sprintf("malformed quantifier %s: %s", e.Quantifier, e.Reason)
}
