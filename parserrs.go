package quaternion

import "strconv"

// NumberError is an error indicating a term whose coefficient is not a valid
// number, e.g. "1.2.3", ".", or a sign with no number or letter after it. It
// implements InputError and unwraps to the *strconv.NumError describing the
// failed conversion.
type NumberError struct {
	// Col is the position of the start of the term.
	Col int
	// Term is the term as it appears in the input.
	Term string
	// Err is the error from converting the coefficient.
	Err error
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid coefficient in term "+strconv.Quote(err.Term))
}

func (err *NumberError) Unwrap() error {
	return err.Err
}

func (err *NumberError) Pos() int {
	return err.Col
}

// BracketError is an error indicating parentheses that do not form groups.
// It is only returned when parsing in strict mode. It implements InputError.
type BracketError struct {
	// Col is the position of the offending bracket.
	Col int
	// Left is the open bracket of the group, or empty if there is none.
	Left string
	// Right is the bracket that was found, or empty if the input ended.
	Right string
}

func (err *BracketError) Error() string {
	switch {
	case err.Left == "":
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	case err.Right == "":
		return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
	default:
		return errpos(err.Col, "bracket "+err.Right+" inside group "+err.Left+"…)")
	}
}

func (err *BracketError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*NumberError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*LexError)(nil)
)
