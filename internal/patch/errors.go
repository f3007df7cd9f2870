package patch

import (
	"errors"
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
)

// ParseError reports a file that could not be decoded in a given format.
type ParseError struct {
	Source  string
	Format  string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("%s parse error in %s at line %d, column %d: %s", e.Format, e.Source, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%s parse error in %s: %s", e.Format, e.Source, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newTOMLParseError(source string, err error) *ParseError {
	perr := &ParseError{Source: source, Format: "patch", Message: err.Error(), Err: err}
	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		perr.Line, perr.Column = derr.Position()
	}
	return perr
}
