package seq

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"math"
	"strconv"

	interrors "github.com/M4RKII11II/v10/internal/errors"
)

// ErrMalformedToken is matched by every ParseError returned from a Scanner.
var ErrMalformedToken = errors.New("malformed token")

// ErrNonFinite is the cause of a ParseError for tokens such as "inf" or "nan".
var ErrNonFinite = errors.New("non-finite value")

// ParseError reports the token that could not be parsed and its zero-based
// position among the whitespace-separated tokens of the input.
type ParseError struct {
	Token string
	Index int
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("token %d %q: %v", e.Index, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Scanner yields values parsed from whitespace-separated tokens of a reader.
// Iteration stops at end of input or at the first token that does not parse,
// whichever comes first. Err reports which of the two happened.
type Scanner[T any] struct {
	scanner *bufio.Scanner
	parse   func(string) (T, error)
	index   int
	err     error
}

// NewScanner returns a Scanner reading tokens from r and converting them with parse.
func NewScanner[T any](r io.Reader, parse func(string) (T, error)) *Scanner[T] {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &Scanner[T]{
		scanner: s,
		parse:   parse,
	}
}

// Ints scans base 10 integers.
func Ints(r io.Reader) *Scanner[int] {
	return NewScanner(r, strconv.Atoi)
}

// Floats scans finite 64-bit floating point numbers. Tokens spelling an
// infinity or NaN, and values out of float64 range, end the stream with a ParseError.
func Floats(r io.Reader) *Scanner[float64] {
	return NewScanner(r, func(token string) (float64, error) {
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return 0, err
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return 0, ErrNonFinite
		}
		return f, nil
	})
}

// All returns the parsed values as a sequence. The underlying reader is consumed,
// so the sequence can be ranged over once.
func (s *Scanner[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s.err != nil {
			return
		}
		for s.scanner.Scan() {
			token := s.scanner.Text()
			value, err := s.parse(token)
			if err != nil {
				s.err = interrors.With(&ParseError{Token: token, Index: s.index, Err: err}, ErrMalformedToken)
				return
			}
			s.index++
			if !yield(value) {
				return
			}
		}
		if err := s.scanner.Err(); err != nil {
			s.err = fmt.Errorf("scan input: %w", err)
		}
	}
}

// Err returns the error that ended iteration, or nil when the input was read to the end.
func (s *Scanner[T]) Err() error {
	return s.err
}
