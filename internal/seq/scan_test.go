package seq

import (
	"errors"
	"slices"
	"strconv"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
)

func TestScannerInts(t *testing.T) {
	s := Ints(strings.NewReader("14 -78 22"))
	v := slices.Collect(s.All())

	require.NoError(t, s.Err())
	require.Len(t, v, 3)
	require.Equal(t, 14, v[0])
	require.Equal(t, -78, v[1])
	require.Equal(t, 22, v[2])
}

func TestScannerWhitespace(t *testing.T) {
	s := Floats(strings.NewReader("\t 1.5\n\n2.5   3.5 \n"))
	require.Equal(t, []float64{1.5, 2.5, 3.5}, slices.Collect(s.All()))
	require.NoError(t, s.Err())
}

func TestScannerEmptyInput(t *testing.T) {
	s := Ints(strings.NewReader(""))
	require.Empty(t, slices.Collect(s.All()))
	require.NoError(t, s.Err())
}

func TestScannerStopsAtMalformedToken(t *testing.T) {
	s := Ints(strings.NewReader("1 2 x 4"))
	require.Equal(t, []int{1, 2}, slices.Collect(s.All()))

	err := s.Err()
	require.ErrorIs(t, err, ErrMalformedToken)
	require.ErrorIs(t, err, strconv.ErrSyntax)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "x", parseErr.Token)
	require.Equal(t, 2, parseErr.Index)

	// the stream stays ended after a failure
	require.Empty(t, slices.Collect(s.All()))
}

func TestScannerEarlyBreakResumes(t *testing.T) {
	s := Ints(strings.NewReader("5 6 7"))
	for v := range s.All() {
		require.Equal(t, 5, v)
		break
	}
	require.Equal(t, []int{6, 7}, slices.Collect(s.All()))
}

func TestScannerReadError(t *testing.T) {
	readErr := errors.New("disk on fire")
	s := Ints(iotest.ErrReader(readErr))

	require.Empty(t, slices.Collect(s.All()))
	require.ErrorIs(t, s.Err(), readErr)
	require.NotErrorIs(t, s.Err(), ErrMalformedToken)
}

func TestScannerCustomParser(t *testing.T) {
	s := NewScanner(strings.NewReader("a bb ccc"), func(token string) (int, error) {
		return len(token), nil
	})
	require.Equal(t, []int{1, 2, 3}, slices.Collect(s.All()))
}

func TestScannerFloatsRejectsNonFinite(t *testing.T) {
	for _, tc := range []struct {
		input    string
		prefix   []float64
		token    string
		sentinel error
	}{
		{input: "inf 1", token: "inf", sentinel: ErrNonFinite},
		{input: "1 -Inf", prefix: []float64{1}, token: "-Inf", sentinel: ErrNonFinite},
		{input: "2 NaN 3", prefix: []float64{2}, token: "NaN", sentinel: ErrNonFinite},
		{input: "1e308 1e400", prefix: []float64{1e308}, token: "1e400", sentinel: strconv.ErrRange},
	} {
		t.Run(tc.input, func(t *testing.T) {
			s := Floats(strings.NewReader(tc.input))
			require.Equal(t, tc.prefix, slices.Collect(s.All()))

			err := s.Err()
			require.ErrorIs(t, err, ErrMalformedToken)
			require.ErrorIs(t, err, tc.sentinel)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			require.Equal(t, tc.token, parseErr.Token)
		})
	}
}
