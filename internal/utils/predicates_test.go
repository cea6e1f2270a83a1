package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsPrime(t *testing.T) {
	primes := []int{2, 3, 5, 7, 11, 13, 41, 97, 7919}
	for _, n := range primes {
		require.True(t, IsPrime(n), n)
	}

	composites := []int{-7, 0, 1, 4, 9, 16, 24, 25, 33, 49, 7917}
	for _, n := range composites {
		require.False(t, IsPrime(n), n)
	}
}

func TestFirstPrime(t *testing.T) {
	v := []int{33, 16, 24, 41, 25, 19, 9}

	firstPrime := -1
	for _, n := range v {
		if IsPrime(n) {
			firstPrime = n
			break
		}
	}
	require.Equal(t, 41, firstPrime)
}

func TestIsVowel(t *testing.T) {
	for _, r := range "aeiouAEIOU" {
		require.True(t, IsVowel(r), string(r))
	}
	for _, r := range "bcxyzBCXYZ 1!" {
		require.False(t, IsVowel(r), string(r))
	}
}

func TestIsPrimeLargeInputs(t *testing.T) {
	require.True(t, IsPrime(math.MaxInt32))
	require.False(t, IsPrime(math.MaxInt))
	require.False(t, IsPrime(math.MaxInt-1))
}
