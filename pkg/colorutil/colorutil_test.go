package colorutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDistinctDeterministic(t *testing.T) {
	a := Distinct("bottle_Susante")
	b := Distinct("bottle_Susante")
	require.Equal(t, a, b)
	require.EqualValues(t, 255, a.A)
}

func TestDistinctVaries(t *testing.T) {
	a := Distinct("bottle_Susante")
	b := Distinct("can")
	require.NotEqual(t, a, b)
}
