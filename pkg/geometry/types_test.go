package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRectDimensions(t *testing.T) {
	r := NewRect(10, 20, 110, 70)
	require.Equal(t, 100.0, r.Width())
	require.Equal(t, 50.0, r.Height())
	require.Equal(t, 5000.0, r.Area())
}

func TestRectAreaDegenerate(t *testing.T) {
	require.Equal(t, 0.0, NewRect(10, 10, 10, 50).Area())
	require.Equal(t, 0.0, NewRect(50, 10, 10, 50).Area())
}

func TestRectClip(t *testing.T) {
	r := NewRect(-10, -5, 700, 500).Clip(640, 480)
	require.Equal(t, NewRect(0, 0, 640, 480), r)

	// A box fully inside the image is unchanged
	inside := NewRect(10, 10, 100, 100)
	require.Equal(t, inside, inside.Clip(640, 480))
}

func TestRectRound(t *testing.T) {
	r := NewRect(10.4, 10.6, 99.5, 100.49).Round()
	require.Equal(t, RectInt{X1: 10, Y1: 11, X2: 100, Y2: 100}, r)
	require.False(t, r.Empty())
	require.True(t, RectInt{X1: 5, Y1: 5, X2: 5, Y2: 10}.Empty())
}

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	require.True(t, a.Intersects(NewRect(5, 5, 15, 15)))
	require.False(t, a.Intersects(NewRect(10, 0, 20, 10)))
	require.False(t, a.Intersects(NewRect(20, 20, 30, 30)))
}
