package doc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRotation(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{0, 0},
		{90, 90},
		{180, 180},
		{270, 270},
		{360, 0},
		{450, 90},
		{-90, 270},
		{-180, 180},
		{-450, 270},
		{91, 90},
		{45, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NormalizeRotation(c.in), "NormalizeRotation(%d)", c.in)
	}
}

func TestMinmax(t *testing.T) {
	a, b := minmax(3, 1)
	assert.Equal(t, 1.0, a)
	assert.Equal(t, 3.0, b)
	a, b = minmax(1, 3)
	assert.Equal(t, 1.0, a)
	assert.Equal(t, 3.0, b)
}
