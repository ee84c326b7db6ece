package floatlabel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurves_Endpoints(t *testing.T) {
	for name, c := range curvesByName {
		assert.InDelta(t, 0, c(0), 1e-6, name)
		assert.InDelta(t, 1, c(1), 1e-6, name)
	}
}

func TestCurves_Monotonic(t *testing.T) {
	for name, c := range curvesByName {
		prev := c(0)
		for i := 1; i <= 100; i++ {
			v := c(float64(i) / 100)
			assert.GreaterOrEqualf(t, v+1e-6, prev, "%s at %d", name, i)
			prev = v
		}
	}
}

func TestCubicBezier_Symmetric(t *testing.T) {
	assert.InDelta(t, 0.5, EaseInOut(0.5), 1e-4)
	assert.Less(t, EaseIn(0.25), 0.25)
	assert.Greater(t, EaseOut(0.25), 0.25)
}

func TestCurveByName(t *testing.T) {
	c, ok := CurveByName("Ease_In_Out")
	assert.True(t, ok)
	assert.NotNil(t, c)

	c, ok = CurveByName("")
	assert.True(t, ok)
	assert.Nil(t, c)

	_, ok = CurveByName("bounce")
	assert.False(t, ok)
}
