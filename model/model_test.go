package model

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridResetBorderAndInterior(t *testing.T) {
	sizes := [][2]int{{3, 3}, {3, 8}, {4, 7}, {17, 5}, {96, 64}}
	for _, sz := range sizes {
		t.Run(fmt.Sprintf("%dx%d", sz[0], sz[1]), func(t *testing.T) {
			g := NewGrid(sz[0], sz[1])
			g.Matrix[1][1] = Trail
			g.Reset()
			for c := 0; c < g.Cols; c++ {
				for r := 0; r < g.Rows; r++ {
					if g.IsBorder(c, r) {
						assert.Equal(t, Solid, g.Matrix[c][r], "border %d,%d", c, r)
					} else {
						assert.Equal(t, Empty, g.Matrix[c][r], "interior %d,%d", c, r)
					}
				}
			}
			assert.Equal(t, 0.0, g.ClaimedPercent())
		})
	}
}

func TestNewGridTooSmall(t *testing.T) {
	assert.Panics(t, func() { NewGrid(2, 10) })
	assert.Panics(t, func() { NewGrid(10, 1) })
}

func TestIsSolidOrOutOfBounds(t *testing.T) {
	g := NewGrid(6, 5)
	assert.True(t, g.IsSolidOrOutOfBounds(-1, 2))
	assert.True(t, g.IsSolidOrOutOfBounds(2, 5))
	assert.True(t, g.IsSolidOrOutOfBounds(0, 2))
	assert.False(t, g.IsSolidOrOutOfBounds(2, 2))

	g.Set(2, 2, Trail)
	assert.False(t, g.IsSolidOrOutOfBounds(2, 2))
	g.Set(2, 2, Solid)
	assert.True(t, g.IsSolidOrOutOfBounds(2, 2))
}

func TestSetKeepsBorderSolid(t *testing.T) {
	g := NewGrid(5, 5)
	g.Set(0, 2, Trail)
	g.Set(4, 4, Empty)
	g.Set(9, 9, Trail)
	assert.Equal(t, Solid, g.Matrix[0][2])
	assert.Equal(t, Solid, g.Matrix[4][4])
}

func TestClampAndAt(t *testing.T) {
	g := NewGrid(5, 4)
	c, r := g.Clamp(-3, 10)
	assert.Equal(t, 0, c)
	assert.Equal(t, 3, r)
	assert.Equal(t, Solid, g.At(100, 100))
	assert.Equal(t, Empty, g.At(2, 2))
}

func TestClaimedPercentRange(t *testing.T) {
	g := NewGrid(6, 6)
	assert.Equal(t, 0.0, g.ClaimedPercent())

	g.Set(1, 1, Solid)
	assert.InDelta(t, 100.0/16, g.ClaimedPercent(), 1e-9)

	// trail is not claimed ground
	g.Set(2, 2, Trail)
	assert.InDelta(t, 100.0/16, g.ClaimedPercent(), 1e-9)

	for c := 1; c < 5; c++ {
		for r := 1; r < 5; r++ {
			g.Set(c, r, Solid)
		}
	}
	assert.Equal(t, 100.0, g.ClaimedPercent())
}

func TestTrailReplacement(t *testing.T) {
	g := NewGrid(6, 6)
	g.Set(1, 1, Trail)
	g.Set(1, 2, Trail)
	g.Set(3, 3, Trail)
	require.Equal(t, 3, g.Count(Trail))

	cp := g.Copy()
	assert.Equal(t, 3, g.ClearTrail())
	assert.Equal(t, 0, g.Count(Trail))
	assert.Equal(t, Trail, cp[1][1], "copy must not alias the grid")

	g.Set(2, 2, Trail)
	assert.Equal(t, 1, g.SolidifyTrail())
	assert.Equal(t, Solid, g.Matrix[2][2])
}
