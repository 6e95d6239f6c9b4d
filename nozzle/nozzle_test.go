package nozzle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gasdyn/isentropic"
	"github.com/notargets/gasdyn/types"
)

// A = 1 + 2(x-0.3)^2 on [0, 1], throat at x = 0.3 and Ae/At = 1.98
func testNozzle(t *testing.T) *Nozzle {
	var (
		N = 101
		X = make([]float64, N)
		A = make([]float64, N)
	)
	floats.Span(X, 0, 1)
	for i, x := range X {
		A[i] = 1 + 2*(x-0.3)*(x-0.3)
	}
	nz, err := NewNozzle(X, A)
	require.NoError(t, err)
	return nz
}

func TestNewNozzle(t *testing.T) {
	nz := testNozzle(t)
	assert.Equal(t, 30, nz.IThroat)
	assert.InDelta(t, 1., nz.AThroat, 1.e-12)
	assert.InDelta(t, 1.98, nz.ExitAreaRatio(), 1.e-12)

	_, err := NewNozzle([]float64{0, 1}, []float64{1})
	assert.Error(t, err)
	_, err = NewNozzle([]float64{0}, []float64{1})
	assert.Error(t, err)
	_, err = NewNozzle([]float64{0, 1}, []float64{1, 0})
	assert.ErrorIs(t, err, types.ErrDomain)
	_, err = NewNozzle([]float64{0, 0}, []float64{1, 2})
	assert.ErrorIs(t, err, types.ErrDomain)
}

func TestCriticalPressureRatios(t *testing.T) {
	var (
		nz    = testNozzle(t)
		fl, _ = isentropic.NewFlow(1.4)
	)
	pe1, pe2, pe3, err := nz.CriticalPressureRatios(fl)
	require.NoError(t, err)
	assert.InDelta(t, 0.93578505, pe1, 1.e-7)
	assert.InDelta(t, 0.09561680, pe2, 1.e-7)
	assert.InDelta(t, 0.51705352, pe3, 1.e-7)
	assert.True(t, pe2 < pe3 && pe3 < pe1)
}

func TestSolveFlow(t *testing.T) {
	var (
		nz    = testNozzle(t)
		fl, _ = isentropic.NewFlow(1.4)
		p0    = 101325.
		T0    = 300.
		last  = len(nz.A) - 1
	)
	{ // No flow
		sol, err := nz.SolveFlow(fl, p0, T0, p0)
		require.NoError(t, err)
		assert.Equal(t, types.Subsonic, sol.Regime)
		assert.Equal(t, 0., floats.Max(sol.M))
		assert.Equal(t, p0, floats.Min(sol.P))
		assert.Equal(t, T0, floats.Min(sol.T))
		assert.Equal(t, -1, sol.ShockIndex)
		assert.True(t, math.IsNaN(sol.ShockX))
	}
	{ // Subsonic venturi, fastest at the throat
		sol, err := nz.SolveFlow(fl, p0, T0, 0.95*p0)
		require.NoError(t, err)
		assert.Equal(t, types.Subsonic, sol.Regime)
		assert.False(t, sol.Regime.Choked())
		assert.Equal(t, nz.IThroat, floats.MaxIdx(sol.M))
		assert.InDelta(t, 0.66274959, sol.M[nz.IThroat], 1.e-7)
		assert.InDelta(t, 0.27169046, sol.M[last], 1.e-7)
		assert.InDelta(t, 0.95*p0, sol.P[last], 1.e-6)
	}
	{ // Normal shock in the diverging section
		sol, err := nz.SolveFlow(fl, p0, T0, 0.8*p0)
		require.NoError(t, err)
		assert.Equal(t, types.ShockInNozzle, sol.Regime)
		assert.True(t, sol.Regime.Choked())
		assert.InDelta(t, 1.65186283, sol.ShockMach, 1.e-6)
		assert.InDelta(t, 0.68331, sol.ShockX, 1.e-3)
		assert.Equal(t, 69, sol.ShockIndex)
		assert.InDelta(t, 1., sol.M[nz.IThroat], 1.e-9)
		assert.True(t, sol.M[sol.ShockIndex-1] > 1)
		assert.True(t, sol.M[sol.ShockIndex] < 1)
		assert.InDelta(t, 0.8*p0, sol.P[last], 1.e-4)
	}
	{ // Supersonic exit
		var (
			_, pe2, _, _ = nz.CriticalPressureRatios(fl)
		)
		for _, tc := range []struct {
			pr     float64
			regime types.Regime
		}{
			{pe2, types.Design},
			{0.3, types.OverExpanded},
			{0.05, types.UnderExpanded},
			{0, types.UnderExpanded},
		} {
			sol, err := nz.SolveFlow(fl, p0, T0, tc.pr*p0)
			require.NoError(t, err)
			assert.Equal(t, tc.regime, sol.Regime)
			assert.InDelta(t, 1., sol.M[nz.IThroat], 1.e-9)
			assert.InDelta(t, 2.18584261, sol.M[last], 1.e-7)
			assert.InDelta(t, 0.60705239, sol.M[0], 1.e-7)
			assert.InDelta(t, pe2*p0, sol.P[last], 1.e-4)
		}
	}
	_, err := nz.SolveFlow(fl, p0, T0, 1.1*p0)
	assert.ErrorIs(t, err, types.ErrDomain)
	_, err = nz.SolveFlow(fl, -1, T0, 0)
	assert.ErrorIs(t, err, types.ErrDomain)
	_, err = nz.SolveFlow(fl, p0, 0, 0)
	assert.ErrorIs(t, err, types.ErrDomain)
}
