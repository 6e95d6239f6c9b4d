package shocks

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gasdyn/isentropic"
	"github.com/notargets/gasdyn/types"
	"github.com/notargets/gasdyn/utils"
)

func TestNormalShock(t *testing.T) {
	{ // M1 = 2
		ns, err := NewNormalShock(2, 1.4)
		require.NoError(t, err)
		assert.Equal(t, types.Normal, ns.Kind)
		assert.Equal(t, 0., ns.Theta)
		assert.InDelta(t, 0.5774, ns.M2, 1.e-4)
		assert.InDelta(t, 4.5000, ns.P2P1, 1.e-4)
		assert.InDelta(t, 2.6667, ns.Rho2Rho1, 1.e-4)
		assert.InDelta(t, 1.6875, ns.T2T1, 1.e-4)
		assert.InDelta(t, 0.7209, ns.P02P01, 1.e-4)
		assert.InDelta(t, 1., ns.T02T01, 1.e-12)
	}
	{ // Normal shock tables
		M1 := []float64{1.5, 1.8, 2.1, 3.0}
		M2Check := []float64{0.7011, 0.6165, 0.5613, 0.4752}
		pCheck := []float64{2.4583, 3.6133, 4.9783, 10.3333}
		for i, m := range M1 {
			ns, err := NewNormalShock(m, 1.4)
			require.NoError(t, err)
			assert.InDelta(t, M2Check[i], ns.M2, 1.e-4)
			assert.InDelta(t, pCheck[i], ns.P2P1, 1.e-4)
			assert.Less(t, ns.P02P01, 1.)
		}
	}
	{ // Sonic upstream flow gives the zero strength shock
		ns, err := NewNormalShock(1, 1.4)
		require.NoError(t, err)
		assert.InDelta(t, 1., ns.M2, 1.e-12)
		assert.InDelta(t, 1., ns.P2P1, 1.e-12)
		assert.InDelta(t, 1., ns.P02P01, 1.e-12)
	}
	{ // Subsonic upstream flow
		_, err := NewNormalShock(0.8, 1.4)
		var de *types.DomainError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, 0.8, de.Value)
		assert.Equal(t, 1., de.Bound)
		_, err = NewNormalShock(2, 1)
		assert.True(t, errors.Is(err, types.ErrDomain))
	}
	{ // A shock at pi/2 is the normal shock, field for field
		for _, M1 := range []float64{1.2, 2, 4.5} {
			s, err := NewShock(M1, math.Pi/2, 1.4)
			require.NoError(t, err)
			ns, err := NewNormalShock(M1, 1.4)
			require.NoError(t, err)
			assert.Equal(t, 0., s.Theta)
			assert.Equal(t, ns, s)
		}
	}
}

func TestObliqueShock(t *testing.T) {
	{ // Wave angle bounds
		mu, _ := isentropic.MachAngle(3)
		_, err := NewShock(3, mu-1.e-3, 1.4)
		var de *types.DomainError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, mu, de.Bound)
		_, err = NewShock(3, math.Pi/2+1.e-3, 1.4)
		assert.True(t, errors.Is(err, types.ErrDomain))
		_, err = NewShock(3, math.NaN(), 1.4)
		assert.True(t, errors.Is(err, types.ErrDomain))
		_, err = NewShock(0.5, 1, 1.4)
		assert.True(t, errors.Is(err, types.ErrDomain))
	}
	{ // The Mach wave is a zero strength shock
		mu, _ := isentropic.MachAngle(3)
		s, err := NewShock(3, mu, 1.4)
		require.NoError(t, err)
		assert.Equal(t, types.Oblique, s.Kind)
		assert.Equal(t, 0., s.Theta)
		assert.InDelta(t, 1., s.M1n, 1.e-12)
		assert.InDelta(t, 1., s.P2P1, 1.e-12)
		assert.InDelta(t, 3., s.M2, 1.e-9)
	}
	{ // Infinite upstream Mach number has no finite jump, whatever the wave angle
		for _, beta := range []float64{0, 0.5, math.Pi / 2} {
			_, err := NewShock(math.Inf(1), beta, 1.4)
			var de *types.DomainError
			require.True(t, errors.As(err, &de), "beta = %v", beta)
			assert.Equal(t, "M1", de.Quantity)
		}
		_, err := NewNormalShock(math.Inf(1), 1.4)
		assert.True(t, errors.Is(err, types.ErrDomain))
	}
	{ // Deflection angle relation
		theta, err := DeflectionAngle(0.6590997534071927, 3, 1.4)
		require.NoError(t, err)
		assert.InDelta(t, utils.Deg2Rad(20), theta, 1.e-10)
		theta, err = DeflectionAngle(math.Pi/2, 3, 1.4)
		require.NoError(t, err)
		assert.Equal(t, 0., theta)
		_, err = DeflectionAngle(0.1, 3, 1.4)
		assert.True(t, errors.Is(err, types.ErrDomain))
		_, err = DeflectionAngle(1, 3, 0.5)
		assert.True(t, errors.Is(err, types.ErrDomain))
	}
}

func TestMaxDeflection(t *testing.T) {
	var (
		M1       = []float64{1.5, 2, 3, 5, 10}
		thetaDeg = []float64{12.1127, 22.9735, 34.0734, 41.1177, 44.4290}
		betaDeg  = []float64{66.5889, 64.6690, 65.2408, 66.5842, 67.4544}
	)
	for i, m := range M1 {
		thetaMax, betaMax, err := MaxDeflection(m, 1.4)
		require.NoError(t, err)
		assert.InDelta(t, thetaDeg[i], utils.Rad2Deg(thetaMax), 1.e-4, "M1 = %v", m)
		assert.InDelta(t, betaDeg[i], utils.Rad2Deg(betaMax), 1.e-2, "M1 = %v", m)
		// No wave angle deflects further
		for _, frac := range []float64{0.1, 0.5, 0.9} {
			mu, _ := isentropic.MachAngle(m)
			theta, err := DeflectionAngle(mu+frac*(math.Pi/2-mu), m, 1.4)
			require.NoError(t, err)
			assert.LessOrEqual(t, theta, thetaMax)
		}
	}
	thetaMax, betaMax, err := MaxDeflection(1, 1.4)
	require.NoError(t, err)
	assert.Equal(t, 0., thetaMax)
	assert.Equal(t, math.Pi/2, betaMax)
	_, _, err = MaxDeflection(0.9, 1.4)
	assert.True(t, errors.Is(err, types.ErrDomain))
}

func TestFromDeflectionAngle(t *testing.T) {
	{ // Anderson, M1 = 3 turned through 20 degrees, weak branch
		s, err := FromDeflectionAngle(3, utils.Deg2Rad(20), types.Weak, 1.4)
		require.NoError(t, err)
		assert.InDelta(t, 1.839, s.M1n, 5.e-3)
		assert.InDelta(t, 1.988, s.M2, 1.e-2)
		assert.InDelta(t, 3.783, s.P2P1, 1.5e-2)
		assert.InDelta(t, 1.562, s.T2T1, 5.e-3)
		// Exact solution of the theta-beta-M relation
		assert.InDelta(t, 0.6590997534071927, s.Beta, 1.e-9)
		assert.InDelta(t, utils.Deg2Rad(20), s.Theta, 1.e-10)
		assert.InDelta(t, 1.83722, s.M1n, 1.e-5)
		assert.InDelta(t, 1.99413, s.M2, 1.e-5)
		assert.InDelta(t, 3.77126, s.P2P1, 1.e-5)
		assert.InDelta(t, 1., s.T02T01, 1.e-12)
		assert.Greater(t, s.M2, 1.)
	}
	{ // Strong branch leaves subsonic flow
		s, err := FromDeflectionAngle(3, utils.Deg2Rad(20), types.Strong, 1.4)
		require.NoError(t, err)
		assert.InDelta(t, 1.4337298789, s.Beta, 1.e-9)
		assert.InDelta(t, 0.53936, s.M2, 1.e-5)
		assert.InDelta(t, 10.1373, s.P2P1, 1.e-4)
		assert.Less(t, s.M2, 1.)
	}
	{ // Beyond the maximum deflection the shock detaches
		for _, m := range []float64{1.5, 2, 3, 5} {
			thetaMax, _, err := MaxDeflection(m, 1.4)
			require.NoError(t, err)
			for _, branch := range []types.Branch{types.Weak, types.Strong} {
				_, err = FromDeflectionAngle(m, thetaMax+1.e-6, branch, 1.4)
				var de *types.DomainError
				require.True(t, errors.As(err, &de), "M1 = %v", m)
				assert.Equal(t, thetaMax, de.Bound)
			}
		}
		_, err := FromDeflectionAngle(3, utils.Deg2Rad(40), types.Weak, 1.4)
		assert.True(t, errors.Is(err, types.ErrDomain))
		_, err = FromDeflectionAngle(3, -0.1, types.Weak, 1.4)
		assert.True(t, errors.Is(err, types.ErrDomain))
	}
	{ // At the maximum deflection both branches return the same shock
		thetaMax, betaMax, err := MaxDeflection(3, 1.4)
		require.NoError(t, err)
		weak, err := FromDeflectionAngle(3, thetaMax, types.Weak, 1.4)
		require.NoError(t, err)
		strong, err := FromDeflectionAngle(3, thetaMax, types.Strong, 1.4)
		require.NoError(t, err)
		assert.Equal(t, betaMax, weak.Beta)
		assert.Equal(t, weak, strong)
	}
	{ // Zero deflection: Mach wave on the weak branch, normal shock on the strong one
		mu, _ := isentropic.MachAngle(2)
		weak, err := FromDeflectionAngle(2, 0, types.Weak, 1.4)
		require.NoError(t, err)
		assert.Equal(t, mu, weak.Beta)
		strong, err := FromDeflectionAngle(2, 0, types.Strong, 1.4)
		require.NoError(t, err)
		assert.Equal(t, types.Normal, strong.Kind)
		ns, _ := NewNormalShock(2, 1.4)
		assert.Equal(t, ns, strong)
	}
	{ // Branches bracket the maximum deflection wave angle across the feasible range
		for _, m := range []float64{1.2, 2, 4} {
			thetaMax, betaMax, err := MaxDeflection(m, 1.4)
			require.NoError(t, err)
			for _, frac := range []float64{0.05, 0.5, 0.95, 0.9999} {
				theta := frac * thetaMax
				weak, err := FromDeflectionAngle(m, theta, types.Weak, 1.4)
				require.NoError(t, err)
				strong, err := FromDeflectionAngle(m, theta, types.Strong, 1.4)
				require.NoError(t, err)
				assert.LessOrEqual(t, weak.Beta, betaMax)
				assert.GreaterOrEqual(t, strong.Beta, betaMax)
				assert.InDelta(t, theta, weak.Theta, 1.e-9)
				assert.InDelta(t, theta, strong.Theta, 1.e-9)
				assert.Less(t, weak.P2P1, strong.P2P1)
			}
		}
	}
}

func TestNormalShockInverses(t *testing.T) {
	for _, gamma := range []float64{1.2, 1.4, 5. / 3.} {
		for _, M1 := range []float64{1, 1.3, 2, 6} {
			ns, err := NewNormalShock(M1, gamma)
			require.NoError(t, err)
			sp, err := NormalShockFromPressureRatio(ns.P2P1, gamma)
			require.NoError(t, err)
			assert.InDelta(t, M1, sp.M1, 1.e-10)
			sm, err := NormalShockFromDownstreamMach(ns.M2, gamma)
			require.NoError(t, err)
			assert.InDelta(t, M1, sm.M1, 1.e-8)
		}
	}
	_, err := NormalShockFromPressureRatio(0.9, 1.4)
	assert.True(t, errors.Is(err, types.ErrDomain))
	_, err = NormalShockFromDownstreamMach(1.1, 1.4)
	assert.True(t, errors.Is(err, types.ErrDomain))
	_, err = NormalShockFromDownstreamMach(0.3, 1.4)
	var de *types.DomainError
	require.True(t, errors.As(err, &de))
	assert.InDelta(t, math.Sqrt(0.2/1.4), de.Bound, 1.e-12)
}
