package ac

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"

	"phasor/types"
)

const tol = 1e-12

// TestGetPeaks 默认参数下的峰值
func TestGetPeaks(t *testing.T) {
	p := GetPeaks(types.Params{I0: 1.0, R: 0.5, XL: 0.3, XC: 0.7})
	assert.InDelta(t, 0.5, p.VR0, tol)
	assert.InDelta(t, 0.3, p.VL0, tol)
	assert.InDelta(t, 0.7, p.VC0, tol)
	assert.InDelta(t, math.Sqrt(0.41), p.V0, tol)
	assert.InDelta(t, 0.6403, p.V0, 1e-4)
}

// TestPeaksPythagoras v_0² = v_R0² + (v_C0 - v_L0)²
func TestPeaksPythagoras(t *testing.T) {
	cases := []types.Params{
		{I0: 1, R: 0.5, XL: 0.3, XC: 0.7},
		{I0: 2.5, R: 10, XL: 30, XC: 5},
		{I0: 0.1, R: 0, XL: 4, XC: 1},
		{I0: 3, R: 1, XL: 2, XC: 2},
		{I0: 0, R: 1, XL: 2, XC: 3},
	}
	for _, c := range cases {
		p := GetPeaks(c)
		lhs := p.V0 * p.V0
		rhs := p.VR0*p.VR0 + (p.VC0-p.VL0)*(p.VC0-p.VL0)
		assert.InDelta(t, rhs, lhs, 1e-9, "参数 %+v", c)
		assert.Equal(t, c.I0*c.R, p.VR0)
		assert.Equal(t, c.I0*c.XL, p.VL0)
		assert.Equal(t, c.I0*c.XC, p.VC0)
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, types.RegimeCapacitive, Classify(0.3, 0.7))
	assert.Equal(t, types.RegimeInductive, Classify(0.7, 0.3))
	assert.Equal(t, types.RegimeResonance, Classify(0.5, 0.5))
	assert.Equal(t, types.RegimeResonance, Classify(0, 0))
	// 严格相等：舍入误差不会被视为谐振
	a, b := 0.1, 0.2
	assert.Equal(t, types.RegimeInductive, Classify(a+b, 0.3))
}

func TestPhaseAngle(t *testing.T) {
	assert.InDelta(t, math.Atan(0.8), PhaseAngle(0.5, 0.3, 0.7), tol)
	assert.InDelta(t, 0.6747, PhaseAngle(0.5, 0.3, 0.7), 1e-4)
	assert.Less(t, PhaseAngle(0.5, 0.7, 0.3), 0.0)
	assert.Equal(t, 0.0, PhaseAngle(1, 0.5, 0.5))
	// R = 0 不做校验
	assert.InDelta(t, math.Pi/2, PhaseAngle(0, 0.3, 0.7), tol)
	assert.True(t, math.IsNaN(PhaseAngle(0, 0.5, 0.5)))
}

func TestOffset(t *testing.T) {
	phi := 0.3
	assert.Equal(t, phi, Offset(types.SignalI, phi))
	assert.Equal(t, 0.0, Offset(types.SignalV, phi))
	assert.Equal(t, phi, Offset(types.SignalVR, phi))
	assert.InDelta(t, phi+math.Pi/2, Offset(types.SignalVL, phi), tol)
	assert.InDelta(t, phi-math.Pi/2, Offset(types.SignalVC, phi), tol)
}

// TestCalculatePeriodic 瞬时值以 2π 为周期
func TestCalculatePeriodic(t *testing.T) {
	peaks := GetPeaks(types.Params{I0: 1, R: 0.5, XL: 0.3, XC: 0.7})
	phi := PhaseAngle(0.5, 0.3, 0.7)
	theta := []float64{-1.3, 0, 0.25, 1, math.Pi, 4.2, 6}
	shifted := make([]float64, len(theta))
	for i, v := range theta {
		shifted[i] = v + 2*math.Pi
	}
	a := Calculate(theta, phi, 1, peaks)
	b := Calculate(shifted, phi, 1, peaks)
	for _, s := range types.Signals {
		assert.True(t, floats.EqualApprox(a.Get(s), b.Get(s), 1e-9), "信号 %s 不具有周期性", s)
	}
}

func TestCalculateMatchesValue(t *testing.T) {
	peaks := GetPeaks(types.Params{I0: 2, R: 1, XL: 3, XC: 1})
	phi := PhaseAngle(1, 3, 1)
	theta := Period(17)
	w := Calculate(theta, phi, 2, peaks)
	for _, s := range types.Signals {
		for i, th := range theta {
			assert.InDelta(t, Value(s, th, phi, 2, peaks), w[s][i], tol)
		}
	}
	assert.InDelta(t, 2*math.Sin(1+phi), Value(types.SignalI, 1, phi, 2, peaks), tol)
	assert.InDelta(t, peaks.V0*math.Sin(1), Value(types.SignalV, 1, phi, 2, peaks), tol)
}

func TestPeriod(t *testing.T) {
	theta := Period(types.DefaultSamples)
	assert.Len(t, theta, 500)
	assert.Equal(t, 0.0, theta[0])
	assert.InDelta(t, 2*math.Pi, theta[len(theta)-1], tol)
	assert.Len(t, Period(0), 2)
}

// TestSamplesMatchEvaluator θ₁ 处的采样值等于瞬时值，相量长度等于峰值
func TestSamplesMatchEvaluator(t *testing.T) {
	params := []types.Params{
		{I0: 1, R: 0.5, XL: 0.3, XC: 0.7},
		{I0: 1.5, R: 2, XL: 4, XC: 1},
		{I0: 0.8, R: 1, XL: 0.5, XC: 0.5},
	}
	for _, p := range params {
		peaks := GetPeaks(p)
		phi := PhaseAngle(p.R, p.XL, p.XC)
		for _, theta1 := range []float64{0, math.Pi / 4, 2, math.Pi, 5.5} {
			samples := Wavesamples(theta1, phi, p.I0, peaks)
			tips := Phasortips(theta1, phi, p.I0, peaks)
			for i, s := range types.Signals {
				assert.Equal(t, theta1, samples[i].Theta)
				assert.InDelta(t, Value(s, theta1, phi, p.I0, peaks), samples[i].Value, tol)
				assert.InDelta(t, math.Abs(Amplitude(s, p.I0, peaks)), math.Hypot(tips[i].X, tips[i].Y), 1e-9)
				// 相量端点的纵坐标即瞬时值
				assert.InDelta(t, samples[i].Value, tips[i].Y, 1e-9)
			}
		}
	}
}
