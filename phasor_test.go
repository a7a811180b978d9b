package phasor

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/recorder"

	"phasor/types"
)

func newCanvas() draw.Canvas {
	return draw.Canvas{
		Canvas:    &recorder.Canvas{},
		Rectangle: vg.Rectangle{Max: vg.Point{X: 8.5 * vg.Inch, Y: 3 * vg.Inch}},
	}
}

func TestDefaults(t *testing.T) {
	p := DefaultLCR()
	assert.Equal(t, math.Pi/4, p.Theta1)
	assert.Equal(t, types.Params{I0: 1.0, R: 0.5, XL: 0.3, XC: 0.7}, p.Params())

	ph := DefaultPhasor(0.2)
	assert.Equal(t, 0.2, ph.Phi)
	assert.Equal(t, types.RegimeResistive, ph.Case)
	assert.Equal(t, 1.0, ph.V0)
	assert.Equal(t, 0.6, ph.I0)
}

func TestPlotLCR(t *testing.T) {
	fig, regime, err := PlotLCR(newCanvas(), DefaultLCR())
	require.NoError(t, err)
	assert.Equal(t, types.RegimeCapacitive, regime)
	assert.NotNil(t, fig.Phasor)
	assert.NotNil(t, fig.Wave)
	assert.Len(t, fig.Links, 5)
}

func TestPlotLCRRegimes(t *testing.T) {
	p := DefaultLCR()
	p.XL, p.XC = 0.5, 0.5
	_, regime, err := PlotLCR(newCanvas(), p)
	require.NoError(t, err)
	assert.Equal(t, types.RegimeResonance, regime)

	p.XL, p.XC = 0.9, 0.2
	_, regime, err = PlotLCRBasic(newCanvas(), p)
	require.NoError(t, err)
	assert.Equal(t, types.RegimeInductive, regime)
}

func TestPlotLCRBasic(t *testing.T) {
	full, r1, err := PlotLCR(newCanvas(), DefaultLCR())
	require.NoError(t, err)
	basic, r2, err := PlotLCRBasic(newCanvas(), DefaultLCR())
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
	require.Len(t, basic.Links, 2)
	assert.Equal(t, full.Links[:2], basic.Links)
}

func TestPlotPhasor(t *testing.T) {
	fig, regime, err := PlotPhasor(newCanvas(), DefaultPhasor(-math.Pi/2))
	require.NoError(t, err)
	assert.Len(t, fig.Links, 2)
	assert.Equal(t, types.RegimeResistive, regime)

	// 未给出工况时使用默认值
	p := Phasor{Phi: 0, V0: 1, I0: 1}
	assert.Equal(t, types.RegimeResistive, p.Regime())
	_, regime, err = PlotPhasor(newCanvas(), p)
	require.NoError(t, err)
	assert.Equal(t, types.RegimeResistive, regime)

	p.Case = types.RegimeInductive
	_, regime, err = PlotPhasor(newCanvas(), p)
	require.NoError(t, err)
	assert.Equal(t, types.RegimeInductive, regime)
}

const sceneText = `
# 示例场景
LCR1
lcr2 2 1 0.5 0.5 pi/2   # 谐振
BASIC3 - - 0.9 0.2
PHASOR4 -pi/2
phasor5 0.3 0.8 0.4 pi inductive
`

func TestLoadString(t *testing.T) {
	scenes, err := LoadString(sceneText)
	require.NoError(t, err)
	require.Len(t, scenes, 5)

	assert.Equal(t, SceneLCR, scenes[0].Kind)
	assert.Equal(t, 1, scenes[0].ID)
	assert.Equal(t, DefaultLCR(), scenes[0].LCR)
	assert.Equal(t, 3, scenes[0].Line)
	assert.Equal(t, "lcr1", scenes[0].Name())

	assert.Equal(t, LCR{I0: 2, R: 1, XL: 0.5, XC: 0.5, Theta1: math.Pi / 2}, scenes[1].LCR)

	assert.Equal(t, SceneBasic, scenes[2].Kind)
	assert.Equal(t, 1.0, scenes[2].LCR.I0)
	assert.Equal(t, 0.5, scenes[2].LCR.R)
	assert.Equal(t, 0.9, scenes[2].LCR.XL)

	assert.Equal(t, ScenePhasor, scenes[3].Kind)
	assert.Equal(t, DefaultPhasor(-math.Pi/2), scenes[3].Phasor)

	assert.Equal(t, Phasor{Phi: 0.3, V0: 0.8, I0: 0.4, Theta1: math.Pi, Case: types.RegimeInductive}, scenes[4].Phasor)
}

func TestLoadStringErrors(t *testing.T) {
	_, err := LoadString("LCR1\nWAVE2 1 2\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "第 2 行")

	_, err = LoadString("PHASOR1\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "缺少相位角")

	_, err = LoadString("PHASOR1 abc\n")
	assert.Error(t, err)

	// 数值字段格式错误时报告行号，不回退为默认值
	_, err = LoadString("LCR1 1\nLCR2 abc\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "第 2 行")
	assert.Contains(t, err.Error(), "第 2 个字段")

	_, err = LoadString("BASIC1 1 0.5 0.3 0.7 pix\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "第 6 个字段")

	_, err = LoadString("PHASOR1 0 1 x\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "第 1 行")
}

func TestSceneRender(t *testing.T) {
	scenes, err := LoadString(sceneText)
	require.NoError(t, err)
	want := []types.Regime{
		types.RegimeCapacitive,
		types.RegimeResonance,
		types.RegimeInductive,
		types.RegimeResistive,
		types.RegimeInductive,
	}
	for i, s := range scenes {
		fig, regime, err := s.Render(newCanvas())
		require.NoError(t, err, s.Name())
		assert.NotNil(t, fig)
		assert.Equal(t, want[i], regime, s.Name())
	}
	_, _, err = Scene{Kind: SceneKind(9)}.Render(newCanvas())
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	scenes, err := LoadString(sceneText)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, scenes))

	again, err := LoadReader(&buf)
	require.NoError(t, err)
	require.Len(t, again, len(scenes))
	for i := range scenes {
		assert.Equal(t, scenes[i].Kind, again[i].Kind)
		assert.Equal(t, scenes[i].ID, again[i].ID)
		assert.Equal(t, scenes[i].LCR, again[i].LCR)
		assert.Equal(t, scenes[i].Phasor, again[i].Phasor)
	}
}

// TestExportDefaultCase 未给出工况时导出默认工况，重新加载后一致
func TestExportDefaultCase(t *testing.T) {
	scenes := []Scene{{Kind: ScenePhasor, ID: 1, Phasor: Phasor{Phi: 0.5, V0: 1, I0: 0.6, Theta1: 1}}}
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, scenes))
	assert.Equal(t, "PHASOR1 0.5 1 0.6 1 resistive\n", buf.String())

	again, err := LoadReader(&buf)
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.Equal(t, types.RegimeResistive, again[0].Phasor.Case)
	assert.Equal(t, scenes[0].Phasor.Regime(), again[0].Phasor.Regime())
}

func TestRenderFile(t *testing.T) {
	dir := t.TempDir()
	scenes, err := LoadString("BASIC7 1 0.5 0.3 0.7\n")
	require.NoError(t, err)

	path, regime, err := RenderFile(scenes[0], dir, "svg", 0)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "basic7.svg"), path)
	assert.Equal(t, types.RegimeCapacitive, regime)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")

	_, _, err = RenderFile(scenes[0], dir, "bmp", 0)
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.txt")
	require.NoError(t, os.WriteFile(path, []byte(sceneText), 0o644))
	scenes, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, scenes, 5)

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestSceneDiagram(t *testing.T) {
	scenes, err := LoadString(sceneText)
	require.NoError(t, err)
	assert.Len(t, scenes[0].Diagram().Visible(), 5)
	assert.Len(t, scenes[2].Diagram().Visible(), 2)
	d := scenes[4].Diagram()
	assert.Equal(t, types.RegimeInductive, d.Regime)
	assert.Equal(t, 0.3, d.Phi)
}
