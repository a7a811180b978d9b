package phasor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg/draw"

	"phasor/diagram"
	"phasor/figure"
	"phasor/types"
	"phasor/utils"
)

// SceneKind 场景类型
type SceneKind int

// 场景类型常量定义
const (
	SceneLCR    SceneKind = iota // 完整 LCR 图
	SceneBasic                   // 简化 LCR 图
	ScenePhasor                  // 通用双相量图
)

var sceneNames = map[SceneKind]string{
	SceneLCR:    "LCR",
	SceneBasic:  "BASIC",
	ScenePhasor: "PHASOR",
}

func (k SceneKind) String() string {
	if n, ok := sceneNames[k]; ok {
		return n
	}
	return "UNKNOWN"
}

// GetNameScene 通过名称获取场景类型
func GetNameScene(name string) (SceneKind, bool) {
	for k, n := range sceneNames {
		if n == strings.ToUpper(name) {
			return k, true
		}
	}
	return 0, false
}

// Scene 场景文件中的一张图
type Scene struct {
	Kind   SceneKind
	ID     int
	Line   int    // 所在行号
	LCR    LCR    // SceneLCR 与 SceneBasic 使用
	Phasor Phasor // ScenePhasor 使用
}

// Name 输出文件名（不含扩展名）
func (s Scene) Name() string {
	return strings.ToLower(s.Kind.String()) + strconv.Itoa(s.ID)
}

// Render 在画布上绘制场景
func (s Scene) Render(c draw.Canvas) (*figure.Figure, types.Regime, error) {
	switch s.Kind {
	case SceneLCR:
		return PlotLCR(c, s.LCR)
	case SceneBasic:
		return PlotLCRBasic(c, s.LCR)
	case ScenePhasor:
		return PlotPhasor(c, s.Phasor)
	}
	return nil, "", fmt.Errorf("未知场景类型: %d", s.Kind)
}

// Diagram 场景对应的图数据
func (s Scene) Diagram() *diagram.Diagram {
	switch s.Kind {
	case SceneLCR:
		return diagram.NewLCR(s.LCR.Theta1, s.LCR.Params(), diagram.DetailFull)
	case SceneBasic:
		return diagram.NewLCR(s.LCR.Theta1, s.LCR.Params(), diagram.DetailBasic)
	}
	return diagram.NewPhasor(s.Phasor.Phi, s.Phasor.Theta1, s.Phasor.Regime(), s.Phasor.V0, s.Phasor.I0)
}

// Load 加载场景文件
func Load(filename string) ([]Scene, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return LoadReader(file)
}

// LoadString 从字符串加载场景
func LoadString(s string) ([]Scene, error) {
	return LoadReader(strings.NewReader(s))
}

// LoadReader 解析场景
//
//	LCR<id>    [i0] [R] [XL] [XC] [theta1]
//	BASIC<id>  [i0] [R] [XL] [XC] [theta1]
//	PHASOR<id> <phi> [v0] [i0] [theta1] [case]
//
// "#" 开始注释，"-" 表示使用默认值
func LoadReader(r io.Reader) ([]Scene, error) {
	var scenes []Scene
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := utils.NetList(strings.Fields(line))
		if len(fields) == 0 {
			continue
		}
		name, id := fields.SeparationPrick(0)
		kind, ok := GetNameScene(name)
		if !ok {
			return nil, fmt.Errorf("第 %d 行: 未知图类型 %q", n, fields[0])
		}
		s := Scene{Kind: kind, ID: id, Line: n}
		switch kind {
		case SceneLCR, SceneBasic:
			def := DefaultLCR()
			v, err := parseFloats(fields, 1, def.I0, def.R, def.XL, def.XC, def.Theta1)
			if err != nil {
				return nil, fmt.Errorf("第 %d 行: %w", n, err)
			}
			s.LCR = LCR{I0: v[0], R: v[1], XL: v[2], XC: v[3], Theta1: v[4]}
		case ScenePhasor:
			if !fields.Has(1) {
				return nil, fmt.Errorf("第 %d 行: 缺少相位角", n)
			}
			phi, err := utils.ParseAngle(fields[1])
			if err != nil {
				return nil, fmt.Errorf("第 %d 行: %w", n, err)
			}
			def := DefaultPhasor(phi)
			v, err := parseFloats(fields, 2, def.V0, def.I0, def.Theta1)
			if err != nil {
				return nil, fmt.Errorf("第 %d 行: %w", n, err)
			}
			s.Phasor = Phasor{
				Phi:    phi,
				V0:     v[0],
				I0:     v[1],
				Theta1: v[2],
				Case:   types.Regime(fields.ParseString(5, string(def.Case))),
			}
		}
		scenes = append(scenes, s)
	}
	return scenes, scanner.Err()
}

// parseFloats 从第 from 个字段起依次解析数值，缺省字段取 defs 中的值
func parseFloats(fields utils.NetList, from int, defs ...float64) ([]float64, error) {
	out := make([]float64, len(defs))
	for i, def := range defs {
		v, err := fields.ParseFloat64(from+i, def)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Export 导出场景文件
func Export(w io.Writer, scenes []Scene) error {
	writer := bufio.NewWriter(w)
	for _, s := range scenes {
		writer.WriteString(s.Kind.String())
		fmt.Fprint(writer, s.ID)
		switch s.Kind {
		case SceneLCR, SceneBasic:
			for _, v := range []float64{s.LCR.I0, s.LCR.R, s.LCR.XL, s.LCR.XC, s.LCR.Theta1} {
				writer.WriteRune(' ')
				writer.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
			}
		case ScenePhasor:
			for _, v := range []float64{s.Phasor.Phi, s.Phasor.V0, s.Phasor.I0, s.Phasor.Theta1} {
				writer.WriteRune(' ')
				writer.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
			}
			writer.WriteRune(' ')
			writer.WriteString(s.Phasor.Regime().String())
		}
		writer.WriteRune('\n')
	}
	return writer.Flush()
}

// RenderFile 绘制场景并保存到 dir/<name>.<format>
func RenderFile(s Scene, dir, format string, dpi int) (path string, regime types.Regime, err error) {
	c, err := figure.NewCanvas(format, dpi)
	if err != nil {
		return "", "", err
	}
	if _, regime, err = s.Render(draw.New(c)); err != nil {
		return "", regime, fmt.Errorf("%s: %w", s.Name(), err)
	}
	path = filepath.Join(dir, s.Name()+"."+strings.ToLower(format))
	if err := figure.Save(path, c); err != nil {
		return "", regime, err
	}
	logger.Info().Str("file", path).Str("case", regime.Case()).Msg("已保存")
	return path, regime, nil
}
