package figure

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Formats 支持的导出格式
var Formats = []string{"png", "jpg", "jpeg", "tif", "tiff", "svg", "pdf", "eps"}

// IsFormat 判断导出格式是否受支持
func IsFormat(format string) bool {
	format = strings.ToLower(format)
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// NewCanvas 创建默认尺寸的画布
// 位图格式使用 dpi，矢量格式忽略 dpi
func NewCanvas(format string, dpi int) (vg.CanvasWriterTo, error) {
	return NewCanvasSize(Width, Height, format, dpi)
}

// NewCanvasSize 创建指定尺寸的画布
func NewCanvasSize(w, h vg.Length, format string, dpi int) (vg.CanvasWriterTo, error) {
	if dpi <= 0 {
		dpi = DPI
	}
	switch strings.ToLower(format) {
	case "png":
		return vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))}, nil
	case "jpg", "jpeg":
		return vgimg.JpegCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))}, nil
	case "tif", "tiff":
		return vgimg.TiffCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))}, nil
	}
	c, err := draw.NewFormattedCanvas(w, h, strings.ToLower(format))
	if err != nil {
		return nil, fmt.Errorf("不支持的格式 %q: %w", format, err)
	}
	return c, nil
}

// Save 将已绘制的画布写入文件
func Save(path string, c vg.CanvasWriterTo) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	if _, err := c.WriteTo(file); err != nil {
		return fmt.Errorf("写入 %s: %w", path, err)
	}
	return file.Close()
}
