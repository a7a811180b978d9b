package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"phasor"
	"phasor/config"
	"phasor/debug"
	"phasor/logger"
)

// defaultScene 未指定场景文件时绘制的图
const defaultScene = `
LCR1
BASIC2
PHASOR3 0
`

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("运行失败")
	}
}

// run 解析参数并绘制全部场景，日志写入 stderr
func run(args []string, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("配置错误: %w", err)
	}

	flags := flag.NewFlagSet("phasor", flag.ContinueOnError)
	flags.SetOutput(stderr)
	scene := flags.String("scene", "", "场景文件，为空时绘制默认图")
	out := flags.String("out", cfg.OutDir, "输出目录")
	format := flags.String("format", cfg.Format, "导出格式 png|jpg|tiff|svg|pdf|eps")
	dpi := flags.Int("dpi", cfg.DPI, "位图分辨率")
	html := flags.Bool("html", false, "同时输出 go-echarts 调试页面")
	dump := flags.Bool("json", false, "同时输出 JSON 计算结果")
	if err := flags.Parse(args); err != nil {
		return err
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.Pretty, Out: stderr})
	phasor.SetLogger(log)

	cfg.OutDir, cfg.Format, cfg.DPI = *out, *format, *dpi
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("参数错误: %w", err)
	}

	var scenes []phasor.Scene
	if *scene == "" {
		scenes, err = phasor.LoadString(defaultScene)
	} else {
		scenes, err = phasor.Load(*scene)
	}
	if err != nil {
		return fmt.Errorf("加载场景 %q: %w", *scene, err)
	}

	failed := 0
	for _, s := range scenes {
		if _, _, err := phasor.RenderFile(s, cfg.OutDir, cfg.Format, cfg.DPI); err != nil {
			log.Error().Err(err).Int("line", s.Line).Msg("绘制失败")
			failed++
			continue
		}
		if *html {
			var c debug.Charts
			c.Init(s.Diagram())
			if err := write(filepath.Join(cfg.OutDir, s.Name()+".html"), c.Render); err != nil {
				log.Error().Err(err).Str("scene", s.Name()).Msg("调试页面输出失败")
			}
		}
		if *dump {
			var rec debug.Record
			rec.Init(s.Diagram())
			if err := write(filepath.Join(cfg.OutDir, s.Name()+".json"), rec.Render); err != nil {
				log.Error().Err(err).Str("scene", s.Name()).Msg("计算结果输出失败")
			}
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d/%d 张图绘制失败", failed, len(scenes))
	}
	return nil
}

// write 创建文件并写入
func write(path string, render func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return render(file)
}
