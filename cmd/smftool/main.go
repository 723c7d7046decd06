// smftool is a CLI utility for Terminal Reality SMF models: it splits
// POD streams into SMF files, prints model summaries, and exports to
// Wavefront OBJ.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Faultbox/smf-tools/internal/config"
	"github.com/Faultbox/smf-tools/internal/logger"
	"github.com/Faultbox/smf-tools/internal/report"
	"github.com/Faultbox/smf-tools/pkg/obj"
	"github.com/Faultbox/smf-tools/pkg/pod"
	"github.com/Faultbox/smf-tools/pkg/smf"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}

	command := flag.Arg(0)
	args := flag.Args()[1:]

	switch command {
	case "info":
		cmdInfo(args)
	case "export":
		cmdExport(args, cfg)
	case "split", "x":
		cmdSplit(args, cfg)
	case "convert":
		cmdConvert(args, cfg)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`smftool - Terminal Reality SMF model utility

Usage:
  smftool [options] <command> [args]

Commands:
  info <file.smf>                  Print a model summary
  export <file.smf> [out.obj]      Export a model to Wavefront OBJ
  split <file.pod> [output_dir]    Extract SMF models from a POD stream
  convert <file.pod> <output_dir>  Split a POD and export every model to OBJ

Options:
  -config <path>   Config file (default: ./config.yaml)
  -debug           Enable debug logging
  -out <dir>       Output directory for split and export
  -log-file <path> Write logs to this file

Examples:
  smftool info GMCJimmy.smf
  smftool export GMCJimmy.smf GMCJimmy.obj
  smftool split TRUCKS.POD ./extracted
  smftool convert TRUCKS.POD ./converted`)
}

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	showDiags := fs.Bool("d", false, "Print parse diagnostics")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: smftool info [-d] <file.smf>")
		os.Exit(1)
	}
	path := fs.Arg(0)

	model, diags := parseModel(path)
	report.Write(os.Stdout, path, model)

	if *showDiags {
		for _, d := range diags {
			fmt.Println(d)
		}
	}
}

func cmdExport(args []string, cfg *config.Config) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: smftool export <file.smf> [out.obj]")
		os.Exit(1)
	}
	path := fs.Arg(0)

	outPath := objPath(path, cfg.Export.OutputDir)
	if fs.NArg() > 1 {
		outPath = fs.Arg(1)
	}

	model, _ := parseModel(path)

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating directory: %v\n", err)
		os.Exit(1)
	}
	if err := obj.ExportFile(outPath, model, path); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting OBJ: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exported: %s (%d submeshes, %d vertices)\n", outPath, len(model.Submeshes), len(model.Vertices))
}

func cmdSplit(args []string, cfg *config.Config) {
	fs := flag.NewFlagSet("split", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: smftool split <file.pod> [output_dir]")
		os.Exit(1)
	}
	podPath := fs.Arg(0)

	outputDir := cfg.Split.OutputDir
	if fs.NArg() > 1 {
		outputDir = fs.Arg(1)
	}

	res := splitPOD(podPath, outputDir)
	for _, f := range res.Files {
		fmt.Println(f)
	}
	fmt.Fprintf(os.Stderr, "\nExtracted %d models from %s\n", res.Count, podPath)
}

func cmdConvert(args []string, cfg *config.Config) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Usage: smftool convert <file.pod> <output_dir>")
		os.Exit(1)
	}
	podPath := fs.Arg(0)
	outputDir := fs.Arg(1)

	res := splitPOD(podPath, outputDir)

	exported := 0
	for _, smfPath := range res.Files {
		model, diags, err := smf.ParseFile(smfPath)
		if err != nil {
			logger.Sugar.Errorf("parsing %s: %v", smfPath, err)
			continue
		}
		logDiagnostics(smfPath, diags)

		outPath := strings.TrimSuffix(smfPath, filepath.Ext(smfPath)) + ".obj"
		if err := obj.ExportFile(outPath, model, smfPath); err != nil {
			logger.Sugar.Errorf("exporting %s: %v", outPath, err)
			continue
		}
		exported++
	}

	fmt.Fprintf(os.Stderr, "Converted %d/%d models into %s\n", exported, res.Count, outputDir)
}

// objPath derives the default OBJ output path for an SMF file.
func objPath(smfPath, outputDir string) string {
	base := strings.TrimSuffix(filepath.Base(smfPath), filepath.Ext(smfPath))
	return filepath.Join(outputDir, base+".obj")
}

// parseModel parses one SMF file, logging diagnostics, exiting on I/O
// failure.
func parseModel(path string) (*smf.Model, []smf.Diagnostic) {
	model, diags, err := smf.ParseFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logDiagnostics(path, diags)
	return model, diags
}

func splitPOD(podPath, outputDir string) *pod.Result {
	res, err := pod.Split(podPath, outputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, w := range res.Warnings {
		logger.Sugar.Warnf("%s: %s", podPath, w)
	}
	return res
}

func logDiagnostics(path string, diags []smf.Diagnostic) {
	if len(diags) == 0 {
		return
	}
	logger.Sugar.Debugf("%s: %d lines skipped", path, len(diags))
	for _, d := range diags {
		logger.Sugar.Debugf("%s: %s", path, d)
	}
}
