package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"textgrid/export"
	"textgrid/layout"
	"textgrid/logs"
	"textgrid/render"
	"textgrid/script"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("textgrid", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		scriptFile = fs.String("f", "", "Placement script file (line or JSON format, \"-\" for stdin)")
		format     = fs.String("format", "text", "Final export format: text, json, markdown")
		outputFile = fs.String("o", "", "Write the final export to file")
		mode       = fs.String("mode", "", "Console mode: ansi, plain, screen (default: detect)")
		screen     = fs.Bool("screen", false, "Draw on a full-screen terminal surface (same as -mode screen)")
		quiet      = fs.Bool("quiet", false, "Do not redraw after each placement, only print the final export")
		hold       = fs.Bool("hold", false, "Wait for a key press before exiting (requires -screen, not with -quiet)")
	)

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: textgrid [options] [ROW COL TEXT...]\n\n")
		fmt.Fprintf(stderr, "Places text on a grid that grows to fit, redrawing the grid after every placement.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  textgrid 5 2 hi                  # Place one string\n")
		fmt.Fprintf(stderr, "  textgrid -f layout.txt           # Run a placement script\n")
		fmt.Fprintf(stderr, "  textgrid -quiet -format json < layout.txt\n")
		fmt.Fprintf(stderr, "  textgrid -screen -hold -f layout.json\n")
		fmt.Fprintf(stderr, "\nScript format: one \"ROW COL TEXT\" per line, '#' starts a comment,\n")
		fmt.Fprintf(stderr, "or a JSON array of {\"row\", \"col\", \"text\"} objects.\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	exportFormat, err := export.ParseFormat(*format)
	if err != nil {
		return fail(stderr, err)
	}

	placements, err := loadPlacements(fs.Args(), *scriptFile, stdin)
	if err != nil {
		return fail(stderr, err)
	}

	consoleMode, err := selectMode(*mode, *screen, stdout)
	if err != nil {
		return fail(stderr, err)
	}

	if *hold && (consoleMode != render.ModeScreen || *quiet) {
		return fail(stderr, errors.New("-hold needs the screen console: use -screen without -quiet"))
	}

	logger := logs.NewFromEnv()
	defer logger.Close()
	logger.Event("start", map[string]any{"placements": len(placements), "mode": consoleMode.String()})

	var (
		console render.Console
		sc      *render.ScreenConsole
	)
	switch {
	case *quiet:
		console = render.DiscardConsole{}
	case consoleMode == render.ModeScreen:
		sc, err = render.NewScreenConsole()
		if err != nil {
			return fail(stderr, err)
		}
		console = sc
	default:
		console, err = render.NewConsole(consoleMode, stdout)
		if err != nil {
			return fail(stderr, err)
		}
	}

	placer := layout.NewPlacer(console)
	placer.SetLogger(logger)
	placeErr := placer.PlaceAll(placements)

	if sc != nil {
		if *hold && placeErr == nil {
			sc.WaitKey()
		}
		sc.Close()
	}
	if placeErr != nil {
		return fail(stderr, placeErr)
	}

	// The last redraw already shows the text export unless it went
	// nowhere visible or a different destination was asked for.
	if *quiet || sc != nil || *outputFile != "" || exportFormat != export.FormatText {
		if err := writeExport(placer, exportFormat, *outputFile, stdout); err != nil {
			return fail(stderr, err)
		}
	}

	return 0
}

func fail(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}

// loadPlacements reads placements from positional args, a script file, or stdin.
func loadPlacements(args []string, scriptFile string, stdin io.Reader) ([]layout.Placement, error) {
	if len(args) > 0 {
		if scriptFile != "" {
			return nil, fmt.Errorf("use either -f or ROW COL TEXT arguments, not both")
		}
		pl, err := script.Args(args)
		if err != nil {
			return nil, err
		}
		return []layout.Placement{pl}, nil
	}

	if scriptFile == "" || scriptFile == "-" {
		return script.Parse(stdin)
	}

	f, err := os.Open(scriptFile)
	if err != nil {
		return nil, fmt.Errorf("opening script: %w", err)
	}
	defer f.Close()
	return script.Parse(f)
}

// selectMode resolves the console mode from flags, environment, and output.
func selectMode(modeFlag string, screen bool, stdout io.Writer) (render.Mode, error) {
	if modeFlag != "" {
		return render.ParseMode(modeFlag)
	}
	if screen {
		return render.ModeScreen, nil
	}
	isTTY := false
	if f, ok := stdout.(*os.File); ok {
		isTTY = render.IsTerminal(f)
	}
	return render.DetectCapabilities(isTTY).Mode, nil
}

func writeExport(placer *layout.Placer, format export.Format, outputFile string, stdout io.Writer) error {
	exporter, err := export.NewExporter(format)
	if err != nil {
		return err
	}
	out, err := exporter.Export(placer.Grid())
	if err != nil {
		return fmt.Errorf("exporting %s: %w", exporter.GetFormatName(), err)
	}

	if outputFile == "" {
		_, err = io.WriteString(stdout, out)
		return err
	}
	if err := os.WriteFile(outputFile, []byte(out), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outputFile, err)
	}
	return nil
}
