package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/trigviz/internal/config"
	"github.com/san-kum/trigviz/internal/export"
	"github.com/san-kum/trigviz/internal/quiz"
	"github.com/san-kum/trigviz/internal/trig"
	"github.com/san-kum/trigviz/internal/viz"
	"github.com/spf13/cobra"
)

const (
	logDir      = "logs"
	logFileName = "trigviz.log"
)

var (
	configFile string
	preset     string
	debug      bool
	angle      int
	tableStep  int
	sweepStep  int
	theme      string
	svgOut     string
	webpOut    string
	gifOut     string
	scale      int
	withCurves bool

	// logFile is the open debug log, if any.
	logFile *os.File
)

// main runs the interactive explorer when no subcommand is given. It exits
// with status 1 if a command fails.
func main() {
	err := newRootCmd().Execute()
	closeLog()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "trigviz",
		Short: "trigonometric function explorer",
		Args:  cobra.NoArgs,
		RunE:  runInteractive,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			closeLog()
			logFile = setupLogging(debug)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			closeLog()
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "start at a preset angle")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write a debug log to "+filepath.Join(logDir, logFileName))
	rootCmd.PersistentFlags().IntVar(&angle, "angle", config.DefaultAngle, "angle in degrees (0-360)")
	rootCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")

	evalCmd := &cobra.Command{
		Use:   "eval [angle]",
		Short: "print all six function values at an angle",
		Args:  cobra.MaximumNArgs(1),
		RunE:  evalAngle,
	}

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "print function values over 0-360",
		RunE:  printTable,
	}
	tableCmd.Flags().IntVar(&tableStep, "step", 15, "angle step")

	plotCmd := &cobra.Command{
		Use:   "plot [function]",
		Short: "plot a function's curve in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotCurve,
	}

	quizCmd := &cobra.Command{
		Use:   "quiz [function]",
		Short: "check whether a function is positive at --angle",
		Args:  cobra.ExactArgs(1),
		RunE:  answerQuiz,
	}

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "export the plots as SVG",
		RunE:  exportSVG,
	}
	svgCmd.Flags().StringVar(&svgOut, "out", "trigviz.svg", "output file, - for stdout")

	webpCmd := &cobra.Command{
		Use:   "webp",
		Short: "export the plots as a WebP image",
		RunE:  exportWebP,
	}
	webpCmd.Flags().StringVar(&webpOut, "out", "trigviz.webp", "output file, - for stdout")
	webpCmd.Flags().IntVar(&scale, "scale", config.DefaultScale, "pixels per plot unit")

	gifCmd := &cobra.Command{
		Use:   "gif [function]",
		Short: "export an animation of the marker sweeping 0-360",
		Args:  cobra.ExactArgs(1),
		RunE:  exportGIF,
	}
	gifCmd.Flags().StringVar(&gifOut, "out", "", "output file (default <function>.gif), - for stdout")
	gifCmd.Flags().IntVar(&sweepStep, "step", config.DefaultSweepStep, "degrees per frame")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json",
		Short: "export values, markers and curves as JSON",
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().BoolVar(&withCurves, "curves", false, "include the sampled curves")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset angles",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tANGLE\tNOTE")
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Fprintf(w, "%s\t%d°\t%s\n", name, p.Angle, p.Description)
			}
			return w.Flush()
		},
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list color themes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range viz.ThemeNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}

	rootCmd.AddCommand(evalCmd, tableCmd, plotCmd, quizCmd, svgCmd, webpCmd, gifCmd, exportJSONCmd, presetsCmd, themesCmd)
	return rootCmd
}

// setupLogging routes the standard logger to a file when debug is set and
// discards it otherwise, so log lines never land on the TUI.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

// closeLog closes the debug log opened by setupLogging. PersistentPostRun
// is skipped when a command fails, so main calls it too.
func closeLog() {
	if logFile == nil {
		return
	}
	log.SetOutput(io.Discard)
	logFile.Close()
	logFile = nil
}

// loadConfig layers defaults, preset, config file and explicitly set flags,
// in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if preset != "" {
			fileCfg.Angle = cfg.Angle
		}
		cfg = fileCfg
	}

	if cmd.Flags().Changed("angle") {
		cfg.Angle = angle
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = theme
	}
	if cmd.Flags().Changed("scale") {
		cfg.Export.Scale = scale
	}
	if cmd.Name() == "gif" && cmd.Flags().Changed("step") {
		cfg.Export.SweepStep = sweepStep
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log.Printf("config: angle=%d theme=%s functions=%v", cfg.Angle, cfg.Theme, cfg.Functions)
	return cfg, nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return viz.Run(cfg)
}

func evalAngle(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	a := cfg.Angle
	if len(args) == 1 {
		if a, err = parseAngle(args[0]); err != nil {
			return err
		}
	}

	r := trig.Evaluate(a)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "angle: %d°\n", r.Angle)
	fmt.Fprintf(out, "quadrant: %d\n\n", int(r.Quadrant()))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "FUNCTION\tVALUE\tPOSITIVE IN QUADRANT\t")
	for _, fn := range trig.Functions() {
		pos := "no"
		if trig.IsPositiveExpected(fn, r.Quadrant()) {
			pos = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t\n", fn.Label(), r.Value(fn), pos)
	}
	return w.Flush()
}

func printTable(cmd *cobra.Command, args []string) error {
	if tableStep < 1 {
		return fmt.Errorf("step must be positive, got %d", tableStep)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
	header := []string{"ANGLE", "Q"}
	for _, fn := range trig.Functions() {
		header = append(header, strings.ToUpper(fn.Label()))
	}
	fmt.Fprintln(w, strings.Join(header, "\t")+"\t")

	for a := trig.MinAngle; a <= trig.MaxAngle; a += tableStep {
		r := trig.Evaluate(a)
		row := []string{strconv.Itoa(a), strconv.Itoa(int(r.Quadrant()))}
		for _, fn := range trig.Functions() {
			row = append(row, r.Value(fn).String())
		}
		fmt.Fprintln(w, strings.Join(row, "\t")+"\t")
	}
	return w.Flush()
}

func plotCurve(cmd *cobra.Command, args []string) error {
	fn, err := trig.ParseFunction(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	data, lo, hi := plotValues(fn, trig.Curves(fn))
	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(90),
		asciigraph.LowerBound(lo),
		asciigraph.UpperBound(hi),
		asciigraph.Caption(fmt.Sprintf("%s over 0-360° (gaps mark asymptotes)", fn.Label())),
	)
	fmt.Fprintln(cmd.OutOrStdout(), graph)

	r := trig.Evaluate(cfg.Angle)
	fmt.Fprintf(cmd.OutOrStdout(), "\n%s(%d°) = %s\n", fn.Label(), r.Angle, r.Value(fn))
	return nil
}

// plotValues converts plot rows back to the displayed function value so the
// graph reads upward, keeping NaN at breaks.
func plotValues(fn trig.Function, c trig.Curve) (data []float64, lo, hi float64) {
	s, lim := trig.ClampScale, trig.ClampLimit
	if fn.Bounded() {
		s, lim = trig.BoundedScale, 1
	}
	data = c.Values()
	for i, y := range data {
		data[i] = (trig.Midline - y) / s
	}
	return data, -lim, lim
}

func answerQuiz(cmd *cobra.Command, args []string) error {
	fn, err := trig.ParseFunction(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	j := quiz.Judge(fn, cfg.Angle)
	log.Printf("quiz: %s at %d° correct=%v", fn, j.Angle, j.Correct)
	fmt.Fprintf(cmd.OutOrStdout(), "At angle %d°: %s\n", j.Angle, j.Message())
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	fns, err := cfg.GetFunctions()
	if err != nil {
		return err
	}
	return writeOutput(cmd, svgOut, func(w io.Writer) error {
		return export.SVG(w, cfg.Angle, fns)
	})
}

func exportWebP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	fns, err := cfg.GetFunctions()
	if err != nil {
		return err
	}
	img := export.Raster(cfg.Angle, fns, cfg.Export.Scale)
	return writeOutput(cmd, webpOut, func(w io.Writer) error {
		return export.WebP(w, img)
	})
}

func exportGIF(cmd *cobra.Command, args []string) error {
	fn, err := trig.ParseFunction(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	path := gifOut
	if path == "" {
		path = fn.String() + ".gif"
	}
	return writeOutput(cmd, path, func(w io.Writer) error {
		return export.SweepGIF(w, fn, cfg.Export.SweepStep)
	})
}

func exportJSON(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	fns, err := cfg.GetFunctions()
	if err != nil {
		return err
	}
	return export.JSON(cmd.OutOrStdout(), cfg.Angle, fns, withCurves)
}

// writeOutput runs write against path, or stdout when path is "-".
func writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "-" {
		return write(cmd.OutOrStdout())
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("wrote %s", path)
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}

func parseAngle(s string) (int, error) {
	a, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid angle %q: %w", s, err)
	}
	if a < trig.MinAngle || a > trig.MaxAngle {
		return 0, fmt.Errorf("angle %d out of range [%d, %d]", a, trig.MinAngle, trig.MaxAngle)
	}
	return a, nil
}
