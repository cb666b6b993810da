// Command hero runs the animated banner in a window or a terminal, and
// offers small tools around it.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/naveen-enterprises/hero"
	"github.com/naveen-enterprises/hero/term"
)

var (
	configFile string
	theme      string
	width      int
	height     int
	tps        int
	seed       uint64
	preset     string
	showFPS    bool
	debug      bool
	scriptFile string

	distance float64
	ticks    int
	eps      float64
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Defining the flags resets the flag
// variables to their defaults.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "hero",
		Short:        "animated hero banner",
		SilenceUsage: true,
		RunE:         runWindow,
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file path (yaml)")
	flags.StringVar(&theme, "theme", "", "initial color scheme: dark or light")
	flags.IntVar(&width, "width", 0, "window width in pixels")
	flags.IntVar(&height, "height", 0, "window height in pixels")
	flags.IntVar(&tps, "fps", 0, "ticks per second")
	flags.Uint64Var(&seed, "seed", 0, "particle seed (0 = random)")
	flags.StringVar(&preset, "preset", "", fmt.Sprintf("particle preset %v", hero.ListPresets()))
	flags.BoolVar(&showFPS, "show-fps", false, "show the FPS overlay")
	flags.BoolVar(&debug, "debug", false, "log diagnostics to stderr")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "open the banner in a window",
		RunE:  runWindow,
	}
	runCmd.Flags().StringVar(&scriptFile, "script", "", "JSON input script to replay, then exit")

	termCmd := &cobra.Command{
		Use:   "term",
		Short: "render the banner in the terminal",
		RunE:  runTerminal,
	}

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "plot how the cursor glow closes on the pointer",
		RunE:  runTrace,
	}
	traceCmd.Flags().Float64Var(&distance, "distance", 500, "initial distance in pixels")
	traceCmd.Flags().IntVar(&ticks, "ticks", 40, "frames to simulate")
	traceCmd.Flags().Float64Var(&eps, "eps", 0.01, "remaining fraction that counts as converged")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as yaml",
		RunE:  printConfig,
	}

	rootCmd.AddCommand(runCmd, termCmd, traceCmd, configCmd)
	return rootCmd
}

// loadConfig reads --config over the defaults, then applies any flag the
// user set explicitly.
func loadConfig(cmd *cobra.Command) (*hero.Config, error) {
	cfg := hero.DefaultConfig()
	if configFile != "" {
		loaded, err := hero.LoadConfig(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, err
		}
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("fps") {
		cfg.TPS = tps
	}
	if flags.Changed("seed") {
		cfg.Particles.Seed = seed
	}
	if flags.Changed("show-fps") {
		cfg.ShowFPS = showFPS
	}
	if flags.Changed("debug") {
		cfg.Debug = debug
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	g := hero.NewGame(cfg)
	if scriptFile != "" {
		data, err := os.ReadFile(scriptFile)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := hero.LoadTestScript(data)
		if err != nil {
			return err
		}
		g.SetTestRunner(runner)
	}
	if err := hero.RunGame(g); err != nil {
		log.Fatal(err)
	}
	return nil
}

func runTerminal(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := term.Run(ctx, cfg); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	if ticks <= 0 {
		return fmt.Errorf("ticks must be positive, got %d", ticks)
	}
	if eps <= 0 || eps >= 1 {
		return fmt.Errorf("eps must be in (0, 1), got %v", eps)
	}
	data := make([]float64, 0, ticks+1)
	c := hero.NewCursorSmoother(func(x, y float64) {
		data = append(data, distance-x)
	})
	c.SetTarget(distance, 0)
	data = append(data, distance)
	for i := 0; i < ticks; i++ {
		c.Step()
	}

	n := hero.ConvergenceTicks(eps)
	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("remaining distance per frame (factor %.1f)", hero.SmoothingFactor)),
	)
	fmt.Fprintln(cmd.OutOrStdout(), graph)
	fmt.Fprintf(cmd.OutOrStdout(), "within %.2g of the target after %d frames\n", eps, n)
	return nil
}

func printConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
