package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/JulianaRamayo/simkern/internal/config"
	"github.com/JulianaRamayo/simkern/internal/experiment"
	"github.com/JulianaRamayo/simkern/internal/particle"
	"github.com/JulianaRamayo/simkern/internal/render"
	"github.com/JulianaRamayo/simkern/internal/storage"
	"github.com/JulianaRamayo/simkern/internal/timing"
	"github.com/JulianaRamayo/simkern/internal/viz"
)

var (
	dataDir  string
	strategy string
	// julia parameters
	width   int
	maxIter int
	// particle parameters
	duration float64
	// config file / preset
	configFile string
	preset     string
	// render
	outPath string
	// animate
	fps       int
	frameTime float64
	// bench sweeps
	benchWidths []int
	benchCounts []int
	// persistence
	saveRun bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "simkern",
		Short: "scalar vs batch numeric kernel benchmarking",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".simkern", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [julia|particles]",
		Short: "run a kernel once",
		Args:  cobra.ExactArgs(1),
		RunE:  runKernel,
	}
	runCmd.Flags().StringVar(&strategy, "strategy", config.DefaultStrategy, "scalar or batch")
	runCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "grid width (julia)")
	runCmd.Flags().IntVar(&maxIter, "max-iter", config.DefaultMaxIter, "iteration cap (julia)")
	runCmd.Flags().Float64Var(&duration, "duration", config.DefaultDuration, "evolution time (particles)")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().BoolVar(&saveRun, "save", false, "persist results to the data directory")

	benchCmd := &cobra.Command{
		Use:   "bench [julia|particles]",
		Short: "benchmark both strategies across input sizes",
		Args:  cobra.ExactArgs(1),
		RunE:  benchKernel,
	}
	benchCmd.Flags().IntSliceVar(&benchWidths, "widths", []int{100, 250, 500, 1000}, "grid widths to sweep (julia)")
	benchCmd.Flags().IntVar(&maxIter, "max-iter", config.DefaultMaxIter, "iteration cap (julia)")
	benchCmd.Flags().IntSliceVar(&benchCounts, "counts", []int{10, 100, 1000}, "particle counts to sweep")
	benchCmd.Flags().Float64Var(&duration, "duration", 0.01, "evolution time per run (particles)")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "run the fractal kernel and write a grayscale PNG",
		RunE:  renderJulia,
	}
	renderCmd.Flags().StringVar(&strategy, "strategy", config.DefaultStrategy, "scalar or batch")
	renderCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "grid width")
	renderCmd.Flags().IntVar(&maxIter, "max-iter", config.DefaultMaxIter, "iteration cap")
	renderCmd.Flags().StringVar(&outPath, "out", "julia.png", "output file")
	renderCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	renderCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	animateCmd := &cobra.Command{
		Use:   "animate",
		Short: "live terminal animation of the particle kernel",
		RunE:  animateParticles,
	}
	animateCmd.Flags().StringVar(&strategy, "strategy", config.DefaultStrategy, "scalar or batch")
	animateCmd.Flags().IntVar(&fps, "fps", 30, "frame rate")
	animateCmd.Flags().Float64Var(&frameTime, "frame-time", 0.01, "simulated time per frame")
	animateCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	animateCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportJSONStdout(args[0])
		},
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a saved run's data as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [julia|particles]",
		Short: "list available presets for a kernel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for kernel: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, benchCmd, renderCmd, animateCmd, listCmd, plotCmd, exportJSONCmd, exportCSVCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration: preset first, then
// config file, then CLI flags (flags override both, but only when set).
func loadConfig(cmd *cobra.Command, kernel string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(kernel, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(kernel))
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("strategy") {
		cfg.Strategy = strategy
	}
	if cmd.Flags().Changed("width") {
		cfg.Julia.Width = width
	}
	if cmd.Flags().Changed("max-iter") {
		cfg.Julia.MaxIter = maxIter
	}
	if cmd.Flags().Changed("duration") {
		cfg.Particle.Duration = duration
	}

	return cfg, nil
}

func runKernel(cmd *cobra.Command, args []string) error {
	kernel := args[0]

	cfg, err := loadConfig(cmd, kernel)
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()

	switch kernel {
	case "julia":
		k, err := registry.GetKernel(cfg.Strategy)
		if err != nil {
			return err
		}

		fmt.Printf("running julia kernel (%s, width=%d, max_iter=%d)...\n",
			k.Name(), cfg.Julia.Width, cfg.Julia.MaxIter)

		result, err := experiment.RunJulia(cfg.Julia, k)
		if err != nil {
			return err
		}

		rec := timing.NewRecorder()
		for _, s := range result.Samples {
			rec.Add(s)
		}
		if err := rec.Report(os.Stdout); err != nil {
			return err
		}

		fmt.Printf("points: %d\n", result.Grid.Len())
		fmt.Printf("checksum: %d\n", result.Checksum)
		if experiment.IsReference(cfg.Julia) {
			if result.Checksum == experiment.ReferenceChecksum {
				fmt.Println("checksum matches the reference oracle")
			} else {
				return fmt.Errorf("checksum %d does not match reference %d",
					result.Checksum, experiment.ReferenceChecksum)
			}
		}

		if saveRun {
			st := storage.New(dataDir)
			if err := st.Init(); err != nil {
				return err
			}
			runID, err := st.SaveJulia(cfg.Strategy, cfg.Julia.Width, cfg.Julia.MaxIter, result)
			if err != nil {
				return err
			}
			fmt.Printf("run id: %s\n", runID)
		}

	case "particles":
		e, err := registry.GetEvolver(cfg.Strategy)
		if err != nil {
			return err
		}

		fmt.Printf("running particle kernel (%s, n=%d, duration=%.3f)...\n",
			e.Name(), len(cfg.Particle.Particles), cfg.Particle.Duration)

		result := experiment.RunParticles(cfg.Particle, e)

		rec := timing.NewRecorder()
		for _, s := range result.Samples {
			rec.Add(s)
		}
		if err := rec.Report(os.Stdout); err != nil {
			return err
		}

		fmt.Println("\nfinal positions:")
		for i, p := range result.Particles {
			fmt.Printf("  %d: (%.6f, %.6f)\n", i, p.X, p.Y)
		}

		if saveRun {
			st := storage.New(dataDir)
			if err := st.Init(); err != nil {
				return err
			}
			runID, err := st.SaveParticles(cfg.Strategy, cfg.Particle.Duration, result)
			if err != nil {
				return err
			}
			fmt.Printf("run id: %s\n", runID)
		}

	default:
		return fmt.Errorf("unknown kernel: %s (want julia or particles)", kernel)
	}

	return nil
}

func benchKernel(cmd *cobra.Command, args []string) error {
	kernel := args[0]
	registry := experiment.NewRegistry()

	switch kernel {
	case "julia":
		fmt.Printf("benchmarking julia kernel (max_iter=%d)\n\n", maxIter)
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "WIDTH\tSTRATEGY\tPOINTS\tTIME\tPOINTS/SEC")

		speedups := make([]float64, 0, len(benchWidths))
		for _, gw := range benchWidths {
			cfg := config.DefaultConfig().Julia
			cfg.Width = gw
			cfg.MaxIter = maxIter

			var elapsed [2]float64
			for si, name := range registry.ListStrategies() {
				k, err := registry.GetKernel(name)
				if err != nil {
					return err
				}

				result, err := experiment.RunJulia(cfg, k)
				if err != nil {
					return err
				}

				// Kernel sample only; grid construction is timed
				// separately and excluded from throughput.
				kt := result.Samples[len(result.Samples)-1].Elapsed
				elapsed[si] = kt.Seconds()

				fmt.Fprintf(w, "%d\t%s\t%d\t%v\t%.0f\n",
					gw, name, result.Grid.Len(), kt,
					float64(result.Grid.Len())/kt.Seconds())
			}
			if elapsed[1] > 0 {
				// ListStrategies is sorted: batch, scalar.
				speedups = append(speedups, elapsed[1]/elapsed[0])
			}
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if len(speedups) > 1 {
			fmt.Println()
			fmt.Println(asciigraph.Plot(speedups,
				asciigraph.Height(8),
				asciigraph.Width(60),
				asciigraph.Caption("scalar/batch speedup across widths"),
			))
		}

	case "particles":
		fmt.Printf("benchmarking particle kernel (duration=%.3f per run)\n\n", duration)
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "PARTICLES\tSTRATEGY\tSTEPS\tTIME\tPARTICLE-STEPS/SEC")

		steps := int(duration / particle.Timestep)
		for _, n := range benchCounts {
			cfg := config.ParticleConfig{
				Duration:  duration,
				Particles: config.GetPreset("particles", "ring").Particle.Particles,
			}
			// Resize the ring fixture to the requested count.
			for len(cfg.Particles) < n {
				cfg.Particles = append(cfg.Particles, cfg.Particles...)
			}
			cfg.Particles = cfg.Particles[:n]

			for _, name := range registry.ListStrategies() {
				e, err := registry.GetEvolver(name)
				if err != nil {
					return err
				}

				result := experiment.RunParticles(cfg, e)
				et := result.Samples[0].Elapsed

				fmt.Fprintf(w, "%d\t%s\t%d\t%v\t%.0f\n",
					n, name, steps, et,
					float64(n*steps)/et.Seconds())
			}
		}
		if err := w.Flush(); err != nil {
			return err
		}

	default:
		return fmt.Errorf("unknown kernel: %s (want julia or particles)", kernel)
	}

	return nil
}

func renderJulia(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, "julia")
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	k, err := registry.GetKernel(cfg.Strategy)
	if err != nil {
		return err
	}

	result, err := experiment.RunJulia(cfg.Julia, k)
	if err != nil {
		return err
	}

	img, err := render.Grayscale(result.Counts, result.Grid.XCount, result.Grid.YCount)
	if err != nil {
		return err
	}
	if err := render.WritePNG(outPath, img); err != nil {
		return err
	}

	fmt.Printf("wrote %dx%d image to %s\n", result.Grid.XCount, result.Grid.YCount, outPath)
	return nil
}

func animateParticles(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, "particles")
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	e, err := registry.GetEvolver(cfg.Strategy)
	if err != nil {
		return err
	}

	ps := experiment.Particles(cfg.Particle)
	m := viz.NewModel(e, ps, frameTime, fps)

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKERNEL\tSTRATEGY\tTIME\tPOINTS\tCHECKSUM")

	for _, run := range runs {
		checksum := "-"
		if run.Kernel == "julia" {
			checksum = strconv.Itoa(run.Checksum)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			run.ID,
			run.Kernel,
			run.Strategy,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Points,
			checksum,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("kernel: %s (%s)\n\n", meta.Kernel, meta.Strategy)

	switch meta.Kernel {
	case "julia":
		counts, err := st.LoadCounts(runID)
		if err != nil {
			return err
		}
		if len(counts) == 0 {
			return fmt.Errorf("no data to plot")
		}

		// Mean iteration count per grid row: a cheap profile of where
		// the set's interior sits.
		profile := make([]float64, len(counts))
		for i, row := range counts {
			sum := 0
			for _, n := range row {
				sum += n
			}
			if len(row) > 0 {
				profile[i] = float64(sum) / float64(len(row))
			}
		}

		fmt.Println(asciigraph.Plot(profile,
			asciigraph.Height(15),
			asciigraph.Width(80),
			asciigraph.Caption("mean iterations per row (top to bottom)"),
		))

	case "particles":
		ps, err := st.LoadPositions(runID)
		if err != nil {
			return err
		}
		if len(ps) == 0 {
			return fmt.Errorf("no data to plot")
		}

		canvas := viz.NewCanvas(60, 24)
		for _, p := range ps {
			canvas.PlotWorld(p.X, p.Y, 1.0)
		}
		fmt.Print(canvas.String())

	default:
		return fmt.Errorf("unknown kernel in metadata: %s", meta.Kernel)
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	switch meta.Kernel {
	case "julia":
		counts, err := st.LoadCounts(runID)
		if err != nil {
			return err
		}
		for _, row := range counts {
			record := make([]string, len(row))
			for i, n := range row {
				record[i] = strconv.Itoa(n)
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}

	case "particles":
		ps, err := st.LoadPositions(runID)
		if err != nil {
			return err
		}
		if err := w.Write([]string{"x", "y", "ang_vel"}); err != nil {
			return err
		}
		for _, p := range ps {
			record := []string{
				strconv.FormatFloat(p.X, 'f', 6, 64),
				strconv.FormatFloat(p.Y, 'f', 6, 64),
				strconv.FormatFloat(p.AngVel, 'f', 6, 64),
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}

	default:
		return fmt.Errorf("unknown kernel in metadata: %s", meta.Kernel)
	}

	return nil
}
