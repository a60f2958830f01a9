package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"gowkb/adapters/export"
	"gowkb/adapters/specfunc"
	"gowkb/app"
	"gowkb/domain/core"
	"gowkb/domain/grid"
	"gowkb/internal"
	"gowkb/internal/config"
)

var logger = internal.DefaultLogger

func main() {
	// .env is optional; environment variables win either way
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "gowkb",
		Short: "Semiclassical bound state solver",
		Long: "gowkb assembles semiclassical (WKB) wavefunctions for bound states " +
			"of one-dimensional potentials, patching every classical turning point " +
			"with a matched Airy function.",
	}

	rootCmd.AddCommand(solveCmd())
	rootCmd.AddCommand(superposeCmd())
	rootCmd.AddCommand(energiesCmd())
	rootCmd.AddCommand(airyCmd())

	if err := rootCmd.Execute(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

func loadService() (*app.SolverService, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return app.NewSolverService(cfg), cfg, nil
}

func solveCmd() *cobra.Command {
	var level int
	var format string

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one bound state and export its wavefunction",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := loadService()
			if err != nil {
				return err
			}
			if level < 0 {
				level = cfg.Physics.EnergyLevel
			}

			result, err := svc.Solve(level)
			if err != nil {
				return err
			}
			paths, err := svc.Export(result, format)
			if err != nil {
				return err
			}
			summary, err := svc.Summarize(result)
			if err != nil {
				return err
			}

			fmt.Printf("run      %s\n", result.RunID)
			fmt.Printf("level    %d\n", result.Level)
			fmt.Printf("energy   %.10g\n", result.Energy)
			fmt.Printf("density  mean=%.4g median=%.4g p95=%.4g max=%.4g\n",
				summary.Mean, summary.Median, summary.P95, summary.Max)
			for _, p := range paths {
				fmt.Printf("wrote    %s\n", p)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&level, "level", "n", -1, "quantum number (default: ENERGY_LEVEL)")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "export format: text, excel or both")
	return cmd
}

func superposeCmd() *cobra.Command {
	var levelsArg, weightsArg string
	var renormalize bool

	cmd := &cobra.Command{
		Use:   "superpose",
		Short: "Combine several levels into one superposed state",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := loadService()
			if err != nil {
				return err
			}

			components, err := parseComponents(levelsArg, weightsArg)
			if err != nil {
				return err
			}

			sp, err := svc.Superpose(components, renormalize)
			if err != nil {
				return err
			}

			runID := core.NewRunID()
			sheet := export.Sheet{
				RunID:     runID.String(),
				Potential: cfg.Physics.Potential + " superposition " + levelsArg,
				Level:     -1,
				Energy:    sp.Energies()[0],
				Samples:   svc.SampleSuperposition(sp),
			}
			path := filepath.Join(cfg.Paths.OutputDir, fmt.Sprintf("superposition_%.8s.dat", runID))
			if err := os.MkdirAll(cfg.Paths.OutputDir, 0o755); err != nil {
				return err
			}
			if err := (export.TextWriter{}).Write(path, sheet); err != nil {
				return err
			}

			fmt.Printf("run      %s\n", runID)
			fmt.Printf("energies %v\n", sp.Energies())
			fmt.Printf("wrote    %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&levelsArg, "levels", "0,1", "comma separated quantum numbers")
	cmd.Flags().StringVar(&weightsArg, "weights", "", "comma separated weights (default: equal)")
	cmd.Flags().BoolVar(&renormalize, "renormalize", true, "rescale the combined density to unit norm")
	return cmd
}

func energiesCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "energies",
		Short: "Print the first bound state energies of the configured potential",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadService()
			if err != nil {
				return err
			}

			for n := 0; n < count; n++ {
				result, err := svc.Solve(n)
				if err != nil {
					return err
				}
				fmt.Printf("n=%-3d E=%.10g\n", n, result.Energy)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 5, "number of levels to resolve")
	return cmd
}

func airyCmd() *cobra.Command {
	var from, to float64
	var points int

	cmd := &cobra.Command{
		Use:   "airy",
		Short: "Print a table of the Airy function Ai on the real axis",
		RunE: func(cmd *cobra.Command, args []string) error {
			if points < 2 {
				return fmt.Errorf("points must be at least 2, got %d", points)
			}

			prov := specfunc.NewGonum()
			fmt.Println("# x Ai Bi")
			for i := 0; i < points; i++ {
				x := grid.IndexToRange(float64(i), float64(points), from, to)
				ai := prov.Ai(complex(x, 0))
				bi := prov.Bi(complex(x, 0))
				fmt.Printf("%.8g %.12g %.12g\n", x, real(ai), real(bi))
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&from, "from", -10, "start of the scan")
	cmd.Flags().Float64Var(&to, "to", 5, "end of the scan")
	cmd.Flags().IntVar(&points, "points", 200, "number of samples")
	return cmd
}

func parseComponents(levelsArg, weightsArg string) ([]app.Component, error) {
	levelFields := strings.Split(levelsArg, ",")
	components := make([]app.Component, 0, len(levelFields))
	for _, f := range levelFields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("bad level %q: %w", f, err)
		}
		components = append(components, app.Component{Level: n, Weight: 1})
	}

	if weightsArg != "" {
		weightFields := strings.Split(weightsArg, ",")
		if len(weightFields) != len(components) {
			return nil, fmt.Errorf("got %d weights for %d levels", len(weightFields), len(components))
		}
		for i, f := range weightFields {
			w, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, fmt.Errorf("bad weight %q: %w", f, err)
			}
			components[i].Weight = complex(w, 0)
		}
	}
	return components, nil
}
