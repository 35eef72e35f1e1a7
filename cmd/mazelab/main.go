package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/mazelab/internal/config"
	"github.com/san-kum/mazelab/internal/export"
	"github.com/san-kum/mazelab/internal/maze"
	"github.com/san-kum/mazelab/internal/solve"
	"github.com/san-kum/mazelab/internal/tui"
	"github.com/spf13/cobra"
)

var (
	width      int
	height     int
	difficulty string
	seed       int64
	benchSeed  int64
	configFile string
	preset     string
	solution   bool
	strategy   string
	format     string
	outFile    string
	cellSize   int
)

// newRootCmd registers commands and flags; the root command launches
// the interactive TUI when no subcommand is given.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mazelab",
		Short: "maze generator and solver",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
	addMazeFlags(rootCmd)

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "generate a maze and print it",
		RunE:  runGenerate,
	}
	addMazeFlags(generateCmd)
	generateCmd.Flags().BoolVar(&solution, "solution", false, "overlay the solution path")

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "generate a maze and solve it",
		RunE:  runSolve,
	}
	addMazeFlags(solveCmd)
	solveCmd.Flags().StringVar(&strategy, "strategy", "bfs", "search strategy (bfs|dfs)")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark generation and solving across sizes",
		RunE:  runBench,
	}
	// bench keeps its own seed variable: the shared one is re-bound by
	// every addMazeFlags call, which would reset its value to 0.
	benchCmd.Flags().Int64Var(&benchSeed, "seed", 42, "random seed")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "render a maze to a PNG or SVG file",
		RunE:  runExport,
	}
	addMazeFlags(exportCmd)
	exportCmd.Flags().BoolVar(&solution, "solution", false, "overlay the solution path")
	exportCmd.Flags().StringVar(&format, "format", "png", "output format (png|svg)")
	exportCmd.Flags().StringVar(&outFile, "out", "maze.png", "output file")
	exportCmd.Flags().IntVar(&cellSize, "cell-size", 0, "pixels per cell (0 = fit to display budget)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			if len(names) == 0 {
				fmt.Println("no presets")
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSIZE\tDIFFICULTY")
			for _, name := range names {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%dx%d\t%s\n", name, p.Width, p.Height, p.Difficulty)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(generateCmd, solveCmd, benchCmd, exportCmd, presetsCmd)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func addMazeFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "maze width (even values round up)")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "maze height (even values round up)")
	cmd.Flags().StringVar(&difficulty, "difficulty", config.DefaultDifficulty, "difficulty (easy|medium|hard)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = from clock)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a named preset")
}

// resolveConfig layers preset, config file, then explicitly-changed CLI
// flags, lowest priority first.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		if err := config.Overlay(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("difficulty") {
		cfg.Difficulty = difficulty
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if _, err := cfg.GetDifficulty(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildMaze(cmd *cobra.Command) (*maze.Grid, *config.Config, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	d, err := cfg.GetDifficulty()
	if err != nil {
		return nil, nil, err
	}
	s := cfg.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	gen := maze.NewGenerator(d, rand.New(rand.NewSource(s)))
	g, err := gen.Generate(cfg.Width, cfg.Height)
	if err != nil {
		return nil, nil, err
	}
	return g, cfg, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	g, _, err := buildMaze(cmd)
	if err != nil {
		return err
	}
	var path solve.Path
	if solution {
		path, _ = solve.NewBFS().Solve(g)
	}
	fmt.Print(export.ASCII(g, path))
	return nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	g, _, err := buildMaze(cmd)
	if err != nil {
		return err
	}
	solver := solve.ByName(strategy)

	start := time.Now()
	path, ok := solver.Solve(g)
	elapsed := time.Since(start)

	if !ok {
		fmt.Println("no path from entry to exit")
		return nil
	}
	fmt.Print(export.ASCII(g, path))
	fmt.Printf("\nstrategy: %s\n", solver.Name())
	fmt.Printf("path length: %d steps\n", path.Steps())
	fmt.Printf("solved in %v\n", elapsed)
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	sizes := []int{11, 21, 31, 41, 51, 71, 101}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tDIFFICULTY\tGEN\tBFS\tPATH LEN")

	lengths := make(map[maze.Difficulty][]float64)
	for _, d := range maze.Difficulties() {
		rng := rand.New(rand.NewSource(benchSeed))
		gen := maze.NewGenerator(d, rng)
		for _, size := range sizes {
			genStart := time.Now()
			g, err := gen.Generate(size, size)
			if err != nil {
				return err
			}
			genTime := time.Since(genStart)

			solveStart := time.Now()
			path, ok := solve.NewBFS().Solve(g)
			solveTime := time.Since(solveStart)
			if !ok {
				return fmt.Errorf("unsolvable %dx%d maze at difficulty %s", size, size, d)
			}

			fmt.Fprintf(w, "%dx%d\t%s\t%v\t%v\t%d\n", size, size, d, genTime, solveTime, path.Steps())
			lengths[d] = append(lengths[d], float64(path.Steps()))
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	for _, d := range maze.Difficulties() {
		fmt.Println()
		graph := asciigraph.Plot(lengths[d],
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption(fmt.Sprintf("bfs path length vs size (%s)", d)),
		)
		fmt.Println(graph)
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	g, cfg, err := buildMaze(cmd)
	if err != nil {
		return err
	}
	var path solve.Path
	if solution {
		path, _ = solve.NewBFS().Solve(g)
	}

	size := cellSize
	if size <= 0 {
		size = cfg.CellSize
	}
	if size <= 0 {
		size = config.FitCellSize(g.Width(), g.Height())
	}

	switch strings.ToLower(format) {
	case "png":
		if err := export.WritePNG(g, path, size, outFile); err != nil {
			return err
		}
	case "svg":
		if err := os.WriteFile(outFile, []byte(export.SVG(g, path, size)), 0644); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s (png|svg)", format)
	}
	fmt.Printf("wrote %s (%dx%d cells, %dpx per cell)\n", outFile, g.Width(), g.Height(), size)
	return nil
}
