package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func findCommand(t *testing.T, root *cobra.Command, name string) *cobra.Command {
	t.Helper()
	for _, cmd := range root.Commands() {
		if cmd.Name() == name {
			return cmd
		}
	}
	t.Fatalf("command %s not registered", name)
	return nil
}

// The bench seed must keep its own variable: the shared seed variable is
// re-bound (and reset to 0) by every addMazeFlags call that runs after
// bench registers its flag.
func TestBenchSeedSurvivesFlagRegistration(t *testing.T) {
	root := newRootCmd()

	if benchSeed != 42 {
		t.Errorf("expected bench seed default 42 after registration, got %d", benchSeed)
	}

	bench := findCommand(t, root, "bench")
	f := bench.Flags().Lookup("seed")
	if f == nil {
		t.Fatal("bench has no seed flag")
	}
	if f.DefValue != "42" {
		t.Errorf("expected advertised default 42, got %s", f.DefValue)
	}

	gen := findCommand(t, root, "generate")
	if f := gen.Flags().Lookup("seed"); f == nil || f.DefValue != "0" {
		t.Error("generate should keep the clock-seeded default of 0")
	}
}

// A config file layers its set fields over the preset instead of
// replacing it wholesale.
func TestResolveConfigOverlaysPresetWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("difficulty: hard\n"), 0644); err != nil {
		t.Fatal(err)
	}

	preset, configFile = "pocket", path
	defer func() { preset, configFile = "", "" }()

	root := newRootCmd()
	gen := findCommand(t, root, "generate")

	cfg, err := resolveConfig(gen)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if cfg.Width != 21 || cfg.Height != 21 {
		t.Errorf("preset dimensions lost: got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Difficulty != "hard" {
		t.Errorf("expected hard from file, got %s", cfg.Difficulty)
	}
}
