package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/barun-bash/forge/internal/build"
	"github.com/barun-bash/forge/internal/cli"
	"github.com/barun-bash/forge/internal/codegen/themes"
	"github.com/barun-bash/forge/internal/config"
	"github.com/barun-bash/forge/internal/ir"
)

var exportCmd = &cobra.Command{
	Use:   "export <tree.json|tree.yaml>",
	Short: "Export a component tree to source files",
	Long: `Export a component tree to source files.

Defaults come from .forge/export.yaml in the project directory and from
FORGE_TARGET, FORGE_STYLING, FORGE_TYPED, FORGE_ACCESSIBLE,
FORGE_RESPONSIVE and FORGE_TESTED. Flags override both.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringP("target", "t", "", "Target framework: react, vue, svelte, angular")
	f.StringP("styling", "s", "", "Styling system: tailwind, emotion, css-modules, scss")
	f.Bool("typed", false, "Emit type annotations")
	f.Bool("a11y", false, "Add ARIA and role attributes")
	f.Bool("responsive", false, "Emit per-breakpoint rules")
	f.Bool("tests", false, "Emit a smoke test")
	f.StringP("out", "o", ".", "Output directory")
	f.String("project", ".", "Project directory holding .forge/export.yaml")
	f.Bool("stdout", false, "Print files instead of writing them")
	f.Bool("all", false, "Export every target and styling pair into <out>/<target>-<styling>")
}

// exportConfig layers explicitly set flags over the project defaults.
func exportConfig(cmd *cobra.Command) (config.Export, error) {
	project, _ := cmd.Flags().GetString("project")
	cfg, err := config.Load(project)
	if err != nil {
		return cfg, err
	}
	f := cmd.Flags()
	if f.Changed("target") {
		v, _ := f.GetString("target")
		cfg.Target = config.NormalizeTarget(v)
	}
	if f.Changed("styling") {
		v, _ := f.GetString("styling")
		cfg.Styling = config.NormalizeStyling(v)
	}
	for flag, dst := range map[string]*bool{
		"typed":      &cfg.Typed,
		"a11y":       &cfg.Accessible,
		"responsive": &cfg.Responsive,
		"tests":      &cfg.Tested,
	} {
		if f.Changed(flag) {
			*dst, _ = f.GetBool(flag)
		}
	}
	return cfg, nil
}

func readTree(path string) (*ir.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	root, err := ir.Decode(path, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ir.Snapshot(root), nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := exportConfig(cmd)
	if err != nil {
		return err
	}
	tree, err := readTree(args[0])
	if err != nil {
		return err
	}
	out, _ := cmd.Flags().GetString("out")
	toStdout, _ := cmd.Flags().GetBool("stdout")
	all, _ := cmd.Flags().GetBool("all")

	ctx, cancel := interrupt(cmd.Context())
	defer cancel()

	reqs := []build.Request{{Tree: tree, Config: cfg}}
	if all {
		reqs = build.Matrix(tree, cfg)
	}
	results := build.ExportAll(ctx, reqs, build.WithLogger(logger))
	// Raw mode drops carriage returns; the terminal is restored before
	// anything is printed.
	cancel()

	w := cmd.OutOrStdout()
	failed := 0
	for i, req := range reqs {
		dir := out
		switch {
		case all && toStdout:
			dir = matrixDir(req.Config)
		case all:
			dir = filepath.Join(out, matrixDir(req.Config))
		case toStdout:
			dir = ""
		}
		if !report(w, req.Config, results[i], dir, toStdout) {
			failed++
		}
	}
	if all {
		if failed > 0 {
			return fmt.Errorf("%d of %d exports failed", failed, len(results))
		}
		return nil
	}
	if failed > 0 {
		return fmt.Errorf("export failed")
	}
	deps, dev := themes.Dependencies(cfg.Styling, cfg.Target)
	cli.Dependencies(w, "dependencies", deps)
	cli.Dependencies(w, "devDependencies", dev)
	if cfg.Tested {
		cli.Dependencies(w, "test dependencies", themes.TestingDependencies(cfg.Target))
	}
	return nil
}

// interrupt is replaced in tests.
var interrupt = cli.WithInterrupt

func matrixDir(cfg config.Export) string {
	return string(cfg.Target) + "-" + string(cfg.Styling)
}

// report prints diagnostics and writes or prints the files of a
// successful result below dir. It returns whether the export succeeded.
func report(w io.Writer, cfg config.Export, res *build.Result, dir string, toStdout bool) bool {
	cli.Diagnostics(w, res.Diagnostics)
	if !res.Success {
		fmt.Fprintln(w, cli.Error("export "+cfg.String()+" failed"))
		return false
	}
	if toStdout {
		printFiles(w, dir, res.Files)
		return true
	}
	if err := writeFiles(dir, res.Files); err != nil {
		fmt.Fprintln(w, cli.Error(err.Error()))
		return false
	}
	paths := make([]string, len(res.Files))
	for i, f := range res.Files {
		paths[i] = filepath.Join(dir, f.Path)
	}
	fmt.Fprintln(w, cli.Success(fmt.Sprintf("%s → %s", cfg, strings.Join(paths, ", "))))
	return true
}

// writeFiles writes each file below dir, creating directories as needed.
func writeFiles(dir string, files []ir.File) error {
	for _, f := range files {
		path := filepath.Join(dir, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}

func printFiles(w io.Writer, dir string, files []ir.File) {
	for i, f := range files {
		if i > 0 {
			fmt.Fprintln(w)
		}
		path := f.Path
		if dir != "" {
			path = dir + "/" + f.Path
		}
		fmt.Fprintln(w, cli.Heading("// "+path))
		fmt.Fprint(w, f.Content)
	}
}
