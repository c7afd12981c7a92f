package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barun-bash/forge/internal/cli"
	"github.com/barun-bash/forge/internal/config"
	"github.com/barun-bash/forge/internal/ir"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	cli.ColorEnabled = false
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag to its default; cobra keeps parsed
// values between Execute calls.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestExportToStdout(t *testing.T) {
	out, err := run(t, "export", filepath.Join("..", "..", "examples", "profile-card.yaml"),
		"--project", t.TempDir(), "-t", "vue", "-s", "scss", "--stdout")
	require.NoError(t, err, out)
	assert.Contains(t, out, "// ProfileCard.vue")
	assert.Contains(t, out, "// ProfileCard.module.scss")
	assert.Contains(t, out, `v-if="onDelete"`)
	assert.Contains(t, out, "sass")
}

func TestExportAllToStdout(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "export", filepath.Join("..", "..", "examples", "profile-card.yaml"),
		"--project", t.TempDir(), "--all", "--stdout", "-o", dir)
	require.NoError(t, err, out)
	for _, want := range []string{"// react-tailwind/ProfileCard.", "// svelte-emotion/ProfileCard.svelte", "// angular-scss/profile-card.component.ts"} {
		assert.Contains(t, out, want)
	}
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "--stdout writes nothing")
}

// rawWriter records output written while the terminal is still raw.
type rawWriter struct {
	bytes.Buffer
	raw   *bool
	early bool
}

func (w *rawWriter) Write(p []byte) (int, error) {
	if *w.raw {
		w.early = true
	}
	return w.Buffer.Write(p)
}

func TestExportRestoresTerminalBeforePrinting(t *testing.T) {
	raw := false
	saved := interrupt
	interrupt = func(parent context.Context) (context.Context, context.CancelFunc) {
		raw = true
		ctx, cancel := context.WithCancel(parent)
		return ctx, func() {
			raw = false
			cancel()
		}
	}
	t.Cleanup(func() { interrupt = saved })

	resetFlags(rootCmd)
	cli.ColorEnabled = false
	w := &rawWriter{raw: &raw}
	rootCmd.SetOut(w)
	rootCmd.SetErr(w)
	rootCmd.SetArgs([]string{"export", filepath.Join("..", "..", "examples", "profile-card.yaml"),
		"--project", t.TempDir(), "-t", "react", "--stdout"})
	require.NoError(t, rootCmd.Execute(), w.String())
	assert.Contains(t, w.String(), "// ProfileCard.")
	assert.False(t, w.early, "output written while the terminal was raw")
}

func TestExportWritesFiles(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "export", filepath.Join("..", "..", "examples", "landing.json"),
		"--project", t.TempDir(), "-t", "angular", "-s", "css-modules", "--tests", "-o", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "W301")

	for _, name := range []string{"landing.component.ts", "landing.component.css", "landing.component.spec.ts"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestExportInvalidTarget(t *testing.T) {
	out, err := run(t, "export", filepath.Join("..", "..", "examples", "profile-card.yaml"),
		"--project", t.TempDir(), "-t", "raect", "--stdout")
	require.Error(t, err)
	assert.Contains(t, out, "E101")
	assert.Contains(t, out, `did you mean "react"?`)
}

func TestInitSavesConfig(t *testing.T) {
	project := t.TempDir()
	out, err := run(t, "init", "--project", project, "-t", "svelte", "-s", "emotion")
	require.NoError(t, err, out)

	cfg, err := config.Load(project)
	require.NoError(t, err)
	assert.Equal(t, config.Svelte, cfg.Target)
	assert.Equal(t, config.Emotion, cfg.Styling)
}

func TestTargets(t *testing.T) {
	out, err := run(t, "targets")
	require.NoError(t, err)
	for _, want := range []string{"react", "angular", "css-modules", "scss"} {
		assert.Contains(t, out, want)
	}
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	err := writeFiles(dir, []ir.File{{Path: "nested/A.tsx", Content: "x"}})
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(dir, "nested", "A.tsx"))
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}

func TestPrintFiles(t *testing.T) {
	cli.ColorEnabled = false
	var buf bytes.Buffer
	printFiles(&buf, "", []ir.File{{Path: "A.tsx", Content: "a\n"}, {Path: "A.css", Content: "b\n"}})
	assert.Equal(t, "// A.tsx\na\n\n// A.css\nb\n", buf.String())

	buf.Reset()
	printFiles(&buf, "vue-scss", []ir.File{{Path: "A.vue", Content: "a\n"}})
	assert.Equal(t, "// vue-scss/A.vue\na\n", buf.String())
}
