package generate

import (
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/magicappdev/cli/internal/generator"
	"github.com/magicappdev/cli/internal/output"
)

// fileEntries builds the file tree for a result. Skipped paths of files whose
// condition is false are shown as excluded; the rest already existed.
func fileEntries(tmpl generator.Template, vars generator.Variables, res *generator.GenerateResult, dryRun bool) []output.FileEntry {
	excluded := make(map[string]bool)
	for _, f := range tmpl.Files {
		if f.Condition == "" {
			continue
		}
		if ok, err := generator.Evaluate(f.Condition, vars); err == nil && !ok {
			excluded[f.Path] = true
		}
	}

	status := output.StatusCreated
	if dryRun {
		status = output.StatusPlanned
	}

	compiler := generator.NewCompiler(nil)
	entries := make([]output.FileEntry, 0, len(res.Files)+len(res.Skipped))
	for _, p := range res.Files {
		entries = append(entries, output.FileEntry{Path: p, Status: status})
	}
	for _, p := range res.Skipped {
		if !excluded[p] {
			entries = append(entries, output.FileEntry{Path: p, Status: output.StatusSkipped})
			continue
		}
		// Excluded entries carry the raw path; show it compiled when possible.
		if compiled, err := compiler.CompilePath(p, vars); err == nil {
			p = compiled
		}
		entries = append(entries, output.FileEntry{Path: p, Status: output.StatusExcluded})
	}
	return entries
}

// printResult writes the human-readable summary of a generation run.
func printResult(w io.Writer, tmpl generator.Template, vars generator.Variables, res *generator.GenerateResult, outDir string, dryRun bool) {
	abs, err := filepath.Abs(outDir)
	if err != nil {
		abs = outDir
	}

	verb := "Generated"
	if dryRun {
		verb = "Would generate"
	}
	fmt.Fprintf(w, "%s %s in %s\n\n", verb, output.StyleNoun.Render(tmpl.Slug), abs)
	fmt.Fprint(w, output.RenderFileTree(abs, fileEntries(tmpl, vars, res, dryRun)))

	printDependencies(w, "Dependencies", res.Dependencies)
	printDependencies(w, "Dev dependencies", res.DevDependencies)

	fmt.Fprintln(w)
	fmt.Fprintln(w, output.StyleSummary.Render(summary(len(res.Files), len(res.Skipped), dryRun)))
}

func printDependencies(w io.Writer, title string, deps map[string]string) {
	if len(deps) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s:\n", title)
	for _, name := range slices.Sorted(maps.Keys(deps)) {
		fmt.Fprintf(w, "  %s %s\n", name, output.StyleDim.Render(deps[name]))
	}
}

func summary(files, skipped int, dryRun bool) string {
	if dryRun {
		return fmt.Sprintf("%d file(s) would be written, %d skipped (dry run)", files, skipped)
	}
	return fmt.Sprintf("%d file(s) written, %d skipped", files, skipped)
}

// printDiffs prints a unified diff for every file a dry run would write.
func printDiffs(w io.Writer, res *generator.GenerateResult, outDir string) error {
	for _, p := range res.Files {
		current, exists, err := readExisting(filepath.Join(outDir, filepath.FromSlash(p)))
		if err != nil {
			return err
		}
		diff, err := output.UnifiedDiff(p, current, res.Rendered[p], exists)
		if err != nil {
			return fmt.Errorf("diffing %s: %w", p, err)
		}
		if diff == "" {
			continue
		}
		fmt.Fprint(w, output.ColorizeDiff(diff))
	}
	return nil
}

func readExisting(path string) (string, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), true, nil
}
