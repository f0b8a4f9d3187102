package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"mirgo/internal/config"
	"mirgo/internal/pathfix"
	"mirgo/internal/resource"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pathfix: %v\n", err)
		os.Exit(2)
	}
	os.Exit(run(os.Args[1:], cfg, os.Stdout, os.Stderr))
}

// run scans every scene named in args. It returns 0 when nothing is
// missing, 1 when some scene has missing resources and 2 on errors.
func run(args []string, cfg config.Config, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pathfix", flag.ContinueOnError)
	fs.SetOutput(stderr)
	suggest := fs.Bool("suggest", false, "suggest existing files that could replace missing ones")
	all := fs.Bool("all", false, "list every resource, not only missing ones")
	limit := fs.Int("n", cfg.PathFix.MaxSuggestions, "maximum suggestions per missing resource")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: pathfix [-suggest] [-all] [-n N] scene...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	code := 0
	for _, path := range fs.Args() {
		result, err := pathfix.Scan(path)
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", missingStyle.Render(fmt.Sprintf("Failed to load a scene %s: %v", path, err)))
			code = 2
			continue
		}
		report(stdout, path, result, *all)
		if len(result.Missing) > 0 {
			if code == 0 {
				code = 1
			}
			if *suggest {
				suggestions(stdout, result.Missing, cfg.PathFix.SearchRoots, *limit)
			}
		}
	}
	return code
}

func report(w io.Writer, path string, result *pathfix.Result, all bool) {
	fmt.Fprintln(w, titleStyle.Render("Scene: "+path))
	fmt.Fprintf(w, "  %d resources, %d missing\n", len(result.Resources), len(result.Missing))

	missing := make(map[resource.Key]bool, len(result.Missing))
	for _, r := range result.Missing {
		missing[r.Key()] = true
	}
	for _, r := range result.Resources {
		switch {
		case missing[r.Key()]:
			fmt.Fprintf(w, "  %s %s\n", missingStyle.Render("missing"), r.Path())
		case all:
			fmt.Fprintf(w, "  %s %s\n", okStyle.Render("ok     "), r.Path())
		}
	}
}

func suggestions(w io.Writer, missing []resource.SceneResource, roots []string, limit int) {
	for _, r := range missing {
		candidates := resource.Suggest(r.Path(), r.Kind(), roots, limit)
		if len(candidates) == 0 {
			fmt.Fprintf(w, "  %s\n", hintStyle.Render("no candidates for "+r.Path()))
			continue
		}
		fmt.Fprintf(w, "  %s\n", hintStyle.Render("candidates for "+r.Path()+":"))
		for _, c := range candidates {
			fmt.Fprintf(w, "    %s (distance %d)\n", c.Path, c.Distance)
		}
	}
}
