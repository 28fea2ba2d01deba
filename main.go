// matugenium generates and manages per-application color profiles by
// driving matugen over each application's icon.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	flag "github.com/spf13/pflag"

	"matugenium/internal/config"
	"matugenium/internal/customapps"
	"matugenium/internal/match"
	"matugenium/internal/models"
	"matugenium/internal/profile"
	"matugenium/internal/registry"
	"matugenium/internal/state"
	"matugenium/internal/ui"
)

// Version info (set by ldflags)
var (
	version = "dev"
)

// Exit codes.
const (
	exitOK       = 0
	exitNoAction = 1
	exitGenerate = 2
	exitRemove   = 3
	exitBatch    = 4
)

// maxFailureLines caps the gen-all failure report unless --verbose.
const maxFailureLines = 5

func main() {
	os.Exit(run())
}

func run() int {
	var (
		genName   = flag.String("gen", "", "generate a color profile for the named application")
		ungenName = flag.String("ungen", "", "remove the color profile for the named application")
		genAll    = flag.Bool("gen-all", false, "generate profiles for every detected application")
		listApps  = flag.Bool("list-apps", false, "list detected applications")
		showName  = flag.String("show", "", "print the recorded palette for the named application")
		browse    = flag.Bool("browse", false, "browse applications and palettes interactively")

		exact       = flag.Bool("exact", false, "require an exact name match, no fuzzy fallback")
		force       = flag.Bool("force", false, "regenerate even when a profile already exists")
		dryRun      = flag.Bool("dry-run", false, "describe what would happen without changing anything")
		verbose     = flag.Bool("verbose", false, "print per-step progress")
		outputDir   = flag.String("output-dir", "", "root directory for generated profiles")
		end4Dir     = flag.String("end4-dir", "", "end-4 dotfiles root to mirror palettes into")
		image       = flag.String("image", "", "fallback image when an application icon cannot be resolved")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println("matugenium", version)
		return exitOK
	}

	actions := 0
	for _, set := range []bool{*genName != "", *ungenName != "", *genAll, *listApps, *showName != "", *browse} {
		if set {
			actions++
		}
	}
	if actions == 0 {
		flag.Usage()
		return exitNoAction
	}
	if actions > 1 {
		ui.Error("choose exactly one of --gen, --ungen, --gen-all, --list-apps, --show, --browse")
		return exitNoAction
	}

	cfg, err := config.Load("")
	if err != nil {
		ui.Error("config: %v", err)
		return exitNoAction
	}
	if *outputDir != "" {
		cfg.OutputRoot = *outputDir
	}
	if *end4Dir != "" {
		cfg.End4Dir = *end4Dir
	}
	if *image != "" {
		cfg.FallbackImage = *image
	}

	store := state.NewStore("")
	gen := profile.New(cfg, store)
	gen.DryRun = *dryRun
	gen.Runner = &profile.ExecRunner{Verbose: *verbose}
	if *verbose {
		gen.Logf = func(format string, args ...any) {
			fmt.Printf(format+"\n", args...)
		}
	}

	switch {
	case *listApps:
		return listApplications(store)
	case *genName != "":
		return generateOne(gen, *genName, *exact, *force)
	case *ungenName != "":
		return removeOne(gen, *ungenName, *exact)
	case *genAll:
		return generateAll(gen, *force, *verbose)
	case *showName != "":
		return showPalette(store, *showName)
	default:
		apps := discover()
		if err := ui.RunBrowse(gen, apps); err != nil {
			ui.Error("browse: %v", err)
			return exitNoAction
		}
		return exitOK
	}
}

// discover merges user-declared custom apps with platform discovery.
func discover() []models.AppEntry {
	reg := registry.New()
	reg.SetCustom(customapps.NewStore("").Entries())
	return reg.Discover()
}

// resolveApp matches name against the discovered applications. When
// discovery yields nothing at all, a synthetic entry built from the raw
// query stands in, so --gen with --image still works on systems without
// any discoverable applications.
func resolveApp(name string, apps []models.AppEntry, exact bool) (models.AppEntry, error) {
	if len(apps) == 0 {
		return models.AppEntry{DesktopID: name, Name: name}, nil
	}
	return match.Match(name, apps, exact)
}

func listApplications(store *state.Store) int {
	apps := discover()
	tracked := store.AllProfiles()

	for _, app := range apps {
		badge := ui.UntrackedBadge
		if _, ok := tracked[profile.Key(app)]; ok {
			badge = ui.TrackedBadge
		}
		fmt.Printf("%s %s (%s)\n", badge, app.Name, app.DesktopID)
	}
	ui.Info("%d applications, %d with profiles", len(apps), len(tracked))
	return exitOK
}

func generateOne(gen *profile.Generator, name string, exact, force bool) int {
	app, err := resolveApp(name, discover(), exact)
	if err != nil {
		ui.Error("%v", err)
		return exitGenerate
	}

	result, err := gen.Generate(app, force)
	if err != nil {
		ui.Error("generate %s: %v", app.Name, err)
		return exitGenerate
	}

	switch result.Outcome {
	case profile.OutcomeSkipped:
		ui.Warn("%s already has a profile at %s (use --force to regenerate)", app.Name, result.OutputDir)
	default:
		if gen.DryRun {
			ui.Info("would generate %s from %s into %s", app.Name, result.SourceImage, result.OutputDir)
			break
		}
		ui.Info("generated %s -> %s", app.Name, result.OutputDir)
		if result.MirrorPath != "" {
			ui.Info("mirrored palette to %s", result.MirrorPath)
		}
		if result.Diff != nil && !result.Diff.Identical {
			ui.Info("palette changed: +%d/-%d lines", result.Diff.LinesAdded, result.Diff.LinesRemoved)
		}
	}
	return exitOK
}

func removeOne(gen *profile.Generator, name string, exact bool) int {
	apps := discover()
	result, err := gen.Remove(name, apps, exact)
	if err != nil {
		if errors.Is(err, profile.ErrUnsafePath) {
			ui.Error("refusing removal: %v", err)
		} else {
			ui.Error("remove %s: %v", name, err)
		}
		return exitRemove
	}

	switch result.Outcome {
	case profile.OutcomeNotTracked:
		ui.Warn("no profile recorded for %q", name)
	default:
		if gen.DryRun {
			ui.Info("would remove profile %s (%s)", result.Key, result.OutputDir)
			break
		}
		ui.Info("removed profile %s", result.Key)
	}
	return exitOK
}

func generateAll(gen *profile.Generator, force, verbose bool) int {
	apps := discover()
	if len(apps) == 0 {
		ui.Warn("no applications detected")
		return exitOK
	}

	summary := gen.GenerateAll(apps, force)
	ui.Info("%d generated, %d skipped, %d failed (of %d)",
		summary.Succeeded, summary.Skipped, summary.Failed, summary.Total())

	if summary.Failed > 0 {
		shown := summary.Failures
		if !verbose && len(shown) > maxFailureLines {
			shown = shown[:maxFailureLines]
		}
		for _, line := range shown {
			ui.Error("%s", line)
		}
		if hidden := len(summary.Failures) - len(shown); hidden > 0 {
			ui.Warn("%d more failures hidden; rerun with --verbose", hidden)
		}
		return exitBatch
	}
	return exitOK
}

func showPalette(store *state.Store, name string) int {
	key := store.FindProfileKey(name)
	if key == "" {
		ui.Error("no profile recorded for %q", name)
		return exitNoAction
	}
	record := store.GetProfile(key)
	if record == nil {
		ui.Error("no profile recorded for %q", name)
		return exitNoAction
	}

	data, err := os.ReadFile(filepath.Join(record.OutputDir, "colors.json"))
	if err != nil {
		ui.Error("read palette for %s: %v", key, err)
		return exitNoAction
	}

	ui.Info("%s (%s)", record.Name, key)
	fmt.Println(ui.NewHighlighter().HighlightJSON(string(data)))
	return exitOK
}
