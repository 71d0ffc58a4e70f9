package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/goliatone/go-instructions/cmd/instructions/internal/bootstrap"
	composecmd "github.com/goliatone/go-instructions/internal/commands/compose"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runSync(os.Args[1:]); err != nil {
		log.Fatalf("instructions sync: %v", err)
	}
}

func runSync(args []string) error {
	fs := flag.NewFlagSet("instructions-sync", flag.ExitOnError)
	catalogDir := fs.String("catalog-dir", "instructions", "Path to the instruction module catalog root")
	pattern := fs.String("pattern", "*.md", "Glob pattern applied when discovering module files")
	embedded := fs.Bool("embedded", true, "Include the embedded starter modules")
	manifest := fs.String("manifest", "instructions.yaml", "Path to the profile manifest")
	outputRoot := fs.String("output", ".", "Directory target paths resolve against")
	profiles := fs.String("profiles", "", "Comma separated profiles to sync (defaults to all)")
	force := fs.Bool("force", false, "Rewrite outputs even when checksums match the previous run")
	dryRun := fs.Bool("dry-run", false, "Report planned writes without touching the filesystem")
	watch := fs.Bool("watch", false, "Keep running and re-sync when catalog files change")
	logLevel := fs.String("log-level", "", "Log level (empty disables logging)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		CatalogDir:      *catalogDir,
		Pattern:         *pattern,
		Recursive:       true,
		IncludeEmbedded: *embedded,
		ManifestPath:    *manifest,
		OutputRoot:      *outputRoot,
		EnableSync:      true,
		EnableWatch:     *watch,
		LogLevel:        *logLevel,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	if module == nil || module.Module.Sync() == nil {
		return fmt.Errorf("sync service not configured; ensure the manifest exists")
	}

	ctx := context.Background()

	handler := composecmd.NewSyncTargetsHandler(module.Module.Sync(), module.Logger, composecmd.FeatureGates{})
	cmd := composecmd.SyncTargetsCommand{
		Profiles: bootstrap.SplitList(*profiles),
		Force:    *force,
		DryRun:   *dryRun,
	}
	if err := handler.Execute(ctx, cmd); err != nil {
		return fmt.Errorf("execute sync command: %w", err)
	}
	fmt.Fprintln(os.Stdout, "sync command executed successfully")

	if !*watch {
		return nil
	}

	return runWatch(ctx, module)
}

func runWatch(ctx context.Context, module *bootstrap.Module) error {
	watcher, err := module.Module.NewWatcher()
	if err != nil {
		return fmt.Errorf("build watcher: %w", err)
	}
	if err := watcher.Start(ctx); err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Stop()

	fmt.Fprintln(os.Stdout, "watching for catalog changes; press Ctrl-C to stop")

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	<-signals

	return nil
}
