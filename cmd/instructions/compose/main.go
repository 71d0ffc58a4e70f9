package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-instructions/cmd/instructions/internal/bootstrap"
	composecmd "github.com/goliatone/go-instructions/internal/commands/compose"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runCompose(os.Args[1:]); err != nil {
		log.Fatalf("instructions compose: %v", err)
	}
}

func runCompose(args []string) error {
	fs := flag.NewFlagSet("instructions-compose", flag.ExitOnError)
	catalogDir := fs.String("catalog-dir", "instructions", "Path to the instruction module catalog root")
	pattern := fs.String("pattern", "*.md", "Glob pattern applied when discovering module files")
	embedded := fs.Bool("embedded", true, "Include the embedded starter modules")
	manifest := fs.String("manifest", "instructions.yaml", "Path to the profile manifest")
	profile := fs.String("profile", "", "Profile to compose")
	output := fs.String("out", "", "File to write the composed document to (defaults to stdout)")
	separator := fs.String("separator", "", "Separator override inserted between modules")
	logLevel := fs.String("log-level", "", "Log level (empty disables logging)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *profile == "" {
		return fmt.Errorf("--profile is required")
	}

	separatorSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "separator" {
			separatorSet = true
		}
	})

	module, err := moduleBuilder(bootstrap.Options{
		CatalogDir:      *catalogDir,
		Pattern:         *pattern,
		Recursive:       true,
		IncludeEmbedded: *embedded,
		ManifestPath:    *manifest,
		LogLevel:        *logLevel,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	if module == nil || module.Module.Profiles() == nil {
		return fmt.Errorf("profile manifest not configured; pass --manifest")
	}

	ctx := context.Background()

	if *output != "" {
		handler := composecmd.NewComposeProfileHandler(module.Module.Composer(), module.Module.Profiles(), module.Logger)
		cmd := composecmd.ComposeProfileCommand{
			Profile:      *profile,
			OutputPath:   *output,
			Separator:    *separator,
			SeparatorSet: separatorSet,
		}
		if err := handler.Execute(ctx, cmd); err != nil {
			return fmt.Errorf("execute compose command: %w", err)
		}
		fmt.Fprintf(os.Stdout, "composed profile %q into %s\n", *profile, *output)
		return nil
	}

	selected, err := module.Module.Profiles().Profile(*profile)
	if err != nil {
		return err
	}
	req := selected.Request()
	if separatorSet {
		req = req.WithSeparator(*separator)
	}
	doc, err := module.Module.Composer().Compose(ctx, req)
	if err != nil {
		return fmt.Errorf("compose profile: %w", err)
	}

	if _, err := os.Stdout.Write(doc.Content); err != nil {
		return err
	}
	return nil
}
