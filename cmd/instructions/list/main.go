package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/goliatone/go-instructions/cmd/instructions/internal/bootstrap"
	"github.com/goliatone/go-instructions/pkg/interfaces"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runList(os.Args[1:]); err != nil {
		log.Fatalf("instructions list: %v", err)
	}
}

func runList(args []string) error {
	fs := flag.NewFlagSet("instructions-list", flag.ExitOnError)
	catalogDir := fs.String("catalog-dir", "instructions", "Path to the instruction module catalog root")
	pattern := fs.String("pattern", "*.md", "Glob pattern applied when discovering module files")
	embedded := fs.Bool("embedded", true, "Include the embedded starter modules")
	category := fs.String("category", "", "Limit results to a single category")
	tags := fs.String("tags", "", "Comma separated tags every listed module must carry")
	logLevel := fs.String("log-level", "", "Log level (empty disables logging)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		CatalogDir:      *catalogDir,
		Pattern:         *pattern,
		Recursive:       true,
		IncludeEmbedded: *embedded,
		LogLevel:        *logLevel,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	opts := interfaces.ListOptions{
		Tags: bootstrap.SplitList(*tags),
	}
	if *category != "" {
		parsed, err := interfaces.ParseCategory(*category)
		if err != nil {
			return err
		}
		opts.Category = parsed
	}

	modules, err := module.Module.Catalog().List(context.Background(), opts)
	if err != nil {
		return fmt.Errorf("list modules: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "REF\tTITLE\tTAGS\tSOURCE")
	for _, m := range modules {
		source := m.Source
		if m.Embedded {
			source = "embedded:" + source
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.Ref(), m.Title, strings.Join(m.Tags, ","), source)
	}
	return w.Flush()
}
