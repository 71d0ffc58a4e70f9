package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-instructions/cmd/instructions/internal/bootstrap"
	"github.com/goliatone/go-instructions/pkg/interfaces"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	var (
		catalogDir = flag.String("catalog-dir", "instructions", "Path to the instruction module catalog root")
		pattern    = flag.String("pattern", "*.md", "Glob pattern applied when discovering module files")
		embedded   = flag.Bool("embedded", true, "Include the embedded starter modules")
		moduleRef  = flag.String("module", "", "Module reference to preview (category/name)")
		renderHTML = flag.Bool("render-html", true, "Render the module body into HTML as part of the preview")
		safeMode   = flag.Bool("safe", false, "Escape raw HTML during rendering")
	)

	flag.Parse()

	if *moduleRef == "" {
		log.Fatalf("--module is required")
	}

	ref, err := interfaces.ParseModuleRef(*moduleRef)
	if err != nil {
		log.Fatalf("parse module reference: %v", err)
	}

	module, err := moduleBuilder(bootstrap.Options{
		CatalogDir:      *catalogDir,
		Pattern:         *pattern,
		Recursive:       true,
		IncludeEmbedded: *embedded,
	})
	if err != nil {
		log.Fatalf("bootstrap module: %v", err)
	}

	ctx := context.Background()

	doc, err := module.Module.Catalog().Resolve(ctx, ref)
	if err != nil {
		log.Fatalf("resolve module: %v", err)
	}

	fmt.Fprintf(os.Stdout, "Ref: %s\nTitle: %s\nSource: %s\nChecksum: %x\n\n", doc.Ref(), doc.Title, doc.Source, doc.Checksum)

	if !*renderHTML {
		fmt.Fprintf(os.Stdout, "Markdown Body:\n%s\n", string(doc.Body))
		return
	}

	html, err := module.Module.Renderer().RenderWithOptions(doc.Body, interfaces.RenderOptions{SafeMode: *safeMode})
	if err != nil {
		log.Fatalf("render module: %v", err)
	}
	fmt.Fprintf(os.Stdout, "Rendered HTML:\n%s\n", string(html))
}
