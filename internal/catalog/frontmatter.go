package catalog

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
)

// ModuleMeta carries the metadata a module may declare in its YAML
// frontmatter. Every field is optional; missing names fall back to the
// slugified file name.
type ModuleMeta struct {
	Name        string
	Title       string
	Description string
	Tags        []string
}

// ParseFrontMatter extracts metadata and the markdown body from the provided
// source bytes. Files without a frontmatter block yield a zero ModuleMeta and
// the source unchanged, so bare markdown modules remain valid.
func ParseFrontMatter(source []byte) (ModuleMeta, []byte, error) {
	var meta moduleMetaEnvelope

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &meta)
	if err != nil {
		return ModuleMeta{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return envelopeToMeta(meta), body, nil
}

type moduleMetaEnvelope struct {
	Name        string         `yaml:"name"`
	Title       string         `yaml:"title"`
	Description string         `yaml:"description"`
	Tags        []string       `yaml:"tags"`
	Custom      map[string]any `yaml:",inline"`
}

func envelopeToMeta(env moduleMetaEnvelope) ModuleMeta {
	return ModuleMeta{
		Name:        env.Name,
		Title:       env.Title,
		Description: env.Description,
		Tags:        append([]string(nil), env.Tags...),
	}
}
