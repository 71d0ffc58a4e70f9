package catalog

import (
	"strings"
	"testing"
)

func TestParseFrontMatterExtractsMetadata(t *testing.T) {
	source := []byte(`---
name: go
title: Go
description: Baseline conventions.
tags: [go, backend]
---

# Go

Body content.
`)

	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if meta.Name != "go" {
		t.Fatalf("expected name go, got %q", meta.Name)
	}
	if meta.Title != "Go" {
		t.Fatalf("expected title Go, got %q", meta.Title)
	}
	if meta.Description != "Baseline conventions." {
		t.Fatalf("unexpected description %q", meta.Description)
	}
	if len(meta.Tags) != 2 || meta.Tags[0] != "go" || meta.Tags[1] != "backend" {
		t.Fatalf("unexpected tags %#v", meta.Tags)
	}
	if strings.Contains(string(body), "---") {
		t.Fatalf("expected delimiters stripped from body, got %q", body)
	}
	if !strings.Contains(string(body), "Body content.") {
		t.Fatalf("expected body retained, got %q", body)
	}
}

func TestParseFrontMatterWithoutBlock(t *testing.T) {
	source := []byte("# Plain\n\nNo metadata at all.\n")

	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if meta.Name != "" || meta.Title != "" || len(meta.Tags) != 0 {
		t.Fatalf("expected zero metadata, got %#v", meta)
	}
	if string(body) != string(source) {
		t.Fatalf("expected body unchanged, got %q", body)
	}
}

func TestParseFrontMatterRejectsMalformedYAML(t *testing.T) {
	source := []byte("---\nname: [unclosed\n---\n\nbody\n")

	if _, _, err := ParseFrontMatter(source); err == nil {
		t.Fatal("expected error for malformed frontmatter")
	}
}
