//go:build mage

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/sh"
)

// generated maps each committed catalog to the Go file generated from it.
var generated = []struct {
	catalog string
	output  string
}{
	{"catalogs/geometry.yaml", "internal/geometry/geometry.go"},
}

// Generate regenerates the typed kind packages from their catalogs.
func Generate() error {
	for _, g := range generated {
		if err := generate(g.catalog, g.output); err != nil {
			return err
		}
	}
	return nil
}

// GenerateCheck fails when a committed generated file differs from what
// its catalog produces.
func GenerateCheck() error {
	tmp, err := os.MkdirTemp("", "quantikind-generate-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmp)

	var stale []string
	for _, g := range generated {
		out := filepath.Join(tmp, filepath.Base(g.output))
		if err := generate(g.catalog, out); err != nil {
			return err
		}
		want, err := os.ReadFile(out)
		if err != nil {
			return err
		}
		have, err := os.ReadFile(g.output)
		if err != nil {
			return err
		}
		if !bytes.Equal(want, have) {
			stale = append(stale, g.output)
		}
	}
	if len(stale) > 0 {
		return fmt.Errorf("generated files out of date, run mage generate: %v", stale)
	}
	return nil
}

func generate(catalog, output string) error {
	return sh.RunV(binGo, "run", cmdDir, "generate", catalog, "-o", output)
}
