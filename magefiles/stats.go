//go:build mage

package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mesh-intelligence/quantikind/internal/catalog"
)

// Stats prints Go lines of code and the number of kinds per catalog.
func Stats() error {
	var prodLines, testLines, genLines int

	err := filepath.Walk(".", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			switch path {
			case "vendor", ".git", binaryDir, "magefiles", "_examples":
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}
		count, generatedFile, countErr := countLines(path)
		if countErr != nil {
			return nil
		}
		switch {
		case generatedFile:
			genLines += count
		case strings.HasSuffix(path, "_test.go"):
			testLines += count
		default:
			prodLines += count
		}
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	fmt.Printf("Lines of code (Go, generated):  %d\n", genLines)
	fmt.Printf("Lines of code (Go, total):      %d\n", prodLines+testLines+genLines)

	catalogs, err := filepath.Glob("catalogs/*.yaml")
	if err != nil {
		return err
	}
	for _, path := range catalogs {
		c, err := catalog.Load(path)
		if err != nil {
			return err
		}
		fmt.Printf("Kinds (%s): %d\n", path, len(c.Kinds))
	}
	return nil
}

// countLines counts the lines of path and reports whether it carries the
// generated-code marker.
func countLines(path string) (int, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, false, err
	}
	defer f.Close()

	count := 0
	generated := false
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if count == 0 && strings.HasPrefix(scanner.Text(), "// Code generated") {
			generated = true
		}
		count++
	}
	return count, generated, scanner.Err()
}
