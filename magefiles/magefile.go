//go:build mage

// Package main provides build targets for the quantikind project using Mage.
//
// Usage:
//
//	mage build          Compile the quantikind binary to bin/
//	mage test:all       Run all tests
//	mage test:unit      Run tests without the race detector or cache busting
//	mage test:race      Run all tests with the race detector
//	mage test:cover     Run all tests and write coverage.out
//	mage generate       Regenerate typed kinds from catalogs/
//	mage generateCheck  Fail when a generated file is out of date
//	mage lint           Run golangci-lint
//	mage clean          Remove build artifacts
//	mage install        Install quantikind to GOPATH/bin
//	mage stats          Print Go LOC and catalog kind counts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "quantikind"
	binaryDir  = "bin"
	cmdDir     = "./cmd/quantikind"
	versionVar = "github.com/mesh-intelligence/quantikind/internal/cli.Version"
)

// Build compiles the quantikind binary to bin/. QUANTIKIND_VERSION, when
// set, is stamped into the binary.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	args := []string{"build", "-v", "-o", filepath.Join(binaryDir, binaryName)}
	if v := os.Getenv("QUANTIKIND_VERSION"); v != "" {
		args = append(args, "-ldflags", "-X "+versionVar+"="+v)
	}
	return sh.RunV(binGo, append(args, cmdDir)...)
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	if err := os.Remove("coverage.out"); err != nil && !os.IsNotExist(err) {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}
