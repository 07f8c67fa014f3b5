//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binaryName = "jtrack"

// Default target - build the binary
var Default = Build

// Build compiles the jtrack binary into ./bin with version metadata.
func Build() error {
	if err := os.MkdirAll("bin", 0o755); err != nil {
		return fmt.Errorf("creating bin directory: %w", err)
	}
	out := filepath.Join("bin", binaryName)
	if runtime.GOOS == "windows" {
		out += ".exe"
	}
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", out, "./cmd/jtrack")
}

// Install installs the jtrack binary into GOPATH/bin.
func Install() error {
	return sh.RunV("go", "install", "-ldflags", ldflags(), "./cmd/jtrack")
}

// Test runs all tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Lint runs go vet and checks gofmt compliance.
func Lint() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return err
	}
	dirty, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return fmt.Errorf("running gofmt: %w", err)
	}
	if dirty != "" {
		return fmt.Errorf("gofmt needed on:\n%s", dirty)
	}
	return nil
}

// QA runs lint and tests.
func QA() error {
	mg.SerialDeps(Lint, Test)
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm("bin")
}

func ldflags() string {
	version := gitDescribe()
	commit := gitCommit()
	date := time.Now().UTC().Format(time.RFC3339)
	return strings.Join([]string{
		"-X github.com/jtrack/jtrack/internal/version.Version=" + version,
		"-X github.com/jtrack/jtrack/internal/version.CommitHash=" + commit,
		"-X github.com/jtrack/jtrack/internal/version.BuildDate=" + date,
	}, " ")
}

func gitDescribe() string {
	if v, err := sh.Output("git", "describe", "--tags", "--always", "--dirty"); err == nil && v != "" {
		return v
	}
	return "dev"
}

func gitCommit() string {
	if c, err := sh.Output("git", "rev-parse", "--short", "HEAD"); err == nil && c != "" {
		return c
	}
	return "unknown"
}
