//go:build mage

// Package main provides build targets for the aacboard project using Mage.
//
// Usage:
//
//	mage build          Compile aacboard binary to bin/
//	mage test           Run all tests
//	mage lint           Run golangci-lint
//	mage clean          Remove build artifacts
//	mage install        Install aacboard to GOPATH/bin
//	mage demo           Build, then load and walk the sample board
//	mage stats          Print Go lines of code
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binLint    = "golangci-lint"
	binaryName = "aacboard"
	binaryDir  = "bin"
	cmdDir     = "./cmd/aacboard"
	demoDir    = "bin/demo"
)

// sampleBoard is the board loaded by the Demo target.
const sampleBoard = `img/food/plate.png food
>img/food/icons8-french-fries-96.png french fries
>img/food/icons8-watermelon-96.png watermelon
img/clothing/hanger.png clothing
>img/clothing/collaredshirt.png collared shirt
`

// Build compiles the aacboard binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV(binLint, "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
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

// Demo imports the sample board into a scratch data directory and selects
// a category and an item from it.
func Demo() error {
	mg.Deps(Build)
	if err := os.RemoveAll(demoDir); err != nil {
		return err
	}
	if err := os.MkdirAll(demoDir, 0o755); err != nil {
		return err
	}
	boardPath := filepath.Join(demoDir, "sample.txt")
	if err := os.WriteFile(boardPath, []byte(sampleBoard), 0o644); err != nil {
		return err
	}

	bin := filepath.Join(binaryDir, binaryName)
	dirs := []string{"--config-dir", filepath.Join(demoDir, "config"), "--data-dir", filepath.Join(demoDir, "data")}
	steps := [][]string{
		{"init"},
		{"import", boardPath},
		{"list"},
		{"select", "img/food/plate.png", "img/food/icons8-french-fries-96.png"},
	}
	for _, step := range steps {
		if err := sh.RunV(bin, append(dirs, step...)...); err != nil {
			return err
		}
	}
	return nil
}

// Stats prints Go lines of code.
func Stats() error {
	var prodLines, testLines int

	err := filepath.Walk(".", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path == "vendor" || path == ".git" || path == binaryDir || strings.HasPrefix(path, "_") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasPrefix(path, "magefiles") {
			return nil
		}
		count, countErr := countLines(path)
		if countErr != nil {
			return nil
		}
		if strings.HasSuffix(path, "_test.go") {
			testLines += count
		} else {
			prodLines += count
		}
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	fmt.Printf("Lines of code (Go, total):      %d\n", prodLines+testLines)
	return nil
}

func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		count++
	}
	return count, scanner.Err()
}
