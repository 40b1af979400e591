//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Analyze prints section and readability statistics for every generated
// note in outputs/.
func Analyze() error {
	mg.Deps(Build)

	notes, err := filepath.Glob(filepath.Join(outputDir, "*.txt"))
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		fmt.Printf("[analyze] No notes in %s/.\n", outputDir)
		return nil
	}
	for _, note := range notes {
		if err := sh.RunV(binPath, "analyze", note); err != nil {
			return fmt.Errorf("analyzing %s: %w", note, err)
		}
	}
	return nil
}

// Pipeline generates a note for every prompt and then analyzes the results.
func Pipeline() {
	mg.SerialDeps(Generate, Analyze)
}
