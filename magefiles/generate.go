//go:build mage

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	promptGlob = "prompts/*.txt"
	outputDir  = "outputs"
)

// Generate runs the generator once per prompt template in prompts/, writing
// outputs/output_<version>.txt for prompts/prompt_<version>.txt. Failures
// for one prompt do not stop the others.
func Generate() error {
	mg.Deps(Build, Init)

	prompts, err := filepath.Glob(promptGlob)
	if err != nil {
		return err
	}
	if len(prompts) == 0 {
		fmt.Printf("[generate] No prompt templates match %s.\n", promptGlob)
		return nil
	}

	for _, prompt := range prompts {
		out := outputFor(prompt)
		fmt.Printf("[generate] %s -> %s\n", prompt, out)
		if err := sh.RunV(binPath, "generate", "--prompt", prompt, "--output", out); err != nil {
			fmt.Printf("[generate] %s: %v\n", prompt, err)
		}
	}
	return nil
}

// outputFor maps prompts/prompt_v1.txt to outputs/output_v1.txt. Templates
// without the prompt_ prefix keep their base name.
func outputFor(prompt string) string {
	base := filepath.Base(prompt)
	if v, ok := strings.CutPrefix(base, "prompt_"); ok {
		base = "output_" + v
	}
	return filepath.Join(outputDir, base)
}
