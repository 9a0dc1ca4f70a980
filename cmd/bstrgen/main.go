// Copyright (c) MaulingMonkey.
// Licensed under the MIT License.

// Command bstrgen generates static BSTR literals for use with package winstr.
//
// Each literal becomes a [...]uint32 array laid out exactly like a BSTR allocation,
// bound to a *winstr.BStr through winstr.FromStatic. Encoding happens here, at generate time,
// so malformed literal text never reaches a running program.
//
//	//go:generate go run github.com/MaulingMonkey/winstr/cmd/bstrgen -o strings_bstr.go Greeting=Hello
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	pkgName    string
	outputPath string
	inputPath  string
)

var rootCmd = &cobra.Command{
	Use:   "bstrgen [Name=text ...]",
	Short: "Generate static BSTR literals for package winstr",
	RunE: func(cmd *cobra.Command, args []string) error {
		lits, err := collect(inputPath, args)
		if err != nil {
			return err
		}
		if len(lits) == 0 {
			return fmt.Errorf("no literals given")
		}

		pkg := pkgName
		if pkg == "" {
			pkg = os.Getenv("GOPACKAGE")
		}
		if pkg == "" {
			return fmt.Errorf("no package name: pass --package or run under go generate")
		}

		f, err := Generate(pkg, lits)
		if err != nil {
			return err
		}

		if outputPath == "" || outputPath == "-" {
			return f.Render(cmd.OutOrStdout())
		}
		if err := f.Save(outputPath); err != nil {
			return fmt.Errorf("failed to write %s: %w", outputPath, err)
		}
		cmd.PrintErrf("bstrgen: wrote %d literals to %s\n", len(lits), outputPath)
		return nil
	},
}

// collect merges the literals of the YAML file at path (if any) with Name=text arguments.
func collect(path string, args []string) ([]Literal, error) {
	var lits []Literal
	seen := make(map[string]struct{})
	add := func(name, text string) error {
		if _, ok := seen[name]; ok {
			return fmt.Errorf("literal %s is defined more than once", name)
		}
		seen[name] = struct{}{}
		lits = append(lits, Literal{Name: name, Text: text})
		return nil
	}

	if path != "" {
		fromFile, err := readInput(path)
		if err != nil {
			return nil, err
		}
		for name, text := range fromFile {
			if err := add(name, text); err != nil {
				return nil, err
			}
		}
	}

	for _, arg := range args {
		name, text, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("argument %q is not of the form Name=text", arg)
		}
		if err := add(name, text); err != nil {
			return nil, err
		}
	}

	return lits, nil
}

func readInput(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func(file *os.File) {
		_ = file.Close()
	}(file)
	return parseInput(file)
}

// parseInput reads a YAML mapping of literal names to literal text.
func parseInput(r io.Reader) (map[string]string, error) {
	var out map[string]string
	if err := yaml.NewDecoder(r).Decode(&out); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse literal file: %w", err)
	}
	return out, nil
}

func init() {
	rootCmd.Flags().StringVarP(&pkgName, "package", "p", "", "Package name of the generated file (default $GOPACKAGE)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default stdout)")
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "YAML file mapping literal names to text")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
