// Copyright (c) MaulingMonkey.
// Licensed under the MIT License.

package main

import (
	"fmt"
	"go/token"
	"slices"
	"strings"
	"unicode/utf16"

	"github.com/MaulingMonkey/winstr/literal"
	"github.com/dave/jennifer/jen"
)

const winstrPkg = "github.com/MaulingMonkey/winstr"

// Literal is one named BSTR literal to generate. Text uses the literal escape syntax.
type Literal struct {
	Name string
	Text string
}

func wordsName(name string) string {
	return strings.ToLower(name[:1]) + name[1:] + "Words"
}

// checkNames validates identifiers and makes sure no generated name collides with another.
func checkNames(lits []Literal) error {
	seen := make(map[string]string, 2*len(lits))
	for _, lit := range lits {
		if !token.IsIdentifier(lit.Name) || lit.Name == "_" {
			return fmt.Errorf("%q is not a valid Go identifier", lit.Name)
		}
		for _, id := range []string{lit.Name, wordsName(lit.Name)} {
			if prev, ok := seen[id]; ok {
				return fmt.Errorf("literal %s: name %s is already used by literal %s", lit.Name, id, prev)
			}
			seen[id] = lit.Name
		}
	}
	return nil
}

// Generate builds a Go file in package pkg declaring every literal as a static *winstr.BStr.
// Literals are emitted in name order so the output is stable.
func Generate(pkg string, lits []Literal) (*jen.File, error) {
	if !token.IsIdentifier(pkg) {
		return nil, fmt.Errorf("%q is not a valid package name", pkg)
	}
	if err := checkNames(lits); err != nil {
		return nil, err
	}

	lits = slices.Clone(lits)
	slices.SortFunc(lits, func(a, b Literal) int { return strings.Compare(a.Name, b.Name) })

	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by bstrgen. DO NOT EDIT.")

	for _, lit := range lits {
		units, err := literal.Decode(lit.Text)
		if err != nil {
			return nil, fmt.Errorf("literal %s: %w", lit.Name, err)
		}
		words, err := literal.Pack(units)
		if err != nil {
			return nil, fmt.Errorf("literal %s: %w", lit.Name, err)
		}

		values := make([]jen.Code, len(words))
		for i, w := range words {
			values[i] = jen.Id(fmt.Sprintf("0x%08x", w))
		}

		data := wordsName(lit.Name)
		f.Var().Id(data).Op("=").Index(jen.Op("...")).Uint32().Values(values...)
		f.Commentf("%s is the BSTR literal %q.", lit.Name, string(utf16.Decode(units)))
		f.Var().Id(lit.Name).Op("=").Qual(winstrPkg, "FromStatic").Call(jen.Id(data).Index(jen.Empty(), jen.Empty()))
		f.Line()
	}

	return f, nil
}
