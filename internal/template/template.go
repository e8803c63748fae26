// Package template picks the starter template for a challenge project and renders the marker note
// that records the choice.
package template

import (
	"bytes"
	"embed"
	"fmt"
	"math/rand/v2"
	"text/template"
)

var (
	//go:embed all:templates
	// File is the embedded filesystem containing the marker template
	File embed.FS

	marker = template.Must(template.ParseFS(File, "templates/"+MarkerFile+".tmpl"))
)

// MarkerFile is the note written into every scaffolded project
const MarkerFile = "TEMPLATE.md"

// variants is the fixed, ordered set of create-vite templates a project can get
var variants = [...]string{
	"vanilla-ts",
	"vue-ts",
	"react-ts",
	"preact-ts",
	"lit-ts",
	"svelte-ts",
	"solid-ts",
	"qwik-ts",
}

// Selector returns the template to use for the next project
type Selector func() string

// Variants returns a copy of the template identifiers in their fixed order
func Variants() []string {
	out := make([]string, len(variants))
	copy(out, variants[:])
	return out
}

// IsVariant reports whether name is one of the known templates
func IsVariant(name string) bool {
	for _, v := range variants {
		if v == name {
			return true
		}
	}
	return false
}

// Pick returns one template uniformly at random
func Pick() string {
	return variants[rand.IntN(len(variants))]
}

// Fixed returns a Selector that always yields name
func Fixed(name string) Selector {
	return func() string { return name }
}

// RenderMarker renders the TEMPLATE.md body for the given template
func RenderMarker(name string) ([]byte, error) {
	var buf bytes.Buffer
	if err := marker.Execute(&buf, struct{ Template string }{Template: name}); err != nil {
		return nil, fmt.Errorf("render %s: %w", MarkerFile, err)
	}
	return buf.Bytes(), nil
}
