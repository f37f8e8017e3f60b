// Package ui loads declarative UI descriptions and materializes them
// through a widget factory.
//
// Descriptions are YAML or HCL. Both describe the same tree:
//
//	version: v1.0.0
//	widgets:
//	  - type: window
//	    name: main
//	    w: 320
//	    h: 240
//	    children:
//	      - {type: button, name: ok, text: OK, x: 10, y: 10, w: 80, h: 30}
//
// or
//
//	version = "v1.0.0"
//	widget "window" {
//	  name = "main"
//	  w    = 320
//	  h    = 240
//	  widget "button" {
//	    name = "ok"
//	    text = "OK"
//	    x = 10
//	    y = 10
//	    w = 80
//	    h = 30
//	  }
//	}
//
// Type names are resolved by the factory passed in Options, or by the
// active factory when none is given.
package ui

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/tk/pkg/errors"
)

// SupportedMajor is the description format major version this package reads.
const SupportedMajor = "v1"

// Document is a parsed UI description.
type Document struct {
	Version string  `yaml:"version,omitempty"`
	Widgets []*Node `yaml:"widgets" validate:"dive,required"`
}

// Node describes one widget and its subtree.
type Node struct {
	Type     string  `yaml:"type" validate:"required,max=64"`
	Name     string  `yaml:"name,omitempty" validate:"max=64"`
	Text     string  `yaml:"text,omitempty"`
	X        int16   `yaml:"x,omitempty"`
	Y        int16   `yaml:"y,omitempty"`
	W        uint16  `yaml:"w,omitempty"`
	H        uint16  `yaml:"h,omitempty"`
	Children []*Node `yaml:"children,omitempty" validate:"dive,required"`
}

// Count returns the number of nodes in the document.
func (d *Document) Count() int {
	n := 0
	var walk func([]*Node)
	walk = func(nodes []*Node) {
		for _, node := range nodes {
			n++
			walk(node.Children)
		}
	}
	walk(d.Widgets)
	return n
}

var validate = validator.New()

// Format is a UI description syntax.
type Format int

const (
	FormatYAML Format = iota
	FormatHCL
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return 0, errors.E("ui.FormatOf", "", fmt.Errorf("unsupported UI description extension %q: %w", filepath.Ext(path), errors.ErrBadParams))
	}
}

// LoadFile reads and parses a UI description, choosing the format from the
// file extension.
func LoadFile(path string) (*Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.TkError{Op: "ui.LoadFile", Kind: errors.KindInit, Err: err}
	}
	return Parse(path, data, format)
}

// Parse decodes src in the given format, then checks its version and
// validates every node. name labels diagnostics.
func Parse(name string, src []byte, format Format) (*Document, error) {
	var (
		doc *Document
		err error
	)
	switch format {
	case FormatHCL:
		doc, err = parseHCL(name, src)
	default:
		doc, err = parseYAML(src)
	}
	if err != nil {
		return nil, &errors.TkError{Op: "ui.Parse", Kind: errors.KindParsing, Err: fmt.Errorf("%s: %w", name, err)}
	}
	if err := CheckVersion(doc.Version); err != nil {
		return nil, &errors.TkError{Op: "ui.Parse", Kind: errors.KindParsing, Err: fmt.Errorf("%s: %w", name, err)}
	}
	if err := validate.Struct(doc); err != nil {
		return nil, &errors.TkError{Op: "ui.Parse", Kind: errors.KindParsing, Err: fmt.Errorf("%s: %w", name, err)}
	}
	return doc, nil
}

func parseYAML(src []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &doc, nil
}

// CheckVersion accepts an empty version or any semantic version with
// major SupportedMajor. The leading "v" is optional.
func CheckVersion(v string) error {
	if v == "" {
		return nil
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid description version %q", v)
	}
	if major := semver.Major(v); major != SupportedMajor {
		return fmt.Errorf("description version %s not supported (want %s.x)", v, SupportedMajor)
	}
	return nil
}
