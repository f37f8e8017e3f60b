package ui

import (
	"fmt"
	"math"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

type hclDocument struct {
	Version string     `hcl:"version,optional"`
	Widgets []*hclNode `hcl:"widget,block"`
}

type hclNode struct {
	Type     string     `hcl:"type,label"`
	Name     string     `hcl:"name,optional"`
	Text     string     `hcl:"text,optional"`
	X        int        `hcl:"x,optional"`
	Y        int        `hcl:"y,optional"`
	W        int        `hcl:"w,optional"`
	H        int        `hcl:"h,optional"`
	Children []*hclNode `hcl:"widget,block"`
}

func parseHCL(name string, src []byte) (*Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, name)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}

	var raw hclDocument
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	doc := &Document{Version: raw.Version}
	for _, n := range raw.Widgets {
		node, err := n.toNode()
		if err != nil {
			return nil, err
		}
		doc.Widgets = append(doc.Widgets, node)
	}
	return doc, nil
}

func (n *hclNode) toNode() (*Node, error) {
	if n.X < math.MinInt16 || n.X > math.MaxInt16 || n.Y < math.MinInt16 || n.Y > math.MaxInt16 {
		return nil, fmt.Errorf("widget %q: position (%d,%d) out of range", n.Type, n.X, n.Y)
	}
	if n.W < 0 || n.W > math.MaxUint16 || n.H < 0 || n.H > math.MaxUint16 {
		return nil, fmt.Errorf("widget %q: size %dx%d out of range", n.Type, n.W, n.H)
	}
	node := &Node{
		Type: n.Type,
		Name: n.Name,
		Text: n.Text,
		X:    int16(n.X),
		Y:    int16(n.Y),
		W:    uint16(n.W),
		H:    uint16(n.H),
	}
	for _, c := range n.Children {
		child, err := c.toNode()
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}
