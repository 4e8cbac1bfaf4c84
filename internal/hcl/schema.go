package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is the top level of a settings file. Every block is optional and
// may appear at most once.
type fileRoot struct {
	Paths  *pathsBlock  `hcl:"paths,block"`
	Filter *filterBlock `hcl:"filter,block"`
	Output *outputBlock `hcl:"output,block"`
}

type pathsBlock struct {
	Catalog   *string `hcl:"catalog,optional"`
	Hardware  *string `hcl:"hardware,optional"`
	Types     *string `hcl:"types,optional"`
	Variables *string `hcl:"variables,optional"`
	IOMap     *string `hcl:"iomap,optional"`
}

type filterBlock struct {
	Family *string `hcl:"family,optional"`
	// Exclude is kept as an expression so an explicit empty list can be told
	// apart from an absent attribute.
	Exclude hcl.Expression `hcl:"exclude,optional"`
}

type outputBlock struct {
	LineEnding *string `hcl:"line_ending,optional"`
}
