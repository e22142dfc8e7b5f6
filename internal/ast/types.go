package ast

type NodeType int

// regenerate nodetype_string.go with `go generate ./internal/ast`
//
//go:generate stringer -type=NodeType
const (
	// Special / error
	ILLEGAL NodeType = iota

	// Names
	IDENT
	PATH

	// Opaque modifier argument
	RAW_ARG

	// Closed keyword sets
	STORAGE
	VISIBILITY
	MUTABILITY

	// Parameterized attributes
	OVERRIDE
	MODIFIER
)
