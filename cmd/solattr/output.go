package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"solattr/internal/ast"
)

// writeNodes prints one source's attributes in the given output format.
func writeNodes(w io.Writer, format string, nodes []ast.Node) error {
	switch format {
	case "text":
		_, err := fmt.Fprintln(w, render(nodes))
		return err
	case "debug":
		for _, n := range nodes {
			if _, err := fmt.Fprintln(w, n.Debug()); err != nil {
				return err
			}
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ast.Views(nodes)); err != nil {
			return err
		}
		return enc.Close()
	case "msgpack":
		return msgpack.NewEncoder(w).Encode(ast.Views(nodes))
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// render is the canonical form of an attribute list.
func render(nodes []ast.Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}
	return strings.Join(parts, " ")
}
