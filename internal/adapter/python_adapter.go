package adapter

import (
	"bytes"
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// PythonAdapter encapsulates Python parsing so the domain layer only deals
// with syntax trees and never with lexer or grammar details.
type PythonAdapter interface {
	// Parse builds the module syntax tree for one source file. The caller
	// closes the returned tree.
	Parse(filename string, src []byte) (*sitter.Tree, error)
}

// SyntaxError locates the first invalid construct of a source file.
type SyntaxError struct {
	Filename string
	Line     int
	Column   int
	Detail   string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at %s:%d:%d", e.Detail, e.Filename, e.Line, e.Column)
}

// legacyStatements are Python 2 forms the grammar still accepts.
var legacyStatements = map[string]string{
	"print_statement": "print",
	"exec_statement":  "exec",
}

// LocalPythonAdapter provides a concrete PythonAdapter backed by the
// tree-sitter Python grammar.
type LocalPythonAdapter struct {
	language *sitter.Language
}

// NewLocalPythonAdapter constructs a LocalPythonAdapter.
func NewLocalPythonAdapter() *LocalPythonAdapter {
	return &LocalPythonAdapter{language: python.GetLanguage()}
}

// Parse builds a syntax tree for the provided filename/source pair. The
// grammar recovers from errors, so any error or missing node in the tree is
// reported as a *SyntaxError and no tree is returned.
func (a *LocalPythonAdapter) Parse(filename string, src []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(a.language)

	tree, err := parser.ParseCtx(context.Background(), nil, normalizeSource(src))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	if synErr := findSyntaxError(filename, tree.RootNode()); synErr != nil {
		tree.Close()
		return nil, synErr
	}

	return tree, nil
}

// findSyntaxError returns the first invalid node in source order.
func findSyntaxError(filename string, root *sitter.Node) *SyntaxError {
	stack := []*sitter.Node{root}

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch {
		case node.IsMissing():
			return newSyntaxError(filename, node, fmt.Sprintf("missing %q", node.Type()))
		case node.IsError():
			return newSyntaxError(filename, node, "invalid syntax")
		}

		if keyword, ok := legacyStatements[node.Type()]; ok {
			return newSyntaxError(filename, node, fmt.Sprintf("Python 2 %s statement", keyword))
		}

		for i := int(node.ChildCount()) - 1; i >= 0; i-- {
			if child := node.Child(i); child != nil {
				stack = append(stack, child)
			}
		}
	}

	if root.HasError() {
		return newSyntaxError(filename, root, "invalid syntax")
	}

	return nil
}

func newSyntaxError(filename string, node *sitter.Node, detail string) *SyntaxError {
	start := node.StartPoint()

	return &SyntaxError{
		Filename: filename,
		Line:     int(start.Row) + 1,
		Column:   int(start.Column) + 1,
		Detail:   detail,
	}
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// normalizeSource strips a UTF-8 BOM, converts CRLF/CR line endings to LF and
// guarantees a trailing newline.
func normalizeSource(src []byte) []byte {
	out := bytes.TrimPrefix(src, utf8BOM)
	out = bytes.ReplaceAll(out, []byte("\r\n"), []byte("\n"))
	out = bytes.ReplaceAll(out, []byte("\r"), []byte("\n"))

	if len(out) == 0 || out[len(out)-1] != '\n' {
		out = append(append([]byte{}, out...), '\n')
	}

	return out
}
