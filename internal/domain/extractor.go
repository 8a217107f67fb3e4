package domain

import (
	"github.com/mouse-blink/twins/internal/adapter"
	m "github.com/mouse-blink/twins/internal/model"
	sitter "github.com/smacker/go-tree-sitter"
)

// Extractor turns a submission's source into its structural token sequence.
type Extractor interface {
	Extract(submission *m.Submission) (m.TokenSequence, error)
}

// nodeCategories maps the recognized syntax node kinds to their category.
// Node kinds missing from the table contribute nothing. An elif clause is a
// nested conditional; async definitions, loops and blocks share the kinds of
// their plain forms.
var nodeCategories = map[string]m.Category{
	"function_definition":  m.CategoryFunctionDef,
	"class_definition":     m.CategoryClassDef,
	"if_statement":         m.CategoryIf,
	"elif_clause":          m.CategoryIf,
	"for_statement":        m.CategoryFor,
	"while_statement":      m.CategoryWhile,
	"try_statement":        m.CategoryTry,
	"with_statement":       m.CategoryWith,
	"return_statement":     m.CategoryReturn,
	"assignment":           m.CategoryAssign,
	"expression_statement": m.CategoryExpr,
	"call":                 m.CategoryCall,
}

type extractor struct {
	parser adapter.PythonAdapter
}

// NewExtractor creates an Extractor backed by the given parser.
func NewExtractor(parser adapter.PythonAdapter) Extractor {
	return &extractor{parser: parser}
}

// Extract parses the submission and walks the whole tree once, depth first,
// parents before children and children in source order. Parse failures are
// returned as *ParseError.
func (e *extractor) Extract(submission *m.Submission) (m.TokenSequence, error) {
	tree, err := e.parser.Parse(string(submission.Origin), submission.Source)
	if err != nil {
		return nil, &ParseError{Key: submission.Key, Origin: submission.Origin, Err: err}
	}
	defer tree.Close()

	return walkTree(tree.RootNode()), nil
}

type visit struct {
	node   *sitter.Node
	parent string
}

func walkTree(root *sitter.Node) m.TokenSequence {
	tokens := m.TokenSequence{}
	stack := []visit{{node: root}}

	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		kind := v.node.Type()
		if category, ok := nodeCategories[kind]; ok && emits(v.node, kind, v.parent) {
			tokens = append(tokens, category)
		}

		for i := int(v.node.NamedChildCount()) - 1; i >= 0; i-- {
			if child := v.node.NamedChild(i); child != nil {
				stack = append(stack, visit{node: child, parent: kind})
			}
		}
	}

	return tokens
}

// emits filters grammar artifacts that are not statements of their own: the
// statement wrapper around an assignment, the inner links of a chained
// assignment and bare annotations without a value.
func emits(node *sitter.Node, kind, parent string) bool {
	switch kind {
	case "expression_statement":
		first := node.NamedChild(0)
		if first == nil {
			return true
		}

		switch first.Type() {
		case "assignment", "augmented_assignment":
			return false
		}
	case "assignment":
		return parent != "assignment" && node.ChildByFieldName("right") != nil
	}

	return true
}
