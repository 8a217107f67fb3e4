package model

import "strings"

// Category is a syntactic category recognized while walking a submission's syntax tree.
type Category string

const (
	// CategoryFunctionDef represents a function definition.
	CategoryFunctionDef Category = "FunctionDef"
	// CategoryClassDef represents a class definition.
	CategoryClassDef Category = "ClassDef"
	// CategoryIf represents a conditional.
	CategoryIf Category = "If"
	// CategoryFor represents a for-loop.
	CategoryFor Category = "For"
	// CategoryWhile represents a while-loop.
	CategoryWhile Category = "While"
	// CategoryTry represents an exception-handling block.
	CategoryTry Category = "Try"
	// CategoryWith represents a resource-scope block.
	CategoryWith Category = "With"
	// CategoryReturn represents a return statement.
	CategoryReturn Category = "Return"
	// CategoryAssign represents an assignment statement.
	CategoryAssign Category = "Assign"
	// CategoryExpr represents an expression statement.
	CategoryExpr Category = "Expr"
	// CategoryCall represents a call expression.
	CategoryCall Category = "Call"
)

// Categories lists every recognized category.
var Categories = []Category{
	CategoryFunctionDef,
	CategoryClassDef,
	CategoryIf,
	CategoryFor,
	CategoryWhile,
	CategoryTry,
	CategoryWith,
	CategoryReturn,
	CategoryAssign,
	CategoryExpr,
	CategoryCall,
}

// TokenSequence is the ordered list of categories emitted for one submission.
// Order is the traversal order of the syntax tree.
type TokenSequence []Category

func (ts TokenSequence) String() string {
	labels := make([]string, len(ts))
	for i, c := range ts {
		labels[i] = string(c)
	}

	return strings.Join(labels, " ")
}
