package viewmock

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
)

// selectorKind classifies the shape of a selector expression.
type selectorKind int

const (
	kindOther selectorKind = iota
	kindField
	kindIndex
	kindCall
)

// selector is the parsed form of a field or method selector.
type selector struct {
	kind selectorKind
	name string
	text string
}

// builtins are predeclared functions that look like conversions but are not.
var builtins = map[string]struct{}{
	"append": {}, "cap": {}, "clear": {}, "close": {}, "complex": {}, "copy": {},
	"delete": {}, "imag": {}, "len": {}, "make": {}, "max": {}, "min": {},
	"new": {}, "panic": {}, "print": {}, "println": {}, "real": {}, "recover": {},
}

// parseSelector accepts either a bare field name ("Name") or a Go expression
// reading a field from a receiver ("vm.Name", "string(vm.Name)").
func parseSelector(text string) (selector, error) {
	text = strings.TrimSpace(text)
	if token.IsIdentifier(text) {
		return selector{kind: kindField, name: text, text: text}, nil
	}

	expr, err := parser.ParseExpr(text)
	if err != nil {
		return selector{}, fmt.Errorf("%w: %q: %v", ErrUnsupportedExpression, text, err)
	}

	sel := classify(expr)
	sel.text = text

	return sel, nil
}

func classify(expr ast.Expr) selector {
	switch e := unparen(expr).(type) {
	case *ast.Ident:
		return selector{kind: kindField, name: e.Name}
	case *ast.SelectorExpr:
		if _, ok := unparen(e.X).(*ast.Ident); ok {
			return selector{kind: kindField, name: e.Sel.Name}
		}
	case *ast.IndexExpr, *ast.IndexListExpr:
		return selector{kind: kindIndex}
	case *ast.CallExpr:
		return classifyCall(e)
	}

	return selector{kind: kindOther}
}

func classifyCall(call *ast.CallExpr) selector {
	if len(call.Args) == 0 {
		if fun, ok := unparen(call.Fun).(*ast.SelectorExpr); ok {
			if _, ok := unparen(fun.X).(*ast.Ident); ok {
				return selector{kind: kindCall, name: fun.Sel.Name}
			}
		}

		return selector{kind: kindOther}
	}

	// Conversions are unwrapped until the converted operand is reached.
	if len(call.Args) == 1 && call.Ellipsis == token.NoPos && isConversion(call.Fun, call.Args[0]) {
		return classify(call.Args[0])
	}

	return selector{kind: kindOther}
}

func isConversion(fun, operand ast.Expr) bool {
	switch f := unparen(fun).(type) {
	case *ast.Ident:
		_, builtin := builtins[f.Name]
		return !builtin
	case *ast.StarExpr, *ast.ArrayType, *ast.MapType, *ast.InterfaceType, *ast.ChanType, *ast.FuncType:
		return true
	case *ast.SelectorExpr:
		// pkg.Type(vm.Field) converts, vm.Method(vm.Field) calls.
		pkg, ok := unparen(f.X).(*ast.Ident)
		return ok && pkg.Name != rootIdent(operand)
	}

	return false
}

// rootIdent returns the left-most identifier of an operand expression.
func rootIdent(expr ast.Expr) string {
	for {
		switch e := expr.(type) {
		case *ast.Ident:
			return e.Name
		case *ast.ParenExpr:
			expr = e.X
		case *ast.SelectorExpr:
			expr = e.X
		case *ast.IndexExpr:
			expr = e.X
		case *ast.IndexListExpr:
			expr = e.X
		case *ast.StarExpr:
			expr = e.X
		case *ast.CallExpr:
			if len(e.Args) == 1 {
				expr = e.Args[0]
			} else {
				expr = e.Fun
			}
		default:
			return ""
		}
	}
}

func unparen(expr ast.Expr) ast.Expr {
	for {
		p, ok := expr.(*ast.ParenExpr)
		if !ok {
			return expr
		}

		expr = p.X
	}
}

// FieldName extracts the field name a selector reads. Indexed selectors fail
// with ErrDynamicComponent, every other non field shape with
// ErrUnsupportedExpression.
func FieldName(text string) (string, error) {
	sel, err := parseSelector(text)
	if err != nil {
		return "", err
	}

	switch sel.kind {
	case kindField:
		return sel.name, nil
	case kindIndex:
		return "", fmt.Errorf("%w: %w: %q", ErrUnsupportedExpression, ErrDynamicComponent, sel.text)
	default:
		return "", fmt.Errorf("%w: %q is not a member access", ErrUnsupportedExpression, sel.text)
	}
}

// MethodName extracts the method name of a zero-argument call selector such
// as "vm.Refresh()".
func MethodName(text string) (string, error) {
	sel, err := parseSelector(text)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNotAMethodExpression, err)
	}

	if sel.kind != kindCall {
		return "", fmt.Errorf("%w: %q", ErrNotAMethodExpression, sel.text)
	}

	return sel.name, nil
}
