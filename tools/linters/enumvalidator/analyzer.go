package enumvalidator

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

var Analyzer = &analysis.Analyzer{
	Name: "enumvalidator",
	Doc:  "checks that brand option fields only use defined constants, not string literals",
	Run:  run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	enumTypes := map[string]bool{
		"ColorMode":             true,
		"ColorMood":             true,
		"ColorBrightness":       true,
		"TypographyStyle":       true,
		"Density":               true,
		"MotionIntensity":       true,
		"BorderRadius":          true,
		"SpacingChoice":         true,
		"Contrast":              true,
		"TypographyFamily":      true,
		"IconStyle":             true,
		"AccessibilityLevel":    true,
		"AccessibilityPriority": true,
		"Level":                 true,
		"FileType":              true,
		"Section":               true,
	}

	for _, file := range pass.Files {
		ast.Inspect(file, func(n ast.Node) bool {
			if lit, ok := n.(*ast.CompositeLit); ok {
				checkCompositeLit(pass, lit, enumTypes)
				return true
			}

			assign, ok := n.(*ast.AssignStmt)
			if !ok {
				return true
			}

			for i, lhs := range assign.Lhs {
				if i >= len(assign.Rhs) {
					continue
				}

				if sel, ok := lhs.(*ast.SelectorExpr); ok {
					if isEnumField(pass, sel, enumTypes) {
						if isStringLiteral(assign.Rhs[i]) {
							pass.Reportf(assign.Pos(),
								"enum field %s assigned string literal; use defined constant instead",
								sel.Sel.Name)
						}
					}
				}
			}

			return true
		})
	}
	return nil, nil
}

// checkCompositeLit flags keyed struct literal fields such as
// DiscoveryInputs{ColorMood: "calm"}.
func checkCompositeLit(pass *analysis.Pass, lit *ast.CompositeLit, enumTypes map[string]bool) {
	for _, elt := range lit.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok || !isStringLiteral(kv.Value) {
			continue
		}
		key, ok := kv.Key.(*ast.Ident)
		if !ok {
			continue
		}
		field, ok := pass.TypesInfo.ObjectOf(key).(*types.Var)
		if !ok || !field.IsField() {
			continue
		}
		if named, ok := field.Type().(*types.Named); ok && enumTypes[named.Obj().Name()] {
			pass.Reportf(kv.Pos(),
				"enum field %s assigned string literal; use defined constant instead",
				key.Name)
		}
	}
}

// isEnumField reports whether sel has one of the named string enum types.
func isEnumField(pass *analysis.Pass, sel *ast.SelectorExpr, enumTypes map[string]bool) bool {
	if t := pass.TypesInfo.TypeOf(sel); t != nil {
		if named, ok := t.(*types.Named); ok {
			return enumTypes[named.Obj().Name()]
		}
	}
	return false
}

func isStringLiteral(expr ast.Expr) bool {
	lit, ok := expr.(*ast.BasicLit)
	return ok && lit.Kind == token.STRING
}
