package analyzer

import (
	"fmt"
	"go/ast"
	"go/token"
)

// Symbols extracts the declarations from the source. Filter narrows
// the result to one kind: "function", "method", "type", "const" or
// "var". An empty filter or "all" returns everything.
func (s *service) Symbols(code, fileName, filter string) (*SymbolReport, error) {
	file, fset, err := s.parse(code, fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}

	symbols := []Symbol{}
	ast.Inspect(file, func(n ast.Node) bool {
		switch decl := n.(type) {
		case *ast.FuncDecl:
			sym := functionSymbol(decl, fset)
			if matchesFilter(filter, sym.Kind) {
				symbols = append(symbols, sym)
			}
		case *ast.GenDecl:
			for _, spec := range decl.Specs {
				switch spec := spec.(type) {
				case *ast.TypeSpec:
					sym := typeSymbol(spec, fset)
					if matchesFilter(filter, "type") {
						symbols = append(symbols, sym)
					}
				case *ast.ValueSpec:
					kind := "var"
					if decl.Tok == token.CONST {
						kind = "const"
					}
					if matchesFilter(filter, kind) {
						symbols = append(symbols, valueSymbols(spec, kind, fset)...)
					}
				}
			}
		}
		return true
	})

	return &SymbolReport{
		PackageName: file.Name.Name,
		Symbols:     symbols,
		Count:       len(symbols),
	}, nil
}

func matchesFilter(filter, kind string) bool {
	switch filter {
	case "", "all":
		return true
	case "function":
		return kind == "function" || kind == "method"
	case "type":
		return kind == "type" || kind == "struct" || kind == "interface"
	default:
		return filter == kind
	}
}

func functionSymbol(decl *ast.FuncDecl, fset *token.FileSet) Symbol {
	pos := fset.Position(decl.Pos())
	sym := Symbol{
		Name:     decl.Name.Name,
		Kind:     "function",
		Line:     pos.Line,
		Column:   pos.Column,
		Exported: decl.Name.IsExported(),
	}

	if decl.Recv != nil && len(decl.Recv.List) > 0 {
		sym.Kind = "method"
		sym.Receiver = typeString(decl.Recv.List[0].Type)
	}

	sym.Signature = signature(decl)
	return sym
}

func signature(decl *ast.FuncDecl) string {
	sig := decl.Name.Name + "("
	if decl.Type.Params != nil {
		for i, param := range decl.Type.Params.List {
			if i > 0 {
				sig += ", "
			}
			for j, name := range param.Names {
				if j > 0 {
					sig += ", "
				}
				sig += name.Name
			}
			if len(param.Names) > 0 {
				sig += " "
			}
			sig += typeString(param.Type)
		}
	}
	sig += ")"

	results := decl.Type.Results
	if results == nil || len(results.List) == 0 {
		return sig
	}

	sig += " "
	if len(results.List) > 1 {
		sig += "("
	}
	for i, result := range results.List {
		if i > 0 {
			sig += ", "
		}
		sig += typeString(result.Type)
	}
	if len(results.List) > 1 {
		sig += ")"
	}
	return sig
}

func typeSymbol(spec *ast.TypeSpec, fset *token.FileSet) Symbol {
	pos := fset.Position(spec.Pos())

	kind := "type"
	switch spec.Type.(type) {
	case *ast.StructType:
		kind = "struct"
	case *ast.InterfaceType:
		kind = "interface"
	}

	return Symbol{
		Name:     spec.Name.Name,
		Kind:     kind,
		Line:     pos.Line,
		Column:   pos.Column,
		Exported: spec.Name.IsExported(),
	}
}

func valueSymbols(spec *ast.ValueSpec, kind string, fset *token.FileSet) []Symbol {
	symbols := make([]Symbol, 0, len(spec.Names))
	for _, name := range spec.Names {
		pos := fset.Position(name.Pos())
		sym := Symbol{
			Name:     name.Name,
			Kind:     kind,
			Line:     pos.Line,
			Column:   pos.Column,
			Exported: name.IsExported(),
		}
		if spec.Type != nil {
			sym.TypeName = typeString(spec.Type)
		}
		symbols = append(symbols, sym)
	}
	return symbols
}

// typeString renders a type expression without resorting to the
// printer package. It covers the forms that show up in signatures;
// anything else falls back to the AST node's string form.
func typeString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return "*" + typeString(t.X)
	case *ast.SelectorExpr:
		return typeString(t.X) + "." + t.Sel.Name
	case *ast.ArrayType:
		return "[]" + typeString(t.Elt)
	case *ast.MapType:
		return "map[" + typeString(t.Key) + "]" + typeString(t.Value)
	case *ast.Ellipsis:
		return "..." + typeString(t.Elt)
	case *ast.InterfaceType:
		return "interface{}"
	case *ast.FuncType:
		return "func"
	case *ast.ChanType:
		return "chan " + typeString(t.Value)
	case *ast.IndexExpr:
		return typeString(t.X) + "[" + typeString(t.Index) + "]"
	default:
		return fmt.Sprintf("%T", expr)
	}
}
