package analyzer

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"
)

// Metrics computes line counts, declaration counts and cyclomatic
// complexity for the source.
func (s *service) Metrics(code, fileName string) (*MetricsReport, error) {
	file, fset, err := s.parse(code, fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}

	report := &MetricsReport{Functions: []FunctionMetrics{}}

	for _, line := range strings.Split(code, "\n") {
		report.LinesOfCode++
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			report.BlankLines++
		case strings.HasPrefix(trimmed, "//"), strings.HasPrefix(trimmed, "/*"):
			report.CommentLines++
		}
	}

	ast.Inspect(file, func(n ast.Node) bool {
		switch decl := n.(type) {
		case *ast.FuncDecl:
			report.FunctionCount++

			complexity := cyclomaticComplexity(decl)
			report.TotalComplexity += complexity
			if complexity > report.MaxComplexity {
				report.MaxComplexity = complexity
			}

			pos := fset.Position(decl.Pos())
			end := fset.Position(decl.End())
			report.Functions = append(report.Functions, FunctionMetrics{
				Name:                 decl.Name.Name,
				Line:                 pos.Line,
				CyclomaticComplexity: complexity,
				LinesOfCode:          end.Line - pos.Line + 1,
			})

		case *ast.GenDecl:
			if decl.Tok == token.TYPE {
				report.TypeCount += len(decl.Specs)
			}
		}
		return true
	})

	if report.FunctionCount > 0 {
		report.AverageComplexity = float64(report.TotalComplexity) / float64(report.FunctionCount)
	}

	return report, nil
}

// cyclomaticComplexity counts decision points: each branch, loop,
// case clause and short-circuit operator adds one to the base of 1.
func cyclomaticComplexity(fn *ast.FuncDecl) int {
	complexity := 1
	if fn.Body == nil {
		return complexity
	}

	ast.Inspect(fn.Body, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.IfStmt, *ast.ForStmt, *ast.RangeStmt, *ast.CaseClause, *ast.CommClause:
			complexity++
		case *ast.BinaryExpr:
			if n.Op == token.LAND || n.Op == token.LOR {
				complexity++
			}
		}
		return true
	})

	return complexity
}
