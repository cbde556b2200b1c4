// Package analyzer provides static inspection of Go source code:
// symbol extraction, parse diagnostics, complexity metrics and
// formatting. Everything works on in-memory source, nothing touches
// the module cache or runs the toolchain.
package analyzer

import (
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/scanner"
	"go/token"
)

type service struct{}

// NewService creates a new analyzer service.
func NewService() AnalyzerService {
	return &service{}
}

func (s *service) parse(code, fileName string) (*ast.File, *token.FileSet, error) {
	if fileName == "" {
		fileName = "source.go"
	}
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, fileName, code, parser.ParseComments)
	if err != nil {
		return nil, nil, err
	}
	return file, fset, nil
}

// Diagnostics parses the source and reports every syntax error found.
// parser.AllErrors keeps the parser going past the first problem so a
// single call surfaces everything.
func (s *service) Diagnostics(code, fileName string) (*DiagnosticsReport, error) {
	if fileName == "" {
		fileName = "source.go"
	}
	fset := token.NewFileSet()
	_, err := parser.ParseFile(fset, fileName, code, parser.AllErrors)

	report := &DiagnosticsReport{Diagnostics: []Diagnostic{}}
	if err == nil {
		report.Clean = true
		if formatted, ferr := format.Source([]byte(code)); ferr == nil {
			report.Formatted = string(formatted) == code
			if !report.Formatted {
				report.Diagnostics = append(report.Diagnostics, Diagnostic{
					File:     fileName,
					Message:  "source is not gofmt-formatted",
					Severity: "warning",
				})
			}
		}
		return report, nil
	}

	var list scanner.ErrorList
	if ok := asErrorList(err, &list); ok {
		for _, e := range list {
			report.Diagnostics = append(report.Diagnostics, Diagnostic{
				File:     e.Pos.Filename,
				Line:     e.Pos.Line,
				Column:   e.Pos.Column,
				Message:  e.Msg,
				Severity: "error",
			})
		}
	} else {
		report.Diagnostics = append(report.Diagnostics, Diagnostic{
			File:     fileName,
			Message:  err.Error(),
			Severity: "error",
		})
	}
	report.ErrorCount = len(report.Diagnostics)

	return report, nil
}

func asErrorList(err error, out *scanner.ErrorList) bool {
	list, ok := err.(scanner.ErrorList)
	if ok {
		*out = list
	}
	return ok
}

// Format runs the source through gofmt rules.
func (s *service) Format(code string) (*FormatResult, error) {
	formatted, err := format.Source([]byte(code))
	if err != nil {
		return nil, fmt.Errorf("failed to format source: %w", err)
	}
	return &FormatResult{
		Formatted: string(formatted),
		Changed:   string(formatted) != code,
	}, nil
}
