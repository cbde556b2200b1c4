package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSource = `package sample

import "fmt"

const Version = "1.0.0"

var counter int

// Greeter holds a greeting prefix.
type Greeter struct {
	Prefix string
}

// Speaker is anything that can speak.
type Speaker interface {
	Speak() string
}

func (g *Greeter) Speak() string {
	return g.Prefix + " hello"
}

func Greet(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty name")
	}
	return "hello " + name, nil
}
`

func TestSymbols(t *testing.T) {
	svc := NewService()

	report, err := svc.Symbols(sampleSource, "sample.go", "")
	require.NoError(t, err)

	assert.Equal(t, "sample", report.PackageName)
	assert.Equal(t, len(report.Symbols), report.Count)

	byName := map[string]Symbol{}
	for _, sym := range report.Symbols {
		byName[sym.Name] = sym
	}

	assert.Equal(t, "const", byName["Version"].Kind)
	assert.Equal(t, "var", byName["counter"].Kind)
	assert.Equal(t, "struct", byName["Greeter"].Kind)
	assert.Equal(t, "interface", byName["Speaker"].Kind)
	assert.Equal(t, "function", byName["Greet"].Kind)
	assert.Equal(t, "method", byName["Speak"].Kind)
	assert.Equal(t, "*Greeter", byName["Speak"].Receiver)

	assert.True(t, byName["Greet"].Exported)
	assert.False(t, byName["counter"].Exported)
	assert.Equal(t, "Greet(name string) (string, error)", byName["Greet"].Signature)
}

func TestSymbolsFilter(t *testing.T) {
	svc := NewService()

	tests := []struct {
		filter string
		want   map[string]bool
	}{
		{filter: "function", want: map[string]bool{"Greet": true, "Speak": true}},
		{filter: "type", want: map[string]bool{"Greeter": true, "Speaker": true}},
		{filter: "const", want: map[string]bool{"Version": true}},
		{filter: "var", want: map[string]bool{"counter": true}},
	}

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			report, err := svc.Symbols(sampleSource, "", tt.filter)
			require.NoError(t, err)
			require.Len(t, report.Symbols, len(tt.want))
			for _, sym := range report.Symbols {
				assert.True(t, tt.want[sym.Name], "unexpected symbol %s", sym.Name)
			}
		})
	}
}

func TestSymbolsParseError(t *testing.T) {
	svc := NewService()

	_, err := svc.Symbols("package {", "broken.go", "")
	assert.Error(t, err)
}

func TestDiagnosticsCleanSource(t *testing.T) {
	svc := NewService()

	report, err := svc.Diagnostics(sampleSource, "sample.go")
	require.NoError(t, err)
	assert.True(t, report.Clean)
	assert.True(t, report.Formatted)
	assert.Zero(t, report.ErrorCount)
}

func TestDiagnosticsUnformattedSource(t *testing.T) {
	svc := NewService()

	report, err := svc.Diagnostics("package sample\nfunc  f() {}\n", "messy.go")
	require.NoError(t, err)

	assert.True(t, report.Clean)
	assert.False(t, report.Formatted)
	require.Len(t, report.Diagnostics, 1)
	assert.Equal(t, "warning", report.Diagnostics[0].Severity)
	assert.Zero(t, report.ErrorCount)
}

func TestDiagnosticsBrokenSource(t *testing.T) {
	svc := NewService()

	report, err := svc.Diagnostics("package sample\n\nfunc Broken( {\n", "broken.go")
	require.NoError(t, err)

	assert.False(t, report.Clean)
	require.NotZero(t, report.ErrorCount)
	assert.Equal(t, "broken.go", report.Diagnostics[0].File)
	assert.NotZero(t, report.Diagnostics[0].Line)
	assert.Equal(t, "error", report.Diagnostics[0].Severity)
}

func TestMetrics(t *testing.T) {
	svc := NewService()

	report, err := svc.Metrics(sampleSource, "sample.go")
	require.NoError(t, err)

	assert.Equal(t, 2, report.FunctionCount)
	assert.Equal(t, 2, report.TypeCount)
	assert.NotZero(t, report.LinesOfCode)
	assert.NotZero(t, report.CommentLines)
	assert.NotZero(t, report.BlankLines)

	byName := map[string]FunctionMetrics{}
	for _, fn := range report.Functions {
		byName[fn.Name] = fn
	}

	// Speak has no branches, Greet has one if.
	assert.Equal(t, 1, byName["Speak"].CyclomaticComplexity)
	assert.Equal(t, 2, byName["Greet"].CyclomaticComplexity)
	assert.Equal(t, 2, report.MaxComplexity)
	assert.InDelta(t, 1.5, report.AverageComplexity, 0.001)
}

func TestMetricsComplexityCountsOperators(t *testing.T) {
	svc := NewService()

	src := `package sample

func Busy(a, b int) int {
	if a > 0 && b > 0 {
		return a + b
	}
	for i := 0; i < a; i++ {
		switch {
		case i%2 == 0:
			b++
		case i%3 == 0:
			b--
		}
	}
	return b
}
`
	report, err := svc.Metrics(src, "")
	require.NoError(t, err)
	require.Len(t, report.Functions, 1)

	// base 1 + if + && + for + 2 case clauses = 6
	assert.Equal(t, 6, report.Functions[0].CyclomaticComplexity)
}

func TestFormat(t *testing.T) {
	svc := NewService()

	result, err := svc.Format("package   sample\nfunc  f( ) {  }\n")
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, "package sample\n\nfunc f() {}\n", result.Formatted)
}

func TestFormatAlreadyClean(t *testing.T) {
	svc := NewService()

	src := "package sample\n\nfunc f() {}\n"
	result, err := svc.Format(src)
	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.Equal(t, src, result.Formatted)
}

func TestFormatInvalidSource(t *testing.T) {
	svc := NewService()

	_, err := svc.Format("not go at all")
	assert.Error(t, err)
}
