package analyzer

// Symbol is a named declaration found in a source file.
type Symbol struct {
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	Signature string `json:"signature,omitempty"`
	Receiver  string `json:"receiver,omitempty"`
	TypeName  string `json:"typeName,omitempty"`
	Exported  bool   `json:"exported"`
}

// SymbolReport lists the symbols extracted from one piece of source.
type SymbolReport struct {
	PackageName string   `json:"packageName"`
	Symbols     []Symbol `json:"symbols"`
	Count       int      `json:"count"`
}

// Diagnostic is a single problem found while parsing source.
type Diagnostic struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// DiagnosticsReport summarizes the problems in one piece of source.
// Formatted is only meaningful when the source parses.
type DiagnosticsReport struct {
	Clean       bool         `json:"clean"`
	Formatted   bool         `json:"formatted"`
	Diagnostics []Diagnostic `json:"diagnostics"`
	ErrorCount  int          `json:"errorCount"`
}

// FunctionMetrics holds per-function complexity figures.
type FunctionMetrics struct {
	Name                 string `json:"name"`
	Line                 int    `json:"line"`
	CyclomaticComplexity int    `json:"cyclomaticComplexity"`
	LinesOfCode          int    `json:"linesOfCode"`
}

// MetricsReport holds file-level and per-function metrics.
type MetricsReport struct {
	LinesOfCode       int               `json:"linesOfCode"`
	CommentLines      int               `json:"commentLines"`
	BlankLines        int               `json:"blankLines"`
	FunctionCount     int               `json:"functionCount"`
	TypeCount         int               `json:"typeCount"`
	TotalComplexity   int               `json:"totalComplexity"`
	MaxComplexity     int               `json:"maxComplexity"`
	AverageComplexity float64           `json:"averageComplexity"`
	Functions         []FunctionMetrics `json:"functions"`
}

// FormatResult carries formatted source.
type FormatResult struct {
	Formatted string `json:"formatted"`
	Changed   bool   `json:"changed"`
}

// AnalyzerService inspects Go source code.
type AnalyzerService interface {
	Symbols(code, fileName, filter string) (*SymbolReport, error)
	Diagnostics(code, fileName string) (*DiagnosticsReport, error)
	Metrics(code, fileName string) (*MetricsReport, error)
	Format(code string) (*FormatResult, error)
}
