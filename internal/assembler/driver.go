package assembler

// Result is the outcome of translating one source file: the expanded
// source (useful for persisting a .am side file), the populated file
// context, and whether artefact emission is permitted.
type Result struct {
	Expanded []string
	File     *File
	OK       bool
}

// Translate runs the full per-file pipeline of spec.md §2 over raw,
// newline-delimited source lines: a line-length check, macro expansion,
// first pass, second pass. Object/entry/extern emission (spec.md §4.6) is
// the caller's responsibility, gated on Result.OK. OK reflects every
// diagnostic raised anywhere in the pipeline — including during macro
// expansion, which runs before either pass has a diagnostic-count
// baseline of its own — not just the two passes' own deltas.
func Translate(lines []string, limits Limits) Result {
	f := NewFile(limits)

	checkLineLengths(lines, limits.MaxLineLength, f.Diags)

	expanded := ExpandMacros(lines, f.Diags, limits.MacroBodyLimit)

	RunFirstPass(f, expanded)
	RunSecondPass(f, expanded, true)

	return Result{Expanded: expanded, File: f, OK: !f.Diags.Failed()}
}

// checkLineLengths raises DiagLineTooLong against the original
// (pre-expansion) line number of every raw source line longer than
// maxLineLength. maxLineLength <= 0 disables the check.
func checkLineLengths(lines []string, maxLineLength int, bus *DiagnosticsBus) {
	if maxLineLength <= 0 {
		return
	}
	for i, line := range lines {
		if len(line) > maxLineLength {
			bus.Raise(DiagLineTooLong, i+1)
		}
	}
}
