package assembler

import "fmt"

// DiagKind enumerates the fixed diagnostic taxonomy of spec.md §7. Values
// are never renumbered once a release ships, since external tooling may
// key off them.
type DiagKind int

const (
	// Naming
	DiagLabelAlreadyExists DiagKind = iota
	DiagMacroAlreadyExists
	DiagInvalidLabelName
	DiagMacroNameIsInstructionOrDirective

	// Structural
	DiagNestedMacroDefinition
	DiagMacroBodyExceedsLimit
	DiagCantDefineLabelBeforeEntry
	DiagCantDefineLabelBeforeExtern
	DiagTooMuchWordsForInstruction

	// Operand syntax
	DiagCommaRequiredBetweenOperands
	DiagCommaRequiredBetweenValues
	DiagInvalidCommaPosition
	DiagStringStructureNotValid
	DiagStringMustEndInQuotes
	DiagStringDirectiveAcceptsOneParameter

	// Directive arity
	DiagMustProvideValuesToData
	DiagDataNeedNumValue
	DiagMustProvideLabelsToExtern
	DiagMustProvideLabelsToEntry
	DiagInvalidLabelNameInList

	// Instruction semantics
	DiagInstructionNameNotExist
	DiagInstructionShouldReceiveTwoOperands
	DiagInstructionShouldReceiveOneOperand
	DiagInstructionShouldNotReceiveOperands
	DiagInvalidAddressMethodForInstruction
	DiagLabelNotFound
	DiagCantFindLabelToEntry

	// Resource
	DiagMemoryImageOverflow
	DiagLineTooLong
)

var diagMessages = map[DiagKind]string{
	DiagLabelAlreadyExists:                  "label already defined",
	DiagMacroAlreadyExists:                  "macro already defined",
	DiagInvalidLabelName:                    "invalid label name",
	DiagMacroNameIsInstructionOrDirective:   "macro name is a reserved word",
	DiagNestedMacroDefinition:               "nested macro definition",
	DiagMacroBodyExceedsLimit:               "macro body exceeds the configured character limit",
	DiagCantDefineLabelBeforeEntry:          "a label cannot be declared on an .entry line",
	DiagCantDefineLabelBeforeExtern:         "a label cannot be declared on an .extern line",
	DiagTooMuchWordsForInstruction:          "too many tokens on instruction line",
	DiagCommaRequiredBetweenOperands:        "comma required between operands",
	DiagCommaRequiredBetweenValues:          "comma required between values",
	DiagInvalidCommaPosition:                "comma in invalid position",
	DiagStringStructureNotValid:             "string must start with a quote",
	DiagStringMustEndInQuotes:               "string is missing a closing quote",
	DiagStringDirectiveAcceptsOneParameter:  ".string accepts exactly one parameter",
	DiagMustProvideValuesToData:             ".data requires at least one value",
	DiagDataNeedNumValue:                    ".data operand is not a number",
	DiagMustProvideLabelsToExtern:           ".extern requires at least one label",
	DiagMustProvideLabelsToEntry:            ".entry requires at least one label",
	DiagInvalidLabelNameInList:              "invalid label name",
	DiagInstructionNameNotExist:             "unknown instruction",
	DiagInstructionShouldReceiveTwoOperands: "instruction requires two operands",
	DiagInstructionShouldReceiveOneOperand:  "instruction requires one operand",
	DiagInstructionShouldNotReceiveOperands: "instruction takes no operands",
	DiagInvalidAddressMethodForInstruction:  "invalid addressing method for this instruction",
	DiagLabelNotFound:                       "label not found",
	DiagCantFindLabelToEntry:                "cannot find label named by .entry",
	DiagMemoryImageOverflow:                 "code/data image exceeds capacity",
	DiagLineTooLong:                         "source line exceeds the maximum line length",
}

// Diagnostic is one accumulated finding, tied to a 1-based line number:
// the expanded source stream for the two passes, the original
// (pre-expansion) source for the line-length check and macro expansion.
type Diagnostic struct {
	Kind DiagKind
	Line int
}

// Error renders the diagnostic the way spec.md §7 prescribes diagnostic
// output: "Error in line <n>: <message>".
func (d Diagnostic) Error() string {
	return fmt.Sprintf("Error in line %d: %s", d.Line, diagMessages[d.Kind])
}

// DiagnosticsBus accumulates diagnostics for a single file. It never
// aborts: every Raise call returns normally so the caller can keep
// processing the rest of the line or file.
type DiagnosticsBus struct {
	diags []Diagnostic
}

// Raise records a diagnostic against the given line number.
func (b *DiagnosticsBus) Raise(kind DiagKind, line int) {
	b.diags = append(b.diags, Diagnostic{Kind: kind, Line: line})
}

// Failed reports whether any diagnostic has been raised so far.
func (b *DiagnosticsBus) Failed() bool {
	return len(b.diags) > 0
}

// All returns every diagnostic raised, in the order raised.
func (b *DiagnosticsBus) All() []Diagnostic {
	return b.diags
}

// Count returns the number of diagnostics raised.
func (b *DiagnosticsBus) Count() int {
	return len(b.diags)
}
