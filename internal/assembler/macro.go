package assembler

import "strings"

// Macro is a named multi-line body captured between mcro/endmcro.
type Macro struct {
	Name string
	Body []string
}

// MacroTable holds the macros defined in one file. Order of definition is
// not observable (macros are looked up by name only), so a plain map
// suffices.
type MacroTable struct {
	macros map[string]*Macro
}

// NewMacroTable creates an empty macro table.
func NewMacroTable() *MacroTable {
	return &MacroTable{macros: make(map[string]*Macro)}
}

// Define inserts a new macro. It returns false if a macro of the same name
// already exists.
func (t *MacroTable) Define(m *Macro) bool {
	if _, exists := t.macros[m.Name]; exists {
		return false
	}
	t.macros[m.Name] = m
	return true
}

// Lookup returns the macro named name, if any.
func (t *MacroTable) Lookup(name string) (*Macro, bool) {
	m, ok := t.macros[name]
	return m, ok
}

// macroState is the expander's two-state machine (spec.md §4.1).
type macroState int

const (
	stateOutside macroState = iota
	stateInsideBody
)

// ExpandMacros runs the full macro-expansion pass over raw source lines and
// returns the flattened line stream. Diagnostics are raised against the
// 1-based line number in the ORIGINAL (pre-expansion) stream, since macro
// definitions and invocations are resolved before any expanded-stream line
// numbering exists. macroBodyLimit caps the total character count of a
// single macro's accumulated body text (original_source's
// MAX_CHARACTERS_ASSEMBLY_FILE, re-used per macro definition); a limit of
// zero or less disables the check.
func ExpandMacros(lines []string, bus *DiagnosticsBus, macroBodyLimit int) []string {
	table := NewMacroTable()
	state := stateOutside
	var bodyName string
	var body []string
	bodyChars := 0

	out := make([]string, 0, len(lines))

	for i, line := range lines {
		lineNo := i + 1
		first := firstToken(line)

		switch state {
		case stateOutside:
			switch {
			case first == "mcro":
				bodyName = secondToken(line)
				state = stateInsideBody
				body = nil
				bodyChars = 0
			case first == "endmcro":
				// endmcro with no open definition is simply not a macro
				// invocation; fall through to the default macro-or-verbatim
				// handling below.
				out = appendExpanded(out, table, line, first)
			default:
				out = appendExpanded(out, table, line, first)
			}
		case stateInsideBody:
			switch first {
			case "mcro":
				bus.Raise(DiagNestedMacroDefinition, lineNo)
			case "endmcro":
				switch {
				case IsReservedWord(bodyName):
					bus.Raise(DiagMacroNameIsInstructionOrDirective, lineNo)
				case macroBodyLimit > 0 && bodyChars > macroBodyLimit:
					bus.Raise(DiagMacroBodyExceedsLimit, lineNo)
				case !table.Define(&Macro{Name: bodyName, Body: body}):
					bus.Raise(DiagMacroAlreadyExists, lineNo)
				}
				state = stateOutside
				body = nil
				bodyChars = 0
			default:
				body = append(body, line)
				bodyChars += len(line)
			}
		}
	}

	return out
}

// appendExpanded emits line verbatim, unless its first token names a
// defined macro, in which case the macro's body lines are emitted instead.
func appendExpanded(out []string, table *MacroTable, line, first string) []string {
	if m, ok := table.Lookup(first); ok {
		return append(out, m.Body...)
	}
	return append(out, line)
}

func firstToken(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func secondToken(line string) string {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return ""
	}
	return fields[1]
}
