package assembler

// RunSecondPass re-walks the same expanded line stream, promotes .entry
// labels, and resolves every Direct operand placeholder left by the first
// pass into a Relocatable or External word (spec.md §4.5). It returns true
// if neither pass raised a diagnostic.
func RunSecondPass(f *File, lines []string, firstPassOK bool) bool {
	before := f.Diags.Count()
	ic := f.limits.Base

	for i, raw := range lines {
		lineNo := i + 1
		l := Tokenize(raw)
		if l.Count == CountZero {
			continue
		}

		hadLabel := l.HasLabel
		if hadLabel {
			l.DeleteLabel()
		}

		switch l.W1 {
		case ".data", ".string", ".extern":
			// no-op
		case ".entry":
			secondPassEntry(f, raw, hadLabel, lineNo)
		default:
			ic = secondPassInstruction(f, l, ic, lineNo)
		}
	}

	return firstPassOK && f.Diags.Count() == before
}

func secondPassEntry(f *File, raw string, hadLabel bool, lineNo int) {
	f.hasEntries = true
	tail := directiveTail(raw, hadLabel)
	names, _ := parseCommaSeparatedLabels(tail, f.Diags, lineNo, DiagMustProvideLabelsToEntry, f.limits.MaxLabelNameLength)
	for _, name := range names {
		if !f.Symbols.PromoteToEntry(name) {
			f.Diags.Raise(DiagCantFindLabelToEntry, lineNo)
		}
	}
}

// secondPassInstruction re-derives the same operand shape the first pass
// computed (silently — any structural problem was already reported during
// the first pass) and returns the instruction counter advanced past this
// line's words.
func secondPassInstruction(f *File, l Line, ic int, lineNo int) int {
	op, ok := LookupOpcode(l.W1)
	if !ok {
		return ic
	}

	silent := &DiagnosticsBus{}
	ops, ok := parseInstructionOperands(op, l, silent, lineNo)
	if !ok {
		return ic
	}
	if !validateAddressingMethods(op, ops, silent, lineNo) {
		return ic
	}

	ic++ // first word, already finalised

	if ops.hasSource && ops.hasDest && ops.sourceMethod == AddrRegister && ops.destMethod == AddrRegister {
		return ic + 1
	}

	if ops.hasSource {
		ic = resolveOperand(f, ops.sourceMethod, ops.sourceTok, ic, lineNo)
	}
	if ops.hasDest {
		ic = resolveOperand(f, ops.destMethod, ops.destTok, ic, lineNo)
	}
	return ic
}

// resolveOperand advances past a finalised Register/Immediate word, or
// resolves a Direct word against the symbol table, recording an extern
// use site when the label is external.
func resolveOperand(f *File, method AddressingMethod, tok string, ic int, lineNo int) int {
	if method != AddrDirect {
		return ic + 1
	}

	label, ok := f.Symbols.Lookup(tok)
	if !ok {
		f.Diags.Raise(DiagLabelNotFound, lineNo)
		return ic + 1
	}

	enc := Relocatable
	if label.Kind == KindExtern {
		enc = External
	}
	idx := ic - f.limits.Base
	if idx >= 0 && idx < len(f.Code) {
		f.Code[idx] = encodeDirectWord(enc, label.Address)
	}
	if label.Kind == KindExtern {
		f.ExternUses = append(f.ExternUses, ExternUse{Name: tok, Address: ic})
	}
	return ic + 1
}
