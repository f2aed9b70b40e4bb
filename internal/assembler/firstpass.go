package assembler

// RunFirstPass walks the expanded line stream once, classifying each line,
// allocating code/data addresses, populating the symbol table, and laying
// down every instruction's first word plus operand placeholders
// (spec.md §4.4). It returns true if the pass completed without raising any
// diagnostic.
func RunFirstPass(f *File, lines []string) bool {
	before := f.Diags.Count()

	for i, raw := range lines {
		lineNo := i + 1
		l := Tokenize(raw)
		if l.Count == CountZero {
			continue
		}

		hadLabel := l.HasLabel
		var labelName string
		skipLabel := false

		if l.HasLabel {
			labelName = l.W1
			switch l.W2 {
			case ".entry":
				f.Diags.Raise(DiagCantDefineLabelBeforeEntry, lineNo)
				skipLabel = true
			case ".extern":
				f.Diags.Raise(DiagCantDefineLabelBeforeExtern, lineNo)
				skipLabel = true
			}
			l.DeleteLabel()
		}

		switch l.W1 {
		case ".data":
			firstPassData(f, raw, hadLabel, labelName, skipLabel, lineNo)
		case ".string":
			firstPassString(f, raw, hadLabel, labelName, skipLabel, lineNo)
		case ".extern":
			firstPassExtern(f, raw, hadLabel, lineNo)
		case ".entry":
			// no-op in first pass; handled in second pass.
		default:
			firstPassInstruction(f, l, hadLabel, labelName, skipLabel, lineNo)
		}
	}

	// Data labels are rebased unconditionally so that a second pass run
	// after a failed first pass (spec.md §4.4.2: the second pass still
	// runs, to surface additional diagnostics) resolves Direct operands
	// against correct addresses.
	f.Symbols.RebaseData(f.IC())
	return f.Diags.Count() == before
}

func firstPassData(f *File, raw string, hadLabel bool, labelName string, skipLabel bool, lineNo int) {
	if hadLabel && !skipLabel {
		declareLabel(f, labelName, f.DC(), KindData, lineNo)
	}
	tail := directiveTail(raw, hadLabel)
	values, _ := parseCommaSeparatedInts(tail, f.Diags, lineNo)
	for _, v := range values {
		f.appendData(maskSigned(v), lineNo)
	}
}

func firstPassString(f *File, raw string, hadLabel bool, labelName string, skipLabel bool, lineNo int) {
	if hadLabel && !skipLabel {
		declareLabel(f, labelName, f.DC(), KindData, lineNo)
	}
	remainder := stringDirectiveRemainder(raw, hadLabel)
	content, ok := parseStringLiteral(remainder, f.Diags, lineNo)
	if !ok {
		return
	}
	for i := 0; i < len(content); i++ {
		f.appendData(Word(content[i]), lineNo)
	}
	f.appendData(0, lineNo)
}

func firstPassExtern(f *File, raw string, hadLabel bool, lineNo int) {
	tail := directiveTail(raw, hadLabel)
	names, _ := parseCommaSeparatedLabels(tail, f.Diags, lineNo, DiagMustProvideLabelsToExtern, f.limits.MaxLabelNameLength)
	f.hasExterns = true
	for _, name := range names {
		if !f.Symbols.Insert(name, 0, KindExtern) {
			f.Diags.Raise(DiagLabelAlreadyExists, lineNo)
		}
	}
}

func firstPassInstruction(f *File, l Line, hadLabel bool, labelName string, skipLabel bool, lineNo int) {
	if hadLabel && !skipLabel {
		declareLabel(f, labelName, f.IC(), KindCode, lineNo)
	}

	op, ok := LookupOpcode(l.W1)
	if !ok {
		f.Diags.Raise(DiagInstructionNameNotExist, lineNo)
		return
	}

	ops, ok := parseInstructionOperands(op, l, f.Diags, lineNo)
	if !ok {
		return
	}
	if !validateAddressingMethods(op, ops, f.Diags, lineNo) {
		return
	}

	emitInstructionWords(f, op, ops, lineNo)
}

// declareLabel validates and inserts a label declaration shared by the
// .data/.string/instruction label-bearing cases.
func declareLabel(f *File, name string, address int, kind LabelKind, lineNo int) {
	if !ValidLabelName(name, f.limits.MaxLabelNameLength) {
		f.Diags.Raise(DiagInvalidLabelName, lineNo)
		return
	}
	if !f.Symbols.Insert(name, address, kind) {
		f.Diags.Raise(DiagLabelAlreadyExists, lineNo)
	}
}

// emitInstructionWords lays down the first word and operand placeholders
// for a validated instruction, in source-then-destination order
// (spec.md §4.4.1). Direct operands are written as zero placeholders; the
// second pass fills them in.
func emitInstructionWords(f *File, op Opcode, ops parsedOperands, lineNo int) {
	srcMethod, destMethod := AddrNotPresent, AddrNotPresent
	if ops.hasSource {
		srcMethod = ops.sourceMethod
	}
	if ops.hasDest {
		destMethod = ops.destMethod
	}
	f.appendCode(encodeFirstWord(op, srcMethod, destMethod), lineNo)

	if ops.hasSource && ops.hasDest && ops.sourceMethod == AddrRegister && ops.destMethod == AddrRegister {
		f.appendCode(encodeRegisterPairWord(registerIndex(ops.sourceTok), registerIndex(ops.destTok)), lineNo)
		return
	}

	if ops.hasSource {
		f.appendCode(operandPlaceholder(ops.sourceMethod, ops.sourceTok, true), lineNo)
	}
	if ops.hasDest {
		f.appendCode(operandPlaceholder(ops.destMethod, ops.destTok, false), lineNo)
	}
}

// operandPlaceholder builds the word for a single, non-register-paired
// operand. isSource selects which register field a lone register operand
// occupies (spec.md §4.4.1: register-sole word, unused field zero).
func operandPlaceholder(method AddressingMethod, tok string, isSource bool) Word {
	switch method {
	case AddrRegister:
		if isSource {
			return encodeRegisterPairWord(registerIndex(tok), -1)
		}
		return encodeRegisterPairWord(-1, registerIndex(tok))
	case AddrImmediate:
		n, _ := parseSignedInt(tok)
		return encodeImmediateWord(n)
	default: // AddrDirect
		return 0
	}
}

// maskSigned converts a signed value into its 12-bit two's-complement
// representation (spec.md §9).
func maskSigned(v int) Word {
	return Word(uint32(v)) & WordMask
}
