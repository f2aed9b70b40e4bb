package assembler

import "strconv"

// classifyOperand determines the addressing method of a single operand
// token per spec.md §4.4: @r0..@r7 is Register, a signed integer literal is
// Immediate, anything else is a Direct label reference.
func classifyOperand(tok string) AddressingMethod {
	if registerNames[tok] {
		return AddrRegister
	}
	if _, ok := parseSignedInt(tok); ok {
		return AddrImmediate
	}
	return AddrDirect
}

// parseSignedInt parses a token as a signed decimal integer, accepting a
// leading + or -. It does not accept any other numeric base.
func parseSignedInt(tok string) (int, bool) {
	if tok == "" {
		return 0, false
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, false
	}
	return n, true
}

// registerIndex extracts the digit out of an @rN token. Callers must have
// already established the token is a valid register name.
func registerIndex(tok string) int {
	return int(tok[2] - '0')
}

// parsedOperands is the uniform shape every instruction reduces to before
// encoding: zero, one, or two operand tokens plus their addressing method.
type parsedOperands struct {
	hasSource bool
	sourceTok string
	sourceMethod AddressingMethod

	hasDest bool
	destTok string
	destMethod AddressingMethod
}

// parseInstructionOperands validates token count and comma placement for
// the instruction's operand group and extracts the operand tokens. It does
// NOT validate addressing-method legality; that is the caller's job so
// both passes can share the exact same classification logic.
func parseInstructionOperands(op Opcode, l Line, bus *DiagnosticsBus, lineNo int) (parsedOperands, bool) {
	var out parsedOperands

	switch groupOf(op) {
	case groupTwoOperand:
		if l.Count == CountFive || l.Count == CountTooMany {
			bus.Raise(DiagTooMuchWordsForInstruction, lineNo)
			return out, false
		}
		if l.Count == CountThree && l.W2 != "," && l.W3 != "," {
			bus.Raise(DiagCommaRequiredBetweenOperands, lineNo)
			return out, false
		}
		if l.Count != CountFour {
			bus.Raise(DiagInstructionShouldReceiveTwoOperands, lineNo)
			return out, false
		}
		if l.W3 != "," {
			bus.Raise(DiagCommaRequiredBetweenOperands, lineNo)
			return out, false
		}
		out.hasSource = true
		out.sourceTok = l.W2
		out.sourceMethod = classifyOperand(l.W2)
		out.hasDest = true
		out.destTok = l.W4
		out.destMethod = classifyOperand(l.W4)
		return out, true

	case groupOneOperand:
		if l.Count == CountFive || l.Count == CountTooMany {
			bus.Raise(DiagTooMuchWordsForInstruction, lineNo)
			return out, false
		}
		if l.Count != CountTwo {
			bus.Raise(DiagInstructionShouldReceiveOneOperand, lineNo)
			return out, false
		}
		out.hasDest = true
		out.destTok = l.W2
		out.destMethod = classifyOperand(l.W2)
		return out, true

	default: // groupZeroOperand
		if l.Count == CountFive || l.Count == CountTooMany {
			bus.Raise(DiagTooMuchWordsForInstruction, lineNo)
			return out, false
		}
		if l.Count != CountOne {
			bus.Raise(DiagInstructionShouldNotReceiveOperands, lineNo)
			return out, false
		}
		return out, true
	}
}

// validateAddressingMethods enforces the per-opcode addressing legality
// rules of spec.md §4.4.
func validateAddressingMethods(op Opcode, ops parsedOperands, bus *DiagnosticsBus, lineNo int) bool {
	switch op {
	case OpMov, OpAdd, OpSub:
		if ops.destMethod == AddrImmediate {
			bus.Raise(DiagInvalidAddressMethodForInstruction, lineNo)
			return false
		}
	case OpLea:
		if ops.sourceMethod != AddrDirect || ops.destMethod == AddrImmediate {
			bus.Raise(DiagInvalidAddressMethodForInstruction, lineNo)
			return false
		}
	case OpNot, OpClr, OpInc, OpDec, OpJmp, OpBne, OpRed, OpJsr:
		if ops.destMethod == AddrImmediate {
			bus.Raise(DiagInvalidAddressMethodForInstruction, lineNo)
			return false
		}
	}
	return true
}

// wordsForOperands returns how many additional words (beyond the first
// word) this operand shape occupies, per spec.md §4.4.1: one combined word
// when both operands are registers, one word per otherwise-present
// operand.
func wordsForOperands(ops parsedOperands) int {
	if ops.hasSource && ops.hasDest && ops.sourceMethod == AddrRegister && ops.destMethod == AddrRegister {
		return 1
	}
	n := 0
	if ops.hasSource {
		n++
	}
	if ops.hasDest {
		n++
	}
	return n
}
