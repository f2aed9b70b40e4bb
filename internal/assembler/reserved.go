package assembler

// MaxLabelNameLength is the exclusive upper bound on label and macro name
// length (spec.md §7: "length < 32").
const MaxLabelNameLength = 32

var directiveNames = map[string]bool{
	".data": true, ".string": true, ".entry": true, ".extern": true,
}

var macroKeywords = map[string]bool{
	"mcro": true, "endmcro": true,
}

var registerNames = map[string]bool{
	"@r0": true, "@r1": true, "@r2": true, "@r3": true,
	"@r4": true, "@r5": true, "@r6": true, "@r7": true,
}

// IsReservedWord reports whether name is a directive, macro keyword,
// register, or opcode mnemonic, and therefore cannot be used as a label or
// macro name. All of @r0..@r7 are treated as reserved, resolving the open
// question spec.md §9 flags about the original source's inconsistent
// register reservation.
func IsReservedWord(name string) bool {
	if directiveNames[name] || macroKeywords[name] || registerNames[name] {
		return true
	}
	_, isOpcode := LookupOpcode(name)
	return isOpcode
}

// ValidLabelName reports whether name satisfies spec.md §7's label-naming
// rule: starts with a letter, contains only letters and digits, is shorter
// than maxLen, and is not a reserved word.
func ValidLabelName(name string, maxLen int) bool {
	if len(name) == 0 || len(name) >= maxLen {
		return false
	}
	if !isLetter(rune(name[0])) {
		return false
	}
	for _, r := range name {
		if !isLetter(r) && !isDigit(r) {
			return false
		}
	}
	return !IsReservedWord(name)
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
