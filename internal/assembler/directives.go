package assembler

import "strings"

// parseCommaSeparatedInts implements the .data operand grammar of
// spec.md §4.4: a non-empty, comma-separated list of signed integers, with
// no leading, trailing, or doubled commas, and no non-comma separators.
// It returns the parsed values and true if the tail was well-formed enough
// to keep going; any local error has already been raised on bus.
func parseCommaSeparatedInts(tail []string, bus *DiagnosticsBus, lineNo int) ([]int, bool) {
	if len(tail) == 0 {
		bus.Raise(DiagMustProvideValuesToData, lineNo)
		return nil, false
	}

	var values []int
	expectValue := true
	ok := true

	for _, tok := range tail {
		if tok == "," {
			if expectValue {
				bus.Raise(DiagInvalidCommaPosition, lineNo)
				ok = false
			}
			expectValue = true
			continue
		}
		if !expectValue {
			bus.Raise(DiagCommaRequiredBetweenValues, lineNo)
			ok = false
		}
		n, isNum := parseSignedInt(tok)
		if !isNum {
			bus.Raise(DiagDataNeedNumValue, lineNo)
			ok = false
		} else {
			values = append(values, n)
		}
		expectValue = false
	}
	if expectValue && len(tail) > 0 {
		// trailing comma
		bus.Raise(DiagInvalidCommaPosition, lineNo)
		ok = false
	}
	return values, ok
}

// parseCommaSeparatedLabels implements the shared .extern/.entry operand
// grammar: a non-empty, comma-separated list of valid label names.
func parseCommaSeparatedLabels(tail []string, bus *DiagnosticsBus, lineNo int, emptyKind DiagKind, maxLabelNameLength int) ([]string, bool) {
	if len(tail) == 0 {
		bus.Raise(emptyKind, lineNo)
		return nil, false
	}

	var names []string
	expectName := true
	ok := true

	for _, tok := range tail {
		if tok == "," {
			if expectName {
				bus.Raise(DiagInvalidCommaPosition, lineNo)
				ok = false
			}
			expectName = true
			continue
		}
		if !expectName {
			bus.Raise(DiagCommaRequiredBetweenValues, lineNo)
			ok = false
		}
		if !ValidLabelName(tok, maxLabelNameLength) {
			bus.Raise(DiagInvalidLabelNameInList, lineNo)
			ok = false
		} else {
			names = append(names, tok)
		}
		expectName = false
	}
	if expectName && len(tail) > 0 {
		bus.Raise(DiagInvalidCommaPosition, lineNo)
		ok = false
	}
	return names, ok
}

// parseStringLiteral implements the .string operand grammar of spec.md
// §4.4: remainder must be exactly a double-quoted literal with nothing but
// whitespace following the closing quote. raw is the unsplit remainder of
// the line after ".string", with leading/trailing whitespace untouched so
// quote positions are meaningful.
func parseStringLiteral(raw string, bus *DiagnosticsBus, lineNo int) (string, bool) {
	trimmed := strings.TrimLeft(raw, " \t")
	if !strings.HasPrefix(trimmed, "\"") {
		bus.Raise(DiagStringStructureNotValid, lineNo)
		return "", false
	}
	body := trimmed[1:]
	end := strings.IndexByte(body, '"')
	if end == -1 {
		bus.Raise(DiagStringMustEndInQuotes, lineNo)
		return "", false
	}
	content := body[:end]
	trailer := body[end+1:]
	if strings.TrimSpace(trailer) != "" {
		bus.Raise(DiagStringDirectiveAcceptsOneParameter, lineNo)
		return "", false
	}
	return content, true
}

// directiveTail returns every token following the directive name on a
// (possibly label-bearing) directive line, by re-splitting the raw line
// without the five-token cap Line imposes. hadLabel must reflect whether
// the line carried a label before DeleteLabel was called.
func directiveTail(raw string, hadLabel bool) []string {
	all := AllTokens(raw)
	skip := 1
	if hadLabel {
		skip = 2
	}
	if skip > len(all) {
		return nil
	}
	return all[skip:]
}

// stringDirectiveRemainder returns the raw line text following the
// ".string" token (or "label: .string" when label-bearing), preserving
// whitespace and quote characters for parseStringLiteral. It scans the raw
// bytes directly, rather than Fields/Join, so quote characters inside the
// string body are never disturbed.
func stringDirectiveRemainder(raw string, hadLabel bool) string {
	skip := 1
	if hadLabel {
		skip = 2
	}
	pos, n, count := 0, len(raw), 0
	for pos < n {
		for pos < n && isSpaceByte(raw[pos]) {
			pos++
		}
		if pos >= n {
			break
		}
		for pos < n && !isSpaceByte(raw[pos]) {
			pos++
		}
		count++
		if count == skip {
			return raw[pos:]
		}
	}
	return ""
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
