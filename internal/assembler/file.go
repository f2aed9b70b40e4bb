package assembler

// ExternUse records one use site of an external label, encountered during
// the second pass, in encounter order (spec.md §6.4).
type ExternUse struct {
	Name    string
	Address int
}

// Limits bounds the tunable aspects of translation that spec.md's original
// source exposes as named constants (internal/config loads these from an
// optional TOML file and hands them in here; a zero MaxLineLength or
// MacroBodyLimit disables that check, while a zero MaxLabelNameLength
// makes every label name invalid).
type Limits struct {
	Base               int
	Capacity           int
	MaxLabelNameLength int
	MaxLineLength      int
	MacroBodyLimit     int
}

// DefaultLimits mirrors spec.md's built-in constants, with the optional
// line-length and macro-body diagnostics left disabled.
func DefaultLimits() Limits {
	return Limits{
		Base:               Base,
		Capacity:           Capacity,
		MaxLabelNameLength: MaxLabelNameLength,
	}
}

// File holds every piece of per-file state the translation driver threads
// through macro expansion and both passes (spec.md §3, §5). It is created
// fresh for each input file and discarded at the end of translation; there
// is no state shared across files.
type File struct {
	Symbols *SymbolTable
	Diags   *DiagnosticsBus

	Code []Word
	Data []Word

	limits Limits

	hasExterns bool
	hasEntries bool

	ExternUses []ExternUse

	overflowRaised bool
}

// NewFile creates an empty file context bound to the given limits
// (spec.md §3: base 100, capacity 924 words in source; internal/config may
// override these).
func NewFile(limits Limits) *File {
	return &File{
		Symbols: NewSymbolTable(),
		Diags:   &DiagnosticsBus{},
		limits:  limits,
	}
}

// IC returns the current instruction counter, derived from how many code
// words have been laid down so far (first-pass view).
func (f *File) IC() int {
	return f.limits.Base + len(f.Code)
}

// DC returns the current data counter.
func (f *File) DC() int {
	return len(f.Data)
}

// HasExterns reports whether any .extern directive was processed.
func (f *File) HasExterns() bool {
	return f.hasExterns
}

// HasEntries reports whether any .entry directive was processed.
func (f *File) HasEntries() bool {
	return f.hasEntries
}

// appendCode appends one word to the code image, raising
// DiagMemoryImageOverflow (once) and refusing the write if the combined
// code+data length would exceed capacity.
func (f *File) appendCode(w Word, lineNo int) bool {
	if !f.reserve(lineNo) {
		return false
	}
	f.Code = append(f.Code, w)
	return true
}

// appendData appends one word to the data image, subject to the same
// capacity guard as appendCode.
func (f *File) appendData(w Word, lineNo int) bool {
	if !f.reserve(lineNo) {
		return false
	}
	f.Data = append(f.Data, w)
	return true
}

func (f *File) reserve(lineNo int) bool {
	if len(f.Code)+len(f.Data) >= f.limits.Capacity {
		if !f.overflowRaised {
			f.Diags.Raise(DiagMemoryImageOverflow, lineNo)
			f.overflowRaised = true
		}
		return false
	}
	return true
}
