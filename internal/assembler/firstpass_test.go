package assembler

import "testing"

func runFirstPass(t *testing.T, lines []string) (*File, bool) {
	t.Helper()
	f := NewFile(DefaultLimits())
	ok := RunFirstPass(f, lines)
	return f, ok
}

func TestFirstPass_LabelOnDataDeclaresDataKind(t *testing.T) {
	f, ok := runFirstPass(t, []string{"X: .data 1,2,3"})
	if !ok {
		t.Fatalf("unexpected diagnostics: %v", f.Diags.All())
	}
	label, found := f.Symbols.Lookup("X")
	if !found || label.Kind != KindData {
		t.Fatalf("expected X declared as data, got %+v (found=%v)", label, found)
	}
	if len(f.Data) != 3 {
		t.Errorf("expected 3 data words, got %d", len(f.Data))
	}
}

func TestFirstPass_LabelOnInstructionDeclaresCodeKindAtBase(t *testing.T) {
	f, ok := runFirstPass(t, []string{"L: stop"})
	if !ok {
		t.Fatalf("unexpected diagnostics: %v", f.Diags.All())
	}
	label, found := f.Symbols.Lookup("L")
	if !found || label.Kind != KindCode || label.Address != Base {
		t.Fatalf("expected L at code/Base, got %+v (found=%v)", label, found)
	}
}

func TestFirstPass_StringAppendsNulTerminatedBytes(t *testing.T) {
	f, ok := runFirstPass(t, []string{`S: .string "hi"`})
	if !ok {
		t.Fatalf("unexpected diagnostics: %v", f.Diags.All())
	}
	want := []Word{'h', 'i', 0}
	if len(f.Data) != len(want) {
		t.Fatalf("got %v, want %v", f.Data, want)
	}
	for i := range want {
		if f.Data[i] != want[i] {
			t.Errorf("data[%d] = %v, want %v", i, f.Data[i], want[i])
		}
	}
}

func TestFirstPass_ExternDeclaresLabelsAtZero(t *testing.T) {
	f, ok := runFirstPass(t, []string{".extern A,B"})
	if !ok {
		t.Fatalf("unexpected diagnostics: %v", f.Diags.All())
	}
	for _, name := range []string{"A", "B"} {
		label, found := f.Symbols.Lookup(name)
		if !found || label.Kind != KindExtern || label.Address != 0 {
			t.Errorf("expected %s as extern at 0, got %+v (found=%v)", name, label, found)
		}
	}
	if !f.HasExterns() {
		t.Error("expected HasExterns true")
	}
}

func TestFirstPass_LabelOnExternLineRejected(t *testing.T) {
	f, ok := runFirstPass(t, []string{"X: .extern A"})
	if ok {
		t.Fatal("expected failure")
	}
	if f.Diags.All()[0].Kind != DiagCantDefineLabelBeforeExtern {
		t.Errorf("unexpected diagnostic: %v", f.Diags.All()[0].Kind)
	}
	// The extern declaration itself should still have gone through.
	if _, found := f.Symbols.Lookup("A"); !found {
		t.Error("expected A still declared as extern despite the label error")
	}
}

func TestFirstPass_LabelOnEntryLineRejected(t *testing.T) {
	f, ok := runFirstPass(t, []string{"X: .entry A"})
	if ok {
		t.Fatal("expected failure")
	}
	if f.Diags.All()[0].Kind != DiagCantDefineLabelBeforeEntry {
		t.Errorf("unexpected diagnostic: %v", f.Diags.All()[0].Kind)
	}
}

func TestFirstPass_InvalidLabelNameRaisesButContinues(t *testing.T) {
	f, ok := runFirstPass(t, []string{"1bad: .data 7", "GOOD: .data 8"})
	if ok {
		t.Fatal("expected failure")
	}
	if _, found := f.Symbols.Lookup("GOOD"); !found {
		t.Error("expected processing to continue past the bad label")
	}
	if len(f.Data) != 2 {
		t.Errorf("expected both data values appended, got %v", f.Data)
	}
}

func TestFirstPass_DuplicateLabelRaisesOnSecondDeclaration(t *testing.T) {
	f, ok := runFirstPass(t, []string{"X: .data 1", "X: .data 2"})
	if ok {
		t.Fatal("expected failure")
	}
	count := 0
	for _, d := range f.Diags.All() {
		if d.Kind == DiagLabelAlreadyExists {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one duplicate diagnostic, got %d", count)
	}
}

func TestFirstPass_DataRebasedPastCode(t *testing.T) {
	f, ok := runFirstPass(t, []string{"stop", "X: .data 9"})
	if !ok {
		t.Fatalf("unexpected diagnostics: %v", f.Diags.All())
	}
	label, found := f.Symbols.Lookup("X")
	if !found || label.Address != Base+1 {
		t.Fatalf("expected X rebased to Base+1, got %+v (found=%v)", label, found)
	}
}

func TestFirstPass_CapacityOverflowRaisesOnce(t *testing.T) {
	f := NewFile(Limits{Base: Base, Capacity: 2, MaxLabelNameLength: MaxLabelNameLength})
	ok := RunFirstPass(f, []string{".data 1,2,3,4"})
	if ok {
		t.Fatal("expected failure")
	}
	count := 0
	for _, d := range f.Diags.All() {
		if d.Kind == DiagMemoryImageOverflow {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one overflow diagnostic, got %d", count)
	}
	if len(f.Data) != 2 {
		t.Errorf("expected writes to stop at capacity, got %v", f.Data)
	}
}

func TestFirstPass_EntryLineIsNoOp(t *testing.T) {
	f, ok := runFirstPass(t, []string{".entry M", "M: stop"})
	if !ok {
		t.Fatalf("unexpected diagnostics: %v", f.Diags.All())
	}
	label, found := f.Symbols.Lookup("M")
	if !found || label.Kind != KindCode {
		t.Fatalf("expected M to remain KindCode after first pass, got %+v (found=%v)", label, found)
	}
}

func TestFirstPass_BlankAndCommentLinesAreSkipped(t *testing.T) {
	f, ok := runFirstPass(t, []string{"", "   ", "; a comment", "stop"})
	if !ok {
		t.Fatalf("unexpected diagnostics: %v", f.Diags.All())
	}
	if len(f.Code) != 1 {
		t.Errorf("expected exactly one code word, got %d", len(f.Code))
	}
}
