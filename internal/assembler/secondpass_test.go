package assembler

import "testing"

func runBothPasses(t *testing.T, lines []string) (*File, bool) {
	t.Helper()
	f := NewFile(DefaultLimits())
	firstOK := RunFirstPass(f, lines)
	ok := RunSecondPass(f, lines, firstOK)
	return f, ok
}

func TestSecondPass_EntryPromotesExistingLabel(t *testing.T) {
	f, ok := runBothPasses(t, []string{".entry M", "M: stop"})
	if !ok {
		t.Fatalf("unexpected diagnostics: %v", f.Diags.All())
	}
	label, found := f.Symbols.Lookup("M")
	if !found || label.Kind != KindEntry {
		t.Fatalf("expected M promoted to entry, got %+v (found=%v)", label, found)
	}
	if !f.HasEntries() {
		t.Error("expected HasEntries true")
	}
}

func TestSecondPass_EntryOnMissingLabelRaisesCantFind(t *testing.T) {
	f, ok := runBothPasses(t, []string{".entry GHOST"})
	if ok {
		t.Fatal("expected failure")
	}
	if f.Diags.All()[0].Kind != DiagCantFindLabelToEntry {
		t.Errorf("unexpected diagnostic: %v", f.Diags.All()[0].Kind)
	}
}

func TestSecondPass_ResolvesDirectOperandToDataLabel(t *testing.T) {
	f, ok := runBothPasses(t, []string{"prn X", "X: .data 7"})
	if !ok {
		t.Fatalf("unexpected diagnostics: %v", f.Diags.All())
	}
	if len(f.Code) != 2 {
		t.Fatalf("expected 2 code words, got %d", len(f.Code))
	}
	operand := f.Code[1]
	if enc := operand & 0x3; enc != Word(Relocatable) {
		t.Errorf("expected relocatable encoding, got %d", enc)
	}
	label, _ := f.Symbols.Lookup("X")
	addr := (operand >> 2) & 0x3FF
	if int(addr) != label.Address {
		t.Errorf("expected resolved address %d, got %d", label.Address, addr)
	}
}

func TestSecondPass_RecordsExternUseSiteInEncounterOrder(t *testing.T) {
	f, ok := runBothPasses(t, []string{".extern A,B", "jmp A", "jmp B"})
	if !ok {
		t.Fatalf("unexpected diagnostics: %v", f.Diags.All())
	}
	if len(f.ExternUses) != 2 {
		t.Fatalf("expected 2 extern uses, got %v", f.ExternUses)
	}
	if f.ExternUses[0].Name != "A" || f.ExternUses[1].Name != "B" {
		t.Errorf("expected A then B, got %+v", f.ExternUses)
	}
	if f.ExternUses[0].Address != Base+1 || f.ExternUses[1].Address != Base+3 {
		t.Errorf("unexpected extern use addresses: %+v", f.ExternUses)
	}
}

func TestSecondPass_UnresolvedDirectLabelRaisesLabelNotFound(t *testing.T) {
	f, ok := runBothPasses(t, []string{"jmp NOWHERE"})
	if ok {
		t.Fatal("expected failure")
	}
	if f.Diags.All()[0].Kind != DiagLabelNotFound {
		t.Errorf("unexpected diagnostic: %v", f.Diags.All()[0].Kind)
	}
}

func TestSecondPass_DoesNotDoubleReportFirstPassErrors(t *testing.T) {
	f, ok := runBothPasses(t, []string{"mov @r1,5"})
	if ok {
		t.Fatal("expected failure")
	}
	count := 0
	for _, d := range f.Diags.All() {
		if d.Kind == DiagInvalidAddressMethodForInstruction {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one diagnostic despite two passes visiting the line, got %d", count)
	}
}

func TestSecondPass_ReturnsFalseWhenFirstPassFailedEvenIfSecondPassClean(t *testing.T) {
	f, ok := runBothPasses(t, []string{"1bad: stop"})
	if ok {
		t.Fatal("expected overall failure due to first-pass error")
	}
	if f.Diags.Count() != 1 {
		t.Errorf("expected exactly one diagnostic total, got %d: %v", f.Diags.Count(), f.Diags.All())
	}
}
