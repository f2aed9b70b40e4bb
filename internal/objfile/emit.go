// Package objfile serialises a translated file's code and data images into
// the base-64 object format and the optional entry/extern side artefacts
// (spec.md §4.6, §6.2-§6.4).
package objfile

import (
	"fmt"
	"strings"

	"github.com/anvil-labs/microasm/internal/assembler"
)

const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// EncodeWord renders a 12-bit word as two base-64 characters: the first
// encodes bits 6-11, the second bits 0-5 (spec.md §6.2).
func EncodeWord(w assembler.Word) string {
	m := w.Mask()
	hi := (m >> 6) & 0x3F
	lo := m & 0x3F
	return string([]byte{base64Alphabet[hi], base64Alphabet[lo]})
}

// Object renders the object-file content: a header line giving code and
// data word counts, followed by one base-64 line per word, code words
// first.
func Object(f *assembler.File) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d\t%d\n", len(f.Code), len(f.Data))
	for _, w := range f.Code {
		sb.WriteString(EncodeWord(w))
		sb.WriteByte('\n')
	}
	for _, w := range f.Data {
		sb.WriteString(EncodeWord(w))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// EntryListing renders the `<base>.ent` content. It returns ("", false)
// when no .entry directive was processed, per spec.md §6.3.
func EntryListing(f *assembler.File) (string, bool) {
	if !f.HasEntries() {
		return "", false
	}
	listing := f.Symbols.EntryListing()
	if listing == "" {
		return "", false
	}
	return listing, true
}

// ExternListing renders the `<base>.ext` content: one line per use site of
// an external label, in encounter order. It returns ("", false) when the
// file declared no externs or no use site was encoded, per spec.md §6.4.
func ExternListing(f *assembler.File) (string, bool) {
	if !f.HasExterns() || len(f.ExternUses) == 0 {
		return "", false
	}
	var sb strings.Builder
	for _, use := range f.ExternUses {
		fmt.Fprintf(&sb, "%s\t%d\n", use.Name, use.Address)
	}
	return sb.String(), true
}
