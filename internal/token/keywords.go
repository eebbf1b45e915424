package token

import "sort"

type keywordEntry struct {
	text string
	kind Kind
}

// keywordTable lists every reserved word this toolchain recognizes, through
// C23 (spec.md §3: "every reserved C keyword through C23"). It is kept
// sorted by (length, lexicographic bytes) so LookupKeyword can binary
// search it, per spec.md §4.2 ("ordered to permit binary search by
// (length, lexicographic bytes)").
var keywordTable = func() []keywordEntry {
	entries := []keywordEntry{
		{"auto", KwAuto},
		{"break", KwBreak},
		{"case", KwCase},
		{"char", KwChar},
		{"const", KwConst},
		{"continue", KwContinue},
		{"default", KwDefault},
		{"do", KwDo},
		{"double", KwDouble},
		{"else", KwElse},
		{"enum", KwEnum},
		{"extern", KwExtern},
		{"float", KwFloat},
		{"for", KwFor},
		{"goto", KwGoto},
		{"if", KwIf},
		{"inline", KwInline},
		{"int", KwInt},
		{"long", KwLong},
		{"register", KwRegister},
		{"restrict", KwRestrict},
		{"return", KwReturn},
		{"short", KwShort},
		{"signed", KwSigned},
		{"sizeof", KwSizeof},
		{"static", KwStatic},
		{"struct", KwStruct},
		{"switch", KwSwitch},
		{"typedef", KwTypedef},
		{"union", KwUnion},
		{"unsigned", KwUnsigned},
		{"void", KwVoid},
		{"volatile", KwVolatile},
		{"while", KwWhile},

		// C11/C17 underscore-prefixed keywords and their C23 bare aliases.
		{"_Alignas", KwAlignas},
		{"alignas", KwAlignas},
		{"_Alignof", KwAlignof},
		{"alignof", KwAlignof},
		{"_Atomic", KwAtomic},
		{"_Bool", KwBool},
		{"bool", KwBool},
		{"_Complex", KwComplex},
		{"_Generic", KwGeneric},
		{"_Imaginary", KwImaginary},
		{"_Noreturn", KwNoreturn},
		{"_Static_assert", KwStaticAssert},
		{"static_assert", KwStaticAssert},
		{"_Thread_local", KwThreadLocal},
		{"thread_local", KwThreadLocal},

		// C23 additions.
		{"_BitInt", KwBitInt},
		{"constexpr", KwConstexpr},
		{"false", KwFalse},
		{"true", KwTrue},
		{"nullptr", KwNullptr},
		{"typeof", KwTypeof},
		{"typeof_unqual", KwTypeofUnqual},
	}
	sort.Slice(entries, func(i, j int) bool {
		if len(entries[i].text) != len(entries[j].text) {
			return len(entries[i].text) < len(entries[j].text)
		}
		return entries[i].text < entries[j].text
	})
	return entries
}()

var keywordText = func() map[Kind]string {
	m := make(map[Kind]string, len(keywordTable))
	for _, e := range keywordTable {
		if _, ok := m[e.kind]; !ok {
			m[e.kind] = e.text
		}
	}
	return m
}()

// LookupKeyword binary searches keywordTable for text, first narrowing to
// entries of the same length (the table is sorted length-major) and then
// to the lexicographic match within that length band.
func LookupKeyword(text string) (Kind, bool) {
	lo := sort.Search(len(keywordTable), func(i int) bool {
		return len(keywordTable[i].text) >= len(text)
	})
	hi := sort.Search(len(keywordTable), func(i int) bool {
		return len(keywordTable[i].text) > len(text)
	})
	band := keywordTable[lo:hi]
	idx := sort.Search(len(band), func(i int) bool {
		return band[i].text >= text
	})
	if idx < len(band) && band[idx].text == text {
		return band[idx].kind, true
	}
	return Identifier, false
}
