package diag

// Kind enumerates every diagnostic the toolchain can emit. The set is
// closed per spec.md §3/§7: callers switch on it exhaustively rather than
// stringly-typed messages.
type Kind int

const (
	// Option/argument diagnostics (external driver, spec.md §6, wired via
	// internal/options).
	TooManyInputs Kind = iota
	UnknownOption
	MissingArgument
	UnexpectedArgument
	InvalidArgument

	// Lexer diagnostics.
	UnknownToken
	InvalidConstantSuffix
	InvalidCharacterConstant
	InvalidStringCharacter
	UnfinishedString
	ConstantTooLarge
	SeparatorAfterBase
	DuplicateSeparator
	TrailingSeparator

	// Parser diagnostics.
	UnexpectedToken
	UnmatchedParenthesis
	MultipleConst
	MultipleRestrict
	MultipleStatic

	// Assembler diagnostics.
	InvalidRegister
	InvalidImmediate
	MissingSpace
	MissingComma
	ExpectedRegister
	InvalidSP
	InvalidZR
	InvalidRegisterWidth
	InvalidExtension
	ExpectedSP
	ExpectedImmediate
	UnexpectedCharactersAfterInstruction
	InvalidLabel
	DuplicateLabel
	UnknownInstruction
)

var kindNames = map[Kind]string{
	TooManyInputs:            "too-many-inputs",
	UnknownOption:            "unknown-option",
	MissingArgument:          "missing-argument",
	UnexpectedArgument:       "unexpected-argument",
	InvalidArgument:          "invalid-argument",
	UnknownToken:             "unknown-token",
	InvalidConstantSuffix:    "invalid-constant-suffix",
	InvalidCharacterConstant: "invalid-character-constant",
	InvalidStringCharacter:   "invalid-string-character",
	UnfinishedString:         "unfinished-string",
	ConstantTooLarge:         "constant-too-large",
	SeparatorAfterBase:       "separator-after-base",
	DuplicateSeparator:       "duplicate-separator",
	TrailingSeparator:        "trailing-separator",

	UnexpectedToken:      "unexpected-token",
	UnmatchedParenthesis: "unmatched-parenthesis",
	MultipleConst:        "multiple-const",
	MultipleRestrict:     "multiple-restrict",
	MultipleStatic:       "multiple-static",

	InvalidRegister:                       "invalid-register",
	InvalidImmediate:                      "invalid-immediate",
	MissingSpace:                          "missing-space",
	MissingComma:                          "missing-comma",
	ExpectedRegister:                      "expected-register",
	InvalidSP:                             "invalid-sp",
	InvalidZR:                             "invalid-zr",
	InvalidRegisterWidth:                  "invalid-register-width",
	InvalidExtension:                      "invalid-extension",
	ExpectedSP:                            "expected-sp",
	ExpectedImmediate:                     "expected-immediate",
	UnexpectedCharactersAfterInstruction:  "unexpected-characters-after-instruction",
	InvalidLabel:                          "invalid-label",
	DuplicateLabel:                        "duplicate-label",
	UnknownInstruction:                    "unknown-instruction",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown-diagnostic"
}
