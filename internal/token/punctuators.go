package token

// punctuatorEntry is one row of the punctuator table.
type punctuatorEntry struct {
	text string
	kind Kind
}

// punctuatorTable lists every punctuator this toolchain recognizes,
// longest text first, so the lexer's maximal-munch scan (spec.md §4.2:
// "the first prefix match in source order wins") always prefers the
// longer match — "<<=" before "<<" before "<". Preprocessor-only tokens
// (#, ##) are omitted; preprocessing is out of scope (spec.md §1).
var punctuatorTable = []punctuatorEntry{
	{"<<=", LShiftEqual},
	{">>=", RShiftEqual},
	{"...", Ellipsis},

	{"->", Arrow},
	{"++", PlusPlus},
	{"--", MinusMinus},
	{"<<", LShift},
	{">>", RShift},
	{"<=", LessEqual},
	{">=", GreaterEqual},
	{"==", EqualEqual},
	{"!=", BangEqual},
	{"&&", AmpAmp},
	{"||", PipePipe},
	{"+=", PlusEqual},
	{"-=", MinusEqual},
	{"*=", StarEqual},
	{"/=", SlashEqual},
	{"%=", PercentEqual},
	{"&=", AmpEqual},
	{"|=", PipeEqual},
	{"^=", CaretEqual},

	{"(", LParen},
	{")", RParen},
	{"[", LBracket},
	{"]", RBracket},
	{"{", LBrace},
	{"}", RBrace},
	{",", Comma},
	{";", Semicolon},
	{":", Colon},
	{"?", Question},
	{".", Dot},
	{"+", Plus},
	{"-", Minus},
	{"*", Star},
	{"/", Slash},
	{"%", Percent},
	{"&", Amp},
	{"|", Pipe},
	{"^", Caret},
	{"~", Tilde},
	{"!", Bang},
	{"=", Equal},
	{"<", Less},
	{">", Greater},
}

// MatchPunctuator returns the longest punctuator from punctuatorTable that
// is a prefix of s, and its byte length, or ok=false if none matches.
func MatchPunctuator(s string) (kind Kind, length int, ok bool) {
	for _, e := range punctuatorTable {
		if len(s) >= len(e.text) && s[:len(e.text)] == e.text {
			return e.kind, len(e.text), true
		}
	}
	return 0, 0, false
}
