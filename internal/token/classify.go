package token

// keywords maps source text to its keyword Kind; matching is exact and case
// sensitive.
var keywords = map[string]Kind{
	"IOL":   IOL,
	"LOI":   LOI,
	"INT":   INT,
	"STR":   STR,
	"IS":    IS,
	"INTO":  INTO,
	"BEG":   BEG,
	"PRINT": PRINT,
	"ADD":   ADD,
	"SUB":   SUB,
	"MULT":  MULT,
	"DIV":   DIV,
	"MOD":   MOD,
	"NEWLN": NEWLN,
}

// Keyword returns the keyword kind of word, if any.
func Keyword(word string) (Kind, bool) {
	k, ok := keywords[word]
	return k, ok
}

// Classify determines the kind of a single whitespace-free word.
//
// Keywords bypass the scan. Otherwise one forward pass walks the states
// EMPTY -> INT_LIT | IDENT -> ERR_LEX:
//
//	EMPTY   + digit  -> INT_LIT     EMPTY   + letter -> IDENT
//	INT_LIT + digit  -> INT_LIT     INT_LIT + letter -> ERR_LEX
//	IDENT   + digit  -> IDENT       IDENT   + letter -> IDENT
//	any     + other  -> ERR_LEX     ERR_LEX is final
func Classify(word string) Kind {
	if kw, ok := Keyword(word); ok {
		return kw
	}
	state := Invalid // EMPTY
	for i := 0; i < len(word) && state != ErrLex; i++ {
		switch c := word[i]; {
		case isDigit(c):
			if state == Invalid {
				state = IntLit
			}
		case isLetter(c):
			switch state {
			case Invalid:
				state = Ident
			case IntLit:
				state = ErrLex
			}
		default:
			state = ErrLex
		}
	}
	if state == Invalid {
		return ErrLex
	}
	return state
}

func isLetter(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }
func isDigit(c byte) bool  { return '0' <= c && c <= '9' }

// IsDigits reports whether s is a non-empty run of ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
