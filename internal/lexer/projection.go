package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jcorbin/goiol/internal/token"
)

// Project renders src with every non-whitespace word replaced by the name of
// its token kind. Whitespace is copied through unchanged, so the result lines
// up with the source word for word.
func Project(src string, toks []token.Token) string {
	var sb strings.Builder
	sb.Grow(len(src))
	next := 0
	for i := 0; i < len(src); {
		r, n := utf8.DecodeRuneInString(src[i:])
		if unicode.IsSpace(r) {
			sb.WriteString(src[i : i+n])
			i += n
			continue
		}
		j := i + n
		for j < len(src) {
			r, n := utf8.DecodeRuneInString(src[j:])
			if unicode.IsSpace(r) {
				break
			}
			j += n
		}
		if next < len(toks) && toks[next].Kind != token.End {
			sb.WriteString(toks[next].Kind.String())
			next++
		} else {
			sb.WriteString(src[i:j])
		}
		i = j
	}
	return sb.String()
}

// ReadProjection reads a projection back into a token stream. Lexemes are the
// kind names themselves, so the result carries structure but no identities.
func ReadProjection(text string) ([]token.Token, error) {
	var toks []token.Token
	line := 0
	for i, ln := range strings.Split(text, "\n") {
		line = i + 1
		for _, word := range strings.Fields(ln) {
			kind, ok := token.Lookup(word)
			if !ok || kind == token.End {
				return nil, projectionError{line, word}
			}
			toks = append(toks, token.Token{Kind: kind, Lexeme: word, Line: line})
		}
	}
	toks = append(toks, token.Token{Kind: token.End, Line: line})
	return toks, nil
}

type projectionError struct {
	line int
	word string
}

func (pe projectionError) Error() string {
	return fmt.Sprintf("line %v: %q is not a token kind", pe.line, pe.word)
}
