// Package lexer turns Pyrite source text into a token stream.
package lexer

import (
	"strconv"
	"strings"

	"github.com/neilm5/pyrite/errs"
	"github.com/neilm5/pyrite/token"
)

const (
	letters      = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits       = "0123456789"
	letterDigits = letters + digits
)

// Lexer scans a fixed source string one byte at a time in a single pass,
// with no lookback past the current character.
type Lexer struct {
	src     string
	pos     int
	current byte
	hasMore bool
}

func New(src string) *Lexer {
	l := &Lexer{src: src, pos: -1}
	l.advance()
	return l
}

func (l *Lexer) advance() {
	l.pos++
	if l.pos < len(l.src) {
		l.current = l.src[l.pos]
		l.hasMore = true
	} else {
		l.current = 0
		l.hasMore = false
	}
}

func (l *Lexer) peek() (byte, bool) {
	if l.pos+1 < len(l.src) {
		return l.src[l.pos+1], true
	}
	return 0, false
}

// Tokenize scans the whole source and returns its token stream, terminated
// by a single token.EOF token.
func (l *Lexer) Tokenize() ([]token.Token, *errs.Error) {
	var tokens []token.Token

	for l.hasMore {
		switch {
		case l.current == ' ' || l.current == '\t' || l.current == '\n':
			l.advance()

		case l.current == '#':
			for l.hasMore && l.current != '\n' {
				l.advance()
			}

		case l.current == '/' && peekIs(l, '#'):
			l.advance()
			l.advance()
			for l.hasMore {
				if l.current == '#' && peekIs(l, '/') {
					l.advance()
					l.advance()
					break
				}
				l.advance()
			}
			// If EOF is reached first, the block comment is left
			// unterminated and silently swallows the rest of the source.

		case strings.IndexByte(digits, l.current) >= 0:
			tokens = append(tokens, l.digitize())

		case strings.IndexByte(letters, l.current) >= 0:
			tokens = append(tokens, l.identifier())

		case l.current == '"' || l.current == '\'':
			tok, err := l.stringLiteral()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)

		case l.current == '=':
			l.advance()
			if l.current == '=' {
				tokens = append(tokens, token.New(token.EQ))
				l.advance()
			} else {
				tokens = append(tokens, token.New(token.ASSIGN))
			}

		case l.current == '!':
			l.advance()
			if l.current == '=' {
				tokens = append(tokens, token.New(token.NEQ))
				l.advance()
			}
			// A bare '!' not followed by '=' emits no token and is
			// silently skipped; the NOT token type is never produced.

		case l.current == '<':
			l.advance()
			if l.current == '=' {
				tokens = append(tokens, token.New(token.LTE))
				l.advance()
			} else {
				tokens = append(tokens, token.New(token.LT))
			}

		case l.current == '>':
			l.advance()
			if l.current == '=' {
				tokens = append(tokens, token.New(token.GTE))
				l.advance()
			} else {
				tokens = append(tokens, token.New(token.GT))
			}

		case l.current == '~':
			l.advance()
			if l.current == '=' {
				tokens = append(tokens, token.New(token.APPROX))
				l.advance()
			} else {
				tokens = append(tokens, token.New(token.AVERAGE))
			}

		case l.current == '&':
			tokens = append(tokens, token.New(token.AND))
			l.advance()

		case l.current == '|':
			tokens = append(tokens, token.New(token.OR))
			l.advance()

		case l.current == '+':
			l.advance()
			if l.current == '+' {
				tokens = append(tokens, token.New(token.INCR))
				l.advance()
			} else {
				tokens = append(tokens, token.New(token.PLUS))
			}

		case l.current == '-':
			l.advance()
			if l.current == '-' {
				tokens = append(tokens, token.New(token.DECR))
				l.advance()
			} else {
				tokens = append(tokens, token.New(token.MINUS))
			}

		case l.current == '*':
			tokens = append(tokens, token.New(token.MUL))
			l.advance()

		case l.current == '^':
			tokens = append(tokens, token.New(token.EXP))
			l.advance()

		case l.current == '/':
			l.advance()
			if l.current == '/' {
				tokens = append(tokens, token.New(token.FDIV))
				l.advance()
			} else {
				tokens = append(tokens, token.New(token.DIV))
			}

		case l.current == '%':
			tokens = append(tokens, token.New(token.MOD))
			l.advance()

		case l.current == '(':
			tokens = append(tokens, token.New(token.LPAREN))
			l.advance()
		case l.current == ')':
			tokens = append(tokens, token.New(token.RPAREN))
			l.advance()
		case l.current == '{':
			tokens = append(tokens, token.New(token.LBRACE))
			l.advance()
		case l.current == '}':
			tokens = append(tokens, token.New(token.RBRACE))
			l.advance()
		case l.current == '[':
			tokens = append(tokens, token.New(token.LSQUARE))
			l.advance()
		case l.current == ']':
			tokens = append(tokens, token.New(token.RSQUARE))
			l.advance()
		case l.current == ',':
			tokens = append(tokens, token.New(token.COMMA))
			l.advance()

		default:
			char := l.current
			l.advance()
			return nil, errs.Syntax("Illegal character '%c'", char)
		}
	}

	tokens = append(tokens, token.New(token.EOF))
	return tokens, nil
}

func peekIs(l *Lexer, want byte) bool {
	c, ok := l.peek()
	return ok && c == want
}

func (l *Lexer) digitize() token.Token {
	var sb strings.Builder
	dotCount := 0

	for l.hasMore && (strings.IndexByte(digits, l.current) >= 0 || l.current == '.') {
		if l.current == '.' {
			if dotCount == 1 {
				break
			}
			dotCount++
			sb.WriteByte('.')
		} else {
			sb.WriteByte(l.current)
		}
		l.advance()
	}

	numStr := sb.String()
	if dotCount == 0 {
		n, _ := strconv.ParseInt(numStr, 10, 64)
		return token.Token{Type: token.INT, Int: n}
	}
	f, _ := strconv.ParseFloat(numStr, 64)
	return token.Token{Type: token.FLOAT, Float: f}
}

func (l *Lexer) identifier() token.Token {
	var sb strings.Builder

	for l.hasMore && (strings.IndexByte(letterDigits, l.current) >= 0 || l.current == '_') {
		sb.WriteByte(l.current)
		l.advance()
	}

	ident := sb.String()
	typ := token.Lookup(ident)
	if typ == token.ID {
		return token.Token{Type: token.ID, Literal: ident}
	}
	return token.Token{Type: typ, Literal: ident}
}

// stringLiteral consumes a quoted string. It deliberately accepts a closing
// quote different from the opening one (e.g. 'foo") — the scan only checks
// for "not a quote character", never which one opened the literal.
func (l *Lexer) stringLiteral() (token.Token, *errs.Error) {
	l.advance()
	var sb strings.Builder

	for l.current != '"' && l.current != '\'' {
		if !l.hasMore {
			return token.Token{}, errs.Syntax("Unterminated string")
		}
		sb.WriteByte(l.current)
		l.advance()
	}
	l.advance()

	return token.Token{Type: token.STRING, Literal: sb.String()}, nil
}
