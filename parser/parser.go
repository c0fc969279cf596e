// Package parser builds an ast.Node tree from a token stream using
// recursive descent, matching Pyrite's flat operator-precedence grammar:
// every binary operator — +  -  ~  ==  !=  <  <=  >  >=  &  |  *  /  //
// %  ^ — folds left-to-right at a single precedence level. There is no
// conventional tiering between additive/comparison and multiplicative
// operators.
package parser

import (
	"fmt"

	"github.com/neilm5/pyrite/ast"
	"github.com/neilm5/pyrite/errs"
	"github.com/neilm5/pyrite/token"
)

// Parser consumes a fixed token slice with one token of lookahead.
type Parser struct {
	tokens  []token.Token
	index   int
	current token.Token
}

func New(tokens []token.Token) *Parser {
	p := &Parser{tokens: tokens, index: -1}
	p.advance()
	return p
}

// Parse parses the full program as a list of top-level statement/expression
// nodes and requires the stream to end exactly at EOF.
func Parse(tokens []token.Token) ([]ast.Node, *errs.Error) {
	p := New(tokens)
	nodes, err := p.ParseProgram()
	if err != nil {
		return nil, err
	}
	if p.current.Type != token.EOF {
		return nil, errs.Syntax("Unexpected token '%s'", p.current.Type)
	}
	return nodes, nil
}

func (p *Parser) advance() token.Token {
	p.index++
	if p.index < len(p.tokens) {
		p.current = p.tokens[p.index]
	}
	return p.current
}

// ParseProgram parses the statement list at the top level.
func (p *Parser) ParseProgram() ([]ast.Node, *errs.Error) {
	return p.statements()
}

func (p *Parser) statements() ([]ast.Node, *errs.Error) {
	var stmts []ast.Node
	for p.current.Type != token.RBRACE && p.current.Type != token.EOF {
		expr, err := p.expr()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, expr)
	}
	return stmts, nil
}

func (p *Parser) expect(typ token.Type, expected string) (token.Token, *errs.Error) {
	if p.current.Type != typ {
		return token.Token{}, errs.Syntax("Expected '%s'", expected)
	}
	tok := p.current
	p.advance()
	return tok, nil
}

// expr parses statement-level constructs (if/while/for/func/var/over/con)
// and falls through to the single flat binary-operator tier: every binary
// operator — +  -  ~  ==  !=  <  <=  >  >=  &  |  *  /  //  %  ^ — folds
// left-to-right at the same precedence. This is deliberately NOT the
// conventional two-tier split a reader might expect from "term"/"factor"
// naming: `2 + 3 * 4` must evaluate as `(2 + 3) * 4 = 20`, so the fold
// cannot give `*` a tighter binding than `+`.
func (p *Parser) expr() (ast.Node, *errs.Error) {
	switch p.current.Type {
	case token.IF:
		return p.ifExpr()
	case token.WHILE:
		return p.whileExpr()
	case token.FOR:
		return p.forExpr()
	case token.FUNC:
		return p.functionDef()
	case token.VAR:
		return p.varAssign(false)
	case token.OVER:
		return p.varAssign(true)
	case token.CONST:
		return p.constAssign()
	}

	return p.binOp(p.factor, token.PLUS, token.MINUS, token.AVERAGE, token.EQ, token.NEQ,
		token.LT, token.LTE, token.GT, token.GTE, token.APPROX, token.AND, token.OR,
		token.MUL, token.EXP, token.DIV, token.FDIV, token.MOD)
}

func (p *Parser) binOp(sub func() (ast.Node, *errs.Error), ops ...token.Type) (ast.Node, *errs.Error) {
	left, err := sub()
	if err != nil {
		return nil, err
	}

	for containsType(ops, p.current.Type) {
		op := p.current.Type
		p.advance()
		right, err := sub()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Left: left, Op: op, Right: right}
	}

	return left, nil
}

func containsType(ops []token.Type, typ token.Type) bool {
	for _, o := range ops {
		if o == typ {
			return true
		}
	}
	return false
}

func (p *Parser) factor() (ast.Node, *errs.Error) {
	tok := p.current

	// Unary operators: + - ! (NOT can never be produced by the lexer, but
	// the grammar slot is kept for fidelity with the original parser).
	if tok.Type == token.PLUS || tok.Type == token.MINUS || tok.Type == token.NOT {
		p.advance()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: tok.Type, Right: right}, nil
	}

	// Literals
	if tok.Type == token.INT || tok.Type == token.FLOAT || tok.Type == token.BOOL ||
		tok.Type == token.STRING || tok.Type == token.NULL {
		p.advance()
		return &ast.Literal{Token: tok}, nil
	}

	if tok.Type == token.LSQUARE {
		return p.listExpr()
	}

	if token.IsBuiltinCall(tok.Type) {
		funcTok := tok
		p.advance()

		if _, err := p.expect(token.LPAREN, "("); err != nil {
			return nil, err
		}
		args, err := p.parseFuncArgs()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN, ")"); err != nil {
			return nil, err
		}
		return &ast.FunctionCall{Builtin: funcTok.Type, Args: args}, nil
	}

	if tok.Type == token.ID {
		varName := tok.Literal
		p.advance()

		switch p.current.Type {
		case token.LPAREN:
			return p.functionCall(varName)
		case token.LSQUARE:
			p.advance()
			index, err := p.expr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RSQUARE, "]"); err != nil {
				return nil, err
			}
			return &ast.ListAccess{Name: &ast.VarAccess{VarName: varName}, Index: index}, nil
		case token.INCR:
			p.advance()
			return &ast.Incr{VarName: varName}, nil
		case token.DECR:
			p.advance()
			return &ast.Decr{VarName: varName}, nil
		}

		return &ast.VarAccess{VarName: varName}, nil
	}

	if tok.Type == token.INCR {
		p.advance()
		if p.current.Type == token.ID {
			varName := p.current.Literal
			p.advance()
			return &ast.Incr{VarName: varName, IsPrefix: true}, nil
		}
		return nil, errs.Syntax("Expected identifier after '++'")
	}

	if tok.Type == token.DECR {
		p.advance()
		if p.current.Type == token.ID {
			varName := p.current.Literal
			p.advance()
			return &ast.Decr{VarName: varName, IsPrefix: true}, nil
		}
		return nil, errs.Syntax("Expected identifier after '--'")
	}

	if tok.Type == token.LPAREN {
		p.advance()
		expr, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN, ")"); err != nil {
			return nil, err
		}
		return expr, nil
	}

	return nil, errs.Syntax("Unexpected token '%s'", tok.Type)
}

func (p *Parser) listExpr() (ast.Node, *errs.Error) {
	p.advance()
	var elements []ast.Node

	if p.current.Type == token.RSQUARE {
		p.advance()
		return &ast.List{Elements: elements}, nil
	}

	first, err := p.expr()
	if err != nil {
		return nil, err
	}
	elements = append(elements, first)

	for p.current.Type == token.COMMA {
		p.advance()
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		elements = append(elements, e)
	}

	if _, err := p.expect(token.RSQUARE, "]"); err != nil {
		return nil, err
	}
	return &ast.List{Elements: elements}, nil
}

func (p *Parser) ifExpr() (ast.Node, *errs.Error) {
	p.advance()

	cond, err := p.expr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBRACE, "{"); err != nil {
		return nil, err
	}
	body, err := p.statements()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBRACE, "}"); err != nil {
		return nil, err
	}

	var elifs []ast.ElifBranch
	for p.current.Type == token.ELIF {
		p.advance()
		elifCond, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.LBRACE, "{"); err != nil {
			return nil, err
		}
		elifBody, err := p.statements()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RBRACE, "}"); err != nil {
			return nil, err
		}
		elifs = append(elifs, ast.ElifBranch{Condition: elifCond, Body: elifBody})
	}

	var elseBody []ast.Node
	if p.current.Type == token.ELSE {
		p.advance()
		if _, err := p.expect(token.LBRACE, "{"); err != nil {
			return nil, err
		}
		elseBody, err = p.statements()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RBRACE, "}"); err != nil {
			return nil, err
		}
	}

	return &ast.If{Condition: cond, Body: body, ElifClause: elifs, ElseBody: elseBody}, nil
}

func (p *Parser) whileExpr() (ast.Node, *errs.Error) {
	p.advance()

	cond, err := p.expr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBRACE, "{"); err != nil {
		return nil, err
	}
	body, err := p.statements()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBRACE, "}"); err != nil {
		return nil, err
	}

	return &ast.While{Condition: cond, Body: body}, nil
}

func (p *Parser) forExpr() (ast.Node, *errs.Error) {
	p.advance()

	if _, err := p.expect(token.VAR, "var"); err != nil {
		return nil, err
	}
	varName := p.current.Literal
	if _, err := p.expect(token.ID, "variable name"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ASSIGN, "="); err != nil {
		return nil, err
	}
	initVal, err := p.expr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.AS, "as"); err != nil {
		return nil, err
	}
	cond, err := p.expr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.DO, "do"); err != nil {
		return nil, err
	}
	update, err := p.expr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.LBRACE, "{"); err != nil {
		return nil, err
	}
	body, err := p.statements()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBRACE, "}"); err != nil {
		return nil, err
	}

	return &ast.For{VarName: varName, Init: initVal, Condition: cond, Update: update, Body: body}, nil
}

func (p *Parser) functionDef() (ast.Node, *errs.Error) {
	p.advance()

	if p.current.Type != token.ID {
		return nil, errs.Syntax("Expected function name after 'func'")
	}
	name := p.current.Literal
	p.advance()

	if p.current.Type != token.LPAREN {
		return nil, errs.Syntax("Expected '(' after function name")
	}
	p.advance()

	var params []string
	if p.current.Type != token.RPAREN {
		if p.current.Type != token.ID {
			return nil, errs.Syntax("Expected parameter name")
		}
		params = append(params, p.current.Literal)
		p.advance()
		for p.current.Type == token.COMMA {
			p.advance()
			if p.current.Type != token.ID {
				return nil, errs.Syntax("Expected parameter after comma")
			}
			params = append(params, p.current.Literal)
			p.advance()
		}
	}

	if p.current.Type != token.RPAREN {
		return nil, errs.Syntax(fmt.Sprintf("Expected ')' after parameters %v", params))
	}
	p.advance()

	if p.current.Type != token.LBRACE {
		return nil, errs.Syntax("Expected '{' after function parameters")
	}
	p.advance()

	body, err := p.statements()
	if err != nil {
		return nil, err
	}

	if p.current.Type != token.RBRACE {
		return nil, errs.Syntax("Expected '}' after function body")
	}
	p.advance()

	return &ast.FunctionDef{Name: name, Params: params, Body: body}, nil
}

func (p *Parser) functionCall(name string) (ast.Node, *errs.Error) {
	p.advance()
	args, err := p.parseFuncArgs()
	if err != nil {
		return nil, err
	}
	if p.current.Type != token.RPAREN {
		return nil, errs.Syntax("Expected ')' after arguments")
	}
	p.advance()

	return &ast.FunctionCall{Builtin: token.ID, Name: name, Args: args}, nil
}

func (p *Parser) parseFuncArgs() ([]ast.Node, *errs.Error) {
	var args []ast.Node
	if p.current.Type != token.RPAREN {
		first, err := p.expr()
		if err != nil {
			return nil, err
		}
		args = append(args, first)
		for p.current.Type == token.COMMA {
			p.advance()
			a, err := p.expr()
			if err != nil {
				return nil, err
			}
			args = append(args, a)
		}
	}
	return args, nil
}

func (p *Parser) varAssign(isOver bool) (ast.Node, *errs.Error) {
	p.advance()

	if p.current.Type != token.ID {
		return nil, errs.Syntax("Expected variable name")
	}
	varName := p.current.Literal
	p.advance()

	if _, err := p.expect(token.ASSIGN, "="); err != nil {
		return nil, err
	}
	value, err := p.expr()
	if err != nil {
		return nil, err
	}

	return &ast.VarAssign{VarName: varName, Value: value, IsOver: isOver}, nil
}

func (p *Parser) constAssign() (ast.Node, *errs.Error) {
	p.advance()

	if p.current.Type != token.ID {
		return nil, errs.Syntax("Expected constant name")
	}
	constName := p.current.Literal
	p.advance()

	if _, err := p.expect(token.ASSIGN, "="); err != nil {
		return nil, err
	}
	value, err := p.expr()
	if err != nil {
		return nil, err
	}

	return &ast.ConstAssign{ConstName: constName, Value: value}, nil
}
