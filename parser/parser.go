// File: parser/parser.go

// Package parser implements a recursive-descent parser: precedence-
// climbing expression parsing plus panic-mode statement recovery. The
// grammar is split thematically across a few files: this one holds the
// Parser type and its token-stream plumbing, parser_statements.go
// holds declaration/statement rules, and parser_expressions.go holds
// the expression precedence ladder.
package parser

import (
	"github.com/akashmaji946/loxlet/ast"
	"github.com/akashmaji946/loxlet/diag"
	"github.com/akashmaji946/loxlet/token"
)

// maxArgs is the parameter/argument count ceiling (255), reported as a
// non-fatal diagnostic.
const maxArgs = 255

// Parser consumes a token slice (as produced by lexer.ScanTokens) and
// produces a statement list. It is not safe for concurrent use.
type Parser struct {
	tokens  []token.Token
	current int
	sink    *diag.Sink
}

// New creates a Parser over tokens, reporting syntax errors to sink.
func New(tokens []token.Token, sink *diag.Sink) *Parser {
	return &Parser{tokens: tokens, sink: sink}
}

// parseError is the panic-mode sentinel returned by errorAt, thrown by
// consume and primary, and caught at the declaration boundary in
// declaration. It never escapes Parse itself.
type parseError struct{}

// Parse runs the parser to completion, returning every statement it
// could recover; a declaration that failed panic-mode recovery yields
// no slot at all rather than a placeholder. The caller checks
// sink.HadError() before evaluating the result.
func (p *Parser) Parse() []ast.Stmt {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements
}

func (p *Parser) declaration() (stmt ast.Stmt) {
	start := p.current
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				// A declaration that failed on its very first token
				// discards it, so recovery always makes progress.
				if p.current == start {
					p.advance()
				}
				p.synchronize()
				stmt = nil
				return
			}
			panic(r)
		}
	}()

	if p.match(token.FUN) {
		return p.functionDeclaration("function")
	}
	if p.match(token.VAR) {
		return p.varDeclaration()
	}
	return p.statement()
}

// synchronize discards tokens until it passes a statement-terminating
// `;` or reaches a token that plausibly starts a new declaration,
// leaving the parser positioned to keep making progress after an
// error.
func (p *Parser) synchronize() {
	for !p.isAtEnd() {
		if p.previous().Kind == token.SEMICOLON {
			return
		}
		switch p.peek().Kind {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}

// --- token-stream primitives ---

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(k token.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == k
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

// consume advances past the next token if it has kind k, otherwise
// reports message at that token and throws the panic-mode sentinel.
func (p *Parser) consume(k token.Kind, message string) token.Token {
	if p.check(k) {
		return p.advance()
	}
	panic(p.errorAt(p.peek(), message))
}

// errorAt reports a syntax diagnostic positioned with a "<where>"
// clause (" at end", " at '<lexeme>'", or empty — empty is unused here
// since every syntax error has a concrete offending token) and returns
// the panic-mode sentinel for the caller to throw.
func (p *Parser) errorAt(tok token.Token, message string) parseError {
	where := " at '" + tok.Lexeme + "'"
	if tok.Kind == token.EOF {
		where = " at end"
	}
	p.sink.Report(diag.Syntax, tok.Line, where, message)
	return parseError{}
}
