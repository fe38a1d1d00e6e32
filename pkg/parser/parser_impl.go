package parser

import (
	"fmt"
	"strconv"

	"github.com/sandrolain/gomonkey/pkg/ast"
	"github.com/sandrolain/gomonkey/pkg/lexer"
	"github.com/sandrolain/gomonkey/pkg/token"
)

// Operator precedence ladder, low to high. Token kinds missing from the
// precedences table bind at lowest.
const (
	lowest      = iota + 1
	equals      // == or !=
	lessgreater // < or >
	sum         // + or -
	product     // * or /
	prefix      // -x or !x
	call        // myFunction(x)
)

// precedences maps continuation token kinds to their binding power.
// LPAREN sits at call precedence so function-call postfix parses correctly.
var precedences = map[token.Type]int{
	token.EQ:       equals,
	token.NOT_EQ:   equals,
	token.LT:       lessgreater,
	token.GT:       lessgreater,
	token.PLUS:     sum,
	token.MINUS:    sum,
	token.SLASH:    product,
	token.ASTERISK: product,
	token.LPAREN:   call,
}

// defaultMaxDepth bounds expression nesting when no WithMaxDepth option
// is given.
const defaultMaxDepth = 100

// Parser builds a Monkey AST from a token stream.
//
// A Parser is owned by one caller and is not safe for concurrent use;
// independent parsers share nothing and may run in parallel.
type Parser struct {
	l *lexer.Lexer

	current token.Token
	peek    token.Token

	errors []string
	depth  int
	opts   Options

	traceLevel int
}

// New creates a parser over the given lexer.
func New(l *lexer.Lexer, opts ...Option) *Parser {
	options := Options{
		MaxDepth: defaultMaxDepth,
	}
	for _, opt := range opts {
		opt(&options)
	}

	p := &Parser{
		l:      l,
		errors: []string{},
		opts:   options,
	}

	// Read two tokens so current and peek are both set.
	p.nextToken()
	p.nextToken()

	return p
}

// Errors returns the parser errors recorded so far, in order.
func (p *Parser) Errors() []string {
	return p.errors
}

// nextToken shifts the lookahead window one token forward.
func (p *Parser) nextToken() {
	p.current = p.peek
	p.peek = p.l.Next()
}

// ParseProgram parses statements until EOF and returns the program.
// The program is always returned, even when errors were recorded.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{
		Statements: []ast.Statement{},
	}

	for !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	return program
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.current.Type {
	case token.LET:
		return p.parseLetStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseLetStatement parses "let <name> = ...;". The value expression is
// skipped up to the semicolon and left nil; the pretty-printer tolerates
// the absent value.
func (p *Parser) parseLetStatement() ast.Statement {
	stmt := &ast.LetStatement{Token: p.current}

	if !p.expectPeek(token.IDENT) {
		return nil
	}

	stmt.Name = &ast.Identifier{Token: p.current, Value: p.current.Literal}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}

	for !p.curTokenIs(token.SEMICOLON) && !p.curTokenIs(token.EOF) {
		p.nextToken()
	}

	return stmt
}

// parseReturnStatement parses "return ...;", skipping the value expression
// the same way parseLetStatement does.
func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.current}

	p.nextToken()

	for !p.curTokenIs(token.SEMICOLON) && !p.curTokenIs(token.EOF) {
		p.nextToken()
	}

	return stmt
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	defer p.untrace(p.trace("parseExpressionStatement"))

	stmt := &ast.ExpressionStatement{Token: p.current}

	stmt.Expression = p.parseExpression(lowest)

	// The trailing semicolon is optional, which makes REPL input like
	// "5 + 5" valid.
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	return stmt
}

// parseExpression is the Pratt core: parse a prefix expression, then fold
// in infix continuations while the peek token binds tighter than the
// caller's precedence. The strict < test yields left-associativity.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	defer p.untrace(p.trace("parseExpression"))

	if p.depth++; p.depth > p.opts.MaxDepth {
		p.errors = append(p.errors, fmt.Sprintf("expression exceeds maximum depth of %d", p.opts.MaxDepth))
		p.depth--
		return nil
	}
	defer func() { p.depth-- }()

	left := p.parsePrefix()
	if left == nil {
		return nil
	}

	for !p.peekTokenIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		switch p.peek.Type {
		case token.PLUS, token.MINUS, token.SLASH, token.ASTERISK,
			token.EQ, token.NOT_EQ, token.LT, token.GT:
			p.nextToken()
			left = p.parseInfixExpression(left)
		case token.LPAREN:
			p.nextToken()
			left = p.parseCallExpression(left)
		default:
			return left
		}
	}

	return left
}

// parsePrefix dispatches on the current token kind to the handler that can
// begin an expression (the Pratt "null denotation").
func (p *Parser) parsePrefix() ast.Expression {
	switch p.current.Type {
	case token.IDENT:
		return p.parseIdentifier()
	case token.INT:
		return p.parseIntegerLiteral()
	case token.BANG, token.MINUS:
		return p.parsePrefixExpression()
	case token.TRUE, token.FALSE:
		return p.parseBoolean()
	case token.LPAREN:
		return p.parseGroupedExpression()
	case token.IF:
		return p.parseIfExpression()
	case token.FUNCTION:
		return p.parseFunctionLiteral()
	default:
		p.noPrefixParseFnError(p.current.Type)
		return nil
	}
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.current, Value: p.current.Literal}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	lit := &ast.IntegerLiteral{Token: p.current}

	value, err := strconv.ParseInt(p.current.Literal, 10, 64)
	if err != nil {
		msg := fmt.Sprintf("could not parse %q as integer", p.current.Literal)
		p.errors = append(p.errors, msg)
		return nil
	}

	lit.Value = value
	return lit
}

func (p *Parser) parseBoolean() ast.Expression {
	return &ast.Boolean{Token: p.current, Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	defer p.untrace(p.trace("parsePrefixExpression"))

	expression := &ast.PrefixExpression{
		Token:    p.current,
		Operator: p.current.Literal,
	}

	p.nextToken()

	expression.Right = p.parseExpression(prefix)

	return expression
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	defer p.untrace(p.trace("parseInfixExpression"))

	expression := &ast.InfixExpression{
		Token:    p.current,
		Operator: p.current.Literal,
		Left:     left,
	}

	precedence := p.curPrecedence()
	p.nextToken()
	expression.Right = p.parseExpression(precedence)

	return expression
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()

	exp := p.parseExpression(lowest)

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	return exp
}

func (p *Parser) parseIfExpression() ast.Expression {
	expression := &ast.IfExpression{Token: p.current}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}

	p.nextToken()
	expression.Condition = p.parseExpression(lowest)

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	expression.Consequence = p.parseBlockStatement()

	if p.peekTokenIs(token.ELSE) {
		p.nextToken()

		if !p.expectPeek(token.LBRACE) {
			return nil
		}

		expression.Alternative = p.parseBlockStatement()
	}

	return expression
}

// parseBlockStatement parses statements until the closing brace or EOF.
// The block node's token is the opening brace; failed sub-parses are
// dropped rather than appended as nil.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{
		Token:      p.current,
		Statements: []ast.Statement{},
	}

	p.nextToken()

	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}

	return block
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	lit := &ast.FunctionLiteral{Token: p.current}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}

	lit.Parameters = p.parseFunctionParameters()

	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	lit.Body = p.parseBlockStatement()

	return lit
}

func (p *Parser) parseFunctionParameters() []*ast.Identifier {
	identifiers := []*ast.Identifier{}

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return identifiers
	}

	p.nextToken()

	identifiers = append(identifiers, &ast.Identifier{Token: p.current, Value: p.current.Literal})

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		identifiers = append(identifiers, &ast.Identifier{Token: p.current, Value: p.current.Literal})
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	return identifiers
}

// parseCallExpression is the infix handler for LPAREN: the expression
// parsed so far becomes the function operand.
func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	exp := &ast.CallExpression{Token: p.current, Function: function}
	exp.Arguments = p.parseCallArguments()
	return exp
}

func (p *Parser) parseCallArguments() []ast.Expression {
	args := []ast.Expression{}

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return args
	}

	p.nextToken()
	args = append(args, p.parseExpression(lowest))

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		args = append(args, p.parseExpression(lowest))
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	return args
}

func (p *Parser) curTokenIs(t token.Type) bool {
	return p.current.Type == t
}

func (p *Parser) peekTokenIs(t token.Type) bool {
	return p.peek.Type == t
}

// expectPeek advances when the peek token matches; otherwise it records a
// peek error and leaves the parser where it is. This is the sole source of
// positional parser errors.
func (p *Parser) expectPeek(t token.Type) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.Type) {
	msg := fmt.Sprintf("expected next token to be %s, got %s instead", t, p.peek.Type)
	p.errors = append(p.errors, msg)
}

func (p *Parser) noPrefixParseFnError(t token.Type) {
	msg := fmt.Sprintf("no prefix parse function for %s found", t)
	p.errors = append(p.errors, msg)
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peek.Type]; ok {
		return prec
	}
	return lowest
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.current.Type]; ok {
		return prec
	}
	return lowest
}
