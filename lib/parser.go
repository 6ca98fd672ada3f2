package lib

import (
	"fmt"
	"regexp"
)

var numberPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

type parseErrorKind int

const (
	ErrUnexpectedToken parseErrorKind = iota
	ErrUnexpectedEndOfInput
	ErrTrailingTokens
)

// ParseError is returned for any malformed formula. Kind says what went
// wrong, Token is the offending token (zero value when input simply
// ended) and Expecting optionally names what the parser wanted instead.
type ParseError struct {
	Kind      parseErrorKind
	Token     token
	Expecting string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrUnexpectedEndOfInput:
		return fmt.Sprintf("Expecting %s but formula ended", e.Expecting)
	case ErrTrailingTokens:
		return fmt.Sprintf("Formula is complete but has trailing <%s>", tokenString(e.Token))
	default:
		if e.Expecting != "" {
			return fmt.Sprintf("Expecting %s but got <%s>", e.Expecting, tokenString(e.Token))
		}
		return fmt.Sprintf("Unexpected <%s>", tokenString(e.Token))
	}
}

// Parse converts formula text into an expression tree. Empty or
// whitespace-only input returns (nil, nil): no formula defined yet, which
// callers must treat differently from a formula that fails to parse.
func Parse(formula string) (Node, error) {
	buffer := newTokenBuffer()
	p := parser{reader: buffer}

	go func() {
		lex(formula, buffer.Write)
		buffer.Done()
	}()

	return p.scan()
}

type parser struct {
	reader tokenReader
}

func (p *parser) scan() (Node, error) {
	_, done, err := p.reader.Peek()
	if err != nil {
		return nil, err
	}
	if done {
		return nil, nil
	}

	node, err := p.scanAdditive()
	if err != nil {
		return nil, err
	}

	// the whole token sequence must belong to the one expression
	next, done, err := p.reader.Next()
	if err != nil {
		return nil, err
	}
	if !done {
		return nil, &ParseError{Kind: ErrTrailingTokens, Token: next}
	}

	return node, nil
}

// scanAdditive handles + and -, the loosest tier. Folding the previous
// result into Left keeps each tier left-associative.
func (p *parser) scanAdditive() (Node, error) {
	left, err := p.scanMultiplicative()
	if err != nil {
		return nil, err
	}

	for {
		next, done, err := p.reader.Peek()
		if err != nil {
			return nil, err
		}
		if done {
			break
		}

		var op opType
		switch next.tokType {
		case tokenTypePlus:
			op = OpAdd
		case tokenTypeMinus:
			op = OpSubtract
		default:
			return left, nil
		}

		if err := p.advance(); err != nil {
			return nil, err
		}

		right, err := p.scanMultiplicative()
		if err != nil {
			return nil, err
		}

		left = BinaryOp{Op: op, Left: left, Right: right}
	}

	return left, nil
}

// scanMultiplicative handles * and /, which bind tighter than + and -.
func (p *parser) scanMultiplicative() (Node, error) {
	left, err := p.scanPrimary()
	if err != nil {
		return nil, err
	}

	for {
		next, done, err := p.reader.Peek()
		if err != nil {
			return nil, err
		}
		if done {
			break
		}

		var op opType
		switch next.tokType {
		case tokenTypeAsterisk:
			op = OpMultiply
		case tokenTypeSlash:
			op = OpDivide
		default:
			return left, nil
		}

		if err := p.advance(); err != nil {
			return nil, err
		}

		right, err := p.scanPrimary()
		if err != nil {
			return nil, err
		}

		left = BinaryOp{Op: op, Left: left, Right: right}
	}

	return left, nil
}

// scanPrimary handles a number, a variable reference or a parenthesized
// sub-expression. Variables are not resolved here: binding them against
// the calculator's declared inputs happens later and an unknown name is
// not a parse error.
func (p *parser) scanPrimary() (Node, error) {
	tok, done, err := p.reader.Next()
	if err != nil {
		return nil, err
	}
	if done {
		return nil, &ParseError{Kind: ErrUnexpectedEndOfInput, Expecting: "expression"}
	}

	switch tok.tokType {
	case tokenTypeNumber:
		value := string(tok.value)
		if !numberPattern.MatchString(value) {
			return nil, &ParseError{Kind: ErrUnexpectedToken, Token: tok, Expecting: "number"}
		}
		return Literal{Value: value}, nil

	case tokenTypeIdent:
		return Variable{Name: string(tok.value)}, nil

	case tokenTypeLParen:
		inner, err := p.scanAdditive()
		if err != nil {
			return nil, err
		}

		next, done, err := p.reader.Next()
		if err != nil {
			return nil, err
		}
		if done {
			return nil, &ParseError{Kind: ErrUnexpectedEndOfInput, Expecting: "')'"}
		}
		if next.tokType != tokenTypeRParen {
			return nil, &ParseError{Kind: ErrUnexpectedToken, Token: next, Expecting: "')'"}
		}

		return inner, nil

	default:
		return nil, &ParseError{Kind: ErrUnexpectedToken, Token: tok, Expecting: "expression"}
	}
}

func (p *parser) advance() error {
	_, _, err := p.reader.Next()
	return err
}

func tokenString(tok token) string {
	return fmt.Sprintf(
		"%d:%d -> %s",
		tok.location.line,
		tok.location.col,
		tokenValueString(tok))
}

func tokenValueString(tok token) string {
	switch tok.tokType {
	case tokenTypeIdent:
		return fmt.Sprintf("identifier: %s", string(tok.value))
	case tokenTypeNumber:
		return fmt.Sprintf("number: %s", string(tok.value))
	case tokenTypeLParen:
		return "("
	case tokenTypeRParen:
		return ")"
	case tokenTypePlus:
		return "+"
	case tokenTypeMinus:
		return "-"
	case tokenTypeAsterisk:
		return "*"
	case tokenTypeSlash:
		return "/"
	default:
		return "?"
	}
}
