package lib

type charInfo struct {
	ch       rune
	location charLocation
}

// lex splits formula text into tokens and hands each one to emit. It
// recognizes identifiers, decimal numbers, the four arithmetic operators
// and parentheses. Anything else (whitespace included) is a separator and
// produces nothing, so lexing cannot fail.
func lex(formula string, emit func(token)) {
	l := newLexer(formula, emit)
	l.scan()
}

type lexer struct {
	src              []rune
	length           int
	currentCharIndex int
	currentLocation  charLocation
	tokenStartIndex  int
	tokenLocation    charLocation
	emitCallback     func(token)
}

func newLexer(formula string, emit func(token)) *lexer {
	src := []rune(formula)
	return &lexer{
		src:              src,
		length:           len(src),
		currentCharIndex: 0,
		currentLocation:  charLocation{line: 1, col: 1},
		tokenStartIndex:  0,
		tokenLocation:    charLocation{line: 1, col: 1},
		emitCallback:     emit,
	}
}

func (l *lexer) scan() {
	for l.next() {
	}
}

func (l *lexer) next() bool {
	chInfo, ok := l.advance()
	if !ok {
		l.endIdent()
		return false
	}
	ch := chInfo.ch

	switch ch {
	case '(':
		l.emit(token{tokType: tokenTypeLParen, location: chInfo.location})
	case ')':
		l.emit(token{tokType: tokenTypeRParen, location: chInfo.location})
	case '+':
		l.emit(token{tokType: tokenTypePlus, location: chInfo.location})
	case '-':
		l.emit(token{tokType: tokenTypeMinus, location: chInfo.location})
	case '*':
		l.emit(token{tokType: tokenTypeAsterisk, location: chInfo.location})
	case '/':
		l.emit(token{tokType: tokenTypeSlash, location: chInfo.location})
	default:
		if isDigit(ch) {
			if l.isFirstCharOfToken() {
				l.scanNumber()
			}
			// else the digit just extends the identifier in progress
		} else if isIdentChar(ch) {
			// keep accumulating the identifier
		} else {
			// whitespace or an unrecognized character: ends whatever was
			// in progress and is otherwise dropped
			l.endIdent()
		}
	}

	return true
}

func (l *lexer) peek(offset int) (charInfo, bool) {
	i := l.currentCharIndex + offset
	if i >= l.length {
		return charInfo{}, false
	}
	return charInfo{ch: l.src[i], location: l.currentLocation}, true
}

func (l *lexer) advance() (charInfo, bool) {
	info, ok := l.peek(0)
	l.currentCharIndex++
	if info.ch == '\n' {
		l.currentLocation.line++
		l.currentLocation.col = 1
	} else {
		l.currentLocation.col++
	}
	return info, ok
}

func (l *lexer) emit(tok token) {
	l.endIdent()
	l.emitCallback(tok)
	l.resetToken()
}

func (l *lexer) isFirstCharOfToken() bool {
	return l.currentCharIndex-1 == l.tokenStartIndex
}

// scanNumber is entered with one digit already consumed. It takes digits
// and at most one decimal point; the point only counts when a digit
// follows it, so the emitted text always re-parses as a number.
func (l *lexer) scanNumber() {
	hasDecimal := false

	for {
		next, ok := l.peek(0)
		if !ok {
			break
		}

		if isDigit(next.ch) {
			l.advance()
			continue
		}

		if next.ch == '.' && !hasDecimal {
			after, ok := l.peek(1)
			if ok && isDigit(after.ch) {
				hasDecimal = true
				l.advance()
				continue
			}
		}

		break
	}

	substr := l.src[l.tokenStartIndex:l.currentCharIndex]
	l.emitCallback(token{tokType: tokenTypeNumber, value: substr, location: l.tokenLocation})
	l.resetToken()
}

func (l *lexer) endIdent() {
	if !l.isFirstCharOfToken() {
		substr := l.src[l.tokenStartIndex : l.currentCharIndex-1]
		l.emitCallback(token{tokType: tokenTypeIdent, value: substr, location: l.tokenLocation})
	}
	l.resetToken()
}

func (l *lexer) resetToken() {
	l.tokenLocation = l.currentLocation
	l.tokenStartIndex = l.currentCharIndex
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentChar(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		ch == '_' ||
		isDigit(ch)
}
