package lib

import (
	"errors"
	"time"
)

const tokenBufSize = 64

// TokenReadTimeout bounds how long a reader will wait on a lexer that has
// not signalled Done yet. Tests shrink this.
var TokenReadTimeout = 1 * time.Second

type tokenReader interface {
	Next() (tok token, done bool, err error)
	Peek() (tok token, done bool, err error)
}

type peekResult struct {
	tok  token
	done bool
	err  error
}

// tokenBuffer sits between the lexer goroutine and the parser. The lexer
// Writes tokens and calls Done; the parser pulls them with Next/Peek.
// Buffered tokens are still delivered after Done has been observed.
type tokenBuffer struct {
	tokChan      chan token
	doneChan     chan struct{}
	peeked       *peekResult
	doneReceived bool
}

func newTokenBuffer() *tokenBuffer {
	return &tokenBuffer{
		tokChan:  make(chan token, tokenBufSize),
		doneChan: make(chan struct{}, 1),
	}
}

func (tb *tokenBuffer) Next() (tok token, done bool, err error) {
	if tb.peeked != nil {
		res := tb.peeked
		tb.peeked = nil
		return res.tok, res.done, res.err
	}

	if tb.doneReceived {
		select {
		case tok := <-tb.tokChan:
			return tok, false, nil
		default:
			return token{}, true, nil
		}
	}

	select {
	case tok := <-tb.tokChan:
		return tok, false, nil
	case <-tb.doneChan:
		tb.doneReceived = true
		return tb.Next()
	case <-time.After(TokenReadTimeout):
		return token{}, false, errors.New("timed out waiting for next token")
	}
}

func (tb *tokenBuffer) Peek() (token, bool, error) {
	if tb.peeked != nil {
		return tb.peeked.tok, tb.peeked.done, tb.peeked.err
	}
	tok, done, err := tb.Next()
	tb.peeked = &peekResult{tok: tok, done: done, err: err}
	return tok, done, err
}

func (tb *tokenBuffer) Write(tok token) {
	tb.tokChan <- tok
}

func (tb *tokenBuffer) Done() {
	tb.doneChan <- struct{}{}
}
