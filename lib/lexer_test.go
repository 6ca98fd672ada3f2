package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// A test helper function that just aggregates tokens into a slice for
// easier assertions.
func getTokens(formula string) []token {
	tokens := []token{}
	lex(formula, func(t token) {
		tokens = append(tokens, t)
	})
	return tokens
}

func requireTok(t *testing.T, actual token, typ tokenType, value string, line int, col int) {
	require.Equal(t, typ, actual.tokType, "token type")
	require.Equal(t, value, string(actual.value), "token value")
	require.Equal(t, line, actual.location.line, "token line")
	require.Equal(t, col, actual.location.col, "token col")
}

func TestLexerOneIdentifier(t *testing.T) {
	tokens := getTokens("vw")
	require.Len(t, tokens, 1)
	requireTok(t, tokens[0], tokenTypeIdent, "vw", 1, 1)
}

func TestLexerIdentifierWithDigitsAndUnderscore(t *testing.T) {
	tokens := getTokens("ae_max2")
	require.Len(t, tokens, 1)
	requireTok(t, tokens[0], tokenTypeIdent, "ae_max2", 1, 1)
}

func TestLexerNumber(t *testing.T) {
	tokens := getTokens("42")
	require.Len(t, tokens, 1)
	requireTok(t, tokens[0], tokenTypeNumber, "42", 1, 1)
}

func TestLexerDecimalNumber(t *testing.T) {
	tokens := getTokens("3.25")
	require.Len(t, tokens, 1)
	requireTok(t, tokens[0], tokenTypeNumber, "3.25", 1, 1)
}

func TestLexerSecondDecimalPointEndsNumber(t *testing.T) {
	tokens := getTokens("1.2.3")
	require.Len(t, tokens, 2)
	requireTok(t, tokens[0], tokenTypeNumber, "1.2", 1, 1)
	requireTok(t, tokens[1], tokenTypeNumber, "3", 1, 5)
}

func TestLexerTrailingDotNotPartOfNumber(t *testing.T) {
	tokens := getTokens("7.")
	require.Len(t, tokens, 1)
	requireTok(t, tokens[0], tokenTypeNumber, "7", 1, 1)
}

func TestLexerRealFormula(t *testing.T) {
	tokens := getTokens("vw * ae / 60")
	require.Len(t, tokens, 5)
	requireTok(t, tokens[0], tokenTypeIdent, "vw", 1, 1)
	requireTok(t, tokens[1], tokenTypeAsterisk, "", 1, 4)
	requireTok(t, tokens[2], tokenTypeIdent, "ae", 1, 6)
	requireTok(t, tokens[3], tokenTypeSlash, "", 1, 9)
	requireTok(t, tokens[4], tokenTypeNumber, "60", 1, 11)
}

func TestLexerNoSpaces(t *testing.T) {
	tokens := getTokens("(a+b)*c")
	require.Len(t, tokens, 7)
	requireTok(t, tokens[0], tokenTypeLParen, "", 1, 1)
	requireTok(t, tokens[1], tokenTypeIdent, "a", 1, 2)
	requireTok(t, tokens[2], tokenTypePlus, "", 1, 3)
	requireTok(t, tokens[3], tokenTypeIdent, "b", 1, 4)
	requireTok(t, tokens[4], tokenTypeRParen, "", 1, 5)
	requireTok(t, tokens[5], tokenTypeAsterisk, "", 1, 6)
	requireTok(t, tokens[6], tokenTypeIdent, "c", 1, 7)
}

func TestLexerMultiLine(t *testing.T) {
	tokens := getTokens("vw +\n\tae")
	require.Len(t, tokens, 3)
	requireTok(t, tokens[0], tokenTypeIdent, "vw", 1, 1)
	requireTok(t, tokens[1], tokenTypePlus, "", 1, 4)
	requireTok(t, tokens[2], tokenTypeIdent, "ae", 2, 2)
}

func TestLexerDropsUnrecognizedCharacters(t *testing.T) {
	tokens := getTokens("vw? $ ae!")
	require.Len(t, tokens, 2)
	requireTok(t, tokens[0], tokenTypeIdent, "vw", 1, 1)
	requireTok(t, tokens[1], tokenTypeIdent, "ae", 1, 7)
}

func TestLexerUnrecognizedCharacterSplitsIdentifier(t *testing.T) {
	tokens := getTokens("a#b")
	require.Len(t, tokens, 2)
	requireTok(t, tokens[0], tokenTypeIdent, "a", 1, 1)
	requireTok(t, tokens[1], tokenTypeIdent, "b", 1, 3)
}

func TestLexerEmpty(t *testing.T) {
	require.Len(t, getTokens(""), 0)
}

func TestLexerWhitespaceOnly(t *testing.T) {
	require.Len(t, getTokens(" \t\n  "), 0)
}
