package lib

type tokenType int

const (
	tokenTypeIdent tokenType = iota
	tokenTypeNumber
	tokenTypeLParen
	tokenTypeRParen
	tokenTypePlus
	tokenTypeMinus
	tokenTypeAsterisk
	tokenTypeSlash
)

type charLocation struct {
	line int
	col  int
}

type token struct {
	tokType  tokenType
	value    []rune
	location charLocation
}
