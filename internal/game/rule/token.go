package rule

import (
	"regexp"
	"slices"

	"github.com/palemoky/klondike/internal/apperrors"
)

// StockToken names the stock in move requests.
const StockToken = "O"

// columnCardPattern matches a column coordinate such as "A0" or "G12".
var columnCardPattern = regexp.MustCompile(`^[A-G][0-9]{1,2}$`)

var (
	stackNames  = []string{"SA", "SB", "SC", "SD"}
	columnNames = []string{"A", "B", "C", "D", "E", "F", "G"}
)

// IsColumnToken reports whether the token names a card inside a column, for
// example "G6".
func IsColumnToken(token string) bool {
	return columnCardPattern.MatchString(token)
}

// IsStackToken reports whether the token names a stack pile.
func IsStackToken(token string) bool {
	return slices.Contains(stackNames, token)
}

// isAllowedSource reports whether the token is a legal move source: the
// stock, a stack pile or a column coordinate.
func isAllowedSource(token string) bool {
	return token == StockToken || IsStackToken(token) || IsColumnToken(token)
}

// isAllowedDestination reports whether the token is a legal move
// destination: a column letter or a stack pile. The row is irrelevant for
// destinations because cards are only ever added on top.
func isAllowedDestination(token string) bool {
	return slices.Contains(columnNames, token) || IsStackToken(token)
}

// CheckTokens verifies the syntax of the source and destination tokens of a
// transfer request. Tokens are expected in upper case; the caller normalizes
// them before they reach the engine.
func CheckTokens(source, destination string) error {
	if !isAllowedSource(source) {
		return apperrors.Syntax("Invalid Move syntax. %q is not a valid source location. See Help for instructions.", source)
	}
	if !isAllowedDestination(destination) {
		return apperrors.Syntax("Invalid Move syntax. %q is not a valid destination location. See Help for instructions.", destination)
	}
	return nil
}
