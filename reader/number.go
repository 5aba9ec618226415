package reader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

// numberPattern recognizes every numeric literal shape the lexer accepts,
// using named capture groups so parseNumber can pull out just the piece
// it needs without re-deriving the lexer's own state machine. regexp2 (a
// backtracking engine, unlike stdlib regexp's RE2 automaton) is what lets
// the optional groups below be written directly rather than split across
// several plain regexes.
var numberPattern = regexp2.MustCompile(
	`^-?(?:`+
		`0[xX](?<hex>[0-9a-fA-F]+)`+
		`|0[bB](?<bin>[01]+)`+
		`|(?<dec>\d+(?:\.\d+)?(?:[eE][+-]?\d+)?)(?:/(?<denom>\d+))?`+
		`)(?<suffix>[NnLl])?$`,
	regexp2.None,
)

// parseNumber converts literal number text, as produced by the lexer,
// into its float64 value. The N/L suffix is stripped before parsing; a
// trailing `/denom` ratio is evaluated as numerator/denominator, since
// otherwise every ratio literal the lexer accepts would be unreadable.
func parseNumber(text string) (float64, error) {
	m, err := numberPattern.FindStringMatch(text)
	if err != nil || m == nil {
		return 0, fmt.Errorf("invalid number: %s", text)
	}
	negative := strings.HasPrefix(text, "-")

	if g := m.GroupByName("hex"); g != nil && g.Length > 0 {
		n, err := strconv.ParseUint(g.String(), 16, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid number: %s", text)
		}
		return signed(float64(n), negative), nil
	}
	if g := m.GroupByName("bin"); g != nil && g.Length > 0 {
		n, err := strconv.ParseUint(g.String(), 2, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid number: %s", text)
		}
		return signed(float64(n), negative), nil
	}

	dec := m.GroupByName("dec")
	if dec == nil || dec.Length == 0 {
		return 0, fmt.Errorf("invalid number: %s", text)
	}
	n, err := strconv.ParseFloat(dec.String(), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number: %s", text)
	}
	n = signed(n, negative)

	if denom := m.GroupByName("denom"); denom != nil && denom.Length > 0 {
		d, err := strconv.ParseFloat(denom.String(), 64)
		if err != nil || d == 0 {
			return 0, fmt.Errorf("invalid number: %s", text)
		}
		n /= d
	}
	return n, nil
}

func signed(n float64, negative bool) float64 {
	if negative {
		return -n
	}
	return n
}
