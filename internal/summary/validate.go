package summary

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Check identifies a plausibility rule.
type Check string

const (
	CheckGames  Check = "games"
	CheckRake   Check = "rake"
	CheckProfit Check = "profit"
)

var (
	minRake   = decimal.NewFromInt(100)
	maxProfit = decimal.NewFromInt(1_000_000)
)

// Warning describes a total that looks wrong. Warnings never stop an export.
type Warning struct {
	Check   Check
	Message string
}

func (w Warning) Error() string {
	return fmt.Sprintf("%s: %s", w.Check, w.Message)
}

// Validate runs the plausibility rules over s, in a fixed order: games, rake,
// profit. An empty result means every check passed.
func Validate(s Summary) []Warning {
	var warns []Warning

	if s.TotalGames == 0 {
		warns = append(warns, Warning{
			Check:   CheckGames,
			Message: "total games is 0, the games column may be wrong",
		})
	}

	if s.TotalRake.LessThan(minRake) {
		warns = append(warns, Warning{
			Check:   CheckRake,
			Message: fmt.Sprintf("total rake %s is below %s, the rake column may be wrong", s.TotalRake.StringFixed(2), minRake),
		})
	}

	if s.TotalGains.Abs().GreaterThan(maxProfit) {
		warns = append(warns, Warning{
			Check:   CheckProfit,
			Message: fmt.Sprintf("total profit %s exceeds %s in magnitude, check the values", s.TotalGains.StringFixed(2), maxProfit),
		})
	}

	return warns
}

// Find returns the warning raised by check, if any.
func Find(warns []Warning, check Check) (Warning, bool) {
	for _, w := range warns {
		if w.Check == check {
			return w, true
		}
	}
	return Warning{}, false
}
