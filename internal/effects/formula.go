package effects

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/Interzoneism/tactica/internal/errors"
)

var dicePattern = regexp.MustCompile(`^(\d+)d(\d+)$`)

// EvalFormula rolls a dice expression of '+'-joined terms, each either
// XdY or a flat integer, e.g. "2d6+1d8+3".
func EvalFormula(roller dice.Roller, formula string) (int, error) {
	total := 0
	for _, term := range strings.Split(formula, "+") {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		if m := dicePattern.FindStringSubmatch(term); m != nil {
			count, _ := strconv.Atoi(m[1])
			size, _ := strconv.Atoi(m[2])
			if count <= 0 || size <= 0 {
				return 0, errors.InvalidArgumentf("invalid dice term %q in %q", term, formula)
			}
			rolls, err := roller.RollN(count, size)
			if err != nil {
				return 0, errors.Wrapf(err, "rolling %s", term)
			}
			for _, r := range rolls {
				total += r
			}
			continue
		}
		flat, err := strconv.Atoi(term)
		if err != nil {
			return 0, errors.InvalidArgumentf("invalid term %q in formula %q", term, formula)
		}
		total += flat
	}
	return total, nil
}

// FormulaBounds computes the analytic minimum, maximum, and mean of a
// formula without rolling. Used for effect previews.
func FormulaBounds(formula string) (minimum, maximum int, mean float64, err error) {
	for _, term := range strings.Split(formula, "+") {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		if m := dicePattern.FindStringSubmatch(term); m != nil {
			count, _ := strconv.Atoi(m[1])
			size, _ := strconv.Atoi(m[2])
			if count <= 0 || size <= 0 {
				return 0, 0, 0, errors.InvalidArgumentf("invalid dice term %q in %q", term, formula)
			}
			minimum += count
			maximum += count * size
			mean += float64(count) * float64(size+1) / 2
			continue
		}
		flat, convErr := strconv.Atoi(term)
		if convErr != nil {
			return 0, 0, 0, errors.InvalidArgumentf("invalid term %q in formula %q", term, formula)
		}
		minimum += flat
		maximum += flat
		mean += float64(flat)
	}
	return minimum, maximum, mean, nil
}

// doubleDiceCounts doubles the dice counts of a formula, leaving flat
// terms alone. Critical hits roll twice the dice, not twice the total.
func doubleDiceCounts(formula string) string {
	terms := strings.Split(formula, "+")
	for i, term := range terms {
		term = strings.TrimSpace(term)
		if m := dicePattern.FindStringSubmatch(term); m != nil {
			count, _ := strconv.Atoi(m[1])
			terms[i] = strconv.Itoa(count*2) + "d" + m[2]
			continue
		}
		terms[i] = term
	}
	return strings.Join(terms, "+")
}
