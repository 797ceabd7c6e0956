package domain

// Outcome is the settled result of a single purchase.
type Outcome struct {
	Status    string
	WinAmount int64
}

// Amount returns the prize for a tier, 0 for any tier outside 1..3.
func (pt PrizeTable) Amount(tier int) int64 {
	switch tier {
	case 1:
		return pt.Tier1
	case 2:
		return pt.Tier2
	case 3:
		return pt.Tier3
	default:
		return 0
	}
}

// MatchCount counts how many numbers of the selection appear in the
// winning set.
func MatchCount(selection, winning []int) int {
	drawn := make(map[int]struct{}, len(winning))
	for _, n := range winning {
		drawn[n] = struct{}{}
	}
	matches := 0
	for _, n := range selection {
		if _, ok := drawn[n]; ok {
			matches++
		}
	}
	return matches
}

// TierForMatches maps a match count to a prize tier: all numbers matched
// is tier 1, one short tier 2, two short tier 3, anything below pays
// nothing. A tier whose required match count would drop below 1 is
// unreachable, which keeps the mapping defined for games picking fewer
// than three numbers.
func TierForMatches(matches, pickCount int) int {
	if matches < 1 {
		return 0
	}
	switch {
	case matches == pickCount:
		return 1
	case matches == pickCount-1:
		return 2
	case matches == pickCount-2:
		return 3
	default:
		return 0
	}
}

// Evaluate computes the settlement outcome for one purchase. A forced win
// tier short-circuits matching entirely: 1..3 pays that tier, 0 is a
// guaranteed loss. Otherwise the best-paying selection of the ticket
// decides; a ticket with no selections loses.
func Evaluate(p Purchase, winning []int, pickCount int, prizes PrizeTable) Outcome {
	if p.ForcedWinTier != nil {
		if tier := *p.ForcedWinTier; tier > 0 {
			return Outcome{Status: PurchaseStatusWon, WinAmount: prizes.Amount(tier)}
		}
		return Outcome{Status: PurchaseStatusLost, WinAmount: 0}
	}

	var best int64
	for _, selection := range p.Selections {
		tier := TierForMatches(MatchCount(selection, winning), pickCount)
		if prize := prizes.Amount(tier); prize > best {
			best = prize
		}
	}
	if best == 0 {
		return Outcome{Status: PurchaseStatusLost, WinAmount: 0}
	}
	return Outcome{Status: PurchaseStatusWon, WinAmount: best}
}

// ValidateSelection checks one selection line against the game rules:
// exactly pickCount numbers, each within [1, maxNumber], no duplicates.
func ValidateSelection(selection []int, pickCount, maxNumber int) bool {
	if len(selection) != pickCount {
		return false
	}
	seen := make(map[int]struct{}, len(selection))
	for _, n := range selection {
		if n < 1 || n > maxNumber {
			return false
		}
		if _, ok := seen[n]; ok {
			return false
		}
		seen[n] = struct{}{}
	}
	return true
}
