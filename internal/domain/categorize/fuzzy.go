package categorize

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// knownMerchants are clean merchant names suggested for descriptions the
// rule table could not categorize, typically OCR noise like "ZOMAT0" or
// "SWIGY".
var knownMerchants = []string{
	"Zomato",
	"Swiggy",
	"GooglePay",
	"Paytm",
	"PhonePe",
	"Amazon",
	"Flipkart",
	"IRCTC",
	"Airtel",
	"Jio",
}

// maxSuggestDistance is the largest Levenshtein distance still considered
// a plausible merchant variation.
const maxSuggestDistance = 2

// SuggestMerchant returns the closest known merchant name for an
// uncategorized description, or "" when nothing is plausibly close.
// Each word of the description is ranked against the merchant list.
func SuggestMerchant(description string) string {
	bestRank := maxSuggestDistance + 1
	best := ""

	for _, word := range strings.Fields(description) {
		for _, merchant := range knownMerchants {
			rank := fuzzy.RankMatchNormalizedFold(merchant, word)
			if rank < 0 {
				// Not a subsequence match; try the reverse direction to
				// catch truncated tokens like "SWIG".
				rank = fuzzy.RankMatchNormalizedFold(word, merchant)
			}
			if rank >= 0 && rank < bestRank {
				bestRank = rank
				best = merchant
			}
		}
	}

	return best
}
