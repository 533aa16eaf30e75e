package statement

import (
	"regexp"
	"strings"
)

// datePrefixRe matches a "05 Jan 24" style date token at the start of a
// line, the delimiter between transactions in UPI statement text.
var datePrefixRe = regexp.MustCompile(`^\d{2} [A-Za-z]{3} \d{2}`)

// GroupBlocks partitions extracted lines into per-transaction blocks.
// A line starting with a date token flushes the accumulated block and
// opens a new one; the final accumulator is always flushed. Leading lines
// before the first date token end up prepended to the first block - a
// known imprecision of the heuristic that is deliberately kept.
func GroupBlocks(lines []string) []string {
	var blocks []string
	var current []string

	for _, line := range lines {
		if datePrefixRe.MatchString(line) && len(current) > 0 {
			blocks = append(blocks, strings.Join(current, " "))
			current = current[:0]
		}
		current = append(current, strings.TrimSpace(line))
	}
	if len(current) > 0 {
		blocks = append(blocks, strings.Join(current, " "))
	}
	return blocks
}
