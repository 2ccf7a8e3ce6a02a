package splitter

import "strings"

// Unit decomposition: turning raw text into the atomic units a linear
// strategy windows over. Distinct from LLM tokenization — units here are
// words, sentences, or paragraphs of the source text.

// decomposeWords splits on runs of whitespace; no whitespace survives in
// the units.
func decomposeWords(text string) []string {
	return strings.Fields(text)
}

// decomposeSentences splits at any of the terminator runes, keeping the
// terminator with the preceding unit. A run of consecutive terminators
// ("Really?!") attaches to the earlier unit.
func decomposeSentences(text string, terminators []rune) []string {
	isTerm := func(r rune) bool {
		for _, t := range terminators {
			if r == t {
				return true
			}
		}
		return false
	}

	var units []string
	runes := []rune(text)
	start := 0
	i := 0
	for i < len(runes) {
		if isTerm(runes[i]) {
			for i+1 < len(runes) && isTerm(runes[i+1]) {
				i++
			}
			unit := strings.TrimSpace(string(runes[start : i+1]))
			if unit != "" {
				units = append(units, unit)
			}
			start = i + 1
		}
		i++
	}
	if tail := strings.TrimSpace(string(runes[start:])); tail != "" {
		units = append(units, tail)
	}
	return units
}

// decomposeParagraphs splits on the line-break delimiter, collapsing
// consecutive breaks so blank lines never become units.
func decomposeParagraphs(text, lineBreak string) []string {
	if lineBreak == "" {
		lineBreak = "\n"
	}
	var units []string
	for _, part := range strings.Split(text, lineBreak) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			units = append(units, trimmed)
		}
	}
	return units
}
