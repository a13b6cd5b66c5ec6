// Package syllable estimates syllable counts with a vowel-group
// heuristic: count transitions into a vowel (a, e, i, o, u, y), drop one
// for a trailing silent e, and never report less than one syllable.
//
// This is an approximation, not a dictionary lookup. It miscounts
// polysyllabic edge cases ("queue") and silent consonant clusters;
// callers should treat the value as an estimate.
package syllable

import "strings"

const vowels = "aeiouyAEIOUY"

// Count estimates the syllables in a single word.
func Count(word string) int {
	count := 0
	prevVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune(vowels, r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}
	if strings.HasSuffix(word, "e") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

// Average returns the mean estimate across words, 0 when words is empty.
func Average(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	total := 0
	for _, w := range words {
		total += Count(w)
	}
	return float64(total) / float64(len(words))
}
