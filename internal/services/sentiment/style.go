package sentiment

import (
	"strings"
	"unicode"
)

// styleSignal is the outcome of text-style analysis on the raw
// (non-lowercased) message.
type styleSignal struct {
	negativeBoost float64
	indicators    []string
}

// analyzeStyle scores shouting and punctuation patterns. ALL-CAPS word
// ratio above 0.3 reads as a raised voice; stacked exclamation marks and
// exclamation/question combinations read as frustration.
func analyzeStyle(raw string) styleSignal {
	var sig styleSignal

	words := strings.Fields(raw)
	capsWords := 0
	letterWords := 0
	for _, w := range words {
		letters := 0
		uppers := 0
		for _, r := range w {
			if unicode.IsLetter(r) {
				letters++
				if unicode.IsUpper(r) {
					uppers++
				}
			}
		}
		if letters < 2 {
			continue
		}
		letterWords++
		if uppers == letters {
			capsWords++
		}
	}

	if letterWords > 0 && float64(capsWords)/float64(letterWords) > 0.3 {
		sig.negativeBoost += 1.5
		sig.indicators = append(sig.indicators, labelRaisedVoice)
	}

	exclamations := strings.Count(raw, "!")
	questions := strings.Count(raw, "?")

	if exclamations >= 3 {
		sig.negativeBoost += 1
		sig.indicators = append(sig.indicators, labelExcessivePunct)
	}
	if exclamations >= 2 && questions >= 1 {
		sig.negativeBoost += 0.5
		sig.indicators = append(sig.indicators, labelFrustratedAsking)
	}

	return sig
}
