package sentiment

import (
	"regexp"
	"strings"
)

// polarity marks which score accumulator an indicator feeds.
type polarity int

const (
	polarityNegative polarity = iota
	polarityPositive
)

// indicatorKind distinguishes plain keyword matching from regex matching.
type indicatorKind int

const (
	kindKeyword indicatorKind = iota
	kindRegex
)

// indicator is one weighted signal in the scoring tables. All table
// entries share this shape and are iterated uniformly, whatever their
// matching mechanism.
type indicator struct {
	id       string
	kind     indicatorKind
	weight   float64
	polarity polarity
	phrase   string         // kindKeyword
	re       *regexp.Regexp // kindRegex
}

// matches reports whether the indicator fires on the lower-cased text.
func (i indicator) matches(text string) bool {
	if i.kind == kindKeyword {
		return strings.Contains(text, i.phrase)
	}
	return i.re.MatchString(text)
}

// keyword builds a keyword indicator whose id is the phrase itself.
func keyword(phrase string, weight float64, p polarity) indicator {
	return indicator{id: phrase, kind: kindKeyword, weight: weight, polarity: p, phrase: phrase}
}

// Keyword category weights: strong negative 3, moderate negative 2,
// escalation context 1, positive 2.
var keywordIndicators = []indicator{
	// Strong negative
	keyword("this is ridiculous", 3, polarityNegative),
	keyword("unacceptable", 3, polarityNegative),
	keyword("terrible", 3, polarityNegative),
	keyword("horrible", 3, polarityNegative),
	keyword("worst", 3, polarityNegative),
	keyword("furious", 3, polarityNegative),
	keyword("outraged", 3, polarityNegative),
	keyword("fed up", 3, polarityNegative),
	keyword("scam", 3, polarityNegative),
	keyword("lawsuit", 3, polarityNegative),

	// Moderate negative
	keyword("frustrated", 2, polarityNegative),
	keyword("frustrating", 2, polarityNegative),
	keyword("annoyed", 2, polarityNegative),
	keyword("disappointed", 2, polarityNegative),
	keyword("upset", 2, polarityNegative),
	keyword("unhappy", 2, polarityNegative),
	keyword("not working", 2, polarityNegative),
	keyword("doesn't work", 2, polarityNegative),
	keyword("broken", 2, polarityNegative),
	keyword("useless", 2, polarityNegative),
	keyword("waste of time", 2, polarityNegative),
	keyword("angry", 2, polarityNegative),

	// Escalation context
	keyword("supervisor", 1, polarityNegative),
	keyword("manager", 1, polarityNegative),
	keyword("complaint", 1, polarityNegative),
	keyword("cancel my account", 1, polarityNegative),
	keyword("refund", 1, polarityNegative),
	keyword("escalate", 1, polarityNegative),
	keyword("attorney", 1, polarityNegative),
	keyword("better business bureau", 1, polarityNegative),

	// Positive
	keyword("thank you", 2, polarityPositive),
	keyword("thanks", 2, polarityPositive),
	keyword("appreciate", 2, polarityPositive),
	keyword("great", 2, polarityPositive),
	keyword("perfect", 2, polarityPositive),
	keyword("excellent", 2, polarityPositive),
	keyword("wonderful", 2, polarityPositive),
	keyword("awesome", 2, polarityPositive),
	keyword("resolved", 2, polarityPositive),
	keyword("happy", 2, polarityPositive),
	keyword("helpful", 2, polarityPositive),
}

// Nuance pattern labels. Indicator ids double as the labels surfaced in
// SentimentResult.Indicators.
const (
	labelSarcasm           = "sarcasm"
	labelPassiveAggression = "passive aggression"
	labelUrgentLanguage    = "urgent language"
	labelRepeatedAttempts  = "repeated attempts"
	labelBusinessImpact    = "business impact"
	labelLoyaltyMention    = "loyalty mention"
	labelRelief            = "relief"
	labelRaisedVoice       = "raised voice"
	labelEmphasis          = "emphasis"
	labelExcessivePunct    = "excessive punctuation"
	labelFrustratedAsking  = "frustrated questioning"
)

// Nuance patterns: at most one match per category counts.
var nuanceIndicators = []indicator{
	{
		id: labelSarcasm, kind: kindRegex, weight: 2, polarity: polarityNegative,
		re: regexp.MustCompile(`\b(oh,? (great|wonderful|perfect|fantastic)|just (great|wonderful)|thanks for nothing)\b`),
	},
	{
		id: labelPassiveAggression, kind: kindRegex, weight: 1.5, polarity: polarityNegative,
		re: regexp.MustCompile(`\b(fine,? whatever|whatever you say|i guess|if you say so|sure,? fine)\b`),
	},
	{
		id: labelUrgentLanguage, kind: kindRegex, weight: 2, polarity: polarityNegative,
		re: regexp.MustCompile(`\b(asap|immediately|right now|urgent(ly)?|can'?t wait any longer)\b`),
	},
	{
		id: labelRepeatedAttempts, kind: kindRegex, weight: 2.5, polarity: polarityNegative,
		re: regexp.MustCompile(`\b((second|third|fourth|fifth|\d+(st|nd|rd|th)) time|called (twice|before|already)|over and over|again and again|keep (calling|trying|asking))\b`),
	},
	{
		id: labelBusinessImpact, kind: kindRegex, weight: 2.5, polarity: polarityNegative,
		re: regexp.MustCompile(`\b(losing (money|customers|business|sales)|costing (us|me|my company)|revenue (loss|impact)|production (is )?(down|outage)|blocking (our|my) (work|team|business))\b`),
	},
	{
		id: labelLoyaltyMention, kind: kindRegex, weight: 1.5, polarity: polarityNegative,
		re: regexp.MustCompile(`\b(loyal customer|(customer|client|member) for \d+ years|years of (loyalty|business)|long[- ]time customer)\b`),
	},
	{
		id: labelRelief, kind: kindRegex, weight: 1.5, polarity: polarityPositive,
		re: regexp.MustCompile(`\b(finally works|what a relief|glad (that|it)('s| is| was)? (over|fixed|resolved|sorted)|works now)\b`),
	},
}

// Intensity modifiers. Amplifiers push the score multiplier up toward
// the 1.3 cap, diminishers pull it down toward the 0.7 floor.
var amplifierWords = []string{
	"very", "extremely", "absolutely", "completely", "totally", "utterly", "so",
}

var diminisherPhrases = []string{
	"a little", "slightly", "somewhat", "a bit", "kind of", "sort of", "not too",
}

const (
	intensityStep  = 0.15
	intensityCap   = 1.3
	intensityFloor = 0.7
)
