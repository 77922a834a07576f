package extract

import (
	"regexp"
	"strings"
)

const fallbackMaxRunes = 48

var (
	versusPattern     = regexp.MustCompile(`(?i)^(.+?)\s+(?:vs\.?|v\.)\s+(.+)$`)
	dashPattern       = regexp.MustCompile(`^(.+?)\s+[-–—]\s+(.+)$`)
	eventLabelPattern = regexp.MustCompile(`(?i)\b(?:event|tournament|league|stage)\s*:\s*([^\n|]+)`)
)

type TeamPair struct {
	Team1 string
	Team2 string
}

// PairParser is one step of the team-pair chain. It reports false when the text does not fit its pattern.
type PairParser interface {
	ParsePair(text string) (TeamPair, bool)
}

type PairParserFunc func(text string) (TeamPair, bool)

func (f PairParserFunc) ParsePair(text string) (TeamPair, bool) {
	return f(text)
}

// Chain tries parsers in order and returns the first result.
type Chain []PairParser

func DefaultChain() Chain {
	return Chain{VersusParser(), DashParser(), FallbackParser(fallbackMaxRunes)}
}

func (c Chain) Parse(text string) TeamPair {
	text = collapse(text)
	if text == "" {
		return TeamPair{}
	}

	for _, parser := range c {
		if pair, ok := parser.ParsePair(text); ok {
			return pair
		}
	}

	return TeamPair{}
}

// VersusParser handles "TeamA vs TeamB", "TeamA vs. TeamB" and "TeamA v. TeamB".
func VersusParser() PairParser {
	return patternParser(versusPattern)
}

// DashParser handles "TeamA - TeamB" with a hyphen, en dash or em dash surrounded by spaces.
func DashParser() PairParser {
	return patternParser(dashPattern)
}

// FallbackParser takes the leading window of at most maxRunes runes as the first team and leaves the second empty.
func FallbackParser(maxRunes int) PairParser {
	return PairParserFunc(func(text string) (TeamPair, bool) {
		team1 := window(text, maxRunes)
		if team1 == "" {
			return TeamPair{}, false
		}

		return TeamPair{Team1: team1}, true
	})
}

func patternParser(pattern *regexp.Regexp) PairParser {
	return PairParserFunc(func(text string) (TeamPair, bool) {
		groups := pattern.FindStringSubmatch(text)
		if groups == nil {
			return TeamPair{}, false
		}

		pair := TeamPair{Team1: strings.TrimSpace(groups[1]), Team2: strings.TrimSpace(groups[2])}
		if pair.Team1 == "" || pair.Team2 == "" {
			return TeamPair{}, false
		}

		return pair, true
	})
}

// ParseEvent finds a labeled field such as "Event:", "Tournament:", "League:" or "Stage:".
// It returns an empty string when no label is present.
func ParseEvent(text string) string {
	groups := eventLabelPattern.FindStringSubmatch(text)
	if groups == nil {
		return ""
	}

	return collapse(groups[1])
}

// stripLabels removes labeled fields so that they do not leak into team names.
func stripLabels(text string) string {
	return strings.Trim(collapse(eventLabelPattern.ReplaceAllString(text, "\n")), " |")
}

func collapse(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func window(text string, maxRunes int) string {
	text = collapse(text)
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text
	}

	cut := string(runes[:maxRunes])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}

	return strings.TrimSpace(cut)
}
