package extract

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andrewshostak/esports-notifier/errs"
	"github.com/andrewshostak/esports-notifier/internal/app/models"
)

const (
	contextMaxRunes = 200

	blockSelector = `[class*="match"], li, tr, article`
	teamSelector  = `[class*="team"], [class*="Team"]`
	eventSelector = `[class*="event"], [class*="Event"]`
)

var matchPathPattern = regexp.MustCompile(`/matches?/(\d+)(?:[/?#]|$)`)

type Extractor struct {
	upstream Upstream
	chain    Chain
	logger   Logger
}

// NewExtractor builds an extractor. Without parsers the default vs / dash / fallback chain is used.
func NewExtractor(upstream Upstream, logger Logger, parsers ...PairParser) *Extractor {
	chain := Chain(parsers)
	if len(chain) == 0 {
		chain = DefaultChain()
	}

	return &Extractor{upstream: upstream, chain: chain, logger: logger}
}

// Extract fetches the upstream document for the team and turns it into candidates.
// Fetch failures are returned as errs.FetchError.
func (e *Extractor) Extract(ctx context.Context, team string) ([]models.MatchCandidate, error) {
	doc, err := e.upstream.Fetch(ctx, team)
	if err != nil {
		if errors.As(err, &errs.FetchError{}) {
			return nil, err
		}

		return nil, errs.NewFetchError("upstream", 0, err)
	}

	if doc == nil {
		return []models.MatchCandidate{}, nil
	}

	return e.Parse(*doc)
}

// Parse extracts candidates from structured records first, then from the document body.
// Candidates are unique by id within one call, the first occurrence wins. Fragments without
// a recognizable team pair are kept with empty team names.
func (e *Extractor) Parse(doc models.Document) ([]models.MatchCandidate, error) {
	base, err := url.Parse(doc.BaseURL)
	if err != nil || doc.BaseURL == "" {
		base = nil
	}

	candidates := make([]models.MatchCandidate, 0)
	seen := map[string]struct{}{}
	add := func(candidate models.MatchCandidate) {
		if candidate.ID == "" {
			return
		}

		if _, ok := seen[candidate.ID]; ok {
			return
		}

		seen[candidate.ID] = struct{}{}
		if candidate.Team2 == "" {
			e.logger.Debug().Str("match_id", candidate.ID).Str("context", candidate.Context).Msg("fragment does not fit a team pair pattern")
		}

		candidates = append(candidates, candidate)
	}

	for _, record := range doc.Records {
		add(e.fromRecord(record, base))
	}

	if strings.TrimSpace(doc.Body) == "" {
		return candidates, nil
	}

	page, err := goquery.NewDocumentFromReader(strings.NewReader(doc.Body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s document: %w", doc.Source, err)
	}

	page.Find("a[href]").Each(func(_ int, anchor *goquery.Selection) {
		if candidate, ok := e.fromAnchor(anchor, base); ok {
			add(candidate)
		}
	})

	return candidates, nil
}

func (e *Extractor) fromRecord(record models.RawMatch, base *url.URL) models.MatchCandidate {
	candidate := models.MatchCandidate{
		ID:      strings.TrimSpace(record.ID),
		Team1:   collapse(record.Team1),
		Team2:   collapse(record.Team2),
		Event:   collapse(record.Event),
		Link:    resolveLink(base, record.URL),
		Stream:  strings.TrimSpace(record.Stream),
		Context: window(record.Name, contextMaxRunes),
	}

	if candidate.Team1 == "" && candidate.Team2 == "" {
		pair := e.chain.Parse(stripLabels(record.Name))
		candidate.Team1, candidate.Team2 = pair.Team1, pair.Team2
	}

	if candidate.Event == "" {
		candidate.Event = ParseEvent(record.Name)
	}

	return candidate
}

func (e *Extractor) fromAnchor(anchor *goquery.Selection, base *url.URL) (models.MatchCandidate, bool) {
	href, _ := anchor.Attr("href")
	id := matchIDFromPath(href)
	if id == "" {
		return models.MatchCandidate{}, false
	}

	text := anchor.Text()
	block := anchor.Parent().Closest(blockSelector)
	if block.Length() == 0 {
		block = anchor.Parent()
	}

	candidate := models.MatchCandidate{
		ID:      id,
		Link:    resolveLink(base, href),
		Context: window(text, contextMaxRunes),
		Event: firstNonEmpty(
			collapse(anchor.Find(eventSelector).First().Text()),
			ParseEvent(text),
			ParseEvent(block.Text()),
			collapse(block.Find(eventSelector).First().Text()),
		),
	}

	if hints := teamHints(anchor); len(hints) >= 2 {
		candidate.Team1, candidate.Team2 = hints[0], hints[1]
		return candidate, true
	}

	pair := e.chain.Parse(stripLabels(text))
	candidate.Team1, candidate.Team2 = pair.Team1, pair.Team2

	return candidate, true
}

// teamHints collects texts of the innermost team-classed elements, e.g. HLTV's "matchTeamName".
func teamHints(anchor *goquery.Selection) []string {
	hints := make([]string, 0, 2)
	anchor.Find(teamSelector).
		FilterFunction(func(_ int, s *goquery.Selection) bool {
			return s.Find(teamSelector).Length() == 0
		}).
		Each(func(_ int, s *goquery.Selection) {
			name := collapse(s.Text())
			if name == "" || (len(hints) > 0 && hints[len(hints)-1] == name) {
				return
			}
			hints = append(hints, name)
		})

	return hints
}

func matchIDFromPath(href string) string {
	groups := matchPathPattern.FindStringSubmatch(href)
	if groups == nil {
		return ""
	}

	return groups[1]
}

func resolveLink(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}

	ref, err := url.Parse(href)
	if err != nil || base == nil {
		return href
	}

	return base.ResolveReference(ref).String()
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}

	return ""
}
