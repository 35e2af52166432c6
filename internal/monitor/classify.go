package monitor

import (
	"regexp"
	"strings"

	"github.com/petro438/PM-Intel/internal/domain"
)

// categoryPatterns is the ordered keyword taxonomy. Groups are evaluated top
// to bottom and the first match wins, so a title matching both sports and
// politics terms classifies as sports.
var categoryPatterns = []struct {
	re       *regexp.Regexp
	category domain.Category
}{
	{regexp.MustCompile(`nfl|nba|mlb|nhl|soccer|sport|championship|playoff`), domain.CategorySports},
	{regexp.MustCompile(`trump|biden|election|congress|president|democrat|republican`), domain.CategoryPolitics},
	{regexp.MustCompile(`bitcoin|crypto|eth|btc|ethereum`), domain.CategoryCrypto},
	{regexp.MustCompile(`fed|rate|recession|inflation|unemployment|gdp`), domain.CategoryEconomics},
}

// Classify maps a market title to its topical category. This is a heuristic:
// titles matching no group fall through to CategoryOther, never to an error.
func Classify(title string) domain.Category {
	lower := strings.ToLower(title)
	for _, p := range categoryPatterns {
		if p.re.MatchString(lower) {
			return p.category
		}
	}
	return domain.CategoryOther
}
