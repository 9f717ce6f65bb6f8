package engine

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/vitabox/v1/internal/domain/catalog"
	"github.com/vitabox/v1/internal/domain/pricing"
	"github.com/vitabox/v1/internal/domain/recommendation"
)

// Reply markers the advisor model was prompted to emit before its
// recommendation block.
var replyMarkers = []string{"[영양제 추천]", "[추천]"}

// tabletUnit is the dosage unit marker in advisor replies (e.g. "2정").
const tabletUnit = "정"

// reasonExtracted annotates items that came from the advisor's free
// text rather than a selection rule.
const reasonExtracted = "AI 상담에서 추천된 영양제입니다"

var (
	reFirstInt     = regexp.MustCompile(`\d+`)
	reTabletAmount = regexp.MustCompile(`(\d+)\s*정`)
)

// FreeTextExtractor recovers (name, dosage) pairs from an advisor
// reply. It is the fallback path used to backfill the structured
// recommendation list; it tolerates arbitrary malformed input and
// never fails.
type FreeTextExtractor struct {
	catalog  *catalog.Catalog
	schedule *ScheduleBuilder
}

// NewFreeTextExtractor creates an extractor over the given catalog.
func NewFreeTextExtractor(cat *catalog.Catalog) *FreeTextExtractor {
	return &FreeTextExtractor{
		catalog:  cat,
		schedule: NewScheduleBuilder(),
	}
}

// Extract parses reply text into recommendations. Names that do not
// match a catalog entry exactly, and names already in the active
// subscription set, are silently dropped. The parsed dosage is used
// as-is for schedule generation; it is not recalculated.
func (x *FreeTextExtractor) Extract(reply string, activeNames []string) []recommendation.Recommendation {
	buffer := markerSegments(reply)
	if buffer == "" {
		return nil
	}

	active := make(map[string]struct{}, len(activeNames))
	for _, n := range activeNames {
		active[n] = struct{}{}
	}

	var out []recommendation.Recommendation
	seen := make(map[string]struct{})

	for _, line := range strings.Split(buffer, "\n") {
		line = strings.TrimSpace(line)
		if !keepLine(line) {
			continue
		}

		name, dosage := parseLine(line)
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		entry, ok := x.catalog.ByName(name)
		if !ok {
			continue
		}
		if _, subscribed := active[entry.Name]; subscribed {
			continue
		}
		if _, dup := seen[entry.ID]; dup {
			continue
		}
		seen[entry.ID] = struct{}{}

		if dosage < 1 {
			dosage = 1
		}

		out = append(out, recommendation.Recommendation{
			SupplementID: entry.ID,
			Name:         entry.Name,
			DailyDosage:  dosage,
			Schedule:     x.schedule.Build(entry.ID, dosage),
			Reason:       reasonExtracted,
			MonthlyPrice: pricing.ItemMonthlyPrice(entry.PricePerUnit, dosage),
		})
	}

	return out
}

// markerSegments collects the text following each recommendation
// marker, up to the next marker or end of text, newline-joined.
func markerSegments(reply string) string {
	type occurrence struct {
		start, end int
	}
	var occs []occurrence

	for _, marker := range replyMarkers {
		offset := 0
		for {
			idx := strings.Index(reply[offset:], marker)
			if idx < 0 {
				break
			}
			start := offset + idx
			occs = append(occs, occurrence{start: start, end: start + len(marker)})
			offset = start + len(marker)
		}
	}
	if len(occs) == 0 {
		return ""
	}

	sort.Slice(occs, func(i, j int) bool { return occs[i].start < occs[j].start })

	var segments []string
	for i, occ := range occs {
		limit := len(reply)
		if i+1 < len(occs) {
			limit = occs[i+1].start
		}
		if seg := strings.TrimSpace(reply[occ.end:limit]); seg != "" {
			segments = append(segments, seg)
		}
	}

	return strings.Join(segments, "\n")
}

// keepLine reports whether a buffer line looks like a recommendation
// item: bulleted, or containing a colon.
func keepLine(line string) bool {
	if line == "" {
		return false
	}
	return strings.HasPrefix(line, "-") ||
		strings.HasPrefix(line, "•") ||
		strings.Contains(line, ":")
}

// parseLine extracts a supplement name and dosage integer from one
// kept line. Colon split wins, then the digit-run + tablet unit
// boundary, then the first whitespace token with dosage 1.
func parseLine(line string) (string, int) {
	line = strings.TrimSpace(strings.TrimLeft(line, "-•"))

	if name, rest, found := strings.Cut(line, ":"); found {
		dosage := 1
		if m := reFirstInt.FindString(rest); m != "" {
			if v, err := strconv.Atoi(m); err == nil {
				dosage = v
			}
		}
		return name, dosage
	}

	if strings.Contains(line, tabletUnit) {
		if loc := reTabletAmount.FindStringSubmatchIndex(line); loc != nil {
			name := line[:loc[0]]
			v, err := strconv.Atoi(line[loc[2]:loc[3]])
			if err != nil {
				v = 1
			}
			return name, v
		}
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", 1
	}
	return fields[0], 1
}

// Merge applies the merge policy: the structured list is authoritative
// and an extracted item is appended only when no structured item
// shares its name. No name appears twice in the result.
func Merge(structured, extracted []recommendation.Recommendation) []recommendation.Recommendation {
	merged := make([]recommendation.Recommendation, 0, len(structured)+len(extracted))
	names := make(map[string]struct{}, len(structured))

	for _, r := range structured {
		merged = append(merged, r)
		names[r.Name] = struct{}{}
	}
	for _, r := range extracted {
		if _, exists := names[r.Name]; exists {
			continue
		}
		names[r.Name] = struct{}{}
		merged = append(merged, r)
	}

	return merged
}
