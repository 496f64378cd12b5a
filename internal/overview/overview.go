// Package overview derives per-contestant score summaries from raw rating
// records. Every call recomputes from the record set it is handed; nothing
// is cached or incrementally maintained, so readers always see whatever the
// store returned for their scope.
package overview

import (
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/jason-s-yu/eurovote/internal/contestants"
	"github.com/jason-s-yu/eurovote/internal/models"
)

// Summary is the aggregated view of one contestant within some scope (one
// room or global). A nil average means no score in that category was ever
// submitted within the scope; it is never conflated with 0.
type Summary struct {
	ContestantID   string   `json:"contestant_id"`
	AvgMusic       *float64 `json:"avg_music"`
	AvgPerformance *float64 `json:"avg_performance"`
	AvgVibes       *float64 `json:"avg_vibes"`
	TotalAvg       *float64 `json:"total_avg"`
	NumRaters      int      `json:"num_raters"`
}

// round1 rounds half away from zero to one decimal place. Applied only to
// emitted values; sums accumulate at full precision.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

type accumulator struct {
	sum float64
	n   int
}

func (a *accumulator) add(score *int) {
	if score == nil {
		return
	}
	a.sum += float64(*score)
	a.n++
}

func (a accumulator) mean() (float64, bool) {
	if a.n == 0 {
		return 0, false
	}
	return a.sum / float64(a.n), true
}

// Summarize aggregates the given records for a single contestant. Records
// for other contestants must not be passed in; the function trusts the
// caller's scoping. TotalAvg is the mean of the unrounded category means,
// not the mean of all raw scores, so a category with few votes carries the
// same weight as a heavily voted one. NumRaters counts distinct users; a
// user who scored only one category still counts once.
func Summarize(contestantID string, ratings []models.Rating) Summary {
	var music, performance, vibes accumulator
	raters := make(map[uuid.UUID]struct{}, len(ratings))

	for _, r := range ratings {
		raters[r.UserID] = struct{}{}
		music.add(r.MusicScore)
		performance.add(r.PerformanceScore)
		vibes.add(r.VibesScore)
	}

	s := Summary{ContestantID: contestantID, NumRaters: len(raters)}

	var catSum float64
	var catN int
	emit := func(dst **float64, a accumulator) {
		m, ok := a.mean()
		if !ok {
			return
		}
		catSum += m
		catN++
		rounded := round1(m)
		*dst = &rounded
	}
	emit(&s.AvgMusic, music)
	emit(&s.AvgPerformance, performance)
	emit(&s.AvgVibes, vibes)

	if catN > 0 {
		total := round1(catSum / float64(catN))
		s.TotalAvg = &total
	}
	return s
}

// GroupByContestant buckets the records by contestant and summarizes each
// bucket. Contestants with no records in the input are omitted. Results
// follow the lineup's running order; unknown contestant ids sort last,
// lexicographically.
func GroupByContestant(ratings []models.Rating) []Summary {
	byContestant := make(map[string][]models.Rating)
	for _, r := range ratings {
		byContestant[r.ContestantID] = append(byContestant[r.ContestantID], r)
	}

	out := make([]Summary, 0, len(byContestant))
	for id, group := range byContestant {
		out = append(out, Summarize(id, group))
	}

	sort.Slice(out, func(i, j int) bool {
		oi := contestants.OrderIndex(out[i].ContestantID)
		oj := contestants.OrderIndex(out[j].ContestantID)
		if oi != oj {
			if oi == -1 {
				return false
			}
			if oj == -1 {
				return true
			}
			return oi < oj
		}
		return out[i].ContestantID < out[j].ContestantID
	})
	return out
}
