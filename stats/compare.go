package stats

import (
	"github.com/ayoisaiah/quiver/internal/session"
)

// Default comparison conditions.
const (
	DefaultCompareDistance = 18
	DefaultCompareTarget   = session.Face40cm
)

// CompareOptions selects the shooting conditions sessions must match to be
// compared.
type CompareOptions struct {
	TargetType session.TargetType
	Distance   int
}

// GroupCounts holds the number of sessions that contributed to each side of
// a comparison.
type GroupCounts struct {
	Training    int `json:"training"`
	Competition int `json:"competition"`
}

// Comparison contrasts competition and training performance. A positive
// Delta means competition outperforms training.
type Comparison struct {
	TrainingAvg    *float64           `json:"trainingAvg"`
	CompetitionAvg *float64           `json:"competitionAvg"`
	Delta          *float64           `json:"delta"`
	TargetType     session.TargetType `json:"targetType"`
	SessionsCount  GroupCounts        `json:"sessionsCount"`
	Distance       int                `json:"distance"`
}

// CompareSubpopulations compares the average volley score of competition and
// training sessions shot at the same distance on the same target type.
func CompareSubpopulations(
	sessions []session.Session,
	opts CompareOptions,
) Comparison {
	if opts.Distance == 0 {
		opts.Distance = DefaultCompareDistance
	}

	if opts.TargetType == "" {
		opts.TargetType = DefaultCompareTarget
	}

	target := session.CompactLower(string(opts.TargetType))

	var training, competition []float64

	for i := range sessions {
		s := &sessions[i]

		if s.Distance != opts.Distance ||
			session.CompactLower(string(s.TargetType)) != target {
			continue
		}

		avg, ok := averageVolleyTotal(s)
		if !ok {
			continue
		}

		switch s.Kind {
		case session.Training:
			training = append(training, avg)
		case session.Competition:
			competition = append(competition, avg)
		}
	}

	cmp := Comparison{
		Distance:       opts.Distance,
		TargetType:     opts.TargetType,
		TrainingAvg:    optional(Mean(training)),
		CompetitionAvg: optional(Mean(competition)),
		SessionsCount: GroupCounts{
			Training:    len(training),
			Competition: len(competition),
		},
	}

	if cmp.TrainingAvg != nil && cmp.CompetitionAvg != nil {
		cmp.Delta = optional(*cmp.CompetitionAvg-*cmp.TrainingAvg, true)
	}

	return cmp
}

// averageVolleyTotal is the mean of all volley totals of s. A session without
// any scored arrow has no average.
func averageVolleyTotal(s *session.Session) (float64, bool) {
	if s.ArrowCount() == 0 {
		return 0, false
	}

	totals := make([]float64, 0, len(s.Volleys))
	for i := range s.Volleys {
		totals = append(totals, float64(s.Volleys[i].Total))
	}

	return Mean(totals)
}
