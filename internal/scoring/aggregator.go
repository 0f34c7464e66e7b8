package scoring

import "github.com/alexanderramin/compass/internal/domain"

// DomainScore holds the latest averaged rating for one assessment domain,
// plus the previous snapshot's average for trend display. Scores stay on the
// source assessment's rating scale; no normalization happens here.
type DomainScore struct {
	DomainID string
	Current  float64
	Prior    *float64
}

// LatestDomainScores collapses a user's snapshots into one score per domain.
//
// Snapshots must be ordered most-recent-first. Only the first snapshot per
// assessment id contributes the current score; the second contributes the
// prior score; later snapshots for an already-seen assessment are discarded.
// questionDomains maps question id to its owning domain id. A domain with no
// matching ratings contributes no entry (absent, not zero).
func LatestDomainScores(snapshots []domain.CapabilitySnapshot, questionDomains map[string]string) map[string]DomainScore {
	seen := make(map[string]int) // assessment id -> snapshots kept so far
	current := make(map[string]*avg)
	prior := make(map[string]*avg)

	for _, snap := range snapshots {
		rank := seen[snap.AssessmentID]
		if rank >= 2 {
			continue
		}
		seen[snap.AssessmentID] = rank + 1

		target := current
		if rank == 1 {
			target = prior
		}
		for _, r := range snap.Ratings {
			domainID, ok := questionDomains[r.QuestionID]
			if !ok {
				continue
			}
			a := target[domainID]
			if a == nil {
				a = &avg{}
				target[domainID] = a
			}
			a.add(r.Rating)
		}
	}

	scores := make(map[string]DomainScore, len(current))
	for domainID, a := range current {
		s := DomainScore{DomainID: domainID, Current: a.value()}
		if p, ok := prior[domainID]; ok {
			v := p.value()
			s.Prior = &v
		}
		scores[domainID] = s
	}
	return scores
}

type avg struct {
	sum   float64
	count int
}

func (a *avg) add(v float64) {
	a.sum += v
	a.count++
}

func (a *avg) value() float64 {
	if a.count == 0 {
		return 0
	}
	return a.sum / float64(a.count)
}
