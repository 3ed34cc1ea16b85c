package service

import (
	"time"

	"repoinventory/internal/platform/logger"
	ptime "repoinventory/internal/platform/time"
	"repoinventory/internal/services/consolidate/domain"
)

// Deduper keeps one owner record per normalized repo name: the one with the
// latest commit date. Only a strictly later date replaces the current winner,
// so ties keep the row seen first
type Deduper struct {
	norm   domain.Normalizer
	policy domain.DatePolicy
	index  map[string]domain.OwnerRecord
	stats  *domain.Stats
	log    *logger.Logger
}

// NewDeduper builds an empty Deduper. stats may be nil
func NewDeduper(n domain.Normalizer, policy domain.DatePolicy, stats *domain.Stats) *Deduper {
	if stats == nil {
		stats = &domain.Stats{}
	}
	return &Deduper{
		norm:   n,
		policy: policy,
		index:  make(map[string]domain.OwnerRecord),
		stats:  stats,
		log:    logger.Named("dedupe"),
	}
}

// Add offers rec to the index. line is only used for logging
func (d *Deduper) Add(rec domain.OwnerRecord, line int) {
	d.stats.OwnerRows++
	key := d.norm.Normalize(rec.Repo)

	cand, err := ptime.ParseCommit(rec.LastCommitDate)
	if err != nil {
		d.stats.MalformedDates++
		cand = d.fallback()
		d.log.Warn().
			Str("repo", rec.Repo).
			Str("last_commit_date", rec.LastCommitDate).
			Int("line", line).
			Str("policy", string(d.policy)).
			AnErr("parse_err", err).
			Msg("dedupe: malformed commit date; substituting comparison time")
	}

	cur, exists := d.index[key]
	if !exists {
		d.index[key] = rec
		d.stats.OwnerKeys++
		return
	}

	// the winner's date is parsed again on every comparison, never cached
	if cand.After(d.compareTime(cur.LastCommitDate)) {
		d.index[key] = rec
		d.stats.Replaced++
	}
}

// Lookup returns the winning record for a repo name
func (d *Deduper) Lookup(repo string) (domain.OwnerRecord, bool) {
	rec, ok := d.index[d.norm.Normalize(repo)]
	return rec, ok
}

// compareTime parses raw or falls back per policy
func (d *Deduper) compareTime(raw string) time.Time {
	if t, err := ptime.ParseCommit(raw); err == nil {
		return t
	}
	return d.fallback()
}

func (d *Deduper) fallback() time.Time {
	if d.policy == domain.DatePolicyEpoch {
		return time.Time{}
	}
	return ptime.Now()
}
