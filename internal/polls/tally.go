package polls

import (
	"bus2ride/pkg/domain"
	"strings"
)

// Percent returns count/total as a whole percentage rounded half up. A zero
// total yields 0.
func Percent(count, total int64) int {
	if total <= 0 || count <= 0 {
		return 0
	}

	return int((count*200 + total) / (2 * total))
}

// Tally computes per-option results for poll. Votes for labels that are not
// poll options are ignored. Percentages are rounded independently, so they
// need not add up to 100.
func Tally(poll domain.Poll, votes domain.Votes) domain.PollResult {
	res := domain.PollResult{
		Poll:    poll,
		Options: make([]domain.OptionResult, 0, len(poll.Options)),
	}

	for _, o := range poll.Options {
		res.TotalVotes += votes[o]
	}

	var top int64
	for _, o := range poll.Options {
		count := votes[o]
		top = max(top, count)
		res.Options = append(res.Options, domain.OptionResult{
			Option:  o,
			Votes:   count,
			Percent: Percent(count, res.TotalVotes),
		})
	}
	res.ConsensusPercent = Percent(top, res.TotalVotes)

	return res
}

// Slugify lowercases label and collapses every run of characters other than
// a-z and 0-9 into a single dash. Labels without any such characters become
// "option".
func Slugify(label string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(label)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)

			continue
		}
		dash = true
	}

	if b.Len() == 0 {
		return "option"
	}

	return b.String()
}
