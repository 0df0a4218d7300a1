package domain

import "strings"

// PollID identifies a poll in the registry, e.g. "partybus_vs_limo".
type PollID string

// AutogenPrefix marks generated "opinion" polls that are hidden from curated
// listings.
const AutogenPrefix = "Your opinion on"

// Poll is a static question with a fixed option list.
type Poll struct {
	ID       PollID   `json:"id"       yaml:"id"`
	Question string   `json:"question" yaml:"question"`
	Options  []string `json:"options"  yaml:"options"`
	// Category is the results page section, e.g. "party-bus" or "weddings".
	Category string `json:"category" yaml:"category"`
	// Tags link the poll to event and vehicle pages.
	Tags []string `json:"tags,omitempty" yaml:"tags"`
}

// Autogenerated reports whether the poll was generated from a template rather
// than curated.
func (p Poll) Autogenerated() bool {
	return strings.HasPrefix(p.Question, AutogenPrefix)
}

// HasOption reports whether option is one of the poll options.
func (p Poll) HasOption(option string) bool {
	for _, o := range p.Options {
		if o == option {
			return true
		}
	}

	return false
}

// Votes maps an option label to its vote count.
type Votes map[string]int64

// Total sums all counts.
func (v Votes) Total() int64 {
	var total int64
	for _, c := range v {
		total += c
	}

	return total
}

// OptionResult is a single option's tally.
type OptionResult struct {
	Option  string `json:"option"`
	Votes   int64  `json:"votes"`
	Percent int    `json:"percent"`
}

// PollResult is a poll together with its tallied options.
type PollResult struct {
	Poll Poll `json:"poll"`
	// Options follow the poll's option order.
	Options    []OptionResult `json:"options"`
	TotalVotes int64          `json:"totalVotes"`
	// ConsensusPercent is the share of the leading option, 0 when nobody voted.
	ConsensusPercent int `json:"consensusPercent"`
}
