package preferences

import (
	"strings"
	"time"

	"mfsim/internal/valueitem"
)

// Filter restricts the job inputs or job results listed to the user. Empty
// criteria match everything.
type Filter struct {
	AfterTimestamp  string
	BeforeTimestamp string
	ContainsPhrase  string
}

// IsEmpty reports whether no criterion is set
func (f Filter) IsEmpty() bool {
	return f.AfterTimestamp == "" && f.BeforeTimestamp == "" && f.ContainsPhrase == ""
}

// Matches reports whether an entry created at timestamp with description
// passes the filter. Timestamps that do not parse are ignored.
func (f Filter) Matches(timestamp time.Time, description string) bool {
	if after, ok := parseFilterTimestamp(f.AfterTimestamp); ok && !timestamp.After(after) {
		return false
	}
	if before, ok := parseFilterTimestamp(f.BeforeTimestamp); ok && !timestamp.Before(before) {
		return false
	}
	if f.ContainsPhrase != "" && !strings.Contains(strings.ToLower(description), strings.ToLower(f.ContainsPhrase)) {
		return false
	}
	return true
}

func parseFilterTimestamp(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(valueitem.TimestampLayout, value, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (f *Filter) clear() bool {
	changed := !f.IsEmpty()
	*f = Filter{}
	return changed
}

// Job input filter

func (s *Store) JobInputFilter() Filter { return s.jobInputFilter }

func (s *Store) HasJobInputFilter() bool { return !s.jobInputFilter.IsEmpty() }

// ClearJobInputFilter resets all criteria and reports whether any was set
func (s *Store) ClearJobInputFilter() bool { return s.jobInputFilter.clear() }

func (s *Store) JobInputFilterAfterTimestamp() string { return s.jobInputFilter.AfterTimestamp }

func (s *Store) SetJobInputFilterAfterTimestamp(timestamp string) Result[string] {
	return assignText(&s.jobInputFilter.AfterTimestamp, timestamp)
}

func (s *Store) JobInputFilterBeforeTimestamp() string { return s.jobInputFilter.BeforeTimestamp }

func (s *Store) SetJobInputFilterBeforeTimestamp(timestamp string) Result[string] {
	return assignText(&s.jobInputFilter.BeforeTimestamp, timestamp)
}

func (s *Store) JobInputFilterContainsPhrase() string { return s.jobInputFilter.ContainsPhrase }

func (s *Store) SetJobInputFilterContainsPhrase(phrase string) Result[string] {
	return assignText(&s.jobInputFilter.ContainsPhrase, phrase)
}

// Job result filter

func (s *Store) JobResultFilter() Filter { return s.jobResultFilter }

func (s *Store) HasJobResultFilter() bool { return !s.jobResultFilter.IsEmpty() }

func (s *Store) ClearJobResultFilter() bool { return s.jobResultFilter.clear() }

func (s *Store) JobResultFilterAfterTimestamp() string { return s.jobResultFilter.AfterTimestamp }

func (s *Store) SetJobResultFilterAfterTimestamp(timestamp string) Result[string] {
	return assignText(&s.jobResultFilter.AfterTimestamp, timestamp)
}

func (s *Store) JobResultFilterBeforeTimestamp() string { return s.jobResultFilter.BeforeTimestamp }

func (s *Store) SetJobResultFilterBeforeTimestamp(timestamp string) Result[string] {
	return assignText(&s.jobResultFilter.BeforeTimestamp, timestamp)
}

func (s *Store) JobResultFilterContainsPhrase() string { return s.jobResultFilter.ContainsPhrase }

func (s *Store) SetJobResultFilterContainsPhrase(phrase string) Result[string] {
	return assignText(&s.jobResultFilter.ContainsPhrase, phrase)
}
