package vault

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// ConflictPolicy decides what happens when an imported alias already
// exists in the store.
type ConflictPolicy string

const (
	// ConflictSkip keeps the existing entry and drops the incoming one.
	ConflictSkip ConflictPolicy = "skip"
	// ConflictOverwrite replaces the existing entry with the incoming one.
	ConflictOverwrite ConflictPolicy = "overwrite"
	// ConflictFail aborts the whole import on the first conflict, leaving
	// the store exactly as it was.
	ConflictFail ConflictPolicy = "fail"
)

// ParseConflictPolicy maps a case-insensitive policy name.
func ParseConflictPolicy(s string) (ConflictPolicy, error) {
	switch ConflictPolicy(strings.ToLower(s)) {
	case ConflictSkip:
		return ConflictSkip, nil
	case ConflictOverwrite:
		return ConflictOverwrite, nil
	case ConflictFail:
		return ConflictFail, nil
	}
	return "", fmt.Errorf("unknown conflict policy: %q", s)
}

// Action records what Import did with one alias.
type Action string

const (
	ActionAdded       Action = "added"
	ActionSkipped     Action = "skipped"
	ActionOverwritten Action = "overwritten"
)

// ReportLine is one alias of an import report.
type ReportLine struct {
	Alias  string
	Action Action
}

// Report enumerates every imported alias and the action taken, in input
// order. An import is never silently partial.
type Report []ReportLine

// exportedEntry is the exchange-format shape: entryJSON plus the alias,
// since the export form is a flat array rather than a keyed map.
type exportedEntry struct {
	Alias string `json:"alias"`
	entryJSON
}

// Export flattens the store into the plaintext exchange format: a JSON
// array of entry objects, alphabetical by alias, covering every attribute
// including live HOTP counters. The caller decides where the bytes go,
// and should remember they are not encrypted.
func (s *Store) Export() ([]byte, error) {
	out := make([]exportedEntry, 0, len(s.entries))
	for _, e := range s.List() {
		j, err := marshalEntry(e)
		if err != nil {
			return nil, err
		}
		out = append(out, exportedEntry{Alias: e.Alias, entryJSON: j})
	}
	return json.MarshalIndent(out, "", "  ")
}

// Import merges an exchange-format collection into the store under the
// given conflict policy. The merge is staged on a scratch copy and only
// committed if every entry succeeds, so a ConflictFail abort or a
// malformed entry leaves the store with zero mutations.
func (s *Store) Import(data []byte, policy ConflictPolicy) (Report, error) {
	var incoming []exportedEntry
	if err := json.Unmarshal(data, &incoming); err != nil {
		return nil, fmt.Errorf("parsing import data: %w", err)
	}

	staged := make(map[string]Entry, len(s.entries)+len(incoming))
	for alias, e := range s.entries {
		staged[alias] = e
	}

	report := make(Report, 0, len(incoming))
	seen := make(map[string]bool, len(incoming))

	for _, in := range incoming {
		e, err := unmarshalEntry(in.Alias, in.entryJSON)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", in.Alias, err)
		}
		if seen[in.Alias] {
			return nil, fmt.Errorf("%w: alias %q appears twice in import data", ErrImportConflict, in.Alias)
		}
		seen[in.Alias] = true

		_, exists := s.entries[in.Alias]
		switch {
		case !exists:
			staged[in.Alias] = e
			report = append(report, ReportLine{Alias: in.Alias, Action: ActionAdded})
		case policy == ConflictSkip:
			report = append(report, ReportLine{Alias: in.Alias, Action: ActionSkipped})
		case policy == ConflictOverwrite:
			staged[in.Alias] = e
			report = append(report, ReportLine{Alias: in.Alias, Action: ActionOverwritten})
		default: // ConflictFail
			return nil, fmt.Errorf("%w: alias %q already exists", ErrImportConflict, in.Alias)
		}
	}

	s.entries = staged
	return report, nil
}

// Conflicts previews the aliases an import would collide with, useful for
// a dry-run message before choosing a policy.
func (s *Store) Conflicts(data []byte) ([]string, error) {
	var incoming []exportedEntry
	if err := json.Unmarshal(data, &incoming); err != nil {
		return nil, fmt.Errorf("parsing import data: %w", err)
	}
	var conflicts []string
	for _, in := range incoming {
		if _, ok := s.entries[in.Alias]; ok {
			conflicts = append(conflicts, in.Alias)
		}
	}
	sort.Strings(conflicts)
	return conflicts, nil
}
