// Package merge combines record sets from multiple sources into one
// deduplicated set with deterministic precedence.
package merge

import "github.com/jonathan/depthchart-compiler/internal/types"

// Merge deduplicates two ordered record lists by identity triple. Primary
// records win every collision whole-record: when a key collides, the
// secondary record is discarded entirely, distinguishing fields included.
// Output order is primary records in their original order, then newly added
// secondary records in theirs. Inputs are never mutated.
func Merge(primary, secondary []types.PlayerRecord) []types.PlayerRecord {
	out := make([]types.PlayerRecord, 0, len(primary)+len(secondary))
	seen := make(map[string]struct{}, len(primary)+len(secondary))

	for _, rec := range primary {
		key := rec.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, rec)
	}

	for _, rec := range secondary {
		key := rec.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, rec)
	}

	return out
}
