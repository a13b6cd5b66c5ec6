// Package conflict applies fixed per-type heuristics to pre-detected
// pairwise edit conflicts. It is a single-shot resolver over conflict
// descriptors, not a live collaboration protocol.
package conflict

const (
	TypeInsertion    = "text_insertion"
	TypeDeletion     = "text_deletion"
	TypeModification = "text_modification"
)

// ManualResolution is proposed for conflict types with no heuristic.
const ManualResolution = "Manual resolution required"

// Conflict describes one disagreement between two users' edits. The
// resolver reads every field except ResolutionSuggestion, which it
// overwrites; Timestamp is carried but not consulted.
type Conflict struct {
	ConflictID           string `json:"conflict_id"`
	ConflictType         string `json:"conflict_type"`
	StartPos             int    `json:"start_pos"`
	EndPos               int    `json:"end_pos"`
	UserAChange          string `json:"user_a_change"`
	UserBChange          string `json:"user_b_change"`
	Timestamp            string `json:"timestamp"`
	ResolutionSuggestion string `json:"resolution_suggestion"`
}

// Resolve fills ResolutionSuggestion for every conflict and returns the
// list with its length and order preserved. No other field changes, and
// no state is retained across calls.
func Resolve(conflicts []Conflict) []Conflict {
	resolved := make([]Conflict, 0, len(conflicts))
	for _, c := range conflicts {
		switch c.ConflictType {
		case TypeInsertion:
			// Keep both insertions, joined by a single space.
			c.ResolutionSuggestion = c.UserAChange + " " + c.UserBChange
		case TypeDeletion:
			// The shorter change is the less destructive edit; ties keep
			// user A's change.
			if len(c.UserAChange) <= len(c.UserBChange) {
				c.ResolutionSuggestion = c.UserAChange
			} else {
				c.ResolutionSuggestion = c.UserBChange
			}
		case TypeModification:
			// User B's change is treated as the most recent edit.
			c.ResolutionSuggestion = c.UserBChange
		default:
			c.ResolutionSuggestion = ManualResolution
		}
		resolved = append(resolved, c)
	}
	return resolved
}
