// Package switcher provides the ordering and search behavior behind the
// workspace switcher and tab strip. It is a pure consumer of store state:
// projections in, projections out.
package switcher

import (
	"github.com/sahilm/fuzzy"

	"paneldeck/internal/layout"
)

// Tab is one entry in the workspace tab strip, in display order.
type Tab struct {
	ID        string
	Name      string
	IsActive  bool
	IsUnsaved bool
}

// Tabs projects the workspace collection into tab-strip entries,
// preserving store order.
func Tabs(workspaces []layout.Workspace, activeID string) []Tab {
	out := make([]Tab, len(workspaces))
	for i, w := range workspaces {
		out[i] = Tab{
			ID:        w.ID,
			Name:      w.Name,
			IsActive:  w.ID == activeID,
			IsUnsaved: w.IsUnsaved,
		}
	}
	return out
}

// Match is one fuzzy search hit, best score first.
type Match struct {
	ID             string
	Name           string
	Score          int
	MatchedIndexes []int
}

// Search ranks workspaces against a fuzzy query by name. An empty query
// returns every workspace in display order with no match highlighting.
func Search(workspaces []layout.Workspace, query string) []Match {
	if query == "" {
		out := make([]Match, len(workspaces))
		for i, w := range workspaces {
			out[i] = Match{ID: w.ID, Name: w.Name}
		}
		return out
	}
	names := make([]string, len(workspaces))
	for i, w := range workspaces {
		names[i] = w.Name
	}
	results := fuzzy.Find(query, names)
	out := make([]Match, 0, len(results))
	for _, r := range results {
		out = append(out, Match{
			ID:             workspaces[r.Index].ID,
			Name:           r.Str,
			Score:          r.Score,
			MatchedIndexes: r.MatchedIndexes,
		})
	}
	return out
}

// MoveTab returns the id order with the tab at index from moved to index
// to. Out-of-range indexes leave the order unchanged. Feed the result to
// the store's ReorderWorkspaces.
func MoveTab(ids []string, from, to int) []string {
	out := append([]string(nil), ids...)
	if from < 0 || from >= len(out) || to < 0 || to >= len(out) || from == to {
		return out
	}
	id := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]string{id}, out[to:]...)...)
	return out
}

// NextID and PrevID cycle through the tab order from the given id; used
// for keyboard workspace switching. An unknown id lands on the first tab.
func NextID(ids []string, current string) string {
	if len(ids) == 0 {
		return ""
	}
	for i, id := range ids {
		if id == current {
			return ids[(i+1)%len(ids)]
		}
	}
	return ids[0]
}

// PrevID is the reverse of NextID.
func PrevID(ids []string, current string) string {
	if len(ids) == 0 {
		return ""
	}
	for i, id := range ids {
		if id == current {
			return ids[(i-1+len(ids))%len(ids)]
		}
	}
	return ids[0]
}
