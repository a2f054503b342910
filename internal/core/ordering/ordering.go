// Package ordering maintains a user's display order of sections as a list of
// section IDs.
package ordering

import "slices"

// InsertAfter returns a copy of order with id placed directly after afterID.
// An empty or unknown afterID appends id at the end.
func InsertAfter(order []string, id, afterID string) []string {
	out := make([]string, 0, len(order)+1)

	idx := -1
	if afterID != "" {
		idx = slices.Index(order, afterID)
	}
	if idx < 0 {
		out = append(out, order...)
		return append(out, id)
	}

	out = append(out, order[:idx+1]...)
	out = append(out, id)
	return append(out, order[idx+1:]...)
}

// Remove returns a copy of order without any occurrence of id.
func Remove(order []string, id string) []string {
	out := make([]string, 0, len(order))
	for _, v := range order {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// Apply sorts items by their position in order. IDs in order with no
// matching item are skipped; items missing from order keep their relative
// input order and come last. When items share an ID, the first one takes
// the ordered slot and the rest follow with the unordered items.
func Apply[S any](order []string, items []S, idOf func(S) string) []S {
	byID := make(map[string]int, len(items))
	for i, it := range items {
		if _, seen := byID[idOf(it)]; !seen {
			byID[idOf(it)] = i
		}
	}

	out := make([]S, 0, len(items))
	placed := make([]bool, len(items))
	for _, id := range order {
		i, ok := byID[id]
		if !ok || placed[i] {
			continue
		}
		placed[i] = true
		out = append(out, items[i])
	}

	for i, it := range items {
		if !placed[i] {
			out = append(out, it)
		}
	}
	return out
}
