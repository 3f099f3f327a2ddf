// Package service implements the operations of the hierarchy and visibility
// store on top of a storage.Store.
//
// Every structural edit to the hierarchy is an edge-maintenance sequence:
// attach the child id to the new parent's reference list, then detach it from
// the old parent's list. Both steps are independently fallible; the detach is
// best-effort (a missing old parent is skipped, not an error). There is no
// transactional boundary across the two writes: attaching first narrows the
// window in which a child can end up unreferenced, but concurrent edits to the
// same parent list remain last-write-wins.
package service

// containsID reports whether id is present in list.
func containsID(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

// removeID returns list without any occurrence of id.
func removeID(list []string, id string) []string {
	out := list[:0]
	for _, v := range list {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
