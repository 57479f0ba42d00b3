package louvain

import "sort"

// unassigned is the sentinel inverse-map value for a cluster id that did
// not survive to the dense range. Per spec §4.4/§9, positions holding this
// value are never read by Compact itself: the inverse map is only indexed
// by values of c, all of which survive, so a negative value in Compact's
// output would mean such a slot had been read.
const unassigned int32 = -1

// Compact performs C4: it renumbers the surviving values of c into a dense
// range [0, k), rewrites c in place, and propagates the same renumbering
// into l by composition (l[j] = c[l[j]], valid because every value of l is
// an index of c at every level — see spec §3's description of
// how L and C share an index space after a reset to identity).
//
// Steps (spec §4.4):
//  1. sorted-unique of c yields the surviving cluster ids U, ascending.
//  2. an inverse map M of length len(c) sends U[i] -> i, and is never read
//     at a position that isn't in U.
//  3. c[i] <- M[c[i]] for every current-level vertex.
//  4. l[j] <- c[l[j]] for every original-graph vertex (equivalent to
//     l[j] <- M[l[j]] after step 3, since c's domain covers every value
//     that can appear in l before this step).
//
// Precondition: every value in c lies in [0, len(c)) — true of every
// production call site, since a cluster id is itself a current-level vertex
// id, and the inverse map M is sized to len(c).
//
// Returns k, the number of surviving clusters.
func Compact(c []int32, l []int32) int32 {
	n := len(c)
	sortedC := make([]int32, n)
	copy(sortedC, c)
	sort.Slice(sortedC, func(i, j int) bool { return sortedC[i] < sortedC[j] })

	k := 0
	for i := 0; i < n; i++ {
		if i == 0 || sortedC[i] != sortedC[i-1] {
			sortedC[k] = sortedC[i]
			k++
		}
	}
	u := sortedC[:k]

	m := make([]int32, n)
	for i := range m {
		m[i] = unassigned
	}
	for i, v := range u {
		m[v] = int32(i)
	}

	for i := range c {
		c[i] = m[c[i]]
	}
	for j := range l {
		l[j] = c[l[j]]
	}

	return int32(k)
}
