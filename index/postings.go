package index

import "slices"

// Postings is an ascending list of corpus positions.
type Postings []int

// Intersect returns the positions present in both lists.
func Intersect(a, b Postings) Postings {
	out := make(Postings, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

// Union merges lists into one ascending list without duplicates.
func Union(lists ...Postings) Postings {
	switch len(lists) {
	case 0:
		return nil
	case 1:
		return slices.Clone(lists[0])
	}
	var n int
	for _, l := range lists {
		n += len(l)
	}
	out := make(Postings, 0, n)
	for _, l := range lists {
		out = append(out, l...)
	}
	slices.Sort(out)
	return slices.Compact(out)
}
