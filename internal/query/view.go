// Package query builds the filtered, grouped and sorted history view of
// submitted orders. Everything here is a pure function of its inputs.
package query

import (
	"sort"
	"strings"

	"balju/internal/models"
)

// DateGroup is one date bucket of the history view. Orders are laid out
// branch group by branch group in natural branch order, and inside a
// branch chronologically by creation time.
type DateGroup struct {
	Date   string
	Orders []models.OrderRecord
}

// View filters records by branch and inclusive date range, groups them by
// business date, and orders the buckets lexicographically on the date key
// (ascending or descending). Date comparison is plain string comparison,
// which is correct because dates are zero-padded YYYY-MM-DD. Empty filter
// arguments match everything.
func View(orders []models.OrderRecord, branchFilter, dateFrom, dateTo string, sortDescending bool) []DateGroup {
	var visible []models.OrderRecord
	for _, o := range orders {
		if branchFilter != "" && o.Branch != branchFilter {
			continue
		}
		if dateFrom != "" && o.Date < dateFrom {
			continue
		}
		if dateTo != "" && o.Date > dateTo {
			continue
		}
		visible = append(visible, o)
	}

	index := make(map[string]int)
	var groups []DateGroup
	for _, o := range visible {
		i, ok := index[o.Date]
		if !ok {
			i = len(groups)
			index[o.Date] = i
			groups = append(groups, DateGroup{Date: o.Date})
		}
		groups[i].Orders = append(groups[i].Orders, o)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if sortDescending {
			return groups[i].Date > groups[j].Date
		}
		return groups[i].Date < groups[j].Date
	})

	for i := range groups {
		groups[i].Orders = orderWithinDay(groups[i].Orders)
	}
	return groups
}

// orderWithinDay sub-groups one date bucket by branch, orders the branch
// groups naturally, sorts each group by creation time ascending, and
// flattens the result.
func orderWithinDay(orders []models.OrderRecord) []models.OrderRecord {
	byBranch := make(map[string][]models.OrderRecord)
	var branches []string
	for _, o := range orders {
		if _, ok := byBranch[o.Branch]; !ok {
			branches = append(branches, o.Branch)
		}
		byBranch[o.Branch] = append(byBranch[o.Branch], o)
	}

	sort.SliceStable(branches, func(i, j int) bool {
		return CompareBranches(branches[i], branches[j]) < 0
	})

	out := make([]models.OrderRecord, 0, len(orders))
	for _, branch := range branches {
		group := byBranch[branch]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].CreationTime().Before(group[j].CreationTime())
		})
		out = append(out, group...)
	}
	return out
}

// CompareBranches orders branch labels naturally: labels with a leading
// integer compare numerically, an integer label sorts before a
// non-integer one, and otherwise Korean collation decides. This puts
// "2번 지점" before "10번 지점".
func CompareBranches(a, b string) int {
	na, aok := leadingInt(a)
	nb, bok := leadingInt(b)
	switch {
	case aok && bok:
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		}
		return 0
	case aok:
		return -1
	case bok:
		return 1
	}
	return models.CompareKorean(a, b)
}

// Supplemental flags the 2nd and later records for the same branch inside
// a date bucket; the history view tags those 추가발주. The flag is derived
// from the bucket's ordering, never stored on the record.
func Supplemental(g DateGroup) []bool {
	flags := make([]bool, len(g.Orders))
	seen := make(map[string]bool, len(g.Orders))
	for i, o := range g.Orders {
		flags[i] = seen[o.Branch]
		seen[o.Branch] = true
	}
	return flags
}

// leadingInt parses an optionally signed integer prefix the way
// JavaScript's parseInt does: leading whitespace is skipped and parsing
// stops at the first non-digit.
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n := 0
	digits := 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		n = n*10 + int(s[digits]-'0')
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}
