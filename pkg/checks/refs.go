package checks

import (
	"fmt"
	"sort"
	"strings"

	"github.com/code-review-checklists/checklint/pkg/checklist"
)

// unresolvedRef reports prose mentions of item IDs that do not exist,
// including TOC entries naming a removed or renumbered item.
type unresolvedRef struct{}

func (c *unresolvedRef) Name() string       { return "unresolved-ref" }
func (c *unresolvedRef) Severity() Severity { return SeverityError }
func (c *unresolvedRef) Description() string {
	return "mention of an item ID that no item defines"
}

func (c *unresolvedRef) Run(doc *checklist.Document) []Finding {
	ordinals := ordinalsByPrefix(doc)

	var findings []Finding
	for _, ref := range doc.Refs {
		if _, ok := doc.Item(ref.ID); ok {
			continue
		}
		findings = append(findings, Finding{
			Check:      c.Name(),
			Severity:   c.Severity(),
			Line:       ref.Line,
			Message:    fmt.Sprintf("reference to nonexistent item %s (in: %s)", ref.ID, ref.Context),
			Suggestion: suggestItem(ref.ID, ordinals),
		})
	}
	return findings
}

// duplicateItem reports two items claiming the same ID.
type duplicateItem struct{}

func (c *duplicateItem) Name() string       { return "duplicate-item" }
func (c *duplicateItem) Severity() Severity { return SeverityError }
func (c *duplicateItem) Description() string {
	return "two checklist items share the same ID"
}

func (c *duplicateItem) Run(doc *checklist.Document) []Finding {
	seen := make(map[checklist.ID]bool)

	var findings []Finding
	for _, item := range doc.Items {
		if seen[item.ID] {
			continue
		}
		seen[item.ID] = true

		defs := doc.ItemsWithID(item.ID)
		for _, dup := range defs[1:] {
			// Line numbers stay out of the message so history diffs
			// can match the finding across unrelated edits.
			findings = append(findings, Finding{
				Check:      c.Name(),
				Severity:   c.Severity(),
				Line:       dup.Line,
				Message:    fmt.Sprintf("item %s is defined more than once", item.ID),
				Suggestion: fmt.Sprintf("first defined at line %d", defs[0].Line),
			})
		}
	}
	sortFindings(findings)
	return findings
}

// numberingGap reports prefixes whose ordinals are not contiguous from
// 1. Gaps are usually left behind by deleted items and confuse readers
// who cite items by number.
type numberingGap struct{}

func (c *numberingGap) Name() string       { return "numbering-gap" }
func (c *numberingGap) Severity() Severity { return SeverityWarning }
func (c *numberingGap) Description() string {
	return "item ordinals within a prefix are not contiguous from 1"
}

func (c *numberingGap) Run(doc *checklist.Document) []Finding {
	ordinals := ordinalsByPrefix(doc)

	var findings []Finding
	for _, prefix := range doc.Prefixes() {
		nums := ordinals[prefix]

		var missing []string
		next := 1
		for _, n := range nums {
			for ; next < n; next++ {
				missing = append(missing, fmt.Sprintf("%s.%d", prefix, next))
			}
			if n == next {
				next++
			}
		}
		if len(missing) == 0 {
			continue
		}

		first, _ := doc.Item(checklist.ID{Prefix: prefix, Ordinal: nums[0]})
		line := 0
		if first != nil {
			line = first.Line
		}
		findings = append(findings, Finding{
			Check:    c.Name(),
			Severity: c.Severity(),
			Line:     line,
			Message:  fmt.Sprintf("prefix %s is missing %s", prefix, strings.Join(missing, ", ")),
		})
	}
	sortFindings(findings)
	return findings
}

// ordinalsByPrefix returns each prefix's defined ordinals in ascending
// order, deduplicated.
func ordinalsByPrefix(doc *checklist.Document) map[string][]int {
	byPrefix := make(map[string]map[int]bool)
	for _, item := range doc.Items {
		if byPrefix[item.ID.Prefix] == nil {
			byPrefix[item.ID.Prefix] = make(map[int]bool)
		}
		byPrefix[item.ID.Prefix][item.ID.Ordinal] = true
	}

	ordinals := make(map[string][]int, len(byPrefix))
	for prefix, set := range byPrefix {
		nums := make([]int, 0, len(set))
		for n := range set {
			nums = append(nums, n)
		}
		sort.Ints(nums)
		ordinals[prefix] = nums
	}
	return ordinals
}

// suggestItem points a dangling reference at the defined range of its
// prefix, when the prefix exists at all.
func suggestItem(id checklist.ID, ordinals map[string][]int) string {
	nums, ok := ordinals[id.Prefix]
	if !ok || len(nums) == 0 {
		return ""
	}
	return fmt.Sprintf("prefix %s defines %s.%d through %s.%d",
		id.Prefix, id.Prefix, nums[0], id.Prefix, nums[len(nums)-1])
}
