package astro

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// DashaNode is one period in the Vimshottari tree. Children, when present,
// exactly partition [Start, End) with no gaps or overlaps.
type DashaNode struct {
	ID       string      `json:"id"`
	Planet   Planet      `json:"planet"`
	Start    time.Time   `json:"start"`
	End      time.Time   `json:"end"`
	Level    int         `json:"level"`
	Children []DashaNode `json:"children,omitempty"`
}

// Vimshottari cycle order and year allocations, 120 years total.
var dashaOrder = []Planet{Sun, Moon, Mars, Rahu, Jupiter, Saturn, Mercury, Ketu, Venus}

var dashaYears = map[Planet]float64{
	Sun: 6, Moon: 10, Mars: 7, Rahu: 18, Jupiter: 16,
	Saturn: 19, Mercury: 17, Ketu: 7, Venus: 20,
}

const (
	dashaCycleYears = 120
	// One sidereal year of 365.25 days, in milliseconds.
	yearMillis = 365.25 * 24 * 60 * 60 * 1000
)

// VimshottariDashas builds the hierarchical dasha tree for a birth record.
// The result is always 9 root nodes covering one full 120-year cycle, the
// cycle start shifted before the birth instant by the seed fraction so the
// birth moment falls inside a running period (the balance of dasha at
// birth). levels <= 0 yields an empty tree.
func VimshottariDashas(b BirthData, levels int) ([]DashaNode, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if levels <= 0 {
		return []DashaNode{}, nil
	}
	birth, err := b.Time()
	if err != nil {
		return nil, err
	}

	totalMs := float64(dashaCycleYears) * yearMillis
	offset := frac(Seed(b)) * totalMs
	start := birth.Add(-msDuration(offset))

	return partitionDasha(start, totalMs, 1, levels, nil), nil
}

// partitionDasha splits [start, start+spanMs) across the nine planets in
// cycle order, each slice proportional to its year allocation, recursing
// until maxLevel. The last sibling is clamped to the parent's end so the
// tiling is exact despite floating-point rounding. path accumulates child
// indices for collision-free ids at any depth.
func partitionDasha(start time.Time, spanMs float64, level, maxLevel int, path []int) []DashaNode {
	end := start.Add(msDuration(spanMs))
	nodes := make([]DashaNode, 0, len(dashaOrder))
	cursor := start
	for i, p := range dashaOrder {
		nodeEnd := cursor.Add(msDuration(spanMs * dashaYears[p] / dashaCycleYears))
		if i == len(dashaOrder)-1 {
			nodeEnd = end
		}
		childPath := append(append([]int(nil), path...), i)
		node := DashaNode{
			ID:     dashaID(childPath),
			Planet: p,
			Start:  cursor,
			End:    nodeEnd,
			Level:  level,
		}
		if level < maxLevel {
			childSpan := float64(nodeEnd.Sub(cursor)) / float64(time.Millisecond)
			node.Children = partitionDasha(cursor, childSpan, level+1, maxLevel, childPath)
		}
		nodes = append(nodes, node)
		cursor = nodeEnd
	}
	return nodes
}

func dashaID(path []int) string {
	parts := make([]string, len(path))
	for i, idx := range path {
		parts[i] = strconv.Itoa(idx)
	}
	return "d" + strings.Join(parts, "-")
}

func msDuration(ms float64) time.Duration {
	return time.Duration(math.Round(ms)) * time.Millisecond
}
