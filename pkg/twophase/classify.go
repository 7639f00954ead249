package twophase

import (
	"math"
	"sort"

	"github.com/herohde/vantage/pkg/board"
)

// Phase marks which pool a ClassifiedMove belongs to.
type Phase int

const (
	Heavy Phase = iota
	Light
)

func (p Phase) String() string {
	if p == Light {
		return "light"
	}
	return "heavy"
}

// ClassifiedMove is a root move with its probe node count and assigned phase.
type ClassifiedMove struct {
	Move  board.Move
	Nodes uint64
	Phase Phase
}

// classify sorts probed root moves by descending node count and assigns the
// top ceil(N*heavyRatio) (minimum 1) moves to Heavy, the rest to Light. If
// Light is non-empty and carries more than lightThreshold of the total
// probed node count, every Light move is promoted to Heavy — it would be
// too expensive to starve on the efficiency-core pool.
func classify(probed []probed, heavyRatio, lightThreshold float64) (heavy, light []ClassifiedMove) {
	n := len(probed)
	if n == 0 {
		return nil, nil
	}
	if n == 1 {
		return []ClassifiedMove{{Move: probed[0].move, Nodes: probed[0].nodes, Phase: Heavy}}, nil
	}

	sorted := make([]uint64, n)
	for i, p := range probed {
		sorted[i] = p.nodes
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] > sorted[j] })

	heavyCount := int(math.Ceil(float64(n) * heavyRatio))
	if heavyCount < 1 {
		heavyCount = 1
	}
	if heavyCount > n {
		heavyCount = n
	}
	threshold := sorted[heavyCount-1]

	// Moves above threshold are always Heavy; the remaining Heavy slots go to
	// moves tied at threshold, in probe order.
	tieSlots := heavyCount
	for _, v := range sorted {
		if v > threshold {
			tieSlots--
		}
	}

	for _, p := range probed {
		cm := ClassifiedMove{Move: p.move, Nodes: p.nodes, Phase: Light}
		if p.nodes > threshold || (p.nodes == threshold && tieSlots > 0) {
			if p.nodes == threshold {
				tieSlots--
			}
			cm.Phase = Heavy
			heavy = append(heavy, cm)
		} else {
			light = append(light, cm)
		}
	}

	var total, lightNodes uint64
	for _, cm := range heavy {
		total += cm.Nodes
	}
	for _, cm := range light {
		total += cm.Nodes
		lightNodes += cm.Nodes
	}

	if len(light) > 0 && total > 0 && float64(lightNodes)/float64(total) > lightThreshold {
		for i := range light {
			light[i].Phase = Heavy
		}
		heavy = append(heavy, light...)
		light = nil
	}

	return heavy, light
}
