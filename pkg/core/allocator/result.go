package allocator

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/hadleyfc/pitchplanner/pkg/core/model"
)

// buildOutcome groups the run's allocations by capacity class ascending and
// sorts each group by start time, then flattens back to one display-ordered
// list alongside the unallocated teams.
func (a *Allocator) buildOutcome() *Outcome {
	grouped := lo.GroupBy(a.allocations, func(alloc Allocation) model.CapacityClass {
		return alloc.Capacity
	})

	capacities := lo.Keys(grouped)
	sort.Slice(capacities, func(i, j int) bool { return capacities[i] < capacities[j] })

	ordered := make([]Allocation, 0, len(a.allocations))
	for _, capacity := range capacities {
		group := grouped[capacity]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Start.Before(group[j].Start)
		})
		ordered = append(ordered, group...)
	}

	if len(a.unallocated) > 0 {
		labels := lo.Map(a.unallocated, func(t Team, _ int) string { return t.Label() })
		a.logger.Info("Unallocated teams", zap.Strings("teams", labels))
	} else {
		a.logger.Info("All teams have been successfully allocated")
	}

	return &Outcome{
		Allocations: ordered,
		Unallocated: a.unallocated,
		Pitches:     a.pitches,
	}
}

// FormatLine renders an allocation as a display line in the sheet format,
// e.g. "10:00am - U7 Tigers - 5aside - North Field (A)" with a "(Paid)"
// suffix for paid pitches.
func (alloc Allocation) FormatLine() string {
	line := fmt.Sprintf("%s - %s - %s",
		alloc.DisplayTime(), alloc.TeamLabel, alloc.PitchLabel)
	if alloc.Paid {
		line += " (Paid)"
	}
	return line
}

// DisplayTime renders the start time as 12-hour lowercase, e.g. "01:30pm"
func (alloc Allocation) DisplayTime() string {
	return alloc.Start.Format("03:04pm")
}

// UnallocatedLabels returns the display labels of the unallocated teams
func (o *Outcome) UnallocatedLabels() []string {
	return lo.Map(o.Unallocated, func(t Team, _ int) string { return t.Label() })
}

// Lines renders every allocation in display order
func (o *Outcome) Lines() []string {
	return lo.Map(o.Allocations, func(alloc Allocation, _ int) string {
		return alloc.FormatLine()
	})
}
