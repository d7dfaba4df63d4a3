package pricing

import (
	"sort"

	"bidright/internal/domain/entities"
)

// Breakdown allocates an estimate across the phase template for the project.
// Phases contributed by selected features are appended and the whole set is
// renormalized so percentages sum to exactly 100.
func Breakdown(catalog *entities.RateCatalog, est entities.Estimate, industryID, projectTypeID string, featureIDs []string) []entities.TaskBreakdownLine {
	base := catalog.PhasesFor(industryID, projectTypeID)
	phases := make([]entities.Phase, len(base), len(base)+1)
	copy(phases, base)

	selected := make(map[string]struct{}, len(featureIDs))
	for _, id := range featureIDs {
		selected[id] = struct{}{}
	}
	extended := false
	for _, ext := range catalog.PhaseExtensionsFor(industryID) {
		if _, ok := selected[ext.FeatureID]; ok {
			phases = append(phases, ext.Phase)
			extended = true
		}
	}
	if extended {
		phases = Renormalize(phases)
	}

	lines := make([]entities.TaskBreakdownLine, 0, len(phases))
	for _, p := range phases {
		share := float64(p.Percentage) / 100
		lines = append(lines, entities.TaskBreakdownLine{
			Name:       p.Name,
			Percentage: p.Percentage,
			Hours:      RoundHalfUp(share * float64(est.Hours)),
			Cost:       RoundToStep(share*float64(est.Cost), CostStep),
		})
	}
	return lines
}

// Renormalize rescales percentages to sum to 100 using largest-remainder
// apportionment. Ties go to the earlier phase.
func Renormalize(phases []entities.Phase) []entities.Phase {
	total := 0
	for _, p := range phases {
		total += p.Percentage
	}
	out := make([]entities.Phase, len(phases))
	if total <= 0 {
		copy(out, phases)
		return out
	}

	type remainder struct {
		idx int
		rem int
	}
	rems := make([]remainder, len(phases))
	assigned := 0
	for i, p := range phases {
		scaled := p.Percentage * 100
		out[i] = entities.Phase{Name: p.Name, Percentage: scaled / total}
		rems[i] = remainder{idx: i, rem: scaled % total}
		assigned += out[i].Percentage
	}

	sort.SliceStable(rems, func(a, b int) bool { return rems[a].rem > rems[b].rem })
	for i := 0; assigned < 100 && i < len(rems); i++ {
		out[rems[i].idx].Percentage++
		assigned++
	}
	return out
}
