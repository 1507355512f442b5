package service

import (
	"sort"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

// CandidateGenerator defines the interface for allocation candidate generation.
type CandidateGenerator interface {
	// Generate enumerates distinct ways to split the demands across the
	// locations in the snapshot. The result may be empty when no location
	// holds any demanded product.
	Generate(demands []model.ProductDemand, snapshot StockSnapshot) []model.AllocationCandidate
}

// CandidateGeneratorService implements CandidateGenerator. It emits every
// single-location candidate that fully covers the order, and when none
// exists, one greedy multi-location split. The greedy pass is a heuristic
// fill, not an enumeration of all partitions, so the candidate set stays
// bounded regardless of product and location counts.
type CandidateGeneratorService struct{}

// NewCandidateGeneratorService creates a new candidate generator.
func NewCandidateGeneratorService() *CandidateGeneratorService {
	return &CandidateGeneratorService{}
}

// Generate produces the candidate set for one optimization run.
func (s *CandidateGeneratorService) Generate(demands []model.ProductDemand, snapshot StockSnapshot) []model.AllocationCandidate {
	if len(demands) == 0 || len(snapshot) == 0 {
		return nil
	}

	candidates := s.singleLocation(demands, snapshot)
	if len(candidates) > 0 {
		return candidates
	}

	if c, ok := s.greedySplit(demands, snapshot); ok {
		candidates = append(candidates, c)
	}
	return candidates
}

// singleLocation emits one candidate per location that can cover every
// demanded quantity alone. Locations are visited in sorted order so the
// output is deterministic.
func (s *CandidateGeneratorService) singleLocation(demands []model.ProductDemand, snapshot StockSnapshot) []model.AllocationCandidate {
	var candidates []model.AllocationCandidate
	for _, locationID := range snapshot.Locations() {
		covers := true
		for _, d := range demands {
			if snapshot.Available(locationID, d.ProductID) < d.Quantity {
				covers = false
				break
			}
		}
		if !covers {
			continue
		}

		assignments := make([]model.Assignment, 0, len(demands))
		for _, d := range sortedDemands(demands) {
			assignments = append(assignments, model.Assignment{ProductID: d.ProductID, Quantity: d.Quantity})
		}
		candidates = append(candidates, model.AllocationCandidate{
			Assignments: map[string][]model.Assignment{locationID: assignments},
		})
	}
	return candidates
}

// greedySplit builds one multi-location candidate: products are processed in
// descending requested quantity, each drawing first from the location with
// the most remaining stock. A working copy of the snapshot is decremented as
// quantities are placed; the snapshot itself is never mutated.
func (s *CandidateGeneratorService) greedySplit(demands []model.ProductDemand, snapshot StockSnapshot) (model.AllocationCandidate, bool) {
	remaining := make(map[string]map[string]int, len(snapshot))
	for locationID, rows := range snapshot {
		remaining[locationID] = make(map[string]int, len(rows))
		for productID, row := range rows {
			remaining[locationID][productID] = row.Available
		}
	}

	ordered := sortedDemands(demands)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Quantity != ordered[j].Quantity {
			return ordered[i].Quantity > ordered[j].Quantity
		}
		return ordered[i].ProductID < ordered[j].ProductID
	})

	assignments := make(map[string][]model.Assignment)
	shortfall := make(map[string]int)
	placedAny := false

	for _, d := range ordered {
		unmet := d.Quantity
		for unmet > 0 {
			locationID, available := mostStocked(remaining, d.ProductID)
			if available <= 0 {
				break
			}
			take := unmet
			if take > available {
				take = available
			}
			remaining[locationID][d.ProductID] -= take
			assignments[locationID] = append(assignments[locationID], model.Assignment{
				ProductID: d.ProductID,
				Quantity:  take,
			})
			unmet -= take
			placedAny = true
		}
		if unmet > 0 {
			shortfall[d.ProductID] = unmet
		}
	}

	if !placedAny {
		return model.AllocationCandidate{}, false
	}

	for locationID := range assignments {
		items := assignments[locationID]
		sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })
		assignments[locationID] = items
	}

	candidate := model.AllocationCandidate{Assignments: assignments}
	if len(shortfall) > 0 {
		candidate.Partial = true
		candidate.Shortfall = shortfall
	}
	return candidate, true
}

// mostStocked returns the location holding the most remaining stock for a
// product; ties break on the lower location ID for determinism.
func mostStocked(remaining map[string]map[string]int, productID string) (string, int) {
	bestLocation := ""
	bestAvailable := 0
	for locationID, products := range remaining {
		available := products[productID]
		if available > bestAvailable ||
			(available == bestAvailable && available > 0 && locationID < bestLocation) {
			bestLocation = locationID
			bestAvailable = available
		}
	}
	return bestLocation, bestAvailable
}

// sortedDemands returns a copy of demands sorted by product ID.
func sortedDemands(demands []model.ProductDemand) []model.ProductDemand {
	out := make([]model.ProductDemand, len(demands))
	copy(out, demands)
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out
}
