package services

import "github.com/shashank18-04/recurring-reminder/internal/models"

// MaterializeAssignments builds the per-date event map for an expansion
// result. A master assignment applies to every expanded date; individual
// entries override the master on their date and are dropped when their date
// is no longer part of the expansion.
func MaterializeAssignments(dates []string, master *models.EventAssignment, individual map[string]models.EventAssignment) map[string]models.EventAssignment {
	assignments := make(map[string]models.EventAssignment, len(dates))
	for _, date := range dates {
		if master != nil {
			assignments[date] = *master
		}
		if assignment, ok := individual[date]; ok {
			assignments[date] = assignment
		}
	}
	return assignments
}

// MergeAssignments unions previously saved assignments with newly computed
// ones by date key, favoring the new assignment on collision. Editing a
// recurrence rule therefore never silently deletes assignments on dates
// outside the new expansion.
func MergeAssignments(previous, next map[string]models.EventAssignment) map[string]models.EventAssignment {
	merged := make(map[string]models.EventAssignment, len(previous)+len(next))
	for date, assignment := range previous {
		merged[date] = assignment
	}
	for date, assignment := range next {
		merged[date] = assignment
	}
	return merged
}
