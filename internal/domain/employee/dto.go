package employee

// EligibilityFilter narrows the employee set considered by the reconciliation
// engine and the absence materializer.
type EligibilityFilter struct {
	PlantID          *int64
	DepartmentID     *int64
	GroupID          *int64
	IncludeInactive  bool
	RequireBiometric bool
}
