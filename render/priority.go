package render

// Priority determines layer order; lower values draw first
type Priority int

const (
	PriorityBackground Priority = iota
	PriorityCurve
	PriorityUI
)
