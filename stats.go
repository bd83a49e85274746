package jsondiff

// Stats holds counts of the operations a single diff produced
type Stats struct {
	Adds     int `json:"adds,omitempty"`     // number of add operations
	Removes  int `json:"removes,omitempty"`  // number of remove operations
	Replaces int `json:"replaces,omitempty"` // number of replace operations
	Tests    int `json:"tests,omitempty"`    // number of test guards
}

// Total returns the number of operations counted
func (s Stats) Total() int {
	return s.Adds + s.Removes + s.Replaces + s.Tests
}

// Changes returns the number of operations that mutate the document,
// leaving test guards out
func (s Stats) Changes() int {
	return s.Adds + s.Removes + s.Replaces
}
