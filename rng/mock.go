package rng

// MockSource implements Source with predetermined results for testing.
// Intn and Float64 are queued independently and each cycles back to the
// start of its own queue when exhausted, so a test can fix one channel of
// randomness (e.g. flee rolls) without having to account for calls made
// against the other (e.g. AI move selection) in the same turn.
type MockSource struct {
	ints    []int
	intIdx  int
	floats  []float64
	floatID int
}

// NewMockSource creates a MockSource. Either queue may be empty; calling the
// corresponding method on an empty queue panics, same as indexing past the
// end of a slice would.
func NewMockSource(ints []int, floats []float64) *MockSource {
	return &MockSource{ints: ints, floats: floats}
}

// Intn returns the next queued int, ignoring n (callers are expected to have
// queued values already within range for the n they'll pass).
func (m *MockSource) Intn(n int) int {
	v := m.ints[m.intIdx]
	m.intIdx = (m.intIdx + 1) % len(m.ints)
	return v
}

// Float64 returns the next queued float64.
func (m *MockSource) Float64() float64 {
	v := m.floats[m.floatID]
	m.floatID = (m.floatID + 1) % len(m.floats)
	return v
}
