package coefficient

// Fixture is a regression case with a known minimum coefficient.
type Fixture struct {
	Input  string
	Budget int
	Want   int
}

// FixtureCases returns hand-checked regression cases, including strings
// where a range flip beats spending every flip on edge windows.
func FixtureCases() []Fixture {
	const (
		long  = "1101011111000001110001110001"
		long2 = "10110110011001111101110100000110"
	)

	return []Fixture{
		{"110100100", 0, 5},
		{"110100100", 1, 2},
		{"110100100", 2, 0},
		{long, 0, 25},
		{long, 1, 19},
		{long, 2, 13},
		{long, 3, 3},
		{long, 4, 1},
		{long, 5, 0},
		{long, 6, 0},
		{long, 7, 0},
		{long, 8, 0},
		{"11011001001", 2, 1},
		{"1101", 1, 0},
		{"1011010", 1, 2},
		{"1011010", 2, 0},
		{"010", 0, 1},
		{"010", 1, 0},
		{"", 1, 0},
		{"1", 1, 0},
		{"101010101", 3, 1},
		{"11", 100, 0},
		{"101010", 1, 2},
		{"101010", 5, 0},
		{"10101", 1, 1},
		{"000000000000000000", 0, 0},
		{"10101010101010101", 0, 15},
		{long2, 0, 30},
		{long2, 1, 23},
		{long2, 2, 20},
		{long2, 3, 17},
		{long2, 4, 10},
		{long2, 5, 6},
		{long2, 6, 2},
		{long2, 7, 0},
		{"101111100000010101", 2, 3},
	}
}
