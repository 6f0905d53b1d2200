package statuscounts

// StatusCounts represents the query result.
// Available + Borrowed is at most Total; it is less when some records have another status.
type StatusCounts struct {
	Available int
	Borrowed  int
	Total     int
}
