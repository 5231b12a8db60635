package tempseries

// SummaryStatistics is a snapshot of the aggregate statistics of a series.
type SummaryStatistics struct {
	Average   float64
	Deviation float64
	Min       float64
	Max       float64
}
