package domain

// DayCount is the number of sessions scheduled on Date.
type DayCount struct {
	Date  string
	Count int
}

type Summary struct {
	TotalSessions   int
	TotalAttendance int
	UniqueUsers     int
	SessionsPerDay  []DayCount
}
