package controller

// Message types.
type concurrencyMsg struct {
	workers     int
	submissions int
}

type upcomingMsg struct {
	count int
}

type startAssignmentMsg struct {
	assignment string
	students   int
}

type completedAssignmentMsg struct {
	assignment string
	students   int
	pairs      int
	exact      int
	max        float64
}

// resultMsg carries the fully rendered final report and ends the program.
type resultMsg struct {
	view string
}
