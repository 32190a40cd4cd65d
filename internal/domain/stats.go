package domain

type AlertStats struct {
	ReportsByCategory map[Category]int `json:"reports_by_category"`
	AnsweredThreads   int              `json:"answered_threads"`
	UnansweredThreads int              `json:"unanswered_threads"`
}
