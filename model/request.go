package model

import "time"

// SearchRequest records a single query issued through the request tracker
type SearchRequest struct {
	ID          string    `json:"id"`
	Query       string    `json:"query"`
	ResultCount int       `json:"result_count"`
	Timestamp   time.Time `json:"timestamp"`
}

// HasResults reports whether the query returned at least one document
func (r SearchRequest) HasResults() bool {
	return r.ResultCount > 0
}

// RequestStats summarizes the requests currently held by the tracker
type RequestStats struct {
	Tracked          int `json:"tracked"`
	NoResultRequests int `json:"no_result_requests"`
	Window           int `json:"window"`
}
