package dto

// BulkItemResult is the outcome of a bulk operation for one id.
type BulkItemResult struct {
	ID      string       `json:"id"`
	Success bool         `json:"success"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// BulkOperationResult summarizes a bulk operation.
// UpdatedCount counts only the ids the operation succeeded on.
type BulkOperationResult struct {
	Operation    string           `json:"operation"`
	Requested    int              `json:"requested"`
	UpdatedCount int              `json:"updatedCount"`
	FailedCount  int              `json:"failedCount"`
	Results      []BulkItemResult `json:"results"`
}

// Record appends the outcome for id and updates the counters.
func (r *BulkOperationResult) Record(id string, detail *ErrorDetail) {
	r.Results = append(r.Results, BulkItemResult{ID: id, Success: detail == nil, Error: detail})
	if detail == nil {
		r.UpdatedCount++
	} else {
		r.FailedCount++
	}
}
