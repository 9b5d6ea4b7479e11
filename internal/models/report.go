package models

// Report is a moderation report. All fields are free text.
type Report struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Reason   string `json:"reason"`
	Status   string `json:"status"`
	Priority string `json:"priority"`
}

func (r Report) ToRecord() Record {
	return Record{
		"id":       r.ID,
		"type":     r.Type,
		"reason":   r.Reason,
		"status":   r.Status,
		"priority": r.Priority,
	}
}
