package models

// ChatRoom is a location-bound room. Creator holds a username and is not checked against users.
type ChatRoom struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Creator     string `json:"creator"`
	MemberCount int    `json:"memberCount"`
	Location    string `json:"location"`
}

func (r ChatRoom) ToRecord() Record {
	return Record{
		"id":          r.ID,
		"name":        r.Name,
		"creator":     r.Creator,
		"memberCount": r.MemberCount,
		"location":    r.Location,
	}
}
