package models

// User is a chat member as shown in the users table.
type User struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Status     string `json:"status"` // active, banned, ...
	Score      int    `json:"score"`
	Violations int    `json:"violations"`
}

func (u User) ToRecord() Record {
	return Record{
		"id":         u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"status":     u.Status,
		"score":      u.Score,
		"violations": u.Violations,
	}
}
