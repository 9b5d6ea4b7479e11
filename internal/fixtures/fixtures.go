package fixtures

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/models"
)

// Set is the static data served by the mock data provider.
type Set struct {
	Users     []models.User     `json:"users"`
	ChatRooms []models.ChatRoom `json:"chatRooms"`
	Reports   []models.Report   `json:"reports"`
}

// Default returns a fresh copy of the built-in fixtures.
func Default() *Set {
	return &Set{
		Users: []models.User{
			{ID: "1", Username: "john_doe", Email: "john@example.com", Status: "active", Score: 150, Violations: 0},
			{ID: "2", Username: "jane_smith", Email: "jane@example.com", Status: "banned", Score: 85, Violations: 3},
		},
		ChatRooms: []models.ChatRoom{
			{ID: "1", Name: "Coffee Shop", Creator: "john_doe", MemberCount: 5, Location: "SF Bay Area"},
			{ID: "2", Name: "Study Group", Creator: "jane_smith", MemberCount: 8, Location: "NYC"},
		},
		Reports: []models.Report{
			{ID: "1", Type: "content", Reason: "inappropriate", Status: "pending", Priority: "high"},
			{ID: "2", Type: "user", Reason: "spam", Status: "resolved", Priority: "medium"},
		},
	}
}

// Load returns the fixtures at path, or the defaults when path is empty.
func Load(path string) (*Set, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFromFile(path)
}

func LoadFromFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures: %w", err)
	}

	var set Set
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	return &set, nil
}

// Records returns the fixture rows for r as records, in fixture order.
// Unknown resources yield an empty, non-nil slice.
func (s *Set) Records(r models.Resource) []models.Record {
	switch r {
	case models.ResourceUsers:
		return toRecords(s.Users)
	case models.ResourceChatRooms:
		return toRecords(s.ChatRooms)
	case models.ResourceReports:
		return toRecords(s.Reports)
	default:
		return []models.Record{}
	}
}

// Count returns the number of rows for r.
func (s *Set) Count(r models.Resource) int {
	switch r {
	case models.ResourceUsers:
		return len(s.Users)
	case models.ResourceChatRooms:
		return len(s.ChatRooms)
	case models.ResourceReports:
		return len(s.Reports)
	default:
		return 0
	}
}

// Clone deep-copies the set so the caller's slices cannot leak into it.
func (s *Set) Clone() *Set {
	return &Set{
		Users:     append([]models.User(nil), s.Users...),
		ChatRooms: append([]models.ChatRoom(nil), s.ChatRooms...),
		Reports:   append([]models.Report(nil), s.Reports...),
	}
}

type recordable interface {
	ToRecord() models.Record
}

func toRecords[T recordable](rows []T) []models.Record {
	out := make([]models.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToRecord())
	}
	return out
}
