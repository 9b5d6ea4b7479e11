package models

// Resource names a collection exposed through the data provider.
type Resource int

const (
	ResourceUnknown Resource = iota
	ResourceUsers
	ResourceChatRooms
	ResourceReports
)

// Resources lists the known resources in navigation order.
var Resources = []Resource{ResourceUsers, ResourceChatRooms, ResourceReports}

// ParseResource maps a resource name to its Resource. Unrecognized names
// return ResourceUnknown and false.
func ParseResource(name string) (Resource, bool) {
	switch name {
	case "users":
		return ResourceUsers, true
	case "chatRooms":
		return ResourceChatRooms, true
	case "reports":
		return ResourceReports, true
	default:
		return ResourceUnknown, false
	}
}

func (r Resource) String() string {
	switch r {
	case ResourceUsers:
		return "users"
	case ResourceChatRooms:
		return "chatRooms"
	case ResourceReports:
		return "reports"
	default:
		return "unknown"
	}
}

// Label is the human title used in menus and page headings.
func (r Resource) Label() string {
	switch r {
	case ResourceUsers:
		return "Users"
	case ResourceChatRooms:
		return "Chat Rooms"
	case ResourceReports:
		return "Reports"
	default:
		return "Unknown"
	}
}
