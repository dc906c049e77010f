package groups

import "time"

const (
	RoleOrganizer = "organizer"
	RoleMember    = "member"
)

type Group struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	OrganizerID int64      `json:"organizer_id"`
	EventDate   *time.Time `json:"event_date"`
	TotalBudget *float64   `json:"total_budget"`
	MemberCount int        `json:"member_count"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type Member struct {
	ID       int64     `json:"id"`
	GroupID  int64     `json:"group_id"`
	UserID   int64     `json:"user_id"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}
