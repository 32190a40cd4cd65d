package domain

import "time"

type Category string

const (
	CategoryAttack      Category = "attack"
	CategoryGeneral     Category = "general"
	CategoryInstruction Category = "instruction" // government only
)

func (c Category) Valid() bool {
	switch c {
	case CategoryAttack, CategoryGeneral, CategoryInstruction:
		return true
	}
	return false
}

type Role string

const (
	RoleCitizen    Role = "citizen"
	RoleGovernment Role = "government"
)

// Report is the root of a thread. ID and CreatedAt never change after append.
type Report struct {
	ID            string    `json:"id"`
	AuthorID      string    `json:"author_id"`
	AuthorRole    Role      `json:"author_role"`
	Text          string    `json:"text"`
	Category      Category  `json:"category"`
	CreatedAt     time.Time `json:"created_at"`
	Origin        *Point    `json:"origin,omitempty"`
	LocationLabel string    `json:"location_label,omitempty"`
	NearbyCount   int       `json:"nearby_count"`
}

// Response is a government answer to a report.
type Response struct {
	ID            string    `json:"id"`
	ThreadID      string    `json:"thread_id"`
	AuthorID      string    `json:"author_id"`
	Text          string    `json:"text"`
	CreatedAt     time.Time `json:"created_at"`
	Origin        *Point    `json:"origin,omitempty"`
	LocationLabel string    `json:"location_label,omitempty"`
}

// Reply is a citizen follow-up inside a thread.
type Reply struct {
	ID        string    `json:"id"`
	ThreadID  string    `json:"thread_id"`
	AuthorID  string    `json:"author_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Thread is assembled on read and never stored.
type Thread struct {
	Report    Report     `json:"report"`
	Responses []Response `json:"responses"`
	Replies   []Reply    `json:"replies"`
}

// Answered reports whether the government has responded at least once.
// Unanswered threads are hidden from the reporter's conversation list.
func (t *Thread) Answered() bool {
	return len(t.Responses) > 0
}

// LastActivity is the timestamp of the newest response, or of the report
// itself when nobody has answered yet.
func (t *Thread) LastActivity() time.Time {
	last := t.Report.CreatedAt
	for _, r := range t.Responses {
		if r.CreatedAt.After(last) {
			last = r.CreatedAt
		}
	}
	return last
}
