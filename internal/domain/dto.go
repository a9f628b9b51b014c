package domain

import "time"

// Projected views returned to callers. Flattened read shapes, decoupled from
// the gorm models above.

type TagView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type UserView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type WorkItemView struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	AssignedToName string   `json:"assigned_to_name"`
	Tags           []string `json:"tags"`
	State          State    `json:"state"`
}

type WorkItemDetails struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Created        time.Time `json:"created"`
	StateUpdated   time.Time `json:"state_updated"`
	AssignedToName string    `json:"assigned_to_name"`
	Tags           []string  `json:"tags"`
	State          State     `json:"state"`
}

// Plain request shapes the repositories accept.

type TagCreate struct {
	Name string `json:"name"`
}

type TagUpdate struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type UserCreate struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UserUpdate struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type WorkItemCreate struct {
	Title        string   `json:"title"`
	AssignedToID *int64   `json:"assigned_to_id,omitempty"`
	Description  string   `json:"description,omitempty"`
	Tags         []string `json:"tags"`
}

type WorkItemUpdate struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	AssignedToID *int64   `json:"assigned_to_id,omitempty"`
	Description  string   `json:"description,omitempty"`
	Tags         []string `json:"tags"`
	State        State    `json:"state"`
}
