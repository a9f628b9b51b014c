package domain

import (
	"time"
)

// State is the lifecycle state of a WorkItem. New items may be hard-deleted,
// Active items are soft-deleted to Removed, and Resolved/Closed/Removed items
// are protected against deletion entirely.
type State string

const (
	StateNew      State = "new"
	StateActive   State = "active"
	StateResolved State = "resolved"
	StateClosed   State = "closed"
	StateRemoved  State = "removed"
)

func (s State) Valid() bool {
	switch s {
	case StateNew, StateActive, StateResolved, StateClosed, StateRemoved:
		return true
	}
	return false
}

func ParseState(raw string) (State, bool) {
	s := State(raw)
	return s, s.Valid()
}

type User struct {
	ID    int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"not null;column:name" json:"name"`
	Email string `gorm:"uniqueIndex;not null;column:email" json:"email"`

	Items []WorkItem `gorm:"foreignKey:AssignedToID" json:"items,omitempty"`
}

func (User) TableName() string { return "user" }

type Tag struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"uniqueIndex;not null;column:name" json:"name"`

	WorkItems []WorkItem `gorm:"many2many:work_item_tag" json:"work_items,omitempty"`
}

func (Tag) TableName() string { return "tag" }

type WorkItem struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string `gorm:"not null;column:title" json:"title"`
	Description string `gorm:"column:description" json:"description,omitempty"`

	AssignedToID *int64 `gorm:"column:assigned_to_id;index" json:"assigned_to_id,omitempty"`
	AssignedTo   *User  `gorm:"foreignKey:AssignedToID" json:"assigned_to,omitempty"`

	State State `gorm:"not null;default:'new';column:state;index" json:"state"`

	// Created is set once; StateUpdated moves with every state change.
	Created      time.Time `gorm:"not null;column:created" json:"created"`
	StateUpdated time.Time `gorm:"not null;column:state_updated" json:"state_updated"`

	Tags []Tag `gorm:"many2many:work_item_tag" json:"tags,omitempty"`
}

func (WorkItem) TableName() string { return "work_item" }
