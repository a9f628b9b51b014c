// Package repos is the board's domain-rules layer. Each repository validates
// a request, reads current state, and writes inside one transaction boundary.
// Anticipated outcomes (missing rows, uniqueness conflicts, protected
// associations, illegal deletions) come back as a domain.Response; the error
// return carries store failures only, and a Response paired with a non-nil
// error is meaningless.
package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/kanban-backend/internal/pkg/logger"
)

type Repos struct {
	Tags      TagRepo
	Users     UserRepo
	WorkItems WorkItemRepo
}

func New(db *gorm.DB, baseLog *logger.Logger) *Repos {
	return &Repos{
		Tags:      NewTagRepo(db, baseLog),
		Users:     NewUserRepo(db, baseLog),
		WorkItems: NewWorkItemRepo(db, baseLog),
	}
}
