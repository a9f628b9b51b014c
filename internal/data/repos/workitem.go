package repos

import (
	"time"

	"gorm.io/gorm"

	types "github.com/yungbote/kanban-backend/internal/domain"
	"github.com/yungbote/kanban-backend/internal/pkg/dbctx"
	"github.com/yungbote/kanban-backend/internal/pkg/logger"
)

type WorkItemRepo interface {
	Create(dbc dbctx.Context, req types.WorkItemCreate) (types.Response, int64, error)
	Find(dbc dbctx.Context, itemID int64) (*types.WorkItemDetails, error)
	Read(dbc dbctx.Context) ([]types.WorkItemView, error)
	ReadByState(dbc dbctx.Context, state types.State) ([]types.WorkItemView, error)
	ReadByTag(dbc dbctx.Context, tagName string) ([]types.WorkItemView, error)
	ReadByUser(dbc dbctx.Context, userID int64) ([]types.WorkItemView, error)
	ReadRemoved(dbc dbctx.Context) ([]types.WorkItemView, error)
	Update(dbc dbctx.Context, req types.WorkItemUpdate) (types.Response, error)
	Delete(dbc dbctx.Context, itemID int64) (types.Response, error)
}

type workItemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWorkItemRepo(db *gorm.DB, baseLog *logger.Logger) WorkItemRepo {
	return &workItemRepo{db: db, log: baseLog.With("repo", "WorkItemRepo")}
}

func workItemViewFromRow(row types.WorkItem) types.WorkItemView {
	assignedTo := ""
	if row.AssignedTo != nil {
		assignedTo = row.AssignedTo.Name
	}
	tagNames := make([]string, 0, len(row.Tags))
	for _, tag := range row.Tags {
		tagNames = append(tagNames, tag.Name)
	}
	return types.WorkItemView{
		ID:             row.ID,
		Title:          row.Title,
		AssignedToName: assignedTo,
		Tags:           tagNames,
		State:          row.State,
	}
}

func workItemDetailsFromRow(row types.WorkItem) *types.WorkItemDetails {
	view := workItemViewFromRow(row)
	return &types.WorkItemDetails{
		ID:             view.ID,
		Title:          view.Title,
		Description:    row.Description,
		Created:        row.Created,
		StateUpdated:   row.StateUpdated,
		AssignedToName: view.AssignedToName,
		Tags:           view.Tags,
		State:          view.State,
	}
}

// findOrCreateTag resolves a tag name to its row, creating the row when no
// tag with that name exists yet. Runs on the caller's transaction so an
// aborted work-item write takes any freshly created tags down with it.
func findOrCreateTag(tx *gorm.DB, name string) (types.Tag, error) {
	var tag types.Tag
	if err := tx.Where("name = ?", name).Limit(1).Find(&tag).Error; err != nil {
		return types.Tag{}, err
	}
	if tag.ID != 0 {
		return tag, nil
	}
	tag = types.Tag{Name: name}
	if err := tx.Create(&tag).Error; err != nil {
		return types.Tag{}, err
	}
	return tag, nil
}

// resolveTags maps the request's tag names to rows, deduplicating by name so
// the resulting set never attaches the same tag twice.
func resolveTags(tx *gorm.DB, names []string) ([]types.Tag, error) {
	seen := make(map[string]struct{}, len(names))
	tags := make([]types.Tag, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		tag, err := findOrCreateTag(tx, name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func (r *workItemRepo) Create(dbc dbctx.Context, req types.WorkItemCreate) (types.Response, int64, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	resp := types.ResponseBadRequest
	newID := int64(-1)
	err := transaction.WithContext(dbc.Ctx).Transaction(func(tx *gorm.DB) error {
		var assignedID *int64
		if req.AssignedToID != nil {
			var assignee types.User
			if err := tx.Where("id = ?", *req.AssignedToID).Limit(1).Find(&assignee).Error; err != nil {
				return err
			}
			if assignee.ID == 0 {
				resp = types.ResponseBadRequest
				newID = -1
				return nil
			}
			assignedID = &assignee.ID
		}

		tags, err := resolveTags(tx, req.Tags)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		row := types.WorkItem{
			Title:        req.Title,
			Description:  req.Description,
			AssignedToID: assignedID,
			State:        types.StateNew,
			Created:      now,
			StateUpdated: now,
			Tags:         tags,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		resp = types.ResponseCreated
		newID = row.ID
		return nil
	})
	if err != nil {
		return 0, -1, err
	}
	return resp, newID, nil
}

func (r *workItemRepo) Find(dbc dbctx.Context, itemID int64) (*types.WorkItemDetails, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var row types.WorkItem
	if err := transaction.WithContext(dbc.Ctx).
		Preload("AssignedTo").
		Preload("Tags").
		Where("id = ?", itemID).
		Limit(1).
		Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, nil
	}
	return workItemDetailsFromRow(row), nil
}

func (r *workItemRepo) readViews(dbc dbctx.Context, scope func(*gorm.DB) *gorm.DB) ([]types.WorkItemView, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	q := transaction.WithContext(dbc.Ctx).
		Model(&types.WorkItem{}).
		Preload("AssignedTo").
		Preload("Tags")
	if scope != nil {
		q = scope(q)
	}

	var rows []types.WorkItem
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]types.WorkItemView, 0, len(rows))
	for _, row := range rows {
		views = append(views, workItemViewFromRow(row))
	}
	return views, nil
}

func (r *workItemRepo) Read(dbc dbctx.Context) ([]types.WorkItemView, error) {
	return r.readViews(dbc, nil)
}

func (r *workItemRepo) ReadByState(dbc dbctx.Context, state types.State) ([]types.WorkItemView, error) {
	return r.readViews(dbc, func(q *gorm.DB) *gorm.DB {
		return q.Where("state = ?", state)
	})
}

func (r *workItemRepo) ReadByTag(dbc dbctx.Context, tagName string) ([]types.WorkItemView, error) {
	return r.readViews(dbc, func(q *gorm.DB) *gorm.DB {
		return q.
			Select("work_item.*").
			Joins("JOIN work_item_tag ON work_item_tag.work_item_id = work_item.id").
			Joins("JOIN tag ON tag.id = work_item_tag.tag_id").
			Where("tag.name = ?", tagName)
	})
}

func (r *workItemRepo) ReadByUser(dbc dbctx.Context, userID int64) ([]types.WorkItemView, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	// An unknown user yields an empty collection, not an error.
	var assignee types.User
	if err := transaction.WithContext(dbc.Ctx).
		Where("id = ?", userID).
		Limit(1).
		Find(&assignee).Error; err != nil {
		return nil, err
	}
	if assignee.ID == 0 {
		return []types.WorkItemView{}, nil
	}

	return r.readViews(dbc, func(q *gorm.DB) *gorm.DB {
		return q.Where("assigned_to_id = ?", userID)
	})
}

func (r *workItemRepo) ReadRemoved(dbc dbctx.Context) ([]types.WorkItemView, error) {
	return r.ReadByState(dbc, types.StateRemoved)
}

func (r *workItemRepo) Update(dbc dbctx.Context, req types.WorkItemUpdate) (types.Response, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	resp := types.ResponseNotFound
	err := transaction.WithContext(dbc.Ctx).Transaction(func(tx *gorm.DB) error {
		var row types.WorkItem
		if err := tx.Where("id = ?", req.ID).Limit(1).Find(&row).Error; err != nil {
			return err
		}
		if row.ID == 0 {
			resp = types.ResponseNotFound
			return nil
		}

		// The assignee is resolved by lookup; an id that matches no user
		// clears the field.
		var assignedID *int64
		if req.AssignedToID != nil {
			var assignee types.User
			if err := tx.Where("id = ?", *req.AssignedToID).Limit(1).Find(&assignee).Error; err != nil {
				return err
			}
			if assignee.ID != 0 {
				assignedID = &assignee.ID
			}
		}

		updates := map[string]any{
			"title":          req.Title,
			"description":    req.Description,
			"assigned_to_id": assignedID,
		}
		// state_updated moves only when the state actually changes.
		if req.State != row.State {
			updates["state"] = req.State
			updates["state_updated"] = time.Now().UTC()
		}
		if err := tx.Model(&row).Updates(updates).Error; err != nil {
			return err
		}

		tags, err := resolveTags(tx, req.Tags)
		if err != nil {
			return err
		}
		if err := tx.Model(&row).Association("Tags").Replace(tags); err != nil {
			return err
		}

		resp = types.ResponseUpdated
		return nil
	})
	if err != nil {
		return 0, err
	}
	return resp, nil
}

func (r *workItemRepo) Delete(dbc dbctx.Context, itemID int64) (types.Response, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	resp := types.ResponseNotFound
	err := transaction.WithContext(dbc.Ctx).Transaction(func(tx *gorm.DB) error {
		var row types.WorkItem
		if err := tx.Where("id = ?", itemID).Limit(1).Find(&row).Error; err != nil {
			return err
		}
		if row.ID == 0 {
			resp = types.ResponseNotFound
			return nil
		}

		switch row.State {
		case types.StateResolved, types.StateClosed, types.StateRemoved:
			// Terminal and removed items are immutable against deletion.
			resp = types.ResponseConflict
		case types.StateActive:
			// Soft delete: the row survives with state Removed.
			if err := tx.Model(&row).Updates(map[string]any{
				"state":         types.StateRemoved,
				"state_updated": time.Now().UTC(),
			}).Error; err != nil {
				return err
			}
			resp = types.ResponseUpdated
		default:
			// New items are hard-deleted along with their tag associations.
			if err := tx.Model(&row).Association("Tags").Clear(); err != nil {
				return err
			}
			if err := tx.Delete(&row).Error; err != nil {
				return err
			}
			resp = types.ResponseDeleted
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return resp, nil
}
