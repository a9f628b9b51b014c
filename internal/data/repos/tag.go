package repos

import (
	"errors"

	"gorm.io/gorm"

	types "github.com/yungbote/kanban-backend/internal/domain"
	"github.com/yungbote/kanban-backend/internal/pkg/dbctx"
	"github.com/yungbote/kanban-backend/internal/pkg/logger"
)

type TagRepo interface {
	Create(dbc dbctx.Context, req types.TagCreate) (types.Response, int64, error)
	Find(dbc dbctx.Context, tagID int64) (*types.TagView, error)
	Read(dbc dbctx.Context) ([]types.TagView, error)
	Update(dbc dbctx.Context, req types.TagUpdate) (types.Response, error)
	Delete(dbc dbctx.Context, tagID int64, force bool) (types.Response, error)
}

type tagRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTagRepo(db *gorm.DB, baseLog *logger.Logger) TagRepo {
	return &tagRepo{db: db, log: baseLog.With("repo", "TagRepo")}
}

func (r *tagRepo) Create(dbc dbctx.Context, req types.TagCreate) (types.Response, int64, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	// Advisory pre-check so a duplicate gets Conflict plus the existing id.
	// The unique index on tag.name is the authoritative guard.
	var existing types.Tag
	if err := transaction.WithContext(dbc.Ctx).
		Where("name = ?", req.Name).
		Limit(1).
		Find(&existing).Error; err != nil {
		return 0, -1, err
	}
	if existing.ID != 0 {
		return types.ResponseConflict, existing.ID, nil
	}

	row := types.Tag{Name: req.Name}
	if err := transaction.WithContext(dbc.Ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race past the pre-check; the surviving row wins.
			var winner types.Tag
			if ferr := transaction.WithContext(dbc.Ctx).
				Where("name = ?", req.Name).
				Limit(1).
				Find(&winner).Error; ferr == nil && winner.ID != 0 {
				r.log.Debug("tag create raced, returning surviving row", "name", req.Name, "id", winner.ID)
				return types.ResponseConflict, winner.ID, nil
			}
		}
		return 0, -1, err
	}

	return types.ResponseCreated, row.ID, nil
}

func (r *tagRepo) Find(dbc dbctx.Context, tagID int64) (*types.TagView, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var row types.Tag
	if err := transaction.WithContext(dbc.Ctx).
		Where("id = ?", tagID).
		Limit(1).
		Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, nil
	}
	return &types.TagView{ID: row.ID, Name: row.Name}, nil
}

func (r *tagRepo) Read(dbc dbctx.Context) ([]types.TagView, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var rows []types.Tag
	if err := transaction.WithContext(dbc.Ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]types.TagView, 0, len(rows))
	for _, row := range rows {
		views = append(views, types.TagView{ID: row.ID, Name: row.Name})
	}
	return views, nil
}

func (r *tagRepo) Update(dbc dbctx.Context, req types.TagUpdate) (types.Response, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var row types.Tag
	if err := transaction.WithContext(dbc.Ctx).
		Where("id = ?", req.ID).
		Limit(1).
		Find(&row).Error; err != nil {
		return 0, err
	}
	if row.ID == 0 {
		return types.ResponseNotFound, nil
	}

	// No uniqueness pre-check on rename; a collision hits the unique index
	// and surfaces on the error channel.
	if err := transaction.WithContext(dbc.Ctx).
		Model(&row).
		Update("name", req.Name).Error; err != nil {
		return 0, err
	}
	return types.ResponseUpdated, nil
}

func (r *tagRepo) Delete(dbc dbctx.Context, tagID int64, force bool) (types.Response, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	resp := types.ResponseNotFound
	err := transaction.WithContext(dbc.Ctx).Transaction(func(tx *gorm.DB) error {
		var row types.Tag
		if err := tx.Where("id = ?", tagID).Limit(1).Find(&row).Error; err != nil {
			return err
		}
		if row.ID == 0 {
			resp = types.ResponseNotFound
			return nil
		}

		var attached int64
		if err := tx.Table("work_item_tag").
			Where("tag_id = ?", row.ID).
			Count(&attached).Error; err != nil {
			return err
		}
		if attached > 0 && !force {
			resp = types.ResponseConflict
			return nil
		}
		if attached > 0 {
			if err := tx.Model(&row).Association("WorkItems").Clear(); err != nil {
				return err
			}
		}

		if err := tx.Delete(&row).Error; err != nil {
			return err
		}
		resp = types.ResponseDeleted
		return nil
	})
	if err != nil {
		return 0, err
	}
	return resp, nil
}
