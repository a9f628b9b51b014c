package repos

import (
	"errors"

	"gorm.io/gorm"

	types "github.com/yungbote/kanban-backend/internal/domain"
	"github.com/yungbote/kanban-backend/internal/pkg/dbctx"
	"github.com/yungbote/kanban-backend/internal/pkg/logger"
)

type UserRepo interface {
	Create(dbc dbctx.Context, req types.UserCreate) (types.Response, int64, error)
	Find(dbc dbctx.Context, userID int64) (*types.UserView, error)
	Read(dbc dbctx.Context) ([]types.UserView, error)
	Update(dbc dbctx.Context, req types.UserUpdate) (types.Response, error)
	Delete(dbc dbctx.Context, userID int64, force bool) (types.Response, error)
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	return &userRepo{db: db, log: baseLog.With("repo", "UserRepo")}
}

func (r *userRepo) Create(dbc dbctx.Context, req types.UserCreate) (types.Response, int64, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var existing types.User
	if err := transaction.WithContext(dbc.Ctx).
		Where("email = ?", req.Email).
		Limit(1).
		Find(&existing).Error; err != nil {
		return 0, -1, err
	}
	if existing.ID != 0 {
		return types.ResponseConflict, existing.ID, nil
	}

	row := types.User{Name: req.Name, Email: req.Email}
	if err := transaction.WithContext(dbc.Ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var winner types.User
			if ferr := transaction.WithContext(dbc.Ctx).
				Where("email = ?", req.Email).
				Limit(1).
				Find(&winner).Error; ferr == nil && winner.ID != 0 {
				r.log.Debug("user create raced, returning surviving row", "email", req.Email, "id", winner.ID)
				return types.ResponseConflict, winner.ID, nil
			}
		}
		return 0, -1, err
	}

	return types.ResponseCreated, row.ID, nil
}

func (r *userRepo) Find(dbc dbctx.Context, userID int64) (*types.UserView, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var row types.User
	if err := transaction.WithContext(dbc.Ctx).
		Where("id = ?", userID).
		Limit(1).
		Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, nil
	}
	return &types.UserView{ID: row.ID, Name: row.Name, Email: row.Email}, nil
}

func (r *userRepo) Read(dbc dbctx.Context) ([]types.UserView, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var rows []types.User
	if err := transaction.WithContext(dbc.Ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]types.UserView, 0, len(rows))
	for _, row := range rows {
		views = append(views, types.UserView{ID: row.ID, Name: row.Name, Email: row.Email})
	}
	return views, nil
}

func (r *userRepo) Update(dbc dbctx.Context, req types.UserUpdate) (types.Response, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var row types.User
	if err := transaction.WithContext(dbc.Ctx).
		Where("id = ?", req.ID).
		Limit(1).
		Find(&row).Error; err != nil {
		return 0, err
	}
	if row.ID == 0 {
		return types.ResponseNotFound, nil
	}

	updates := map[string]any{}
	if row.Name != req.Name {
		updates["name"] = req.Name
	}
	if row.Email != req.Email {
		updates["email"] = req.Email
	}
	if len(updates) > 0 {
		if err := transaction.WithContext(dbc.Ctx).
			Model(&row).
			Updates(updates).Error; err != nil {
			return 0, err
		}
	}
	return types.ResponseUpdated, nil
}

func (r *userRepo) Delete(dbc dbctx.Context, userID int64, force bool) (types.Response, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	resp := types.ResponseNotFound
	err := transaction.WithContext(dbc.Ctx).Transaction(func(tx *gorm.DB) error {
		var row types.User
		if err := tx.Where("id = ?", userID).Limit(1).Find(&row).Error; err != nil {
			return err
		}
		if row.ID == 0 {
			resp = types.ResponseNotFound
			return nil
		}

		var assigned int64
		if err := tx.Model(&types.WorkItem{}).
			Where("assigned_to_id = ?", row.ID).
			Count(&assigned).Error; err != nil {
			return err
		}
		if assigned > 0 && !force {
			resp = types.ResponseConflict
			return nil
		}
		if assigned > 0 {
			// Forced delete detaches the assignment; the items themselves stay.
			if err := tx.Model(&types.WorkItem{}).
				Where("assigned_to_id = ?", row.ID).
				Update("assigned_to_id", nil).Error; err != nil {
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
