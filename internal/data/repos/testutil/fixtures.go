package testutil

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	types "github.com/yungbote/kanban-backend/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, name, email string) *types.User {
	tb.Helper()
	u := &types.User{
		Name:  name,
		Email: email,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedTag(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Tag {
	tb.Helper()
	t := &types.Tag{Name: name}
	if err := tx.WithContext(ctx).Create(t).Error; err != nil {
		tb.Fatalf("seed tag: %v", err)
	}
	return t
}

func SeedWorkItem(tb testing.TB, ctx context.Context, tx *gorm.DB, title string, state types.State, assignedTo *types.User, tags ...*types.Tag) *types.WorkItem {
	tb.Helper()
	now := time.Now().UTC()
	item := &types.WorkItem{
		Title:        title,
		State:        state,
		Created:      now,
		StateUpdated: now,
	}
	if assignedTo != nil {
		item.AssignedToID = &assignedTo.ID
	}
	for _, tag := range tags {
		item.Tags = append(item.Tags, *tag)
	}
	if err := tx.WithContext(ctx).Create(item).Error; err != nil {
		tb.Fatalf("seed work item: %v", err)
	}
	return item
}
