package repos

import (
	"context"
	"testing"

	"github.com/yungbote/kanban-backend/internal/data/repos/testutil"
	types "github.com/yungbote/kanban-backend/internal/domain"
	"github.com/yungbote/kanban-backend/internal/pkg/dbctx"
)

func TestTagRepoCreate(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}

	repo := NewTagRepo(db, testutil.Logger(t))

	names := []string{"bug", "feature", "urgent"}
	ids := make(map[string]int64, len(names))
	var lastID int64
	for _, name := range names {
		resp, id, err := repo.Create(dbc, types.TagCreate{Name: name})
		if err != nil {
			t.Fatalf("Create(%q): %v", name, err)
		}
		if resp != types.ResponseCreated {
			t.Fatalf("Create(%q): expected Created, got %v", name, resp)
		}
		if id <= lastID {
			t.Fatalf("Create(%q): expected id > %d, got %d", name, lastID, id)
		}
		ids[name] = id
		lastID = id
	}

	var before int64
	if err := tx.Model(&types.Tag{}).Count(&before).Error; err != nil {
		t.Fatalf("count tags: %v", err)
	}

	resp, id, err := repo.Create(dbc, types.TagCreate{Name: "bug"})
	if err != nil {
		t.Fatalf("Create duplicate: %v", err)
	}
	if resp != types.ResponseConflict {
		t.Fatalf("Create duplicate: expected Conflict, got %v", resp)
	}
	if id != ids["bug"] {
		t.Fatalf("Create duplicate: expected original id %d, got %d", ids["bug"], id)
	}

	var after int64
	if err := tx.Model(&types.Tag{}).Count(&after).Error; err != nil {
		t.Fatalf("count tags: %v", err)
	}
	if after != before {
		t.Fatalf("Create duplicate: tag count changed from %d to %d", before, after)
	}
}

func TestTagRepoFindAndRead(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	repo := NewTagRepo(db, testutil.Logger(t))

	seeded := testutil.SeedTag(t, ctx, tx, "docs")

	got, err := repo.Find(dbc, seeded.ID)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if got == nil || got.ID != seeded.ID || got.Name != "docs" {
		t.Fatalf("Find: unexpected view %+v", got)
	}

	absent, err := repo.Find(dbc, seeded.ID+1000)
	if err != nil {
		t.Fatalf("Find absent: %v", err)
	}
	if absent != nil {
		t.Fatalf("Find absent: expected nil, got %+v", absent)
	}

	testutil.SeedTag(t, ctx, tx, "infra")
	views, err := repo.Read(dbc)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("Read: expected 2 tags, got %d", len(views))
	}
}

func TestTagRepoUpdate(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	repo := NewTagRepo(db, testutil.Logger(t))

	resp, err := repo.Update(dbc, types.TagUpdate{ID: 12345, Name: "nope"})
	if err != nil {
		t.Fatalf("Update missing: %v", err)
	}
	if resp != types.ResponseNotFound {
		t.Fatalf("Update missing: expected NotFound, got %v", resp)
	}

	seeded := testutil.SeedTag(t, ctx, tx, "backlog")
	resp, err = repo.Update(dbc, types.TagUpdate{ID: seeded.ID, Name: "icebox"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if resp != types.ResponseUpdated {
		t.Fatalf("Update: expected Updated, got %v", resp)
	}

	got, err := repo.Find(dbc, seeded.ID)
	if err != nil {
		t.Fatalf("Find after update: %v", err)
	}
	if got == nil || got.Name != "icebox" {
		t.Fatalf("Update did not persist, got %+v", got)
	}
}

func TestTagRepoDelete(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	repo := NewTagRepo(db, testutil.Logger(t))

	resp, err := repo.Delete(dbc, 99999, false)
	if err != nil {
		t.Fatalf("Delete missing: %v", err)
	}
	if resp != types.ResponseNotFound {
		t.Fatalf("Delete missing: expected NotFound, got %v", resp)
	}

	loose := testutil.SeedTag(t, ctx, tx, "loose")
	resp, err = repo.Delete(dbc, loose.ID, false)
	if err != nil {
		t.Fatalf("Delete unattached: %v", err)
	}
	if resp != types.ResponseDeleted {
		t.Fatalf("Delete unattached: expected Deleted, got %v", resp)
	}

	attached := testutil.SeedTag(t, ctx, tx, "attached")
	item := testutil.SeedWorkItem(t, ctx, tx, "tagged item", types.StateNew, nil, attached)

	resp, err = repo.Delete(dbc, attached.ID, false)
	if err != nil {
		t.Fatalf("Delete attached: %v", err)
	}
	if resp != types.ResponseConflict {
		t.Fatalf("Delete attached without force: expected Conflict, got %v", resp)
	}
	still, err := repo.Find(dbc, attached.ID)
	if err != nil {
		t.Fatalf("Find after refused delete: %v", err)
	}
	if still == nil {
		t.Fatalf("refused delete removed the tag anyway")
	}

	resp, err = repo.Delete(dbc, attached.ID, true)
	if err != nil {
		t.Fatalf("Delete attached force: %v", err)
	}
	if resp != types.ResponseDeleted {
		t.Fatalf("Delete attached force: expected Deleted, got %v", resp)
	}

	// The referencing work item survives, just without the tag.
	var row types.WorkItem
	if err := tx.WithContext(ctx).Preload("Tags").Where("id = ?", item.ID).Limit(1).Find(&row).Error; err != nil {
		t.Fatalf("reload work item: %v", err)
	}
	if row.ID == 0 {
		t.Fatalf("forced tag delete removed the work item")
	}
	if len(row.Tags) != 0 {
		t.Fatalf("forced tag delete left associations behind: %+v", row.Tags)
	}
}
