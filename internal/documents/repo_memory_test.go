package documents

import (
	"context"
	"errors"
	"testing"
	"time"
)

func seedDoc(id, userID string, createdAt time.Time) Document {
	return Document{
		ID:         id,
		UserID:     userID,
		FileName:   id + ".pdf",
		MimeType:   "application/pdf",
		SizeBytes:  100,
		PageCount:  1,
		StorageKey: userID + "/" + id + ".pdf",
		CreatedAt:  createdAt,
	}
}

func TestMemoryRepoCurrentReturnsLatest(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	base := time.Now().UTC()

	for i, id := range []string{"a", "b", "c"} {
		if err := repo.Create(ctx, seedDoc(id, "guest:u1", base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	doc, err := repo.GetCurrentByUser(ctx, "guest:u1")
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if doc.ID != "c" {
		t.Fatalf("current = %s, want c", doc.ID)
	}
}

func TestMemoryRepoCurrentEmpty(t *testing.T) {
	_, err := NewMemoryRepo().GetCurrentByUser(context.Background(), "guest:none")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestMemoryRepoGetByIDScopedToOwner(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	if err := repo.Create(ctx, seedDoc("a", "guest:owner", time.Now())); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := repo.GetByID(ctx, "guest:owner", "a"); err != nil {
		t.Fatalf("owner lookup: %v", err)
	}
	if _, err := repo.GetByID(ctx, "guest:other", "a"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-user lookup err = %v, want ErrNotFound", err)
	}
}

func TestMemoryRepoListNewestFirstWithPaging(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	base := time.Now().UTC()

	for i, id := range []string{"a", "b", "c", "d"} {
		if err := repo.Create(ctx, seedDoc(id, "guest:u1", base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	docs, err := repo.ListByUser(ctx, "guest:u1", 2, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 2 || docs[0].ID != "c" || docs[1].ID != "b" {
		t.Fatalf("page = %v", docIDs(docs))
	}

	empty, err := repo.ListByUser(ctx, "guest:u1", 10, 99)
	if err != nil {
		t.Fatalf("list past end: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty page, got %v", docIDs(empty))
	}
}

func TestMemoryRepoUpdateExtractionOnlyOnce(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	if err := repo.Create(ctx, seedDoc("a", "guest:u1", time.Now())); err != nil {
		t.Fatalf("create: %v", err)
	}

	first := time.Now().UTC()
	if err := repo.UpdateExtraction(ctx, "guest:u1", "a", "key1", first); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := repo.UpdateExtraction(ctx, "guest:u1", "a", "key2", first.Add(time.Hour)); err != nil {
		t.Fatalf("second update: %v", err)
	}

	doc, err := repo.GetByID(ctx, "guest:u1", "a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if doc.ExtractedTextKey != "key1" {
		t.Fatalf("extracted key = %s, want key1 to stick", doc.ExtractedTextKey)
	}
}

func docIDs(docs []Document) []string {
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids
}
