package user

import (
	"context"
	"errors"
	"testing"

	"github.com/gotrabandhus/gotrabandhus/model"
)

func TestMemoryCreate(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	first, err := repo.Create(ctx, &model.UserEntity{
		FirstName: "Asha",
		LastName:  "Rao",
		Nickname:  "ash",
		Email:     "asha@x.com",
		Password:  "digest",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if first.ID != 1 {
		t.Fatalf("first ID = %d, want 1", first.ID)
	}
	if first.CreatedAt.IsZero() {
		t.Fatal("CreatedAt not set")
	}

	second, err := repo.Create(ctx, &model.UserEntity{
		FirstName: "Ravi",
		LastName:  "Rao",
		Nickname:  "rv",
		Email:     "ravi@x.com",
		Password:  "digest",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if second.ID != 2 {
		t.Fatalf("second ID = %d, want 2", second.ID)
	}

	if _, err := repo.Create(ctx, &model.UserEntity{Email: "asha@x.com"}); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("duplicate Create() error = %v, want ErrDuplicate", err)
	}
}

func TestMemoryGet(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.UserEntity{
		FirstName: "Asha",
		Email:     "asha@x.com",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	byID, err := repo.Get(ctx, &model.UserFilter{ID: created.ID})
	if err != nil || byID == nil || byID.Email != "asha@x.com" {
		t.Fatalf("Get by ID = %+v, %v", byID, err)
	}

	byEmail, err := repo.Get(ctx, &model.UserFilter{Email: "asha@x.com"})
	if err != nil || byEmail == nil || byEmail.ID != created.ID {
		t.Fatalf("Get by email = %+v, %v", byEmail, err)
	}

	missing, err := repo.Get(ctx, &model.UserFilter{Email: "nobody@x.com"})
	if err != nil || missing != nil {
		t.Fatalf("Get missing = %+v, %v, want nil, nil", missing, err)
	}

	// Returned entity is a copy, mutating it does not touch the store
	byID.FirstName = "changed"
	again, _ := repo.Get(ctx, &model.UserFilter{ID: created.ID})
	if again.FirstName != "Asha" {
		t.Fatalf("store mutated through returned copy: %q", again.FirstName)
	}
}

func TestMemoryUpdate(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	asha, err := repo.Create(ctx, &model.UserEntity{FirstName: "Asha", Email: "asha@x.com"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := repo.Create(ctx, &model.UserEntity{FirstName: "Ravi", Email: "ravi@x.com"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("updates fields and sets UpdatedAt", func(t *testing.T) {
		modified := *asha
		modified.CurrentCity = "Pune"
		updated, err := repo.Update(ctx, &modified)
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if updated.UpdatedAt == nil {
			t.Fatal("UpdatedAt not set")
		}

		stored, _ := repo.Get(ctx, &model.UserFilter{ID: asha.ID})
		if stored.CurrentCity != "Pune" {
			t.Fatalf("stored city = %q, want Pune", stored.CurrentCity)
		}
	})

	t.Run("reindexes on email change", func(t *testing.T) {
		modified := *asha
		modified.Email = "asha.rao@x.com"
		if _, err := repo.Update(ctx, &modified); err != nil {
			t.Fatalf("Update() error = %v", err)
		}

		old, _ := repo.Get(ctx, &model.UserFilter{Email: "asha@x.com"})
		if old != nil {
			t.Fatalf("old email still resolves: %+v", old)
		}
		renamed, _ := repo.Get(ctx, &model.UserFilter{Email: "asha.rao@x.com"})
		if renamed == nil || renamed.ID != asha.ID {
			t.Fatalf("new email lookup = %+v", renamed)
		}
	})

	t.Run("rejects email held by another user", func(t *testing.T) {
		modified := *asha
		modified.Email = "ravi@x.com"
		if _, err := repo.Update(ctx, &modified); !errors.Is(err, ErrDuplicate) {
			t.Fatalf("Update() error = %v, want ErrDuplicate", err)
		}
	})

	t.Run("unknown ID yields nil", func(t *testing.T) {
		updated, err := repo.Update(ctx, &model.UserEntity{ID: 99, Email: "ghost@x.com"})
		if err != nil || updated != nil {
			t.Fatalf("Update() = %+v, %v, want nil, nil", updated, err)
		}
	})
}
