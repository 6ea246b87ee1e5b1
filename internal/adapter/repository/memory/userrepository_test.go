package memory

import (
	"context"
	"testing"

	"github.com/artbay/backend/internal/domain"
)

func TestUserRepositoryStub(t *testing.T) {
	repo := NewUserRepositoryStub()
	repo.Put(&domain.UserRecord{ID: "u1", FCMToken: "tok123"})

	rec, err := repo.FindByID(context.Background(), "u1")
	if err != nil {
		t.Fatalf("FindByID(u1) error = %v", err)
	}
	if rec == nil || rec.FCMToken != "tok123" {
		t.Errorf("FindByID(u1) = %+v, want token tok123", rec)
	}

	rec, err = repo.FindByID(context.Background(), "missing")
	if err != nil {
		t.Fatalf("FindByID(missing) error = %v", err)
	}
	if rec != nil {
		t.Errorf("FindByID(missing) = %+v, want nil", rec)
	}
}
