package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/wildtrails/tours-api/internal/core/domain"
	"github.com/wildtrails/tours-api/internal/core/ports"
)

func seedUser(repo *stubUserRepo, email string) *domain.User {
	user, _ := repo.Create(context.Background(), &domain.User{
		Name:   "Alice",
		Email:  email,
		Role:   domain.RoleUser,
		Active: true,
	})
	return user
}

func TestUserService_UpdateProfile_RejectsPasswordFields(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	user := seedUser(repo, "alice@example.com")

	_, err := svc.UpdateProfile(context.Background(), user.ID, ports.ProfileUpdateInput{
		Name:     "New Name",
		Password: "sneaky-change",
	})
	if !domain.IsKind(err, domain.KindBadRequest) {
		t.Fatalf("expected bad request, got %v", err)
	}
	if repo.users[user.ID].Name != "Alice" {
		t.Fatalf("profile mutated despite rejection")
	}
}

func TestUserService_UpdateProfile_PatchesNameAndEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	user := seedUser(repo, "alice@example.com")

	updated, err := svc.UpdateProfile(context.Background(), user.ID, ports.ProfileUpdateInput{
		Name:  "Alice B",
		Email: "Alice.B@Example.com",
	})
	if err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	if updated.Name != "Alice B" {
		t.Fatalf("name not updated: %s", updated.Name)
	}
	if updated.Email != "alice.b@example.com" {
		t.Fatalf("email not lowercased: %s", updated.Email)
	}
}

func TestUserService_DeleteProfile_SoftDeletes(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	user := seedUser(repo, "bob@example.com")

	if err := svc.DeleteProfile(context.Background(), user.ID); err != nil {
		t.Fatalf("delete profile failed: %v", err)
	}

	// The document survives but disappears from reads.
	if _, ok := repo.users[user.ID]; !ok {
		t.Fatalf("account hard-deleted instead of deactivated")
	}
	_, err := svc.Get(context.Background(), user.ID)
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("deactivated account still readable: %v", err)
	}
}

func TestUserService_Update_ValidatesRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	user := seedUser(repo, "carol@example.com")

	badRole := "superuser"
	_, err := svc.Update(context.Background(), user.ID, ports.UserUpdate{Role: &badRole})
	if !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	goodRole := domain.RoleLeadGuide
	updated, err := svc.Update(context.Background(), user.ID, ports.UserUpdate{Role: &goodRole})
	if err != nil {
		t.Fatalf("role update failed: %v", err)
	}
	if updated.Role != domain.RoleLeadGuide {
		t.Fatalf("role not updated: %s", updated.Role)
	}
}
