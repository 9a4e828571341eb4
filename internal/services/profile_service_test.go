package services

import (
	"context"
	"errors"
	"testing"

	"github.com/moverhub/backend/internal/domain/profile"
	apperrors "github.com/moverhub/backend/internal/pkg/errors"
	"github.com/moverhub/backend/internal/pkg/logger"
	"github.com/moverhub/backend/internal/testutil"
)

func newProfileService(repo *testutil.MockProfileRepository, store *testutil.MockMirrorStore) profile.Service {
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	mirrorSvc := NewMirrorService(store, testMirrorConfig(), log)
	return NewProfileService(repo, mirrorSvc, log)
}

func TestProfileService_GetByEmail(t *testing.T) {
	repo := testutil.NewMockProfileRepository()
	service := newProfileService(repo, testutil.NewMockMirrorStore())

	p := &profile.Profile{
		Email:        "mover@example.com",
		BusinessName: "Swift Moves",
		Phone:        "+15550001111",
		City:         "Austin",
	}
	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatal(err)
	}

	view, err := service.GetByEmail(context.Background(), "mover@example.com")
	if err != nil {
		t.Fatalf("GetByEmail() error = %v", err)
	}
	if view.Name != "Swift Moves" {
		t.Errorf("name = %q, want Swift Moves", view.Name)
	}
	if view.ProfileCompletion != 50 {
		t.Errorf("profile completion = %d, want 50", view.ProfileCompletion)
	}
}

func TestProfileService_GetByEmailNotFound(t *testing.T) {
	service := newProfileService(testutil.NewMockProfileRepository(), testutil.NewMockMirrorStore())

	_, err := service.GetByEmail(context.Background(), "ghost@example.com")
	if !apperrors.IsNotFound(err) {
		t.Fatalf("error = %v, want not found", err)
	}
}

func TestProfileService_UpdateByEmail(t *testing.T) {
	repo := testutil.NewMockProfileRepository()
	store := testutil.NewMockMirrorStore()
	service := newProfileService(repo, store)

	p := &profile.Profile{
		Email:    "mover@example.com",
		FullName: "Janet Moss",
		Phone:    "+15550001111",
		City:     "Austin",
		State:    "TX",
	}
	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatal(err)
	}

	city := "Dallas"
	price := 99.0
	view, err := service.UpdateByEmail(context.Background(), "mover@example.com", profile.Update{
		City:          &city,
		StartingPrice: &price,
	})
	if err != nil {
		t.Fatalf("UpdateByEmail() error = %v", err)
	}

	if view.City != "Dallas" {
		t.Errorf("view city = %q, want Dallas", view.City)
	}
	if view.StartingPrice == nil || *view.StartingPrice != 99.0 {
		t.Errorf("view starting price = %v, want 99", view.StartingPrice)
	}

	// Untouched fields survive a partial edit.
	stored := repo.Profiles["mover@example.com"]
	if stored.FullName != "Janet Moss" || stored.Phone != "+15550001111" || stored.State != "TX" {
		t.Errorf("partial edit clobbered untouched fields: %+v", stored)
	}

	if store.CreateCalls != 1 {
		t.Errorf("mirror create calls = %d, want 1", store.CreateCalls)
	}
}

func TestProfileService_UpdateSurvivesMirrorFailure(t *testing.T) {
	repo := testutil.NewMockProfileRepository()
	store := testutil.NewMockMirrorStore()
	store.FindError = errors.New("mirror down")
	service := newProfileService(repo, store)

	if err := repo.Create(context.Background(), &profile.Profile{Email: "mover@example.com"}); err != nil {
		t.Fatal(err)
	}

	city := "Dallas"
	if _, err := service.UpdateByEmail(context.Background(), "mover@example.com", profile.Update{City: &city}); err != nil {
		t.Fatalf("edit failed because of mirror outage: %v", err)
	}
	if repo.Profiles["mover@example.com"].City != "Dallas" {
		t.Error("canonical write did not land")
	}
}

func TestProfileService_SetLogoURL(t *testing.T) {
	repo := testutil.NewMockProfileRepository()
	service := newProfileService(repo, testutil.NewMockMirrorStore())

	if err := repo.Create(context.Background(), &profile.Profile{Email: "mover@example.com"}); err != nil {
		t.Fatal(err)
	}

	view, err := service.SetLogoURL(context.Background(), "mover@example.com", "https://cdn.example.com/logo.png")
	if err != nil {
		t.Fatalf("SetLogoURL() error = %v", err)
	}
	if view.Logo != "https://cdn.example.com/logo.png" {
		t.Errorf("logo = %q", view.Logo)
	}
}
