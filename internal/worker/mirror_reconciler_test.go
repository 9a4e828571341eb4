package worker

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/moverhub/backend/internal/config"
	"github.com/moverhub/backend/internal/domain/profile"
	"github.com/moverhub/backend/internal/pkg/logger"
	"github.com/moverhub/backend/internal/services"
	"github.com/moverhub/backend/internal/testutil"
)

func TestMirrorReconciler_Sweep(t *testing.T) {
	repo := testutil.NewMockProfileRepository()
	store := testutil.NewMockMirrorStore()
	log := logger.New(logger.Config{Level: "error", Format: "json"})

	mirrorSvc := services.NewMirrorService(store, config.MirrorConfig{
		APIKey:    "key",
		BaseID:    "appTest",
		TableName: "Movers",
	}, log)

	for i := 0; i < 3; i++ {
		p := &profile.Profile{Email: fmt.Sprintf("mover%d@example.com", i)}
		if err := repo.Create(context.Background(), p); err != nil {
			t.Fatal(err)
		}
	}

	w := NewMirrorReconciler(repo, mirrorSvc, time.Hour, log)
	w.sweep(context.Background())

	if len(store.Records) != 3 {
		t.Fatalf("mirror records = %d, want 3", len(store.Records))
	}

	// A second sweep updates in place instead of duplicating.
	w.sweep(context.Background())
	if len(store.Records) != 3 {
		t.Fatalf("mirror records after second sweep = %d, want 3", len(store.Records))
	}
}
