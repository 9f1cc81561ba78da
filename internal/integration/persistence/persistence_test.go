package persistence_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/six-jars/backend/internal/domain/budget"
	"github.com/six-jars/backend/internal/domain/entity"
	domainerror "github.com/six-jars/backend/internal/domain/error"
	"github.com/six-jars/backend/internal/integration/persistence"
	"github.com/six-jars/backend/internal/integration/persistence/model"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.BudgetSnapshotModel{},
		&model.EmailQueueModel{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestBudgetRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewBudgetRepository(openDB(t))
	userID := uuid.New()

	if _, err := repo.Load(ctx, userID); !errors.Is(err, domainerror.ErrSnapshotNotFound) {
		t.Fatalf("Load() error = %v, want ErrSnapshotNotFound", err)
	}

	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	engine := budget.NewEngine(budget.WithClock(func() time.Time { return now }))
	tr, err := engine.SetIncome(entity.NewUserData("hoa", now), decimal.NewFromInt(1000000))
	if err != nil {
		t.Fatalf("SetIncome() error = %v", err)
	}
	tr, err = engine.CommitExpense(tr.State, entity.ExpenseDraft{
		Name:     "Phở",
		Amount:   decimal.NewFromInt(45000),
		Category: entity.CategoryFood,
		Jar:      entity.JarNecessities,
	})
	if err != nil {
		t.Fatalf("CommitExpense() error = %v", err)
	}
	want := tr.State

	if err := repo.Save(ctx, userID, want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	// second save overwrites
	if err := repo.Save(ctx, userID, want); err != nil {
		t.Fatalf("Save() again error = %v", err)
	}

	got, err := repo.Load(ctx, userID)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	wantDoc, _ := budget.EncodeSnapshot(want)
	gotDoc, _ := budget.EncodeSnapshot(*got)
	if string(gotDoc) != string(wantDoc) {
		t.Errorf("round trip mismatch\n got: %s\nwant: %s", gotDoc, wantDoc)
	}
}

func TestBudgetRepository_CorruptDocument(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	userID := uuid.New()
	if err := db.Create(&model.BudgetSnapshotModel{UserID: userID, Document: "{not json", UpdatedAt: time.Now().UTC()}).Error; err != nil {
		t.Fatalf("seed error = %v", err)
	}

	_, err := persistence.NewBudgetRepository(db).Load(ctx, userID)
	if !errors.Is(err, domainerror.ErrCorruptSnapshot) {
		t.Errorf("Load() error = %v, want ErrCorruptSnapshot", err)
	}
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewUserRepository(openDB(t))

	user := entity.NewUser("lan", "lan@example.com", "hash")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	byName, err := repo.FindByUsername(ctx, "lan")
	if err != nil || byName.ID != user.ID {
		t.Fatalf("FindByUsername() = %+v, %v", byName, err)
	}
	if _, err := repo.FindByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrUserNotFound) {
		t.Errorf("FindByID(unknown) error = %v", err)
	}

	tests := []struct {
		name  string
		check func() (bool, error)
		want  bool
	}{
		{name: "username taken", check: func() (bool, error) { return repo.ExistsByUsername(ctx, "lan") }, want: true},
		{name: "username free", check: func() (bool, error) { return repo.ExistsByUsername(ctx, "mai") }, want: false},
		{name: "email taken", check: func() (bool, error) { return repo.ExistsByEmail(ctx, "lan@example.com") }, want: true},
		{name: "email free", check: func() (bool, error) { return repo.ExistsByEmail(ctx, "mai@example.com") }, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.check()
			if err != nil || got != tt.want {
				t.Errorf("got %v, %v; want %v", got, err, tt.want)
			}
		})
	}

	byName.PasswordHash = "new-hash"
	if err := repo.Update(ctx, byName); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	updated, _ := repo.FindByID(ctx, user.ID)
	if updated.PasswordHash != "new-hash" {
		t.Errorf("PasswordHash = %q, want new-hash", updated.PasswordHash)
	}
}

func TestTokenRepository(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewTokenRepository(openDB(t))
	userID := uuid.New()

	if err := repo.SaveRefreshToken(ctx, "t1", userID, time.Now().UTC().Add(time.Hour)); err != nil {
		t.Fatalf("SaveRefreshToken() error = %v", err)
	}
	if err := repo.SaveRefreshToken(ctx, "t2", userID, time.Now().UTC().Add(time.Hour)); err != nil {
		t.Fatalf("SaveRefreshToken() error = %v", err)
	}

	if valid, err := repo.IsRefreshTokenValid(ctx, "t1"); err != nil || !valid {
		t.Fatalf("IsRefreshTokenValid(t1) = %v, %v", valid, err)
	}
	if valid, _ := repo.IsRefreshTokenValid(ctx, "missing"); valid {
		t.Errorf("unknown token reported valid")
	}

	if err := repo.InvalidateRefreshToken(ctx, "t1"); err != nil {
		t.Fatalf("InvalidateRefreshToken() error = %v", err)
	}
	if valid, _ := repo.IsRefreshTokenValid(ctx, "t1"); valid {
		t.Errorf("t1 still valid after invalidation")
	}

	if err := repo.InvalidateAllUserRefreshTokens(ctx, userID); err != nil {
		t.Fatalf("InvalidateAllUserRefreshTokens() error = %v", err)
	}
	if valid, _ := repo.IsRefreshTokenValid(ctx, "t2"); valid {
		t.Errorf("t2 still valid after invalidating all")
	}
}

func TestEmailQueueRepository(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewEmailQueueRepository(openDB(t))
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	due := entity.NewEmailJob(entity.TemplateGoalCompleted, "lan@example.com", "lan", "Chúc mừng", map[string]interface{}{"goalName": "Xe đạp"}, now.Add(-time.Hour))
	later := entity.NewEmailJob(entity.TemplatePetUnlocked, "lan@example.com", "lan", "Thú cưng mới", nil, now.Add(time.Hour))
	for _, job := range []*entity.EmailJob{due, later} {
		if err := repo.Create(ctx, job); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	jobs, err := repo.GetPendingJobs(ctx, now, 10)
	if err != nil {
		t.Fatalf("GetPendingJobs() error = %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != due.ID {
		t.Fatalf("GetPendingJobs() = %d jobs, want only the due one", len(jobs))
	}
	if jobs[0].TemplateData["goalName"] != "Xe đạp" {
		t.Errorf("TemplateData = %v", jobs[0].TemplateData)
	}

	jobs[0].MarkSent("re_123", now.Add(-30*time.Minute))
	if err := repo.Update(ctx, jobs[0]); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if jobs, _ := repo.GetPendingJobs(ctx, now, 10); len(jobs) != 0 {
		t.Errorf("sent job still pending")
	}

	deleted, err := repo.DeleteSentBefore(ctx, now)
	if err != nil || deleted != 1 {
		t.Errorf("DeleteSentBefore() = %d, %v; want 1", deleted, err)
	}
}
