package sqlite

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	migrations "github.com/ghuser/scanregistry/migrations/registry"
	"github.com/ghuser/scanregistry/pkg/database"
	"github.com/ghuser/scanregistry/pkg/migrator"
	registrydomain "github.com/ghuser/scanregistry/services/registry/domain"
	"github.com/ghuser/scanregistry/services/registry/domain/models"
)

func newTestRepo(t *testing.T) *RecordRepository {
	t.Helper()

	db, err := database.OpenMemory(context.Background())
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := migrator.RunMigrations(db.DB(), migrations.MigrationsFS); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	return NewRecordRepository(db)
}

func testRecord(code, name string, at time.Time) *models.Record {
	return &models.Record{Code: models.Code(code), Name: name, CreatedAt: at}
}

func TestRecordRepository(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	t.Run("upsert then get round trip", func(t *testing.T) {
		repo := newTestRepo(t)

		if err := repo.Upsert(ctx, testRecord("code-1", "Alice", createdAt)); err != nil {
			t.Fatalf("upsert: %v", err)
		}

		got, err := repo.GetByCode(ctx, "code-1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Code != "code-1" || got.Name != "Alice" {
			t.Errorf("got %+v", got)
		}
		if !got.CreatedAt.Equal(createdAt) {
			t.Errorf("created_at = %v, want %v", got.CreatedAt, createdAt)
		}
	})

	t.Run("get unknown code", func(t *testing.T) {
		repo := newTestRepo(t)
		_, err := repo.GetByCode(ctx, "missing")
		if !errors.Is(err, registrydomain.ErrRecordNotFound) {
			t.Fatalf("error = %v, want ErrRecordNotFound", err)
		}
	})

	t.Run("create rejects existing code", func(t *testing.T) {
		repo := newTestRepo(t)

		first := testRecord("code-1", "Alice", createdAt)
		if err := repo.Create(ctx, first); err != nil {
			t.Fatalf("create: %v", err)
		}

		err := repo.Create(ctx, testRecord("code-1", "Bob", createdAt.Add(time.Minute)))
		if !errors.Is(err, registrydomain.ErrDuplicateCode) {
			t.Fatalf("error = %v, want ErrDuplicateCode", err)
		}

		got, err := repo.GetByCode(ctx, "code-1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Name != "Alice" {
			t.Errorf("name = %q, first registration must survive", got.Name)
		}
		if !got.CreatedAt.Equal(createdAt) {
			t.Errorf("created_at = %v, want %v", got.CreatedAt, createdAt)
		}
	})

	t.Run("concurrent creates admit exactly one record", func(t *testing.T) {
		repo := newTestRepo(t)

		const writers = 8
		errs := make(chan error, writers)
		var wg sync.WaitGroup
		for i := 0; i < writers; i++ {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				rec := testRecord("code-1", fmt.Sprintf("Writer %d", i), createdAt.Add(time.Duration(i)*time.Millisecond))
				errs <- repo.Create(ctx, rec)
			}()
		}
		wg.Wait()
		close(errs)

		var created, rejected int
		for err := range errs {
			switch {
			case err == nil:
				created++
			case errors.Is(err, registrydomain.ErrDuplicateCode):
				rejected++
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if created != 1 {
			t.Errorf("created = %d, want exactly 1", created)
		}
		if rejected != writers-1 {
			t.Errorf("rejected = %d, want %d", rejected, writers-1)
		}

		all, err := repo.LoadAll(ctx)
		if err != nil {
			t.Fatalf("load all: %v", err)
		}
		if len(all) != 1 {
			t.Errorf("got %d records, want 1", len(all))
		}
	})

	t.Run("upsert replaces existing record", func(t *testing.T) {
		repo := newTestRepo(t)

		if err := repo.Upsert(ctx, testRecord("code-1", "Alice", createdAt)); err != nil {
			t.Fatalf("upsert: %v", err)
		}
		if err := repo.Upsert(ctx, testRecord("code-1", "Bob", createdAt)); err != nil {
			t.Fatalf("second upsert: %v", err)
		}

		got, err := repo.GetByCode(ctx, "code-1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Name != "Bob" {
			t.Errorf("name = %q, want Bob", got.Name)
		}

		all, err := repo.LoadAll(ctx)
		if err != nil {
			t.Fatalf("load all: %v", err)
		}
		if len(all) != 1 {
			t.Errorf("got %d records, one code must map to one record", len(all))
		}
	})

	t.Run("exists by code", func(t *testing.T) {
		repo := newTestRepo(t)

		if err := repo.Upsert(ctx, testRecord("code-1", "Alice", createdAt)); err != nil {
			t.Fatalf("upsert: %v", err)
		}

		exists, err := repo.ExistsByCode(ctx, "code-1")
		if err != nil {
			t.Fatalf("exists: %v", err)
		}
		if !exists {
			t.Error("expected code-1 to exist")
		}

		exists, err = repo.ExistsByCode(ctx, "code-2")
		if err != nil {
			t.Fatalf("exists: %v", err)
		}
		if exists {
			t.Error("code-2 must not exist")
		}
	})

	t.Run("delete by code", func(t *testing.T) {
		repo := newTestRepo(t)

		if err := repo.Upsert(ctx, testRecord("code-1", "Alice", createdAt)); err != nil {
			t.Fatalf("upsert: %v", err)
		}

		removed, err := repo.DeleteByCode(ctx, "code-1")
		if err != nil {
			t.Fatalf("delete: %v", err)
		}
		if !removed {
			t.Error("expected removed = true")
		}

		_, err = repo.GetByCode(ctx, "code-1")
		if !errors.Is(err, registrydomain.ErrRecordNotFound) {
			t.Fatalf("error after delete = %v, want ErrRecordNotFound", err)
		}
	})

	t.Run("delete absent code is a no-op", func(t *testing.T) {
		repo := newTestRepo(t)

		removed, err := repo.DeleteByCode(ctx, "missing")
		if err != nil {
			t.Fatalf("delete: %v", err)
		}
		if removed {
			t.Error("expected removed = false")
		}
	})

	t.Run("load all returns every record", func(t *testing.T) {
		repo := newTestRepo(t)

		codes := []string{"a", "b", "c"}
		for i, code := range codes {
			rec := testRecord(code, "Name "+code, createdAt.Add(time.Duration(i)*time.Minute))
			if err := repo.Upsert(ctx, rec); err != nil {
				t.Fatalf("upsert %s: %v", code, err)
			}
		}

		all, err := repo.LoadAll(ctx)
		if err != nil {
			t.Fatalf("load all: %v", err)
		}
		if len(all) != len(codes) {
			t.Fatalf("got %d records, want %d", len(all), len(codes))
		}
		seen := map[models.Code]bool{}
		for _, rec := range all {
			seen[rec.Code] = true
		}
		for _, code := range codes {
			if !seen[models.Code(code)] {
				t.Errorf("missing code %q", code)
			}
		}
	})

	t.Run("timestamps survive with sub-second precision", func(t *testing.T) {
		repo := newTestRepo(t)

		at := time.Date(2024, time.March, 1, 12, 0, 0, 123456789, time.UTC)
		if err := repo.Upsert(ctx, testRecord("code-1", "Alice", at)); err != nil {
			t.Fatalf("upsert: %v", err)
		}

		got, err := repo.GetByCode(ctx, "code-1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if !got.CreatedAt.Equal(at) {
			t.Errorf("created_at = %v, want %v", got.CreatedAt, at)
		}
	})

	t.Run("corrupt timestamp yields zero instant", func(t *testing.T) {
		repo := newTestRepo(t)

		_, err := repo.db.DB().ExecContext(ctx,
			`INSERT INTO records (code, name, created_at, tz_offset_minutes)
			 VALUES ('code-1', 'Alice', 'not-a-timestamp', 180)`)
		if err != nil {
			t.Fatalf("seed corrupt row: %v", err)
		}

		got, err := repo.GetByCode(ctx, "code-1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if !got.CreatedAt.IsZero() {
			t.Errorf("created_at = %v, want zero", got.CreatedAt)
		}
	})
}
