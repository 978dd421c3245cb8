package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/starford/zoodesk/internal/catalog"
	"github.com/starford/zoodesk/internal/models"
	"github.com/starford/zoodesk/internal/testutil"
)

type recorder struct {
	mu       sync.Mutex
	listings [][]string
}

func (r *recorder) add(_ models.Category, names []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listings = append(r.listings, names)
}

func (r *recorder) snapshot() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.listings)
}

// eventually polls fn every tick until it returns true or timeout elapses.
func eventually(t *testing.T, timeout, tick time.Duration, fn func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if fn() {
			return
		}
		time.Sleep(tick)
	}
	t.Error(msg)
}

func startWatch(t *testing.T) (string, *recorder) {
	t.Helper()
	root, store := testutil.TestCatalog(t)
	svc := catalog.NewService(store, catalog.Options{
		AnimalsPath:  "animals.txt",
		HabitatsPath: "habitats.txt",
	}, nil, nil)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	t.Cleanup(func() {
		cancel()
		<-done
	})

	rec := &recorder{}
	go func() {
		defer close(done)
		if err := Watch(ctx, svc, store, 20*time.Millisecond, logger, rec.add, models.Animals); err != nil {
			t.Errorf("Watch: %v", err)
		}
	}()

	eventually(t, 2*time.Second, 10*time.Millisecond, func() bool {
		return len(rec.snapshot()) == 1
	}, "initial listing not reported")
	return root, rec
}

func TestWatch_InitialListing(t *testing.T) {
	_, rec := startWatch(t)
	got := rec.snapshot()[0]
	if !slices.Equal(got, []string{"lion", "tiger", "bear"}) {
		t.Errorf("initial listing = %v", got)
	}
}

func TestWatch_ReportsContentChange(t *testing.T) {
	root, rec := startWatch(t)

	updated := testutil.Animals + "\nDetails on zebras\n"
	if err := os.WriteFile(filepath.Join(root, "animals.txt"), []byte(updated), 0o644); err != nil {
		t.Fatal(err)
	}

	eventually(t, 5*time.Second, 20*time.Millisecond, func() bool {
		l := rec.snapshot()
		return len(l) >= 2 && slices.Contains(l[len(l)-1], "zebra")
	}, "changed listing not reported")
}

func TestWatch_IgnoresUnchangedContent(t *testing.T) {
	root, rec := startWatch(t)

	// Rewriting identical bytes fires fsnotify but leaves the checksum alone.
	if err := os.WriteFile(filepath.Join(root, "animals.txt"), []byte(testutil.Animals), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(300 * time.Millisecond)
	if n := len(rec.snapshot()); n != 1 {
		t.Errorf("listings = %d, want 1", n)
	}
}

func TestWatch_RemovedFileReportsEmpty(t *testing.T) {
	root, rec := startWatch(t)

	if err := os.Remove(filepath.Join(root, "animals.txt")); err != nil {
		t.Fatal(err)
	}

	eventually(t, 5*time.Second, 20*time.Millisecond, func() bool {
		l := rec.snapshot()
		return len(l) >= 2 && len(l[len(l)-1]) == 0
	}, "removal not reported as empty listing")
}

func TestWatch_UnrelatedFileIgnored(t *testing.T) {
	root, rec := startWatch(t)
	testutil.WriteFile(t, root, "notes.txt", "Details on nothing\n")
	time.Sleep(300 * time.Millisecond)
	if n := len(rec.snapshot()); n != 1 {
		t.Errorf("listings = %d, want 1", n)
	}
}
