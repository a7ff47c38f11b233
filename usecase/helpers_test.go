package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"sync"
	"testing"

	"speaker/config"
	"speaker/domain"
	"speaker/pkg/log"
	"speaker/pkg/store"
)

func testLogger() *log.Logger {
	return log.NewLoggerWithWriter(io.Discard, slog.LevelError)
}

type testEnv struct {
	config  *config.Config
	store   *store.LocalStore
	tempDir string
	synth   *StubSynthesizer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	c := config.Default()
	c.Storage.Dir = t.TempDir()
	c.Storage.BaseURL = "http://example.com/audio"
	c.Storage.TempDir = t.TempDir()

	s, err := store.NewLocalStore(c.Storage.Dir, c.Storage.BaseURL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return &testEnv{config: c, store: s, tempDir: c.Storage.TempDir, synth: NewStubSynthesizer()}
}

func (e *testEnv) assembler() *AudioAssembler {
	return NewAudioAssembler(testLogger(), e.config, e.synth, e.store)
}

func (e *testEnv) artifact(t *testing.T, key string) string {
	t.Helper()
	b, err := os.ReadFile(e.store.Dir() + "/" + domain.ArtifactName(key))
	if err != nil {
		t.Fatalf("failed to read artifact: %v", err)
	}
	return string(b)
}

func (e *testEnv) tempFiles(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(e.tempDir)
	if err != nil {
		t.Fatalf("failed to list temp dir: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, en := range entries {
		names = append(names, en.Name())
	}
	return names
}

type memTemplateRepo struct {
	mu   sync.Mutex
	tpls map[string]domain.SpeechTemplate
}

func newMemTemplateRepo(tpls ...domain.SpeechTemplate) *memTemplateRepo {
	r := &memTemplateRepo{tpls: make(map[string]domain.SpeechTemplate)}
	for _, t := range tpls {
		r.tpls[t.ID] = t
	}
	return r
}

func (r *memTemplateRepo) GetTemplate(_ context.Context, id string) (domain.SpeechTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tpls[id]
	if !ok {
		return domain.SpeechTemplate{}, fmt.Errorf("%w: %s", domain.ErrTemplateNotFound, id)
	}
	return t, nil
}

func (r *memTemplateRepo) SaveTemplate(_ context.Context, tpl domain.SpeechTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tpls[tpl.ID] = tpl
	return nil
}

func (r *memTemplateRepo) SaveTemplates(ctx context.Context, tpls []domain.SpeechTemplate) error {
	for _, t := range tpls {
		if err := r.SaveTemplate(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

func (r *memTemplateRepo) DeleteTemplate(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tpls, id)
	return nil
}

func (r *memTemplateRepo) ListTemplates(_ context.Context) ([]domain.SpeechTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.SpeechTemplate, 0, len(r.tpls))
	for _, t := range r.tpls {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
