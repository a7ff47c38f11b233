package repo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"speaker/config"
	"speaker/domain"
	"speaker/pkg/log"
	"speaker/pkg/store"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockRepo(t *testing.T) (*TemplateRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{Conn: db, SkipInitializeWithVersion: true}), &gorm.Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l := log.NewLoggerWithWriter(io.Discard, slog.LevelError)
	return NewTemplateRepo(l, config.Default(), &store.MySQL{DB: gdb}), mock
}

var templateColumns = []string{"id", "name", "elements", "default", "created_at", "updated_at"}

func TestGetTemplateNotFound(t *testing.T) {
	t.Parallel()

	r, mock := newMockRepo(t)
	mock.ExpectQuery("SELECT \\* FROM `speech_templates` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows(templateColumns))

	_, err := r.GetTemplate(context.Background(), "news")
	if !errors.Is(err, domain.ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetTemplate(t *testing.T) {
	t.Parallel()

	r, mock := newMockRepo(t)
	now := time.Now()
	mock.ExpectQuery("SELECT \\* FROM `speech_templates` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows(templateColumns).
			AddRow("news", "News", `[{"type":"pause","time":300,"strength":"weak"}]`, `["post"]`, now, now))

	tpl, err := r.GetTemplate(context.Background(), "news")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tpl.ID != "news" || tpl.Name != "News" {
		t.Errorf("unexpected template %+v", tpl)
	}
	if len(tpl.Elements) != 1 {
		t.Fatalf("expected 1 directive, got %d", len(tpl.Elements))
	}
	if p, ok := tpl.Elements[0].(domain.PauseDirective); !ok || p.TimeMs != 300 || p.Strength != "weak" {
		t.Errorf("unexpected directive %#v", tpl.Elements[0])
	}
	if len(tpl.Default) != 1 || tpl.Default[0] != "post" {
		t.Errorf("unexpected defaults %v", tpl.Default)
	}
}

func TestTemplateRepoErrors(t *testing.T) {
	t.Parallel()

	r, mock := newMockRepo(t)
	mock.ExpectQuery("SELECT \\* FROM `speech_templates` WHERE id = \\?").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectQuery("SELECT \\* FROM `speech_templates` ORDER BY id ASC").
		WillReturnError(errors.New("connection reset"))

	_, err := r.GetTemplate(context.Background(), "news")
	if err == nil || errors.Is(err, domain.ErrTemplateNotFound) {
		t.Errorf("expected a plain database error, got %v", err)
	}
	_, err = r.ListTemplates(context.Background())
	if err == nil || !strings.Contains(err.Error(), "failed to list templates") {
		t.Errorf("expected a wrapped list error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteTemplate(t *testing.T) {
	t.Parallel()

	r, mock := newMockRepo(t)
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `speech_templates` WHERE id = \\?").
		WithArgs("news").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := r.DeleteTemplate(context.Background(), "news"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
