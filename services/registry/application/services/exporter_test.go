package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	registrydomain "github.com/ghuser/scanregistry/services/registry/domain"
	"github.com/ghuser/scanregistry/services/registry/domain/models"
)

func TestBuildCSV(t *testing.T) {
	createdAt := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC) // 15:00 EAT

	t.Run("plain records", func(t *testing.T) {
		recs := []*models.Record{
			{Code: "code-1", Name: "Alice", CreatedAt: createdAt},
			{Code: "code-2", Name: "Bob", CreatedAt: createdAt.Add(time.Minute)},
		}
		got := BuildCSV(recs)
		want := strings.Join([]string{
			"Name,QR Code,Registration Date (EAT)",
			`"Alice","code-1","03/01/2024 15:00:00 EAT"`,
			`"Bob","code-2","03/01/2024 15:01:00 EAT"`,
		}, "\n")
		if got != want {
			t.Errorf("csv mismatch:\ngot:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("commas and quotes escaped", func(t *testing.T) {
		recs := []*models.Record{
			{Code: `A"B`, Name: "Jo,e", CreatedAt: createdAt},
		}
		got := BuildCSV(recs)
		wantRow := `"Jo,e","A""B","03/01/2024 15:00:00 EAT"`
		lines := strings.Split(got, "\n")
		if len(lines) != 2 {
			t.Fatalf("got %d lines, want 2", len(lines))
		}
		if lines[1] != wantRow {
			t.Errorf("row = %s, want %s", lines[1], wantRow)
		}
	})

	t.Run("no trailing newline", func(t *testing.T) {
		recs := []*models.Record{
			{Code: "code-1", Name: "Alice", CreatedAt: createdAt},
		}
		if got := BuildCSV(recs); strings.HasSuffix(got, "\n") {
			t.Error("csv must not end with a newline")
		}
	})

	t.Run("header only for empty input", func(t *testing.T) {
		if got := BuildCSV(nil); got != csvHeader {
			t.Errorf("got %q, want bare header", got)
		}
	})

	t.Run("missing timestamp renders N/A", func(t *testing.T) {
		recs := []*models.Record{
			{Code: "code-1", Name: "Alice"},
		}
		got := BuildCSV(recs)
		if !strings.Contains(got, `"N/A"`) {
			t.Errorf("missing N/A placeholder in %q", got)
		}
	})
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2024, time.March, 1, 12, 30, 45, 0, time.UTC)
	got := exportFilename(now)
	want := "qr-registration-2024-03-01T12-30-45Z.csv"
	if got != want {
		t.Errorf("filename = %q, want %q", got, want)
	}
	if strings.ContainsRune(got, ':') {
		t.Error("filename must not contain colons")
	}
}

func TestExport(t *testing.T) {
	ctx := context.Background()

	t.Run("builds document", func(t *testing.T) {
		repo := newFakeRepo()
		seedRecord(repo, "code-1", "Alice", time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC))
		e := NewExporter(NewRecordsQuery(repo, nil, testLogger()), testLogger())

		doc, err := e.Export(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.MIME != CSVMIMEType {
			t.Errorf("mime = %q", doc.MIME)
		}
		if !strings.HasPrefix(doc.Filename, "qr-registration-") || !strings.HasSuffix(doc.Filename, ".csv") {
			t.Errorf("filename = %q", doc.Filename)
		}
		if !bytes.HasPrefix(doc.Content, []byte(csvHeader)) {
			t.Errorf("content must start with the header, got %q", doc.Content)
		}
	})

	t.Run("empty record set", func(t *testing.T) {
		e := NewExporter(NewRecordsQuery(newFakeRepo(), nil, testLogger()), testLogger())
		_, err := e.Export(ctx)
		if !errors.Is(err, registrydomain.ErrNothingToExport) {
			t.Fatalf("error = %v, want ErrNothingToExport", err)
		}
	})
}

// stubStrategy is a scripted DeliveryStrategy for chain tests.
type stubStrategy struct {
	name  string
	dest  string
	err   error
	calls int
}

func (s *stubStrategy) Name() string { return s.name }

func (s *stubStrategy) Deliver(_ context.Context, _ *ExportDocument) (string, error) {
	s.calls++
	return s.dest, s.err
}

func TestDeliver(t *testing.T) {
	ctx := context.Background()
	doc := &ExportDocument{Filename: "x.csv", MIME: CSVMIMEType, Content: []byte(csvHeader)}

	t.Run("first success wins", func(t *testing.T) {
		first := &stubStrategy{name: "first", dest: "/tmp/x.csv"}
		second := &stubStrategy{name: "second", dest: "unused"}
		e := NewExporter(nil, testLogger(), first, second)

		dest, err := e.Deliver(ctx, doc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dest != "/tmp/x.csv" {
			t.Errorf("dest = %q", dest)
		}
		if second.calls != 0 {
			t.Error("later strategies must not run after a success")
		}
	})

	t.Run("falls through on failure", func(t *testing.T) {
		first := &stubStrategy{name: "first", err: errors.New("read-only fs")}
		second := &stubStrategy{name: "second", dest: "stdout"}
		e := NewExporter(nil, testLogger(), first, second)

		dest, err := e.Deliver(ctx, doc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dest != "stdout" {
			t.Errorf("dest = %q, want stdout", dest)
		}
		if first.calls != 1 || second.calls != 1 {
			t.Errorf("calls = %d/%d, want 1/1", first.calls, second.calls)
		}
	})

	t.Run("exhausted chain fails", func(t *testing.T) {
		first := &stubStrategy{name: "first", err: errors.New("boom")}
		second := &stubStrategy{name: "second", err: errors.New("also boom")}
		e := NewExporter(nil, testLogger(), first, second)

		_, err := e.Deliver(ctx, doc)
		if !errors.Is(err, registrydomain.ErrExportFailed) {
			t.Fatalf("error = %v, want ErrExportFailed", err)
		}
	})

	t.Run("no strategies fails", func(t *testing.T) {
		e := NewExporter(nil, testLogger())
		_, err := e.Deliver(ctx, doc)
		if !errors.Is(err, registrydomain.ErrExportFailed) {
			t.Fatalf("error = %v, want ErrExportFailed", err)
		}
	})
}

func TestDeliveryStrategies(t *testing.T) {
	ctx := context.Background()
	doc := &ExportDocument{
		Filename: "qr-registration-test.csv",
		MIME:     CSVMIMEType,
		Content:  []byte(csvHeader),
	}

	t.Run("dir strategy writes file", func(t *testing.T) {
		dir := t.TempDir()
		dest, err := DirStrategy{Dir: dir}.Deliver(ctx, doc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(dest, dir) {
			t.Errorf("dest = %q not under %q", dest, dir)
		}
	})

	t.Run("stdout strategy streams content", func(t *testing.T) {
		var buf bytes.Buffer
		dest, err := StdoutStrategy{Out: &buf}.Deliver(ctx, doc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dest != "stdout" {
			t.Errorf("dest = %q", dest)
		}
		if got := buf.String(); got != csvHeader+"\n" {
			t.Errorf("streamed %q", got)
		}
	})

	t.Run("default chain order", func(t *testing.T) {
		chain := DefaultStrategies("/var/exports")
		if len(chain) != 4 {
			t.Fatalf("got %d strategies, want 4", len(chain))
		}
		if chain[0].Name() != "dir:/var/exports" {
			t.Errorf("first = %q", chain[0].Name())
		}
		if chain[len(chain)-1].Name() != "stdout" {
			t.Errorf("last = %q", chain[len(chain)-1].Name())
		}
	})

	t.Run("empty export dir skipped", func(t *testing.T) {
		chain := DefaultStrategies("")
		if len(chain) != 3 {
			t.Fatalf("got %d strategies, want 3", len(chain))
		}
		if chain[0].Name() != "home" {
			t.Errorf("first = %q", chain[0].Name())
		}
	})
}
