package postgres

import (
	"context"
	"io/fs"
	"testing"
	"testing/fstest"

	"emotion-assistant/migrations"
)

func TestMigrationsEmbedded(t *testing.T) {
	files, err := fs.Glob(migrations.FS, "*.sql")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("expected embedded migrations")
	}
}

func TestMigrate_ReadError(t *testing.T) {
	// A directory named like a migration cannot be read as a file.
	fsys := fstest.MapFS{"0001_dir.sql/x": &fstest.MapFile{Data: []byte("")}}
	if err := Migrate(context.Background(), nil, fsys); err == nil {
		t.Fatal("expected read error")
	}
}
