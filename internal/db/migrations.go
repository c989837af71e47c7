package db

import (
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"
	"time"

	embeddedmigrations "github.com/terraincognita07/habitual/migrations"
	"gorm.io/gorm"
)

// schemaMigration is one applied migration file.
type schemaMigration struct {
	Version   string    `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	AppliedAt time.Time `gorm:"not null;autoCreateTime"`
}

func (schemaMigration) TableName() string {
	return "schema_migrations"
}

type migrationFile struct {
	version    string
	order      int
	name       string
	statements []string
}

func applyEmbeddedMigrations(database *gorm.DB) error {
	return migrate(database, embeddedmigrations.Files)
}

// migrate applies every NNN_name.sql file of source that schema_migrations
// does not list yet, each inside its own transaction.
func migrate(database *gorm.DB, source fs.FS) error {
	if err := database.AutoMigrate(&schemaMigration{}); err != nil {
		return fmt.Errorf("prepare schema_migrations: %w", err)
	}

	files, err := loadMigrationFiles(source)
	if err != nil {
		return err
	}

	var applied []string
	if err := database.Model(&schemaMigration{}).Pluck("version", &applied).Error; err != nil {
		return fmt.Errorf("load applied migrations: %w", err)
	}
	done := make(map[string]bool, len(applied))
	for _, version := range applied {
		done[version] = true
	}

	for _, file := range files {
		if done[file.version] {
			continue
		}
		if err := applyMigrationFile(database, file); err != nil {
			return err
		}
	}
	return nil
}

func loadMigrationFiles(source fs.FS) ([]migrationFile, error) {
	names, err := fs.Glob(source, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	files := make([]migrationFile, 0, len(names))
	byVersion := make(map[string]string, len(names))
	for _, name := range names {
		version, _, found := strings.Cut(name, "_")
		order, convErr := strconv.Atoi(version)
		if !found || convErr != nil {
			return nil, fmt.Errorf("migration %s: name must start with a numeric version and an underscore", name)
		}
		if other, exists := byVersion[version]; exists {
			return nil, fmt.Errorf("migrations %s and %s share version %s", other, name, version)
		}
		byVersion[version] = name

		body, err := fs.ReadFile(source, name)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		statements := splitSQLStatements(string(body))
		if len(statements) == 0 {
			return nil, fmt.Errorf("migration %s has no statements", name)
		}

		files = append(files, migrationFile{
			version:    version,
			order:      order,
			name:       name,
			statements: statements,
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].order < files[j].order
	})
	return files, nil
}

func applyMigrationFile(database *gorm.DB, file migrationFile) error {
	return database.Transaction(func(tx *gorm.DB) error {
		for _, statement := range file.statements {
			if err := tx.Exec(statement).Error; err != nil {
				return fmt.Errorf("migration %s: %w", file.name, err)
			}
		}
		if err := tx.Create(&schemaMigration{Version: file.version, Name: file.name}).Error; err != nil {
			return fmt.Errorf("record migration %s: %w", file.name, err)
		}
		return nil
	})
}

// splitSQLStatements drops "--" comment lines and splits on semicolons.
// Statements must not contain literal semicolons.
func splitSQLStatements(sqlText string) []string {
	var body strings.Builder
	for _, line := range strings.Split(sqlText, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		body.WriteString(line)
		body.WriteByte('\n')
	}

	statements := make([]string, 0)
	for _, part := range strings.Split(body.String(), ";") {
		if statement := strings.TrimSpace(part); statement != "" {
			statements = append(statements, statement)
		}
	}
	return statements
}
