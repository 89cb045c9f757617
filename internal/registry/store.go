package registry

import (
	"database/sql"
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"github.com/abhyagra/slbc/internal/slbcerr"
)

// StandardIDMax is the highest entity ID reserved for the builtin
// standard registry (spec.md §4.8, dhātu IDs 1-1999; this
// implementation applies the same boundary uniformly across all three
// registry kinds — §9.4 of the source pre-allocates gaṇa ranges within
// it for dhātu specifically, but draws no equivalent boundary for the
// other two kinds, so this package extends the same convention to keep
// one collision rule instead of three).
const StandardIDMax = 1999

// row is the table schema shared by all three registry kinds. A single
// table keyed on (kind, id) is enough: the merged registry is a flat,
// read-only-after-construction lookup, not a relational model, so one
// row shape serves dhātu/prātipadika/sandhi-rule alike.
type row struct {
	Kind       string `gorm:"primaryKey"`
	ID         uint32 `gorm:"primaryKey"`
	IAST       string `gorm:"index"`
	Source     string // "builtin" or "extension"
	PackedMeta []byte
}

func (row) TableName() string { return "registry_entries" }

// Store is the merged registry table: builtin entries plus whatever
// extension registries were loaded before the session sealed it.
// Read-only after Seal, per spec.md §5's "shared resources: the merged
// registry table, read-only after construction."
type Store struct {
	db     *gorm.DB
	sealed bool
}

// Config configures the backing SQLite database. Path == ":memory:"
// builds a private in-process table, matching spec.md §5's "immutable
// merged table" model; a file path persists a compiled merge for reuse
// across sessions.
type Config struct {
	Path string
}

// NewStore opens the backing database and migrates the schema, the
// same shape as the teacher's database.NewDB: a pure-Go SQLite driver,
// WAL journaling, and an optional logger.
func NewStore(config Config, logw *log.Logger) (*Store, error) {
	var gormLog logger.Interface
	if logw != nil {
		gormLog = logger.New(logw, logger.Config{
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		})
	} else {
		gormLog = logger.Default.LogMode(logger.Silent)
	}

	dialector := sqlite.Dialector{DriverName: "sqlite", DSN: config.Path}
	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, slbcerr.RegistryNoID("opening registry store", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, slbcerr.RegistryNoID("acquiring registry store handle", err)
	}
	if err := configureSQLite(sqlDB); err != nil {
		return nil, slbcerr.RegistryNoID("configuring registry store", err)
	}
	if err := db.AutoMigrate(&row{}); err != nil {
		return nil, slbcerr.RegistryNoID("migrating registry schema", err)
	}

	return &Store{db: db}, nil
}

func configureSQLite(sqlDB *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	}
	for _, p := range pragmas {
		if _, err := sqlDB.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

// LoadBuiltin inserts the bootstrap standard-registry rows. It must run
// before any LoadExtension call and before Seal.
func (s *Store) LoadBuiltin(kind Kind, iastByID map[uint32]string) error {
	if s.sealed {
		return slbcerr.RegistryNoID("cannot load builtin rows into a sealed store", nil)
	}
	for id, iast := range iastByID {
		r := row{Kind: kind.String(), ID: id, IAST: iast, Source: "builtin"}
		if err := s.db.Create(&r).Error; err != nil {
			return slbcerr.Registry(uint64(id), fmt.Sprintf("loading builtin %s entry", kind), err)
		}
	}
	return nil
}

// LoadExtension merges an extension registry's entries into the table.
// An ID already present in the merged table — builtin or a prior
// extension — is a fatal RegistryError (spec.md §4.8: "loading an
// extension whose ID already exists in the active merged table is a
// fatal error"), and an extension ID at or below StandardIDMax is
// rejected the same way.
func (s *Store) LoadExtension(kind Kind, iastByID map[uint32]string) error {
	if s.sealed {
		return slbcerr.RegistryNoID("cannot load an extension into a sealed store", nil)
	}
	for id, iast := range iastByID {
		if id <= StandardIDMax {
			return slbcerr.Registry(uint64(id), fmt.Sprintf("extension %s ID must be > %d", kind, StandardIDMax), nil)
		}
		var existing row
		err := s.db.Where("kind = ? AND id = ?", kind.String(), id).First(&existing).Error
		if err == nil {
			return slbcerr.Registry(uint64(id), fmt.Sprintf("extension %s ID collides with an existing entry", kind), nil)
		}
		if err != gorm.ErrRecordNotFound {
			return slbcerr.Registry(uint64(id), "checking for extension ID collision", err)
		}
		r := row{Kind: kind.String(), ID: id, IAST: iast, Source: "extension"}
		if err := s.db.Create(&r).Error; err != nil {
			return slbcerr.Registry(uint64(id), fmt.Sprintf("loading extension %s entry", kind), err)
		}
	}
	return nil
}

// Seal marks the store read-only: no further LoadBuiltin/LoadExtension
// calls are permitted, matching the "merged table read-only after
// construction" invariant.
func (s *Store) Seal() { s.sealed = true }

// Lookup resolves an entity ID's IAST token within a kind. Used by
// extract.ResolveAnnotations to resolve ANVY registry references.
func (s *Store) Lookup(kind Kind, id uint32) (string, error) {
	var r row
	err := s.db.Where("kind = ? AND id = ?", kind.String(), id).First(&r).Error
	if err == gorm.ErrRecordNotFound {
		return "", slbcerr.Registry(uint64(id), fmt.Sprintf("%s ID not found in merged registry", kind), nil)
	}
	if err != nil {
		return "", slbcerr.Registry(uint64(id), "looking up registry entry", err)
	}
	return r.IAST, nil
}

// Stats reports entry counts per kind, for `registry stats`.
func (s *Store) Stats() (map[string]int64, error) {
	stats := make(map[string]int64)
	for _, kind := range []Kind{KindDhatu, KindPratipadika, KindSandhiRule} {
		var count int64
		if err := s.db.Model(&row{}).Where("kind = ?", kind.String()).Count(&count).Error; err != nil {
			return nil, slbcerr.RegistryNoID(fmt.Sprintf("counting %s entries", kind), err)
		}
		stats[kind.String()] = count
	}
	return stats, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
