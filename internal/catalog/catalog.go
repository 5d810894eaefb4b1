// Package catalog records bulk-search runs so later stages can resolve the
// newest corpus file for a company without scanning the filesystem.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/uptrace/bun/extra/bundebug"

	"company-research/internal/corpus"
)

// ErrNoRuns means no corpus has been collected for the company yet.
var ErrNoRuns = errors.New("no runs recorded for company")

// Run is one bulk-search run: which company, where the corpus file landed,
// and how many questions it holds.
type Run struct {
	bun.BaseModel `bun:"table:runs,alias:r"`

	ID         string    `bun:"id,pk"`
	Company    string    `bun:"company,notnull"`
	CompanyKey string    `bun:"company_key,notnull"`
	CorpusPath string    `bun:"corpus_path,notnull"`
	Questions  int       `bun:"questions,notnull"`
	CreatedAt  time.Time `bun:"created_at,notnull"`
}

type Catalog struct {
	db *bun.DB
}

// Open creates or opens the catalog database at path.
func Open(path string, debug bool) (*Catalog, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating catalog dir: %w", err)
		}
	}

	sqldb, err := sql.Open(sqliteshim.ShimName, path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	db := bun.NewDB(sqldb, sqlitedialect.New())
	if debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	c := &Catalog{db: db}
	if err := c.init(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

func (c *Catalog) init(ctx context.Context) error {
	_, err := c.db.NewCreateTable().Model((*Run)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return fmt.Errorf("initializing catalog schema: %w", err)
	}
	return nil
}

func (c *Catalog) Close() error {
	return c.db.Close()
}

// Record inserts a run row and returns it.
func (c *Catalog) Record(ctx context.Context, company, corpusPath string, questions int) (*Run, error) {
	run := &Run{
		ID:         uuid.NewString(),
		Company:    company,
		CompanyKey: corpus.NormalizeCompany(company),
		CorpusPath: corpusPath,
		Questions:  questions,
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := c.db.NewInsert().Model(run).Exec(ctx); err != nil {
		return nil, fmt.Errorf("recording run: %w", err)
	}
	return run, nil
}

// Latest returns the newest run for the company's normalized key.
func (c *Catalog) Latest(ctx context.Context, company string) (*Run, error) {
	var run Run
	err := c.db.NewSelect().
		Model(&run).
		Where("company_key = ?", corpus.NormalizeCompany(company)).
		Order("created_at DESC").
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNoRuns, company)
	}
	if err != nil {
		return nil, fmt.Errorf("querying latest run: %w", err)
	}
	return &run, nil
}

// List returns every run for the company, newest first.
func (c *Catalog) List(ctx context.Context, company string) ([]Run, error) {
	var runs []Run
	err := c.db.NewSelect().
		Model(&runs).
		Where("company_key = ?", corpus.NormalizeCompany(company)).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	return runs, nil
}
