package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/revmark/revmark/internal"
)

var log = internal.GetLogger()

type ReviewSchema struct {
	bun.BaseModel `bun:"table:review,alias:r" yaml:"-"`

	UUID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()" yaml:"uuid,omitempty"`
	// ID is used as a cursor for pagination
	ID        int64                  `bun:",autoincrement"                                              yaml:"id,omitempty"`
	CreatedAt time.Time              `bun:"type:timestamptz,nullzero,notnull,default:current_timestamp" yaml:"created_at,omitempty"`
	UpdatedAt time.Time              `bun:"type:timestamptz,nullzero,notnull,default:current_timestamp" yaml:"updated_at,omitempty"`
	DeletedAt time.Time              `bun:"type:timestamptz,soft_delete,nullzero"                       yaml:"deleted_at,omitempty"`
	ProductID string                 `bun:",notnull"                                                    yaml:"product_id,omitempty"`
	Author    string                 `bun:","                                                           yaml:"author,omitempty"`
	Rating    int                    `bun:",notnull,default:0"                                          yaml:"rating,omitempty"`
	Text      string                 `bun:"type:text,notnull"                                           yaml:"text,omitempty"`
	Metadata  map[string]interface{} `bun:"type:jsonb,nullzero,json_use_number"                         yaml:"metadata,omitempty"`
}

var _ bun.BeforeAppendModelHook = (*ReviewSchema)(nil)

func (s *ReviewSchema) BeforeAppendModel(_ context.Context, query bun.Query) error {
	if _, ok := query.(*bun.UpdateQuery); ok {
		s.UpdatedAt = time.Now()
	}
	return nil
}

type PatternSetSchema struct {
	bun.BaseModel `bun:"table:pattern_set,alias:ps" yaml:"-"`

	UUID          uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"                     yaml:"uuid,omitempty"`
	ID            int64     `bun:",autoincrement"                                              yaml:"id,omitempty"`
	CreatedAt     time.Time `bun:"type:timestamptz,nullzero,notnull,default:current_timestamp" yaml:"created_at,omitempty"`
	UpdatedAt     time.Time `bun:"type:timestamptz,nullzero,notnull,default:current_timestamp" yaml:"updated_at,omitempty"`
	DeletedAt     time.Time `bun:"type:timestamptz,soft_delete,nullzero"                       yaml:"deleted_at,omitempty"`
	Name          string    `bun:",unique,notnull"                                             yaml:"name,omitempty"`
	Phrases       []string  `bun:",array"                                                      yaml:"phrases,omitempty"`
	Style         string    `bun:",notnull"                                                    yaml:"style,omitempty"`
	CaseSensitive bool      `bun:",notnull,default:false"                                      yaml:"case_sensitive,omitempty"`
	Enabled       bool      `bun:",notnull,default:true"                                       yaml:"enabled,omitempty"`
}

var _ bun.BeforeAppendModelHook = (*PatternSetSchema)(nil)

func (s *PatternSetSchema) BeforeAppendModel(_ context.Context, query bun.Query) error {
	if _, ok := query.(*bun.UpdateQuery); ok {
		s.UpdatedAt = time.Now()
	}
	return nil
}

// tableList is ordered with dependent tables first; iterate in reverse to
// create referenced tables before their dependents.
var tableList = []bun.BeforeAppendModelHook{
	&PatternSetSchema{},
	&ReviewSchema{},
}

// CreateSchema creates the db schema if it does not exist.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	for i := len(tableList) - 1; i >= 0; i-- {
		schema := tableList[i]
		_, err := db.NewCreateTable().
			Model(schema).
			IfNotExists().
			WithForeignKeys().
			Exec(ctx)
		if err != nil {
			// bun still trying to create indexes despite IfNotExists flag
			if strings.Contains(err.Error(), "already exists") {
				continue
			}
			return fmt.Errorf("error creating table for schema %T: %w", schema, err)
		}
	}

	return nil
}

// minServerVersion is the oldest Postgres release revmark is tested against.
const minServerVersion = "14.0"

// NewPostgresConn creates a new bun.DB connection to the configured Postgres
// database and verifies the server version.
func NewPostgresConn(dsn string) (*bun.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if dsn == "" {
		return nil, fmt.Errorf("dsn may not be empty")
	}

	maxOpenConns := 4 * runtime.GOMAXPROCS(0)

	sqldb := sql.OpenDB(
		pgdriver.NewConnector(
			pgdriver.WithDSN(dsn),
		),
	)
	sqldb.SetMaxOpenConns(maxOpenConns)
	sqldb.SetMaxIdleConns(maxOpenConns)

	db := bun.NewDB(sqldb, pgdialect.New())

	if err := checkServerVersion(ctx, db); err != nil {
		return nil, err
	}

	return db, nil
}

// checkServerVersion warns when the Postgres server is older than the
// minimum supported release.
func checkServerVersion(ctx context.Context, db *bun.DB) error {
	requiredVersion, err := semver.NewVersion(minServerVersion)
	if err != nil {
		return fmt.Errorf("error parsing required server version: %w", err)
	}

	var version string
	err = db.NewSelect().
		ColumnExpr("current_setting('server_version')").
		Scan(ctx, &version)
	if err != nil {
		return fmt.Errorf("error querying server version: %w", err)
	}

	// server_version may carry a distribution suffix, e.g. "15.4 (Debian ...)"
	thisVersion, err := semver.NewVersion(strings.Fields(version)[0])
	if err != nil {
		log.Warnf("unable to parse server version %q: %v", version, err)
		return nil
	}

	if requiredVersion.GreaterThan(thisVersion) {
		log.Warnf(
			"Postgres server version %s is older than the minimum supported version %s",
			thisVersion, minServerVersion,
		)
	}

	return nil
}
