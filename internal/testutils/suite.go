package testutils

import (
	"context"
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	"eperson-backend/internal/config"
	"eperson-backend/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ------------------------------
// Shared, process-wide resources
// ------------------------------
var (
	sharedOnce     sync.Once
	sharedInitErr  error
	sharedPool     *dockertest.Pool
	sharedResource *dockertest.Resource
	sharedDB       *gorm.DB
	sharedConfig   *config.Config
)

// ------------------------------
// Base suite types
// ------------------------------
type BaseTestSuite struct {
	suite.Suite
	DB       *gorm.DB
	Config   *config.Config
	Driver   string
	pool     *dockertest.Pool
	resource *dockertest.Resource
}

// ------------------------------
// Public helpers
// ------------------------------

// SetupTestSuite initializes (once) the shared Postgres container and returns a per-suite wrapper.
// Call this in your tests before using the DB.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	sharedOnce.Do(func() { sharedInitErr = initSharedPGContainer() })
	if sharedInitErr != nil {
		t.Fatalf("failed to initialize shared test container: %v", sharedInitErr)
	}
	return &BaseTestSuite{
		DB:       sharedDB,
		Config:   sharedConfig,
		Driver:   database.DriverPostgres,
		pool:     sharedPool,
		resource: sharedResource,
	}
}

// SetupSQLiteTestSuite opens a private in-memory sqlite database with the full schema and
// metadata registry. It needs no Docker and is closed when the test ends.
func SetupSQLiteTestSuite(t *testing.T) *BaseTestSuite {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Initialize(dsn, &database.Options{Driver: database.DriverSQLite})
	if err != nil {
		t.Fatalf("failed to initialize sqlite test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return &BaseTestSuite{
		DB:     db,
		Driver: database.DriverSQLite,
		Config: &config.Config{
			DatabaseDriver:    database.DriverSQLite,
			DatabaseURL:       dsn,
			LogLevel:          "debug",
			Environment:       "test",
			GroupSearchFields: []string{"dc.title"},
		},
	}
}

// CleanupSharedContainer closes the shared database and purges its container. TestMain calls it
// once every suite in the package has run.
func CleanupSharedContainer() {
	if sharedDB != nil {
		if sqlDB, err := sharedDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		sharedDB = nil
	}
	if sharedPool == nil || sharedResource == nil {
		return
	}
	name := sharedResource.Container.Name
	if err := sharedPool.Purge(sharedResource); err != nil {
		log.Printf("WARN: could not purge container %s: %v", name, err)
	} else {
		log.Printf("Purged container %s", name)
	}
	sharedPool, sharedResource = nil, nil
}

// ------------------------------
// Suite lifecycle hooks
// ------------------------------

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite is per *suite* (not process). We only clean DB here;
// Docker container persists across suites for speed.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// testTables are emptied between tests, children first. The metadata registry is kept.
var testTables = []string{
	"group2group_cache",
	"group2group",
	"group_epersons",
	"metadata_values",
	"groups",
	"epersons",
}

// CleanTestDB empties the data tables if they exist. Safe even if schema changes.
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	m := s.DB.Migrator()
	if s.Driver == database.DriverSQLite {
		for _, t := range testTables {
			if m.HasTable(t) {
				s.DB.Exec(`DELETE FROM "` + t + `"`)
			}
		}
		return
	}
	s.DB.Exec(`SET session_replication_role = replica;`)
	for _, t := range testTables {
		if m.HasTable(t) {
			s.DB.Exec(`TRUNCATE TABLE "` + t + `" RESTART IDENTITY CASCADE;`)
		}
	}
	s.DB.Exec(`SET session_replication_role = DEFAULT;`)
}

// ------------------------------
// Shared Postgres container init
// ------------------------------

const (
	pgUser     = "eperson"
	pgPassword = "eperson"
	pgDatabase = "eperson_test"
)

func initSharedPGContainer() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute
	sharedPool = pool

	resource, err := startPostgres(pool)
	if err != nil {
		return err
	}
	sharedResource = resource

	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase)

	// the server accepts TCP before it accepts logins, so wait on a real connection
	if err := pool.Retry(func() error { return pingPostgres(dsn) }); err != nil {
		return fmt.Errorf("postgres never became ready: %w", err)
	}

	db, err := database.Initialize(dsn, nil)
	if err != nil {
		return fmt.Errorf("could not initialize test database: %w", err)
	}
	sharedDB = db
	sharedConfig = &config.Config{
		DatabaseDriver:    database.DriverPostgres,
		DatabaseURL:       dsn,
		Port:              "8080",
		LogLevel:          "debug",
		Environment:       "test",
		GroupSearchFields: []string{"dc.title"},
	}

	log.Printf("Shared Postgres ready at %s", resource.Container.Name)
	return nil
}

func startPostgres(pool *dockertest.Pool) (*dockertest.Resource, error) {
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, fmt.Errorf("could not start postgres: %w", err)
	}
	// a crashed test run must not leave the container behind
	if err := resource.Expire(600); err != nil {
		log.Printf("WARN: could not set container expiry: %v", err)
	}
	return resource, nil
}

func pingPostgres(dsn string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)
	return conn.Ping(ctx)
}
