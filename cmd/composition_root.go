package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	httpin "bloqnet/internal/adapters/in/http"
	"bloqnet/internal/adapters/out/gormstore"
	"bloqnet/internal/adapters/out/memstore"
	"bloqnet/internal/core/application/managers"
	"bloqnet/internal/core/domain/model/bloq"
	"bloqnet/internal/core/domain/model/locker"
	"bloqnet/internal/core/domain/model/rent"
	"bloqnet/internal/core/ports"
	"bloqnet/internal/jobs"
)

// CompositionRoot wires the record tables, managers, HTTP server and jobs.
type CompositionRoot struct {
	bloqs   ports.RecordTable[bloq.Bloq]
	lockers ports.RecordTable[locker.Locker]
	rents   ports.RecordTable[rent.Rent]
	logger  *slog.Logger
}

// NewCompositionRoot builds the object graph for the configured storage
// driver. "memory" keeps all records in process; "postgres" stores each
// table as JSONB documents through gorm.
func NewCompositionRoot(config Config) (CompositionRoot, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	switch config.StorageDriver {
	case "", "memory":
		return CompositionRoot{
			bloqs:   memstore.NewTable[bloq.Bloq](ports.TableBloqs),
			lockers: memstore.NewTable[locker.Locker](ports.TableLockers),
			rents:   memstore.NewTable[rent.Rent](ports.TableRents),
			logger:  logger,
		}, nil

	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			config.DBHost, config.DBPort, config.DBUser,
			config.DBPassword, config.DBName, config.DBSslMode)
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return CompositionRoot{}, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		if err := gormstore.Migrate(db, ports.TableBloqs, ports.TableLockers, ports.TableRents); err != nil {
			return CompositionRoot{}, fmt.Errorf("failed to migrate record tables: %w", err)
		}
		return CompositionRoot{
			bloqs:   gormstore.NewTable[bloq.Bloq](db, ports.TableBloqs),
			lockers: gormstore.NewTable[locker.Locker](db, ports.TableLockers),
			rents:   gormstore.NewTable[rent.Rent](db, ports.TableRents),
			logger:  logger,
		}, nil
	}

	return CompositionRoot{}, fmt.Errorf("unknown storage driver %q", config.StorageDriver)
}

func (c *CompositionRoot) CreateBloqManager() *managers.BloqManager {
	return managers.NewBloqManager(c.bloqs, c.lockers, c.rents)
}

func (c *CompositionRoot) CreateLockerManager() *managers.LockerManager {
	return managers.NewLockerManager(c.lockers, c.bloqs, c.rents)
}

func (c *CompositionRoot) CreateRentManager() *managers.RentManager {
	return managers.NewRentManager(c.rents, c.lockers, c.logger)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(c.CreateBloqManager(), c.CreateLockerManager(), c.CreateRentManager())
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.lockers, c.rents, c.logger)
}
