// Package wire provides dependency injection for the quitcard application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"sync"

	"github.com/example/quitcard/internal/adapters/sqlite"
	"github.com/example/quitcard/internal/app"
	"github.com/example/quitcard/internal/db"
	"github.com/example/quitcard/internal/ports/primary"
)

var (
	stampService    primary.StampService
	settingsService primary.SettingsService
	todoService     primary.TodoService
	reasonService   primary.ReasonService
	once            sync.Once
)

// StampService returns the singleton StampService instance.
func StampService() primary.StampService {
	once.Do(initServices)
	return stampService
}

// SettingsService returns the singleton SettingsService instance.
func SettingsService() primary.SettingsService {
	once.Do(initServices)
	return settingsService
}

// TodoService returns the singleton TodoService instance.
func TodoService() primary.TodoService {
	once.Do(initServices)
	return todoService
}

// ReasonService returns the singleton ReasonService instance.
func ReasonService() primary.ReasonService {
	once.Do(initServices)
	return reasonService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	stampRepo := sqlite.NewStampRepository(database)
	settingsRepo := sqlite.NewSettingsRepository(database)
	todoRepo := sqlite.NewTodoRepository(database)
	reasonRepo := sqlite.NewReasonRepository(database)

	stampService = app.NewStampService(stampRepo, settingsRepo)
	settingsService = app.NewSettingsService(settingsRepo)
	todoService = app.NewTodoService(todoRepo)
	reasonService = app.NewReasonService(reasonRepo)
}
