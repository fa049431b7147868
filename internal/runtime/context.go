// Package runtime provides the application runtime context for Taskline.
package runtime

import (
	"os"

	"taskline/internal/collection"
	"taskline/internal/logging"
	"taskline/internal/model"
	"taskline/internal/output"
	"taskline/internal/storage"
)

// Context holds the application runtime context: the open database, the
// loaded task collection, settings and output formatting.
type Context struct {
	DB        *storage.DB
	Formatter *output.Formatter

	TaskRepo     *storage.TaskRepo
	SettingsRepo *storage.SettingsRepo

	Collection *collection.Collection
	Settings   *model.Settings
}

// Options configures the runtime context.
type Options struct {
	DBPath    string
	InMemory  bool
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		DBPath:    storage.DefaultPath(),
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
	}
}

// New creates a new runtime context and loads the task collection.
func New(opts Options) (*Context, error) {
	if opts.Debug {
		logging.InitDebug()
	}

	// Environment variable override for the database location
	if envPath := os.Getenv("TASKLINE_DATABASE"); envPath != "" {
		if envPath == ":memory:" {
			opts.InMemory = true
		} else {
			opts.DBPath = envPath
		}
	}

	db, err := storage.Open(storage.Options{
		Path:     opts.DBPath,
		InMemory: opts.InMemory,
	})
	if err != nil {
		return nil, err
	}

	taskRepo := storage.NewTaskRepo(db)
	settingsRepo := storage.NewSettingsRepo(db)

	tasks, err := collection.New(taskRepo)
	if err != nil {
		db.Close()
		return nil, err
	}
	logging.Debug("loaded tasks", logging.KeyCount, tasks.Len())

	settings, err := settingsRepo.Get()
	if err != nil {
		db.Close()
		return nil, err
	}

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	return &Context{
		DB:           db,
		Formatter:    formatter,
		TaskRepo:     taskRepo,
		SettingsRepo: settingsRepo,
		Collection:   tasks,
		Settings:     settings,
	}, nil
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}
