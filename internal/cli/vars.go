package cli

import (
	"github.com/AbinashGupta/task-manager/internal/core"
	"github.com/AbinashGupta/task-manager/internal/observability"
	"github.com/AbinashGupta/task-manager/pkg/models"
)

// Service instances, set during app initialization in app.go.
var (
	BasePath string
	Config   *models.Config

	Service core.TaskService

	EventLog    observability.EventLog
	AlertEngine observability.AlertEngine
	Notifier    observability.Notifier
)
