package v1

import (
	"github.com/bloggerdesk/backend/internal/config"
)

type URIID struct {
	ID uint `uri:"id" binding:"required"` // ID of the resource
}

// appConfig is the application configuration the handlers work with.
// It is set once by Configure before the routes are registered.
var appConfig *config.Config

// Configure hands the loaded configuration to the handlers.
func Configure(cfg *config.Config) {
	appConfig = cfg
}

// dateLayout is the wire format for order posting dates. The value a
// client sends is the value it gets back, see formatDate and parseDate.
const dateLayout = "02.01.2006"
