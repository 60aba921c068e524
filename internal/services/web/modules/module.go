// Package modules defines web module registry helpers.
package modules

import (
	"log"
	"time"

	"github.com/inflowhq/inflow/internal/services/web/contact"
	module "github.com/inflowhq/inflow/internal/services/web/module"
	"github.com/inflowhq/inflow/internal/services/web/modules/auth"
	"github.com/inflowhq/inflow/internal/services/web/platform/publichandler"
	webstorage "github.com/inflowhq/inflow/internal/services/web/storage"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries the collaborators the server hands to modules.
type Dependencies struct {
	// Base renders pages for every module.
	Base publichandler.Base

	// Contact module collaborators.
	ContactRegistry   *contact.Registry
	ContactConfigured bool
	ContactResetDelay time.Duration
	// ContactSubmissions backs the operator submission routes.
	ContactSubmissions webstorage.SubmissionStore
	OperatorToken      string

	// Auth module collaborators.
	ResolveSession auth.SessionResolver
	LoginURL       string
	SignupURL      string

	Logger *log.Logger
}
