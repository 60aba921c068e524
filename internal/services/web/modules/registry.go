package modules

import (
	module "github.com/inflowhq/inflow/internal/services/web/module"
	"github.com/inflowhq/inflow/internal/services/web/modules/auth"
	contactmodule "github.com/inflowhq/inflow/internal/services/web/modules/contact"
	"github.com/inflowhq/inflow/internal/services/web/modules/public"
)

// DefaultModules returns the site modules in mount order.
func DefaultModules(deps Dependencies) []Module {
	contactModule := contactmodule.New(
		contactmodule.WithBase(deps.Base),
		contactmodule.WithRegistry(deps.ContactRegistry),
		contactmodule.WithConfigured(deps.ContactConfigured),
		contactmodule.WithResetDelay(deps.ContactResetDelay),
		contactmodule.WithSubmissions(deps.ContactSubmissions),
		contactmodule.WithOperatorToken(deps.OperatorToken),
	)
	return []Module{
		public.New(
			public.WithBase(deps.Base),
			public.WithHealthReporters(map[string]module.HealthReporter{
				contactModule.ID(): contactModule,
			}),
		),
		contactModule,
		auth.New(
			auth.WithBase(deps.Base),
			auth.WithSessionResolver(deps.ResolveSession),
			auth.WithLoginURL(deps.LoginURL),
			auth.WithSignupURL(deps.SignupURL),
			auth.WithLogger(deps.Logger),
		),
	}
}
