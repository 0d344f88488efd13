package authz

import "healthrecords-service/internal/pkg/constvars"

// Decision is the outcome of an authorization check. Reason is set for
// every decision so that call sites can log or surface it without
// re-deriving why the engine answered the way it did.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow(reason string) Decision {
	return Decision{Allowed: true, Reason: reason}
}

func deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

type Engine struct {
	registry *Registry
}

func NewEngine(registry *Registry) *Engine {
	return &Engine{registry: registry}
}

// Authorize decides whether the actor may perform the action, in a
// fixed order: inactive actors are denied before anything else, then
// the role grant is consulted, then ownership for self-scoped actions.
// resourceOwnerID may be empty when the action has no single owner.
func (e *Engine) Authorize(actor *Actor, action string, resourceOwnerID string) Decision {
	if actor == nil || !actor.Active {
		return deny(constvars.ReasonActorInactive)
	}
	if e.registry.IsPermitted(actor.RoleName, action) {
		return allow(constvars.ReasonRoleGrant)
	}
	if e.registry.IsSelfScoped(action) && actor.OwnsResource(resourceOwnerID) {
		return allow(constvars.ReasonOwnership)
	}
	return deny(constvars.ReasonInsufficientPermission)
}
