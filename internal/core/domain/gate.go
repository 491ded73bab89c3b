package domain

// Decision is the outcome of an access gate evaluation.
type Decision int

const (
	// DecisionPending means the session is still resolving; neither allow
	// nor deny may be acted upon yet.
	DecisionPending Decision = iota
	// DecisionDenied redirects to login without rendering any content.
	DecisionDenied
	// DecisionAllowed lets the page render for the resolved identity.
	DecisionAllowed
)

func (d Decision) String() string {
	switch d {
	case DecisionPending:
		return "pending"
	case DecisionDenied:
		return "denied"
	case DecisionAllowed:
		return "allowed"
	}
	return "unknown"
}

// Evaluate runs the per-page access check. Public pages are always allowed.
// Otherwise the decision is Pending until the session has resolved, then
// Allowed exactly when an identity is present and its role is in the
// registry's set for the page. Unknown pages deny every role.
func Evaluate(reg *Registry, s Session, pageKey string) Decision {
	if reg.Public(pageKey) {
		return DecisionAllowed
	}
	if s.Resolving {
		return DecisionPending
	}
	if s.Identity == nil || !reg.Allows(pageKey, s.Identity.Role) {
		return DecisionDenied
	}
	return DecisionAllowed
}
