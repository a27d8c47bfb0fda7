package domain

type AuthState string

const (
	SignedOut AuthState = "signed_out"
	SignedIn  AuthState = "signed_in"
	Deleted   AuthState = "deleted"
)

type Route string

const (
	RouteAuth Route = "auth"
	RouteMain Route = "main"
)

// RouteFor tells the session gate which area an auth state belongs to.
func RouteFor(state AuthState) Route {
	if state == SignedIn {
		return RouteMain
	}
	return RouteAuth
}
