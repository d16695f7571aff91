// Package navigation decides whether a requested view is reachable for the
// current session. It is pure: every input maps to a decision, never an
// error.
package navigation

import "github.com/baw-market/baw-cli/internal/domain"

const (
	PathHome            = "/"
	PathLogin           = "/login"
	PathRegister        = "/register"
	PathCart            = "/cart"
	PathCheckout        = "/checkout"
	PathProducts        = "/products/"
	PathSellerDashboard = "/seller/dashboard"
)

// Decision is either an allow or a redirect to another path.
type Decision struct {
	Allowed  bool
	Redirect string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func redirectTo(path string) Decision {
	return Decision{Redirect: path}
}

// Decide applies the route policy: public-only views bounce authenticated
// users home, protected views bounce anonymous users to login, the seller
// dashboard additionally requires the seller role, and unknown paths always
// redirect to login.
func Decide(path string, session domain.Session) Decision {
	switch classify(path) {
	case classPublicOnly:
		if session.Authenticated() {
			return redirectTo(PathHome)
		}
		return allow()
	case classProtected:
		if !session.Authenticated() {
			return redirectTo(PathLogin)
		}
		return allow()
	case classSellerOnly:
		if !session.Authenticated() {
			return redirectTo(PathLogin)
		}
		if !session.Role().CanSell() {
			return redirectTo(PathHome)
		}
		return allow()
	default:
		return redirectTo(PathLogin)
	}
}

type pathClass int

const (
	classUnknown pathClass = iota
	classPublicOnly
	classProtected
	classSellerOnly
)

func classify(path string) pathClass {
	switch path {
	case PathLogin, PathRegister:
		return classPublicOnly
	case PathHome, PathCart, PathCheckout:
		return classProtected
	case PathSellerDashboard:
		return classSellerOnly
	}

	if isProductDetail(path) {
		return classProtected
	}

	return classUnknown
}

func isProductDetail(path string) bool {
	if len(path) <= len(PathProducts) {
		return false
	}
	if path[:len(PathProducts)] != PathProducts {
		return false
	}

	for _, r := range path[len(PathProducts):] {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
