package middleware

import (
	"net/http"

	goConsole "github.com/MrEthical07/goConsole"
)

// Protect guards the wrapped handler with the console's route decision for
// the request path. Unauthenticated requests are redirected to the login
// path, mode-denied requests to the default path, both with 303 See Other.
func Protect(console *goConsole.Console) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if console == nil {
				http.Error(w, "service unavailable", http.StatusServiceUnavailable)
				return
			}

			decision, err := console.Authorize(r.Context(), r.URL.Path)
			if err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}

			switch decision {
			case goConsole.DecisionAuthorized:
				next.ServeHTTP(w, r)
			case goConsole.DecisionRedirectDefault:
				http.Redirect(w, r, console.DefaultPath(), http.StatusSeeOther)
			default:
				http.Redirect(w, r, console.LoginPath(), http.StatusSeeOther)
			}
		})
	}
}

// RequireSession only checks that a session exists, without consulting the
// route registry. Screens that every authenticated mode may see use this.
func RequireSession(console *goConsole.Console) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if console == nil {
				http.Error(w, "service unavailable", http.StatusServiceUnavailable)
				return
			}

			if _, ok, err := console.CurrentSession(); err != nil || !ok {
				http.Redirect(w, r, console.LoginPath(), http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
