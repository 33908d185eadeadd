package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gotrabandhus/gotrabandhus/application/profile"
	"github.com/gotrabandhus/gotrabandhus/constant"
	utilsContext "github.com/gotrabandhus/gotrabandhus/utils/context"
	"github.com/gotrabandhus/gotrabandhus/utils/errors"
)

// ProfileCompleteMiddleware is the second gate behind AuthMiddleware: it
// forwards the request only when the authenticated user's profile is
// complete. An incomplete profile is rejected with 403 and a redirect hint
// to the onboarding page, never a bare 403.
func ProfileCompleteMiddleware(profileApp profile.ProfileApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utilsContext.GetUserID(r.Context())
			if !ok {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			isComplete, err := profileApp.IsProfileComplete(r.Context(), userID)
			if err != nil {
				writeError(w, err)
				return
			}

			if !isComplete {
				writeError(w, errors.SetCustomErrorWithRedirect(constant.ErrProfileIncomplete, constant.RedirectProfile))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
