package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gotrabandhus/gotrabandhus/constant"
	cerr "github.com/gotrabandhus/gotrabandhus/utils/errors"
)

type errorResponse struct {
	Error      string `json:"error"`
	Code       string `json:"code"`
	RedirectTo string `json:"redirectTo,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

// writeError maps a CustomError onto its HTTP status and JSON body. The
// profile gate's rejection carries a redirect hint so clients can route the
// user back to onboarding instead of dead-ending on a 403.
func writeError(w http.ResponseWriter, err error) {
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		ce = cerr.SetCustomError(constant.ErrInternal)
	}

	writeJSON(w, ce.ErrorHTTPCode(), errorResponse{
		Error:      ce.Error(),
		Code:       ce.ErrorCode(),
		RedirectTo: ce.Redirect(),
	})
}
