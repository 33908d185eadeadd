package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	authapp "github.com/gotrabandhus/gotrabandhus/application/auth"
	profileapp "github.com/gotrabandhus/gotrabandhus/application/profile"
	"github.com/gotrabandhus/gotrabandhus/constant"
	"github.com/gotrabandhus/gotrabandhus/model"
	utilsContext "github.com/gotrabandhus/gotrabandhus/utils/context"
	"github.com/gotrabandhus/gotrabandhus/utils/errors"
	validatorx "github.com/gotrabandhus/gotrabandhus/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	AuthApp    authapp.AuthApp
	ProfileApp profileapp.ProfileApp
}

func NewTransport(AuthApp authapp.AuthApp, ProfileApp profileapp.ProfileApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		AuthApp:    AuthApp,
		ProfileApp: ProfileApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/api/auth/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/api/auth/login", rh.Login).Methods(http.MethodPost)

	// Authenticated routes
	mux.HandleFunc("/api/auth/me", rh.CurrentUser).Methods(http.MethodGet)
	mux.HandleFunc("/api/user/profile", rh.GetProfile).Methods(http.MethodGet)
	mux.HandleFunc("/api/user/profile", rh.UpdateProfile).Methods(http.MethodPut)
	mux.HandleFunc("/api/user/profile/check-completion", rh.CheckCompletion).Methods(http.MethodGet)

	// Routes that additionally require a complete profile
	mux.Handle("/api/user/dashboard",
		ProfileCompleteMiddleware(ProfileApp)(http.HandlerFunc(rh.Dashboard))).Methods(http.MethodGet)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(AuthApp))

	return mux
}

// Register handler
// @Summary Register user
// @Description Register a new account with the minimal onboarding field set
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 201 {object} model.AuthResponse
// @Failure 400 {object} errorResponse
// @Router /api/auth/register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AuthApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, res)
}

// Login handler
// @Summary Login user
// @Description Login with email and password and receive a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.AuthResponse
// @Failure 401 {object} errorResponse
// @Router /api/auth/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AuthApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CurrentUser handler
// @Summary Current user
// @Description Return the user bound to the bearer token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.CurrentUserResponse
// @Failure 401 {object} errorResponse
// @Router /api/auth/me [get]
func (s *RestHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	user, err := s.ProfileApp.GetProfile(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.CurrentUserResponse{User: user})
}

// GetProfile handler
// @Summary Get profile
// @Description Return the authenticated user's profile
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.ProfileResponse
// @Failure 401 {object} errorResponse
// @Router /api/user/profile [get]
func (s *RestHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	user, err := s.ProfileApp.GetProfile(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.ProfileResponse{Profile: user})
}

// UpdateProfile handler
// @Summary Update profile
// @Description Merge the supplied fields onto the profile and recompute completion
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ProfileUpdateRequest true "Profile fields"
// @Success 200 {object} model.ProfileUpdateResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Router /api/user/profile [put]
func (s *RestHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.ProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ProfileApp.UpdateProfile(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CheckCompletion handler
// @Summary Check profile completion
// @Description Report whether the profile is complete and where to route next
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.CompletionResponse
// @Failure 401 {object} errorResponse
// @Router /api/user/profile/check-completion [get]
func (s *RestHandler) CheckCompletion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.ProfileApp.CheckCompletion(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Dashboard handler
// @Summary Dashboard
// @Description Gated resource requiring a complete profile
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.DashboardResponse
// @Failure 401 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Router /api/user/dashboard [get]
func (s *RestHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, model.DashboardResponse{Message: "Access to dashboard granted"})
}
