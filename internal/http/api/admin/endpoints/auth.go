package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/salahapp/salah-server/internal/db"
	"github.com/salahapp/salah-server/internal/http/api"
	"github.com/salahapp/salah-server/internal/http/api/admin/packets"
	"github.com/salahapp/salah-server/internal/http/middleware"
	"github.com/salahapp/salah-server/internal/model"
)

// AuthPublicModule mounts public auth endpoints (/auth/signup, /auth/login)
func AuthPublicModule(jwtSecret string, store db.Store) api.Module {
	ctl := newAccountManager(jwtSecret, store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_POST("/auth/signup", ctl.adminSignup)
		c.PUBLIC_POST("/auth/login", ctl.adminLogin)
	})
}

// AuthSessionModule mounts private session/profile endpoints (JWT required)
func AuthSessionModule(jwtSecret string, store db.Store) api.Module {
	ctl := newAccountManager(jwtSecret, store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/auth/current_profile", ctl.getCurrentProfile)
		c.PUT("/auth/current_profile", ctl.updateCurrentProfile)
		c.POST("/auth/logout", ctl.adminLogout)
	})
}

type AccountManager struct {
	jwtSecret string
	store     db.Store
}

func newAccountManager(secret string, store db.Store) *AccountManager {
	return &AccountManager{jwtSecret: secret, store: store}
}

// POST /api/admin/auth/signup
func (a *AccountManager) adminSignup(ctx *gin.Context) (any, *api.Error) {
	var request packets.SignupRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if existing, _ := a.store.GetAdminByUsername(request.Username); existing != nil {
		log.Warn().Str("username", request.Username).Msg("signup username already registered")
		return nil, &api.Error{Code: http.StatusConflict, Message: "username already registered"}
	}
	if existing, _ := a.store.GetAdminByEmail(request.Email); existing != nil {
		return nil, &api.Error{Code: http.StatusConflict, Message: "email already registered"}
	}

	hashed, err := middleware.HashPassword(request.Password)
	if err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not hash password"}
	}

	admin, err := a.store.CreateAdmin(request.Username, request.Email, hashed, request.FullName)
	if err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not create admin"}
	}

	token, err := middleware.GenerateJWT(admin.ID, a.jwtSecret)
	if err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not generate token"}
	}

	return packets.TokenResponse{Token: token}, nil
}

// POST /api/admin/auth/login
func (a *AccountManager) adminLogin(ctx *gin.Context) (any, *api.Error) {
	var request packets.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	admin, err := a.store.GetAdminByUsername(request.Username)
	if err != nil || admin == nil || !middleware.CheckPassword(admin.HashedPassword, request.Password) {
		return nil, &api.Error{Code: http.StatusUnauthorized, Message: "invalid credentials"}
	}

	token, err := middleware.GenerateJWT(admin.ID, a.jwtSecret)
	if err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not generate token"}
	}

	return packets.TokenResponse{Token: token}, nil
}

// POST /api/admin/auth/logout
func (a *AccountManager) adminLogout(ctx *gin.Context, _ *model.Admin) (any, *api.Error) {
	if err := middleware.RevokeToken(ctx, a.jwtSecret); err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not revoke token"}
	}
	return api.Result{Data: true, Message: "Logged out"}, nil
}

// GET /api/admin/auth/current_profile
func (a *AccountManager) getCurrentProfile(ctx *gin.Context, admin *model.Admin) (any, *api.Error) {
	return packets.ProfileResponse{
		ID:        admin.ID,
		Username:  admin.Username,
		Email:     admin.Email,
		FullName:  admin.FullName,
		CreatedAt: admin.CreatedAt.Format(time.RFC3339),
		UpdatedAt: admin.UpdatedAt.Format(time.RFC3339),
	}, nil
}

// PUT /api/admin/auth/current_profile
func (a *AccountManager) updateCurrentProfile(ctx *gin.Context, admin *model.Admin) (any, *api.Error) {
	var request packets.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if request.Email != admin.Email {
		if other, _ := a.store.GetAdminByEmail(request.Email); other != nil {
			return nil, &api.Error{Code: http.StatusConflict, Message: "email already in use"}
		}
	}

	if err := a.store.UpdateAdminProfile(admin.ID, request.Email, request.FullName); err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not update profile"}
	}
	return api.Result{Data: true, Message: "Profile updated"}, nil
}
