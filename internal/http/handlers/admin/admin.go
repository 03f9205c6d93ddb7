package admin

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/cedarbrook-wellness/content-service/internal/storage"
	admintypes "github.com/cedarbrook-wellness/content-service/internal/types/admin"
	"github.com/cedarbrook-wellness/content-service/internal/utils/jwt"
	"github.com/cedarbrook-wellness/content-service/internal/utils/password"
	"github.com/cedarbrook-wellness/content-service/internal/utils/response"
)

const tokenTTL = 24 * time.Hour

// SignUp handles admin registration
// @Summary Register a new admin
// @Tags admin
// @Accept json
// @Produce json
// @Param admin body admin.SignInRequest true "Admin credentials"
// @Success 201 {object} map[string]string "Admin created successfully"
// @Failure 400 {object} response.Response "Bad request"
// @Failure 500 {object} response.Response "Internal server error"
// @Router /admin/signup [post]
func SignUp(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req admintypes.SignInRequest

		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		// Validate request
		validate := validator.New()
		err = validate.Struct(req)
		if err != nil {
			if ve, ok := err.(validator.ValidationErrors); ok {
				response.WriteJSON(w, http.StatusBadRequest, response.ValidationError(ve))
				return
			}
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		hashed, err := password.HashPassword(req.Password)
		if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(errors.New("failed to hash password")))
			return
		}

		adminID, err := storage.CreateAdmin(req.Email, hashed)
		if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}
		slog.Info("Admin created", slog.String("admin_id", adminID))

		response.WriteJSON(w, http.StatusCreated, map[string]string{
			"id": adminID,
		})
	}
}

// Login handles admin authentication
// @Summary Authenticate an admin
// @Description Authenticate an admin and return a JWT token
// @Tags admin
// @Accept json
// @Produce json
// @Param admin body admin.SignInRequest true "Admin credentials"
// @Success 200 {object} map[string]string "Admin authenticated with token"
// @Failure 400 {object} response.Response "Bad request"
// @Failure 401 {object} response.Response "Unauthorized"
// @Router /admin/login [post]
func Login(storage storage.Storage, JWTSecret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req admintypes.SignInRequest

		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		// Validate request
		validate := validator.New()
		err = validate.Struct(req)
		if err != nil {
			if ve, ok := err.(validator.ValidationErrors); ok {
				response.WriteJSON(w, http.StatusBadRequest, response.ValidationError(ve))
				return
			}
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		adminID, hashed, err := storage.GetAdminByEmail(req.Email)
		if err != nil {
			response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(errors.New("invalid email or password")))
			return
		}

		if !password.CheckPassword(req.Password, hashed) {
			response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(errors.New("invalid email or password")))
			return
		}

		token, err := jwt.GenerateToken(adminID, JWTSecret, tokenTTL)
		if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(errors.New("failed to generate token")))
			return
		}

		response.WriteJSON(w, http.StatusOK, map[string]string{
			"admin_id": adminID,
			"token":    token,
		})
	}
}
