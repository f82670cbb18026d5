package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/time/rate"

	"fineart/internal/handler/http/requestid"
	"fineart/internal/handler/http/respond"
	authservice "fineart/internal/service/auth"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// TokenTTL is the lifetime of issued tokens.
const TokenTTL = 1 * time.Hour

// TokenHandler creates an HTTP handler that authenticates users and issues
// JWT tokens. Issuance is rate limited to slow down credential stuffing.
func TokenHandler(svc *authservice.Service) http.HandlerFunc {
	// 5 attempts per second with a small burst, shared across clients.
	limiter := rate.NewLimiter(rate.Limit(5), 10)

	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := requestid.FromContext(r.Context())
		logger := slog.With(slog.String("request_id", requestID))

		if !limiter.Allow() {
			logger.Warn("authentication throttled",
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			respond.Message(w, http.StatusTooManyRequests, "Too many requests.")
			return
		}

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("authentication failed",
				slog.String("reason", "invalid_request"),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			RecordAuthRequest("unknown", "failure")
			respond.Message(w, http.StatusBadRequest, "Invalid request.")
			return
		}

		user, err := svc.Authenticate(r.Context(), authservice.Credentials{
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			logger.Warn("authentication failed",
				slog.String("reason", "invalid_credentials"),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			RecordAuthRequest("unknown", "failure")
			respond.Message(w, http.StatusUnauthorized, "Invalid email or password.")
			return
		}

		secret := []byte(os.Getenv("JWT_SECRET"))
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub":  user.Email,
			"role": user.Role,
			"exp":  time.Now().Add(TokenTTL).Unix(),
		})

		signed, err := token.SignedString(secret)
		if err != nil {
			logger.Error("token generation failed",
				slog.String("error", err.Error()),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			RecordAuthRequest(user.Role, "failure")
			respond.Message(w, http.StatusInternalServerError, "Token generation failed.")
			return
		}

		logger.Info("authentication successful",
			slog.String("user_email", user.Email),
			slog.String("role", user.Role),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))
		RecordAuthRequest(user.Role, "success")

		respond.JSON(w, http.StatusOK, tokenResponse{Token: signed})
	}
}
