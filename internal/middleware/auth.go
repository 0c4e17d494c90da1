package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/iqtrace/iqtrace/internal/domain"
	"github.com/iqtrace/iqtrace/internal/utils"
	jwt_internal "github.com/iqtrace/iqtrace/internal/utils/jwt"
)

// Key to store the user claims in the request context
type key int

const userClaimsKey key = 0

func Auth(jwtService jwt_internal.JwtService, adminOnly bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				http.Error(w, "Please sign-in", http.StatusUnauthorized)
				return
			}
			tokenStr, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				http.Error(w, "Authorization header must be a bearer token", http.StatusUnauthorized)
				return
			}

			token, err := jwtService.DecodeToken(tokenStr)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				http.Error(w, "Invalid access token", http.StatusUnauthorized)
				return
			}

			uid, uidOk := claims["uid"].(float64)
			email, emailOk := claims["email"].(string)
			admin, adminOk := claims["admin"].(bool)
			if !uidOk || !emailOk || !adminOk {
				http.Error(w, "Invalid access token", http.StatusUnauthorized)
				return
			}

			if adminOnly && !admin {
				http.Error(w, "Access denied. Only for admin", http.StatusForbidden)
				return
			}

			user := &domain.User{
				Id:    int64(uid),
				Email: email,
				Admin: admin,
			}

			ctx := context.WithValue(r.Context(), userClaimsKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Helper functions for admin and regular auth
func AdminOnly(jwtService jwt_internal.JwtService) func(http.Handler) http.Handler {
	return Auth(jwtService, true)
}

func NeedAuth(jwtService jwt_internal.JwtService) func(http.Handler) http.Handler {
	return Auth(jwtService, false)
}

// GetUserFromContext retrieves the authenticated user stored by Auth.
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(userClaimsKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
