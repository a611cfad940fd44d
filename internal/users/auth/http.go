// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/gstone/internal/platform/constants"
	"github.com/taibuivan/gstone/internal/platform/middleware"
	requestutil "github.com/taibuivan/gstone/internal/platform/request"
	"github.com/taibuivan/gstone/internal/platform/respond"
)

// # Definitions & Constructors

// Handler implements the authentication endpoints.
type Handler struct {
	authService  *Service
	secureCookie bool
}

// NewHandler constructs a [Handler]. secureCookie should be false only for
// plain-HTTP development servers.
func NewHandler(service *Service, secureCookie bool) *Handler {
	return &Handler{authService: service, secureCookie: secureCookie}
}

// RegisterRoutes mounts the endpoints.
//
// # Endpoints
//   - POST /login   : Authenticates and returns a JWT plus refresh cookie.
//   - POST /refresh : Rotates the refresh cookie.
//   - POST /logout  : Ends the refresh session.
//   - GET  /me      : Current account.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/login", handler.login)
	router.Post("/refresh", handler.refresh)
	router.Post("/logout", handler.logout)

	router.With(middleware.RequireAuth).Get("/me", handler.me)
}

// # Payloads

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// TokenResponse is returned by login and refresh.
type TokenResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	ExpiresIn   int      `json:"expires_in"`
	User        *Account `json:"user"`
}

/*
Login authenticates an account and establishes a session.

POST /api/v1/auth/login

Response:
  - 200: TokenResponse
  - 400: Missing login or password
  - 401: Invalid credentials
  - 403: Disabled account
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Login(request.Context(), LoginInput{
		Login:     input.Login,
		Password:  input.Password,
		UserAgent: request.UserAgent(),
		IPAddress: middleware.RealIP(request),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.writeSession(writer, session)
}

/*
Refresh rotates the refresh cookie and issues a new access token.

POST /api/v1/auth/refresh

Response:
  - 200: TokenResponse
  - 401: Missing, unknown, or already used refresh token
*/
func (handler *Handler) refresh(writer http.ResponseWriter, request *http.Request) {
	session, err := handler.authService.Refresh(
		request.Context(),
		refreshCookie(request),
		request.UserAgent(),
		middleware.RealIP(request),
	)
	if err != nil {
		handler.clearCookie(writer)
		respond.Error(writer, request, err)
		return
	}

	handler.writeSession(writer, session)
}

// logout always clears the cookie, even when the session is already gone.
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	if err := handler.authService.Logout(request.Context(), refreshCookie(request)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.clearCookie(writer)
	respond.NoContent(writer)
}

func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.authService.Me(request.Context(), claims.UserID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, account)
}

// # Cookie Helpers

func refreshCookie(request *http.Request) string {
	cookie, err := request.Cookie(constants.RefreshTokenCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (handler *Handler) writeSession(writer http.ResponseWriter, session *LoginSession) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.RefreshTokenCookieName,
		Value:    session.RefreshToken,
		Path:     constants.RefreshTokenCookiePath,
		Expires:  session.RefreshTokenExpiresAt,
		Secure:   handler.secureCookie,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	respond.OK(writer, TokenResponse{
		AccessToken: session.AccessToken,
		TokenType:   TokenType,
		ExpiresIn:   int(AccessTokenTTL / time.Second),
		User:        session.Account,
	})
}

func (handler *Handler) clearCookie(writer http.ResponseWriter) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.RefreshTokenCookieName,
		Value:    "",
		Path:     constants.RefreshTokenCookiePath,
		MaxAge:   -1,
		Secure:   handler.secureCookie,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
