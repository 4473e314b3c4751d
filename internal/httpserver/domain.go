package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	bookmarkHTTP "emotion-assistant/internal/bookmark/delivery/http"
	bookmarkRepo "emotion-assistant/internal/bookmark/repository/postgre"
	bookmarkUC "emotion-assistant/internal/bookmark/usecase"
	convHTTP "emotion-assistant/internal/conversation/delivery/http"
	convUC "emotion-assistant/internal/conversation/usecase"
	"emotion-assistant/internal/middleware"
	"emotion-assistant/internal/session"
	sessionHTTP "emotion-assistant/internal/session/delivery/http"
	sessionRepo "emotion-assistant/internal/session/repository/postgre"
	sessionUC "emotion-assistant/internal/session/usecase"
	userHTTP "emotion-assistant/internal/user/delivery/http"
	userRepo "emotion-assistant/internal/user/repository/postgre"
	userUC "emotion-assistant/internal/user/usecase"
)

// Every domain follows the same steps:
//  1. Repository:   repo := xRepo.New(srv.postgresDB, srv.l)
//  2. UseCase:      uc := xUC.New(repo, ...)
//  3. HTTP Handler: h := xHTTP.New(srv.l, uc)
//  4. Routes:       xHTTP.RegisterRoutes(api, h, mw)

// setupUserDomain registers /api/signup, /login, /logout, /status, /delete-account.
func (srv *HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := userRepo.New(srv.postgresDB, srv.l)
	uc := userUC.New(repo, srv.jwtManager, srv.l)
	h := userHTTP.New(srv.l, uc, srv.cookie)
	userHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "User domain registered")
}

// setupSessionDomain registers /api/sessions. Deleting a session also drops
// the assistant's in-memory state for it.
func (srv *HTTPServer) setupSessionDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) session.UseCase {
	repo := sessionRepo.New(srv.postgresDB, srv.l)
	uc := sessionUC.New(repo, srv.l, srv.assistant)
	h := sessionHTTP.New(srv.l, uc)
	sessionHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Session domain registered")
	return uc
}

// setupConversationDomain registers /api/get_response.
func (srv *HTTPServer) setupConversationDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, sessions session.UseCase) {
	uc := convUC.New(sessions, srv.assistant.Router, srv.assistant.Resolver, srv.assistant.Finder, srv.assistant, srv.conversation, srv.l)
	h := convHTTP.New(srv.l, uc)
	convHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Conversation domain registered")
}

// setupBookmarkDomain registers /api/bookmarks.
func (srv *HTTPServer) setupBookmarkDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := bookmarkRepo.New(srv.postgresDB, srv.l)
	uc := bookmarkUC.New(repo, srv.l)
	h := bookmarkHTTP.New(srv.l, uc)
	bookmarkHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Bookmark domain registered")
}
