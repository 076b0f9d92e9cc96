package httpserver

import (
	"github.com/gin-gonic/gin"

	checklistHTTP "trackfit-companion/internal/checklist/delivery/http"
	checklistRepo "trackfit-companion/internal/checklist/repository/kv"
	checklistUC "trackfit-companion/internal/checklist/usecase"
	routineHTTP "trackfit-companion/internal/routine/delivery/http"
	routineUC "trackfit-companion/internal/routine/usecase"
	sessionHTTP "trackfit-companion/internal/session/delivery/http"
	sessionUC "trackfit-companion/internal/session/usecase"
	statsHTTP "trackfit-companion/internal/stats/delivery/http"
	statsUC "trackfit-companion/internal/stats/usecase"
)

// registerDomainRoutes wires every domain and registers its routes under api.
//
// Each domain follows the same steps:
//  1. Repository (when the domain persists locally)
//  2. UseCase
//  3. HTTP Handler
//  4. Routes
func (srv HTTPServer) registerDomainRoutes(api *gin.RouterGroup) error {
	// Session: the signed-in user backs the checklist partition and every backend call.
	sessions := sessionUC.New(srv.storage, srv.backend, srv.l)
	sessionHTTP.RegisterRoutes(api.Group("/auth"), sessionHTTP.New(srv.l, sessions))

	// Checklist: registers /api/v1/checklist
	repo := checklistRepo.New(srv.storage, srv.l)
	checklist := checklistUC.New(repo, sessions, srv.l)
	checklistHTTP.RegisterRoutes(api.Group("/checklist"), checklistHTTP.New(srv.l, checklist))

	// Routines: registers /api/v1/routines
	routines := routineUC.New(srv.backend, sessions, srv.l)
	routineHTTP.RegisterRoutes(api.Group("/routines"), routineHTTP.New(srv.l, routines))

	// Stats: registers /api/v1/stats
	overview := statsUC.New(srv.backend, sessions, srv.l)
	statsHTTP.RegisterRoutes(api.Group("/stats"), statsHTTP.New(srv.l, overview))

	return nil
}
