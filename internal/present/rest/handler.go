package rest

import (
	"encoding/json"

	"github.com/labstack/echo/v4"

	"github.com/SaharBarak/portfolio-v2-sub001/internal/domain"
	"github.com/SaharBarak/portfolio-v2-sub001/internal/present/rest/middleware"
	"github.com/SaharBarak/portfolio-v2-sub001/internal/present/rest/presenter"
	"github.com/SaharBarak/portfolio-v2-sub001/internal/service"
	"github.com/SaharBarak/portfolio-v2-sub001/internal/usecase"
)

// Usecases bundles the operations exposed over HTTP.
type Usecases struct {
	Projects          *usecase.QueryUsecase[domain.Project]
	ProjectsSync      *usecase.SyncUsecase[domain.ProjectInput, domain.Project]
	Research          *usecase.QueryUsecase[domain.Research]
	ResearchSync      *usecase.SyncUsecase[domain.ResearchInput, domain.Research]
	Contributions     *usecase.QueryUsecase[domain.Contribution]
	ContributionsSync *usecase.SyncUsecase[domain.ContributionInput, domain.Contribution]
	Now               *usecase.QueryUsecase[domain.NowItem]
	NowSync           *usecase.SyncUsecase[domain.NowInput, domain.NowItem]
	Links             *usecase.QueryUsecase[domain.Link]
	LinksSync         *usecase.SyncUsecase[domain.LinkInput, domain.Link]
	Blog              *usecase.QueryUsecase[domain.BlogPost]
	BlogSync          *usecase.SyncUsecase[domain.BlogInput, domain.BlogPost]
	About             *usecase.AboutUsecase
	Availability      *usecase.AvailabilityUsecase
	Likes             *usecase.LikesUsecase
}

type Handler struct {
	queries   functions
	mutations functions
	auth      *middleware.AuthMiddleware
	signal    *service.SignalService
}

// NewHandler builds the function tables. signal may be nil, in which case
// the realtime endpoint is not served.
func NewHandler(
	uc Usecases,
	auth *middleware.AuthMiddleware,
	signal *service.SignalService,
) *Handler {
	h := &Handler{
		queries:   functions{},
		mutations: functions{},
		auth:      auth,
		signal:    signal,
	}
	h.register(uc)
	return h
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.handleHealth)
	e.POST("/api/query", h.handleQuery)
	e.POST("/api/mutation", h.handleMutation, h.auth.IdentifySyncClient)
	if h.signal != nil {
		e.GET("/realtime", h.handleRealtime)
	}
}

// FunctionCall is the body of /api/query and /api/mutation.
type FunctionCall struct {
	Path string          `json:"path"`
	Args json.RawMessage `json:"args"`
}

func (h *Handler) handleHealth(c echo.Context) error {
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleQuery(c echo.Context) error {
	return h.dispatch(c, h.queries)
}

func (h *Handler) handleMutation(c echo.Context) error {
	return h.dispatch(c, h.mutations)
}

func (h *Handler) dispatch(c echo.Context, table functions) error {
	ctx := c.Request().Context()

	var call FunctionCall
	err := c.Bind(&call)
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid request body")
	}
	if call.Path == "" {
		return presenter.BadRequestMessage(c, "path is required")
	}

	fn, ok := table[call.Path]
	if !ok {
		return presenter.Failure(c, presenter.ErrUnknownFunction{Path: call.Path})
	}
	if fn.syncOnly && !middleware.IsSyncClient(ctx) {
		return presenter.Failure(c, service.ErrUnauthorized)
	}

	value, err := fn.call(ctx, call.Args)
	if err != nil {
		return presenter.Failure(c, err)
	}
	return presenter.Success(c, value)
}
