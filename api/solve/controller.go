package solveapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/beka-birhanu/vinom-pathfinder/api/auth"
	api_i "github.com/beka-birhanu/vinom-pathfinder/api/i"
	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/pathfind"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// maxMazeBytes caps request bodies.
	maxMazeBytes = 4 << 20

	// statusClientClosedRequest is reported when the client went away mid-request.
	statusClientClosedRequest = 499
)

var ErrMissingDependency = errors.New("solve controller dependency is nil")

// SolveController serves synchronous solves and background jobs.
type SolveController struct {
	solver  i.Solver
	jobs    i.JobScheduler
	encoder api_i.SolutionEncoder
	logger  *zap.Logger
}

// NewSolveController initializes a SolveController.
func NewSolveController(solver i.Solver, jobs i.JobScheduler, encoder api_i.SolutionEncoder, logger *zap.Logger) (*SolveController, error) {
	if solver == nil || jobs == nil || encoder == nil || logger == nil {
		return nil, ErrMissingDependency
	}
	return &SolveController{
		solver:  solver,
		jobs:    jobs,
		encoder: encoder,
		logger:  logger,
	}, nil
}

// RegisterPublic registers public routes.
func (sc *SolveController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/health", sc.health)
	route.POST("/solve", sc.solve)
}

// RegisterProtected registers protected routes.
func (sc *SolveController) RegisterProtected(route *gin.RouterGroup) {
	jobs := route.Group("/jobs")
	{
		jobs.POST("", sc.submit)
		jobs.GET("/:ID", sc.status)
	}
}

func (sc *SolveController) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// solve handles synchronous solve requests.
func (sc *SolveController) solve(ctx *gin.Context) {
	request, ok := sc.bind(ctx)
	if !ok {
		return
	}

	sol, err := sc.solver.Solve(ctx.Request.Context(), request.Maze)
	if err != nil {
		sc.fail(ctx, err)
		return
	}
	sc.render(ctx, http.StatusOK, sol)
}

// submit queues a maze for background solving.
func (sc *SolveController) submit(ctx *gin.Context) {
	request, ok := sc.bind(ctx)
	if !ok {
		return
	}

	id, err := sc.jobs.Submit(ctx.Request.Context(), request.Maze)
	if err != nil {
		sc.fail(ctx, err)
		return
	}

	sc.logger.Info("job submitted", zap.Stringer("id", id), zap.String("client", auth.Client(ctx)))
	ctx.Header("Location", ctx.Request.URL.Path+"/"+id.String())
	ctx.JSON(http.StatusAccepted, &JobResponse{ID: id})
}

// status reports a queued job.
func (sc *SolveController) status(ctx *gin.Context) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid job id"})
		return
	}

	job, err := sc.jobs.Status(ctx.Request.Context(), ID)
	if err != nil {
		sc.fail(ctx, err)
		return
	}
	sc.render(ctx, http.StatusOK, job)
}

func (sc *SolveController) bind(ctx *gin.Context) (*SolveRequest, bool) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxMazeBytes)

	var request SolveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return &request, true
}

// render writes sol as protobuf when the client asks for it, JSON otherwise.
func (sc *SolveController) render(ctx *gin.Context, code int, sol *dmn.Solution) {
	if ctx.NegotiateFormat(binding.MIMEJSON, binding.MIMEPROTOBUF) == binding.MIMEPROTOBUF {
		msg, err := sc.encoder.SolutionMessage(sol)
		if err != nil {
			sc.fail(ctx, err)
			return
		}
		ctx.ProtoBuf(code, msg)
		return
	}
	ctx.JSON(code, newSolutionResponse(sol))
}

// fail maps service errors onto HTTP status codes.
func (sc *SolveController) fail(ctx *gin.Context, err error) {
	code := statusOf(err)
	switch code {
	case statusClientClosedRequest:
		sc.logger.Debug("client went away", zap.String("path", ctx.FullPath()), zap.Error(err))
		ctx.AbortWithStatus(code)
		return
	case http.StatusInternalServerError:
		sc.logger.Error("request failed", zap.String("path", ctx.FullPath()), zap.Error(err))
		ctx.JSON(code, gin.H{"error": "internal error"})
		return
	}
	ctx.JSON(code, gin.H{"error": err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, service.ErrMalformedMaze):
		return http.StatusBadRequest
	case errors.Is(err, dmn.ErrSolutionNotFound):
		return http.StatusNotFound
	case errors.Is(err, pathfind.ErrUnreachable),
		errors.Is(err, pathfind.ErrIterationBudget),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled):
		return statusClientClosedRequest
	default:
		return http.StatusInternalServerError
	}
}
