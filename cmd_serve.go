package main

import (
	"context"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/api"
	"github.com/beka-birhanu/vinom-pathfinder/api/auth"
	api_i "github.com/beka-birhanu/vinom-pathfinder/api/i"
	solveapi "github.com/beka-birhanu/vinom-pathfinder/api/solve"
	"github.com/beka-birhanu/vinom-pathfinder/config"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/cache"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/encoding/pb"
	applog "github.com/beka-birhanu/vinom-pathfinder/infrastruture/log"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/repo"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/sortedstorage"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/token"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const connectTimeout = 30 * time.Second

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the background job worker",
		Long: `Connects to MongoDB and Redis using the environment configuration, then
serves /api/v1 and drains the job queue until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	if config.Envs.JWTSecret == "" {
		return ErrMissingSecret
	}

	initCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	mongoClient, err := a.initMongo(initCtx)
	if err != nil {
		return err
	}
	defer func() {
		_ = mongoClient.Disconnect(context.WithoutCancel(ctx))
	}()

	redisClient, err := a.initRedis(initCtx)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	solutionRepo := repo.NewSolutionRepo(mongoClient, config.Envs.DBName, "solutions")
	if err := solutionRepo.EnsureIndexes(initCtx); err != nil {
		return fmt.Errorf("creating indexes: %w", err)
	}
	a.logger.Info("Solution repository initialized")

	solverLogger, err := a.newLogger(applog.Solver)
	if err != nil {
		return err
	}
	solver, err := service.NewMazeSolver(service.SolverConfig{
		Cache:         cache.NewRedisResultCache(redisClient, config.Envs.CacheTTLSeconds),
		Logger:        solverLogger,
		Options:       optionsFromConfig(),
		SearchTimeout: config.Envs.SearchTimeout,
	})
	if err != nil {
		return err
	}
	a.logger.Info("Maze solver initialized")

	jobsLogger, err := a.newLogger(applog.Jobs)
	if err != nil {
		return err
	}
	jobs, err := service.NewJobService(
		solutionRepo,
		sortedstorage.NewRedisSortedQueue(redisClient, config.Envs.QueueTTLSeconds),
		solver,
		jobsLogger,
		service.JobOptions{Workers: config.Envs.Workers, PollInterval: config.Envs.PollInterval},
	)
	if err != nil {
		return err
	}
	a.logger.Info("Job service initialized")

	httpLogger, err := a.newLogger(applog.HTTP)
	if err != nil {
		return err
	}
	controller, err := solveapi.NewSolveController(solver, jobs, &pb.Protobuf{}, httpLogger)
	if err != nil {
		return err
	}

	gin.SetMode(config.Envs.GinMode)
	router := api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{controller},
		AuthorizationMiddleware: auth.Authoriz(token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)),
	})
	a.logger.Info("Router initialized", zap.Int("port", config.Envs.RESTPort))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return router.Run(gctx) })
	g.Go(func() error { return jobs.Work(gctx) })
	return g.Wait()
}

func (a *app) initMongo(ctx context.Context) (*mongo.Client, error) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongodb ping failed: %w", err)
	}
	a.logger.Info("Connected to MongoDB")
	return client, nil
}

func (a *app) initRedis(ctx context.Context) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
		DB:       config.Envs.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	a.logger.Info("Connected to Redis")
	return client, nil
}
