package internal

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/hbomb79/Reel/internal/api"
	"github.com/hbomb79/Reel/internal/api/auth"
	"github.com/hbomb79/Reel/internal/cache"
	"github.com/hbomb79/Reel/internal/database"
	"github.com/hbomb79/Reel/internal/ffmpeg"
	"github.com/hbomb79/Reel/internal/storage"
	"github.com/hbomb79/Reel/internal/transcode"
	"github.com/hbomb79/Reel/internal/video"
	"github.com/hbomb79/Reel/pkg/docker"
	"github.com/hbomb79/Reel/pkg/logger"
)

var log = logger.Get("Core")

const dockerShutdownTimeout = 10 * time.Second

type RunnableService interface {
	Run(context.Context) error
}

// reelImpl represents the top-level object for the server, and is responsible
// for initialising embedded support services, stores, and the services which
// make up the video pipeline.
type reelImpl struct {
	config        ReelConfig
	dockerManager docker.DockerManager
}

func New(config ReelConfig) *reelImpl {
	log.Emit(logger.DEBUG, "Bootstrapping Reel services (api=%s storage=%s cache=%v)\n", config.Rest.HostAddr, config.Storage.Driver, config.Cache.Enabled)
	return &reelImpl{config: config}
}

// Run will start all of Reel by bringing up all required services and connections, such as:
// - Docker services (if enabled)
// - Database connection and migrations
// - Object store, response cache and media tooling
// - The transcode queue and REST gateway
//
// This function will not return until Reel is stopped.
// To stop Reel, the provided context must be cancelled. Errors from which Reel cannot recover
// will also cause Reel to stop.
func (reel *reelImpl) Run(parent context.Context) error {
	reel.dockerManager = docker.NewDockerManager()
	defer reel.dockerManager.Shutdown(dockerShutdownTimeout)

	ctx, cancel := context.WithCancelCause(parent)
	defer cancel(nil)
	crashHandler := func(label string, err error) {
		log.Emit(logger.FATAL, "Service crash (%s)! %s\n", label, err.Error())
		cancel(fmt.Errorf("%s crashed: %w", label, err))
	}

	log.Emit(logger.NEW, "Initialising Docker services...\n")
	if err := reel.initialiseDockerServices(reel.config, crashHandler); err != nil {
		return err
	}

	log.Emit(logger.NEW, "Connecting to database...\n")
	db := database.New()
	if err := db.Connect(ctx, reel.config.Database); err != nil {
		return err
	}
	defer db.Close()

	log.Emit(logger.NEW, "Connecting to object store (%s)...\n", reel.config.Storage.Driver)
	objects, err := storage.New(ctx, reel.config.Storage)
	if err != nil {
		return fmt.Errorf("failed to construct object store: %w", err)
	}

	responseCache, err := cache.New(ctx, reel.config.Cache)
	if err != nil {
		return fmt.Errorf("failed to construct response cache: %w", err)
	}
	if closer, ok := responseCache.(io.Closer); ok {
		defer closer.Close()
	}

	thumbnailer, err := ffmpeg.NewThumbnailer(reel.config.Ffmpeg, reel.config.Thumbnail)
	if err != nil {
		return fmt.Errorf("failed to construct thumbnailer: %w", err)
	}

	transcodeService, err := transcode.New(reel.config.Transcode)
	if err != nil {
		return fmt.Errorf("failed to construct transcode service: %w", err)
	}

	videoService := video.NewService(
		reel.config.VideoConfig(),
		video.NewStore(db.GetSqlxDb()),
		objects,
		ffmpeg.NewProber(reel.config.Ffmpeg),
		thumbnailer,
		ffmpeg.NewTranscoder(reel.config.Ffmpeg),
		transcodeService,
		responseCache,
	)
	if err := videoService.RecoverStaleTranscodes(ctx); err != nil {
		return fmt.Errorf("failed to recover interrupted transcodes: %w", err)
	}

	restGateway := api.NewRestGateway(
		&reel.config.Rest,
		auth.New(reel.config.Auth),
		videoService,
		reel.config.MaxUploadBytes(),
	)

	wg := &sync.WaitGroup{}
	reel.spawnAsyncService(ctx, wg, transcodeService, "transcode-service", crashHandler)
	reel.spawnAsyncService(ctx, wg, restGateway, "rest-gateway", crashHandler)
	log.Emit(logger.SUCCESS, "Reel services spawned!\n")

	wg.Wait()

	// Parent context cancellation is a normal shutdown, not an error
	if cause := context.Cause(ctx); cause != ctx.Err() {
		return cause
	}

	return nil
}

// spawnAsyncService will run the provided service as it's own
// go-routine, ensuring that the Reel service waitgroup is updated correctly
func (reel *reelImpl) spawnAsyncService(ctx context.Context, wg *sync.WaitGroup, service RunnableService, serviceLabel string, crashHandler func(string, error)) {
	log.Emit(logger.NEW, "Spawning %s\n", serviceLabel)
	wg.Add(1)

	go func(wg *sync.WaitGroup, label string, crash func(string, error)) {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				crash(label, fmt.Errorf("panic %v", r))
			}
		}()

		if err := service.Run(ctx); err != nil {
			crash(label, err)
		}
	}(wg, serviceLabel, crashHandler)
}

// initialiseDockerServices will initialise the supporting services
// for Reel (Postgres, MinIO, Redis) which are enabled in the config
func (reel *reelImpl) initialiseDockerServices(config ReelConfig, crashHandler func(string, error)) error {
	if config.Services.EnablePostgres {
		log.Emit(logger.INFO, "Initialising embedded database...\n")
		if _, err := database.InitialiseDockerDatabase(
			reel.dockerManager,
			config.Database,
			func(err error) { crashHandler("docker-postgres", err) },
		); err != nil {
			return err
		}
	}

	if config.Services.EnableMinio {
		log.Emit(logger.INFO, "Initialising embedded MinIO object store...\n")
		if _, err := storage.InitialiseDockerMinio(
			reel.dockerManager,
			config.Storage,
			func(err error) { crashHandler("docker-minio", err) },
		); err != nil {
			return err
		}
	}

	if config.Services.EnableRedis {
		log.Emit(logger.INFO, "Initialising embedded Redis cache...\n")
		if _, err := cache.InitialiseDockerRedis(
			reel.dockerManager,
			config.Cache,
			func(err error) { crashHandler("docker-redis", err) },
		); err != nil {
			return err
		}
	}

	return nil
}
