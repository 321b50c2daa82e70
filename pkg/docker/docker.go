package docker

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/client"
	"github.com/docker/docker/errdefs"
	"github.com/hbomb79/Reel/pkg/logger"
)

var dockerLogger = logger.Get("Docker")

/**
 * The docker package spawns the supporting services Reel can use during local
 * development (PostgreSQL, MinIO, Redis) via the Docker SDK.
 */

const DOCKER_NETWORK = "reel_network"

type DockerManager interface {
	SpawnContainer(DockerContainer) error
	Shutdown(timeout time.Duration)
	CloseContainer(name string, timeout time.Duration)
	WaitForContainer(container DockerContainer, statuses ...ContainerStatus) (ContainerStatus, error)
}

type statusWatcher interface {
	watch(func(DockerContainer, ContainerStatus))
}

type docker struct {
	*sync.Mutex
	changed    *sync.Cond
	containers map[string]DockerContainer
	cli        *client.Client
	ctx        context.Context
	ctxCancel  context.CancelFunc
}

// NewDockerManager returns a manager which connects to the docker daemon lazily,
// when the first container is spawned. This allows Reel to run on hosts without
// docker when no development services are enabled.
func NewDockerManager() DockerManager {
	ctx, ctxCancel := context.WithCancel(context.Background())
	mu := &sync.Mutex{}
	return &docker{
		Mutex:      mu,
		changed:    sync.NewCond(mu),
		containers: make(map[string]DockerContainer),
		ctx:        ctx,
		ctxCancel:  ctxCancel,
	}
}

func (docker *docker) SpawnContainer(container DockerContainer) error {
	if err := docker.connect(); err != nil {
		return err
	}

	docker.Lock()
	if _, ok := docker.containers[container.Label()]; ok {
		docker.Unlock()
		return fmt.Errorf("cannot spawn container %s as label is already in use", container)
	}
	docker.containers[container.Label()] = container
	docker.Unlock()

	if w, ok := container.(statusWatcher); ok {
		w.watch(docker.onStatusChange)
	}

	if err := container.Start(docker.ctx, docker.cli); err != nil {
		_ = container.Close(docker.ctx, docker.cli, time.Second*10)
		return err
	}

	if err := docker.cli.NetworkConnect(docker.ctx, DOCKER_NETWORK, container.ID(), nil); err != nil {
		dockerLogger.Emit(logger.ERROR, "Failed to connect container %s to network: %s\n", container, err.Error())
	}

	dockerLogger.Emit(logger.INFO, "Waiting for container %s to come UP\n", container)
	if _, err := docker.WaitForContainer(container, UP); err != nil {
		dockerLogger.Emit(logger.ERROR, "Container %s failed to come online: %v\n", container, err.Error())
		return err
	}

	dockerLogger.Emit(logger.SUCCESS, "Container %s is UP!\n", container)
	return nil
}

func (docker *docker) Shutdown(timeout time.Duration) {
	docker.Lock()
	containers := make([]DockerContainer, 0, len(docker.containers))
	for _, c := range docker.containers {
		containers = append(containers, c)
	}
	docker.Unlock()

	for _, c := range containers {
		docker.closeContainer(c, timeout)
	}

	if docker.cli != nil {
		_ = docker.cli.NetworkRemove(docker.ctx, DOCKER_NETWORK)
		_ = docker.cli.Close()
	}
	docker.ctxCancel()
}

func (docker *docker) CloseContainer(name string, timeout time.Duration) {
	docker.Lock()
	container, ok := docker.containers[name]
	docker.Unlock()
	if !ok {
		return
	}

	docker.closeContainer(container, timeout)
}

// WaitForContainer blocks until the container reaches one of the statuses given, returning
// the status observed. Waiting on a container which becomes DEAD returns an error unless
// DEAD was one of the statuses requested.
func (docker *docker) WaitForContainer(container DockerContainer, statuses ...ContainerStatus) (ContainerStatus, error) {
	docker.Lock()
	defer docker.Unlock()

	for {
		current := container.Status()
		if slices.Contains(statuses, current) {
			return current, nil
		}
		if current == DEAD {
			return DEAD, fmt.Errorf("wait on container %s aborted as container has closed", container)
		}

		docker.changed.Wait()
	}
}

func (docker *docker) connect() error {
	docker.Lock()
	defer docker.Unlock()
	if docker.cli != nil {
		return nil
	}

	c, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return fmt.Errorf("failed to construct docker client: %w", err)
	}

	if _, err := c.NetworkCreate(docker.ctx, DOCKER_NETWORK, types.NetworkCreate{Driver: "bridge"}); err != nil && !errdefs.IsConflict(err) {
		_ = c.Close()
		return fmt.Errorf("failed to create docker network %s: %w", DOCKER_NETWORK, err)
	}

	docker.cli = c
	return nil
}

func (docker *docker) closeContainer(cont DockerContainer, timeout time.Duration) {
	dockerLogger.Emit(logger.STOP, "Closing container %s...\n", cont)
	if err := cont.Close(docker.ctx, docker.cli, timeout); err != nil {
		dockerLogger.Emit(logger.ERROR, "Failed to close container %s: %v\n", cont, err)
	}
}

func (docker *docker) onStatusChange(container DockerContainer, status ContainerStatus) {
	dockerLogger.Emit(logger.INFO, "Container %s - Status change: %s\n", container, status)

	docker.Lock()
	docker.changed.Broadcast()
	docker.Unlock()
}

func (c *dockerContainer) watch(fn func(DockerContainer, ContainerStatus)) {
	c.Lock()
	defer c.Unlock()
	c.onStatus = fn
}

// NotifyOnCrash calls onCrash from a new goroutine if the container given
// crashes. Containers that are closed intentionally never trigger it.
func NotifyOnCrash(manager DockerManager, container DockerContainer, onCrash func(error)) {
	go func() {
		st, err := manager.WaitForContainer(container, CRASHED, DEAD)
		if err != nil || st != CRASHED {
			return
		}

		onCrash(fmt.Errorf("container %s has crashed", container))
	}()
}
