package docker

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/hbomb79/Reel/pkg/logger"
)

type ContainerStatus int

const (
	// Container struct instance has just been created
	INIT ContainerStatus = iota

	// Container image has been pulled to local docker daemon, but the container has not yet been created
	PULLED

	// Container has been created from a previously PULLED image
	CREATED

	// Container is UP and working normally
	UP

	// Container has CRASHED
	CRASHED

	// Container is being closed intentionally, next status should always be DOWN
	CLOSING

	// Container is DOWN (intentionally closed)
	DOWN

	// Container has been removed
	DEAD
)

func (e ContainerStatus) String() string {
	return []string{"INIT", "PULLED", "CREATED", "UP", "CRASHED", "CLOSING", "DOWN", "DEAD"}[e]
}

type pullEvent struct {
	Status   string `json:"status"`
	Error    string `json:"error"`
	Progress string `json:"progress"`
}

type DockerContainer interface {
	// Start pulls the image and creates + starts a container from it. Once started,
	// the container's logs are followed in the background; a container which exits
	// without being closed is reported as CRASHED.
	Start(context.Context, client.APIClient) error

	// Close stops (if running) and removes the container.
	Close(context.Context, client.APIClient, time.Duration) error

	Label() string
	ID() string
	Status() ContainerStatus
}

type dockerContainer struct {
	sync.Mutex
	label             string
	imageID           string
	containerID       string
	status            ContainerStatus
	containerConf     *container.Config
	containerHostConf *container.HostConfig
	onStatus          func(DockerContainer, ContainerStatus)
}

// NewDockerContainer creates a container description which can later be started by
// a DockerManager.
func NewDockerContainer(label string, image string, conf *container.Config, hostConf *container.HostConfig) DockerContainer {
	return &dockerContainer{
		imageID:           image,
		containerConf:     conf,
		containerHostConf: hostConf,
		status:            INIT,
		label:             label,
	}
}

func (c *dockerContainer) Start(ctx context.Context, cli client.APIClient) error {
	if c.Status() != INIT {
		return fmt.Errorf("cannot start container %s based on image %v as status is invalid", c, c.imageID)
	}

	out, err := cli.ImagePull(ctx, c.imageID, image.PullOptions{})
	if err != nil {
		return fmt.Errorf("failed to pull image %v for container %s: %w", c.imageID, c, err)
	}
	defer out.Close()

	eventStream := json.NewDecoder(out)
	for {
		var ev pullEvent
		if err := eventStream.Decode(&ev); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return fmt.Errorf("failed to read image pull output for %s: %w", c, err)
		}

		c.logPullEvent(&ev)
	}
	c.setStatus(PULLED)

	resp, err := cli.ContainerCreate(ctx, c.containerConf, c.containerHostConf, nil, nil, c.label)
	if err != nil {
		return fmt.Errorf("failed to create container for %s: %w", c, err)
	}
	c.Lock()
	c.containerID = resp.ID
	c.Unlock()
	c.setStatus(CREATED)

	if err := cli.ContainerStart(ctx, resp.ID, container.StartOptions{}); err != nil {
		return fmt.Errorf("failed to start container for %s: %w", c, err)
	}
	c.setStatus(UP)

	go c.followLogs(ctx, cli)
	return nil
}

func (c *dockerContainer) Close(ctx context.Context, cli client.APIClient, timeout time.Duration) error {
	if c.Status() == DEAD {
		return nil
	}

	if c.canStop() {
		c.setStatus(CLOSING)
		timeoutSeconds := int(timeout.Seconds())
		if err := cli.ContainerStop(ctx, c.ID(), container.StopOptions{Timeout: &timeoutSeconds}); err != nil {
			return fmt.Errorf("failed to stop container %s: %w", c, err)
		}

		c.setStatus(DOWN)
	}

	if c.canRemove() {
		if err := cli.ContainerRemove(ctx, c.ID(), container.RemoveOptions{}); err != nil {
			return fmt.Errorf("failed to remove container %s: %w", c, err)
		}
	}
	c.setStatus(DEAD)

	return nil
}

func (c *dockerContainer) ID() string {
	c.Lock()
	defer c.Unlock()
	return c.containerID
}

func (c *dockerContainer) Label() string { return c.label }

func (c *dockerContainer) Status() ContainerStatus {
	c.Lock()
	defer c.Unlock()
	return c.status
}

func (c *dockerContainer) String() string {
	id := c.ID()
	if id == "" {
		return fmt.Sprintf("%v[...]", c.label)
	}

	return fmt.Sprintf("%v[%v]", c.label, id[:10])
}

func (c *dockerContainer) canStop() bool {
	st := c.Status()
	return st == CLOSING || st == CREATED || st == UP || st == CRASHED
}

func (c *dockerContainer) canRemove() bool {
	return c.canStop() || c.Status() == DOWN
}

func (c *dockerContainer) setStatus(stat ContainerStatus) {
	c.Lock()
	if c.status == DEAD {
		c.Unlock()
		return
	}
	c.status = stat
	notify := c.onStatus
	c.Unlock()

	if notify != nil {
		notify(c, stat)
	}
}

func (c *dockerContainer) logPullEvent(ev *pullEvent) {
	switch {
	case ev.Error != "":
		dockerLogger.Emit(logger.ERROR, "%s: %s\n", c, ev.Error)
	case ev.Progress != "":
		dockerLogger.Emit(logger.VERBOSE, "%s: %s\n", c, ev.Progress)
	case ev.Status != "":
		dockerLogger.Emit(logger.DEBUG, "%s: %s\n", c, ev.Status)
	}
}

// followLogs streams the container output to the logger until the container
// stops. If the container was not closed by us, it has crashed.
func (c *dockerContainer) followLogs(ctx context.Context, cli client.APIClient) {
	reader, err := cli.ContainerLogs(ctx, c.ID(), container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Follow:     true,
	})
	if err != nil {
		c.setStatus(CRASHED)
		return
	}
	defer reader.Close()

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		if c.Status() != UP {
			break
		}

		dockerLogger.Emit(logger.VERBOSE, "%s: %s\n", c, scanner.Bytes())
	}

	if st := c.Status(); st == UP {
		c.setStatus(CRASHED)
	}
}
