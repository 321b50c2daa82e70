package cache

import (
	"fmt"
	"net"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/hbomb79/Reel/pkg/docker"
)

const redisImage = "redis:7-alpine"

func InitialiseDockerRedis(dockerManager docker.DockerManager, config Config, onCrash func(error)) (docker.DockerContainer, error) {
	_, port, err := net.SplitHostPort(config.Address)
	if err != nil {
		return nil, fmt.Errorf("cannot spawn redis: address %q has no port: %w", config.Address, err)
	}

	cmd := []string{"redis-server", "--save", ""}
	if config.Password != "" {
		cmd = append(cmd, "--requirepass", config.Password)
	}

	containerConfig := &container.Config{
		Image:        redisImage,
		Cmd:          cmd,
		ExposedPorts: nat.PortSet{"6379/tcp": struct{}{}},
	}
	hostConfig := &container.HostConfig{
		PortBindings: nat.PortMap{
			"6379/tcp": []nat.PortBinding{{HostIP: "0.0.0.0", HostPort: port}},
		},
	}

	redis := docker.NewDockerContainer("reel-redis", redisImage, containerConfig, hostConfig)
	if err := dockerManager.SpawnContainer(redis); err != nil {
		return nil, err
	}

	docker.NotifyOnCrash(dockerManager, redis, onCrash)
	return redis, nil
}
