package storage

import (
	"fmt"
	"net"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/hbomb79/Reel/pkg/docker"
)

const minioImage = "minio/minio:latest"

// InitialiseDockerMinio spawns a MinIO server listening on the port of the configured
// endpoint, using the configured access/secret key as the root credentials.
func InitialiseDockerMinio(dockerManager docker.DockerManager, config Config, onCrash func(error)) (docker.DockerContainer, error) {
	_, port, err := net.SplitHostPort(config.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("cannot spawn MinIO: endpoint %q has no port: %w", config.Endpoint, err)
	}

	containerConfig := &container.Config{
		Image: minioImage,
		Cmd:   []string{"server", "/data"},
		Env: []string{
			fmt.Sprintf("MINIO_ROOT_USER=%s", config.AccessKey),
			fmt.Sprintf("MINIO_ROOT_PASSWORD=%s", config.SecretKey),
		},
		ExposedPorts: nat.PortSet{"9000/tcp": struct{}{}},
	}
	hostConfig := &container.HostConfig{
		PortBindings: nat.PortMap{
			"9000/tcp": []nat.PortBinding{{HostIP: "0.0.0.0", HostPort: port}},
		},
	}

	minio := docker.NewDockerContainer("reel-minio", minioImage, containerConfig, hostConfig)
	if err := dockerManager.SpawnContainer(minio); err != nil {
		return nil, err
	}

	docker.NotifyOnCrash(dockerManager, minio, onCrash)
	return minio, nil
}
