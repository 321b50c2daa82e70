package videos

import (
	"time"

	"github.com/google/uuid"
	"github.com/hbomb79/Reel/internal/transcode"
)

type (
	videoResponse struct {
		Video any `json:"video"`
	}

	transcodeRequest struct {
		Preset string `json:"preset" validate:"omitempty,max=32,printascii"`
	}

	transcodeTaskDto struct {
		ID         uuid.UUID  `json:"id"`
		Preset     string     `json:"preset"`
		Status     string     `json:"status"`
		Progress   float64    `json:"progress"`
		Error      *string    `json:"error,omitempty"`
		CreatedAt  time.Time  `json:"createdAt"`
		StartedAt  *time.Time `json:"startedAt,omitempty"`
		FinishedAt *time.Time `json:"finishedAt,omitempty"`
	}
)

func newTranscodeTaskDto(task *transcode.Task) transcodeTaskDto {
	dto := transcodeTaskDto{
		ID:         task.ID(),
		Preset:     task.Label(),
		Status:     task.Status().Name(),
		Progress:   task.Progress(),
		CreatedAt:  task.CreatedAt(),
		StartedAt:  task.StartedAt(),
		FinishedAt: task.FinishedAt(),
	}
	if err := task.Err(); err != nil {
		msg := err.Error()
		dto.Error = &msg
	}

	return dto
}
