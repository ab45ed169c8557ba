package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/tecodan/sharetribe/internal/pkg/constants"
	"github.com/tecodan/sharetribe/internal/pkg/database"
	"github.com/tecodan/sharetribe/internal/pkg/logger"
	"github.com/tecodan/sharetribe/internal/pkg/models"
	natspkg "github.com/tecodan/sharetribe/internal/pkg/nats"
	"github.com/tecodan/sharetribe/services/preauth"
)

// ErrProcessNotFound is returned when no process handle matches the token
var ErrProcessNotFound = errors.New("process not found")

// WorkerGW implements the background job boundary: jobs travel over NATS,
// process handles and per-key execution locks live in redis
type WorkerGW struct {
	producer    *natspkg.Producer
	redisClient *database.RedisClient
}

// NewWorkerGW creates a new worker gateway
func NewWorkerGW(natsClient *natspkg.Client, redisClient *database.RedisClient) preauth.WorkerGW {
	return &WorkerGW{
		producer:    natspkg.NewProducer(natsClient),
		redisClient: redisClient,
	}
}

// Enqueue registers a pending process handle, publishes the job, and returns
// the handle immediately without waiting for completion
func (g *WorkerGW) Enqueue(ctx context.Context, job *models.WorkerJob) (*models.ProcessHandle, error) {
	job.Token = uuid.New().String()

	handle := &models.ProcessHandle{Token: job.Token}
	if err := g.storeHandle(ctx, handle); err != nil {
		return nil, err
	}

	if err := g.producer.Publish(constants.SubjectPreauthJobs, job); err != nil {
		return nil, fmt.Errorf("failed to publish worker job: %w", err)
	}

	logger.Info("Enqueued worker job",
		logger.String("op", job.Op),
		logger.String("transaction_id", job.TransactionID.String()),
		logger.String("token", job.Token))

	return handle, nil
}

// GetProcess returns the current handle for a token
func (g *WorkerGW) GetProcess(ctx context.Context, token string) (*models.ProcessHandle, error) {
	data, err := g.redisClient.Get(ctx, constants.KeyPrefixProcess+token)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrProcessNotFound
		}
		return nil, fmt.Errorf("failed to get process handle: %w", err)
	}

	var handle models.ProcessHandle
	if err := json.Unmarshal([]byte(data), &handle); err != nil {
		return nil, fmt.Errorf("failed to parse process handle: %w", err)
	}

	return &handle, nil
}

// CompleteProcess stores the finished job's result payload on its handle
func (g *WorkerGW) CompleteProcess(ctx context.Context, token string, payload []byte) error {
	handle := &models.ProcessHandle{
		Token:     token,
		Completed: true,
		Result:    payload,
	}
	return g.storeHandle(ctx, handle)
}

// AcquireJobLock takes the per-key execution lock for a job. No step may run
// twice concurrently for the same (community, transaction, op) key.
func (g *WorkerGW) AcquireJobLock(ctx context.Context, job *models.WorkerJob) (bool, error) {
	acquired, err := g.redisClient.SetNX(ctx, constants.KeyPrefixJobLock+job.DedupKey(), job.Token, constants.JobLockTTL)
	if err != nil {
		return false, fmt.Errorf("failed to acquire job lock: %w", err)
	}
	return acquired, nil
}

// ReleaseJobLock releases the per-key execution lock
func (g *WorkerGW) ReleaseJobLock(ctx context.Context, job *models.WorkerJob) error {
	if err := g.redisClient.Delete(ctx, constants.KeyPrefixJobLock+job.DedupKey()); err != nil {
		return fmt.Errorf("failed to release job lock: %w", err)
	}
	return nil
}

func (g *WorkerGW) storeHandle(ctx context.Context, handle *models.ProcessHandle) error {
	data, err := json.Marshal(handle)
	if err != nil {
		return fmt.Errorf("failed to marshal process handle: %w", err)
	}

	if err := g.redisClient.Set(ctx, constants.KeyPrefixProcess+handle.Token, data, constants.ProcessTTL); err != nil {
		return fmt.Errorf("failed to store process handle: %w", err)
	}

	return nil
}
