package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dmoralesf/clinicore/internal/config"
	"github.com/dmoralesf/clinicore/internal/domain"
	"github.com/dmoralesf/clinicore/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var pushingUsers sync.Map

type UserRepo interface {
	FindByRoles(ctx context.Context, roles []domain.Role, includeInactive bool) ([]domain.User, error)
}

// Service pushes synthetic pulse-oximeter readings for every active patient
// to the realtime vitals store on a fixed interval. Push failures are logged
// and retried on the next tick, never fatal.
type Service struct {
	url          string
	userRepo     UserRepo
	client       clients.HTTPClientI
	workerPool   WorkerPoolI
	pushInterval time.Duration
}

func New(cfg *config.Config, userRepo UserRepo, client clients.HTTPClientI) *Service {
	return &Service{
		url:          cfg.TelemetryAddress,
		userRepo:     userRepo,
		client:       client,
		workerPool:   NewWorkerPool(10),
		pushInterval: cfg.TelemetryInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Telemetry service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.pushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping service")
			return
		case <-ticker.C:
			s.pushReadings(ctx)
		}
	}
}

func (s *Service) pushReadings(ctx context.Context) {
	patients, err := s.userRepo.FindByRoles(ctx,
		[]domain.Role{domain.RolePatient, domain.RolePrivilegedPatient}, false)
	if err != nil {
		zap.L().Error("Failed to fetch patients for telemetry", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, patient := range patients {
		patient := patient

		if _, loaded := pushingUsers.LoadOrStore(patient.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer pushingUsers.Delete(patient.ID)
				return s.pushReading(ctx, patient.ID)
			})
			if err != nil {
				pushingUsers.Delete(patient.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error pushing readings", zap.Error(err))
	}
}

func (s *Service) pushReading(ctx context.Context, userID int) error {
	reading := newReading(userID)

	body, err := json.Marshal(reading)
	if err != nil {
		return fmt.Errorf("failed to marshal reading: %w", err)
	}
	url := fmt.Sprintf("%s/users/%d/measurements/%s.json", s.url, userID, reading.ID)

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, err := s.put(ctx, url, body)
			if err == nil && statusCode < http.StatusBadRequest {
				return nil
			}
			if attempt < maxRetries {
				time.Sleep(retryInterval * time.Duration(attempt))
				continue
			}
			if err != nil {
				return fmt.Errorf("failed to push reading for user %d after %d retries: %w", userID, maxRetries, err)
			}
			return fmt.Errorf("failed to push reading for user %d after %d retries: status %d", userID, maxRetries, statusCode)
		}
	}
	return nil
}

func (s *Service) put(ctx context.Context, url string, body []byte) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}

// newReading fabricates a plausible resting measurement: 60-100 bpm,
// 95-99% SpO2.
func newReading(userID int) domain.VitalsReading {
	return domain.VitalsReading{
		ID:        uuid.NewString(),
		UserID:    userID,
		HeartRate: 60 + rand.Intn(41),
		SpO2:      95 + rand.Intn(5),
		TakenAt:   time.Now().UTC(),
	}
}
