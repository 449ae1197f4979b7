package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/nourix/protocol-coach/internal/domain"
	"github.com/nourix/protocol-coach/internal/langfuse"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) SetError(err error) {
	m.err = err
}

// MockWeightsStore is an in-memory implementation of feedback.WeightsStore
type MockWeightsStore struct {
	mu      sync.Mutex
	weights map[string]map[string]float64
	err     error
}

func NewMockWeightsStore() *MockWeightsStore {
	return &MockWeightsStore{
		weights: make(map[string]map[string]float64),
	}
}

func (m *MockWeightsStore) Get(ctx context.Context, userKey string) (map[string]float64, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.weights[userKey]
	if !ok {
		return nil, nil
	}
	out := make(map[string]float64, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out, nil
}

func (m *MockWeightsStore) Update(ctx context.Context, userKey string, fn func(map[string]float64) map[string]float64) (map[string]float64, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	updated := fn(m.weights[userKey])
	m.weights[userKey] = updated
	out := make(map[string]float64, len(updated))
	for k, v := range updated {
		out[k] = v
	}
	return out, nil
}

// MockFoodRepository is a mock implementation of FoodRepository
type MockFoodRepository struct {
	foods []domain.Food
	err   error
}

func (m *MockFoodRepository) LoadAll(ctx context.Context) ([]*domain.Food, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*domain.Food, len(m.foods))
	for i := range m.foods {
		out[i] = &m.foods[i]
	}
	return out, nil
}

func (m *MockFoodRepository) GetByKey(ctx context.Context, key string) (*domain.Food, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.foods {
		if m.foods[i].Key == key {
			return &m.foods[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockFoodRepository) List(ctx context.Context, filter domain.FoodFilter) ([]domain.Food, error) {
	if m.err != nil {
		return nil, m.err
	}
	// The mock ignores filters and returns the configured page.
	return append([]domain.Food(nil), m.foods...), nil
}

// MockCoach is a mock implementation of llm.CoachLLM
type MockCoach struct {
	response    string
	err         error
	lastContext string
}

func (m *MockCoach) Explain(ctx context.Context, planContext string) (string, error) {
	m.lastContext = planContext
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

// MockLangfuseClient is a mock implementation of langfuse.Client
type MockLangfuseClient struct {
	enabled bool
	scores  []langfuse.ScoreInput
}

func (m *MockLangfuseClient) IsEnabled() bool {
	return m.enabled
}

func (m *MockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	return "trace-id", nil
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scores = append(m.scores, in)
	return nil
}
