package repositories

import (
	"context"

	"github.com/dmateos23/tennis-tour-system/models"
)

// Mock-реализации репозиториев для тестов сервисного слоя. Поведение
// задаётся через *Func-поля; вызовы записываются для проверок.

var _ PlayerRepository = (*MockPlayerRepository)(nil)

type MockPlayerRepository struct {
	CreateFunc    func(ctx context.Context, player *models.Player) error
	GetByIDFunc   func(ctx context.Context, id string) (*models.Player, error)
	ListFunc      func(ctx context.Context) ([]models.Player, error)
	UpdateFunc    func(ctx context.Context, player *models.Player) error
	DeleteFunc    func(ctx context.Context, id string) error
	DeleteAllFunc func(ctx context.Context, exec SQLExecutor) error

	CreateCalls []*models.Player
	DeleteCalls []string
}

func (m *MockPlayerRepository) Create(ctx context.Context, player *models.Player) error {
	m.CreateCalls = append(m.CreateCalls, player)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, player)
	}
	return nil
}

func (m *MockPlayerRepository) GetByID(ctx context.Context, id string) (*models.Player, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, ErrPlayerNotFound
}

func (m *MockPlayerRepository) List(ctx context.Context) ([]models.Player, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.Player{}, nil
}

func (m *MockPlayerRepository) Update(ctx context.Context, player *models.Player) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, player)
	}
	return nil
}

func (m *MockPlayerRepository) Delete(ctx context.Context, id string) error {
	m.DeleteCalls = append(m.DeleteCalls, id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockPlayerRepository) DeleteAll(ctx context.Context, exec SQLExecutor) error {
	if m.DeleteAllFunc != nil {
		return m.DeleteAllFunc(ctx, exec)
	}
	return nil
}

var _ TournamentRepository = (*MockTournamentRepository)(nil)

type MockTournamentRepository struct {
	CreateFunc          func(ctx context.Context, tournament *models.Tournament) error
	GetByIDFunc         func(ctx context.Context, id string) (*models.Tournament, error)
	ListFunc            func(ctx context.Context, filter ListTournamentsFilter) ([]models.Tournament, error)
	UpdateFunc          func(ctx context.Context, tournament *models.Tournament) error
	DeleteFunc          func(ctx context.Context, id string) error
	UpdatePosterKeyFunc func(ctx context.Context, tournamentID string, posterKey *string) error
	DeleteAllFunc       func(ctx context.Context, exec SQLExecutor) error

	CreateCalls []*models.Tournament
	UpdateCalls []*models.Tournament
}

func (m *MockTournamentRepository) Create(ctx context.Context, tournament *models.Tournament) error {
	m.CreateCalls = append(m.CreateCalls, tournament)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tournament)
	}
	return nil
}

func (m *MockTournamentRepository) GetByID(ctx context.Context, id string) (*models.Tournament, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, ErrTournamentNotFound
}

func (m *MockTournamentRepository) List(ctx context.Context, filter ListTournamentsFilter) ([]models.Tournament, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return []models.Tournament{}, nil
}

func (m *MockTournamentRepository) Update(ctx context.Context, tournament *models.Tournament) error {
	m.UpdateCalls = append(m.UpdateCalls, tournament)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tournament)
	}
	return nil
}

func (m *MockTournamentRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockTournamentRepository) UpdatePosterKey(ctx context.Context, tournamentID string, posterKey *string) error {
	if m.UpdatePosterKeyFunc != nil {
		return m.UpdatePosterKeyFunc(ctx, tournamentID, posterKey)
	}
	return nil
}

func (m *MockTournamentRepository) DeleteAll(ctx context.Context, exec SQLExecutor) error {
	if m.DeleteAllFunc != nil {
		return m.DeleteAllFunc(ctx, exec)
	}
	return nil
}

var _ MatchRepository = (*MockMatchRepository)(nil)

type MockMatchRepository struct {
	CreateFunc    func(ctx context.Context, match *models.Match) error
	GetByIDFunc   func(ctx context.Context, id string) (*models.Match, error)
	ListFunc      func(ctx context.Context, filter ListMatchesFilter) ([]models.Match, error)
	UpdateFunc    func(ctx context.Context, match *models.Match) error
	DeleteFunc    func(ctx context.Context, id string) error
	DeleteAllFunc func(ctx context.Context, exec SQLExecutor) error

	CreateCalls []*models.Match
	UpdateCalls []*models.Match
	DeleteCalls []string
}

func (m *MockMatchRepository) Create(ctx context.Context, match *models.Match) error {
	m.CreateCalls = append(m.CreateCalls, match)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, match)
	}
	return nil
}

func (m *MockMatchRepository) GetByID(ctx context.Context, id string) (*models.Match, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, ErrMatchNotFound
}

func (m *MockMatchRepository) List(ctx context.Context, filter ListMatchesFilter) ([]models.Match, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return []models.Match{}, nil
}

func (m *MockMatchRepository) Update(ctx context.Context, match *models.Match) error {
	m.UpdateCalls = append(m.UpdateCalls, match)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, match)
	}
	return nil
}

func (m *MockMatchRepository) Delete(ctx context.Context, id string) error {
	m.DeleteCalls = append(m.DeleteCalls, id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockMatchRepository) DeleteAll(ctx context.Context, exec SQLExecutor) error {
	if m.DeleteAllFunc != nil {
		return m.DeleteAllFunc(ctx, exec)
	}
	return nil
}

var _ UserRepository = (*MockUserRepository)(nil)

type MockUserRepository struct {
	CreateFunc     func(ctx context.Context, user *models.User) error
	GetByEmailFunc func(ctx context.Context, email string) (*models.User, error)

	CreateCalls []*models.User
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	m.CreateCalls = append(m.CreateCalls, user)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, ErrUserNotFound
}
