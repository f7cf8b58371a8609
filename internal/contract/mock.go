package contract

import (
	"context"

	"github.com/courtside/courtside/schema"
	"github.com/stretchr/testify/mock"
)

// MockRecordSource is a testify mock of RecordSource.
type MockRecordSource struct {
	mock.Mock
}

var _ RecordSource = &MockRecordSource{} // Compile-time check

// LoadGames mocks the LoadGames method.
func (m *MockRecordSource) LoadGames(ctx context.Context) ([]schema.GameRecord, error) {
	args := m.Called(ctx)
	if games := args.Get(0); games != nil {
		return games.([]schema.GameRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

// LoadTeams mocks the LoadTeams method.
func (m *MockRecordSource) LoadTeams(ctx context.Context) ([]schema.TeamRecord, error) {
	args := m.Called(ctx)
	if teams := args.Get(0); teams != nil {
		return teams.([]schema.TeamRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

// Describe mocks the Describe method.
func (m *MockRecordSource) Describe() string {
	args := m.Called()
	return args.String(0)
}
