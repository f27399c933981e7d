package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"github.com/civicpulse/civicpulse-cli/internal/core/domain"
	"github.com/civicpulse/civicpulse-cli/internal/core/ports"
)

// MockGateway is a mock implementation of ports.Gateway.
type MockGateway struct {
	mock.Mock
}

func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

func (m *MockGateway) Get(ctx context.Context, path string, out any) error {
	args := m.Called(ctx, path, out)
	return args.Error(0)
}

func (m *MockGateway) Post(ctx context.Context, path string, body any, out any) error {
	args := m.Called(ctx, path, body, out)
	return args.Error(0)
}

// RespondJSON builds a Run callback that decodes payload into the
// out argument, mimicking a successful backend response.
func RespondJSON(payload string) func(args mock.Arguments) {
	return func(args mock.Arguments) {
		out := args.Get(len(args) - 1)
		if out == nil {
			return
		}
		_ = json.Unmarshal([]byte(payload), out)
	}
}

// MockWidget is a mock implementation of ports.Widget.
type MockWidget struct {
	mock.Mock
}

func NewMockWidget() *MockWidget {
	return &MockWidget{}
}

func (m *MockWidget) Destroy() {
	m.Called()
}

// MockChartRenderer is a mock implementation of ports.ChartRenderer.
type MockChartRenderer struct {
	mock.Mock
}

func NewMockChartRenderer() *MockChartRenderer {
	return &MockChartRenderer{}
}

func (m *MockChartRenderer) Render(spec domain.ChartSpec) (ports.Widget, error) {
	args := m.Called(spec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ports.Widget), args.Error(1)
}

// MockStatPanel is a mock implementation of ports.StatPanel.
type MockStatPanel struct {
	mock.Mock
}

func NewMockStatPanel() *MockStatPanel {
	return &MockStatPanel{}
}

func (m *MockStatPanel) ShowSnapshot(snap domain.DashboardSnapshot) {
	m.Called(snap)
}

// MockPerformanceTable is a mock implementation of ports.PerformanceTable.
type MockPerformanceTable struct {
	mock.Mock
}

func NewMockPerformanceTable() *MockPerformanceTable {
	return &MockPerformanceTable{}
}

func (m *MockPerformanceTable) ShowRows(rows []domain.MinistryPerformanceRow) {
	m.Called(rows)
}

// MockTagCloud is a mock implementation of ports.TagCloud.
type MockTagCloud struct {
	mock.Mock
}

func NewMockTagCloud() *MockTagCloud {
	return &MockTagCloud{}
}

func (m *MockTagCloud) ShowIssues(issues []domain.TopIssue) {
	m.Called(issues)
}

// MockFormView is a mock implementation of ports.FormView.
type MockFormView struct {
	mock.Mock
}

func NewMockFormView() *MockFormView {
	return &MockFormView{}
}

func (m *MockFormView) Busy(label string) {
	m.Called(label)
}

func (m *MockFormView) Ready() {
	m.Called()
}

func (m *MockFormView) ShowSuccess(body string) {
	m.Called(body)
}

func (m *MockFormView) ShowError(body string) {
	m.Called(body)
}

func (m *MockFormView) ShowValidation(message string) {
	m.Called(message)
}

func (m *MockFormView) ResetFields() {
	m.Called()
}

// MockCitizenResolver is a mock implementation of ports.CitizenResolver.
type MockCitizenResolver struct {
	mock.Mock
}

func NewMockCitizenResolver() *MockCitizenResolver {
	return &MockCitizenResolver{}
}

func (m *MockCitizenResolver) Resolve(ctx context.Context, name, phone, district string) (domain.Citizen, error) {
	args := m.Called(ctx, name, phone, district)
	return args.Get(0).(domain.Citizen), args.Error(1)
}
