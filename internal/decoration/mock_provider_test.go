package decoration

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"

	divider "github.com/LISSConsulting/LISSTech.Gutter/internal/divider"
	grid "github.com/LISSConsulting/LISSTech.Gutter/internal/grid"
	provider "github.com/LISSConsulting/LISSTech.Gutter/internal/provider"
)

// MockSizeProvider is a mock of SizeProvider interface.
type MockSizeProvider struct {
	ctrl     *gomock.Controller
	recorder *MockSizeProviderMockRecorder
}

// MockSizeProviderMockRecorder is the mock recorder for MockSizeProvider.
type MockSizeProviderMockRecorder struct {
	mock *MockSizeProvider
}

// NewMockSizeProvider creates a new mock instance.
func NewMockSizeProvider(ctrl *gomock.Controller) *MockSizeProvider {
	mock := &MockSizeProvider{ctrl: ctrl}
	mock.recorder = &MockSizeProviderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSizeProvider) EXPECT() *MockSizeProviderMockRecorder {
	return m.recorder
}

// Size mocks base method.
func (m *MockSizeProvider) Size(g *grid.Grid, d divider.Divider, drawable provider.Drawable) int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Size", g, d, drawable)
	ret0, _ := ret[0].(int)
	return ret0
}

// Size indicates an expected call of Size.
func (mr *MockSizeProviderMockRecorder) Size(g, d, drawable interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Size", reflect.TypeOf((*MockSizeProvider)(nil).Size), g, d, drawable)
}

// MockVisibilityProvider is a mock of VisibilityProvider interface.
type MockVisibilityProvider struct {
	ctrl     *gomock.Controller
	recorder *MockVisibilityProviderMockRecorder
}

// MockVisibilityProviderMockRecorder is the mock recorder for MockVisibilityProvider.
type MockVisibilityProviderMockRecorder struct {
	mock *MockVisibilityProvider
}

// NewMockVisibilityProvider creates a new mock instance.
func NewMockVisibilityProvider(ctrl *gomock.Controller) *MockVisibilityProvider {
	mock := &MockVisibilityProvider{ctrl: ctrl}
	mock.recorder = &MockVisibilityProviderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockVisibilityProvider) EXPECT() *MockVisibilityProviderMockRecorder {
	return m.recorder
}

// Visible mocks base method.
func (m *MockVisibilityProvider) Visible(g *grid.Grid, d divider.Divider) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Visible", g, d)
	ret0, _ := ret[0].(bool)
	return ret0
}

// Visible indicates an expected call of Visible.
func (mr *MockVisibilityProviderMockRecorder) Visible(g, d interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Visible", reflect.TypeOf((*MockVisibilityProvider)(nil).Visible), g, d)
}
