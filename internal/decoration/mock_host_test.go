package decoration

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"

	geom "github.com/LISSConsulting/LISSTech.Gutter/internal/geom"
	grid "github.com/LISSConsulting/LISSTech.Gutter/internal/grid"
	layout "github.com/LISSConsulting/LISSTech.Gutter/internal/layout"
)

// MockHost is a mock of Host interface.
type MockHost struct {
	ctrl     *gomock.Controller
	recorder *MockHostMockRecorder
}

// MockHostMockRecorder is the mock recorder for MockHost.
type MockHostMockRecorder struct {
	mock *MockHost
}

// NewMockHost creates a new mock instance.
func NewMockHost(ctrl *gomock.Controller) *MockHost {
	mock := &MockHost{ctrl: ctrl}
	mock.recorder = &MockHostMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockHost) EXPECT() *MockHostMockRecorder {
	return m.recorder
}

// Adapter mocks base method.
func (m *MockHost) Adapter() Adapter {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Adapter")
	ret0, _ := ret[0].(Adapter)
	return ret0
}

// Adapter indicates an expected call of Adapter.
func (mr *MockHostMockRecorder) Adapter() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Adapter", reflect.TypeOf((*MockHost)(nil).Adapter))
}

// Children mocks base method.
func (m *MockHost) Children() []ItemView {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Children")
	ret0, _ := ret[0].([]ItemView)
	return ret0
}

// Children indicates an expected call of Children.
func (mr *MockHostMockRecorder) Children() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Children", reflect.TypeOf((*MockHost)(nil).Children))
}

// IsRightToLeft mocks base method.
func (m *MockHost) IsRightToLeft() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsRightToLeft")
	ret0, _ := ret[0].(bool)
	return ret0
}

// IsRightToLeft indicates an expected call of IsRightToLeft.
func (mr *MockHostMockRecorder) IsRightToLeft() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsRightToLeft", reflect.TypeOf((*MockHost)(nil).IsRightToLeft))
}

// LayoutManager mocks base method.
func (m *MockHost) LayoutManager() layout.Manager {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LayoutManager")
	ret0, _ := ret[0].(layout.Manager)
	return ret0
}

// LayoutManager indicates an expected call of LayoutManager.
func (mr *MockHostMockRecorder) LayoutManager() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LayoutManager", reflect.TypeOf((*MockHost)(nil).LayoutManager))
}

// MockAdapter is a mock of Adapter interface.
type MockAdapter struct {
	ctrl     *gomock.Controller
	recorder *MockAdapterMockRecorder
}

// MockAdapterMockRecorder is the mock recorder for MockAdapter.
type MockAdapterMockRecorder struct {
	mock *MockAdapter
}

// NewMockAdapter creates a new mock instance.
func NewMockAdapter(ctrl *gomock.Controller) *MockAdapter {
	mock := &MockAdapter{ctrl: ctrl}
	mock.recorder = &MockAdapterMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAdapter) EXPECT() *MockAdapterMockRecorder {
	return m.recorder
}

// ItemCount mocks base method.
func (m *MockAdapter) ItemCount() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ItemCount")
	ret0, _ := ret[0].(int)
	return ret0
}

// ItemCount indicates an expected call of ItemCount.
func (mr *MockAdapterMockRecorder) ItemCount() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ItemCount", reflect.TypeOf((*MockAdapter)(nil).ItemCount))
}

// Observe mocks base method.
func (m *MockAdapter) Observe(fn func()) func() {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Observe", fn)
	ret0, _ := ret[0].(func())
	return ret0
}

// Observe indicates an expected call of Observe.
func (mr *MockAdapterMockRecorder) Observe(fn interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Observe", reflect.TypeOf((*MockAdapter)(nil).Observe), fn)
}

// MockItemView is a mock of ItemView interface.
type MockItemView struct {
	ctrl     *gomock.Controller
	recorder *MockItemViewMockRecorder
}

// MockItemViewMockRecorder is the mock recorder for MockItemView.
type MockItemViewMockRecorder struct {
	mock *MockItemView
}

// NewMockItemView creates a new mock instance.
func NewMockItemView(ctrl *gomock.Controller) *MockItemView {
	mock := &MockItemView{ctrl: ctrl}
	mock.recorder = &MockItemViewMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockItemView) EXPECT() *MockItemViewMockRecorder {
	return m.recorder
}

// AdapterPosition mocks base method.
func (m *MockItemView) AdapterPosition() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AdapterPosition")
	ret0, _ := ret[0].(int)
	return ret0
}

// AdapterPosition indicates an expected call of AdapterPosition.
func (mr *MockItemViewMockRecorder) AdapterPosition() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AdapterPosition", reflect.TypeOf((*MockItemView)(nil).AdapterPosition))
}

// Bounds mocks base method.
func (m *MockItemView) Bounds() geom.Rect {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Bounds")
	ret0, _ := ret[0].(geom.Rect)
	return ret0
}

// Bounds indicates an expected call of Bounds.
func (mr *MockItemViewMockRecorder) Bounds() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Bounds", reflect.TypeOf((*MockItemView)(nil).Bounds))
}

// Margins mocks base method.
func (m *MockItemView) Margins() geom.Edges {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Margins")
	ret0, _ := ret[0].(geom.Edges)
	return ret0
}

// Margins indicates an expected call of Margins.
func (mr *MockItemViewMockRecorder) Margins() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Margins", reflect.TypeOf((*MockItemView)(nil).Margins))
}

// StaggeredCell mocks base method.
func (m *MockItemView) StaggeredCell() grid.StaggeredCell {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "StaggeredCell")
	ret0, _ := ret[0].(grid.StaggeredCell)
	return ret0
}

// StaggeredCell indicates an expected call of StaggeredCell.
func (mr *MockItemViewMockRecorder) StaggeredCell() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StaggeredCell", reflect.TypeOf((*MockItemView)(nil).StaggeredCell))
}

// Translation mocks base method.
func (m *MockItemView) Translation() (int, int) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Translation")
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(int)
	return ret0, ret1
}

// Translation indicates an expected call of Translation.
func (mr *MockItemViewMockRecorder) Translation() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Translation", reflect.TypeOf((*MockItemView)(nil).Translation))
}
