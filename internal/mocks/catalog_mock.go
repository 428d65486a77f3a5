// Code generated in the style of mockgen for internal/catalog.CatalogStore.
// Hand-maintained since this repository vendors no code generation step.

package mocks

import (
	"context"
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"

	"github.com/nullstride/rtvctl/internal/catalog"
)

// MockCatalogStore is a mock of the CatalogStore interface.
type MockCatalogStore struct {
	ctrl     *gomock.Controller
	recorder *MockCatalogStoreMockRecorder
}

// MockCatalogStoreMockRecorder is the mock recorder for MockCatalogStore.
type MockCatalogStoreMockRecorder struct {
	mock *MockCatalogStore
}

// NewMockCatalogStore creates a new mock instance.
func NewMockCatalogStore(ctrl *gomock.Controller) *MockCatalogStore {
	mock := &MockCatalogStore{ctrl: ctrl}
	mock.recorder = &MockCatalogStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCatalogStore) EXPECT() *MockCatalogStoreMockRecorder {
	return m.recorder
}

// Upsert mocks base method.
func (m *MockCatalogStore) Upsert(ctx context.Context, e catalog.Entry) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Upsert", ctx, e)
	ret0, _ := ret[0].(error)
	return ret0
}

// Upsert indicates an expected call of Upsert.
func (mr *MockCatalogStoreMockRecorder) Upsert(ctx, e interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Upsert", reflect.TypeOf((*MockCatalogStore)(nil).Upsert), ctx, e)
}

// Get mocks base method.
func (m *MockCatalogStore) Get(ctx context.Context, name string) (catalog.Entry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, name)
	ret0, _ := ret[0].(catalog.Entry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockCatalogStoreMockRecorder) Get(ctx, name interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockCatalogStore)(nil).Get), ctx, name)
}

// List mocks base method.
func (m *MockCatalogStore) List(ctx context.Context) ([]catalog.Entry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx)
	ret0, _ := ret[0].([]catalog.Entry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockCatalogStoreMockRecorder) List(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockCatalogStore)(nil).List), ctx)
}

// Close mocks base method.
func (m *MockCatalogStore) Close() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Close")
	ret0, _ := ret[0].(error)
	return ret0
}

// Close indicates an expected call of Close.
func (mr *MockCatalogStoreMockRecorder) Close() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Close", reflect.TypeOf((*MockCatalogStore)(nil).Close))
}
