// Package mocks provides testify mocks for the application ports.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/filein/sidedock/internal/application/port"
	"github.com/filein/sidedock/internal/domain/entity"
	"github.com/filein/sidedock/internal/domain/geometry"
)

// MockHostWindow mocks port.HostWindow.
type MockHostWindow struct {
	mock.Mock
}

func NewMockHostWindow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHostWindow {
	m := &MockHostWindow{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockHostWindow) CurrentHostRect(ctx context.Context) (geometry.Rect, bool) {
	args := m.Called(ctx)
	return args.Get(0).(geometry.Rect), args.Bool(1)
}

// MockPanelSurface mocks port.PanelSurface.
type MockPanelSurface struct {
	mock.Mock
}

func NewMockPanelSurface(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPanelSurface {
	m := &MockPanelSurface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPanelSurface) MoveTo(ctx context.Context, pos geometry.Point) {
	m.Called(ctx, pos)
}

// MockDockConfigWriter mocks port.DockConfigWriter.
type MockDockConfigWriter struct {
	mock.Mock
}

func NewMockDockConfigWriter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDockConfigWriter {
	m := &MockDockConfigWriter{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockDockConfigWriter) SaveDockState(ctx context.Context, change port.DockChange) error {
	args := m.Called(ctx, change)
	return args.Error(0)
}

// MockDockSnapshotStore mocks port.DockSnapshotStore.
type MockDockSnapshotStore struct {
	mock.Mock
}

func NewMockDockSnapshotStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDockSnapshotStore {
	m := &MockDockSnapshotStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockDockSnapshotStore) Save(ctx context.Context, snapshot *entity.DockSnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockDockSnapshotStore) Latest(ctx context.Context) (*entity.DockSnapshot, error) {
	args := m.Called(ctx)
	snap, _ := args.Get(0).(*entity.DockSnapshot)
	return snap, args.Error(1)
}

func (m *MockDockSnapshotStore) List(ctx context.Context, limit int) ([]*entity.DockSnapshot, error) {
	args := m.Called(ctx, limit)
	snaps, _ := args.Get(0).([]*entity.DockSnapshot)
	return snaps, args.Error(1)
}

// MockExtensionCatalog mocks port.ExtensionCatalog.
type MockExtensionCatalog struct {
	mock.Mock
}

func NewMockExtensionCatalog(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockExtensionCatalog {
	m := &MockExtensionCatalog{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockExtensionCatalog) List(ctx context.Context) ([]entity.ExtensionDescriptor, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]entity.ExtensionDescriptor)
	return list, args.Error(1)
}

var (
	_ port.HostWindow        = (*MockHostWindow)(nil)
	_ port.PanelSurface      = (*MockPanelSurface)(nil)
	_ port.DockConfigWriter  = (*MockDockConfigWriter)(nil)
	_ port.DockSnapshotStore = (*MockDockSnapshotStore)(nil)
	_ port.ExtensionCatalog  = (*MockExtensionCatalog)(nil)
)
