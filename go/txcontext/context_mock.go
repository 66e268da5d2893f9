// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package txcontext is a generated GoMock package.
package txcontext

import (
	reflect "reflect"

	mockvm "github.com/Fantom-foundation/MockVM/go/mockvm"
	gomock "go.uber.org/mock/gomock"
)

// MockInstance is a mock of Instance interface.
type MockInstance struct {
	ctrl     *gomock.Controller
	recorder *MockInstanceMockRecorder
}

// MockInstanceMockRecorder is the mock recorder for MockInstance.
type MockInstanceMockRecorder struct {
	mock *MockInstance
}

// NewMockInstance creates a new mock instance.
func NewMockInstance(ctrl *gomock.Controller) *MockInstance {
	mock := &MockInstance{ctrl: ctrl}
	mock.recorder = &MockInstanceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockInstance) EXPECT() *MockInstanceMockRecorder {
	return m.recorder
}

// MemLoad mocks base method.
func (m *MockInstance) MemLoad(arg0 uint32, arg1 uint32) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MemLoad", arg0, arg1)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// MemLoad indicates an expected call of MemLoad.
func (mr *MockInstanceMockRecorder) MemLoad(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MemLoad", reflect.TypeOf((*MockInstance)(nil).MemLoad), arg0, arg1)
}

// MemStore mocks base method.
func (m *MockInstance) MemStore(arg0 uint32, arg1 []byte) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MemStore", arg0, arg1)
	ret0, _ := ret[0].(error)
	return ret0
}

// MemStore indicates an expected call of MemStore.
func (mr *MockInstanceMockRecorder) MemStore(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MemStore", reflect.TypeOf((*MockInstance)(nil).MemStore), arg0, arg1)
}

// GetPointsUsed mocks base method.
func (m *MockInstance) GetPointsUsed() uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetPointsUsed")
	ret0, _ := ret[0].(uint64)
	return ret0
}

// GetPointsUsed indicates an expected call of GetPointsUsed.
func (mr *MockInstanceMockRecorder) GetPointsUsed() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetPointsUsed", reflect.TypeOf((*MockInstance)(nil).GetPointsUsed))
}

// SetPointsUsed mocks base method.
func (m *MockInstance) SetPointsUsed(arg0 uint64) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetPointsUsed", arg0)
}

// SetPointsUsed indicates an expected call of SetPointsUsed.
func (mr *MockInstanceMockRecorder) SetPointsUsed(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetPointsUsed", reflect.TypeOf((*MockInstance)(nil).SetPointsUsed), arg0)
}

// GetBreakpointValue mocks base method.
func (m *MockInstance) GetBreakpointValue() mockvm.BreakpointValue {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBreakpointValue")
	ret0, _ := ret[0].(mockvm.BreakpointValue)
	return ret0
}

// GetBreakpointValue indicates an expected call of GetBreakpointValue.
func (mr *MockInstanceMockRecorder) GetBreakpointValue() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBreakpointValue", reflect.TypeOf((*MockInstance)(nil).GetBreakpointValue))
}

// SetBreakpointValue mocks base method.
func (m *MockInstance) SetBreakpointValue(arg0 mockvm.BreakpointValue) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetBreakpointValue", arg0)
}

// SetBreakpointValue indicates an expected call of SetBreakpointValue.
func (mr *MockInstanceMockRecorder) SetBreakpointValue(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetBreakpointValue", reflect.TypeOf((*MockInstance)(nil).SetBreakpointValue), arg0)
}

// MockDispatcher is a mock of Dispatcher interface.
type MockDispatcher struct {
	ctrl     *gomock.Controller
	recorder *MockDispatcherMockRecorder
}

// MockDispatcherMockRecorder is the mock recorder for MockDispatcher.
type MockDispatcherMockRecorder struct {
	mock *MockDispatcher
}

// NewMockDispatcher creates a new mock instance.
func NewMockDispatcher(ctrl *gomock.Controller) *MockDispatcher {
	mock := &MockDispatcher{ctrl: ctrl}
	mock.recorder = &MockDispatcherMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDispatcher) EXPECT() *MockDispatcherMockRecorder {
	return m.recorder
}

// ExecuteSyncCall mocks base method.
func (m *MockDispatcher) ExecuteSyncCall(arg0 *TxContext, arg1 *mockvm.TxInput) mockvm.TxResult {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExecuteSyncCall", arg0, arg1)
	ret0, _ := ret[0].(mockvm.TxResult)
	return ret0
}

// ExecuteSyncCall indicates an expected call of ExecuteSyncCall.
func (mr *MockDispatcherMockRecorder) ExecuteSyncCall(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExecuteSyncCall", reflect.TypeOf((*MockDispatcher)(nil).ExecuteSyncCall), arg0, arg1)
}

// DeployContract mocks base method.
func (m *MockDispatcher) DeployContract(arg0 *TxContext, arg1 *mockvm.TxInput, arg2 []byte, arg3 []byte) mockvm.TxResult {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeployContract", arg0, arg1, arg2, arg3)
	ret0, _ := ret[0].(mockvm.TxResult)
	return ret0
}

// DeployContract indicates an expected call of DeployContract.
func (mr *MockDispatcherMockRecorder) DeployContract(arg0, arg1, arg2, arg3 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeployContract", reflect.TypeOf((*MockDispatcher)(nil).DeployContract), arg0, arg1, arg2, arg3)
}

// UpgradeContract mocks base method.
func (m *MockDispatcher) UpgradeContract(arg0 *TxContext, arg1 *mockvm.TxInput, arg2 []byte, arg3 []byte) mockvm.TxResult {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpgradeContract", arg0, arg1, arg2, arg3)
	ret0, _ := ret[0].(mockvm.TxResult)
	return ret0
}

// UpgradeContract indicates an expected call of UpgradeContract.
func (mr *MockDispatcherMockRecorder) UpgradeContract(arg0, arg1, arg2, arg3 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpgradeContract", reflect.TypeOf((*MockDispatcher)(nil).UpgradeContract), arg0, arg1, arg2, arg3)
}
