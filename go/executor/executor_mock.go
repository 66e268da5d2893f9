// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package executor is a generated GoMock package.
package executor

import (
	reflect "reflect"

	mockvm "github.com/Fantom-foundation/MockVM/go/mockvm"
	vmhooks "github.com/Fantom-foundation/MockVM/go/vmhooks"
	gomock "go.uber.org/mock/gomock"
)

// MockExecutor is a mock of Executor interface.
type MockExecutor struct {
	ctrl     *gomock.Controller
	recorder *MockExecutorMockRecorder
}

// MockExecutorMockRecorder is the mock recorder for MockExecutor.
type MockExecutorMockRecorder struct {
	mock *MockExecutor
}

// NewMockExecutor creates a new mock instance.
func NewMockExecutor(ctrl *gomock.Controller) *MockExecutor {
	mock := &MockExecutor{ctrl: ctrl}
	mock.recorder = &MockExecutorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockExecutor) EXPECT() *MockExecutorMockRecorder {
	return m.recorder
}

// NewInstance mocks base method.
func (m *MockExecutor) NewInstance(arg0 vmhooks.VMHooks, arg1 []byte, arg2 CompilationOptions) (Instance, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "NewInstance", arg0, arg1, arg2)
	ret0, _ := ret[0].(Instance)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// NewInstance indicates an expected call of NewInstance.
func (mr *MockExecutorMockRecorder) NewInstance(arg0, arg1, arg2 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NewInstance", reflect.TypeOf((*MockExecutor)(nil).NewInstance), arg0, arg1, arg2)
}

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

// Call mocks base method.
func (m *MockInstance) Call(arg0 string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Call", arg0)
	ret0, _ := ret[0].(error)
	return ret0
}

// Call indicates an expected call of Call.
func (mr *MockInstanceMockRecorder) Call(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Call", reflect.TypeOf((*MockInstance)(nil).Call), arg0)
}

// Clean mocks base method.
func (m *MockInstance) Clean() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Clean")
}

// Clean indicates an expected call of Clean.
func (mr *MockInstanceMockRecorder) Clean() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Clean", reflect.TypeOf((*MockInstance)(nil).Clean))
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

// GetExportedFunctionNames mocks base method.
func (m *MockInstance) GetExportedFunctionNames() []string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetExportedFunctionNames")
	ret0, _ := ret[0].([]string)
	return ret0
}

// GetExportedFunctionNames indicates an expected call of GetExportedFunctionNames.
func (mr *MockInstanceMockRecorder) GetExportedFunctionNames() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetExportedFunctionNames", reflect.TypeOf((*MockInstance)(nil).GetExportedFunctionNames))
}

// GetPointsLimit mocks base method.
func (m *MockInstance) GetPointsLimit() uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetPointsLimit")
	ret0, _ := ret[0].(uint64)
	return ret0
}

// GetPointsLimit indicates an expected call of GetPointsLimit.
func (mr *MockInstanceMockRecorder) GetPointsLimit() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetPointsLimit", reflect.TypeOf((*MockInstance)(nil).GetPointsLimit))
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

// HasFunction mocks base method.
func (m *MockInstance) HasFunction(arg0 string) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HasFunction", arg0)
	ret0, _ := ret[0].(bool)
	return ret0
}

// HasFunction indicates an expected call of HasFunction.
func (mr *MockInstanceMockRecorder) HasFunction(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HasFunction", reflect.TypeOf((*MockInstance)(nil).HasFunction), arg0)
}

// MemGrow mocks base method.
func (m *MockInstance) MemGrow(arg0 uint32) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MemGrow", arg0)
	ret0, _ := ret[0].(error)
	return ret0
}

// MemGrow indicates an expected call of MemGrow.
func (mr *MockInstanceMockRecorder) MemGrow(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MemGrow", reflect.TypeOf((*MockInstance)(nil).MemGrow), arg0)
}

// MemLength mocks base method.
func (m *MockInstance) MemLength() uint32 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MemLength")
	ret0, _ := ret[0].(uint32)
	return ret0
}

// MemLength indicates an expected call of MemLength.
func (mr *MockInstanceMockRecorder) MemLength() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MemLength", reflect.TypeOf((*MockInstance)(nil).MemLength))
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

// Reset mocks base method.
func (m *MockInstance) Reset() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Reset")
	ret0, _ := ret[0].(bool)
	return ret0
}

// Reset indicates an expected call of Reset.
func (mr *MockInstanceMockRecorder) Reset() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Reset", reflect.TypeOf((*MockInstance)(nil).Reset))
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

// SetPointsLimit mocks base method.
func (m *MockInstance) SetPointsLimit(arg0 uint64) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetPointsLimit", arg0)
}

// SetPointsLimit indicates an expected call of SetPointsLimit.
func (mr *MockInstanceMockRecorder) SetPointsLimit(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetPointsLimit", reflect.TypeOf((*MockInstance)(nil).SetPointsLimit), arg0)
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
