package mocks

import (
	controller "github.com/mouse-blink/twins/internal/controller"
	model "github.com/mouse-blink/twins/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// MockUI is a mock type for the UI type
type MockUI struct {
	mock.Mock
}

type MockUI_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUI) EXPECT() *MockUI_Expecter {
	return &MockUI_Expecter{mock: &_m.Mock}
}

// Close provides a mock function with given fields:
func (_m *MockUI) Close() {
	_m.Called()
}

// MockUI_Close_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Close'
type MockUI_Close_Call struct {
	*mock.Call
}

// Close is a helper method to define mock.On call
func (_e *MockUI_Expecter) Close() *MockUI_Close_Call {
	return &MockUI_Close_Call{Call: _e.mock.On("Close")}
}

func (_c *MockUI_Close_Call) Run(run func()) *MockUI_Close_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockUI_Close_Call) Return() *MockUI_Close_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockUI_Close_Call) RunAndReturn(run func()) *MockUI_Close_Call {
	_c.Call.Return(run)
	return _c
}

// DisplayAssignmentCompleted provides a mock function with given fields: matrix
func (_m *MockUI) DisplayAssignmentCompleted(matrix model.SimilarityMatrix) {
	_m.Called(matrix)
}

// MockUI_DisplayAssignmentCompleted_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DisplayAssignmentCompleted'
type MockUI_DisplayAssignmentCompleted_Call struct {
	*mock.Call
}

// DisplayAssignmentCompleted is a helper method to define mock.On call
//   - matrix model.SimilarityMatrix
func (_e *MockUI_Expecter) DisplayAssignmentCompleted(matrix interface{}) *MockUI_DisplayAssignmentCompleted_Call {
	return &MockUI_DisplayAssignmentCompleted_Call{Call: _e.mock.On("DisplayAssignmentCompleted", matrix)}
}

func (_c *MockUI_DisplayAssignmentCompleted_Call) Run(run func(matrix model.SimilarityMatrix)) *MockUI_DisplayAssignmentCompleted_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(model.SimilarityMatrix))
	})
	return _c
}

func (_c *MockUI_DisplayAssignmentCompleted_Call) Return() *MockUI_DisplayAssignmentCompleted_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockUI_DisplayAssignmentCompleted_Call) RunAndReturn(run func(model.SimilarityMatrix)) *MockUI_DisplayAssignmentCompleted_Call {
	_c.Call.Return(run)
	return _c
}

// DisplayAssignmentStarted provides a mock function with given fields: assignment, students
func (_m *MockUI) DisplayAssignmentStarted(assignment model.AssignmentID, students int) {
	_m.Called(assignment, students)
}

// MockUI_DisplayAssignmentStarted_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DisplayAssignmentStarted'
type MockUI_DisplayAssignmentStarted_Call struct {
	*mock.Call
}

// DisplayAssignmentStarted is a helper method to define mock.On call
//   - assignment model.AssignmentID
//   - students int
func (_e *MockUI_Expecter) DisplayAssignmentStarted(assignment interface{}, students interface{}) *MockUI_DisplayAssignmentStarted_Call {
	return &MockUI_DisplayAssignmentStarted_Call{Call: _e.mock.On("DisplayAssignmentStarted", assignment, students)}
}

func (_c *MockUI_DisplayAssignmentStarted_Call) Run(run func(assignment model.AssignmentID, students int)) *MockUI_DisplayAssignmentStarted_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(model.AssignmentID), args[1].(int))
	})
	return _c
}

func (_c *MockUI_DisplayAssignmentStarted_Call) Return() *MockUI_DisplayAssignmentStarted_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockUI_DisplayAssignmentStarted_Call) RunAndReturn(run func(model.AssignmentID, int)) *MockUI_DisplayAssignmentStarted_Call {
	_c.Call.Return(run)
	return _c
}

// DisplayConcurrencyInfo provides a mock function with given fields: workers, submissions
func (_m *MockUI) DisplayConcurrencyInfo(workers int, submissions int) {
	_m.Called(workers, submissions)
}

// MockUI_DisplayConcurrencyInfo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DisplayConcurrencyInfo'
type MockUI_DisplayConcurrencyInfo_Call struct {
	*mock.Call
}

// DisplayConcurrencyInfo is a helper method to define mock.On call
//   - workers int
//   - submissions int
func (_e *MockUI_Expecter) DisplayConcurrencyInfo(workers interface{}, submissions interface{}) *MockUI_DisplayConcurrencyInfo_Call {
	return &MockUI_DisplayConcurrencyInfo_Call{Call: _e.mock.On("DisplayConcurrencyInfo", workers, submissions)}
}

func (_c *MockUI_DisplayConcurrencyInfo_Call) Run(run func(workers int, submissions int)) *MockUI_DisplayConcurrencyInfo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(int), args[1].(int))
	})
	return _c
}

func (_c *MockUI_DisplayConcurrencyInfo_Call) Return() *MockUI_DisplayConcurrencyInfo_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockUI_DisplayConcurrencyInfo_Call) RunAndReturn(run func(int, int)) *MockUI_DisplayConcurrencyInfo_Call {
	_c.Call.Return(run)
	return _c
}

// DisplayCorpus provides a mock function with given fields: groups, diagnostics
func (_m *MockUI) DisplayCorpus(groups []model.AssignmentGroup, diagnostics []model.Diagnostic) error {
	ret := _m.Called(groups, diagnostics)

	if len(ret) == 0 {
		panic("no return value specified for DisplayCorpus")
	}

	var r0 error

	if rf, ok := ret.Get(0).(func([]model.AssignmentGroup, []model.Diagnostic) error); ok {
		r0 = rf(groups, diagnostics)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockUI_DisplayCorpus_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DisplayCorpus'
type MockUI_DisplayCorpus_Call struct {
	*mock.Call
}

// DisplayCorpus is a helper method to define mock.On call
//   - groups []model.AssignmentGroup
//   - diagnostics []model.Diagnostic
func (_e *MockUI_Expecter) DisplayCorpus(groups interface{}, diagnostics interface{}) *MockUI_DisplayCorpus_Call {
	return &MockUI_DisplayCorpus_Call{Call: _e.mock.On("DisplayCorpus", groups, diagnostics)}
}

func (_c *MockUI_DisplayCorpus_Call) Run(run func(groups []model.AssignmentGroup, diagnostics []model.Diagnostic)) *MockUI_DisplayCorpus_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].([]model.AssignmentGroup), args[1].([]model.Diagnostic))
	})
	return _c
}

func (_c *MockUI_DisplayCorpus_Call) Return(_a0 error) *MockUI_DisplayCorpus_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockUI_DisplayCorpus_Call) RunAndReturn(run func([]model.AssignmentGroup, []model.Diagnostic) error) *MockUI_DisplayCorpus_Call {
	_c.Call.Return(run)
	return _c
}

// DisplayResult provides a mock function with given fields: result, artifacts
func (_m *MockUI) DisplayResult(result model.RunResult, artifacts []model.Path) error {
	ret := _m.Called(result, artifacts)

	if len(ret) == 0 {
		panic("no return value specified for DisplayResult")
	}

	var r0 error

	if rf, ok := ret.Get(0).(func(model.RunResult, []model.Path) error); ok {
		r0 = rf(result, artifacts)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockUI_DisplayResult_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DisplayResult'
type MockUI_DisplayResult_Call struct {
	*mock.Call
}

// DisplayResult is a helper method to define mock.On call
//   - result model.RunResult
//   - artifacts []model.Path
func (_e *MockUI_Expecter) DisplayResult(result interface{}, artifacts interface{}) *MockUI_DisplayResult_Call {
	return &MockUI_DisplayResult_Call{Call: _e.mock.On("DisplayResult", result, artifacts)}
}

func (_c *MockUI_DisplayResult_Call) Run(run func(result model.RunResult, artifacts []model.Path)) *MockUI_DisplayResult_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(model.RunResult), args[1].([]model.Path))
	})
	return _c
}

func (_c *MockUI_DisplayResult_Call) Return(_a0 error) *MockUI_DisplayResult_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockUI_DisplayResult_Call) RunAndReturn(run func(model.RunResult, []model.Path) error) *MockUI_DisplayResult_Call {
	_c.Call.Return(run)
	return _c
}

// DisplayUpcomingAssignments provides a mock function with given fields: total
func (_m *MockUI) DisplayUpcomingAssignments(total int) {
	_m.Called(total)
}

// MockUI_DisplayUpcomingAssignments_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DisplayUpcomingAssignments'
type MockUI_DisplayUpcomingAssignments_Call struct {
	*mock.Call
}

// DisplayUpcomingAssignments is a helper method to define mock.On call
//   - total int
func (_e *MockUI_Expecter) DisplayUpcomingAssignments(total interface{}) *MockUI_DisplayUpcomingAssignments_Call {
	return &MockUI_DisplayUpcomingAssignments_Call{Call: _e.mock.On("DisplayUpcomingAssignments", total)}
}

func (_c *MockUI_DisplayUpcomingAssignments_Call) Run(run func(total int)) *MockUI_DisplayUpcomingAssignments_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(int))
	})
	return _c
}

func (_c *MockUI_DisplayUpcomingAssignments_Call) Return() *MockUI_DisplayUpcomingAssignments_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockUI_DisplayUpcomingAssignments_Call) RunAndReturn(run func(int)) *MockUI_DisplayUpcomingAssignments_Call {
	_c.Call.Return(run)
	return _c
}

// Start provides a mock function with given fields: options
func (_m *MockUI) Start(options ...controller.StartOption) error {
	_va := make([]interface{}, len(options))
	for _i := range options {
		_va[_i] = options[_i]
	}

	var _ca []interface{}
	_ca = append(_ca, _va...)
	ret := _m.Called(_ca...)

	if len(ret) == 0 {
		panic("no return value specified for Start")
	}

	var r0 error

	if rf, ok := ret.Get(0).(func(...controller.StartOption) error); ok {
		r0 = rf(options...)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockUI_Start_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Start'
type MockUI_Start_Call struct {
	*mock.Call
}

// Start is a helper method to define mock.On call
//   - options ...controller.StartOption
func (_e *MockUI_Expecter) Start(options ...interface{}) *MockUI_Start_Call {
	return &MockUI_Start_Call{Call: _e.mock.On("Start", append([]interface{}{}, options...)...)}
}

func (_c *MockUI_Start_Call) Run(run func(options ...controller.StartOption)) *MockUI_Start_Call {
	_c.Call.Run(func(args mock.Arguments) {
		variadicArgs := make([]controller.StartOption, len(args)-0)
		for i, a := range args[0:] {
			if a != nil {
				variadicArgs[i] = a.(controller.StartOption)
			}
		}
		run(variadicArgs...)
	})
	return _c
}

func (_c *MockUI_Start_Call) Return(_a0 error) *MockUI_Start_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockUI_Start_Call) RunAndReturn(run func(...controller.StartOption) error) *MockUI_Start_Call {
	_c.Call.Return(run)
	return _c
}

// Wait provides a mock function with given fields:
func (_m *MockUI) Wait() {
	_m.Called()
}

// MockUI_Wait_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Wait'
type MockUI_Wait_Call struct {
	*mock.Call
}

// Wait is a helper method to define mock.On call
func (_e *MockUI_Expecter) Wait() *MockUI_Wait_Call {
	return &MockUI_Wait_Call{Call: _e.mock.On("Wait")}
}

func (_c *MockUI_Wait_Call) Run(run func()) *MockUI_Wait_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockUI_Wait_Call) Return() *MockUI_Wait_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockUI_Wait_Call) RunAndReturn(run func()) *MockUI_Wait_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockUI creates a new instance of MockUI. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	mock := &MockUI{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
