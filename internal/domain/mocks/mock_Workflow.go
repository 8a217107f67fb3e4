package mocks

import (
	context "context"

	domain "github.com/mouse-blink/twins/internal/domain"
	mock "github.com/stretchr/testify/mock"
)

// MockWorkflow is a mock type for the Workflow type
type MockWorkflow struct {
	mock.Mock
}

type MockWorkflow_Expecter struct {
	mock *mock.Mock
}

func (_m *MockWorkflow) EXPECT() *MockWorkflow_Expecter {
	return &MockWorkflow_Expecter{mock: &_m.Mock}
}

// Check provides a mock function with given fields: ctx, args
func (_m *MockWorkflow) Check(ctx context.Context, args domain.CheckArgs) error {
	ret := _m.Called(ctx, args)

	if len(ret) == 0 {
		panic("no return value specified for Check")
	}

	var r0 error

	if rf, ok := ret.Get(0).(func(context.Context, domain.CheckArgs) error); ok {
		r0 = rf(ctx, args)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockWorkflow_Check_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Check'
type MockWorkflow_Check_Call struct {
	*mock.Call
}

// Check is a helper method to define mock.On call
//   - ctx context.Context
//   - args domain.CheckArgs
func (_e *MockWorkflow_Expecter) Check(ctx interface{}, args interface{}) *MockWorkflow_Check_Call {
	return &MockWorkflow_Check_Call{Call: _e.mock.On("Check", ctx, args)}
}

func (_c *MockWorkflow_Check_Call) Run(run func(ctx context.Context, args domain.CheckArgs)) *MockWorkflow_Check_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.CheckArgs))
	})
	return _c
}

func (_c *MockWorkflow_Check_Call) Return(_a0 error) *MockWorkflow_Check_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockWorkflow_Check_Call) RunAndReturn(run func(context.Context, domain.CheckArgs) error) *MockWorkflow_Check_Call {
	_c.Call.Return(run)
	return _c
}

// List provides a mock function with given fields: ctx, args
func (_m *MockWorkflow) List(ctx context.Context, args domain.ListArgs) error {
	ret := _m.Called(ctx, args)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	var r0 error

	if rf, ok := ret.Get(0).(func(context.Context, domain.ListArgs) error); ok {
		r0 = rf(ctx, args)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockWorkflow_List_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'List'
type MockWorkflow_List_Call struct {
	*mock.Call
}

// List is a helper method to define mock.On call
//   - ctx context.Context
//   - args domain.ListArgs
func (_e *MockWorkflow_Expecter) List(ctx interface{}, args interface{}) *MockWorkflow_List_Call {
	return &MockWorkflow_List_Call{Call: _e.mock.On("List", ctx, args)}
}

func (_c *MockWorkflow_List_Call) Run(run func(ctx context.Context, args domain.ListArgs)) *MockWorkflow_List_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.ListArgs))
	})
	return _c
}

func (_c *MockWorkflow_List_Call) Return(_a0 error) *MockWorkflow_List_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockWorkflow_List_Call) RunAndReturn(run func(context.Context, domain.ListArgs) error) *MockWorkflow_List_Call {
	_c.Call.Return(run)
	return _c
}

// View provides a mock function with given fields: args
func (_m *MockWorkflow) View(args domain.ViewArgs) error {
	ret := _m.Called(args)

	if len(ret) == 0 {
		panic("no return value specified for View")
	}

	var r0 error

	if rf, ok := ret.Get(0).(func(domain.ViewArgs) error); ok {
		r0 = rf(args)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockWorkflow_View_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'View'
type MockWorkflow_View_Call struct {
	*mock.Call
}

// View is a helper method to define mock.On call
//   - args domain.ViewArgs
func (_e *MockWorkflow_Expecter) View(args interface{}) *MockWorkflow_View_Call {
	return &MockWorkflow_View_Call{Call: _e.mock.On("View", args)}
}

func (_c *MockWorkflow_View_Call) Run(run func(args domain.ViewArgs)) *MockWorkflow_View_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(domain.ViewArgs))
	})
	return _c
}

func (_c *MockWorkflow_View_Call) Return(_a0 error) *MockWorkflow_View_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockWorkflow_View_Call) RunAndReturn(run func(domain.ViewArgs) error) *MockWorkflow_View_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockWorkflow creates a new instance of MockWorkflow. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	mock := &MockWorkflow{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
