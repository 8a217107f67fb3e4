package mocks

import (
	model "github.com/mouse-blink/twins/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// MockReportStore is a mock type for the ReportStore type
type MockReportStore struct {
	mock.Mock
}

type MockReportStore_Expecter struct {
	mock *mock.Mock
}

func (_m *MockReportStore) EXPECT() *MockReportStore_Expecter {
	return &MockReportStore_Expecter{mock: &_m.Mock}
}

// LoadRun provides a mock function with given fields: dir
func (_m *MockReportStore) LoadRun(dir model.Path) (model.RunResult, error) {
	ret := _m.Called(dir)

	if len(ret) == 0 {
		panic("no return value specified for LoadRun")
	}

	var r0 model.RunResult
	var r1 error

	if rf, ok := ret.Get(0).(func(model.Path) (model.RunResult, error)); ok {
		return rf(dir)
	}

	if rf, ok := ret.Get(0).(func(model.Path) model.RunResult); ok {
		r0 = rf(dir)
	} else {
		r0 = ret.Get(0).(model.RunResult)
	}

	if rf, ok := ret.Get(1).(func(model.Path) error); ok {
		r1 = rf(dir)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockReportStore_LoadRun_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'LoadRun'
type MockReportStore_LoadRun_Call struct {
	*mock.Call
}

// LoadRun is a helper method to define mock.On call
//   - dir model.Path
func (_e *MockReportStore_Expecter) LoadRun(dir interface{}) *MockReportStore_LoadRun_Call {
	return &MockReportStore_LoadRun_Call{Call: _e.mock.On("LoadRun", dir)}
}

func (_c *MockReportStore_LoadRun_Call) Run(run func(dir model.Path)) *MockReportStore_LoadRun_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(model.Path))
	})
	return _c
}

func (_c *MockReportStore_LoadRun_Call) Return(_a0 model.RunResult, _a1 error) *MockReportStore_LoadRun_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockReportStore_LoadRun_Call) RunAndReturn(run func(model.Path) (model.RunResult, error)) *MockReportStore_LoadRun_Call {
	_c.Call.Return(run)
	return _c
}

// SaveRun provides a mock function with given fields: dir, result
func (_m *MockReportStore) SaveRun(dir model.Path, result model.RunResult) error {
	ret := _m.Called(dir, result)

	if len(ret) == 0 {
		panic("no return value specified for SaveRun")
	}

	var r0 error

	if rf, ok := ret.Get(0).(func(model.Path, model.RunResult) error); ok {
		r0 = rf(dir, result)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockReportStore_SaveRun_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SaveRun'
type MockReportStore_SaveRun_Call struct {
	*mock.Call
}

// SaveRun is a helper method to define mock.On call
//   - dir model.Path
//   - result model.RunResult
func (_e *MockReportStore_Expecter) SaveRun(dir interface{}, result interface{}) *MockReportStore_SaveRun_Call {
	return &MockReportStore_SaveRun_Call{Call: _e.mock.On("SaveRun", dir, result)}
}

func (_c *MockReportStore_SaveRun_Call) Run(run func(dir model.Path, result model.RunResult)) *MockReportStore_SaveRun_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(model.Path), args[1].(model.RunResult))
	})
	return _c
}

func (_c *MockReportStore_SaveRun_Call) Return(_a0 error) *MockReportStore_SaveRun_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockReportStore_SaveRun_Call) RunAndReturn(run func(model.Path, model.RunResult) error) *MockReportStore_SaveRun_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockReportStore creates a new instance of MockReportStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockReportStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReportStore {
	mock := &MockReportStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
