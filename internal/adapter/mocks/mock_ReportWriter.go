package mocks

import (
	model "github.com/mouse-blink/twins/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// MockReportWriter is a mock type for the ReportWriter type
type MockReportWriter struct {
	mock.Mock
}

type MockReportWriter_Expecter struct {
	mock *mock.Mock
}

func (_m *MockReportWriter) EXPECT() *MockReportWriter_Expecter {
	return &MockReportWriter_Expecter{mock: &_m.Mock}
}

// Write provides a mock function with given fields: dir, result, formats
func (_m *MockReportWriter) Write(dir model.Path, result model.RunResult, formats []string) ([]model.Path, error) {
	ret := _m.Called(dir, result, formats)

	if len(ret) == 0 {
		panic("no return value specified for Write")
	}

	var r0 []model.Path
	var r1 error

	if rf, ok := ret.Get(0).(func(model.Path, model.RunResult, []string) ([]model.Path, error)); ok {
		return rf(dir, result, formats)
	}

	if rf, ok := ret.Get(0).(func(model.Path, model.RunResult, []string) []model.Path); ok {
		r0 = rf(dir, result, formats)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]model.Path)
		}
	}

	if rf, ok := ret.Get(1).(func(model.Path, model.RunResult, []string) error); ok {
		r1 = rf(dir, result, formats)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockReportWriter_Write_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Write'
type MockReportWriter_Write_Call struct {
	*mock.Call
}

// Write is a helper method to define mock.On call
//   - dir model.Path
//   - result model.RunResult
//   - formats []string
func (_e *MockReportWriter_Expecter) Write(dir interface{}, result interface{}, formats interface{}) *MockReportWriter_Write_Call {
	return &MockReportWriter_Write_Call{Call: _e.mock.On("Write", dir, result, formats)}
}

func (_c *MockReportWriter_Write_Call) Run(run func(dir model.Path, result model.RunResult, formats []string)) *MockReportWriter_Write_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(model.Path), args[1].(model.RunResult), args[2].([]string))
	})
	return _c
}

func (_c *MockReportWriter_Write_Call) Return(_a0 []model.Path, _a1 error) *MockReportWriter_Write_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockReportWriter_Write_Call) RunAndReturn(run func(model.Path, model.RunResult, []string) ([]model.Path, error)) *MockReportWriter_Write_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockReportWriter creates a new instance of MockReportWriter. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockReportWriter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReportWriter {
	mock := &MockReportWriter{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
