package mocks

import (
	context "context"

	adapter "github.com/mouse-blink/twins/internal/adapter"
	model "github.com/mouse-blink/twins/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// MockCorpusSource is a mock type for the CorpusSource type
type MockCorpusSource struct {
	mock.Mock
}

type MockCorpusSource_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCorpusSource) EXPECT() *MockCorpusSource_Expecter {
	return &MockCorpusSource_Expecter{mock: &_m.Mock}
}

// Load provides a mock function with given fields: ctx, root, filter
func (_m *MockCorpusSource) Load(ctx context.Context, root model.Path, filter adapter.CorpusFilter) ([]model.Submission, error) {
	ret := _m.Called(ctx, root, filter)

	if len(ret) == 0 {
		panic("no return value specified for Load")
	}

	var r0 []model.Submission
	var r1 error

	if rf, ok := ret.Get(0).(func(context.Context, model.Path, adapter.CorpusFilter) ([]model.Submission, error)); ok {
		return rf(ctx, root, filter)
	}

	if rf, ok := ret.Get(0).(func(context.Context, model.Path, adapter.CorpusFilter) []model.Submission); ok {
		r0 = rf(ctx, root, filter)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]model.Submission)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.Path, adapter.CorpusFilter) error); ok {
		r1 = rf(ctx, root, filter)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockCorpusSource_Load_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Load'
type MockCorpusSource_Load_Call struct {
	*mock.Call
}

// Load is a helper method to define mock.On call
//   - ctx context.Context
//   - root model.Path
//   - filter adapter.CorpusFilter
func (_e *MockCorpusSource_Expecter) Load(ctx interface{}, root interface{}, filter interface{}) *MockCorpusSource_Load_Call {
	return &MockCorpusSource_Load_Call{Call: _e.mock.On("Load", ctx, root, filter)}
}

func (_c *MockCorpusSource_Load_Call) Run(run func(ctx context.Context, root model.Path, filter adapter.CorpusFilter)) *MockCorpusSource_Load_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(model.Path), args[2].(adapter.CorpusFilter))
	})
	return _c
}

func (_c *MockCorpusSource_Load_Call) Return(_a0 []model.Submission, _a1 error) *MockCorpusSource_Load_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCorpusSource_Load_Call) RunAndReturn(run func(context.Context, model.Path, adapter.CorpusFilter) ([]model.Submission, error)) *MockCorpusSource_Load_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockCorpusSource creates a new instance of MockCorpusSource. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockCorpusSource(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCorpusSource {
	mock := &MockCorpusSource{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
