package mocks

import (
	sitter "github.com/smacker/go-tree-sitter"
	mock "github.com/stretchr/testify/mock"
)

// MockPythonAdapter is a mock type for the PythonAdapter type
type MockPythonAdapter struct {
	mock.Mock
}

type MockPythonAdapter_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPythonAdapter) EXPECT() *MockPythonAdapter_Expecter {
	return &MockPythonAdapter_Expecter{mock: &_m.Mock}
}

// Parse provides a mock function with given fields: filename, src
func (_m *MockPythonAdapter) Parse(filename string, src []byte) (*sitter.Tree, error) {
	ret := _m.Called(filename, src)

	if len(ret) == 0 {
		panic("no return value specified for Parse")
	}

	var r0 *sitter.Tree
	var r1 error

	if rf, ok := ret.Get(0).(func(string, []byte) (*sitter.Tree, error)); ok {
		return rf(filename, src)
	}

	if rf, ok := ret.Get(0).(func(string, []byte) *sitter.Tree); ok {
		r0 = rf(filename, src)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*sitter.Tree)
		}
	}

	if rf, ok := ret.Get(1).(func(string, []byte) error); ok {
		r1 = rf(filename, src)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockPythonAdapter_Parse_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Parse'
type MockPythonAdapter_Parse_Call struct {
	*mock.Call
}

// Parse is a helper method to define mock.On call
//   - filename string
//   - src []byte
func (_e *MockPythonAdapter_Expecter) Parse(filename interface{}, src interface{}) *MockPythonAdapter_Parse_Call {
	return &MockPythonAdapter_Parse_Call{Call: _e.mock.On("Parse", filename, src)}
}

func (_c *MockPythonAdapter_Parse_Call) Run(run func(filename string, src []byte)) *MockPythonAdapter_Parse_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string), args[1].([]byte))
	})
	return _c
}

func (_c *MockPythonAdapter_Parse_Call) Return(_a0 *sitter.Tree, _a1 error) *MockPythonAdapter_Parse_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockPythonAdapter_Parse_Call) RunAndReturn(run func(string, []byte) (*sitter.Tree, error)) *MockPythonAdapter_Parse_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockPythonAdapter creates a new instance of MockPythonAdapter. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockPythonAdapter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPythonAdapter {
	mock := &MockPythonAdapter{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
