package mocks

import (
	"fmt"

	"github.com/stretchr/testify/mock"
)

// Logger records the rendered log lines per level,
// expectations are set like On("Warnf", "bad id").
type Logger struct {
	mock.Mock
}

func (_m *Logger) log(level, format string, v ...interface{}) {
	_m.MethodCalled(level, fmt.Sprintf(format, v...))
}

func (_m *Logger) Infof(format string, v ...interface{}) {
	_m.log("Infof", format, v...)
}

func (_m *Logger) Printf(format string, v ...interface{}) {
	_m.log("Printf", format, v...)
}

func (_m *Logger) Donef(format string, v ...interface{}) {
	_m.log("Donef", format, v...)
}

func (_m *Logger) Warnf(format string, v ...interface{}) {
	_m.log("Warnf", format, v...)
}

func (_m *Logger) Debugf(format string, v ...interface{}) {
	_m.log("Debugf", format, v...)
}

func (_m *Logger) Errorf(format string, v ...interface{}) {
	_m.log("Errorf", format, v...)
}
