package ble

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestChildLoggerFields(t *testing.T) {
	buf := &bytes.Buffer{}
	l := logrus.New()
	l.Out = buf
	l.Formatter = &logrus.TextFormatter{DisableTimestamp: true, DisableColors: true}

	lg := NewLogrusLogger(logrus.NewEntry(l)).ChildLogger(map[string]interface{}{"pkg": "test"})
	lg.Infof("hello %v", 1)

	out := buf.String()
	if !strings.Contains(out, "pkg=test") || !strings.Contains(out, "hello 1") {
		t.Fatalf("unexpected log output %q", out)
	}
}

func TestSetLogger(t *testing.T) {
	prev := GetLogger()
	defer SetLogger(prev)

	l := NewLogrusLogger(logrus.NewEntry(logrus.New()))
	SetLogger(l)
	if GetLogger() != l {
		t.Fatal("logger not replaced")
	}
}

func TestSetLogLevel(t *testing.T) {
	prev := GetLogger()
	defer SetLogger(prev)

	l := logrus.New()
	SetLogger(NewLogrusLogger(logrus.NewEntry(l)))

	if err := SetLogLevel("debug"); err != nil {
		t.Fatal(err)
	}
	if l.Level != logrus.DebugLevel {
		t.Fatalf("have %v, want %v", l.Level, logrus.DebugLevel)
	}

	SetLogLevelMax()
	if l.Level != logrus.TraceLevel {
		t.Fatalf("have %v, want %v", l.Level, logrus.TraceLevel)
	}

	if err := SetLogLevel("loud"); err == nil {
		t.Fatal("expected error for bad level")
	}
}

type recLogger struct {
	errs []string
}

func (r *recLogger) Info(...interface{}) {}
func (r *recLogger) Debug(...interface{}) {}
func (r *recLogger) Warn(...interface{}) {}
func (r *recLogger) Infof(string, ...interface{}) {}
func (r *recLogger) Debugf(string, ...interface{}) {}
func (r *recLogger) Errorf(string, ...interface{}) {}
func (r *recLogger) Warnf(string, ...interface{}) {}

func (r *recLogger) Error(v ...interface{}) {
	r.errs = append(r.errs, fmt.Sprint(v...))
}

func (r *recLogger) ChildLogger(map[string]interface{}) Logger {
	return r
}

func TestSetLogLevelMaxNonDefault(t *testing.T) {
	prev := GetLogger()
	defer SetLogger(prev)

	r := &recLogger{}
	SetLogger(r)
	SetLogLevelMax()

	if len(r.errs) != 1 || !strings.Contains(r.errs[0], "non-default logger") {
		t.Fatalf("have %v, want one non-default logger error", r.errs)
	}

	if err := SetLogLevel("debug"); err == nil {
		t.Fatal("expected error for non-default logger")
	}
}
