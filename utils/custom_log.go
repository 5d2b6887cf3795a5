package utils

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/juju/errors"
	"github.com/juju/loggo"
	"github.com/juju/loggo/loggocolor"
)

var (
	_colorPrint = false
	_logOutput  io.Writer = os.Stderr
	logger                = loggo.GetLogger("deque")
)

func logFormatter(entry loggo.Entry) string {
	ts := entry.Timestamp.In(time.UTC).Format("2006-01-02 15:04:05")
	return fmt.Sprintf("%s %s %s", ts, entry.Level.Short(), entry.Message)
}

func newWriter() loggo.Writer {
	if _colorPrint {
		return loggocolor.NewWriter(_logOutput)
	}
	return loggo.NewSimpleWriter(_logOutput, logFormatter)
}

// SetupLogging sends log output to w at the given level, eg: "INFO", "DEBUG".
func SetupLogging(w io.Writer, level string) error {
	lvl, ok := loggo.ParseLevel(level)
	if !ok {
		return errors.NotValidf("log level %q", level)
	}
	_logOutput = w
	if _, err := loggo.ReplaceDefaultWriter(newWriter()); err != nil {
		return errors.Annotate(err, "replacing log writer")
	}
	return errors.Trace(loggo.ConfigureLoggers(fmt.Sprintf("<root>=%s", lvl.String())))
}

func SetColorPrint(enable bool) {
	_colorPrint = enable
	loggo.ReplaceDefaultWriter(newWriter())
}

func LogDebug(format string, v ...interface{}) {
	logger.Debugf(format, v...)
}

func LogInfo(format string, v ...interface{}) {
	logger.Infof(format, v...)
}

func LogWarn(format string, v ...interface{}) {
	logger.Warningf(format, v...)
}

func LogErro(format string, v ...interface{}) {
	logger.Errorf(format, v...)
}

func LogFatal(format string, v ...interface{}) {
	logger.Criticalf(format, v...)
	os.Exit(1)
}
