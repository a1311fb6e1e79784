package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var once sync.Once

// Init configures the global zerolog logger. Messages are written to stderr
// and, when file is not empty, appended to file. An unknown level falls back
// to info.
func Init(level, file string) {
	once.Do(func() {
		writers := []io.Writer{
			zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: time.RFC3339,
			},
		}
		if file != "" {
			w, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0664)
			if err != nil {
				os.Stderr.WriteString("fail to open log file: " + err.Error() + "\n")
			} else {
				writers = append(writers, w)
			}
		}
		lvl, err := zerolog.ParseLevel(level)
		if err != nil || lvl == zerolog.NoLevel {
			lvl = zerolog.InfoLevel
		}
		multi := zerolog.MultiLevelWriter(writers...)
		log.Logger = zerolog.New(multi).Level(lvl).With().Timestamp().Logger()
	})
}

// Get gives the global logger.
func Get() zerolog.Logger {
	return log.Logger
}
