package cli

import (
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/exprkit/log"
)

// logFormat configures the logger format as a side effect of parsing via
// encoding.TextUnmarshaler, early enough to affect parse error output.
type logFormat string

func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

// logLevel configures the logger level the same way.
type logLevel string

func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(*l))))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"info"   enum:"trace,debug,info,warn,error" help:"Set log level."`
	Format     logFormat `default:"pretty" enum:"pretty,text,json"            help:"Set log format."`
	TimeLayout string    `default:""                                          help:"Set timestamp layout."`
	Caller     bool      `default:"false"                                     help:"Include caller information." negatable:""`
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

func (f *logConfig) start() {
	log.Config(
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
	)

	log.Debug("logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
	)
}

// scan applies --log-level and --log-format before kong parsing begins, so
// the flags take effect regardless of position on the command line.
func (f *logConfig) scan(args []string) {
	next := func(i int) string {
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			return args[i+1]
		}

		return ""
	}

	for i, arg := range args {
		name, value, assigned := strings.Cut(arg, "=")

		switch name {
		case "--log-level":
			if !assigned {
				value = next(i)
			}

			_ = f.Level.UnmarshalText([]byte(value))

		case "--log-format":
			if !assigned {
				value = next(i)
			}

			_ = f.Format.UnmarshalText([]byte(value))
		}
	}
}
