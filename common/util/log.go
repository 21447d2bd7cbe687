package util

import (
	"os"
	"strings"

	isatty "github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/mikotoken/vault/common"
)

const defaultLogLevel = "warn"

// logLevels maps module prefix to level. "*" holds the fallback level.
var logLevels = map[string]string{"*": defaultLogLevel}

func init() {
	customFormatter := new(log.TextFormatter)
	customFormatter.TimestampFormat = "2006-01-02 15:04:05"
	customFormatter.FullTimestamp = true
	log.SetFormatter(customFormatter)
}

// InitLog applies the formatter and level settings from config. It should be
// called after viper has loaded the config file.
func InitLog() {
	customFormatter := new(log.TextFormatter)
	customFormatter.TimestampFormat = "2006-01-02 15:04:05"
	customFormatter.FullTimestamp = true
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		customFormatter.DisableColors = true
	}
	log.SetFormatter(customFormatter)

	logLevels = parseLogLevelConfig(viper.GetString(common.CfgLogLevels))
	level, err := log.ParseLevel(logLevels["*"])
	if err != nil {
		log.WithFields(log.Fields{"prefix": "util", "level": logLevels["*"]}).Warn("Invalid log level, using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

// parseLogLevelConfig parses strings like "*:error,ledger:debug,keeper:info".
func parseLogLevelConfig(cfg string) map[string]string {
	ret := make(map[string]string)
	for _, part := range strings.Split(cfg, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		kv := strings.SplitN(part, ":", 2)
		if len(kv) != 2 {
			// A bare level applies to every module.
			ret["*"] = strings.TrimSpace(kv[0])
			continue
		}
		ret[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}
	if _, ok := ret["*"]; !ok {
		ret["*"] = defaultLogLevel
	}
	return ret
}

// GetLoggerForModule returns a logger whose level follows the per-module
// setting, falling back to the "*" level.
func GetLoggerForModule(module string) *log.Entry {
	levelStr, ok := logLevels[module]
	if !ok {
		levelStr = logLevels["*"]
	}
	level, err := log.ParseLevel(levelStr)
	if err != nil {
		level = log.InfoLevel
	}

	logger := log.New()
	logger.Formatter = log.StandardLogger().Formatter
	logger.Out = log.StandardLogger().Out
	logger.Level = level
	return logger.WithFields(log.Fields{"prefix": module})
}
