package utils

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/constvars"
)

// lookupEnv falls back to defaultValue when key is unset, blank or fails to parse.
func lookupEnv[T any](key string, defaultValue T, parse func(string) (T, error)) T {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return defaultValue
	}
	value, err := parse(strings.TrimSpace(raw))
	if err != nil {
		log.Printf(constvars.ErrEnvParsing, key, err)
		return defaultValue
	}
	return value
}

func GetEnvString(key, defaultValue string) string {
	return lookupEnv(key, defaultValue, func(raw string) (string, error) { return raw, nil })
}

func GetEnvInt(key string, defaultValue int) int {
	return lookupEnv(key, defaultValue, strconv.Atoi)
}

func GetEnvInt64(key string, defaultValue int64) int64 {
	return lookupEnv(key, defaultValue, func(raw string) (int64, error) { return strconv.ParseInt(raw, 10, 64) })
}

func GetEnvBool(key string, defaultValue bool) bool {
	return lookupEnv(key, defaultValue, strconv.ParseBool)
}
