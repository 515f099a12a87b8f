package utils

import (
	"fmt"
	"log"
)

func FmtErrorf(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

func LogInfo(msg string, args ...interface{}) {
	log.Printf("[INFO] "+msg, args...)
}

func LogError(msg string, args ...interface{}) {
	log.Printf("[ERROR] "+msg, args...)
}

func LogDebug(msg string, args ...interface{}) {
	log.Printf("[DEBUG] "+msg, args...)
}
