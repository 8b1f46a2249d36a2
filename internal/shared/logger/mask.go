package logger

import "strings"

// Example: hong_gildong -> h***
func MaskUsername(username string) string {
	if username == "" {
		return ""
	}
	return username[:1] + "***"
}

// Example: 010-1234-5678 -> 010-****-5678
func MaskPhone(phone string) string {
	if phone == "" {
		return ""
	}

	parts := strings.Split(phone, "-")
	if len(parts) != 3 {
		return "***"
	}

	return parts[0] + "-****-" + parts[2]
}
