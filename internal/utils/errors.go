package utils

import "strings"

// ProviderErrorFallback is shown when a generation error carries no message.
const ProviderErrorFallback = "Ошибка при вызове API. Проверьте ваш ключ."

// ProviderErrorMessage converts a generation error into display text.
func ProviderErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return ProviderErrorFallback
}
