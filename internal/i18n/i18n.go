// Package i18n provides internationalization support for the menu service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale picks the best supported language from Accept-Language. Entries
// are ranked by q-weight, ties keep header order, regions are ignored
// ("ru-RU" is "ru") and q=0 excludes a language.
func GetLocale(c *gin.Context) string {
	header := c.GetHeader(AcceptLanguageHeader)
	if header == "" {
		return DefaultLocale
	}

	best, bestQ := DefaultLocale, 0.0
	for _, part := range strings.Split(header, ",") {
		lang, q := parseLanguage(part)
		if q > bestQ && GetTranslator().Supports(lang) {
			best, bestQ = lang, q
		}
	}
	return best
}

// parseLanguage splits "pt-BR;q=0.8" into ("pt", 0.8). A missing or
// malformed weight counts as 1.
func parseLanguage(part string) (string, float64) {
	tag, params, _ := strings.Cut(strings.TrimSpace(part), ";")
	lang, _, _ := strings.Cut(tag, "-")

	q := 1.0
	if v, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			q = parsed
		}
	}
	return strings.ToLower(strings.TrimSpace(lang)), q
}

// Supports reports whether locale has a message table.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request":      "Invalid request",
			"error.invalid_request_body": "Invalid request body",
			"error.invalid_id":           "Identifier must be a UUID",
			"error.internal_error":       "An unexpected error occurred",
			"error.service_unavailable":  "Service temporarily unavailable",
			"error.api_key_required":     "API key is required",
			"error.invalid_api_key":      "Invalid API key",
			"error.not_found":            "Not found",
			"error.menu_not_found":       "menu not found",
			"error.submenu_not_found":    "submenu not found",
			"error.dish_not_found":       "dish not found",
			"error.rate_limit_exceeded":  "Too many requests, please try again later",
			"error.timeout":              "Request timed out",
		},
		"ru": {
			"error.invalid_request":      "Некорректный запрос",
			"error.invalid_request_body": "Некорректное тело запроса",
			"error.invalid_id":           "Идентификатор должен быть UUID",
			"error.internal_error":       "Произошла непредвиденная ошибка",
			"error.service_unavailable":  "Сервис временно недоступен",
			"error.api_key_required":     "Требуется API-ключ",
			"error.invalid_api_key":      "Неверный API-ключ",
			"error.not_found":            "Не найдено",
			"error.menu_not_found":       "меню не найдено",
			"error.submenu_not_found":    "подменю не найдено",
			"error.dish_not_found":       "блюдо не найдено",
			"error.rate_limit_exceeded":  "Слишком много запросов, попробуйте позже",
			"error.timeout":              "Время ожидания запроса истекло",
		},
		"pt": {
			"error.invalid_request":      "Requisição inválida",
			"error.invalid_request_body": "Corpo da requisição inválido",
			"error.invalid_id":           "O identificador deve ser um UUID",
			"error.internal_error":       "Ocorreu um erro inesperado",
			"error.service_unavailable":  "Serviço temporariamente indisponível",
			"error.api_key_required":     "Chave de API é obrigatória",
			"error.invalid_api_key":      "Chave de API inválida",
			"error.not_found":            "Não encontrado",
			"error.menu_not_found":       "menu não encontrado",
			"error.submenu_not_found":    "submenu não encontrado",
			"error.dish_not_found":       "prato não encontrado",
			"error.rate_limit_exceeded":  "Muitas requisições, tente novamente mais tarde",
			"error.timeout":              "A requisição expirou",
		},
	}
}
