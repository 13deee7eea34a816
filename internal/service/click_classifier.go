package service

import (
	"strings"
	"time"

	"github.com/avc-dev/shorturls/internal/model"
)

const (
	SourceDirect    = "Direct"
	LocationUnknown = "Unknown"
)

// deviceRules проверяются по порядку, побеждает первое совпадение
var deviceRules = []struct {
	marker   string
	location string
}{
	{marker: "Mobile", location: "Mobile Device"},
	{marker: "Windows", location: "Windows Desktop"},
	{marker: "Mac", location: "Mac Desktop"},
	{marker: "Linux", location: "Linux Desktop"},
}

// ClassifyClick строит запись о клике из заголовков запроса.
// Классификация грубая: источник это Referer как есть, тип устройства по User-Agent.
func ClassifyClick(click model.ClickContext, now time.Time) model.ClickRecord {
	return model.ClickRecord{
		Timestamp: now.UTC(),
		Source:    classifySource(click.Referrer),
		Location:  classifyDevice(click.UserAgent),
	}
}

// classifySource сохраняет Referer целиком, с путем и параметрами
func classifySource(referrer string) string {
	referrer = strings.TrimSpace(referrer)
	if referrer == "" {
		return SourceDirect
	}

	return referrer
}

func classifyDevice(userAgent string) string {
	for _, rule := range deviceRules {
		if strings.Contains(userAgent, rule.marker) {
			return rule.location
		}
	}

	return LocationUnknown
}
