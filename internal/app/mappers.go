package app

import (
	"strings"

	"hostbot/internal/domain"
)

/********** alias registry (single source of truth) **********/

var inboxAliases = map[string][]string{
	"guest":   {"guest", "guest_name", "guestName", "from", "sender.name", "author"},
	"text":    {"message", "text", "body", "content", "message.text"},
	"urgency": {"urgency", "status", "priority", "flags.urgency"},
}

var urgentMarkers = map[string]struct{}{
	"urgent": {}, "high": {}, "critical": {}, "emergency": {},
}

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// lookupStr returns string at path or "".
func lookupStr(m map[string]any, path string) string {
	if v := lookupAny(m, path); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// firstNonEmptyAlias: first non-blank string for a named alias set.
func firstNonEmptyAlias(m map[string]any, aliases map[string][]string, key string) string {
	for _, p := range aliases[key] {
		if s := strings.TrimSpace(lookupStr(m, p)); s != "" {
			return s
		}
	}
	return ""
}

/********** inbox mapper **********/

// MapInboxMessage turns one inbox payload into a GuestMessage. It reports
// false when the payload carries no message text.
func MapInboxMessage(p map[string]any) (domain.GuestMessage, bool) {
	text := firstNonEmptyAlias(p, inboxAliases, "text")
	if text == "" {
		return domain.GuestMessage{}, false
	}
	m := domain.GuestMessage{
		GuestName: firstNonEmptyAlias(p, inboxAliases, "guest"),
		Text:      text,
		Urgency:   domain.UrgencyNormal,
	}
	if m.GuestName == "" {
		m.GuestName = "Guest"
	}
	if _, ok := urgentMarkers[strings.ToLower(firstNonEmptyAlias(p, inboxAliases, "urgency"))]; ok {
		m.Urgency = domain.UrgencyUrgent
	}
	if b, ok := lookupAny(p, "urgent").(bool); ok && b {
		m.Urgency = domain.UrgencyUrgent
	}
	return m, true
}
