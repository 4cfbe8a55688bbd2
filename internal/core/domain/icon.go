package domain

import "strings"

// IconTag names one of the icons the site knows how to draw. Rows coming from
// the content tables carry free-form icon names; anything not listed here
// becomes IconUnknown.
type IconTag string

const (
	IconUnknown   IconTag = "unknown"
	IconFacebook  IconTag = "facebook"
	IconTwitter   IconTag = "twitter"
	IconInstagram IconTag = "instagram"
	IconYoutube   IconTag = "youtube"
	IconGamepad   IconTag = "gamepad"
	IconTrophy    IconTag = "trophy"
	IconMusic     IconTag = "music"
	IconCamera    IconTag = "camera"
	IconUsers     IconTag = "users"
	IconGift      IconTag = "gift"
)

var iconAliases = map[string]IconTag{
	"facebook":  IconFacebook,
	"twitter":   IconTwitter,
	"x":         IconTwitter,
	"instagram": IconInstagram,
	"youtube":   IconYoutube,
	"gamepad":   IconGamepad,
	"gamepad2":  IconGamepad,
	"trophy":    IconTrophy,
	"music":     IconMusic,
	"camera":    IconCamera,
	"users":     IconUsers,
	"gift":      IconGift,
}

func ParseIcon(name string) (IconTag, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "-", "")
	key = strings.ReplaceAll(key, "_", "")

	tag, ok := iconAliases[key]
	if !ok {
		return IconUnknown, false
	}

	return tag, true
}
