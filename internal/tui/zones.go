package tui

import "fmt"

// Zone IDs for mouse hit testing via bubblezone.
const (
	zoneTabPrefix     = "pgp-tab:"
	zoneClosePrefix   = "pgp-close:"
	zoneCardPrefix    = "pgp-card:"
	zoneProfile       = "pgp-profile"
	zoneProfileAdmin  = "pgp-profile-admin"
	zoneProfileLogout = "pgp-profile-logout"
	zoneMenuRefresh   = "pgp-menu-refresh"
	zoneContextMenu   = "pgp-menu"
	zoneProfileMenu   = "pgp-profile-menu"
	zoneGridPrev      = "pgp-grid-prev"
	zoneGridNext      = "pgp-grid-next"
	zoneNoticeClose   = "pgp-notice-close"
	zoneLoginSubmit   = "pgp-login-submit"
)

func tabZoneID(i int) string   { return fmt.Sprintf("%s%d", zoneTabPrefix, i) }
func closeZoneID(i int) string { return fmt.Sprintf("%s%d", zoneClosePrefix, i) }
func cardZoneID(id string) string {
	return zoneCardPrefix + id
}
