package common

const (
	KEY_DASHBOARD_SNAPSHOT = "dashboard:%d:%s"
	KEY_DASHBOARD_PREFIX   = "dashboard:"
	KEY_LAST_PRICE         = "last_price:%s"
)
