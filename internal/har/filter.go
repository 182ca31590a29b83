package har

import (
	"net/url"
	"strings"
)

// FilterStatic returns a copy of the archive with static-asset requests
// removed, keeping entry order. Entries without a request are dropped.
func FilterStatic(h *HAR) *HAR {
	if h == nil || h.Log == nil {
		return h
	}

	filtered := make([]*Entry, 0, len(h.Log.Entries))
	for _, entry := range h.Log.Entries {
		if entry == nil || entry.Request == nil {
			continue
		}
		if isStaticAsset(entry.Request.URL) {
			continue
		}
		filtered = append(filtered, entry)
	}

	return &HAR{
		Log: &Log{
			Version: h.Log.Version,
			Creator: h.Log.Creator,
			Entries: filtered,
			Comment: h.Log.Comment,
		},
	}
}

// isStaticAsset checks whether a URL points to a static asset
// based on file extensions.
func isStaticAsset(urlStr string) bool {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return false
	}

	lowerPath := strings.ToLower(parsedURL.Path)

	staticExtensions := []string{
		".js", ".css", ".png", ".jpg", ".jpeg", ".gif", ".svg",
		".woff", ".woff2", ".ttf", ".eot", ".ico", ".map",
	}

	for _, ext := range staticExtensions {
		if strings.HasSuffix(lowerPath, ext) {
			return true
		}
	}

	return false
}
