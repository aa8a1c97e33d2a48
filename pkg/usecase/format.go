package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/t-okuda/relwatch/pkg/domain/model"
)

// FormatNotification assembles the final notification text. The changelog
// body is lower-cased here, at format time; no transport escaping is done
// (the notifier owns that). Byte-reproducible for identical inputs, including
// an empty body, which still yields both blank-line separators.
func FormatNotification(toolName, changelogBody, link string) string {
	return toolName + " release\n\n" + strings.ToLower(changelogBody) + "\n\n" + link
}

// Fingerprint computes the opaque equality token for a parsed release. It is
// a pure function of version label and bullet block, order-sensitive and
// deterministic across runs.
func Fingerprint(rel *model.ParsedRelease) string {
	h := sha256.Sum256([]byte(rel.VersionLabel + "\n" + rel.BulletBlock))
	return hex.EncodeToString(h[:])
}
