package video

import (
	"fmt"

	"github.com/atotto/clipboard"
	qrcode "github.com/skip2/go-qrcode"
)

// watchBaseURL is the public player front end. The showcase only hands off
// an identifier; playback itself lives outside this program.
const watchBaseURL = "https://watch.inkmatch.app/v/"

const qrImageSize = 256

// WatchURL builds the public watch link for a video identifier.
func WatchURL(videoID string) string {
	return watchBaseURL + videoID
}

// CopyLink places the watch link on the system clipboard.
func CopyLink(videoID string) error {
	if videoID == "" {
		return fmt.Errorf("no video id to copy")
	}
	if err := clipboard.WriteAll(WatchURL(videoID)); err != nil {
		return fmt.Errorf("failed to copy watch link: %w", err)
	}
	return nil
}

// WriteQR renders the watch link as a QR code PNG at path, for scanning the
// link off the showcase screen.
func WriteQR(videoID, path string) error {
	if videoID == "" {
		return fmt.Errorf("no video id to encode")
	}
	if err := qrcode.WriteFile(WatchURL(videoID), qrcode.Medium, qrImageSize, path); err != nil {
		return fmt.Errorf("failed to write QR code: %w", err)
	}
	return nil
}
