package registry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/skip2/go-qrcode"

	"github.com/ton-community/wallets-list/internal/common"
	"github.com/ton-community/wallets-list/internal/fileio"
	"github.com/ton-community/wallets-list/internal/model"
)

// ExportQRCodes renders a scannable PNG of every wallet's universal
// link into outDir, named after the wallet's derived filename.
// Wallets without a universal_url are skipped. Returns the number of
// codes written.
func ExportQRCodes(wallets []model.Wallet, outDir string, size int) (int, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return 0, model.NewConfigError("failed to create output directory", err)
	}

	written := 0
	for _, w := range wallets {
		if w.UniversalURL == "" {
			logrus.WithField("wallet", w.AppName).Debug("no universal_url, skipping QR code")
			continue
		}

		stem := common.FormatFilename(w.AppName)
		if stem == "" {
			return written, model.NewDataError(fmt.Sprintf("wallet '%s': app_name has no characters a filename could be derived from", w.AppName), nil)
		}

		qr, err := qrcode.New(w.UniversalURL, qrcode.Medium)
		if err != nil {
			return written, fmt.Errorf("failed to create QR code for '%s': %w", w.AppName, err)
		}

		png, err := qr.PNG(size)
		if err != nil {
			return written, fmt.Errorf("failed to render QR PNG for '%s': %w", w.AppName, err)
		}

		path := filepath.Join(outDir, stem+".png")
		if err := fileio.WriteFileAtomic(path, png, 0644); err != nil {
			return written, err
		}

		logrus.WithFields(logrus.Fields{
			"wallet": w.AppName,
			"path":   path,
		}).Debug("wrote QR code")
		written++
	}

	return written, nil
}
