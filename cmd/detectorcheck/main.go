// Command detectorcheck exercises the symbol pipeline as a self-test: it
// renders a probe symbol with the configured settings, runs it through the
// configured detector backends, verifies the payload signature, and checks
// that the journal database opens and migrates. Exit code 0 means every
// stage passed.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/DhruvGohel46/QRail-3/internal/adapter/driven/quirc"
	sqliteadapter "github.com/DhruvGohel46/QRail-3/internal/adapter/driven/sqlite"
	"github.com/DhruvGohel46/QRail-3/internal/adapter/driven/symbol"
	"github.com/DhruvGohel46/QRail-3/internal/adapter/driven/zxing"
	"github.com/DhruvGohel46/QRail-3/internal/application"
	"github.com/DhruvGohel46/QRail-3/internal/config"
	"github.com/DhruvGohel46/QRail-3/internal/domain/model"
	"github.com/DhruvGohel46/QRail-3/internal/domain/port/driven"
)

func main() {
	os.Exit(check())
}

func check() int {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return 1
	}

	if !cfg.DetectionEnabled() {
		fmt.Fprintln(os.Stderr, "detection disabled: no backends configured")
		return 1
	}

	scan := application.NewScanService(buildBackends(cfg.Detectors))
	info := scan.DetectionInfo()
	fmt.Println("backends:", strings.Join(info.Backends, ", "))

	encode := application.NewEncodeService(
		[]driven.SymbolRenderer{symbol.NewPNGRenderer()},
		nil, "", cfg.ErrorCorrection, cfg.SymbolScale, cfg.SymbolBorder,
	)

	record := map[string]string{
		"asset_id":     "CHK000000000001",
		"type":         "calibration",
		"manufacturer": "SELFTEST",
		"mfgDate":      "2026-01-01",
	}

	artifact, err := encode.Encode(ctx, record, model.FormatPNG, "")
	if err != nil {
		fmt.Fprintln(os.Stderr, "encode:", err)
		return 1
	}
	fmt.Printf("probe symbol: version %d, %d modules, %d bytes\n",
		artifact.QRVersion, artifact.ModuleCount, artifact.ByteSize)

	outcome, err := scan.Scan(ctx, artifact.Content)
	if err != nil {
		fmt.Fprintln(os.Stderr, "scan:", err)
		return 1
	}
	if !outcome.Found {
		fmt.Fprintln(os.Stderr, "scan: probe symbol not detected")
		return 1
	}
	if outcome.Verify != model.VerifyValid || !outcome.Recognized {
		fmt.Fprintf(os.Stderr, "verify: unexpected result %s\n", outcome.Verify)
		return 1
	}
	fmt.Println("probe symbol round trip ok")

	if cfg.JournalEnabled() {
		if err := checkJournal(ctx, cfg.JournalDBPath); err != nil {
			fmt.Fprintln(os.Stderr, "journal:", err)
			return 1
		}
		fmt.Println("journal database ok")
	}

	return 0
}

// buildBackends maps validated config names onto detector adapters,
// preserving the configured probe order.
func buildBackends(names []string) []driven.DetectorBackend {
	backends := make([]driven.DetectorBackend, 0, len(names))
	for _, name := range names {
		switch name {
		case "quirc":
			backends = append(backends, quirc.NewDetector())
		case "zxing":
			backends = append(backends, zxing.NewDetector())
		}
	}
	return backends
}

// checkJournal opens the journal database, brings the schema current, and
// runs one read against it.
func checkJournal(ctx context.Context, dbPath string) error {
	db, err := sqliteadapter.NewDB(dbPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			fmt.Fprintln(os.Stderr, "journal close:", closeErr)
		}
	}()

	if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
		return err
	}

	if _, err := sqliteadapter.NewJournalRepo(db).ListRecent(ctx, 1); err != nil {
		return err
	}

	return nil
}
