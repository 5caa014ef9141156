package api

import (
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/dutchcoders/go-clamd"
)

// errInfectedFile marks an upload rejected by the virus scanner.
var errInfectedFile = errors.New("infected file")

// uploadScanner streams uploads through clamd before they reach the asset
// store. With no address configured every file passes.
type uploadScanner struct {
	addr string
}

func newUploadScanner(addr string) *uploadScanner {
	return &uploadScanner{addr: addr}
}

func (s *uploadScanner) scan(file *multipart.FileHeader) error {
	if s.addr == "" {
		return nil
	}

	reader, err := file.Open()
	if err != nil {
		return fmt.Errorf("open upload for scan: %w", err)
	}
	defer reader.Close()

	abortChan := make(chan bool)
	defer close(abortChan)

	scanChan, err := clamd.NewClamd(s.addr).ScanStream(reader, abortChan)
	if err != nil {
		return fmt.Errorf("scan upload: %w", err)
	}

	for result := range scanChan {
		if result.Status != clamd.RES_OK {
			return errInfectedFile
		}
	}
	return nil
}
