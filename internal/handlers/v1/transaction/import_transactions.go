package transaction

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// importProcessor is the interface for running a queued CSV import.
type importProcessor interface {
	Process(ctx context.Context, path string) ([]service.Transaction, error)
}

// ImportTransactionsBody is the response body for a finished import.
type ImportTransactionsBody struct {
	Transactions []Transaction `json:"transactions"`
	Imported     int           `json:"imported"`
}

// ImportTransactionsHandler handles POST /v1/transaction/import. The upload
// is a multipart form with a single "file" part holding the CSV. Huma has no
// multipart streaming support we want here, so this one stays a plain
// http.Handler behind the logging wrapper.
type ImportTransactionsHandler struct {
	Imports   importProcessor
	UploadDir string
}

// NewImportTransactionsHandler creates a new ImportTransactionsHandler.
func NewImportTransactionsHandler(imports importProcessor, uploadDir string) *ImportTransactionsHandler {
	return &ImportTransactionsHandler{
		Imports:   imports,
		UploadDir: uploadDir,
	}
}

// Handle receives the upload, spools it to the upload directory and hands the
// spooled path to the import queue. The queue worker removes the file once
// the run succeeds.
func (h *ImportTransactionsHandler) Handle(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return fmt.Errorf("method %s not allowed", req.Method)
	}

	file, header, err := req.FormFile("file")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return fmt.Errorf("reading form file: %w", err)
	}
	defer file.Close()
	logData.AddData("uploadFilename", header.Filename)
	logData.AddData("uploadSize", header.Size)

	spooled, err := h.spool(file)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return err
	}

	stopTimer := logData.AddTiming("importMs")
	transactions, err := h.Imports.Process(req.Context(), spooled)
	stopTimer()
	if err != nil {
		// The spooled file stays behind for inspection, only successful
		// runs clean up after themselves.
		w.WriteHeader(http.StatusInternalServerError)
		return fmt.Errorf("running import: %w", err)
	}

	body := ImportTransactionsBody{
		Transactions: make([]Transaction, len(transactions)),
		Imported:     len(transactions),
	}
	for i, tx := range transactions {
		body.Transactions[i] = fromService(tx)
	}
	logData.AddData("importedCount", len(transactions))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(body)
}

func (h *ImportTransactionsHandler) spool(file io.Reader) (string, error) {
	tmp, err := os.CreateTemp(h.UploadDir, "import-*.csv")
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, file); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("writing upload file: %w", err)
	}

	return tmp.Name(), nil
}
