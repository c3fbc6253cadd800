package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/yeremiapane/restaurant-pos/store"
	"github.com/yeremiapane/restaurant-pos/utils"
)

// Backup outcomes beyond plain storage errors. ErrPartialBackup must stay
// distinguishable from ErrTransmission so operators know the data left the
// building even though it still sits in the store.
var (
	ErrUnsupportedEnvironment = errors.New("backup not supported: no local file storage available")
	ErrTransmission           = errors.New("backup email could not be sent")
	ErrPartialBackup          = errors.New("backup was sent but order history could not be cleared")
)

// BackupMailer sends the finished artifacts as one outbound message.
// Implemented by external/resend; faked in tests.
type BackupMailer interface {
	SendBackup(ctx context.Context, jsonPath, pdfPath string) error
}

// BackupItem is one line of an exported order.
type BackupItem struct {
	Name  string  `json:"name"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

// BackupOrder is one exported order with its lines in encounter order.
type BackupOrder struct {
	ID        uint         `json:"id"`
	Total     float64      `json:"total"`
	CreatedAt time.Time    `json:"created_at"`
	Items     []BackupItem `json:"items"`
}

// BackupDocument is the normalized export shape both artifacts render from.
type BackupDocument struct {
	GeneratedAt time.Time     `json:"generated_at"`
	Orders      []BackupOrder `json:"orders"`
}

// BackupResult reports what a successful (or partially successful) run
// produced.
type BackupResult struct {
	JSONPath       string `json:"json_path"`
	PDFPath        string `json:"pdf_path"`
	OrdersExported int    `json:"orders_exported"`
}

// BackupService runs the export -> render -> transmit -> purge pipeline.
// Purging only ever happens after transmission reports success.
type BackupService struct {
	Orders *store.OrderStore
	Mailer BackupMailer
	Dir    string
}

func NewBackupService(orders *store.OrderStore, mailer BackupMailer, dir string) *BackupService {
	return &BackupService{Orders: orders, Mailer: mailer, Dir: dir}
}

// BuildBackupDocument reads the flat export rows and groups them by order id,
// preserving first-seen order of orders and encounter order of items.
func (s *BackupService) BuildBackupDocument() (*BackupDocument, error) {
	rows, err := s.Orders.ListOrdersForExport()
	if err != nil {
		return nil, err
	}

	doc := &BackupDocument{GeneratedAt: time.Now().UTC()}
	index := make(map[uint]int)

	for _, r := range rows {
		i, seen := index[r.OrderID]
		if !seen {
			doc.Orders = append(doc.Orders, BackupOrder{
				ID:        r.OrderID,
				Total:     r.Total,
				CreatedAt: r.CreatedAt,
			})
			i = len(doc.Orders) - 1
			index[r.OrderID] = i
		}
		doc.Orders[i].Items = append(doc.Orders[i].Items, BackupItem{
			Name:  r.Name,
			Qty:   r.Qty,
			Price: r.Price,
		})
	}
	return doc, nil
}

// Run executes the full pipeline. It fails fast, before anything destructive,
// when no artifact directory is available.
func (s *BackupService) Run(ctx context.Context) (*BackupResult, error) {
	if s.Dir == "" {
		return nil, ErrUnsupportedEnvironment
	}
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedEnvironment, err)
	}
	if s.Mailer == nil {
		return nil, fmt.Errorf("%w: no mailer configured", ErrTransmission)
	}

	doc, err := s.BuildBackupDocument()
	if err != nil {
		return nil, err
	}

	stamp := time.Now().UnixMilli()
	jsonPath := filepath.Join(s.Dir, fmt.Sprintf("orders-backup-%d.json", stamp))
	pdfPath := filepath.Join(s.Dir, fmt.Sprintf("orders-backup-%d.pdf", stamp))

	// The two artifacts have no data dependency on each other; render them
	// concurrently but wait for both before transmitting.
	errs := make(chan error, 2)
	go func() { errs <- writeJSONBackup(doc, jsonPath) }()
	go func() { errs <- writePDFBackup(doc, pdfPath) }()
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			return nil, err
		}
	}

	if err := s.Mailer.SendBackup(ctx, jsonPath, pdfPath); err != nil {
		// Purge is skipped; the store is unchanged from before the run.
		return nil, fmt.Errorf("%w: %v", ErrTransmission, err)
	}
	utils.InfoLogger.Printf("Backup email sent (%d orders)", len(doc.Orders))

	result := &BackupResult{
		JSONPath:       jsonPath,
		PDFPath:        pdfPath,
		OrdersExported: len(doc.Orders),
	}

	if err := s.Orders.ClearOrders(); err != nil {
		utils.ErrorLogger.Printf("Backup purge failed after transmission: %v", err)
		return result, fmt.Errorf("%w: %v", ErrPartialBackup, err)
	}
	return result, nil
}

func writeJSONBackup(doc *BackupDocument, path string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
