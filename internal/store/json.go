// Package store persists both ledgers as flat JSON files. The wire
// format keeps the original Spanish field names so existing data files
// stay readable.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/esquina/pos/internal/fuel"
	"github.com/esquina/pos/internal/inventory"
	"github.com/go-playground/validator/v10"
)

// ErrUnavailable is returned when a data file cannot be written. Reads
// never fail: a missing or unreadable file degrades to an empty ledger.
var ErrUnavailable = errors.New("store unavailable")

// ProductRecord is the product wire format: {"id","nombre","precio","cantidad"}.
type ProductRecord struct {
	Code      string  `json:"id" validate:"required"`
	Name      string  `json:"nombre" validate:"required"`
	UnitPrice float64 `json:"precio" validate:"gte=0"`
	Quantity  int     `json:"cantidad" validate:"gte=0"`
}

// ChargeRecord is the fuel history wire format:
// {"litros","tipo","precioLitro","totalPagado"}.
type ChargeRecord struct {
	Liters     float64 `json:"litros" validate:"gt=0"`
	FuelType   string  `json:"tipo" validate:"required"`
	UnitPrice  float64 `json:"precioLitro" validate:"gt=0"`
	AmountPaid float64 `json:"totalPagado" validate:"gte=0"`
}

// FileStore reads and writes ledger snapshots. Saves overwrite the
// target file wholesale; there is no merge and no atomic rename.
type FileStore struct {
	productsPath string
	fuelPath     string
	validate     *validator.Validate
	logger       *slog.Logger
}

func NewFileStore(productsPath, fuelPath string, logger *slog.Logger) *FileStore {
	return &FileStore{
		productsPath: productsPath,
		fuelPath:     fuelPath,
		validate:     validator.New(),
		logger:       logger,
	}
}

// LoadProducts reads the product snapshot. A missing or malformed file
// yields an empty snapshot with a warning; records failing validation
// are skipped.
func (s *FileStore) LoadProducts() []inventory.Record {
	var rows []ProductRecord
	if !s.read(s.productsPath, &rows) {
		return nil
	}

	records := make([]inventory.Record, 0, len(rows))
	for _, row := range rows {
		if err := s.validate.Struct(row); err != nil {
			s.logger.Warn("skipping invalid product record",
				slog.String("file", s.productsPath),
				slog.String("code", row.Code),
				slog.Any("error", err))
			continue
		}
		records = append(records, inventory.Record{
			Code:      row.Code,
			Name:      row.Name,
			UnitPrice: row.UnitPrice,
			Quantity:  row.Quantity,
		})
	}
	return records
}

// SaveProducts overwrites the product snapshot file.
func (s *FileStore) SaveProducts(records []inventory.Record) error {
	rows := make([]ProductRecord, len(records))
	for i, r := range records {
		rows[i] = ProductRecord{
			Code:      r.Code,
			Name:      r.Name,
			UnitPrice: r.UnitPrice,
			Quantity:  r.Quantity,
		}
	}
	return s.write(s.productsPath, rows)
}

// LoadCharges reads the fuel charge history, with the same degradation
// rules as LoadProducts.
func (s *FileStore) LoadCharges() []fuel.Charge {
	var rows []ChargeRecord
	if !s.read(s.fuelPath, &rows) {
		return nil
	}

	charges := make([]fuel.Charge, 0, len(rows))
	for _, row := range rows {
		if err := s.validate.Struct(row); err != nil {
			s.logger.Warn("skipping invalid charge record",
				slog.String("file", s.fuelPath),
				slog.Any("error", err))
			continue
		}
		charges = append(charges, fuel.Charge{
			Liters:     row.Liters,
			FuelType:   row.FuelType,
			UnitPrice:  row.UnitPrice,
			AmountPaid: row.AmountPaid,
		})
	}
	return charges
}

// SaveCharges overwrites the fuel history file.
func (s *FileStore) SaveCharges(charges []fuel.Charge) error {
	rows := make([]ChargeRecord, len(charges))
	for i, c := range charges {
		rows[i] = ChargeRecord{
			Liters:     c.Liters,
			FuelType:   c.FuelType,
			UnitPrice:  c.UnitPrice,
			AmountPaid: c.AmountPaid,
		}
	}
	return s.write(s.fuelPath, rows)
}

// read unmarshals path into out. Returns false when the file is missing
// or unreadable, logging the reason; the caller starts empty.
func (s *FileStore) read(path string, out any) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Warn("data file not found, starting empty", slog.String("file", path))
		} else {
			s.logger.Warn("data file unreadable, starting empty",
				slog.String("file", path), slog.Any("error", err))
		}
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.logger.Warn("data file malformed, starting empty",
			slog.String("file", path), slog.Any("error", err))
		return false
	}
	return true
}

func (s *FileStore) write(path string, rows any) error {
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrUnavailable, path, err)
	}
	return nil
}
