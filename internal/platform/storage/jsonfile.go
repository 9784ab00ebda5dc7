// Package storage berisi helper baca/tulis file JSON utuh. Tidak ada locking
// dan tidak ada partial write: baca seluruhnya, mutasi di memori, tulis
// seluruhnya. Satu proses, satu penulis.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
)

func init() {
	// File data lama menyimpan harga sebagai angka JSON polos (2500.00),
	// bukan string. Pertahankan formatnya.
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrNotExist dikembalikan Load jika file belum pernah dibuat.
var ErrNotExist = errors.New("data file does not exist")

// Load membaca seluruh file ke v.
func Load(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrNotExist
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// Save menimpa file dengan v, pretty-printed (indentasi 4 spasi, mengikuti
// format file data yang sudah ada).
func Save(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Exists melaporkan apakah file data sudah ada.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
