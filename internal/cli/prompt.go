package cli

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/shopspring/decimal"
)

// errInterrupted menandai Ctrl+C / Ctrl+D: naik sampai loop utama dan
// dianggap permintaan keluar, bukan error.
var errInterrupted = errors.New("interrupted")

// errBadInput adalah error input operator (format angka salah, dsb).
// Dilaporkan inline lalu kembali ke menu, tidak pernah mematikan sesi.
var errBadInput = errors.New("invalid input")

func (s *Shell) readLine(label string) (string, error) {
	s.rl.SetPrompt(promptColor.Sprint(label))
	line, err := s.rl.Readline()
	if err != nil {
		if err == io.EOF || err == readline.ErrInterrupt {
			return "", errInterrupted
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Shell) readInt(label string) (int, error) {
	raw, err := s.readLine(label)
	if err != nil {
		return 0, err
	}
	n, convErr := strconv.Atoi(raw)
	if convErr != nil {
		return 0, errBadInput
	}
	return n, nil
}

func (s *Shell) readDecimal(label string) (decimal.Decimal, error) {
	raw, err := s.readLine(label)
	if err != nil {
		return decimal.Zero, err
	}
	d, convErr := decimal.NewFromString(raw)
	if convErr != nil {
		return decimal.Zero, errBadInput
	}
	return d, nil
}

// readYesNo menerima y/n (case-insensitive). Jawaban lain dianggap "tidak".
func (s *Shell) readYesNo(label string) (bool, error) {
	raw, err := s.readLine(label + " (y/n): ")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(raw, "y"), nil
}
