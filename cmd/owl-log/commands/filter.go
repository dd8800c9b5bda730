package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/owl-cec/owl/pkg/cec"
	"github.com/owl-cec/owl/pkg/log"
)

// FilterOptions holds the filter flags shared by view, export and filter.
// Empty strings match everything.
type FilterOptions struct {
	Session   string
	Layer     string
	Direction string
	Category  string
	Opcode    string
	TimeStart string
	TimeEnd   string
}

// Build converts the flags into a log.Filter.
func (o FilterOptions) Build() (log.Filter, error) {
	filter := log.Filter{SessionID: o.Session}

	if o.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, o.TimeStart)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}
	if o.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, o.TimeEnd)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}
	if o.Layer != "" {
		l, err := parseLayer(o.Layer)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Layer = &l
	}
	if o.Direction != "" {
		d, err := parseDirection(o.Direction)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Direction = &d
	}
	if o.Category != "" {
		c, err := parseCategory(o.Category)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Category = &c
	}
	if o.Opcode != "" {
		op, err := parseOpcode(o.Opcode)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Opcode = &op
	}
	return filter, nil
}

func parseLayer(s string) (log.Layer, error) {
	switch strings.ToLower(s) {
	case "bus":
		return log.LayerBus, nil
	case "dispatch":
		return log.LayerDispatch, nil
	case "source":
		return log.LayerSource, nil
	default:
		return 0, fmt.Errorf("invalid layer: %s (must be bus, dispatch, or source)", s)
	}
}

func parseDirection(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "in":
		return log.DirectionIn, nil
	case "out":
		return log.DirectionOut, nil
	default:
		return 0, fmt.Errorf("invalid direction: %s (must be in or out)", s)
	}
}

func parseCategory(s string) (log.Category, error) {
	c, ok := log.ParseCategory(strings.ToUpper(s))
	if !ok {
		return 0, fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}

// parseOpcode accepts a name such as STANDBY or a number such as 0x36.
func parseOpcode(s string) (uint8, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for _, op := range cec.Opcodes() {
		if op.String() == name {
			return uint8(op), nil
		}
	}
	n, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid opcode: %s", s)
	}
	return uint8(n), nil
}

// RunFilter copies the events of path that match filter into output.
func RunFilter(path string, filter log.Filter, output string, w io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open capture file: %w", err)
	}
	defer reader.Close()

	logger, err := log.NewFileLogger(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer logger.Close()

	count := 0
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		logger.Log(event)
		count++
	}

	fmt.Fprintf(w, "Filtered %d events to %s\n", count, logger.Path())
	return nil
}
