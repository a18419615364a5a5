package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"jump-route-service/internal/domain"
	"os"
	"strconv"
	"strings"
)

// LoadSystems reads a system catalogue from a CSV file: one record per line,
// quoted name followed by x, y, z coordinates in light-years. Rows with too
// few fields or unparsable coordinates are skipped rather than failing the
// whole load. Catalogue order is the file order.
func LoadSystems(path string) ([]*domain.System, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load systems: open %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	systems := make([]*domain.System, 0, 64)
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("load systems: read %q: %w", path, err)
		}
		if len(record) < 4 {
			continue
		}

		x, errX := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		z, errZ := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
		if errX != nil || errY != nil || errZ != nil {
			continue
		}

		// encoding/csv strips well-formed quoting; trim stray quotes from
		// hand-edited files too.
		name := strings.Trim(strings.TrimSpace(record[0]), `"`)
		if name == "" {
			continue
		}

		systems = append(systems, &domain.System{Name: name, X: x, Y: y, Z: z})
	}

	return systems, nil
}

// WriteRoute persists the planned route as CSV, one row per visited system
// with the leg that reached it and running totals.
func WriteRoute(path string, plan *domain.RouteResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write route: create %q: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"Step", "System", "Jumps", "Leg_LY", "Total_Jumps", "Total_LY", "X", "Y", "Z"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write route: header: %w", err)
	}

	totalJumps := 0
	totalDistance := 0.0
	for i, s := range plan.Systems {
		legJumps := 0
		legDistance := 0.0
		if i > 0 {
			leg := plan.Legs[i-1]
			legJumps = leg.Jumps
			legDistance = leg.Distance
		}
		totalJumps += legJumps
		totalDistance += legDistance

		row := []string{
			strconv.Itoa(i + 1),
			s.Name,
			strconv.Itoa(legJumps),
			strconv.FormatFloat(legDistance, 'f', 3, 64),
			strconv.Itoa(totalJumps),
			strconv.FormatFloat(totalDistance, 'f', 3, 64),
			strconv.FormatFloat(s.X, 'f', -1, 64),
			strconv.FormatFloat(s.Y, 'f', -1, 64),
			strconv.FormatFloat(s.Z, 'f', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write route: row %d: %w", i+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write route: flush %q: %w", path, err)
	}
	return nil
}
