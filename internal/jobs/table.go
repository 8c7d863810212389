package jobs

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var ErrUnsupportedFormat = errors.New("unsupported job table format")

var columns = map[string]func(*Listing, string){
	"role":        func(l *Listing, v string) { l.Role = v },
	"title":       func(l *Listing, v string) { l.Title = v },
	"company":     func(l *Listing, v string) { l.Company = v },
	"location":    func(l *Listing, v string) { l.Location = v },
	"experience":  func(l *Listing, v string) { l.Experience = v },
	"job_type":    func(l *Listing, v string) { l.JobType = v },
	"skills":      func(l *Listing, v string) { l.Skills = v },
	"posted_date": func(l *Listing, v string) { l.PostedDate = v },
	"url":         func(l *Listing, v string) { l.URL = v },
}

// Load reads a job table from a .csv file or the first sheet of an .xlsx
// workbook. The first row names the columns; unknown columns are ignored.
func Load(path string) (*Listings, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(path)
	case ".xlsx":
		return loadXLSX(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

func loadCSV(path string) (*Listings, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		rows = append(rows, record)
	}
	return fromRows(rows), nil
}

func loadXLSX(path string) (*Listings, error) {
	book, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer book.Close()

	sheet := book.GetSheetName(0)
	if sheet == "" {
		return &Listings{}, nil
	}
	rows, err := book.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q of %s: %w", sheet, path, err)
	}
	return fromRows(rows), nil
}

func fromRows(rows [][]string) *Listings {
	listings := &Listings{}
	if len(rows) == 0 {
		return listings
	}

	setters := make([]func(*Listing, string), len(rows[0]))
	for i, name := range rows[0] {
		setters[i] = columns[strings.ToLower(strings.TrimSpace(name))]
	}

	for _, row := range rows[1:] {
		listing := &Listing{}
		empty := true
		for i, cell := range row {
			if i >= len(setters) || setters[i] == nil {
				continue
			}
			cell = strings.TrimSpace(cell)
			if cell != "" {
				empty = false
			}
			setters[i](listing, cell)
		}
		if !empty {
			listings.Items = append(listings.Items, listing)
		}
	}
	return listings
}
