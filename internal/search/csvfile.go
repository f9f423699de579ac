package search

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/harrison/csvsearch/internal/models"
)

const byteOrderMark = "\uFEFF"

// fileScan is what one CSV file yielded.
type fileScan struct {
	matches []models.MatchRecord
	records int // records read, header included
}

// scanFile reads path to the end and returns its matching data rows.
// On any failure the partial matches are dropped and only the FileError is returned.
//
// Blank lines are records with no cells: they never match but they take up a
// line number, and a leading blank line is the (empty) header.
func scanFile(path string, matcher *Matcher) (*fileScan, *models.FileError) {
	f, err := os.Open(path)
	if err != nil {
		return nil, models.NewFileError(path, models.KindRead, 0, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	scan := &fileScan{}

	var (
		header    []string
		headerMap models.HeaderMap
		lastLine  int // physical line the previous record ended on
	)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, classify(path, err)
		}

		startLine, _ := reader.FieldPos(0)
		blank := startLine - lastLine - 1
		lastLine = recordEndLine(reader, record)

		if scan.records == 0 && blank == 0 {
			record[0] = strings.TrimPrefix(record[0], byteOrderMark)
		}
		if ferr := checkEncoding(path, reader, record); ferr != nil {
			return nil, ferr
		}

		if scan.records == 0 {
			if blank > 0 {
				headerMap = models.NewHeaderMap(nil)
			} else {
				header = record
				headerMap = models.NewHeaderMap(header)
				scan.records = 1
				continue
			}
		}
		scan.records += blank + 1

		term, ok := matcher.Match(record)
		if !ok {
			continue
		}
		scan.matches = append(scan.matches, models.MatchRecord{
			File:      path,
			Line:      scan.records,
			Row:       record,
			Header:    header,
			HeaderMap: headerMap,
			Term:      term,
		})
	}

	return scan, nil
}

// recordEndLine returns the physical line the record just read ends on.
// Quoted cells may span lines; the reader normalises their line breaks to "\n".
func recordEndLine(reader *csv.Reader, record []string) int {
	last := len(record) - 1
	line, _ := reader.FieldPos(last)
	return line + strings.Count(record[last], "\n")
}

// classify maps a reader error onto a FileError kind.
func classify(path string, err error) *models.FileError {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return models.NewFileError(path, models.KindMalformed, parseErr.Line, parseErr.Err)
	}
	return models.NewFileError(path, models.KindRead, 0, err)
}

// checkEncoding rejects records holding invalid UTF-8.
func checkEncoding(path string, reader *csv.Reader, record []string) *models.FileError {
	for i, cell := range record {
		if utf8.ValidString(cell) {
			continue
		}
		line, _ := reader.FieldPos(i)
		return models.NewFileError(path, models.KindEncoding, line, models.ErrInvalidEncoding)
	}
	return nil
}
