package models

import "time"

// ScanSummary holds the totals of one completed scan
type ScanSummary struct {
	FilesScanned int           // CSV files opened, including ones that failed
	Matches      int           // Rows reported
	FailedFiles  int           // Files abandoned with a FileError
	Duration     time.Duration // Wall time of the scan
}
