package kafka

import (
	"fmt"
	"strconv"
	"time"
)

const (
	INSERT = "INSERT"
	UPDATE = "UPDATE"
	DELETE = "DELETE"
)

// CanalMessage row change event as published by Canal
type CanalMessage struct {
	ID       int64    `json:"id"`
	Database string   `json:"database"`
	Table    string   `json:"table"`
	PKNames  []string `json:"pkNames"`
	IsDDL    bool     `json:"isDdl"`
	Type     string   `json:"type"`
	ES       int64    `json:"es"`
	TS       int64    `json:"ts"`

	// Data rows after the change
	Data []map[string]interface{} `json:"data"`

	// Old changed columns before the change
	Old []map[string]interface{} `json:"old"`
}

// Canal renders every column as a string or null

func StrToString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func StrToUint64(v interface{}) uint64 {
	n, _ := strconv.ParseUint(StrToString(v), 10, 64)
	return n
}

func StrToFloat64(v interface{}) float64 {
	f, _ := strconv.ParseFloat(StrToString(v), 64)
	return f
}

func StrToBool(v interface{}) bool {
	s := StrToString(v)
	return s == "1" || s == "true"
}

// StrToDateTime parses MySQL DATETIME, zero time on failure
func StrToDateTime(v interface{}) time.Time {
	s := StrToString(v)
	for _, layout := range []string{"2006-01-02 15:04:05.999999", "2006-01-02 15:04:05", time.RFC3339Nano} {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t
		}
	}
	return time.Time{}
}
