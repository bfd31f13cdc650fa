// Package report renders scan records for humans (aligned console table)
// and for machines (CSV with a stable column order suitable for diffing).
package report
