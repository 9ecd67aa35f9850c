// Package catalog implementa el parseo y la validación de cargas masivas de
// catálogo en texto delimitado. El parseo es puro: recibe el texto completo
// ya materializado y el conjunto de códigos de barras existentes, y devuelve
// las filas validadas o la lista completa y ordenada de errores. La decisión
// de confirmar (todo o nada) la toma el caso de uso con el repositorio.
package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Delimiter separador de campos del catálogo (importación y exportación).
const Delimiter = ";"

// Version del esquema del catálogo.
//
//	v1: barcode;product_code;description
//	v2: barcode;product_code;description;stock_balance
type Version int

const (
	VersionAuto Version = iota // detectar por la cantidad de campos de la primera fila
	V1
	V2
)

func (v Version) fields() int {
	if v == V2 {
		return 4
	}
	return 3
}

// Options controla la interpretación del archivo.
type Options struct {
	Version   Version // VersionAuto detecta v1/v2 con la primera fila de datos
	HasHeader bool    // si true, la primera fila no vacía es encabezado (línea 1)
}

// Row una fila validada del catálogo, lista para confirmar.
type Row struct {
	Barcode      string
	Code         string
	Description  string
	StockBalance int // solo esquema v2; 0 en v1
}

// Result filas aceptadas de un lote completamente limpio.
type Result struct {
	Version Version
	Rows    []Row
}

// Kind clase de error de fila (taxonomía, no tipo de origen).
type Kind string

const (
	KindIncompleteData   Kind = "INCOMPLETE_DATA"
	KindDuplicateBarcode Kind = "DUPLICATE_BARCODE"
	KindNumericParse     Kind = "NUMERIC_PARSE"
)

// RowError error de validación de una fila, con número de línea 1-based.
// Las líneas en blanco no consumen número; si el formato declara encabezado,
// la primera fila de datos se reporta como línea 2.
type RowError struct {
	Line    int
	Kind    Kind
	Barcode string // solo KindDuplicateBarcode
	Raw     string // solo KindNumericParse: el valor de saldo que no parsea
}

func (e RowError) Error() string {
	switch e.Kind {
	case KindDuplicateBarcode:
		return fmt.Sprintf("línea %d: código de barras %s duplicado", e.Line, e.Barcode)
	case KindNumericParse:
		return fmt.Sprintf("línea %d: saldo de stock inválido: %q", e.Line, e.Raw)
	default:
		return fmt.Sprintf("línea %d: datos incompletos", e.Line)
	}
}

// Parse valida el lote completo contra existing (códigos ya presentes en el
// almacén). No es fail-fast: recorre todas las filas y devuelve cada
// violación para que el operador corrija todo en una sola pasada. Si la lista
// de errores no está vacía, el lote debe rechazarse en su totalidad.
//
// Un código aceptado se agrega de inmediato al conjunto visto, de modo que
// duplicados posteriores dentro del mismo archivo también se detectan.
func Parse(raw string, existing map[string]struct{}, opts Options) (*Result, []RowError) {
	seen := make(map[string]struct{}, len(existing))
	for b := range existing {
		seen[b] = struct{}{}
	}

	version := opts.Version
	var rows []Row
	var errs []RowError

	line := 0
	headerPending := opts.HasHeader
	for _, rec := range strings.Split(raw, "\n") {
		rec = strings.TrimSuffix(rec, "\r")
		if strings.TrimSpace(rec) == "" {
			continue // las líneas en blanco no consumen número de línea
		}
		line++
		fields := strings.Split(rec, Delimiter)
		if headerPending {
			headerPending = false
			if version == VersionAuto {
				version = detectVersion(fields)
			}
			continue
		}
		if version == VersionAuto {
			version = detectVersion(fields)
		}

		row, rowErr := parseRecord(fields, version, line, seen)
		if rowErr != nil {
			errs = append(errs, *rowErr)
			continue
		}
		seen[row.Barcode] = struct{}{}
		rows = append(rows, row)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	if version == VersionAuto {
		version = V1 // archivo vacío: no hay filas que confirmar
	}
	return &Result{Version: version, Rows: rows}, nil
}

func detectVersion(fields []string) Version {
	if len(fields) >= 4 {
		return V2
	}
	return V1
}

// parseRecord aplica las tres validaciones en orden: completitud, duplicado,
// saldo numérico. Devuelve a lo sumo un error por fila.
func parseRecord(fields []string, v Version, line int, seen map[string]struct{}) (Row, *RowError) {
	need := v.fields()
	if len(fields) < need {
		return Row{}, &RowError{Line: line, Kind: KindIncompleteData}
	}
	barcode := strings.TrimSpace(fields[0])
	code := strings.TrimSpace(fields[1])
	description := strings.TrimSpace(fields[2])
	if barcode == "" || code == "" || description == "" {
		return Row{}, &RowError{Line: line, Kind: KindIncompleteData}
	}

	if _, dup := seen[barcode]; dup {
		return Row{}, &RowError{Line: line, Kind: KindDuplicateBarcode, Barcode: barcode}
	}

	row := Row{Barcode: barcode, Code: code, Description: description}
	if v == V2 {
		rawBalance := strings.TrimSpace(fields[3])
		if rawBalance == "" {
			return Row{}, &RowError{Line: line, Kind: KindIncompleteData}
		}
		balance, err := strconv.Atoi(rawBalance)
		if err != nil {
			return Row{}, &RowError{Line: line, Kind: KindNumericParse, Raw: rawBalance}
		}
		row.StockBalance = balance
	}
	return row, nil
}
