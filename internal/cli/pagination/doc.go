// Package pagination provides sorting and paging of evaluated series rows
// for CLI output.
//
//   - Params: --limit/--offset and --page/--page-size flag values and validation
//   - Meta: paging metadata attached to JSON output
//   - RowSorter: stable sorting of engine.Row by named field
//
// Paging selects which rows are displayed. Series totals are always computed
// over every evaluated row.
package pagination
