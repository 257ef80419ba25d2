// Package welllog reads well-log and petrophysical tables and writes the
// derived rock-physics table.
//
// Input columns are located by header name rather than position. Each field
// accepts a list of aliases matched case-insensitively; the first alias
// present in the header wins. Loading fails fast on a missing column, a
// ragged row, or a cell that does not parse as a number.
package welllog
